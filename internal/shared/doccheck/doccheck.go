package doccheck

import (
	"bytes"
	"errors"
	"io"

	"github.com/ledongthuc/pdf"
)

// ErrNotPDF is returned when a payload is not a readable PDF.
var ErrNotPDF = errors.New("file is not a valid PDF")

const maxCheckedSize = 25 << 20 // 25MB

// CheckPDF reads the payload, verifies it parses as a PDF, and returns a
// reader positioned at the start so the caller can still upload the bytes.
func CheckPDF(r io.Reader) (io.Reader, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxCheckedSize+1))
	if err != nil {
		return nil, err
	}
	if len(data) == 0 || len(data) > maxCheckedSize {
		return nil, ErrNotPDF
	}
	if err := parsePDF(data); err != nil {
		return nil, err
	}
	return bytes.NewReader(data), nil
}

// parsePDF isolates the parser, which panics on some malformed inputs.
func parsePDF(data []byte) (err error) {
	defer func() {
		if recover() != nil {
			err = ErrNotPDF
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return ErrNotPDF
	}
	if reader.NumPage() < 1 {
		return ErrNotPDF
	}
	return nil
}
