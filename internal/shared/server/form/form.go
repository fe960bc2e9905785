// Package form parses multipart/form-data mutation requests: scalar fields,
// list fields and file parts, with absence kept distinct from empty values so
// partial updates never clobber unspecified fields.
package form

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/shared/storage/media"
)

// File returns the named multipart file, or nil when the part is absent.
// The returned closer must be called after the upload completes.
func File(c *gin.Context, field string) (*media.File, func(), error) {
	header, err := c.FormFile(field)
	if err != nil {
		return nil, func() {}, nil
	}
	f, err := header.Open()
	if err != nil {
		return nil, func() {}, fmt.Errorf("open %s: %w", field, err)
	}
	return &media.File{Name: header.Filename, Reader: f}, func() { _ = f.Close() }, nil
}

// Value returns the form value and whether the field was provided.
func Value(c *gin.Context, field string) (string, bool) {
	return c.GetPostForm(field)
}

// List parses a list field, accepting either a JSON array or a
// comma-separated string.
func List(c *gin.Context, field string) ([]string, bool) {
	raw, ok := c.GetPostForm(field)
	if !ok {
		return nil, false
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{}, true
	}
	if strings.HasPrefix(raw, "[") {
		var out []string
		if err := json.Unmarshal([]byte(raw), &out); err == nil {
			return out, true
		}
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out, true
}

// Bool parses a boolean field. The second return reports presence.
func Bool(c *gin.Context, field string) (value bool, ok bool, err error) {
	raw, present := c.GetPostForm(field)
	if !present {
		return false, false, nil
	}
	parsed, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return false, true, fmt.Errorf("%s must be a boolean", field)
	}
	return parsed, true, nil
}

// Int parses an integer field. The second return reports presence.
func Int(c *gin.Context, field string) (value int, ok bool, err error) {
	raw, present := c.GetPostForm(field)
	if !present {
		return 0, false, nil
	}
	parsed, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, true, fmt.Errorf("%s must be an integer", field)
	}
	return parsed, true, nil
}
