package certifications

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"portfolio-backend/internal/shared/storage/media"
)

type fakeStore struct {
	n          int
	failUpload bool
	removed    []string
}

func (f *fakeStore) Upload(ctx context.Context, folder, fileName string, kind media.Kind, r io.Reader) (media.Asset, error) {
	if f.failUpload {
		return media.Asset{}, media.ErrUpstream
	}
	f.n++
	id := fmt.Sprintf("%s/%d-%s", folder, f.n, fileName)
	return media.Asset{URL: "https://media.test/" + id, PublicID: id, Kind: kind}, nil
}

func (f *fakeStore) Remove(ctx context.Context, publicID string, kind media.Kind) error {
	f.removed = append(f.removed, publicID)
	return nil
}

func TestCreateRejectsNonPDFCertificate(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo(), Media: &fakeStore{}}

	_, err := svc.Create(context.Background(), CreateInput{Title: "AWS SAA", Organization: "AWS"},
		&media.File{Name: "cert.pdf", Reader: strings.NewReader("plain text")}, nil)
	if err == nil {
		t.Fatalf("expected non-PDF rejection")
	}

	list, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("failed create must not persist, got %v", list)
	}
}

func TestCreateFailedUploadLeavesNoDocument(t *testing.T) {
	store := &fakeStore{failUpload: true}
	svc := &Service{Repo: NewMemoryRepo(), Media: store}

	_, err := svc.Create(context.Background(), CreateInput{Title: "AWS SAA", Organization: "AWS"},
		nil, &media.File{Name: "badge.png", Reader: strings.NewReader("png")})
	if !errors.Is(err, media.ErrUpstream) {
		t.Fatalf("expected upstream error, got %v", err)
	}

	list, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("failed create must not persist, got %v", list)
	}
}

func TestUpdateKeepsReusedImageURLUntouched(t *testing.T) {
	store := &fakeStore{}
	svc := &Service{Repo: NewMemoryRepo(), Media: store}
	ctx := context.Background()

	cert, err := svc.Create(ctx, CreateInput{
		Title:          "AWS SAA",
		Organization:   "AWS",
		ReusedImageURL: "https://other.test/badge.png",
	}, nil, nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.Delete(ctx, cert.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	// The borrowed URL is plain text: deleting the document never issues a
	// removal for it.
	if len(store.removed) != 0 {
		t.Fatalf("expected no removals for borrowed url, got %v", store.removed)
	}
}

func TestListSortsByIssueDateDescending(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo(), Media: &fakeStore{}}
	ctx := context.Background()

	older, err := svc.Create(ctx, CreateInput{Title: "Old", Organization: "Org", IssueYear: 2019, IssueMonth: 5}, nil, nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	newer, err := svc.Create(ctx, CreateInput{Title: "New", Organization: "Org", IssueYear: 2023, IssueMonth: 2}, nil, nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	list, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 || list[0].ID != newer.ID || list[1].ID != older.ID {
		t.Fatalf("expected newest first, got %v", list)
	}
}
