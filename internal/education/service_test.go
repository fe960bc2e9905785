package education

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"portfolio-backend/internal/shared/storage/media"
	"portfolio-backend/internal/shared/validate"
)

type fakeStore struct {
	n int
}

func (f *fakeStore) Upload(ctx context.Context, folder, fileName string, kind media.Kind, r io.Reader) (media.Asset, error) {
	f.n++
	id := fmt.Sprintf("%s/%d-%s", folder, f.n, fileName)
	return media.Asset{URL: "https://media.test/" + id, PublicID: id, Kind: kind}, nil
}

func (f *fakeStore) Remove(ctx context.Context, publicID string, kind media.Kind) error {
	return nil
}

func intPtr(v int) *int { return &v }

func TestCreateCompletedRequiresCompletionYear(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo(), Media: &fakeStore{}}

	_, err := svc.Create(context.Background(), CreateInput{
		Institution: "MIT",
		Degree:      "BSc",
		StartYear:   2016,
		Status:      StatusCompleted,
	}, nil)

	var fe validate.FieldErrors
	if !errors.As(err, &fe) {
		t.Fatalf("expected field errors, got %v", err)
	}
	if _, ok := fe["completionYear"]; !ok {
		t.Fatalf("expected completionYear error, got %v", fe)
	}
}

func TestCreatePursuingClearsCompletionYear(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo(), Media: &fakeStore{}}

	e, err := svc.Create(context.Background(), CreateInput{
		Institution:    "MIT",
		Degree:         "MSc",
		StartYear:      2024,
		CompletionYear: intPtr(2026),
		Status:         StatusPursuing,
	}, nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if e.CompletionYear != nil {
		t.Fatalf("pursuing entry kept completion year: %+v", e)
	}
}

func TestCreateRequiresInstitutionAndDegree(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo(), Media: &fakeStore{}}

	_, err := svc.Create(context.Background(), CreateInput{StartYear: 2020, Status: StatusPursuing}, nil)
	var fe validate.FieldErrors
	if !errors.As(err, &fe) {
		t.Fatalf("expected field errors, got %v", err)
	}
	if _, ok := fe["institution"]; !ok {
		t.Fatalf("expected institution error, got %v", fe)
	}
	if _, ok := fe["degree"]; !ok {
		t.Fatalf("expected degree error, got %v", fe)
	}
}

func TestUpdateCompletePursuit(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo(), Media: &fakeStore{}}
	ctx := context.Background()

	e, err := svc.Create(ctx, CreateInput{
		Institution: "MIT",
		Degree:      "MSc",
		StartYear:   2024,
		Status:      StatusPursuing,
	}, nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	status := StatusCompleted
	updated, err := svc.Update(ctx, e.ID, Update{
		Status:         &status,
		CompletionYear: intPtr(2026),
	}, nil)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Status != StatusCompleted || updated.CompletionYear == nil || *updated.CompletionYear != 2026 {
		t.Fatalf("unexpected result: %+v", updated)
	}
}
