package feedback

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"portfolio-backend/internal/shared/storage/media"
	"portfolio-backend/internal/shared/validate"
)

type fakeStore struct {
	n       int
	removed []string
}

func (f *fakeStore) Upload(ctx context.Context, folder, fileName string, kind media.Kind, r io.Reader) (media.Asset, error) {
	f.n++
	id := fmt.Sprintf("%s/%d-%s", folder, f.n, fileName)
	return media.Asset{URL: "https://media.test/" + id, PublicID: id, Kind: kind}, nil
}

func (f *fakeStore) Remove(ctx context.Context, publicID string, kind media.Kind) error {
	f.removed = append(f.removed, publicID)
	return nil
}

func TestSubmitAlwaysStartsUnapproved(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo(), Media: &fakeStore{}}

	fb, err := svc.Submit(context.Background(), SubmitInput{
		Name:    "Visitor",
		Message: "Great portfolio",
		Rating:  5,
	}, nil)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if fb.Approved {
		t.Fatalf("submissions must start unapproved")
	}
}

func TestSubmitValidatesRatingRange(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo(), Media: &fakeStore{}}

	_, err := svc.Submit(context.Background(), SubmitInput{
		Name:    "Visitor",
		Message: "hi",
		Rating:  6,
	}, nil)

	var fe validate.FieldErrors
	if !errors.As(err, &fe) {
		t.Fatalf("expected field errors, got %v", err)
	}
	if _, ok := fe["rating"]; !ok {
		t.Fatalf("expected rating error, got %v", fe)
	}
}

func TestTestimonialsOnlyShowApproved(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo(), Media: &fakeStore{}}
	ctx := context.Background()

	hidden, err := svc.Submit(ctx, SubmitInput{Name: "A", Message: "one"}, nil)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	shown, err := svc.Submit(ctx, SubmitInput{Name: "B", Message: "two"}, nil)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if _, err := svc.ToggleApproved(ctx, shown.ID); err != nil {
		t.Fatalf("ToggleApproved: %v", err)
	}

	list, err := svc.Testimonials(ctx)
	if err != nil {
		t.Fatalf("Testimonials: %v", err)
	}
	if len(list) != 1 || list[0].ID != shown.ID {
		t.Fatalf("expected only approved entry, got %v", list)
	}

	all, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("admin list should show everything, got %d", len(all))
	}
	_ = hidden
}

func TestUpdateMergesFieldsAndReplacesAvatar(t *testing.T) {
	store := &fakeStore{}
	svc := &Service{Repo: NewMemoryRepo(), Media: store}
	ctx := context.Background()

	fb, err := svc.Submit(ctx, SubmitInput{Name: "Visitor", Message: "one", Rating: 4},
		&media.File{Name: "v1.png", Reader: strings.NewReader("a")})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	oldAvatar := fb.Avatar.PublicID

	role := "CTO"
	updated, err := svc.Update(ctx, fb.ID, Update{Role: &role},
		&media.File{Name: "v2.png", Reader: strings.NewReader("b")})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Role != "CTO" || updated.Name != "Visitor" || updated.Rating != 4 {
		t.Fatalf("fields not merged: %+v", updated)
	}
	if updated.Avatar.PublicID == oldAvatar {
		t.Fatalf("expected replaced avatar")
	}
	if len(store.removed) != 1 || store.removed[0] != oldAvatar {
		t.Fatalf("expected old avatar removal, got %v", store.removed)
	}
}

func TestUpdateValidatesRatingRange(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo(), Media: &fakeStore{}}
	ctx := context.Background()

	fb, err := svc.Submit(ctx, SubmitInput{Name: "Visitor", Message: "one"}, nil)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	bad := 6
	_, err = svc.Update(ctx, fb.ID, Update{Rating: &bad}, nil)
	var fe validate.FieldErrors
	if !errors.As(err, &fe) {
		t.Fatalf("expected field errors, got %v", err)
	}
	if _, ok := fe["rating"]; !ok {
		t.Fatalf("expected rating error, got %v", fe)
	}
}

func TestToggleApprovedRoundTrip(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo(), Media: &fakeStore{}}
	ctx := context.Background()

	fb, err := svc.Submit(ctx, SubmitInput{Name: "A", Message: "one"}, nil)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	on, err := svc.ToggleApproved(ctx, fb.ID)
	if err != nil {
		t.Fatalf("ToggleApproved: %v", err)
	}
	if !on.Approved {
		t.Fatalf("expected approved after first toggle")
	}

	off, err := svc.ToggleApproved(ctx, fb.ID)
	if err != nil {
		t.Fatalf("ToggleApproved: %v", err)
	}
	if off.Approved {
		t.Fatalf("expected unapproved after second toggle")
	}
}
