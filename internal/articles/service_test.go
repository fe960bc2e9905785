package articles

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"
	"time"

	"portfolio-backend/internal/shared/storage/media"
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

func newTestService() *Service {
	return &Service{Repo: NewMemoryRepo(), Media: &fakeStore{}}
}

func TestCreateDefaultsToDraft(t *testing.T) {
	svc := newTestService()

	a, err := svc.Create(context.Background(), CreateInput{Title: "Hello"}, nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if a.Status != StatusDraft {
		t.Fatalf("expected draft, got %s", a.Status)
	}
	if a.PublishedAt != nil {
		t.Fatalf("draft should not carry a publication time")
	}
	if a.Tags == nil {
		t.Fatalf("tags should be an empty list, not nil")
	}
}

func TestCreatePublishedStampsPublicationTime(t *testing.T) {
	svc := newTestService()

	before := time.Now().UTC().Add(-time.Second)
	a, err := svc.Create(context.Background(), CreateInput{Title: "Hello", Status: StatusPublished}, nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if a.PublishedAt == nil || a.PublishedAt.Before(before) {
		t.Fatalf("expected fresh publishedAt, got %v", a.PublishedAt)
	}
}

func TestToggleStatusStampsAndClears(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	a, err := svc.Create(ctx, CreateInput{Title: "Hello"}, nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	published, err := svc.ToggleStatus(ctx, a.ID)
	if err != nil {
		t.Fatalf("ToggleStatus: %v", err)
	}
	if published.Status != StatusPublished || published.PublishedAt == nil {
		t.Fatalf("expected published with timestamp, got %+v", published)
	}

	draft, err := svc.ToggleStatus(ctx, a.ID)
	if err != nil {
		t.Fatalf("ToggleStatus back: %v", err)
	}
	if draft.Status != StatusDraft || draft.PublishedAt != nil {
		t.Fatalf("expected draft with cleared timestamp, got %+v", draft)
	}
}

func TestUpdateRejectsUnknownStatus(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	a, err := svc.Create(ctx, CreateInput{Title: "Hello"}, nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	bad := "archived"
	if _, err := svc.Update(ctx, a.ID, Update{Status: &bad}, nil); err == nil {
		t.Fatalf("expected unknown status rejection")
	}
}

func TestListFiltersByStatus(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	if _, err := svc.Create(ctx, CreateInput{Title: "Draft piece"}, nil); err != nil {
		t.Fatalf("Create: %v", err)
	}
	pub, err := svc.Create(ctx, CreateInput{Title: "Live piece", Status: StatusPublished}, nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	status := StatusPublished
	list, err := svc.List(ctx, Filter{Status: status})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 1 || list[0].ID != pub.ID {
		t.Fatalf("expected only the published article, got %v", list)
	}
}

func TestListPinnedFirst(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	first, err := svc.Create(ctx, CreateInput{Title: "First", Status: StatusPublished, Order: 0}, nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	second, err := svc.Create(ctx, CreateInput{Title: "Second", Status: StatusPublished, Order: 1}, nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := svc.TogglePinned(ctx, second.ID); err != nil {
		t.Fatalf("TogglePinned: %v", err)
	}

	list, err := svc.List(ctx, Filter{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 || list[0].ID != second.ID {
		t.Fatalf("expected pinned article first, got %v", list)
	}
	_ = first
}

func TestGetMissing(t *testing.T) {
	svc := newTestService()
	if _, err := svc.Get(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
