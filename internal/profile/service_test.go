package profile

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"

	"portfolio-backend/internal/shared/storage/media"
)

type fakeStore struct {
	calls []string
	n     int
}

func (f *fakeStore) Upload(ctx context.Context, folder, fileName string, kind media.Kind, r io.Reader) (media.Asset, error) {
	f.n++
	id := fmt.Sprintf("%s/%d-%s", folder, f.n, fileName)
	f.calls = append(f.calls, "upload:"+id)
	return media.Asset{URL: "https://media.test/" + id, PublicID: id, Kind: kind}, nil
}

func (f *fakeStore) Remove(ctx context.Context, publicID string, kind media.Kind) error {
	f.calls = append(f.calls, "remove:"+publicID)
	return nil
}

// keyedRepo stores one row per id the way the Postgres upsert does, and lets
// a test force the initial reads to observe an empty table.
type keyedRepo struct {
	mu     sync.Mutex
	rows   map[string]Profile
	misses int
}

func (r *keyedRepo) Get(ctx context.Context) (Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.misses > 0 {
		r.misses--
		return Profile{}, ErrNotFound
	}
	for _, p := range r.rows {
		return p, nil
	}
	return Profile{}, ErrNotFound
}

func (r *keyedRepo) Upsert(ctx context.Context, p Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.rows == nil {
		r.rows = map[string]Profile{}
	}
	r.rows[p.ID] = p
	return nil
}

func TestGetOrCreateConcurrentFirstReadsShareOneRow(t *testing.T) {
	repo := &keyedRepo{misses: 2}
	svc := &Service{Repo: repo, Media: &fakeStore{}}
	ctx := context.Background()

	var wg sync.WaitGroup
	ids := make([]string, 2)
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			p, err := svc.GetOrCreate(ctx)
			ids[i], errs[i] = p.ID, err
		}(i)
	}
	wg.Wait()

	for i := range errs {
		if errs[i] != nil {
			t.Fatalf("GetOrCreate %d: %v", i, errs[i])
		}
	}
	if ids[0] != ids[1] {
		t.Fatalf("racing creates produced different ids: %s vs %s", ids[0], ids[1])
	}
	if len(repo.rows) != 1 {
		t.Fatalf("expected 1 profile row, got %d", len(repo.rows))
	}
}

func TestGetOrCreateIsIdempotent(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo(), Media: &fakeStore{}}
	ctx := context.Background()

	first, err := svc.GetOrCreate(ctx)
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	if first.ID == "" {
		t.Fatalf("expected generated id")
	}

	second, err := svc.GetOrCreate(ctx)
	if err != nil {
		t.Fatalf("GetOrCreate again: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("expected stable singleton, got %s then %s", first.ID, second.ID)
	}
}

func TestUpdateMergesTextFields(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo(), Media: &fakeStore{}}
	ctx := context.Background()

	name := "Ada Lovelace"
	if _, err := svc.Update(ctx, Update{FullName: &name}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	title := "Engineer"
	p, err := svc.Update(ctx, Update{Title: &title})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if p.FullName != "Ada Lovelace" || p.Title != "Engineer" {
		t.Fatalf("fields not merged: %+v", p)
	}
}

func TestUploadAssetRemovesOldBeforeUpload(t *testing.T) {
	store := &fakeStore{}
	svc := &Service{Repo: NewMemoryRepo(), Media: store}
	ctx := context.Background()

	p, err := svc.UploadAsset(ctx, SlotImage, &media.File{Name: "v1.png", Reader: strings.NewReader("a")})
	if err != nil {
		t.Fatalf("UploadAsset: %v", err)
	}
	oldID := p.Image.PublicID

	p, err = svc.UploadAsset(ctx, SlotImage, &media.File{Name: "v2.png", Reader: strings.NewReader("b")})
	if err != nil {
		t.Fatalf("UploadAsset again: %v", err)
	}
	if p.Image.PublicID == oldID {
		t.Fatalf("expected replaced asset")
	}

	// Replacing a slot removes the old asset first, then uploads the new file.
	want := []string{"upload:" + oldID, "remove:" + oldID, "upload:" + p.Image.PublicID}
	if len(store.calls) != len(want) {
		t.Fatalf("expected calls %v, got %v", want, store.calls)
	}
	for i := range want {
		if store.calls[i] != want[i] {
			t.Fatalf("call %d: expected %s, got %s", i, want[i], store.calls[i])
		}
	}
}

func TestUploadAssetUnknownSlot(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo(), Media: &fakeStore{}}

	_, err := svc.UploadAsset(context.Background(), AssetSlot("banner"),
		&media.File{Name: "x.png", Reader: strings.NewReader("x")})
	if !errors.Is(err, ErrUnknownSlot) {
		t.Fatalf("expected ErrUnknownSlot, got %v", err)
	}
}

func TestUploadResumeRejectsNonPDF(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo(), Media: &fakeStore{}}

	_, err := svc.UploadAsset(context.Background(), SlotResume,
		&media.File{Name: "resume.pdf", Reader: strings.NewReader("not a pdf")})
	if err == nil {
		t.Fatalf("expected non-PDF rejection")
	}
}

func TestRemoveAssetClearsSlot(t *testing.T) {
	store := &fakeStore{}
	svc := &Service{Repo: NewMemoryRepo(), Media: store}
	ctx := context.Background()

	p, err := svc.UploadAsset(ctx, SlotLogo, &media.File{Name: "logo.png", Reader: strings.NewReader("l")})
	if err != nil {
		t.Fatalf("UploadAsset: %v", err)
	}
	uploaded := p.Logo.PublicID

	p, err = svc.RemoveAsset(ctx, SlotLogo)
	if err != nil {
		t.Fatalf("RemoveAsset: %v", err)
	}
	if !p.Logo.Empty() {
		t.Fatalf("expected cleared slot, got %+v", p.Logo)
	}
	if store.calls[len(store.calls)-1] != "remove:"+uploaded {
		t.Fatalf("expected removal of %s, got %v", uploaded, store.calls)
	}
}
