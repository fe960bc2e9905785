package skills

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
	uploads []string
	removed []string
}

func (f *fakeStore) Upload(ctx context.Context, folder, fileName string, kind media.Kind, r io.Reader) (media.Asset, error) {
	id := fmt.Sprintf("%s/%s", folder, fileName)
	f.uploads = append(f.uploads, id)
	return media.Asset{URL: "https://media.test/" + id, PublicID: id, Kind: kind}, nil
}

func (f *fakeStore) Remove(ctx context.Context, publicID string, kind media.Kind) error {
	f.removed = append(f.removed, publicID)
	return nil
}

func newTestService() (*Service, *fakeStore) {
	store := &fakeStore{}
	return &Service{Repo: NewMemoryRepo(), Media: store}, store
}

func TestCreateCategoryRejectsCaseInsensitiveDuplicate(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.CreateCategory(ctx, "Backend", 0); err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}
	if _, err := svc.CreateCategory(ctx, "  backend  ", 1); !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("expected ErrDuplicateName, got %v", err)
	}
}

func TestCreateSkillRejectsDuplicateWithinCategoryOnly(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	backend, err := svc.CreateCategory(ctx, "Backend", 0)
	if err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}
	frontend, err := svc.CreateCategory(ctx, "Frontend", 1)
	if err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}

	if _, err := svc.CreateSkill(ctx, SkillInput{Name: "Go", CategoryID: backend.ID, Level: 5}, nil); err != nil {
		t.Fatalf("CreateSkill: %v", err)
	}
	if _, err := svc.CreateSkill(ctx, SkillInput{Name: "go", CategoryID: backend.ID}, nil); !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("expected ErrDuplicateName in same category, got %v", err)
	}
	// Same name in a different category is fine.
	if _, err := svc.CreateSkill(ctx, SkillInput{Name: "Go", CategoryID: frontend.ID}, nil); err != nil {
		t.Fatalf("CreateSkill in other category: %v", err)
	}
}

func TestCreateSkillUnknownCategory(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.CreateSkill(context.Background(), SkillInput{Name: "Go", CategoryID: "missing"}, nil)
	if err == nil || !strings.Contains(err.Error(), "categoryId") {
		t.Fatalf("expected categoryId field error, got %v", err)
	}
}

func TestListGroupedNestsSkillsAndKeepsEmptyCategories(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	backend, _ := svc.CreateCategory(ctx, "Backend", 1)
	tools, _ := svc.CreateCategory(ctx, "Tools", 0)
	if _, err := svc.CreateSkill(ctx, SkillInput{Name: "Go", CategoryID: backend.ID}, nil); err != nil {
		t.Fatalf("CreateSkill: %v", err)
	}

	grouped, err := svc.ListGrouped(ctx)
	if err != nil {
		t.Fatalf("ListGrouped: %v", err)
	}
	if len(grouped) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(grouped))
	}
	// Tools has the lower order and sorts first, with an empty (non-nil) list.
	if grouped[0].ID != tools.ID {
		t.Fatalf("expected %s first, got %s", tools.Name, grouped[0].Name)
	}
	if grouped[0].Skills == nil || len(grouped[0].Skills) != 0 {
		t.Fatalf("expected empty skill list, got %v", grouped[0].Skills)
	}
	if len(grouped[1].Skills) != 1 || grouped[1].Skills[0].Name != "Go" {
		t.Fatalf("expected Go under Backend, got %v", grouped[1].Skills)
	}
}

func TestDeleteCategoryRefusedWhileInUse(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	cat, _ := svc.CreateCategory(ctx, "Backend", 0)
	sk, err := svc.CreateSkill(ctx, SkillInput{Name: "Go", CategoryID: cat.ID}, nil)
	if err != nil {
		t.Fatalf("CreateSkill: %v", err)
	}

	if err := svc.DeleteCategory(ctx, cat.ID); !errors.Is(err, ErrCategoryInUse) {
		t.Fatalf("expected ErrCategoryInUse, got %v", err)
	}
	if err := svc.DeleteSkill(ctx, sk.ID); err != nil {
		t.Fatalf("DeleteSkill: %v", err)
	}
	if err := svc.DeleteCategory(ctx, cat.ID); err != nil {
		t.Fatalf("DeleteCategory after emptying: %v", err)
	}
}

func TestUpdateSkillReplacesIcon(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()

	cat, _ := svc.CreateCategory(ctx, "Backend", 0)
	sk, err := svc.CreateSkill(ctx, SkillInput{Name: "Go", CategoryID: cat.ID},
		&media.File{Name: "go.png", Reader: strings.NewReader("icon")})
	if err != nil {
		t.Fatalf("CreateSkill: %v", err)
	}
	oldID := sk.Icon.PublicID
	if oldID == "" {
		t.Fatalf("expected uploaded icon")
	}

	updated, err := svc.UpdateSkill(ctx, sk.ID, SkillUpdate{},
		&media.File{Name: "go2.png", Reader: strings.NewReader("icon2")})
	if err != nil {
		t.Fatalf("UpdateSkill: %v", err)
	}
	if updated.Icon.PublicID == oldID {
		t.Fatalf("expected a new icon asset")
	}
	if len(store.removed) != 1 || store.removed[0] != oldID {
		t.Fatalf("expected old icon removed, got %v", store.removed)
	}
}

func TestReorderSkillsReportsFailedPairs(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	cat, _ := svc.CreateCategory(ctx, "Backend", 0)
	sk, _ := svc.CreateSkill(ctx, SkillInput{Name: "Go", CategoryID: cat.ID}, nil)

	failed := svc.ReorderSkills(ctx, []OrderPair{
		{ID: sk.ID, Order: 3},
		{ID: "missing", Order: 1},
	})
	if len(failed) != 1 {
		t.Fatalf("expected 1 failed pair, got %v", failed)
	}
	if _, ok := failed["missing"]; !ok {
		t.Fatalf("expected missing id reported, got %v", failed)
	}

	got, err := svc.GetSkill(ctx, sk.ID)
	if err != nil {
		t.Fatalf("GetSkill: %v", err)
	}
	if got.Order != 3 {
		t.Fatalf("expected order 3 applied, got %d", got.Order)
	}
}
