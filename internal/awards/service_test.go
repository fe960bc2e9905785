package awards

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"portfolio-backend/internal/education"
	"portfolio-backend/internal/experiences"
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

func newTestService(t *testing.T) (*Service, experiences.Repo, education.Repo) {
	t.Helper()
	expRepo := experiences.NewMemoryRepo()
	eduRepo := education.NewMemoryRepo()
	svc := &Service{
		Repo:        NewMemoryRepo(),
		Experiences: expRepo,
		Education:   eduRepo,
		Media:       &fakeStore{},
	}
	return svc, expRepo, eduRepo
}

func seedExperience(t *testing.T, repo experiences.Repo, id string) {
	t.Helper()
	err := repo.Create(context.Background(), experiences.Experience{
		ID:         id,
		Company:    "Acme",
		Role:       "Engineer",
		StartMonth: 1,
		StartYear:  2020,
		Status:     experiences.StatusOngoing,
	})
	if err != nil {
		t.Fatalf("seed experience: %v", err)
	}
}

func TestCreateWithoutAssociationClearsID(t *testing.T) {
	svc, _, _ := newTestService(t)

	a, err := svc.Create(context.Background(), CreateInput{
		Title:        "Hackathon Winner",
		AssociatedID: "stray-id",
	}, nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if a.AssociatedType != AssociationNone || a.AssociatedID != "" {
		t.Fatalf("expected cleared association, got %+v", a)
	}
}

func TestCreateRejectsDanglingExperienceRef(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Create(context.Background(), CreateInput{
		Title:          "Employee of the Year",
		AssociatedType: AssociationExperience,
		AssociatedID:   "missing",
	}, nil)

	var fe validate.FieldErrors
	if !errors.As(err, &fe) {
		t.Fatalf("expected field errors, got %v", err)
	}
	if !strings.Contains(fe["associatedId"], "unknown experience") {
		t.Fatalf("expected unknown experience, got %v", fe)
	}
}

func TestCreateRejectsTypedAssociationWithoutID(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Create(context.Background(), CreateInput{
		Title:          "Award",
		AssociatedType: AssociationEducation,
	}, nil)

	var fe validate.FieldErrors
	if !errors.As(err, &fe) {
		t.Fatalf("expected field errors, got %v", err)
	}
	if _, ok := fe["associatedId"]; !ok {
		t.Fatalf("expected associatedId error, got %v", fe)
	}
}

func TestCreateRejectsUnknownAssociationType(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Create(context.Background(), CreateInput{
		Title:          "Award",
		AssociatedType: "project",
		AssociatedID:   "x",
	}, nil)

	var fe validate.FieldErrors
	if !errors.As(err, &fe) {
		t.Fatalf("expected field errors, got %v", err)
	}
	if _, ok := fe["associatedType"]; !ok {
		t.Fatalf("expected associatedType error, got %v", fe)
	}
}

func TestCreateAcceptsValidExperienceRef(t *testing.T) {
	svc, expRepo, _ := newTestService(t)
	seedExperience(t, expRepo, "exp-1")

	a, err := svc.Create(context.Background(), CreateInput{
		Title:          "Employee of the Year",
		AssociatedType: AssociationExperience,
		AssociatedID:   "exp-1",
	}, nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if a.AssociatedID != "exp-1" {
		t.Fatalf("expected kept reference, got %+v", a)
	}
}

func TestUpdateRevalidatesChangedAssociation(t *testing.T) {
	svc, expRepo, _ := newTestService(t)
	seedExperience(t, expRepo, "exp-1")
	ctx := context.Background()

	a, err := svc.Create(ctx, CreateInput{Title: "Award"}, nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	typ := AssociationExperience
	id := "missing"
	if _, err := svc.Update(ctx, a.ID, Update{AssociatedType: &typ, AssociatedID: &id}, nil); err == nil {
		t.Fatalf("expected dangling ref rejection on update")
	}

	id = "exp-1"
	updated, err := svc.Update(ctx, a.ID, Update{AssociatedType: &typ, AssociatedID: &id}, nil)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.AssociatedID != "exp-1" {
		t.Fatalf("expected exp-1, got %+v", updated)
	}
}

func TestListAssociationsLabels(t *testing.T) {
	svc, expRepo, eduRepo := newTestService(t)
	seedExperience(t, expRepo, "exp-1")
	err := eduRepo.Create(context.Background(), education.Education{
		ID:          "edu-1",
		Institution: "MIT",
		Degree:      "BSc",
		StartYear:   2016,
		Status:      education.StatusCompleted,
	})
	if err != nil {
		t.Fatalf("seed education: %v", err)
	}

	out, err := svc.ListAssociations(context.Background())
	if err != nil {
		t.Fatalf("ListAssociations: %v", err)
	}
	if len(out.Experiences) != 1 || out.Experiences[0].Label != "Acme (Engineer)" {
		t.Fatalf("unexpected experience options: %v", out.Experiences)
	}
	if len(out.Educations) != 1 || out.Educations[0].Label != "MIT (BSc)" {
		t.Fatalf("unexpected education options: %v", out.Educations)
	}
}
