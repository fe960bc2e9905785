package projects

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"portfolio-backend/internal/shared/storage/media"
)

func TestPGRepoCreateMarshalsTechnologies(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()
	p := Project{
		ID:           "proj-1",
		Title:        "App",
		Description:  "desc",
		Technologies: []string{"go", "postgres"},
		Image:        media.Asset{URL: "https://media.test/a", PublicID: "a", Kind: media.KindImage},
		Order:        2,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	mock.ExpectExec("INSERT INTO projects").
		WithArgs(
			p.ID, p.Title, p.Description, []byte(`["go","postgres"]`), p.LiveURL, p.RepoURL,
			p.Image.URL, p.Image.PublicID, p.Featured, p.ShowOnHome, p.Order,
			p.CreatedAt, p.UpdatedAt,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), p); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	mock.ExpectQuery("FROM projects WHERE id").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	if _, err := repo.GetByID(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoListScansAssetKind(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()
	columns := []string{
		"id", "title", "description", "technologies", "live_url", "repo_url",
		"image_url", "image_public_id", "featured", "show_on_home", "display_order",
		"created_at", "updated_at",
	}
	rows := sqlmock.NewRows(columns).
		AddRow("proj-1", "App", "desc", []byte(`["go"]`), "", "",
			"https://media.test/a", "a", false, true, 0, now, now).
		AddRow("proj-2", "Bare", "desc", []byte(`[]`), "", "",
			"", "", false, false, 1, now, now)

	show := true
	mock.ExpectQuery("FROM projects WHERE 1=1 AND show_on_home").
		WithArgs(show).
		WillReturnRows(rows)

	list, err := repo.List(context.Background(), Filter{ShowOnHome: &show})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(list))
	}
	if list[0].Image.Kind != media.KindImage {
		t.Fatalf("expected image kind filled on scan, got %q", list[0].Image.Kind)
	}
	if list[1].Image.Kind != "" {
		t.Fatalf("expected empty kind for empty asset, got %q", list[1].Image.Kind)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoSetOrderMissingRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	mock.ExpectExec("UPDATE projects SET display_order").
		WithArgs("missing", 5).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.SetOrder(context.Background(), "missing", 5); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
