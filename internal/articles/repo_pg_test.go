package articles

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

var articleTestColumns = []string{
	"id", "title", "summary", "content", "tags", "status", "published_at", "pinned",
	"external_url", "cover_url", "cover_public_id", "display_order",
	"created_at", "updated_at",
}

func TestPGRepoScanNullPublishedAt(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()
	rows := sqlmock.NewRows(articleTestColumns).
		AddRow("art-1", "Draft", "", "", []byte(`[]`), StatusDraft, nil, false,
			"", "", "", 0, now, now)

	mock.ExpectQuery("FROM articles WHERE id").
		WithArgs("art-1").
		WillReturnRows(rows)

	a, err := repo.GetByID(context.Background(), "art-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if a.PublishedAt != nil {
		t.Fatalf("expected nil publishedAt for draft, got %v", a.PublishedAt)
	}
}

func TestPGRepoScanPublishedAt(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()
	published := now.Add(-time.Hour)
	rows := sqlmock.NewRows(articleTestColumns).
		AddRow("art-1", "Live", "", "", []byte(`["go"]`), StatusPublished, published, true,
			"", "https://media.test/c", "c", 0, now, now)

	mock.ExpectQuery("FROM articles WHERE id").
		WithArgs("art-1").
		WillReturnRows(rows)

	a, err := repo.GetByID(context.Background(), "art-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if a.PublishedAt == nil || !a.PublishedAt.Equal(published) {
		t.Fatalf("expected publishedAt %v, got %v", published, a.PublishedAt)
	}
	if len(a.Tags) != 1 || a.Tags[0] != "go" {
		t.Fatalf("expected tags decoded, got %v", a.Tags)
	}
	if a.Cover.Kind != "image" {
		t.Fatalf("expected cover kind filled, got %q", a.Cover.Kind)
	}
}

func TestPGRepoCreateBindsNilPublishedAt(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()
	a := Article{
		ID:        "art-1",
		Title:     "Draft",
		Tags:      []string{},
		Status:    StatusDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}

	mock.ExpectExec("INSERT INTO articles").
		WithArgs(
			a.ID, a.Title, a.Summary, a.Content, []byte(`[]`), a.Status, nil, a.Pinned,
			a.ExternalURL, a.Cover.URL, a.Cover.PublicID, a.Order,
			a.CreatedAt, a.UpdatedAt,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), a); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
