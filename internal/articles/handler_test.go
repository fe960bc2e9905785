package articles_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/bootstrap"
	sharedauth "portfolio-backend/internal/shared/auth"
	"portfolio-backend/internal/shared/config"
)

func buildApp(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Config{
		Port:            "0",
		Env:             "dev",
		CORSAllowOrigin: []string{"http://localhost:5173"},
		JWTSecret:       "test-secret",
		MediaStoreType:  "local",
		LocalStoreDir:   t.TempDir(),
	}
	app, err := bootstrap.Build(cfg)
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}

	token, err := sharedauth.Sign([]byte(cfg.JWTSecret), "admin@example.com", "", time.Hour)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return app.Router, token
}

func createArticle(t *testing.T, router *gin.Engine, token, title string) string {
	t.Helper()

	form := &bytes.Buffer{}
	writer := multipart.NewWriter(form)
	_ = writer.WriteField("title", title)
	_ = writer.WriteField("tags", `["go","testing"]`)
	_ = writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/articles", form)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}
	var created struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode article: %v", err)
	}
	if created.Status != "draft" {
		t.Fatalf("expected draft default, got %s", created.Status)
	}
	return created.ID
}

func TestArticlesPublishToggleAndFilteredList(t *testing.T) {
	router, token := buildApp(t)

	id := createArticle(t, router, token, "Go in production")

	// Drafts stay out of the published listing.
	req := httptest.NewRequest(http.MethodGet, "/api/v1/articles?status=published", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var list []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected empty published list, got %d entries", len(list))
	}

	// Publish, then the listing picks it up with a publication time.
	req = httptest.NewRequest(http.MethodPut, "/api/v1/articles/"+id+"/toggle-status", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var toggled struct {
		Status      string  `json:"status"`
		PublishedAt *string `json:"publishedAt"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&toggled); err != nil {
		t.Fatalf("decode toggled: %v", err)
	}
	if toggled.Status != "published" || toggled.PublishedAt == nil {
		t.Fatalf("expected published with timestamp, got %+v", toggled)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/articles?status=published", nil)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected one published article, got %d", len(list))
	}
}

func TestArticlesListRejectsUnknownStatus(t *testing.T) {
	router, _ := buildApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/articles?status=archived", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestArticlesDeleteThenGone(t *testing.T) {
	router, token := buildApp(t)

	id := createArticle(t, router, token, "Short lived")

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/articles/"+id, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/articles/"+id, nil)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}
