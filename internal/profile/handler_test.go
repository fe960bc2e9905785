package profile_test

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

func TestProfileAboutMerge(t *testing.T) {
	router, token := buildApp(t)

	form := &bytes.Buffer{}
	writer := multipart.NewWriter(form)
	_ = writer.WriteField("fullName", "Ada Lovelace")
	_ = writer.Close()

	req := httptest.NewRequest(http.MethodPut, "/api/v1/profile/about", form)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	// A second partial write keeps the earlier field.
	form = &bytes.Buffer{}
	writer = multipart.NewWriter(form)
	_ = writer.WriteField("title", "Engineer")
	_ = writer.Close()

	req = httptest.NewRequest(http.MethodPut, "/api/v1/profile/about", form)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var p struct {
		FullName string `json:"fullName"`
		Title    string `json:"title"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		t.Fatalf("decode profile: %v", err)
	}
	if p.FullName != "Ada Lovelace" || p.Title != "Engineer" {
		t.Fatalf("fields not merged: %+v", p)
	}
}

func TestProfileLogoUploadAndRemove(t *testing.T) {
	router, token := buildApp(t)

	form := &bytes.Buffer{}
	writer := multipart.NewWriter(form)
	file, err := writer.CreateFormFile("file", "logo.png")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := file.Write([]byte("png bytes")); err != nil {
		t.Fatalf("write logo: %v", err)
	}
	_ = writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/profile/upload-logo", form)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var p struct {
		Logo struct {
			URL      string `json:"url"`
			PublicID string `json:"publicId"`
		} `json:"logo"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		t.Fatalf("decode profile: %v", err)
	}
	if p.Logo.URL == "" || p.Logo.PublicID == "" {
		t.Fatalf("expected hosted logo, got %+v", p.Logo)
	}

	req = httptest.NewRequest(http.MethodDelete, "/api/v1/profile/logo", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		t.Fatalf("decode profile: %v", err)
	}
	if p.Logo.URL != "" || p.Logo.PublicID != "" {
		t.Fatalf("expected cleared logo, got %+v", p.Logo)
	}
}

func TestProfileResumeUploadRejectsNonPDF(t *testing.T) {
	router, token := buildApp(t)

	form := &bytes.Buffer{}
	writer := multipart.NewWriter(form)
	file, err := writer.CreateFormFile("file", "resume.pdf")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := file.Write([]byte("not a pdf")); err != nil {
		t.Fatalf("write resume: %v", err)
	}
	_ = writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/profile/upload-resume", form)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestProfileMutationsRequireToken(t *testing.T) {
	router, _ := buildApp(t)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/profile/about", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
}
