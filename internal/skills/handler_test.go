package skills_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
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

func TestSkillsCategoryAndSkillFlow(t *testing.T) {
	router, token := buildApp(t)

	// Create a category as admin.
	body := bytes.NewBufferString(`{"name":"Backend","order":1}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/skills/categories", body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}
	var cat struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&cat); err != nil {
		t.Fatalf("decode category: %v", err)
	}

	// Create a skill with an icon in that category.
	form := &bytes.Buffer{}
	writer := multipart.NewWriter(form)
	_ = writer.WriteField("name", "Go")
	_ = writer.WriteField("categoryId", cat.ID)
	_ = writer.WriteField("level", "5")
	icon, err := writer.CreateFormFile("icon", "go.png")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := icon.Write([]byte("png bytes")); err != nil {
		t.Fatalf("write icon: %v", err)
	}
	_ = writer.Close()

	req = httptest.NewRequest(http.MethodPost, "/api/v1/skills", form)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}
	var sk struct {
		ID   string `json:"id"`
		Icon struct {
			URL      string `json:"url"`
			PublicID string `json:"publicId"`
		} `json:"icon"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&sk); err != nil {
		t.Fatalf("decode skill: %v", err)
	}
	if sk.Icon.URL == "" || sk.Icon.PublicID == "" {
		t.Fatalf("expected hosted icon, got %+v", sk.Icon)
	}

	// The public grouped listing shows the category with its skill.
	req = httptest.NewRequest(http.MethodGet, "/api/v1/skills", nil)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var grouped []struct {
		ID     string `json:"id"`
		Skills []struct {
			Name string `json:"name"`
		} `json:"skills"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&grouped); err != nil {
		t.Fatalf("decode grouped: %v", err)
	}
	if len(grouped) != 1 || len(grouped[0].Skills) != 1 || grouped[0].Skills[0].Name != "Go" {
		t.Fatalf("unexpected grouped listing: %+v", grouped)
	}

	// Deleting the category while it holds a skill is refused.
	req = httptest.NewRequest(http.MethodDelete, "/api/v1/skills/categories/"+cat.ID, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestSkillsMutationsRequireToken(t *testing.T) {
	router, _ := buildApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/skills/categories",
		strings.NewReader(`{"name":"Backend"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
}

func TestSkillsDuplicateCategoryConflict(t *testing.T) {
	router, token := buildApp(t)

	create := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/skills/categories",
			strings.NewReader(`{"name":"backend"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		return resp
	}

	if resp := create(); resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.Code)
	}
	if resp := create(); resp.Code != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate, got %d", resp.Code)
	}
}
