package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/shared/auth"
)

func adminRouter(secret []byte) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequireAdmin(secret))
	router.GET("/admin", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"admin": AdminEmailFromContext(c)})
	})
	return router
}

func TestRequireAdminRejectsMissingHeader(t *testing.T) {
	router := adminRouter([]byte("secret"))

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
}

func TestRequireAdminRejectsForgedToken(t *testing.T) {
	router := adminRouter([]byte("secret"))

	token, err := auth.Sign([]byte("other-secret"), "admin@example.com", "", time.Hour)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
}

func TestRequireAdminAcceptsValidTokenAndSetsIdentity(t *testing.T) {
	secret := []byte("secret")
	router := adminRouter(secret)

	token, err := auth.Sign(secret, "admin@example.com", "Admin", time.Hour)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if body := resp.Body.String(); !strings.Contains(body, "admin@example.com") {
		t.Fatalf("expected admin identity in response, got %s", body)
	}
}

func TestRequireAdminAllowsPreflight(t *testing.T) {
	router := adminRouter([]byte("secret"))
	router.OPTIONS("/admin", func(c *gin.Context) {})

	req := httptest.NewRequest(http.MethodOptions, "/admin", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.Code)
	}
}
