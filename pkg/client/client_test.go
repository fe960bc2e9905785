package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newPartialServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("/api/v1/profile", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(Profile{ID: "p-1", FullName: "Ada Lovelace"})
	})
	mux.HandleFunc("/api/v1/projects", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("showOnHome") != "true" {
			t.Errorf("expected showOnHome=true filter, got %q", r.URL.RawQuery)
		}
		_ = json.NewEncoder(w).Encode([]Project{{ID: "pr-1", Title: "App", ShowOnHome: true}})
	})
	mux.HandleFunc("/api/v1/articles", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("status") != "published" {
			t.Errorf("expected status=published filter, got %q", r.URL.RawQuery)
		}
		_ = json.NewEncoder(w).Encode([]Article{{ID: "a-1", Title: "Post", Status: "published"}})
	})
	mux.HandleFunc("/api/v1/skills", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"code":"internal_error"}}`, http.StatusInternalServerError)
	})
	// Everything else returns empty lists.
	mux.HandleFunc("/api/v1/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("[]"))
	})

	return httptest.NewServer(mux)
}

func TestFetchHomeDegradesFailedSections(t *testing.T) {
	server := newPartialServer(t)
	t.Cleanup(server.Close)

	c, err := New(server.URL)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	home, err := c.FetchHome(context.Background())
	if err == nil {
		t.Fatalf("expected an error from the failing skills section")
	}

	if home.Profile.FullName != "Ada Lovelace" {
		t.Fatalf("profile section lost: %+v", home.Profile)
	}
	if len(home.Projects) != 1 || home.Projects[0].Title != "App" {
		t.Fatalf("projects section lost: %+v", home.Projects)
	}
	if len(home.Articles) != 1 {
		t.Fatalf("articles section lost: %+v", home.Articles)
	}
	// The failed section stays at its zero value.
	if home.Skills != nil {
		t.Fatalf("expected zero skills section, got %+v", home.Skills)
	}
	if len(home.Experiences) != 0 || len(home.Testimonials) != 0 {
		t.Fatalf("expected empty fallback sections, got %+v", home)
	}
}

func TestNewRequiresBaseURL(t *testing.T) {
	if _, err := New("   "); err == nil {
		t.Fatalf("expected error for empty base URL")
	}
}

func TestAPIErrorSurfacesStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"code":"not_found"}}`, http.StatusNotFound)
	}))
	t.Cleanup(server.Close)

	c, err := New(server.URL)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	_, err = c.Profile(context.Background())
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.Status != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", apiErr.Status)
	}
}
