// Package client is a small Go client for the public portfolio API.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

const defaultTimeout = 15 * time.Second

// Client talks to the public read endpoints of a portfolio server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New constructs a Client. baseURL is the server root, e.g.
// "https://api.example.com"; the /api/v1 prefix is added per request.
func New(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	u := c.baseURL + "/api/v1" + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &APIError{Status: resp.StatusCode, Body: body}
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// APIError is a non-200 response from the server.
type APIError struct {
	Status int
	Body   []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api status %d: %s", e.Status, e.Body)
}

// Profile fetches the site owner's profile.
func (c *Client) Profile(ctx context.Context) (Profile, error) {
	var p Profile
	err := c.get(ctx, "/profile", nil, &p)
	return p, err
}

// Skills fetches every skill category with its skills.
func (c *Client) Skills(ctx context.Context) ([]SkillCategory, error) {
	var out []SkillCategory
	err := c.get(ctx, "/skills", nil, &out)
	return out, err
}

// Projects fetches projects. When homeOnly is true the list is filtered
// server-side to home-page projects.
func (c *Client) Projects(ctx context.Context, homeOnly bool) ([]Project, error) {
	var q url.Values
	if homeOnly {
		q = url.Values{"showOnHome": {"true"}}
	}
	var out []Project
	err := c.get(ctx, "/projects", q, &out)
	return out, err
}

// Experiences fetches the work history.
func (c *Client) Experiences(ctx context.Context) ([]Experience, error) {
	var out []Experience
	err := c.get(ctx, "/experiences", nil, &out)
	return out, err
}

// Education fetches the study history.
func (c *Client) Education(ctx context.Context) ([]Education, error) {
	var out []Education
	err := c.get(ctx, "/education", nil, &out)
	return out, err
}

// Certifications fetches professional certifications.
func (c *Client) Certifications(ctx context.Context) ([]Certification, error) {
	var out []Certification
	err := c.get(ctx, "/certifications", nil, &out)
	return out, err
}

// Awards fetches recognitions.
func (c *Client) Awards(ctx context.Context) ([]Award, error) {
	var out []Award
	err := c.get(ctx, "/awards", nil, &out)
	return out, err
}

// Articles fetches published articles only.
func (c *Client) Articles(ctx context.Context) ([]Article, error) {
	var out []Article
	err := c.get(ctx, "/articles", url.Values{"status": {"published"}}, &out)
	return out, err
}

// Testimonials fetches approved feedback.
func (c *Client) Testimonials(ctx context.Context) ([]Testimonial, error) {
	var out []Testimonial
	err := c.get(ctx, "/feedback/testimonials", nil, &out)
	return out, err
}

// FetchHome loads every landing-page section concurrently. A failing section
// stays at its zero value instead of failing the whole fetch; the first error
// seen is returned alongside the partial result so callers can log it.
func (c *Client) FetchHome(ctx context.Context) (Home, error) {
	var (
		home Home
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)

	section := func(load func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := load(); err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
		}()
	}

	section(func() error {
		p, err := c.Profile(ctx)
		if err != nil {
			return fmt.Errorf("profile: %w", err)
		}
		home.Profile = p
		return nil
	})
	section(func() error {
		v, err := c.Skills(ctx)
		if err != nil {
			return fmt.Errorf("skills: %w", err)
		}
		home.Skills = v
		return nil
	})
	section(func() error {
		v, err := c.Projects(ctx, true)
		if err != nil {
			return fmt.Errorf("projects: %w", err)
		}
		home.Projects = v
		return nil
	})
	section(func() error {
		v, err := c.Experiences(ctx)
		if err != nil {
			return fmt.Errorf("experiences: %w", err)
		}
		home.Experiences = v
		return nil
	})
	section(func() error {
		v, err := c.Education(ctx)
		if err != nil {
			return fmt.Errorf("education: %w", err)
		}
		home.Education = v
		return nil
	})
	section(func() error {
		v, err := c.Certifications(ctx)
		if err != nil {
			return fmt.Errorf("certifications: %w", err)
		}
		home.Certifications = v
		return nil
	})
	section(func() error {
		v, err := c.Awards(ctx)
		if err != nil {
			return fmt.Errorf("awards: %w", err)
		}
		home.Awards = v
		return nil
	})
	section(func() error {
		v, err := c.Articles(ctx)
		if err != nil {
			return fmt.Errorf("articles: %w", err)
		}
		home.Articles = v
		return nil
	})
	section(func() error {
		v, err := c.Testimonials(ctx)
		if err != nil {
			return fmt.Errorf("testimonials: %w", err)
		}
		home.Testimonials = v
		return nil
	})

	wg.Wait()
	if len(errs) > 0 {
		return home, errs[0]
	}
	return home, nil
}
