package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"ghprofile/internal/validation"
)

const (
	// DefaultBaseURL is the public REST endpoint.
	DefaultBaseURL = "https://api.github.com"
	// DefaultAPIVersion is sent as X-GitHub-Api-Version.
	DefaultAPIVersion = "2022-11-28"

	maxBodyBytes  = 1 << 20
	maxErrorBytes = 200
)

// HTTPClient interface for HTTP operations (allows mocking in tests).
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config holds client configuration.
type Config struct {
	BaseURL    string
	APIVersion string
	UserAgent  string
}

// Client reads public user profiles from the GitHub REST API.
// It never authenticates and never retries.
type Client struct {
	baseURL    string
	apiVersion string
	userAgent  string
	httpClient HTTPClient
}

// NewClient creates a new GitHub client.
func NewClient(cfg Config, httpClient HTTPClient) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	apiVersion := cfg.APIVersion
	if apiVersion == "" {
		apiVersion = DefaultAPIVersion
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		baseURL:    baseURL,
		apiVersion: apiVersion,
		userAgent:  cfg.UserAgent,
		httpClient: httpClient,
	}
}

// User is the subset of the /users/{username} payload the screen needs.
type User struct {
	Login       string
	Name        *string
	AvatarURL   string
	PublicRepos int
	Followers   int
	Following   int
}

// GetUser fetches a single public profile.
// Returns ErrUserNotFound for 404, *StatusError for other non-2xx responses
// and ErrMalformedResponse when the body cannot be used.
func (c *Client) GetUser(ctx context.Context, username string) (*User, error) {
	endpoint := fmt.Sprintf("%s/users/%s", c.baseURL, url.PathEscape(username))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("X-GitHub-Api-Version", c.apiVersion)
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%s: %w", username, ErrUserNotFound)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBytes))
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var payload githubUser
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	return payload.toUser()
}

// GitHub API response type. Required fields are pointers so absence is detectable.
type githubUser struct {
	Login       string  `json:"login"`
	Name        *string `json:"name"`
	AvatarURL   *string `json:"avatar_url"`
	PublicRepos *int    `json:"public_repos"`
	Followers   *int    `json:"followers"`
	Following   *int    `json:"following"`
}

func (g githubUser) toUser() (*User, error) {
	switch {
	case g.AvatarURL == nil:
		return nil, fmt.Errorf("%w: missing avatar_url", ErrMalformedResponse)
	case g.PublicRepos == nil || g.Followers == nil || g.Following == nil:
		return nil, fmt.Errorf("%w: missing counters", ErrMalformedResponse)
	case *g.PublicRepos < 0 || *g.Followers < 0 || *g.Following < 0:
		return nil, fmt.Errorf("%w: negative counter", ErrMalformedResponse)
	}
	if ok, msg := validation.ValidateURL(*g.AvatarURL); !ok {
		return nil, fmt.Errorf("%w: avatar_url: %s", ErrMalformedResponse, msg)
	}

	return &User{
		Login:       g.Login,
		Name:        g.Name,
		AvatarURL:   *g.AvatarURL,
		PublicRepos: *g.PublicRepos,
		Followers:   *g.Followers,
		Following:   *g.Following,
	}, nil
}
