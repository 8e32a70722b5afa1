package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ghprofile/internal/config"
	"ghprofile/internal/github"
)

const octocatJSON = `{"login":"octocat","name":"The Octocat","avatar_url":"https://avatars.example/octocat.png","public_repos":8,"followers":21000,"following":9}`

// browser replays cookies between requests like a real client would.
type browser struct {
	t       *testing.T
	srv     *Server
	cookies map[string]*http.Cookie
}

func (b *browser) do(req *http.Request) (*http.Response, string) {
	b.t.Helper()
	for _, c := range b.cookies {
		req.AddCookie(c)
	}
	resp, err := b.srv.App.Test(req)
	require.NoError(b.t, err)
	for _, c := range resp.Cookies() {
		b.cookies[c.Name] = c
	}
	body, _ := io.ReadAll(resp.Body)
	return resp, string(body)
}

func (b *browser) form(path string, values url.Values, htmx bool) (*http.Response, string) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	return b.do(req)
}

func (b *browser) get(path string) (*http.Response, string) {
	return b.do(httptest.NewRequest(http.MethodGet, path, nil))
}

func testConfig() *config.Config {
	return &config.Config{
		Env:                "development",
		SessionSecret:      "test-secret-that-is-long-enough-for-production",
		SessionIdle:        time.Hour,
		RateLimitPerMinute: 1000,
		SiteTitle:          "Profile Lookup",
		Messages:           config.DefaultMessages(),
	}
}

func newTestServer(t *testing.T, ping func(ctx context.Context) error) (*browser, *prometheus.Registry) {
	t.Helper()

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/users/octocat":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(octocatJSON))
		case "/users/broken":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message":"Not Found"}`))
		}
	}))
	t.Cleanup(upstream.Close)

	reg := prometheus.NewRegistry()
	srv := New(testConfig(), nil)
	srv.RegisterRoutes(Dependencies{
		Fetcher:  github.NewClient(github.Config{BaseURL: upstream.URL}, upstream.Client()),
		Registry: reg,
		Ping:     ping,
	})

	return &browser{t: t, srv: srv, cookies: map[string]*http.Cookie{}}, reg
}

func TestIndex_EmptyState(t *testing.T) {
	b, _ := newTestServer(t, nil)

	resp, body := b.get("/")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "<title>Profile Lookup</title>")
	assert.Contains(t, body, "no profile found")
	assert.Contains(t, body, `data-icon="alert-outline"`)
	assert.NotContains(t, body, "toast-error")
	assert.Contains(t, body, ".avatar { width: 200px; height: 200px; border-radius: 50%;")
}

func TestSearch_HTMXSuccess(t *testing.T) {
	b, _ := newTestServer(t, nil)

	resp, body := b.form("/search", url.Values{"username": {"octocat"}}, true)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `id="screen"`)
	assert.Contains(t, body, "The Octocat")
	assert.Contains(t, body, "https://avatars.example/octocat.png")
	assert.Contains(t, body, `class="avatar"`)
	assert.Contains(t, body, `width="200" height="200"`)
	assert.Contains(t, body, "Repositories: 8")
	assert.Contains(t, body, "Followers: 21000")
	assert.Contains(t, body, "Following: 9")
	assert.NotContains(t, body, "<html")
	assert.Contains(t, body, `value=""`, "input is cleared after the lookup")
}

func TestSearch_UsesInputFromKeystrokes(t *testing.T) {
	b, _ := newTestServer(t, nil)

	resp, _ := b.form("/input", url.Values{"username": {"octo"}}, true)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp, _ = b.form("/input", url.Values{"username": {"octocat"}}, true)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	_, body := b.form("/search", url.Values{}, true)
	assert.Contains(t, body, "The Octocat")
}

func TestSearch_NotFoundKeepsProfile(t *testing.T) {
	b, _ := newTestServer(t, nil)

	b.form("/search", url.Values{"username": {"octocat"}}, true)
	_, body := b.form("/search", url.Values{"username": {"ghost"}}, true)

	assert.Contains(t, body, "toast-error")
	assert.Contains(t, body, "user not found")
	assert.Contains(t, body, "The Octocat", "previous profile stays visible")
}

func TestSearch_UpstreamFailure(t *testing.T) {
	b, _ := newTestServer(t, nil)

	_, body := b.form("/search", url.Values{"username": {"broken"}}, true)
	assert.Contains(t, body, "failed to fetch profile")
	assert.Contains(t, body, "no profile found")
}

func TestSearch_EmptyInputRedirectsWithToast(t *testing.T) {
	b, _ := newTestServer(t, nil)

	resp, _ := b.form("/search", url.Values{"username": {"   "}}, false)
	assert.True(t, resp.StatusCode >= 300 && resp.StatusCode < 400, "expected redirect, got %d", resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))

	_, body := b.get("/")
	assert.Contains(t, body, "toast-info")
	assert.Contains(t, body, "enter a username before searching")

	// toasts are shown once
	_, body = b.get("/")
	assert.NotContains(t, body, "enter a username before searching")
}

func TestSessionsDoNotShareScreens(t *testing.T) {
	b, _ := newTestServer(t, nil)
	b.form("/search", url.Values{"username": {"octocat"}}, true)

	other := &browser{t: t, srv: b.srv, cookies: map[string]*http.Cookie{}}
	_, body := other.get("/")
	assert.Contains(t, body, "no profile found")
	assert.NotContains(t, body, "The Octocat")
	assert.Equal(t, 2, b.srv.Screens.Len())
}

func TestAPI_LookupAndShow(t *testing.T) {
	b, _ := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/lookup", strings.NewReader(`{"username":"octocat"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, body := b.do(req)
	require.Equal(t, http.StatusOK, resp.StatusCode, body)

	var got struct {
		Status string `json:"status"`
		Data   struct {
			Outcome string `json:"outcome"`
			Input   string `json:"input"`
			View    struct {
				Empty  bool   `json:"empty"`
				Name   string `json:"name"`
				Badges []struct {
					Label string `json:"label"`
					Value int    `json:"value"`
				} `json:"badges"`
			} `json:"view"`
			Notifications []json.RawMessage `json:"notifications"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &got))
	assert.Equal(t, "ok", got.Status)
	assert.Equal(t, "success", got.Data.Outcome)
	assert.Empty(t, got.Data.Input)
	assert.False(t, got.Data.View.Empty)
	assert.Equal(t, "The Octocat", got.Data.View.Name)
	require.Len(t, got.Data.View.Badges, 3)
	assert.Equal(t, "Repositories", got.Data.View.Badges[0].Label)
	assert.Equal(t, 8, got.Data.View.Badges[0].Value)
	assert.Empty(t, got.Data.Notifications)

	_, body = b.get("/api/profile")
	assert.Contains(t, body, `"name":"The Octocat"`)
}

func TestAPI_LookupNotFound(t *testing.T) {
	b, _ := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/lookup", strings.NewReader(`{"username":"ghost"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, body := b.do(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `"outcome":"not_found"`)
	assert.Contains(t, body, `"class":"toast-error"`)
	assert.Contains(t, body, `"empty":true`)
}

func TestAPI_LookupInvalidBody(t *testing.T) {
	b, _ := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/lookup", strings.NewReader(`{nope`))
	req.Header.Set("Content-Type", "application/json")
	resp, body := b.do(req)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body, `"status":"error"`)
}

func TestProbes(t *testing.T) {
	b, _ := newTestServer(t, nil)

	resp, _ := b.get("/healthz")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp, _ = b.get("/readyz")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	down, _ := newTestServer(t, func(ctx context.Context) error { return errors.New("connection refused") })
	resp, body := down.get("/readyz")
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Contains(t, body, "session store unavailable")
}

func TestMetricsEndpoint(t *testing.T) {
	b, _ := newTestServer(t, nil)
	b.form("/search", url.Values{"username": {"octocat"}}, true)

	resp, body := b.get("/metrics")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `ghprofile_lookups_total{outcome="success"} 1`)
	assert.Contains(t, body, "ghprofile_active_screens 1")
}
