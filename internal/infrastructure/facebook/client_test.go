package facebook

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cleanfee.backend/internal/domain/entities"
	domainerrors "cleanfee.backend/internal/domain/errors"
)

func newTestClient(serverURL string) *Client {
	return NewClient(Config{
		GraphURL:    serverURL,
		AppID:       "app-id",
		AppSecret:   "app-secret",
		RedirectURI: "http://localhost:8501/callback",
		PageID:      "page-1",
		PageToken:   "page-token",
		Timeout:     2 * time.Second,
	})
}

func TestClient_Configured(t *testing.T) {
	assert.True(t, newTestClient("").LoginConfigured())
	assert.True(t, newTestClient("").PageConfigured())

	empty := NewClient(Config{})
	assert.False(t, empty.LoginConfigured())
	assert.False(t, empty.PageConfigured())
}

func TestClient_BuildAuthorizationURL(t *testing.T) {
	c := newTestClient("")

	raw := c.BuildAuthorizationURL("state-token", []string{"public_profile", "email"})
	parsed, err := url.Parse(raw)
	require.NoError(t, err)

	assert.Equal(t, "www.facebook.com", parsed.Host)
	q := parsed.Query()
	assert.Equal(t, "app-id", q.Get("client_id"))
	assert.Equal(t, "http://localhost:8501/callback", q.Get("redirect_uri"))
	assert.Equal(t, "state-token", q.Get("state"))
	assert.Equal(t, "code", q.Get("response_type"))
	assert.Equal(t, "public_profile,email", q.Get("scope"))

	// The app secret never appears in the login dialog URL
	assert.NotContains(t, raw, "app-secret")
}

func TestClient_ExchangeCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/oauth/access_token", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "app-id", q.Get("client_id"))
		assert.Equal(t, "app-secret", q.Get("client_secret"))
		assert.Equal(t, "one-time-code", q.Get("code"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"token-abc","token_type":"bearer","expires_in":3600}`))
	}))
	defer server.Close()

	token, err := newTestClient(server.URL).ExchangeCode(context.Background(), "one-time-code")
	require.NoError(t, err)
	assert.Equal(t, "token-abc", token.AccessToken)
	assert.Equal(t, "bearer", token.TokenType)
	assert.WithinDuration(t, time.Now().Add(time.Hour), token.ExpiresAt, time.Minute)
}

func TestClient_ExchangeCodeEmptyToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"token_type":"bearer"}`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).ExchangeCode(context.Background(), "code")
	assert.ErrorIs(t, err, domainerrors.ErrProvider)
}

func TestClient_ExchangeCodeProviderStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"Invalid verification code"}}`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).ExchangeCode(context.Background(), "expired-code")
	assert.ErrorIs(t, err, domainerrors.ErrProvider)
	assert.NotErrorIs(t, err, domainerrors.ErrNetwork)
}

func TestClient_ExchangeCodeNetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close() // connection refused from here on

	_, err := newTestClient(server.URL).ExchangeCode(context.Background(), "code")
	assert.ErrorIs(t, err, domainerrors.ErrNetwork)
}

func TestClient_ExchangeCodeMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).ExchangeCode(context.Background(), "code")
	assert.ErrorIs(t, err, domainerrors.ErrProvider)
}

func TestClient_FetchProfile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/me", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "token-abc", q.Get("access_token"))
		assert.Equal(t, "id,name,email,first_name,last_name,picture", q.Get("fields"))

		w.Write([]byte(`{
			"id": "fb-123",
			"name": "Maria Lopez",
			"email": "maria@example.com",
			"first_name": "Maria",
			"last_name": "Lopez",
			"picture": {"data": {"url": "https://graph.test/pic.jpg"}}
		}`))
	}))
	defer server.Close()

	profile, err := newTestClient(server.URL).FetchProfile(context.Background(), &entities.OAuthToken{AccessToken: "token-abc"})
	require.NoError(t, err)
	assert.Equal(t, "fb-123", profile.ID)
	assert.Equal(t, "Maria", profile.FirstName)
	assert.Equal(t, "Lopez", profile.LastName)
	assert.Equal(t, "maria@example.com", profile.Email)
	assert.Equal(t, "https://graph.test/pic.jpg", profile.PictureURL)
}

func TestClient_FetchProfileMissingID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"name": "Maria Lopez"}`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).FetchProfile(context.Background(), &entities.OAuthToken{AccessToken: "t"})
	assert.ErrorIs(t, err, domainerrors.ErrProvider)
}

func TestClient_PageEndpointsUnconfigured(t *testing.T) {
	c := NewClient(Config{AppID: "a", AppSecret: "b", RedirectURI: "c"})
	ctx := context.Background()

	info, err := c.GetPageInfo(ctx)
	require.NoError(t, err)
	assert.Nil(t, info)

	insights, err := c.GetInsights(ctx)
	require.NoError(t, err)
	assert.Nil(t, insights)

	_, err = c.CreatePost(ctx, "hello")
	assert.ErrorIs(t, err, domainerrors.ErrNotConfigured)
}

func TestClient_PageInfo(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/page-1", r.URL.Path)
		assert.Equal(t, "page-token", r.URL.Query().Get("access_token"))
		w.Write([]byte(`{"name": "CleanFee", "fan_count": 1234}`))
	}))
	defer server.Close()

	info, err := newTestClient(server.URL).GetPageInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "CleanFee", info["name"])
	assert.Equal(t, float64(1234), info["fan_count"])
}

func TestClient_CreatePost(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/page-1/feed", r.URL.Path)
		assert.Equal(t, "hello followers", r.URL.Query().Get("message"))
		w.Write([]byte(`{"id": "page-1_post-9"}`))
	}))
	defer server.Close()

	result, err := newTestClient(server.URL).CreatePost(context.Background(), "hello followers")
	require.NoError(t, err)
	assert.Equal(t, "page-1_post-9", result["id"])
}

func TestClient_TimeoutSurfacesAsNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	c := NewClient(Config{
		GraphURL:    server.URL,
		AppID:       "a",
		AppSecret:   "b",
		RedirectURI: "c",
		Timeout:     20 * time.Millisecond,
	})
	_, err := c.ExchangeCode(context.Background(), "code")
	assert.ErrorIs(t, err, domainerrors.ErrNetwork)
}
