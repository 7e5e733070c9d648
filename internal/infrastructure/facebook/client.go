package facebook

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"cleanfee.backend/internal/domain/entities"
	domainerrors "cleanfee.backend/internal/domain/errors"
)

const defaultGraphURL = "https://graph.facebook.com/v18.0"

// Client talks to the Facebook Graph API: the OAuth code exchange and
// profile fetch for the wizard pre-fill, plus the page pass-through
// endpoints. Every call is a single bounded request, never retried.
type Client struct {
	graphURL    string
	appID       string
	appSecret   string
	redirectURI string
	pageID      string
	pageToken   string
	httpClient  *http.Client
}

// Config holds the Graph API credentials
type Config struct {
	GraphURL    string
	AppID       string
	AppSecret   string
	RedirectURI string
	PageID      string
	PageToken   string
	Timeout     time.Duration
}

// NewClient creates a new Graph API client
func NewClient(cfg Config) *Client {
	graphURL := strings.TrimSuffix(cfg.GraphURL, "/")
	if graphURL == "" {
		graphURL = defaultGraphURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &Client{
		graphURL:    graphURL,
		appID:       cfg.AppID,
		appSecret:   cfg.AppSecret,
		redirectURI: cfg.RedirectURI,
		pageID:      cfg.PageID,
		pageToken:   cfg.PageToken,
		httpClient:  &http.Client{Timeout: timeout},
	}
}

// LoginConfigured reports whether the OAuth app credentials are set
func (c *Client) LoginConfigured() bool {
	return c.appID != "" && c.appSecret != "" && c.redirectURI != ""
}

// PageConfigured reports whether the page credentials are set
func (c *Client) PageConfigured() bool {
	return c.pageID != "" && c.pageToken != ""
}

// BuildAuthorizationURL constructs the Facebook login dialog URL.
// The state value is the caller's anti-forgery token.
func (c *Client) BuildAuthorizationURL(state string, scopes []string) string {
	params := url.Values{}
	params.Set("client_id", c.appID)
	params.Set("redirect_uri", c.redirectURI)
	params.Set("state", state)
	params.Set("response_type", "code")
	if len(scopes) > 0 {
		params.Set("scope", strings.Join(scopes, ","))
	}
	return "https://www.facebook.com/v18.0/dialog/oauth?" + params.Encode()
}

// ExchangeCode exchanges a one-time authorization code for an access
// token. Transport failures (including the timeout) surface as
// ErrNetwork; a non-200 status or malformed body as ErrProvider.
func (c *Client) ExchangeCode(ctx context.Context, code string) (*entities.OAuthToken, error) {
	params := url.Values{}
	params.Set("client_id", c.appID)
	params.Set("client_secret", c.appSecret)
	params.Set("redirect_uri", c.redirectURI)
	params.Set("code", code)

	var body struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := c.getJSON(ctx, c.graphURL+"/oauth/access_token?"+params.Encode(), &body); err != nil {
		return nil, err
	}
	if body.AccessToken == "" {
		return nil, fmt.Errorf("%w: empty access token", domainerrors.ErrProvider)
	}

	token := &entities.OAuthToken{
		AccessToken: body.AccessToken,
		TokenType:   body.TokenType,
	}
	if body.ExpiresIn > 0 {
		token.ExpiresAt = time.Now().Add(time.Duration(body.ExpiresIn) * time.Second)
	}
	return token, nil
}

// FetchProfile fetches the profile fields for the token. The token is
// single-use for this flow: no caching, no refresh.
func (c *Client) FetchProfile(ctx context.Context, token *entities.OAuthToken) (*entities.SocialProfile, error) {
	params := url.Values{}
	params.Set("access_token", token.AccessToken)
	params.Set("fields", "id,name,email,first_name,last_name,picture")

	var body struct {
		ID        string `json:"id"`
		Name      string `json:"name"`
		Email     string `json:"email"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Picture   struct {
			Data struct {
				URL string `json:"url"`
			} `json:"data"`
		} `json:"picture"`
	}
	if err := c.getJSON(ctx, c.graphURL+"/me?"+params.Encode(), &body); err != nil {
		return nil, err
	}
	if body.ID == "" {
		return nil, fmt.Errorf("%w: profile missing id", domainerrors.ErrProvider)
	}

	return &entities.SocialProfile{
		ID:         body.ID,
		Name:       body.Name,
		Email:      body.Email,
		FirstName:  body.FirstName,
		LastName:   body.LastName,
		PictureURL: body.Picture.Data.URL,
	}, nil
}

// GetPageInfo returns page details, or nil when not configured
func (c *Client) GetPageInfo(ctx context.Context) (map[string]interface{}, error) {
	if !c.PageConfigured() {
		return nil, nil
	}
	params := url.Values{}
	params.Set("access_token", c.pageToken)
	params.Set("fields", "name,followers_count,fan_count,picture,about,website,phone,location")

	var body map[string]interface{}
	if err := c.getJSON(ctx, c.graphURL+"/"+c.pageID+"?"+params.Encode(), &body); err != nil {
		return nil, err
	}
	return body, nil
}

// GetInsights returns daily page metrics, or nil when not configured
func (c *Client) GetInsights(ctx context.Context) (map[string]interface{}, error) {
	if !c.PageConfigured() {
		return nil, nil
	}
	params := url.Values{}
	params.Set("access_token", c.pageToken)
	params.Set("metric", "page_impressions,page_engaged_users,page_fans,page_views_total")
	params.Set("period", "day")

	var body map[string]interface{}
	if err := c.getJSON(ctx, c.graphURL+"/"+c.pageID+"/insights?"+params.Encode(), &body); err != nil {
		return nil, err
	}
	return body, nil
}

// CreatePost publishes a message to the page feed
func (c *Client) CreatePost(ctx context.Context, message string) (map[string]interface{}, error) {
	if !c.PageConfigured() {
		return nil, domainerrors.ErrNotConfigured
	}
	params := url.Values{}
	params.Set("access_token", c.pageToken)
	params.Set("message", message)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.graphURL+"/"+c.pageID+"/feed?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	var body map[string]interface{}
	if err := c.doJSON(req, &body); err != nil {
		return nil, err
	}
	return body, nil
}

func (c *Client) getJSON(ctx context.Context, rawURL string, dest interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	return c.doJSON(req, dest)
}

func (c *Client) doJSON(req *http.Request, dest interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domainerrors.ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: graph api returned status %d: %s", domainerrors.ErrProvider, resp.StatusCode, string(respBody))
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("%w: malformed response body", domainerrors.ErrProvider)
	}
	return nil
}
