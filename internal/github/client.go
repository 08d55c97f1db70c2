// Package github reads user profiles from the GitHub REST API.
package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/mark3labs/ghstatus/internal/domain"
	"github.com/mark3labs/ghstatus/internal/logger"
)

const (
	// DefaultBaseURL is the public GitHub REST endpoint.
	DefaultBaseURL = "https://api.github.com"
	// DefaultUserAgent identifies the client; GitHub rejects requests without one.
	DefaultUserAgent = "GitHub-Status-Checker"
	apiVersion       = "2022-11-28"
)

// HTTPClient interface for HTTP operations (allows mocking in tests).
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// ClientConfig holds the connection settings for a Client.
type ClientConfig struct {
	BaseURL   string
	Token     string
	UserAgent string
}

// Client performs user lookups against the GitHub API.
type Client struct {
	baseURL    string
	token      string
	userAgent  string
	httpClient HTTPClient
}

// NewClient creates a new GitHub client. Empty config fields fall back to the defaults.
func NewClient(config ClientConfig, httpClient HTTPClient) *Client {
	baseURL := strings.TrimRight(config.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	userAgent := config.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		baseURL:    baseURL,
		token:      config.Token,
		userAgent:  userAgent,
		httpClient: httpClient,
	}
}

// GetUser fetches the public profile for username.
// Every failure is returned as a *LookupError.
func (c *Client) GetUser(ctx context.Context, username string) (*domain.UserInfo, error) {
	endpoint := fmt.Sprintf("%s/users/%s", c.baseURL, url.PathEscape(username))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &LookupError{Kind: KindUnexpected, Username: username, Err: fmt.Errorf("failed to create request: %w", err)}
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("X-GitHub-Api-Version", apiVersion)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	logger.Debug("GET %s (authenticated: %t)", endpoint, c.token != "")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &LookupError{Kind: KindNetwork, Username: username, Reason: networkReason(err), Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		lerr := statusError(username, resp)
		logger.Warn("lookup of %q failed: %v", username, lerr)
		if lerr.Kind == KindForbidden {
			logger.Debug("rate limit remaining=%q reset=%q", lerr.RateLimitRemaining, lerr.RateLimitReset)
		}
		return nil, lerr
	}

	var user githubUser
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, &LookupError{Kind: KindUnexpected, Username: username, Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	return user.toDomain(), nil
}

// networkReason unwraps the *url.Error Do returns so the message names the cause, not the URL.
func networkReason(err error) string {
	var uerr *url.Error
	if errors.As(err, &uerr) && uerr.Err != nil {
		return uerr.Err.Error()
	}
	return err.Error()
}

// GitHub API response types
type githubUser struct {
	Login       string      `json:"login"`
	Name        *string     `json:"name"`
	Type        string      `json:"type"`
	Plan        *githubPlan `json:"plan"`
	PublicRepos int         `json:"public_repos"`
	Followers   int         `json:"followers"`
	CreatedAt   string      `json:"created_at"`
}

type githubPlan struct {
	Name *string `json:"name"`
}

// toDomain flattens the payload. A missing plan and a plan without a name
// both become the placeholder.
func (u githubUser) toDomain() *domain.UserInfo {
	info := &domain.UserInfo{
		Username:    u.Login,
		AccountType: u.Type,
		Plan:        domain.PlanPlaceholder,
		PublicRepos: u.PublicRepos,
		Followers:   u.Followers,
		CreatedAt:   u.CreatedAt,
	}
	if u.Name != nil {
		info.Name = *u.Name
	}
	if u.Plan != nil && u.Plan.Name != nil {
		info.Plan = *u.Plan.Name
	}
	return info
}
