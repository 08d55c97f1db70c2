package github

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mark3labs/ghstatus/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockHTTPClient is a test double for HTTPClient.
type mockHTTPClient struct {
	doFunc func(req *http.Request) (*http.Response, error)
}

func (m *mockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	return m.doFunc(req)
}

func newTestServer(t *testing.T, status int, body string, check func(r *http.Request)) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if check != nil {
			check(r)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

const octocatBody = `{
	"login": "octocat",
	"name": "The Octocat",
	"type": "User",
	"plan": {"name": "pro", "space": 976562499},
	"public_repos": 8,
	"followers": 9001,
	"created_at": "2011-01-25T18:44:36Z"
}`

func TestGetUser_Success(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, octocatBody, func(r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/users/octocat", r.URL.Path)
		assert.Equal(t, DefaultUserAgent, r.Header.Get("User-Agent"))
		assert.Empty(t, r.Header.Get("Authorization"))
	})

	client := NewClient(ClientConfig{BaseURL: srv.URL}, srv.Client())
	info, err := client.GetUser(context.Background(), "octocat")
	require.NoError(t, err)

	require.Equal(t, &domain.UserInfo{
		Username:    "octocat",
		Name:        "The Octocat",
		AccountType: "User",
		Plan:        "pro",
		PublicRepos: 8,
		Followers:   9001,
		CreatedAt:   "2011-01-25T18:44:36Z",
	}, info)
}

func TestGetUser_AcceptsAny2xx(t *testing.T) {
	for _, status := range []int{http.StatusCreated, http.StatusNonAuthoritativeInfo} {
		srv := newTestServer(t, status, octocatBody, nil)
		client := NewClient(ClientConfig{BaseURL: srv.URL}, srv.Client())

		info, err := client.GetUser(context.Background(), "octocat")
		require.NoError(t, err, "status %d", status)
		require.Equal(t, "octocat", info.Username)
	}
}

func TestGetUser_SendsToken(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, octocatBody, func(r *http.Request) {
		assert.Equal(t, "Bearer ghp_secret", r.Header.Get("Authorization"))
		assert.Equal(t, "custom-agent", r.Header.Get("User-Agent"))
		assert.Equal(t, "application/vnd.github+json", r.Header.Get("Accept"))
	})

	client := NewClient(ClientConfig{BaseURL: srv.URL + "/", Token: "ghp_secret", UserAgent: "custom-agent"}, srv.Client())
	_, err := client.GetUser(context.Background(), "octocat")
	require.NoError(t, err)
}

func TestGetUser_PlanPlaceholder(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"plan null", `{"login":"a","plan":null}`, domain.PlanPlaceholder},
		{"plan absent", `{"login":"a"}`, domain.PlanPlaceholder},
		{"plan without name", `{"login":"a","plan":{}}`, domain.PlanPlaceholder},
		{"plan name null", `{"login":"a","plan":{"name":null}}`, domain.PlanPlaceholder},
		{"plan free", `{"login":"a","plan":{"name":"free"}}`, "free"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, http.StatusOK, tt.body, nil)
			client := NewClient(ClientConfig{BaseURL: srv.URL}, srv.Client())

			info, err := client.GetUser(context.Background(), "a")
			require.NoError(t, err)
			require.Equal(t, tt.want, info.Plan)
		})
	}
}

func TestGetUser_NameNull(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, `{"login":"ghost","name":null,"type":"User"}`, nil)
	client := NewClient(ClientConfig{BaseURL: srv.URL}, srv.Client())

	info, err := client.GetUser(context.Background(), "ghost")
	require.NoError(t, err)
	require.Empty(t, info.Name)
	require.Equal(t, "ghost", info.Username)
}

func TestGetUser_StatusErrors(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		wantKind Kind
		sentinel error
	}{
		{"not found", http.StatusNotFound, KindNotFound, ErrNotFound},
		{"forbidden", http.StatusForbidden, KindForbidden, ErrForbidden},
		{"server error", http.StatusInternalServerError, KindHTTPStatus, nil},
		{"unauthorized", http.StatusUnauthorized, KindHTTPStatus, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, tt.status, `{"message":"nope"}`, nil)
			client := NewClient(ClientConfig{BaseURL: srv.URL}, srv.Client())

			info, err := client.GetUser(context.Background(), "someone")
			require.Nil(t, info)
			require.Error(t, err)

			var lerr *LookupError
			require.True(t, errors.As(err, &lerr))
			require.Equal(t, tt.wantKind, lerr.Kind)
			require.Equal(t, tt.status, lerr.StatusCode)
			require.Equal(t, http.StatusText(tt.status), lerr.Reason)
			require.Equal(t, tt.wantKind, KindOf(err))
			if tt.sentinel != nil {
				require.ErrorIs(t, err, tt.sentinel)
			} else {
				require.NotErrorIs(t, err, ErrNotFound)
				require.NotErrorIs(t, err, ErrForbidden)
			}
		})
	}
}

func TestGetUser_ForbiddenRateLimitHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-RateLimit-Remaining", "0")
		w.Header().Set("X-RateLimit-Reset", "1700000000")
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{BaseURL: srv.URL}, srv.Client())
	_, err := client.GetUser(context.Background(), "octocat")

	var lerr *LookupError
	require.ErrorAs(t, err, &lerr)
	require.Equal(t, "0", lerr.RateLimitRemaining)
	require.Equal(t, "1700000000", lerr.RateLimitReset)
}

func TestGetUser_NetworkError(t *testing.T) {
	transportErr := errors.New("connection refused")
	mockHTTP := &mockHTTPClient{
		doFunc: func(req *http.Request) (*http.Response, error) {
			return nil, transportErr
		},
	}

	client := NewClient(ClientConfig{}, mockHTTP)
	info, err := client.GetUser(context.Background(), "octocat")
	require.Nil(t, info)

	var lerr *LookupError
	require.ErrorAs(t, err, &lerr)
	require.Equal(t, KindNetwork, lerr.Kind)
	require.Equal(t, "connection refused", lerr.Reason)
	require.ErrorIs(t, err, transportErr)
}

func TestGetUser_NetworkErrorFromTransport(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := NewClient(ClientConfig{BaseURL: url}, &http.Client{})
	_, err := client.GetUser(context.Background(), "octocat")
	require.Equal(t, KindNetwork, KindOf(err))
}

func TestGetUser_DecodeError(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, `not json`, nil)
	client := NewClient(ClientConfig{BaseURL: srv.URL}, srv.Client())

	info, err := client.GetUser(context.Background(), "octocat")
	require.Nil(t, info)
	require.Equal(t, KindUnexpected, KindOf(err))
	require.Contains(t, err.Error(), "failed to decode response")
}

func TestGetUser_EscapesUsername(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, `{"login":"a b"}`, func(r *http.Request) {
		assert.Equal(t, "/users/a%20b", r.URL.EscapedPath())
	})
	client := NewClient(ClientConfig{BaseURL: srv.URL}, srv.Client())

	_, err := client.GetUser(context.Background(), "a b")
	require.NoError(t, err)
}

func TestNewClient_Defaults(t *testing.T) {
	client := NewClient(ClientConfig{}, nil)
	require.Equal(t, DefaultBaseURL, client.baseURL)
	require.Equal(t, DefaultUserAgent, client.userAgent)
	require.Equal(t, http.DefaultClient, client.httpClient)
}

func TestKindOf_NonLookupError(t *testing.T) {
	require.Equal(t, KindUnexpected, KindOf(errors.New("boom")))
}
