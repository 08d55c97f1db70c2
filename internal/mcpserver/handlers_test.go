package mcpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mark3labs/ghstatus/internal/domain"
	"github.com/mark3labs/ghstatus/internal/github"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// extractText extracts text from CallToolResult.Content[0]
func extractText(result *mcp.CallToolResult) string {
	if len(result.Content) == 0 {
		return ""
	}
	if textContent, ok := result.Content[0].(mcp.TextContent); ok {
		return textContent.Text
	}
	return ""
}

func callRequest(name string, args map[string]any) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
}

func setupTestServer(t *testing.T, handler http.HandlerFunc) *Server {
	t.Helper()
	api := httptest.NewServer(handler)
	t.Cleanup(api.Close)
	return New(github.ClientConfig{BaseURL: api.URL}, api.Client(), "test")
}

func TestHandleCheckUser_Success(t *testing.T) {
	srv := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/octocat", r.URL.Path)
		assert.Equal(t, "Bearer ghp_tool", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"login":"octocat","type":"User","plan":{"name":"free"},"public_repos":8}`))
	})

	result, err := srv.handleCheckUser(context.Background(), callRequest("check-github-user", map[string]any{
		"username": "octocat",
		"token":    "ghp_tool",
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	var info domain.UserInfo
	require.NoError(t, json.Unmarshal([]byte(extractText(result)), &info))
	require.Equal(t, "octocat", info.Username)
	require.Equal(t, "free", info.Plan)
	require.Equal(t, 8, info.PublicRepos)
}

func TestHandleCheckUser_NotFound(t *testing.T) {
	srv := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusNotFound)
	})

	result, err := srv.handleCheckUser(context.Background(), callRequest("check-github-user", map[string]any{
		"username": "ghost",
	}))
	require.NoError(t, err)
	require.True(t, result.IsError)
	require.Equal(t, "Error: User 'ghost' not found", extractText(result))
}

func TestHandleCheckUser_Forbidden(t *testing.T) {
	srv := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	result, err := srv.handleCheckUser(context.Background(), callRequest("check-github-user", map[string]any{
		"username": "octocat",
	}))
	require.NoError(t, err)
	require.True(t, result.IsError)
	require.Contains(t, extractText(result), "Rate limit exceeded or access forbidden.")
}

func TestHandleCheckUser_MissingUsername(t *testing.T) {
	srv := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})

	for _, args := range []map[string]any{nil, {}, {"username": "  "}, {"username": 42}} {
		result, err := srv.handleCheckUser(context.Background(), callRequest("check-github-user", args))
		require.NoError(t, err)
		require.True(t, result.IsError)
	}
}

func TestHandleGreet(t *testing.T) {
	srv := New(github.ClientConfig{}, nil, "test")

	tests := []struct {
		message string
		want    string
	}{
		{"hi", "Hello! How can I help you today?"},
		{" HI ", "Hello! How can I help you today?"},
		{"hello", "Hi there!"},
	}
	for _, tt := range tests {
		result, err := srv.handleGreet(context.Background(), callRequest("greet", map[string]any{"message": tt.message}))
		require.NoError(t, err)
		require.Equal(t, tt.want, extractText(result))
	}

	result, err := srv.handleGreet(context.Background(), callRequest("greet", nil))
	require.NoError(t, err)
	require.True(t, result.IsError)
}
