// Package mcpserver serves the GitHub status check and the greeting over MCP.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/ghstatus/internal/github"
	"github.com/mark3labs/ghstatus/internal/greeting"
	"github.com/mark3labs/ghstatus/internal/logger"
	"github.com/mark3labs/ghstatus/internal/report"
	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerTools() {
	s.mcpServer.AddTool(
		mcp.NewTool("check-github-user",
			mcp.WithDescription("Look up a GitHub account and report its type, plan and public stats"),
			mcp.WithString("username", mcp.Required(),
				mcp.Description("GitHub login to look up"),
			),
			mcp.WithString("token",
				mcp.Description("Optional personal access token; plan details are usually only visible when authenticated"),
			),
		),
		s.handleCheckUser,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("greet",
			mcp.WithDescription("Respond to a greeting message"),
			mcp.WithString("message", mcp.Required(),
				mcp.Description("Message to respond to"),
			),
		),
		s.handleGreet,
	)
}

// handleCheckUser returns the profile as JSON, or a tool error with the status checker's message.
func (s *Server) handleCheckUser(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	if args == nil {
		return mcp.NewToolResultError("error: no arguments provided"), nil
	}

	username, ok := args["username"].(string)
	if !ok || strings.TrimSpace(username) == "" {
		return mcp.NewToolResultError("error: missing 'username' parameter"), nil
	}

	cfg := s.client
	if token, ok := args["token"].(string); ok && token != "" {
		cfg.Token = token
	}

	info, err := github.NewClient(cfg, s.httpClient).GetUser(ctx, username)
	if err != nil {
		logger.Info("check-github-user %q failed: %v", username, err)
		return mcp.NewToolResultError(strings.Join(report.FailureLines(err), "\n")), nil
	}

	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling user info: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (s *Server) handleGreet(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	message, ok := args["message"].(string)
	if !ok {
		return mcp.NewToolResultError("error: missing 'message' parameter"), nil
	}
	return mcp.NewToolResultText(greeting.Greet(message)), nil
}
