package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/fang"
	"github.com/mark3labs/ghstatus/internal/config"
	"github.com/mark3labs/ghstatus/internal/github"
	"github.com/mark3labs/ghstatus/internal/logger"
	"github.com/mark3labs/ghstatus/internal/mcpserver"
	"github.com/spf13/cobra"
)

// Version set via ldflags during build
var version = "dev"

var mcpFlags struct {
	httpAddr string
}

func main() {
	defer func() { _ = logger.Close() }()

	if err := fang.Execute(context.Background(), newRootCmd(), fang.WithVersion(version), fang.WithoutManpage(), fang.WithoutCompletions()); err != nil {
		logger.Error("Command execution failed: %v", err)
		_ = logger.Close()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status-mcp",
		Short: "Serve the GitHub status check and greeting as MCP tools",
		Long: `Serve the GitHub status check and greeting as MCP tools.

By default the server speaks MCP over stdio. Use --http to serve streamable
HTTP on the given address instead; the endpoint is /mcp.

Tools:
  check-github-user  look up an account (username, optional token)
  greet              respond to a greeting message`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runServe,
	}
	config.RegisterFlags(cmd.Flags())
	cmd.Flags().StringVar(&mcpFlags.httpAddr, "http", "", "Serve streamable HTTP on this address (e.g. 127.0.0.1:8808) instead of stdio")
	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Configure(cfg.LogLevel, cfg.LogFile); err != nil {
		return fmt.Errorf("failed to configure logging: %w", err)
	}

	srv := mcpserver.New(github.ClientConfig{
		BaseURL:   cfg.APIURL,
		UserAgent: cfg.UserAgent,
	}, &http.Client{Timeout: cfg.Timeout}, version)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if mcpFlags.httpAddr == "" {
		return srv.ServeStdio(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
	}

	if _, err := srv.Start(mcpFlags.httpAddr); err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "MCP server listening on %s\n", srv.URL())

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Stop(shutdownCtx)
}
