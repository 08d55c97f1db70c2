package main

import (
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/charmbracelet/colorprofile"
	"github.com/mark3labs/ghstatus/internal/config"
	"github.com/mark3labs/ghstatus/internal/github"
	"github.com/mark3labs/ghstatus/internal/logger"
	"github.com/mark3labs/ghstatus/internal/report"
	"github.com/mark3labs/ghstatus/internal/status"
	"github.com/spf13/cobra"
)

const programName = "status-checker"

var (
	// ErrMissingUsername is returned when no username argument is given.
	ErrMissingUsername = errors.New("a GitHub username is required")
	// ErrLookupFailed is returned when the account could not be fetched.
	ErrLookupFailed = errors.New("API check failed")
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   programName + " <username> [github_token]",
		Short: "Check whether a GitHub account has Pro features",
		Long: `Check whether a GitHub account has Pro features.

Looks up the account once via the GitHub REST API and prints its type, plan
and public stats, followed by instructions for confirming the plan manually.

GitHub rate limits anonymous requests, and plan details are usually only
visible to the account owner. Pass a personal access token as the second
argument for best results.`,
		Example: `  status-checker octocat
  status-checker yourname ghp_yourTokenHere
  status-checker octocat -o json`,
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runCheck,
	}
	config.RegisterFlags(cmd.Flags())
	config.RegisterOutputFlag(cmd.Flags())
	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	stdout := colorprofile.NewWriter(cmd.OutOrStdout(), os.Environ())

	if len(args) == 0 {
		r := report.New(stdout, nil)
		r.Usage(programName)
		r.ManualInstructions()
		return ErrMissingUsername
	}

	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Configure(cfg.LogLevel, cfg.LogFile); err != nil {
		return fmt.Errorf("failed to configure logging: %w", err)
	}

	username := args[0]
	var token string
	if len(args) > 1 {
		token = args[1]
	}

	// Structured output keeps stdout to the document alone.
	out := report.New(stdout, nil)
	notes := out
	if cfg.Structured() {
		notes = report.New(colorprofile.NewWriter(cmd.ErrOrStderr(), os.Environ()), nil)
	}

	client := github.NewClient(github.ClientConfig{
		BaseURL:   cfg.APIURL,
		Token:     token,
		UserAgent: cfg.UserAgent,
	}, &http.Client{Timeout: cfg.Timeout})

	notes.Checking(username)

	info := status.NewChecker(client, notes).Check(cmd.Context(), username)
	if info == nil {
		notes.CheckFailed()
		notes.ManualInstructions()
		return ErrLookupFailed
	}

	switch cfg.Output {
	case config.OutputJSON:
		err = out.JSON(info)
	case config.OutputYAML:
		err = out.YAML(info)
	default:
		out.Summary(info)
		out.Verdict(info)
	}
	if err != nil {
		return err
	}

	notes.ManualInstructions()
	return nil
}
