// Package status runs a single account lookup and reports failures in place.
package status

import (
	"context"

	"github.com/mark3labs/ghstatus/internal/domain"
	"github.com/mark3labs/ghstatus/internal/github"
	"github.com/mark3labs/ghstatus/internal/logger"
	"github.com/mark3labs/ghstatus/internal/report"
)

// UserLookup fetches a user profile. *github.Client implements it.
type UserLookup interface {
	GetUser(ctx context.Context, username string) (*domain.UserInfo, error)
}

// Checker looks up an account and prints any failure to its report.
type Checker struct {
	lookup UserLookup
	report *report.Renderer
}

// NewChecker creates a Checker that prints failures through r.
func NewChecker(lookup UserLookup, r *report.Renderer) *Checker {
	return &Checker{lookup: lookup, report: r}
}

// Check returns the profile for username, or nil after printing why the lookup failed.
func (c *Checker) Check(ctx context.Context, username string) *domain.UserInfo {
	info, err := c.lookup.GetUser(ctx, username)
	if err != nil {
		logger.Info("check for %q failed (%s): %v", username, github.KindOf(err), err)
		c.report.Failure(err)
		return nil
	}

	logger.Info("check for %q succeeded (plan tier: %s)", username, info.Tier())
	return info
}
