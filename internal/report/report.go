// Package report renders the status checker's terminal output.
//
// Every line is written through lipgloss styles. Wrap the destination in a
// colorprofile writer so a non-terminal receives the plain text unchanged.
package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mark3labs/ghstatus/internal/domain"
	"github.com/mark3labs/ghstatus/internal/github"
	"github.com/mark3labs/ghstatus/internal/theme"
)

const (
	ruleWidth = 70
	tokensURL = "https://github.com/settings/tokens"
)

var ruleLine = strings.Repeat("=", ruleWidth)

var proFeatures = []string{
	"Advanced code review tools",
	"3,000 GitHub Actions minutes/month",
	"2GB of GitHub Packages storage",
	"GitHub Copilot (with separate subscription)",
	"Protected branches on private repos",
	"Multiple assignees and reviewers",
	"Wiki pages for private repos",
}

// Renderer writes report sections to an output stream.
type Renderer struct {
	w io.Writer
	s *theme.Styles
}

// New creates a Renderer. A nil theme uses theme.Current().
func New(w io.Writer, t *theme.Theme) *Renderer {
	if t == nil {
		t = theme.Current()
	}
	return &Renderer{w: w, s: t.S()}
}

func (r *Renderer) line(parts ...string) {
	_, _ = fmt.Fprintln(r.w, strings.Join(parts, ""))
}

func (r *Renderer) blank() {
	_, _ = fmt.Fprintln(r.w)
}

func (r *Renderer) rule() {
	r.line(r.s.Rule.Render(ruleLine))
}

func (r *Renderer) field(label string, value any) {
	r.line(r.s.Label.Render(label+":"), " ", verbatim(r.s.Value, fmt.Sprint(value)))
}

// verbatim styles API-supplied text without layout: tabs are kept and each
// line is rendered on its own, so no line is padded to the widest.
func verbatim(style lipgloss.Style, s string) string {
	style = style.TabWidth(lipgloss.NoTabConversion)
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = style.Render(l)
		}
	}
	return strings.Join(lines, "\n")
}

// Usage prints the banner, invocation syntax and examples for program.
func (r *Renderer) Usage(program string) {
	r.rule()
	r.line(r.s.Title.Render("GitHub Pro Status Checker"))
	r.rule()
	r.blank()
	r.line("Usage: ", r.s.Command.Render(program+" <username> [github_token]"))
	r.blank()
	r.line("Examples:")
	r.line("  ", r.s.Command.Render(program+" octocat"))
	r.line("  ", r.s.Command.Render(program+" yourname ghp_yourTokenHere"))
}

// Checking announces the lookup about to run.
func (r *Renderer) Checking(username string) {
	r.line("Checking GitHub account status for: ", verbatim(r.s.Title, username))
	r.blank()
}

// Summary prints the profile fields between two rules. An empty name is omitted.
func (r *Renderer) Summary(info *domain.UserInfo) {
	r.rule()
	r.field("Username", info.Username)
	if info.Name != "" {
		r.field("Name", info.Name)
	}
	r.field("Account Type", info.AccountType)
	r.field("Plan", info.Plan)
	r.field("Public Repositories", info.PublicRepos)
	r.field("Followers", info.Followers)
	r.field("Account Created", info.CreatedAt)
	r.rule()
}

// Verdict prints what the plan name says about Pro features.
func (r *Renderer) Verdict(info *domain.UserInfo) {
	r.blank()
	switch info.Tier() {
	case domain.PlanPro:
		r.line(r.s.Success.Render("✓ This account has GitHub Pro features!"))
	case domain.PlanFree:
		r.line(r.s.Error.Render("✗ This account is using the Free plan."))
	case domain.PlanNotVisible:
		r.line(r.s.Warning.Render("? Plan information not available via API."))
		r.line(r.s.Muted.Render("  Note: Plan details are only visible for authenticated requests"))
		r.line(r.s.Muted.Render("  with proper permissions, or for your own account."))
	default:
		r.line(verbatim(r.s.Warning, "? Account plan: "+info.Plan))
	}
}

// FailureLines returns the human-readable explanation for a failed lookup.
func FailureLines(err error) []string {
	var lerr *github.LookupError
	if !errors.As(err, &lerr) {
		return []string{fmt.Sprintf("Error: %v", err)}
	}

	switch lerr.Kind {
	case github.KindNotFound:
		return []string{fmt.Sprintf("Error: User '%s' not found", lerr.Username)}
	case github.KindForbidden:
		return []string{
			"Error: Rate limit exceeded or access forbidden.",
			"Try providing a GitHub personal access token as the second argument.",
			"Create one at: " + tokensURL,
		}
	case github.KindHTTPStatus:
		return []string{fmt.Sprintf("HTTP Error %d: %s", lerr.StatusCode, lerr.Reason)}
	case github.KindNetwork:
		return []string{fmt.Sprintf("Network Error: %s", lerr.Reason)}
	default:
		return []string{fmt.Sprintf("Error: %v", lerr)}
	}
}

// Failure prints the explanation for a failed lookup.
func (r *Renderer) Failure(err error) {
	for i, l := range FailureLines(err) {
		if i == 0 {
			r.line(r.s.Error.Render(l))
			continue
		}
		r.line(l)
	}
}

// CheckFailed introduces the manual instructions after a failed lookup.
func (r *Renderer) CheckFailed() {
	r.blank()
	r.line(r.s.Warning.Render("API check failed. See manual instructions below:"))
}

// ManualInstructions prints how to confirm Pro status from the billing page.
func (r *Renderer) ManualInstructions() {
	r.blank()
	r.rule()
	r.line(r.s.Title.Render("HOW TO CHECK IF YOU'RE USING GITHUB PRO (Manual Method)"))
	r.rule()
	r.blank()
	r.line("1. Go to ", r.s.Command.Render("https://github.com/settings/billing"))
	r.line("2. Look at your current plan")
	r.line("3. GitHub Pro features include:")
	for _, f := range proFeatures {
		r.line("   - ", f)
	}
	r.blank()
	r.line("4. If you see 'GitHub Pro' or 'Pro' in your billing settings, you have it!")
	r.rule()
	r.blank()
}
