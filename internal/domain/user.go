package domain

import "strings"

// PlanPlaceholder is shown when the API does not disclose the account's plan.
const PlanPlaceholder = "Not visible"

// UserInfo is the flattened record of the fields read from a GitHub user profile.
type UserInfo struct {
	Username    string `json:"username" yaml:"username"`
	Name        string `json:"name" yaml:"name"`
	AccountType string `json:"account_type" yaml:"account_type"`
	Plan        string `json:"plan" yaml:"plan"`
	PublicRepos int    `json:"public_repos" yaml:"public_repos"`
	Followers   int    `json:"followers" yaml:"followers"`
	CreatedAt   string `json:"created_at" yaml:"created_at"`
}

// PlanTier is the coarse verdict derived from a plan name.
type PlanTier int

const (
	PlanOther PlanTier = iota
	PlanPro
	PlanFree
	PlanNotVisible
)

// String returns the string representation of a plan tier
func (t PlanTier) String() string {
	switch t {
	case PlanPro:
		return "pro"
	case PlanFree:
		return "free"
	case PlanNotVisible:
		return "not visible"
	default:
		return "other"
	}
}

// Tier classifies the plan name. Any name containing "pro" counts as Pro.
func (u *UserInfo) Tier() PlanTier {
	plan := strings.ToLower(u.Plan)
	switch {
	case strings.Contains(plan, "pro"):
		return PlanPro
	case plan == "free":
		return PlanFree
	case plan == strings.ToLower(PlanPlaceholder):
		return PlanNotVisible
	default:
		return PlanOther
	}
}
