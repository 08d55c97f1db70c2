package theme

import "charm.land/lipgloss/v2"

// Styles contains all pre-built lipgloss styles for the report.
type Styles struct {
	Rule    lipgloss.Style
	Title   lipgloss.Style
	Label   lipgloss.Style
	Value   lipgloss.Style
	Command lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
}
