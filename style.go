package commands

import "github.com/charmbracelet/lipgloss"

// HelpStyle holds the lipgloss styles applied by [DefaultHelpListing]. The
// zero value renders every piece unstyled, which keeps the default help
// output byte-identical to plain text.
type HelpStyle struct {
	// Command styles a resolved command path.
	Command lipgloss.Style
	// Alias styles a name/alias list.
	Alias lipgloss.Style
	// Required styles a required argument, including its <> wrapper.
	Required lipgloss.Style
	// Optional styles an optional argument, including its [] wrapper.
	Optional lipgloss.Style
	// Description styles a description, including its leading "- ".
	Description lipgloss.Style
}

// ColorHelpStyle returns an opinionated colored style for terminals. Output
// degrades to plain text automatically when the terminal reports no color
// support.
func ColorHelpStyle() HelpStyle {
	return HelpStyle{
		Command:     lipgloss.NewStyle().Bold(true),
		Alias:       lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		Required:    lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		Optional:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Description: lipgloss.NewStyle().Faint(true),
	}
}

// NewColorHelpListing is a [Manager.NewHelpListing] factory producing a
// colored listing.
func NewColorHelpListing(fullCmd string, cmds []*Command) HelpListing {
	return &DefaultHelpListing{FullCmd: fullCmd, Commands: cmds, Style: ColorHelpStyle()}
}
