package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/sant0-9/echoscribe/internal/structurer"
)

// truncate shortens text to maxLen, adding "..." if truncated
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

var (
	// Colors
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorSecondary = lipgloss.Color("#06B6D4")
	colorSuccess   = lipgloss.Color("#10B981")
	colorWarning   = lipgloss.Color("#F59E0B")
	colorError     = lipgloss.Color("#EF4444")
	colorMuted     = lipgloss.Color("#6B7280")
	colorWhite     = lipgloss.Color("#F9FAFB")

	// Logo style
	styleLogo = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	// Subtitle
	styleSubtitle = lipgloss.NewStyle().
			Foreground(colorMuted)

	// Box
	styleBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)

	// Status bar
	styleStatusBar = lipgloss.NewStyle().
			Foreground(colorMuted)
)

// tierColor maps a status tier onto the palette.
func tierColor(t structurer.StatusTier) lipgloss.Color {
	switch t {
	case structurer.TierPositive:
		return colorSuccess
	case structurer.TierCaution:
		return colorWarning
	case structurer.TierInfo:
		return colorSecondary
	default:
		return colorMuted
	}
}

// hookColor maps a hook tier onto the palette.
func hookColor(t structurer.HookTier) lipgloss.Color {
	switch t {
	case structurer.HookProfessional:
		return colorSecondary
	case structurer.HookNice:
		return colorSuccess
	case structurer.HookFunny:
		return colorWarning
	default:
		return colorMuted
	}
}
