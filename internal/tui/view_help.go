package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderHelp() string {
	var b strings.Builder

	title := lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Render("Help")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	flow := []string{
		"  1. Type the path to a call recording and press Enter",
		"  2. Pick an analysis mode with j/k",
		"  3. Press Enter to run it",
		"",
		"  Deal Chat keeps a conversation going about the same call.",
		"  Loading a new recording starts a fresh session.",
	}

	flowBox := styleBox.Copy().
		Width(56).
		Render(strings.Join(flow, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, flowBox))
	b.WriteString("\n\n")

	shortcuts := []string{
		"  Esc            Go back / Quit",
		"  Enter          Submit",
		"  j/k, up/down   Move / Scroll",
		"  c              Copy result (result view)",
		"  d              Jump to deal chat (result view)",
		"  n              Load a new recording",
		"  r              Retry (error view)",
	}

	shortcutsTitle := styleSubtitle.Render("Keyboard Shortcuts")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, shortcutsTitle))
	b.WriteString("\n\n")

	shortcutsBox := styleBox.Copy().
		Width(56).
		Render(strings.Join(shortcuts, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, shortcutsBox))
	b.WriteString("\n\n")

	instructions := styleStatusBar.Render("[Esc] Back")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, instructions))

	return a.centerVertically(b.String())
}
