package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/sant0-9/echoscribe/internal/mode"
)

// Loading messages shown while the model works
var loadingMessages = []string{
	"Deep-scanning conversation...",
	"Listening closely...",
	"Weighing every word...",
	"Reading between the lines...",
	"Taking notes...",
}

// Spinner frames for animation
var spinnerFrames = []string{"|", "/", "-", "\\"}

func (a *App) renderProcessing() string {
	var b strings.Builder

	title := lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Render(mode.Get(a.state.session.Mode()).Name)
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	if m := a.state.session.Media(); m != nil {
		info := styleSubtitle.Render(truncate(m.Name, 60))
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, info))
		b.WriteString("\n\n")
	}

	elapsed := time.Since(a.state.progressStart).Seconds()
	spinner := spinnerFrames[a.state.spinnerFrame%len(spinnerFrames)]
	msgIdx := int(elapsed/3) % len(loadingMessages)

	working := lipgloss.NewStyle().
		Foreground(colorSecondary).
		Render(fmt.Sprintf("%s %s", spinner, loadingMessages[msgIdx]))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, working))
	b.WriteString("\n\n")

	elapsedLine := styleSubtitle.Render(fmt.Sprintf("%.0fs elapsed", elapsed))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, elapsedLine))
	b.WriteString("\n\n")

	status := styleStatusBar.Render("[Esc] Back")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status))

	return a.centerVertically(b.String())
}
