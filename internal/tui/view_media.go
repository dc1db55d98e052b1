package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sant0-9/echoscribe/internal/mode"
)

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func (a *App) centerVertically(content string) string {
	return lipgloss.Place(
		a.width,
		a.height,
		lipgloss.Left,
		lipgloss.Center,
		content,
	)
}

func (a *App) renderMedia() string {
	m := a.state.session.Media()
	if m == nil {
		return a.renderWelcome()
	}

	var b strings.Builder

	// Recording info header
	title := lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Render(m.Name)

	metaParts := []string{
		m.MIMEType,
		m.SizeHuman(),
	}
	metaLine := styleSubtitle.Render(strings.Join(metaParts, "  |  "))

	infoContent := lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		metaLine,
	)
	infoBox := styleBox.Copy().
		Width(min(70, a.width-4)).
		BorderForeground(colorSuccess).
		Render(infoContent)

	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, infoBox))
	b.WriteString("\n\n")

	promptLabel := lipgloss.NewStyle().
		Foreground(colorWhite).
		Render("What do you want from this call?")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, promptLabel))
	b.WriteString("\n\n")

	// Mode selector
	var modeLines []string
	for i, info := range mode.All() {
		cursor := "  "
		nameStyle := lipgloss.NewStyle().Foreground(colorWhite)
		descStyle := styleSubtitle
		if i == a.state.modeIndex {
			cursor = "> "
			nameStyle = lipgloss.NewStyle().Foreground(colorSecondary).Bold(true)
			descStyle = lipgloss.NewStyle().Foreground(colorSecondary)
		}
		modeLines = append(modeLines,
			fmt.Sprintf("%s%s", cursor, nameStyle.Render(info.Name)),
			fmt.Sprintf("    %s", descStyle.Render(info.Description)),
		)
	}

	modeBox := styleBox.Copy().
		Width(min(70, a.width-4)).
		BorderForeground(colorSecondary).
		Render(strings.Join(modeLines, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, modeBox))
	b.WriteString("\n\n")

	statusBar := styleStatusBar.Render("[j/k] Select  [Enter] Analyze  [n] New recording  [Esc] Back")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, statusBar))

	return a.centerVertically(b.String())
}
