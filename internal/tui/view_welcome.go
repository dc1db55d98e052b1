package tui

import "github.com/charmbracelet/lipgloss"

const logo = `
 ███████╗ ██████╗██╗  ██╗ ██████╗
 ██╔════╝██╔════╝██║  ██║██╔═══██╗
 █████╗  ██║     ███████║██║   ██║
 ██╔══╝  ██║     ██╔══██║██║   ██║
 ███████╗╚██████╗██║  ██║╚██████╔╝
 ╚══════╝ ╚═════╝╚═╝  ╚═╝ ╚═════╝
`

func (a *App) renderWelcome() string {
	logoRendered := styleLogo.Render(logo)

	subtitle := styleSubtitle.Render("Sales Call Intelligence")

	inputBox := styleBox.Copy().
		Width(min(70, a.width-4)).
		BorderForeground(colorSecondary).
		Render(a.state.pathInput.View())

	var warnings []string
	if a.state.startupError != nil {
		warnings = append(warnings, lipgloss.NewStyle().
			Foreground(colorWarning).
			Render(truncate(a.state.startupError.Error(), 70)))
	}
	if a.state.pathError != nil {
		warnings = append(warnings, lipgloss.NewStyle().
			Foreground(colorError).
			Render(truncate(a.state.pathError.Error(), 70)))
	}

	statusBar := styleStatusBar.Render("[Enter] Load  [?] Help  [Esc] Quit")

	parts := []string{logoRendered, subtitle, "", inputBox}
	parts = append(parts, warnings...)
	content := lipgloss.JoinVertical(lipgloss.Center, parts...)

	mainArea := lipgloss.Place(
		a.width,
		a.height-2,
		lipgloss.Center,
		lipgloss.Center,
		content,
	)

	statusLine := lipgloss.PlaceHorizontal(a.width, lipgloss.Center, statusBar)

	return lipgloss.JoinVertical(lipgloss.Left, mainArea, statusLine)
}
