package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sant0-9/echoscribe/internal/gemini"
)

func (a *App) renderError() string {
	var b strings.Builder

	title := lipgloss.NewStyle().
		Foreground(colorError).
		Bold(true).
		Render("Something went wrong")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	err := a.state.session.Result().Err
	errMsg := "Unknown error"
	if err != nil {
		errMsg = err.Error()
	}

	errBox := styleBox.Copy().
		Width(min(60, a.width-4)).
		BorderForeground(colorError).
		Render(errMsg)
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, errBox))
	b.WriteString("\n\n")

	if suggestions := suggestionsFor(err); len(suggestions) > 0 {
		suggBox := styleBox.Copy().
			Width(min(60, a.width-4)).
			BorderForeground(colorMuted).
			Render("Suggestions:\n" + strings.Join(suggestions, "\n"))
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, suggBox))
		b.WriteString("\n\n")
	}

	status := styleStatusBar.Render("[r] Retry  [n] New  [Esc] Back")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status))

	return a.centerVertically(b.String())
}

// suggestionsFor matches the gateway's error categories before falling
// back to message sniffing for anything unclassified.
func suggestionsFor(err error) []string {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, gemini.ErrMissingCredential):
		return []string{
			"Set GEMINI_API_KEY in your environment or a local .env file",
			"Get a key at https://aistudio.google.com/apikey",
		}
	case errors.Is(err, gemini.ErrPermissionDenied):
		return []string{
			"The key was rejected for this model",
			"Check the key is active and has access to the configured model",
		}
	case errors.Is(err, gemini.ErrRateLimited):
		return []string{
			"You've hit the API rate limit",
			"Wait a moment and press [r] to retry",
		}
	case errors.Is(err, gemini.ErrEmptyResponse):
		return []string{
			"The model returned no text for this recording",
			"Try again, or try a different mode",
		}
	}

	errLower := strings.ToLower(err.Error())
	if strings.Contains(errLower, "connection") || strings.Contains(errLower, "timeout") {
		return []string{
			"Check your internet connection",
			"Press [r] to retry",
		}
	}
	return nil
}
