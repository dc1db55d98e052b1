package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sant0-9/echoscribe/internal/mode"
	"github.com/sant0-9/echoscribe/internal/structurer"
)

func (a *App) renderResult() string {
	var b strings.Builder

	title := lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Render(mode.Get(a.state.session.Mode()).Name)
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n")

	if m := a.state.session.Media(); m != nil {
		info := styleSubtitle.Render(truncate(m.Name, 60))
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, info))
	}
	b.WriteString("\n\n")

	boxWidth := min(74, a.width-4)

	var body string
	vm := a.state.vm
	switch {
	case vm.Bant != nil:
		body = a.renderBantReport(vm.Bant, boxWidth)
	case vm.Followup != nil:
		body = a.renderFollowupReport(vm.Followup, boxWidth)
	default:
		body = wrapText(vm.Transcript, boxWidth-4)
	}

	// Scroll window over the body
	maxHeight := a.height - 10
	if maxHeight < 5 {
		maxHeight = 5
	}
	lines := strings.Split(body, "\n")
	maxScroll := len(lines) - maxHeight
	if maxScroll < 0 {
		maxScroll = 0
	}
	if a.state.resultScroll > maxScroll {
		a.state.resultScroll = maxScroll
	}
	end := a.state.resultScroll + maxHeight
	if end > len(lines) {
		end = len(lines)
	}
	visible := strings.Join(lines[a.state.resultScroll:end], "\n")

	resultBox := styleBox.Copy().
		Width(boxWidth).
		BorderForeground(colorPrimary).
		Render(visible)
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, resultBox))
	b.WriteString("\n\n")

	var statusParts []string
	if a.state.resultScroll > 0 || maxScroll > 0 {
		statusParts = append(statusParts, fmt.Sprintf("[j/k] Scroll %d/%d", a.state.resultScroll, maxScroll))
	}
	if a.state.copied {
		statusParts = append(statusParts, "Copied")
	}
	statusParts = append(statusParts, "[c] Copy  [d] Deal chat  [n] New  [Esc] Back")
	status := styleStatusBar.Render(strings.Join(statusParts, "  "))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status))

	return a.centerVertically(b.String())
}

// renderBantReport lays out the qualification cards, the closing
// strategy, and the lead summary.
func (a *App) renderBantReport(report *structurer.BantReport, width int) string {
	var sections []string

	for _, field := range report.Fields {
		badge := lipgloss.NewStyle().
			Foreground(tierColor(field.Tier)).
			Bold(true).
			Render("[" + field.Status + "]")
		name := lipgloss.NewStyle().
			Foreground(colorWhite).
			Bold(true).
			Render(field.Title)

		lines := []string{name + "  " + badge}
		if field.Analysis != "" {
			lines = append(lines, wrapText(field.Analysis, width-6))
		}
		// "Missing" is the template's way of saying there was nothing
		// worth quoting.
		if field.Quote != "" && !strings.EqualFold(field.Quote, "missing") {
			quote := lipgloss.NewStyle().
				Foreground(colorMuted).
				Italic(true).
				Render(wrapText("\""+field.Quote+"\"", width-6))
			lines = append(lines, quote)
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}

	if len(report.Strategies) > 0 {
		header := lipgloss.NewStyle().
			Foreground(colorSecondary).
			Bold(true).
			Render("Closing Strategy")
		lines := []string{header}
		for _, item := range report.Strategies {
			label := lipgloss.NewStyle().
				Foreground(colorWhite).
				Render(item.Label + ":")
			lines = append(lines, "  - "+label+" "+wrapText(item.Detail, width-8))
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}

	if len(report.Leads) > 0 {
		header := lipgloss.NewStyle().
			Foreground(colorSecondary).
			Bold(true).
			Render("Lead Summary")
		lines := []string{header}
		for _, attr := range report.Leads {
			lines = append(lines, fmt.Sprintf("  %s: %s", attr.Key, attr.Value))
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}

	if len(sections) == 0 {
		return styleSubtitle.Render("Nothing extracted from this call.")
	}
	return strings.Join(sections, "\n\n")
}

// renderFollowupReport lays out the hooks and the recall anchors.
func (a *App) renderFollowupReport(report *structurer.FollowupReport, width int) string {
	var sections []string

	if len(report.Hooks) > 0 {
		header := lipgloss.NewStyle().
			Foreground(colorSecondary).
			Bold(true).
			Render("Memorable Hooks")
		lines := []string{header}
		for _, hook := range report.Hooks {
			category := lipgloss.NewStyle().
				Foreground(hookColor(hook.Tier)).
				Bold(true).
				Render(hook.Category)
			lines = append(lines, "  "+category)
			if hook.Quote != "" {
				lines = append(lines, "    "+wrapText(hook.Quote, width-8))
			}
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}

	if len(report.Recalls) > 0 {
		header := lipgloss.NewStyle().
			Foreground(colorSecondary).
			Bold(true).
			Render("Recall Points")
		lines := []string{header}
		for _, recall := range report.Recalls {
			lines = append(lines, fmt.Sprintf("  %d. %s", recall.Index, wrapText(recall.Text, width-8)))
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}

	if len(sections) == 0 {
		return styleSubtitle.Render("No hooks found in this call.")
	}
	return strings.Join(sections, "\n\n")
}
