package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/sant0-9/echoscribe/internal/gemini"
)

func (a *App) renderChat() string {
	boxWidth := min(70, a.width-4)
	leftPad := (a.width - boxWidth) / 2
	if leftPad < 2 {
		leftPad = 2
	}
	indent := strings.Repeat(" ", leftPad)

	headerHeight := 3
	inputHeight := 4
	if a.state.session.Typing() {
		inputHeight = 2
	}

	availableHeight := a.height - headerHeight - inputHeight
	if availableHeight < 5 {
		availableHeight = 5
	}

	// === BUILD HEADER ===
	var header strings.Builder
	title := lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Render("Deal Chat")
	header.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	header.WriteString("\n")

	var subParts []string
	if m := a.state.session.Media(); m != nil {
		subParts = append(subParts, truncate(m.Name, 40))
	}
	subParts = append(subParts, a.state.config.Model)
	subtitle := styleSubtitle.Render(strings.Join(subParts, "  |  "))
	header.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, subtitle))
	header.WriteString("\n\n")

	// === BUILD ALL MESSAGE LINES ===
	var messageLines []string

	for _, msg := range a.state.session.History() {
		messageLines = append(messageLines, renderTurn(msg, boxWidth, indent)...)
		messageLines = append(messageLines, "")
	}

	// The staged message and the typing indicator, while a reply is
	// pending.
	if a.state.session.Typing() {
		if pending := a.state.session.Pending(); pending != "" {
			staged := gemini.ChatMessage{Role: gemini.RoleUser, Text: pending}
			messageLines = append(messageLines, renderTurn(staged, boxWidth, indent)...)
			messageLines = append(messageLines, "")
		}
		spinner := spinnerFrames[a.state.spinnerFrame%len(spinnerFrames)]
		elapsed := time.Since(a.state.progressStart).Seconds()
		msgIdx := int(elapsed/3) % len(loadingMessages)
		loading := lipgloss.NewStyle().
			Foreground(colorPrimary).
			Render(fmt.Sprintf("%s %s", spinner, loadingMessages[msgIdx]))
		messageLines = append(messageLines, indent+loading)
	}

	if a.state.chatError != nil {
		errLine := lipgloss.NewStyle().
			Foreground(colorError).
			Render("! " + truncate(a.state.chatError.Error(), boxWidth-4))
		messageLines = append(messageLines, indent+errLine)
	}

	// === APPLY SCROLL ===
	totalLines := len(messageLines)

	maxScroll := totalLines - availableHeight
	if maxScroll < 0 {
		maxScroll = 0
	}
	if a.state.chatScroll > maxScroll {
		a.state.chatScroll = maxScroll
	}
	if a.state.chatScroll < 0 {
		a.state.chatScroll = 0
	}

	// Scroll offset counts up from the bottom.
	endIdx := totalLines - a.state.chatScroll
	startIdx := endIdx - availableHeight
	if startIdx < 0 {
		startIdx = 0
	}
	if endIdx > totalLines {
		endIdx = totalLines
	}

	var visibleLines []string
	if startIdx < endIdx {
		visibleLines = messageLines[startIdx:endIdx]
	}

	// === BUILD INPUT/STATUS ===
	var footer strings.Builder

	if !a.state.session.Typing() {
		inputBox := styleBox.Copy().
			Width(boxWidth).
			BorderForeground(colorMuted).
			Render(a.state.chatInput.View())
		footer.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, inputBox))
		footer.WriteString("\n")
	}

	var statusParts []string
	if a.state.session.Typing() {
		statusParts = append(statusParts, "Waiting for reply...")
	}
	if a.state.chatScroll > 0 {
		statusParts = append(statusParts, fmt.Sprintf("[scroll: %d]", a.state.chatScroll))
	}
	statusParts = append(statusParts, "[up/down] Scroll  [Esc] Back")
	status := styleStatusBar.Render(strings.Join(statusParts, "  "))
	footer.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status))

	// === COMBINE WITH FIXED LAYOUT ===
	var messageArea strings.Builder
	for i, line := range visibleLines {
		messageArea.WriteString(line)
		if i < len(visibleLines)-1 {
			messageArea.WriteString("\n")
		}
	}

	messagePadding := availableHeight - len(visibleLines)
	if messagePadding > 0 {
		if len(visibleLines) > 0 {
			messageArea.WriteString("\n")
		}
		messageArea.WriteString(strings.Repeat("\n", messagePadding-1))
	}

	return header.String() + messageArea.String() + "\n" + footer.String()
}

// renderTurn styles one chat message as indented wrapped lines. User
// turns get a "> " prefix in the accent color.
func renderTurn(msg gemini.ChatMessage, boxWidth int, indent string) []string {
	var out []string
	lines := strings.Split(wrapText(msg.Text, boxWidth-4), "\n")
	if msg.Role == gemini.RoleUser {
		for j, line := range lines {
			prefix := "> "
			if j > 0 {
				prefix = "  "
			}
			styled := lipgloss.NewStyle().
				Foreground(colorSecondary).
				Render(prefix + line)
			out = append(out, indent+styled)
		}
		return out
	}
	for _, line := range lines {
		styled := lipgloss.NewStyle().
			Foreground(colorWhite).
			Render("  " + line)
		out = append(out, indent+styled)
	}
	return out
}

// wrapText wraps text to fit within maxWidth, preserving words. Each
// input line wraps on its own, so existing line breaks (speaker turns
// in a transcript, paragraphs in a reply) survive.
func wrapText(text string, maxWidth int) string {
	if maxWidth <= 0 {
		maxWidth = 60
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = wrapLine(line, maxWidth)
	}
	return strings.Join(lines, "\n")
}

func wrapLine(line string, maxWidth int) string {
	if len(line) <= maxWidth {
		return line
	}

	var result strings.Builder
	words := strings.Fields(line)
	lineLen := 0

	for i, word := range words {
		if i > 0 {
			if lineLen+1+len(word) > maxWidth {
				result.WriteString("\n")
				lineLen = 0
			} else {
				result.WriteString(" ")
				lineLen++
			}
		}
		result.WriteString(word)
		lineLen += len(word)
	}

	return result.String()
}
