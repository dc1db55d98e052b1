package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/sant0-9/echoscribe/internal/config"
	"github.com/sant0-9/echoscribe/internal/gemini"
	"github.com/sant0-9/echoscribe/internal/session"
	"github.com/sant0-9/echoscribe/internal/structurer"
)

type state struct {
	// Config
	config       *config.Config
	analyzer     gemini.Analyzer
	startupError error

	// Session
	session   *session.Session
	pathError error

	// Mode selector
	modeIndex int

	// Structured result for the current response
	vm           structurer.ViewModel
	resultScroll int
	copied       bool

	// Chat
	chatScroll int
	chatError  error

	// Inputs
	pathInput textinput.Model
	chatInput textinput.Model

	// Processing animation
	spinnerFrame  int
	progressStart time.Time
}

func newState() *state {
	path := textinput.New()
	path.Placeholder = "Path to a call recording (mp3, wav, m4a, mp4...)"
	path.CharLimit = 500
	path.Width = 60

	chat := textinput.New()
	chat.Placeholder = "Ask about the call..."
	chat.CharLimit = 500
	chat.Width = 60

	return &state{
		session:   session.New(),
		pathInput: path,
		chatInput: chat,
	}
}
