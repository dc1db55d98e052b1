package tui

import (
	"context"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sant0-9/echoscribe/internal/config"
	"github.com/sant0-9/echoscribe/internal/gemini"
	"github.com/sant0-9/echoscribe/internal/media"
	"github.com/sant0-9/echoscribe/internal/mode"
	"github.com/sant0-9/echoscribe/internal/session"
	"github.com/sant0-9/echoscribe/internal/structurer"
)

type view int

const (
	viewWelcome view = iota
	viewMedia
	viewProcessing
	viewResult
	viewChat
	viewError
	viewHelp
)

// requestTimeout bounds one model call. Long recordings take a while
// to transcribe, so this is generous.
const requestTimeout = 5 * time.Minute

type App struct {
	width    int
	height   int
	view     view
	prevView view
	state    *state
	quitting bool
}

func NewApp() *App {
	s := newState()

	cfg, err := config.Load()
	if err != nil {
		s.config = config.DefaultConfig()
		s.startupError = err
	} else {
		s.config = cfg
		client, err := gemini.NewClient(cfg)
		if err != nil {
			s.startupError = err
		} else {
			s.analyzer = client
		}
	}

	return &App{
		view:  viewWelcome,
		state: s,
	}
}

func (a *App) Init() tea.Cmd {
	a.state.pathInput.Focus()
	return tea.Batch(tea.WindowSize(), textinput.Blink)
}

type mediaLoadedMsg struct{ media *media.Media }
type mediaErrMsg struct{ error }
type analysisDoneMsg struct{ text string }
type analysisErrMsg struct{ error }
type chatReplyMsg struct{ text string }
type chatErrMsg struct{ error }
type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(120*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd := a.handleKey(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

	case mediaLoadedMsg:
		a.state.session.SetMedia(msg.media)
		a.state.pathError = nil
		a.state.vm = structurer.ViewModel{}
		a.state.chatError = nil
		a.state.pathInput.Reset()
		a.view = viewMedia
		return a, nil

	case mediaErrMsg:
		a.state.pathError = msg.error
		return a, nil

	case analysisDoneMsg:
		a.state.session.Complete(msg.text)
		a.state.vm = structurer.Structure(msg.text, a.state.session.Mode())
		a.state.resultScroll = 0
		a.state.copied = false
		a.view = viewResult
		return a, nil

	case analysisErrMsg:
		a.state.session.Fail(msg.error)
		a.view = viewError
		return a, nil

	case chatReplyMsg:
		a.state.session.CompleteTurn(msg.text)
		a.state.chatScroll = 0
		return a, nil

	case chatErrMsg:
		// History stays as it was; the failed turn can be retyped.
		a.state.session.FailTurn()
		a.state.chatError = msg.error
		return a, nil

	case tickMsg:
		a.state.spinnerFrame++
		if a.state.session.Result().Status == session.StatusProcessing || a.state.session.Typing() {
			return a, tick()
		}
		return a, nil
	}

	// Update text inputs based on view
	if a.view == viewWelcome {
		var cmd tea.Cmd
		a.state.pathInput, cmd = a.state.pathInput.Update(msg)
		cmds = append(cmds, cmd)
	} else if a.view == viewChat && !a.state.session.Typing() {
		var cmd tea.Cmd
		a.state.chatInput, cmd = a.state.chatInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return a, tea.Batch(cmds...)
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		a.quitting = true
		return tea.Quit
	}

	switch {
	case key.Matches(msg, keys.Quit):
		return a.handleBack()

	case key.Matches(msg, keys.Help):
		if a.view == viewWelcome || a.view == viewMedia || a.view == viewResult {
			a.prevView = a.view
			a.view = viewHelp
			return nil
		}
	}

	switch a.view {
	case viewWelcome:
		if key.Matches(msg, keys.Enter) {
			return a.loadMedia()
		}
	case viewMedia:
		return a.handleMediaKey(msg)
	case viewResult:
		return a.handleResultKey(msg)
	case viewChat:
		return a.handleChatKey(msg)
	case viewError:
		return a.handleErrorKey(msg)
	}

	return nil
}

// handleBack walks one level out of the current view; from the top it
// quits.
func (a *App) handleBack() tea.Cmd {
	switch a.view {
	case viewHelp:
		a.view = a.prevView
		return nil
	case viewMedia:
		a.state.session.ClearMedia()
		a.view = viewWelcome
		a.state.pathInput.Focus()
		return textinput.Blink
	case viewResult, viewChat:
		a.view = viewMedia
		return nil
	case viewError:
		if a.state.session.Media() != nil {
			a.view = viewMedia
		} else {
			a.view = viewWelcome
			a.state.pathInput.Focus()
		}
		return nil
	case viewProcessing:
		// The request runs to completion either way; just stop watching.
		a.view = viewMedia
		return nil
	}

	a.quitting = true
	return tea.Quit
}

func (a *App) loadMedia() tea.Cmd {
	path := strings.TrimSpace(a.state.pathInput.Value())
	if path == "" {
		return nil
	}
	return func() tea.Msg {
		m, err := media.Load(path)
		if err != nil {
			return mediaErrMsg{err}
		}
		return mediaLoadedMsg{m}
	}
}

func (a *App) handleMediaKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Up):
		if a.state.modeIndex > 0 {
			a.state.modeIndex--
		}
	case key.Matches(msg, keys.Down):
		if a.state.modeIndex < len(mode.All())-1 {
			a.state.modeIndex++
		}
	case key.Matches(msg, keys.Enter):
		return a.dispatch(mode.All()[a.state.modeIndex].ID)
	case key.Matches(msg, keys.New):
		a.state.session.ClearMedia()
		a.view = viewWelcome
		a.state.pathInput.Focus()
		return textinput.Blink
	}
	return nil
}

// dispatch starts a request in the selected mode. The session refuses
// a second dispatch while one is in flight, so mashing enter is safe.
func (a *App) dispatch(m mode.Mode) tea.Cmd {
	if a.state.analyzer == nil {
		a.state.session.Fail(a.state.startupError)
		a.view = viewError
		return nil
	}

	a.state.session.SetMode(m)

	if m == mode.Chat {
		a.view = viewChat
		a.state.chatInput.Focus()
		if len(a.state.session.History()) == 0 && !a.state.session.Typing() {
			// Opening turn: the model greets based on the recording
			// alone, no user text yet.
			a.state.session.BeginTurn("")
			a.state.progressStart = time.Now()
			return tea.Batch(a.chatTurnCmd(""), tick(), textinput.Blink)
		}
		return textinput.Blink
	}

	if !a.state.session.Begin() {
		return nil
	}
	a.state.progressStart = time.Now()
	a.view = viewProcessing
	return tea.Batch(a.analyzeCmd(), tick())
}

func (a *App) analyzeCmd() tea.Cmd {
	m := a.state.session.Media()
	md := a.state.session.Mode()
	analyzer := a.state.analyzer
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		text, err := analyzer.Analyze(ctx, m.Data, m.MIMEType, md, nil)
		if err != nil {
			return analysisErrMsg{err}
		}
		return analysisDoneMsg{text}
	}
}

// chatTurnCmd sends one chat turn. The prior history plus the new user
// message goes out with the recording; the session commits both halves
// of the turn only when the reply lands.
func (a *App) chatTurnCmd(text string) tea.Cmd {
	m := a.state.session.Media()
	analyzer := a.state.analyzer
	history := a.state.session.History()
	if text != "" {
		history = append(history, gemini.ChatMessage{Role: gemini.RoleUser, Text: text})
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		reply, err := analyzer.Analyze(ctx, m.Data, m.MIMEType, mode.Chat, history)
		if err != nil {
			return chatErrMsg{err}
		}
		return chatReplyMsg{reply}
	}
}

func (a *App) handleResultKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Copy):
		raw := a.state.session.Result().Text
		if raw != "" && clipboard.WriteAll(raw) == nil {
			a.state.copied = true
		}
	case key.Matches(msg, keys.New):
		a.state.session.ClearMedia()
		a.view = viewWelcome
		a.state.pathInput.Focus()
		return textinput.Blink
	case key.Matches(msg, keys.Chat):
		return a.dispatch(mode.Chat)
	case key.Matches(msg, keys.Up):
		if a.state.resultScroll > 0 {
			a.state.resultScroll--
		}
	case key.Matches(msg, keys.Down):
		a.state.resultScroll++
	}
	return nil
}

func (a *App) handleChatKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up":
		a.state.chatScroll++
		return nil
	case "down":
		if a.state.chatScroll > 0 {
			a.state.chatScroll--
		}
		return nil
	}

	if key.Matches(msg, keys.Enter) && !a.state.session.Typing() {
		text := strings.TrimSpace(a.state.chatInput.Value())
		if text == "" {
			return nil
		}
		if !a.state.session.BeginTurn(text) {
			return nil
		}
		a.state.chatInput.Reset()
		a.state.chatError = nil
		a.state.chatScroll = 0
		a.state.progressStart = time.Now()
		return tea.Batch(a.chatTurnCmd(text), tick())
	}
	return nil
}

func (a *App) handleErrorKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Retry):
		if a.state.session.Media() != nil {
			return a.dispatch(a.state.session.Mode())
		}
	case key.Matches(msg, keys.New):
		a.state.session.ClearMedia()
		a.view = viewWelcome
		a.state.pathInput.Focus()
		return textinput.Blink
	}
	return nil
}

func (a *App) View() string {
	if a.quitting {
		return ""
	}

	switch a.view {
	case viewWelcome:
		return a.renderWelcome()
	case viewMedia:
		return a.renderMedia()
	case viewProcessing:
		return a.renderProcessing()
	case viewResult:
		return a.renderResult()
	case viewChat:
		return a.renderChat()
	case viewError:
		return a.renderError()
	case viewHelp:
		return a.renderHelp()
	default:
		return a.renderWelcome()
	}
}
