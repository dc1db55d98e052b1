// Package session owns the state for one analysis session: the
// selected recording, the chosen mode, the result lifecycle, and the
// chat history. It is mutated only by the UI event loop; there is no
// locking because there is no concurrency to guard against.
package session

import (
	"github.com/sant0-9/echoscribe/internal/gemini"
	"github.com/sant0-9/echoscribe/internal/media"
	"github.com/sant0-9/echoscribe/internal/mode"
)

// Status is the result lifecycle.
type Status int

const (
	StatusIdle Status = iota
	StatusProcessing
	StatusCompleted
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusProcessing:
		return "processing"
	case StatusCompleted:
		return "completed"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Result is the outcome of one analysis request. Wholly completed or
// wholly failed; there is no partial text on failure.
type Result struct {
	Text   string
	Status Status
	Err    error
}

// Session is the single live analysis session.
type Session struct {
	media   *media.Media
	mode    mode.Mode
	result  Result
	history []gemini.ChatMessage
	pending string
	typing  bool
}

func New() *Session {
	return &Session{mode: mode.Bant}
}

// SetMedia selects a new recording and resets everything derived from
// the previous one.
func (s *Session) SetMedia(m *media.Media) {
	s.media = m
	s.reset()
}

// ClearMedia drops the recording and resets.
func (s *Session) ClearMedia() {
	s.media = nil
	s.reset()
}

func (s *Session) reset() {
	s.result = Result{Status: StatusIdle}
	s.history = nil
	s.pending = ""
	s.typing = false
}

func (s *Session) Media() *media.Media { return s.media }

func (s *Session) SetMode(m mode.Mode) { s.mode = m }
func (s *Session) Mode() mode.Mode     { return s.mode }

func (s *Session) Result() Result { return s.result }

// Begin moves the session into processing. It refuses while a request
// is already in flight or no file is selected, so a second dispatch is
// a no-op by construction.
func (s *Session) Begin() bool {
	if s.media == nil || s.result.Status == StatusProcessing {
		return false
	}
	s.result = Result{Status: StatusProcessing}
	return true
}

// Complete records a successful response.
func (s *Session) Complete(text string) {
	s.result = Result{Text: text, Status: StatusCompleted}
}

// Fail records a failed request; the message is surfaced verbatim.
func (s *Session) Fail(err error) {
	s.result = Result{Status: StatusError, Err: err}
}

// History returns a copy of the chat history; the gateway never sees
// the owned slice.
func (s *Session) History() []gemini.ChatMessage {
	out := make([]gemini.ChatMessage, len(s.history))
	copy(out, s.history)
	return out
}

func (s *Session) Typing() bool    { return s.typing }
func (s *Session) Pending() string { return s.pending }

// BeginTurn stages a user chat message and sets the typing flag. The
// message is not part of history until the reply arrives. Refuses
// while a reply is already pending.
func (s *Session) BeginTurn(text string) bool {
	if s.typing {
		return false
	}
	s.pending = text
	s.typing = true
	return true
}

// CompleteTurn commits the staged user message and the model reply to
// history, in that order.
func (s *Session) CompleteTurn(reply string) {
	if s.pending != "" {
		s.history = append(s.history, gemini.ChatMessage{Role: gemini.RoleUser, Text: s.pending})
	}
	s.history = append(s.history, gemini.ChatMessage{Role: gemini.RoleModel, Text: reply})
	s.pending = ""
	s.typing = false
}

// FailTurn abandons the staged message. History is left exactly as it
// was before the send; only the typing flag is cleared.
func (s *Session) FailTurn() {
	s.pending = ""
	s.typing = false
}
