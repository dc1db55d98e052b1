package session

import (
	"errors"
	"testing"

	"github.com/sant0-9/echoscribe/internal/gemini"
	"github.com/sant0-9/echoscribe/internal/media"
)

func testMedia() *media.Media {
	return &media.Media{Name: "call.mp3", MIMEType: "audio/mpeg", Data: []byte{1, 2, 3}}
}

func TestLifecycle(t *testing.T) {
	s := New()

	if s.Result().Status != StatusIdle {
		t.Fatalf("new session status = %v, want idle", s.Result().Status)
	}

	// No file selected: dispatch refused.
	if s.Begin() {
		t.Error("Begin() without media should refuse")
	}

	s.SetMedia(testMedia())
	if !s.Begin() {
		t.Fatal("Begin() with media should succeed")
	}
	if s.Result().Status != StatusProcessing {
		t.Errorf("status = %v, want processing", s.Result().Status)
	}

	s.Complete("the analysis")
	r := s.Result()
	if r.Status != StatusCompleted || r.Text != "the analysis" {
		t.Errorf("result = %+v", r)
	}

	// File change reverts to idle.
	s.SetMedia(testMedia())
	if s.Result().Status != StatusIdle {
		t.Errorf("status after file change = %v, want idle", s.Result().Status)
	}

	if !s.Begin() {
		t.Fatal("Begin() should succeed again")
	}
	s.Fail(errors.New("boom"))
	r = s.Result()
	if r.Status != StatusError || r.Err == nil || r.Text != "" {
		t.Errorf("result = %+v", r)
	}
}

func TestSingleInFlight(t *testing.T) {
	s := New()
	s.SetMedia(testMedia())

	if !s.Begin() {
		t.Fatal("first Begin() should succeed")
	}
	if s.Begin() {
		t.Error("second Begin() while processing should refuse")
	}

	s.Complete("done")
	if !s.Begin() {
		t.Error("Begin() after completion should succeed")
	}
}

func TestChatAppendOnlyOnSuccess(t *testing.T) {
	s := New()
	s.SetMedia(testMedia())

	// Seed two turns.
	s.BeginTurn("Q1")
	s.CompleteTurn("A1")

	if !s.BeginTurn("Q2") {
		t.Fatal("BeginTurn should succeed when not typing")
	}
	if !s.Typing() {
		t.Error("typing flag should be set")
	}
	s.CompleteTurn("A2")

	want := []gemini.ChatMessage{
		{Role: gemini.RoleUser, Text: "Q1"},
		{Role: gemini.RoleModel, Text: "A1"},
		{Role: gemini.RoleUser, Text: "Q2"},
		{Role: gemini.RoleModel, Text: "A2"},
	}
	got := s.History()
	if len(got) != len(want) {
		t.Fatalf("history length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("history[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
	if s.Typing() {
		t.Error("typing flag should clear on success")
	}
}

func TestChatHistoryUnchangedOnFailure(t *testing.T) {
	s := New()
	s.SetMedia(testMedia())

	s.BeginTurn("Q1")
	s.CompleteTurn("A1")
	before := s.History()

	s.BeginTurn("Q2")
	s.FailTurn()

	after := s.History()
	if len(after) != len(before) {
		t.Fatalf("history length changed on failure: %d -> %d", len(before), len(after))
	}
	for i := range before {
		if after[i] != before[i] {
			t.Errorf("history[%d] changed: %+v -> %+v", i, before[i], after[i])
		}
	}
	if s.Typing() {
		t.Error("typing flag should clear on failure")
	}
	if s.Pending() != "" {
		t.Error("pending message should be dropped on failure")
	}
}

func TestChatTypingGuard(t *testing.T) {
	s := New()
	s.SetMedia(testMedia())

	s.BeginTurn("Q1")
	if s.BeginTurn("Q2") {
		t.Error("BeginTurn while typing should refuse")
	}
}

func TestFirstTurnHasNoUserMessage(t *testing.T) {
	// The opening chat call sends no user text; only the model's
	// greeting lands in history.
	s := New()
	s.SetMedia(testMedia())

	s.BeginTurn("")
	s.CompleteTurn("Hello, ask me about the call.")

	got := s.History()
	if len(got) != 1 {
		t.Fatalf("history length = %d, want 1", len(got))
	}
	if got[0].Role != gemini.RoleModel {
		t.Errorf("role = %v, want model", got[0].Role)
	}
}

func TestHistoryIsACopy(t *testing.T) {
	s := New()
	s.SetMedia(testMedia())
	s.BeginTurn("Q1")
	s.CompleteTurn("A1")

	got := s.History()
	got[0].Text = "mutated"

	if s.History()[0].Text != "Q1" {
		t.Error("mutating the returned slice must not touch the session's history")
	}
}

func TestMediaChangeClearsChat(t *testing.T) {
	s := New()
	s.SetMedia(testMedia())
	s.BeginTurn("Q1")
	s.CompleteTurn("A1")

	s.SetMedia(testMedia())
	if len(s.History()) != 0 {
		t.Error("history should clear on file change")
	}
	if s.Typing() {
		t.Error("typing should clear on file change")
	}
}
