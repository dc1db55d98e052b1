package gemini

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"

	"github.com/sant0-9/echoscribe/internal/config"
)

func TestNewClientRequiresCredential(t *testing.T) {
	_, err := NewClient(&config.Config{Model: "gemini-2.5-flash"})
	if !errors.Is(err, ErrMissingCredential) {
		t.Errorf("NewClient() error = %v, want ErrMissingCredential", err)
	}

	c, err := NewClient(&config.Config{Model: "gemini-2.5-flash", APIKey: "key"})
	if err != nil || c == nil {
		t.Errorf("NewClient() with key failed: %v", err)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "structured 403",
			err:  &googleapi.Error{Code: 403, Message: "permission denied"},
			want: ErrPermissionDenied,
		},
		{
			name: "structured 429",
			err:  &googleapi.Error{Code: 429, Message: "resource exhausted"},
			want: ErrRateLimited,
		},
		{
			name: "substring 403 fallback",
			err:  errors.New("rpc error: code 403 forbidden"),
			want: ErrPermissionDenied,
		},
		{
			name: "substring 429 fallback",
			err:  errors.New("http 429 too many requests"),
			want: ErrRateLimited,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify(tt.err)
			if !errors.Is(got, tt.want) {
				t.Errorf("classify() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClassifyTransportPreservesMessage(t *testing.T) {
	orig := errors.New("connection reset by peer")
	got := classify(orig)

	var te *TransportError
	if !errors.As(got, &te) {
		t.Fatalf("classify() = %T, want *TransportError", got)
	}
	if !strings.Contains(got.Error(), "connection reset by peer") {
		t.Errorf("provider message lost: %q", got.Error())
	}
	if !errors.Is(got, orig) {
		t.Error("TransportError should unwrap to the original error")
	}
}

func TestResponseTextEmptyDistinctness(t *testing.T) {
	// An empty reply is EmptyResponse territory, not a transport
	// failure and not a successful empty string.
	resp := &genai.GenerateContentResponse{}
	if got := responseText(resp); got != "" {
		t.Errorf("responseText(no candidates) = %q, want empty", got)
	}

	resp = &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: &genai.Content{
			Parts: []genai.Part{genai.Text("hello")},
		}}},
	}
	if got := responseText(resp); got != "hello" {
		t.Errorf("responseText() = %q, want hello", got)
	}
}

func TestCapHistory(t *testing.T) {
	long := strings.Repeat("x", 400) // ~100 tokens per message

	history := []ChatMessage{
		{Role: RoleUser, Text: long},
		{Role: RoleModel, Text: long},
		{Role: RoleUser, Text: long},
		{Role: RoleModel, Text: long},
		{Role: RoleUser, Text: "latest question"},
	}

	capped := capHistory(history, 250)

	if len(capped) >= len(history) {
		t.Fatalf("expected trimming, got %d of %d turns", len(capped), len(history))
	}
	// The newest turn always survives.
	if capped[len(capped)-1].Text != "latest question" {
		t.Errorf("last turn = %q, want the latest question", capped[len(capped)-1].Text)
	}
	// Oldest turns go first.
	if capped[0].Text == long && len(capped) > 2 {
		t.Errorf("expected oldest turns dropped, got %d turns", len(capped))
	}
}

func TestCapHistoryUnderBudget(t *testing.T) {
	history := []ChatMessage{
		{Role: RoleUser, Text: "short"},
		{Role: RoleModel, Text: "reply"},
	}

	capped := capHistory(history, replayBudgetTokens)
	if len(capped) != 2 {
		t.Errorf("under-budget history should be untouched, got %d turns", len(capped))
	}
}

func TestRenderHistory(t *testing.T) {
	out := renderHistory([]ChatMessage{
		{Role: RoleUser, Text: "What was the objection?"},
		{Role: RoleModel, Text: "Pricing."},
	})

	if !strings.Contains(out, "User: What was the objection?") {
		t.Errorf("user turn missing: %q", out)
	}
	if !strings.Contains(out, "Model: Pricing.") {
		t.Errorf("model turn missing: %q", out)
	}
	if strings.Index(out, "User:") > strings.Index(out, "Model:") {
		t.Error("turns out of order")
	}
}
