package gemini

import (
	"context"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/sant0-9/echoscribe/internal/config"
	"github.com/sant0-9/echoscribe/internal/mode"
)

// Role tags one side of a chat exchange.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// ChatMessage is one turn of a chat session.
type ChatMessage struct {
	Role Role
	Text string
}

// Analyzer is the gateway contract. The session layer depends on this
// interface so tests can substitute a fake.
type Analyzer interface {
	Analyze(ctx context.Context, data []byte, mimeType string, m mode.Mode, history []ChatMessage) (string, error)
}

// Client sends media analysis requests to the Gemini API. One attempt
// per call; callers retry by re-invoking.
type Client struct {
	apiKey      string
	model       string
	temperature *float32
}

// NewClient validates the credential up front so a missing key
// surfaces as a configuration error before any network attempt.
func NewClient(cfg *config.Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingCredential
	}
	return &Client{
		apiKey:      cfg.APIKey,
		model:       cfg.Model,
		temperature: cfg.Temperature,
	}, nil
}

// Analyze sends the media and the mode's instruction to the model and
// returns the raw response text. For chat mode, prior turns are
// replayed as role-tagged text because the underlying request is
// stateless; the first turn (empty history) sends the media and the
// system instruction alone.
func (c *Client) Analyze(ctx context.Context, data []byte, mimeType string, m mode.Mode, history []ChatMessage) (string, error) {
	info := mode.Get(m)

	client, err := genai.NewClient(ctx, option.WithAPIKey(c.apiKey))
	if err != nil {
		return "", classify(err)
	}
	defer client.Close()

	gm := client.GenerativeModel(c.model)
	temp := info.Temperature
	if c.temperature != nil {
		temp = *c.temperature
	}
	gm.SetTemperature(temp)

	parts := []genai.Part{
		genai.Blob{MIMEType: mimeType, Data: data},
		genai.Text(info.Instruction),
	}
	if m == mode.Chat && len(history) > 0 {
		parts = append(parts, genai.Text(renderHistory(capHistory(history, replayBudgetTokens))))
	}

	resp, err := gm.GenerateContent(ctx, parts...)
	if err != nil {
		return "", classify(err)
	}

	text := responseText(resp)
	if text == "" {
		// Distinguishes "the model declined" from transport trouble.
		return "", ErrEmptyResponse
	}
	return text, nil
}

// responseText pulls the first text part out of the first candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			return string(text)
		}
	}
	return ""
}

// replayBudgetTokens caps how much prior conversation is resent per
// turn. Oldest turns are dropped whole; the media part is never
// dropped.
const replayBudgetTokens = 48000

// estimateTokens approximates token count (~4 chars per token).
func estimateTokens(text string) int {
	return (len(text) + 3) / 4
}

// capHistory trims the oldest turns until the transcript fits the
// replay budget. The most recent turn is always kept, over budget or
// not, so the model sees the message it is answering.
func capHistory(history []ChatMessage, budget int) []ChatMessage {
	total := 0
	for _, msg := range history {
		total += estimateTokens(msg.Text)
	}
	start := 0
	for start < len(history)-1 && total > budget {
		total -= estimateTokens(history[start].Text)
		start++
	}
	return history[start:]
}

// renderHistory lays prior turns out as role-tagged plain text.
func renderHistory(history []ChatMessage) string {
	var b strings.Builder
	b.WriteString("Conversation so far:\n")
	for _, msg := range history {
		switch msg.Role {
		case RoleModel:
			b.WriteString("Model: ")
		default:
			b.WriteString("User: ")
		}
		b.WriteString(msg.Text)
		b.WriteString("\n")
	}
	b.WriteString("\nContinue the conversation. Reply to the user's last message.")
	return b.String()
}
