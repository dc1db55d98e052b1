package mode

import "fmt"

// Mode selects the extraction goal for a request. It determines which
// instruction template is sent to the model and how the response text
// is structured afterwards.
type Mode int

const (
	Transcript Mode = iota
	Bant
	Followup
	Chat
)

func (m Mode) String() string {
	switch m {
	case Transcript:
		return "transcript"
	case Bant:
		return "bant"
	case Followup:
		return "followup"
	case Chat:
		return "chat"
	default:
		return "unknown"
	}
}

// Info describes one extraction mode.
type Info struct {
	ID          Mode
	Name        string
	Description string
	Instruction string
	Temperature float32
}

// Transcription wants verbatim fidelity; analysis modes get room to
// reason.
const (
	tempVerbatim = 0.1
	tempAnalysis = 0.4
)

var registry = []Info{
	{
		ID:          Bant,
		Name:        "BANT Sales Analysis",
		Description: "Identify Budget, Authority, Need, and Timeline.",
		Instruction: bantPrompt,
		Temperature: tempAnalysis,
	},
	{
		ID:          Followup,
		Name:        "Follow-up Magic",
		Description: "Find unique personal hooks for a memorable follow-up.",
		Instruction: followupPrompt,
		Temperature: tempAnalysis,
	},
	{
		ID:          Transcript,
		Name:        "Call Transcription",
		Description: "Verbatim record with speaker tagging.",
		Instruction: transcriptPrompt,
		Temperature: tempVerbatim,
	},
	{
		ID:          Chat,
		Name:        "Deal Chat",
		Description: "Ask questions about the call interactively.",
		Instruction: chatPrompt,
		Temperature: tempAnalysis,
	},
}

// Get returns the registry entry for m. An unknown mode is a
// programming error, not a runtime condition.
func Get(m Mode) Info {
	for _, info := range registry {
		if info.ID == m {
			return info
		}
	}
	panic(fmt.Sprintf("mode: unknown mode %d", int(m)))
}

// All returns the modes in selector order.
func All() []Info {
	return registry
}
