package mode

import _ "embed"

// The section headings below are load-bearing: the structurer splits
// response text on these exact strings.

//go:embed transcript.md
var transcriptPrompt string

//go:embed bant.md
var bantPrompt string

//go:embed followup.md
var followupPrompt string

//go:embed chat.md
var chatPrompt string
