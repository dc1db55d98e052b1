// Package structurer turns the model's semi-structured response text
// into typed view models, one shape per extraction mode. Structuring
// is pure and deterministic, and it never fails: malformed input
// degrades to defaults and dropped entries, worst case an empty view.
package structurer

import "github.com/sant0-9/echoscribe/internal/mode"

// ViewModel is the render-ready form of one response. Exactly one of
// the mode-specific fields is populated, matching Mode.
type ViewModel struct {
	Mode       mode.Mode
	Transcript string
	Bant       *BantReport
	Followup   *FollowupReport
}

// Structure derives the view model for raw under m. Transcripts pass
// through untouched: bullets and asterisks can be spoken content, so
// verbatim text is never sanitized. Chat mode renders its message
// history directly and carries nothing here.
func Structure(raw string, m mode.Mode) ViewModel {
	vm := ViewModel{Mode: m}
	switch m {
	case mode.Transcript:
		vm.Transcript = raw
	case mode.Bant:
		report := StructureBant(raw)
		vm.Bant = &report
	case mode.Followup:
		report := StructureFollowup(raw)
		vm.Followup = &report
	case mode.Chat:
		// History is the view model; nothing to parse.
	}
	return vm
}
