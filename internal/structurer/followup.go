package structurer

import "strings"

const (
	hooksMarker  = "## 1. Memorable Hooks"
	recallMarker = `## 2. The "Recall" Points`
)

// HookTier selects a presentation style for a hook category. Category
// names are matched case-sensitively: the template asks for uppercase
// labels, and a lowercase "funny" inside a quote should not restyle
// the card.
type HookTier int

const (
	HookDefault HookTier = iota
	HookProfessional
	HookNice
	HookFunny
)

// HookItem is one memorable-detail suggestion for a follow-up.
type HookItem struct {
	Category string
	Tier     HookTier
	Quote    string
}

// RecallItem is one concrete fact to reference, in order.
type RecallItem struct {
	Index int
	Text  string
}

// FollowupReport is the structured form of a followup-mode response.
type FollowupReport struct {
	Hooks   []HookItem
	Recalls []RecallItem
}

func classifyHook(category string) HookTier {
	switch {
	case strings.Contains(category, "PROFESSIONAL"):
		return HookProfessional
	case strings.Contains(category, "NICE"):
		return HookNice
	case strings.Contains(category, "FUNNY"):
		return HookFunny
	default:
		return HookDefault
	}
}

// StructureFollowup extracts hooks and recall anchors from raw
// response text, with the same default-on-miss posture as bant.
func StructureFollowup(raw string) FollowupReport {
	var report FollowupReport

	hooks := regionBetween(raw, hooksMarker, recallMarker)
	for _, line := range strings.Split(hooks, "\n") {
		category, quote, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		clean := Sanitize(category)
		report.Hooks = append(report.Hooks, HookItem{
			Category: clean,
			Tier:     classifyHook(clean),
			Quote:    stripEdgeQuotes(Sanitize(quote)),
		})
	}

	recalls := regionBetween(raw, recallMarker, "")
	for _, line := range strings.Split(recalls, "\n") {
		if !strings.HasPrefix(strings.TrimSpace(line), "-") {
			continue
		}
		report.Recalls = append(report.Recalls, RecallItem{
			Index: len(report.Recalls) + 1,
			Text:  Sanitize(line),
		})
	}

	return report
}
