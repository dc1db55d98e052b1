package structurer

import (
	"fmt"
	"strings"
)

// Section markers match the headings the bant instruction template
// asks the model to emit. The structurer trusts but does not enforce
// adherence: absent markers yield empty sections, never errors.
const (
	categoryMarker = "###"
	strategyMarker = "## 2. Closing Strategy"
	leadMarker     = "## 3. Lead Summary"
)

// StatusTier buckets a free-text status for presentation styling. It
// never drives control flow.
type StatusTier int

const (
	TierPositive StatusTier = iota
	TierCaution
	TierInfo
	TierFallback
)

// BantField is one qualification category card.
type BantField struct {
	Title    string
	Status   string
	Tier     StatusTier
	Analysis string
	Quote    string
}

// StrategyItem is one bullet from the closing-strategy section.
type StrategyItem struct {
	Label  string
	Detail string
}

// LeadAttribute is one key/value pair from the lead-summary section.
type LeadAttribute struct {
	Key   string
	Value string
}

// BantReport is the structured form of a bant-mode response.
type BantReport struct {
	Fields     []BantField
	Strategies []StrategyItem
	Leads      []LeadAttribute
}

// ClassifyStatus assigns a presentation tier by case-insensitive
// keyword match. Total: every input lands in exactly one tier.
func ClassifyStatus(status string) StatusTier {
	s := strings.ToLower(status)
	switch {
	case strings.Contains(s, "confirmed"), strings.Contains(s, "critical"), strings.Contains(s, "immediate"):
		return TierPositive
	case strings.Contains(s, "pending"), strings.Contains(s, "opportunity"), strings.Contains(s, "medium"):
		return TierCaution
	case strings.Contains(s, "unclear"), strings.Contains(s, "exploratory"), strings.Contains(s, "long"):
		return TierInfo
	default:
		return TierFallback
	}
}

// StructureBant extracts qualification cards, strategy items, and lead
// attributes from raw response text. Every rule defaults gracefully; a
// category with neither analysis nor quote is dropped, not flagged.
func StructureBant(raw string) BantReport {
	var report BantReport

	blocks := strings.Split(raw, categoryMarker)
	if len(blocks) > 1 {
		for _, block := range blocks[1:] {
			if field, ok := parseCategory(block); ok {
				report.Fields = append(report.Fields, field)
			}
		}
	}

	strategy := regionBetween(raw, strategyMarker, leadMarker)
	report.Strategies = parseStrategies(strategy)

	lead := regionBetween(raw, leadMarker, "")
	report.Leads = parseLeads(lead)

	return report
}

func parseCategory(block string) (BantField, bool) {
	lines := strings.Split(strings.TrimSpace(block), "\n")

	title := strings.Trim(Sanitize(lines[0]), "[]")
	status := extractField(lines, "status:", "Unknown")
	analysis := extractField(lines, "analysis:", "")
	quote := stripEdgeQuotes(extractField(lines, "quote:", ""))

	// No evidence means nothing to show, not an error.
	if analysis == "" && quote == "" {
		return BantField{}, false
	}

	return BantField{
		Title:    title,
		Status:   status,
		Tier:     ClassifyStatus(status),
		Analysis: analysis,
		Quote:    quote,
	}, true
}

func parseStrategies(region string) []StrategyItem {
	var items []StrategyItem
	n := 0
	for _, line := range strings.Split(region, "\n") {
		if !strings.HasPrefix(strings.TrimSpace(line), "-") {
			continue
		}
		n++
		clean := Sanitize(line)
		if label, detail, ok := strings.Cut(clean, ":"); ok {
			items = append(items, StrategyItem{
				Label:  strings.TrimSpace(label),
				Detail: strings.TrimSpace(detail),
			})
		} else {
			items = append(items, StrategyItem{
				Label:  fmt.Sprintf("Strategy %d", n),
				Detail: clean,
			})
		}
	}
	return items
}

func parseLeads(region string) []LeadAttribute {
	var attrs []LeadAttribute
	for _, line := range strings.Split(region, "\n") {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		cleanVal := Sanitize(value)
		if cleanVal == "" || strings.Contains(strings.ToLower(cleanVal), "not mentioned") {
			continue
		}
		attrs = append(attrs, LeadAttribute{
			Key:   Sanitize(key),
			Value: cleanVal,
		})
	}
	return attrs
}
