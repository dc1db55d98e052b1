package structurer

import "strings"

// Sanitize strips the markdown noise the model sprinkles over field
// values: bold markers, stray heading hashes, leading bullet glyphs,
// surrounding whitespace. It is idempotent, so re-sanitizing rendered
// text is harmless. It is applied to extracted fields only, never to
// the raw text before section splitting.
func Sanitize(s string) string {
	s = strings.ReplaceAll(s, "**", "")
	s = strings.ReplaceAll(s, "###", "")
	for {
		t := strings.TrimLeft(s, " \t")
		if len(t) > 0 && (t[0] == '-' || t[0] == '*') {
			s = t[1:]
			continue
		}
		s = t
		break
	}
	return strings.TrimSpace(s)
}

// extractField scans lines for the first one containing label
// (lowercased match) and returns the sanitized text after its first
// colon. Missing line, missing colon: the default. This is the single
// "safe extract, default on miss" primitive every field rule goes
// through.
func extractField(lines []string, label, def string) string {
	for _, l := range lines {
		if !strings.Contains(strings.ToLower(l), label) {
			continue
		}
		if _, after, ok := strings.Cut(l, ":"); ok {
			if v := Sanitize(after); v != "" {
				return v
			}
			return def
		}
	}
	return def
}

// regionBetween carves the text between two literal markers. A missing
// start marker yields an empty region; a missing end marker runs to
// the end of the text.
func regionBetween(raw, start, end string) string {
	_, after, ok := strings.Cut(raw, start)
	if !ok {
		return ""
	}
	if end == "" {
		return after
	}
	if before, _, ok := strings.Cut(after, end); ok {
		return before
	}
	return after
}

// stripEdgeQuotes removes one leading and one trailing double quote.
func stripEdgeQuotes(s string) string {
	s = strings.TrimPrefix(s, `"`)
	return strings.TrimSuffix(s, `"`)
}
