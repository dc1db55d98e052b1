package structurer

import "testing"

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "plain text untouched",
			in:   "Client has signed off.",
			want: "Client has signed off.",
		},
		{
			name: "bold markers stripped",
			in:   "**Budget Confirmed**",
			want: "Budget Confirmed",
		},
		{
			name: "leading bullet stripped",
			in:   "- Urgency: Close this week.",
			want: "Urgency: Close this week.",
		},
		{
			name: "asterisk bullet stripped",
			in:   "* key point",
			want: "key point",
		},
		{
			name: "stray hashes stripped",
			in:   "### [BUDGET]",
			want: "[BUDGET]",
		},
		{
			name: "surrounding whitespace trimmed",
			in:   "  padded  ",
			want: "padded",
		},
		{
			name: "everything at once",
			in:   "  - **### Status** ok  ",
			want: "Status ok",
		},
		{
			name: "empty string",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sanitize(tt.in)
			if got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSanitizeIdempotent(t *testing.T) {
	inputs := []string{
		"**bold**",
		"- bullet",
		"- - double bullet",
		"### hashes ###",
		"  - **### all of it**  ",
		"plain",
		"",
		"*",
		"-",
		"####",
	}

	for _, in := range inputs {
		once := Sanitize(in)
		twice := Sanitize(once)
		if once != twice {
			t.Errorf("Sanitize not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}

func TestExtractField(t *testing.T) {
	lines := []string{
		"[BUDGET]",
		"- Status: Budget Confirmed",
		"- Analysis: Client has signed off.",
	}

	if got := extractField(lines, "status:", "Unknown"); got != "Budget Confirmed" {
		t.Errorf("status = %q, want %q", got, "Budget Confirmed")
	}
	if got := extractField(lines, "quote:", ""); got != "" {
		t.Errorf("missing label should default, got %q", got)
	}
	if got := extractField([]string{"Status without colon"}, "status", "fallback"); got != "fallback" {
		t.Errorf("line without colon should default, got %q", got)
	}
	if got := extractField([]string{"- Status:"}, "status:", "Unknown"); got != "Unknown" {
		t.Errorf("empty value should default, got %q", got)
	}
}

func TestRegionBetween(t *testing.T) {
	raw := "preamble\n## A\nalpha\n## B\nbeta"

	if got := regionBetween(raw, "## A", "## B"); got != "\nalpha\n" {
		t.Errorf("bounded region = %q", got)
	}
	if got := regionBetween(raw, "## B", ""); got != "\nbeta" {
		t.Errorf("open region = %q", got)
	}
	if got := regionBetween(raw, "## C", ""); got != "" {
		t.Errorf("missing marker should be empty, got %q", got)
	}
}
