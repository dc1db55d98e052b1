package structurer

import "testing"

func TestClassifyStatus(t *testing.T) {
	tests := []struct {
		status string
		want   StatusTier
	}{
		{"Budget Confirmed", TierPositive},
		{"Critical Pain", TierPositive},
		{"Immediate <1mo", TierPositive},
		{"Budget Pending", TierCaution},
		{"Opportunity", TierCaution},
		{"Medium-term 1-3mo", TierCaution},
		{"Budget Unclear", TierInfo},
		{"Exploratory", TierInfo},
		{"Long-term 3mo+", TierInfo},
		{"Unknown", TierFallback},
		{"No Budget", TierFallback},
		{"", TierFallback},
		{"something else entirely", TierFallback},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			got := ClassifyStatus(tt.status)
			if got != tt.want {
				t.Errorf("ClassifyStatus(%q) = %v, want %v", tt.status, got, tt.want)
			}
		})
	}
}

func TestStructureBantScenario(t *testing.T) {
	raw := "### [BUDGET]\n" +
		"- Status: Budget Confirmed\n" +
		"- Analysis: Client has signed off.\n" +
		"- Quote: \"We have the funds.\"\n" +
		"## 2. Closing Strategy\n" +
		"- Urgency: Close this week.\n" +
		"## 3. Lead Summary\n" +
		"- Company Name: Acme"

	report := StructureBant(raw)

	if len(report.Fields) != 1 {
		t.Fatalf("got %d fields, want 1", len(report.Fields))
	}
	f := report.Fields[0]
	if f.Title != "BUDGET" {
		t.Errorf("Title = %q, want %q", f.Title, "BUDGET")
	}
	if f.Status != "Budget Confirmed" {
		t.Errorf("Status = %q, want %q", f.Status, "Budget Confirmed")
	}
	if f.Tier != TierPositive {
		t.Errorf("Tier = %v, want TierPositive", f.Tier)
	}
	if f.Analysis != "Client has signed off." {
		t.Errorf("Analysis = %q", f.Analysis)
	}
	if f.Quote != "We have the funds." {
		t.Errorf("Quote = %q", f.Quote)
	}

	if len(report.Strategies) != 1 {
		t.Fatalf("got %d strategies, want 1", len(report.Strategies))
	}
	s := report.Strategies[0]
	if s.Label != "Urgency" || s.Detail != "Close this week." {
		t.Errorf("strategy = %q / %q", s.Label, s.Detail)
	}

	if len(report.Leads) != 1 {
		t.Fatalf("got %d leads, want 1", len(report.Leads))
	}
	l := report.Leads[0]
	if l.Key != "Company Name" || l.Value != "Acme" {
		t.Errorf("lead = %q / %q", l.Key, l.Value)
	}
}

func TestStructureBantCategoryDropout(t *testing.T) {
	tests := []struct {
		name    string
		block   string
		present bool
	}{
		{
			name:    "no analysis or quote dropped",
			block:   "### [AUTHORITY]\n- Status: Unknown\n",
			present: false,
		},
		{
			name:    "analysis alone kept",
			block:   "### [AUTHORITY]\n- Analysis: Spoke to the VP.\n",
			present: true,
		},
		{
			name:    "quote alone kept",
			block:   "### [AUTHORITY]\n- Quote: \"I sign the contracts.\"\n",
			present: true,
		},
		{
			name:    "empty block dropped",
			block:   "### [NEED]\n",
			present: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := StructureBant(tt.block)
			got := len(report.Fields) == 1
			if got != tt.present {
				t.Errorf("present = %v, want %v", got, tt.present)
			}
		})
	}
}

func TestStructureBantStatusDefault(t *testing.T) {
	report := StructureBant("### [NEED]\n- Analysis: They are hurting.\n")
	if len(report.Fields) != 1 {
		t.Fatalf("got %d fields, want 1", len(report.Fields))
	}
	if report.Fields[0].Status != "Unknown" {
		t.Errorf("Status = %q, want Unknown", report.Fields[0].Status)
	}
	if report.Fields[0].Tier != TierFallback {
		t.Errorf("Tier = %v, want TierFallback", report.Fields[0].Tier)
	}
}

func TestStructureBantLeadSuppression(t *testing.T) {
	raw := "## 3. Lead Summary\n" +
		"- Company Name: Not mentioned\n" +
		"- Contact Name: Acme Corp\n" +
		"- Targeted Area:\n"

	report := StructureBant(raw)

	if len(report.Leads) != 1 {
		t.Fatalf("got %d leads, want 1", len(report.Leads))
	}
	if report.Leads[0].Key != "Contact Name" || report.Leads[0].Value != "Acme Corp" {
		t.Errorf("lead = %q / %q", report.Leads[0].Key, report.Leads[0].Value)
	}
}

func TestStructureBantStrategyOrdinals(t *testing.T) {
	raw := "## 2. Closing Strategy\n" +
		"- Push for a signature before the quarter ends\n" +
		"- Urgency: Close this week.\n" +
		"- Mention the case study\n"

	report := StructureBant(raw)

	if len(report.Strategies) != 3 {
		t.Fatalf("got %d strategies, want 3", len(report.Strategies))
	}
	if report.Strategies[0].Label != "Strategy 1" {
		t.Errorf("first label = %q, want Strategy 1", report.Strategies[0].Label)
	}
	if report.Strategies[1].Label != "Urgency" {
		t.Errorf("second label = %q, want Urgency", report.Strategies[1].Label)
	}
	if report.Strategies[2].Label != "Strategy 3" {
		t.Errorf("third label = %q, want Strategy 3", report.Strategies[2].Label)
	}
}

func TestStructureBantMalformedInput(t *testing.T) {
	// Never errors, never panics; worst case an empty report.
	inputs := []string{
		"",
		"no markers at all",
		"###",
		"### \n\n###\n",
		"## 2. Closing Strategy",
		"## 3. Lead Summary\n::::\n",
		"### [X]\n- Status\n- Analysis\n- Quote\n",
	}

	for _, in := range inputs {
		report := StructureBant(in)
		if len(report.Fields) != 0 {
			t.Errorf("input %q: expected no fields, got %d", in, len(report.Fields))
		}
	}
}
