package analyze

import (
	"strings"
	"testing"
)

func TestClassifyUnknownDocument(t *testing.T) {
	analysis := ClassifyBusinessDocument("A quiet afternoon walk through the park.")

	if analysis.DocumentType != DocUnknown {
		t.Errorf("type = %s, want unknown", analysis.DocumentType)
	}
	if analysis.Financial != nil || analysis.Contract != nil {
		t.Error("optional sections should be nil for unknown documents")
	}
	if len(analysis.RiskIndicators) != 0 || len(analysis.ComplianceChecks) != 0 || len(analysis.ActionItems) != 0 {
		t.Errorf("scans should be empty: %+v", analysis)
	}
}

func TestClassifyFinancialReport(t *testing.T) {
	text := "Quarterly revenue reached $1,234.56 while expense growth slowed. " +
		"The fiscal forecast projects higher earnings."

	analysis := ClassifyBusinessDocument(text)

	if analysis.DocumentType != DocFinancialReport {
		t.Fatalf("type = %s, want financial_report", analysis.DocumentType)
	}
	if analysis.Financial == nil {
		t.Fatal("financial section missing")
	}
	amounts := analysis.Financial.Amounts
	if len(amounts) != 1 {
		t.Fatalf("got %d amounts, want 1", len(amounts))
	}
	if amounts[0].Value != 1234.56 {
		t.Errorf("amount value = %f, want 1234.56", amounts[0].Value)
	}
	if amounts[0].Currency != "USD" {
		t.Errorf("amount currency = %s, want USD", amounts[0].Currency)
	}
	if amounts[0].Category != "other" {
		t.Errorf("amount category = %s, want other", amounts[0].Category)
	}
	if len(analysis.Financial.Currencies) != 1 || analysis.Financial.Currencies[0] != "USD" {
		t.Errorf("currencies = %v", analysis.Financial.Currencies)
	}
}

func TestFinancialAmountWithCurrencyCode(t *testing.T) {
	text := "The budget allocates 500 EUR for travel and forecast revenue of 2,000 eur."

	analysis := ClassifyBusinessDocument(text)
	if analysis.Financial == nil {
		t.Fatal("financial section missing")
	}
	if len(analysis.Financial.Amounts) != 2 {
		t.Fatalf("got %d amounts, want 2", len(analysis.Financial.Amounts))
	}
	for _, a := range analysis.Financial.Amounts {
		if a.Currency != "EUR" {
			t.Errorf("currency = %s, want EUR", a.Currency)
		}
	}
	if analysis.Financial.Amounts[1].Value != 2000 {
		t.Errorf("value = %f, want 2000", analysis.Financial.Amounts[1].Value)
	}
}

func TestClassifyContractExtractsParties(t *testing.T) {
	text := "This agreement is made between John Smith and the counter party " +
		"Mary Jones, with termination terms and liability obligations."

	analysis := ClassifyBusinessDocument(text)

	if analysis.DocumentType != DocContract {
		t.Fatalf("type = %s, want contract", analysis.DocumentType)
	}
	if analysis.Contract == nil {
		t.Fatal("contract section missing")
	}
	parties := analysis.Contract.Parties
	if len(parties) != 2 || parties[0] != "John Smith" || parties[1] != "Mary Jones" {
		t.Errorf("parties = %v", parties)
	}
	if len(analysis.Contract.Terms) == 0 {
		t.Error("no contract terms recognized")
	}
	for _, term := range analysis.Contract.Terms {
		if term.Importance != TermImportant {
			t.Errorf("term %q importance = %s", term.Term, term.Importance)
		}
	}
}

func TestClassifyTieBreakFixedOrder(t *testing.T) {
	// One contract keyword against one invoice keyword is a 1-1 tie;
	// contract precedes invoice in the priority order.
	analysis := ClassifyBusinessDocument("the agreement mentions an invoice")

	if analysis.DocumentType != DocContract {
		t.Errorf("type = %s, want contract on tie", analysis.DocumentType)
	}
}

func TestRiskAndComplianceScans(t *testing.T) {
	text := "There is a currency risk in this market. A GDPR audit is scheduled."

	analysis := ClassifyBusinessDocument(text)

	if len(analysis.RiskIndicators) != 1 {
		t.Fatalf("got %d risk indicators, want 1", len(analysis.RiskIndicators))
	}
	risk := analysis.RiskIndicators[0]
	if risk.Keyword != "risk" || risk.Severity != "medium" {
		t.Errorf("risk = %+v", risk)
	}
	if !strings.Contains(risk.Context, "currency risk") {
		t.Errorf("risk context missing surrounding text: %q", risk.Context)
	}

	var requirements []string
	for _, c := range analysis.ComplianceChecks {
		if c.Status != "mentioned" {
			t.Errorf("compliance status = %s, want mentioned", c.Status)
		}
		requirements = append(requirements, c.Requirement)
	}
	joined := strings.Join(requirements, " ")
	if !strings.Contains(joined, "gdpr") || !strings.Contains(joined, "audit") {
		t.Errorf("compliance requirements = %v", requirements)
	}
}

func TestActionItemScan(t *testing.T) {
	text := "Background notes.\n" +
		"Action item: update the onboarding docs.\n" +
		"The vendor must deliver by Friday.\n" +
		"Closing remarks."

	analysis := ClassifyBusinessDocument(text)

	if len(analysis.ActionItems) != 2 {
		t.Fatalf("got %d action items, want 2: %+v", len(analysis.ActionItems), analysis.ActionItems)
	}
	for _, item := range analysis.ActionItems {
		if item.Priority != "normal" || item.Status != "open" {
			t.Errorf("item defaults wrong: %+v", item)
		}
	}
	if !strings.Contains(analysis.ActionItems[0].Description, "onboarding docs") {
		t.Errorf("first item = %q", analysis.ActionItems[0].Description)
	}
}

func TestMetricsScan(t *testing.T) {
	text := "Customer retention improved to 87% after the growth initiative, " +
		"beating the industry average benchmark."

	analysis := ClassifyBusinessDocument(text)

	if len(analysis.Metrics.KPIs) != 1 {
		t.Fatalf("got %d KPIs, want 1: %v", len(analysis.Metrics.KPIs), analysis.Metrics.KPIs)
	}
	if !strings.HasSuffix(analysis.Metrics.KPIs[0], "87%") {
		t.Errorf("KPI = %q", analysis.Metrics.KPIs[0])
	}
	if len(analysis.Metrics.Trends) == 0 {
		t.Error("growth trend not detected")
	}
	if len(analysis.Metrics.Benchmarks) == 0 {
		t.Error("benchmark mention not detected")
	}
}

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"1,234.56", 1234.56},
		{"500", 500},
		{"0.25", 0.25},
		{"10,000", 10000},
	}
	for _, c := range cases {
		if got := parseAmount(c.in); got != c.want {
			t.Errorf("parseAmount(%q) = %f, want %f", c.in, got, c.want)
		}
	}
}

func TestContextAroundClampsToBounds(t *testing.T) {
	text := "risk at the very start"
	got := contextAround(text, 0, 4)
	if got != text {
		t.Errorf("got %q, want whole short text", got)
	}
}
