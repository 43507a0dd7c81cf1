package analyze

import (
	"regexp"
	"sort"
	"strings"
)

// DocumentType is the closed classification set for business documents.
type DocumentType string

const (
	DocFinancialReport DocumentType = "financial_report"
	DocContract        DocumentType = "contract"
	DocInvoice         DocumentType = "invoice"
	DocBusinessPlan    DocumentType = "business_plan"
	DocMeetingMinutes  DocumentType = "meeting_minutes"
	DocLegal           DocumentType = "legal"
	DocUnknown         DocumentType = "unknown"
)

// BusinessDocumentAnalysis is the structured second-pass result. Optional
// sections are nil when the classification did not trigger them.
type BusinessDocumentAnalysis struct {
	DocumentType     DocumentType      `json:"document_type"`
	Financial        *FinancialData    `json:"financial,omitempty"`
	Contract         *ContractTerms    `json:"contract,omitempty"`
	Metrics          BusinessMetrics   `json:"metrics"`
	RiskIndicators   []RiskIndicator   `json:"risk_indicators"`
	ComplianceChecks []ComplianceCheck `json:"compliance_checks"`
	ActionItems      []ActionItem      `json:"action_items"`
}

// FinancialAmount is one monetary figure found in the text. Category is
// always "other" under the current heuristics; the revenue/expense tags the
// model distinguishes are never assigned.
type FinancialAmount struct {
	Value    float64 `json:"value"`
	Currency string  `json:"currency"`
	Category string  `json:"category"`
	Date     string  `json:"date,omitempty"`
}

// FinancialRatio is a named ratio extracted from the text.
type FinancialRatio struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// FinancialData aggregates the monetary figures of a financial document.
type FinancialData struct {
	Amounts       []FinancialAmount `json:"amounts"`
	Currencies    []string          `json:"currencies"`
	TotalRevenue  float64           `json:"total_revenue"`
	TotalExpenses float64           `json:"total_expenses"`
	ProfitMargin  *float64          `json:"profit_margin,omitempty"`
	CashFlow      float64           `json:"cash_flow"`
	Ratios        []FinancialRatio  `json:"ratios"`
}

// TermImportance grades a contract term. The current heuristics assign
// Important to every keyword hit.
type TermImportance string

const TermImportant TermImportance = "important"

// ContractTerm is one recognized contractual keyword in context.
type ContractTerm struct {
	Term       string         `json:"term"`
	Importance TermImportance `json:"importance"`
}

// Obligation and Penalty are extraction hooks; the current heuristics
// leave them unpopulated.
type Obligation struct {
	Description string `json:"description"`
}

type Penalty struct {
	Description string `json:"description"`
}

// ContractTerms aggregates what the contract scan found.
type ContractTerms struct {
	Parties     []string       `json:"parties"`
	StartDate   string         `json:"start_date,omitempty"`
	EndDate     string         `json:"end_date,omitempty"`
	Value       *float64       `json:"value,omitempty"`
	Currency    string         `json:"currency,omitempty"`
	Terms       []ContractTerm `json:"terms"`
	Obligations []Obligation   `json:"obligations"`
	Penalties   []Penalty      `json:"penalties"`
}

// BusinessMetrics holds loose metric mentions; every field may be empty.
type BusinessMetrics struct {
	KPIs       []string `json:"kpis"`
	Trends     []string `json:"trends"`
	Benchmarks []string `json:"benchmarks"`
}

// RiskIndicator is a flat keyword-scan record with constant severity.
type RiskIndicator struct {
	Keyword  string `json:"keyword"`
	Context  string `json:"context"`
	Severity string `json:"severity"`
}

// ComplianceCheck is a flat keyword-scan record with constant status.
type ComplianceCheck struct {
	Requirement string `json:"requirement"`
	Status      string `json:"status"`
}

// ActionItem is a flat regex-scan record with constant priority and status.
type ActionItem struct {
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
}

// Constant heuristic placeholders, not computed signals.
const (
	riskSeverityDefault    = "medium"
	complianceStatusFound  = "mentioned"
	actionPriorityDefault  = "normal"
	actionStatusDefault    = "open"
	amountCategoryDefault  = "other"
	contextWindowRunes     = 60
	maxActionItemRuneCount = 200
)

// classificationOrder fixes the tie-break: when dictionary scores tie, the
// earlier entry wins. Keyword scoring is substring containment against the
// lowercased text.
var classificationOrder = []struct {
	docType  DocumentType
	keywords []string
}{
	{DocFinancialReport, []string{
		"revenue", "profit", "loss", "earnings", "income", "expense",
		"budget", "forecast", "quarterly", "fiscal", "cash flow",
		"balance sheet", "assets", "liabilities", "equity", "ebitda",
	}},
	{DocContract, []string{
		"agreement", "contract", "party", "parties", "terms and conditions",
		"obligations", "whereas", "hereinafter", "termination", "liability",
		"indemnify", "warranty", "breach", "governing law",
	}},
	{DocInvoice, []string{
		"invoice", "bill to", "payment due", "amount due", "subtotal",
		"tax", "total due", "remit", "payment terms", "net 30",
		"purchase order", "invoice number",
	}},
	{DocBusinessPlan, []string{
		"business plan", "executive summary", "market analysis",
		"target market", "competitive", "strategy", "mission", "vision",
		"swot", "milestones", "funding", "go-to-market",
	}},
	{DocMeetingMinutes, []string{
		"meeting", "minutes", "attendees", "agenda", "action items",
		"discussed", "motion", "adjourned", "next meeting", "follow up",
	}},
	{DocLegal, []string{
		"law", "legal", "statute", "regulation", "jurisdiction",
		"plaintiff", "defendant", "court", "litigation", "attorney",
		"pursuant", "hereby",
	}},
}

var riskKeywords = []string{
	"risk", "threat", "vulnerability", "exposure", "uncertainty",
	"volatility", "downturn", "lawsuit", "penalty", "default", "delay",
}

var complianceKeywords = []string{
	"gdpr", "hipaa", "sox", "pci", "iso 9001", "iso 27001",
	"regulatory", "compliance", "audit", "certification",
}

var (
	symbolAmountPattern = regexp.MustCompile(`([$€£¥])\s?([0-9][0-9,]*(?:\.[0-9]+)?)`)
	codeAmountPattern   = regexp.MustCompile(`(?i)\b([0-9][0-9,]*(?:\.[0-9]+)?)\s?(USD|EUR|GBP|JPY)\b`)
	partyPattern        = regexp.MustCompile(`(?:between|party)\s+([A-Z][a-z]+\s+[A-Z][a-z]+)`)
	percentPattern      = regexp.MustCompile(`(?:[A-Za-z][A-Za-z ]{0,30})?\b\d+(?:\.\d+)?%`)
	actionPattern       = regexp.MustCompile(`(?im)^.*\b(?:action item|todo|must|shall|to be completed|responsible for)\b.*$`)
)

var currencyBySymbol = map[string]string{
	"$": "USD", "€": "EUR", "£": "GBP", "¥": "JPY",
}

var trendWords = []string{"increase", "decrease", "growth", "decline", "improvement", "drop"}
var benchmarkWords = []string{"benchmark", "industry average", "baseline", "target of"}

// ClassifyBusinessDocument scores the six keyword dictionaries against the
// lowercased text, picks the best (Unknown when every score is zero), and
// runs the per-type structured scans. Risk, compliance, action-item, and
// metric scans run regardless of type; the financial and contract sections
// are only populated for the types that warrant them.
func ClassifyBusinessDocument(text string) BusinessDocumentAnalysis {
	lower := strings.ToLower(text)

	analysis := BusinessDocumentAnalysis{
		DocumentType:     classify(lower),
		Metrics:          extractMetrics(text, lower),
		RiskIndicators:   extractRisks(text, lower),
		ComplianceChecks: extractCompliance(lower),
		ActionItems:      extractActionItems(text),
	}

	switch analysis.DocumentType {
	case DocFinancialReport, DocInvoice:
		analysis.Financial = extractFinancialData(text)
	case DocContract, DocLegal:
		analysis.Contract = extractContractTerms(text, lower)
	}

	return analysis
}

func classify(lower string) DocumentType {
	best := DocUnknown
	bestScore := 0
	for _, entry := range classificationOrder {
		score := 0
		for _, kw := range entry.keywords {
			score += strings.Count(lower, kw)
		}
		// Strictly greater keeps the fixed priority order on ties.
		if score > bestScore {
			best = entry.docType
			bestScore = score
		}
	}
	return best
}

func extractFinancialData(text string) *FinancialData {
	data := &FinancialData{}
	currencySet := make(map[string]bool)

	for _, m := range symbolAmountPattern.FindAllStringSubmatch(text, -1) {
		currency := currencyBySymbol[m[1]]
		data.Amounts = append(data.Amounts, FinancialAmount{
			Value:    parseAmount(m[2]),
			Currency: currency,
			Category: amountCategoryDefault,
		})
		currencySet[currency] = true
	}
	for _, m := range codeAmountPattern.FindAllStringSubmatch(text, -1) {
		currency := strings.ToUpper(m[2])
		data.Amounts = append(data.Amounts, FinancialAmount{
			Value:    parseAmount(m[1]),
			Currency: currency,
			Category: amountCategoryDefault,
		})
		currencySet[currency] = true
	}

	for currency := range currencySet {
		data.Currencies = append(data.Currencies, currency)
	}
	sort.Strings(data.Currencies)

	// Category is always "other", so these sums stay zero in practice;
	// the fields keep their shape for downstream consumers.
	for _, a := range data.Amounts {
		switch a.Category {
		case "revenue":
			data.TotalRevenue += a.Value
		case "expense":
			data.TotalExpenses += a.Value
		}
	}
	data.CashFlow = data.TotalRevenue - data.TotalExpenses

	return data
}

func parseAmount(s string) float64 {
	s = strings.ReplaceAll(s, ",", "")
	var v float64
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			frac := s[i+1:]
			scale := 1.0
			for j := 0; j < len(frac); j++ {
				scale /= 10
				v += float64(frac[j]-'0') * scale
			}
			break
		}
		v = v*10 + float64(s[i]-'0')
	}
	return v
}

func extractContractTerms(text, lower string) *ContractTerms {
	terms := &ContractTerms{}

	seen := make(map[string]bool)
	for _, m := range partyPattern.FindAllStringSubmatch(text, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			terms.Parties = append(terms.Parties, m[1])
		}
	}

	for _, entry := range classificationOrder {
		if entry.docType != DocContract {
			continue
		}
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				terms.Terms = append(terms.Terms, ContractTerm{Term: kw, Importance: TermImportant})
			}
		}
	}

	if m := symbolAmountPattern.FindStringSubmatch(text); m != nil {
		v := parseAmount(m[2])
		terms.Value = &v
		terms.Currency = currencyBySymbol[m[1]]
	}

	return terms
}

func extractRisks(text, lower string) []RiskIndicator {
	var risks []RiskIndicator
	for _, kw := range riskKeywords {
		idx := strings.Index(lower, kw)
		if idx < 0 {
			continue
		}
		risks = append(risks, RiskIndicator{
			Keyword:  kw,
			Context:  contextAround(text, idx, len(kw)),
			Severity: riskSeverityDefault,
		})
	}
	return risks
}

func extractCompliance(lower string) []ComplianceCheck {
	var checks []ComplianceCheck
	for _, kw := range complianceKeywords {
		if strings.Contains(lower, kw) {
			checks = append(checks, ComplianceCheck{
				Requirement: kw,
				Status:      complianceStatusFound,
			})
		}
	}
	return checks
}

func extractActionItems(text string) []ActionItem {
	var items []ActionItem
	for _, line := range actionPattern.FindAllString(text, -1) {
		desc := strings.TrimSpace(line)
		if desc == "" {
			continue
		}
		if runes := []rune(desc); len(runes) > maxActionItemRuneCount {
			desc = string(runes[:maxActionItemRuneCount])
		}
		items = append(items, ActionItem{
			Description: desc,
			Priority:    actionPriorityDefault,
			Status:      actionStatusDefault,
		})
	}
	return items
}

func extractMetrics(text, lower string) BusinessMetrics {
	metrics := BusinessMetrics{}

	for _, m := range percentPattern.FindAllString(text, -1) {
		metrics.KPIs = append(metrics.KPIs, strings.TrimSpace(m))
	}
	for _, w := range trendWords {
		if idx := strings.Index(lower, w); idx >= 0 {
			metrics.Trends = append(metrics.Trends, contextAround(text, idx, len(w)))
		}
	}
	for _, w := range benchmarkWords {
		if idx := strings.Index(lower, w); idx >= 0 {
			metrics.Benchmarks = append(metrics.Benchmarks, contextAround(text, idx, len(w)))
		}
	}

	return metrics
}

// contextAround returns a trimmed window of text surrounding a match,
// clamped to rune boundaries by construction of the indices used.
func contextAround(text string, idx, matchLen int) string {
	start := idx - contextWindowRunes
	if start < 0 {
		start = 0
	}
	end := idx + matchLen + contextWindowRunes
	if end > len(text) {
		end = len(text)
	}
	// Back off to byte positions that do not split UTF-8 sequences.
	for start > 0 && start < len(text) && (text[start]&0xC0) == 0x80 {
		start++
	}
	for end < len(text) && (text[end]&0xC0) == 0x80 {
		end--
	}
	return strings.TrimSpace(text[start:end])
}
