package app

import (
	"fmt"
	"runtime"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/sys/unix"

	"github.com/Lucalangella/FiletxtKPI/analyze"
)

var appStyle = lipgloss.NewStyle().
	Padding(1, 2).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("#7aa2f7"))

// tuiModel browses one analysis result section by section.
type tuiModel struct {
	path     string
	sections []tuiSection
	current  int
	scroll   int

	width  int
	height int

	memUsageText string
	quitting     bool
}

type tuiSection struct {
	title string
	body  string
}

type memUsageMsg struct{ Text string }

// runTUI launches the interactive analysis browser.
func runTUI(path string, data analyze.ExtractedData, business *analyze.BusinessDocumentAnalysis) int {
	m := tuiModel{
		path:     path,
		sections: buildSections(data, business),
	}
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		fmt.Println(errorStyle.Render("Error: " + err.Error()))
		return 1
	}
	return 0
}

func (m tuiModel) Init() tea.Cmd {
	return m.memUsageTick()
}

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "right", "l", "tab", "enter", "n":
			if m.current < len(m.sections)-1 {
				m.current++
			}
			m.scroll = 0
			return m, nil
		case "left", "h", "p":
			if m.current > 0 {
				m.current--
			}
			m.scroll = 0
			return m, nil
		case "home":
			m.current = 0
			m.scroll = 0
			return m, nil
		case "up", "k":
			m.scroll--
			return m, nil
		case "down", "j":
			m.scroll++
			return m, nil
		}
		return m, nil

	case memUsageMsg:
		m.memUsageText = msg.Text
		return m, m.memUsageTick()
	}
	return m, nil
}

func (m tuiModel) View() string {
	width, height := m.width, m.height
	if width <= 0 {
		width = 120
	}
	if height <= 0 {
		height = 30
	}

	if m.quitting {
		return "Goodbye!\n"
	}

	var parts []string
	parts = append(parts, headerStyle.Render("📄 "+m.path))

	// Section tabs
	var tabs []string
	for i, s := range m.sections {
		if i == m.current {
			tabs = append(tabs, successStyle.Render("["+s.title+"]"))
		} else {
			tabs = append(tabs, infoStyle.Render(" "+s.title+" "))
		}
	}
	parts = append(parts, strings.Join(tabs, " "))
	parts = append(parts, infoStyle.Render("⚙️ "+m.memUsageText))

	// Windowed section body
	headerHeight := len(parts)
	chromeHeight := 4
	footerHeight := 1
	contentHeight := height - headerHeight - chromeHeight - footerHeight
	if contentHeight < 1 {
		contentHeight = 1
	}

	lines := strings.Split(m.sections[m.current].body, "\n")
	scroll := m.scroll
	if scroll < 0 {
		scroll = 0
	}
	maxStart := 0
	if len(lines) > contentHeight {
		maxStart = len(lines) - contentHeight
	}
	if scroll > maxStart {
		scroll = maxStart
	}
	end := scroll + contentHeight
	if end > len(lines) {
		end = len(lines)
	}
	window := strings.Join(lines[scroll:end], "\n")
	parts = append(parts, appStyle.Width(width-4).Height(contentHeight).Render(window))

	parts = append(parts, infoStyle.Render("🔚 ←/→ sections • ↑/↓ scroll • q quit"))
	return strings.Join(parts, "\n")
}

func buildSections(data analyze.ExtractedData, business *analyze.BusinessDocumentAnalysis) []tuiSection {
	s := data.Statistics
	stats := fmt.Sprintf(
		"Words       %d\nCharacters  %d\nSentences   %d\nParagraphs  %d\nAvg word    %.2f\nReading     %.1f min",
		s.WordCount, s.CharacterCount, s.SentenceCount, s.ParagraphCount,
		s.AverageWordLength, s.ReadingTimeMinutes)

	sentiment := fmt.Sprintf("Label       %s\nScore       %.3f\nConfidence  %.3f",
		data.Sentiment.Label, data.Sentiment.Score, data.Sentiment.Confidence)

	var kw strings.Builder
	for _, k := range data.Keywords {
		fmt.Fprintf(&kw, "%-20s %3d  %.2f\n", k.Word, k.Frequency, k.Importance)
	}
	if kw.Len() == 0 {
		kw.WriteString("No keywords found.")
	}

	var ents strings.Builder
	for _, e := range data.Entities {
		fmt.Fprintf(&ents, "%-14s %-30s ×%d  %.2f\n", e.Type, e.Name, e.Occurrences, e.Confidence)
	}
	if ents.Len() == 0 {
		ents.WriteString("No entities found.")
	}

	sections := []tuiSection{
		{title: "Statistics", body: stats},
		{title: "Sentiment", body: sentiment},
		{title: "Keywords", body: strings.TrimRight(kw.String(), "\n")},
		{title: "Entities", body: strings.TrimRight(ents.String(), "\n")},
	}

	if business != nil {
		var b strings.Builder
		fmt.Fprintf(&b, "Type: %s\n", business.DocumentType)
		if business.Financial != nil {
			for _, a := range business.Financial.Amounts {
				fmt.Fprintf(&b, "Amount  %.2f %s (%s)\n", a.Value, a.Currency, a.Category)
			}
			if len(business.Financial.Currencies) > 0 {
				fmt.Fprintf(&b, "Currencies: %s\n", strings.Join(business.Financial.Currencies, ", "))
			}
		}
		if business.Contract != nil {
			if len(business.Contract.Parties) > 0 {
				fmt.Fprintf(&b, "Parties: %s\n", strings.Join(business.Contract.Parties, ", "))
			}
			for _, t := range business.Contract.Terms {
				fmt.Fprintf(&b, "Term [%s] %s\n", t.Importance, t.Term)
			}
		}
		for _, r := range business.RiskIndicators {
			fmt.Fprintf(&b, "Risk [%s] %s\n", r.Severity, r.Keyword)
		}
		for _, c := range business.ComplianceChecks {
			fmt.Fprintf(&b, "Compliance [%s] %s\n", c.Status, c.Requirement)
		}
		for _, a := range business.ActionItems {
			fmt.Fprintf(&b, "Action [%s] %s\n", a.Status, a.Description)
		}
		sections = append(sections, tuiSection{title: "Business", body: strings.TrimRight(b.String(), "\n")})
	}

	return sections
}

func (m tuiModel) memUsageTick() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		var rusage unix.Rusage
		_ = unix.Getrusage(unix.RUSAGE_SELF, &rusage)
		var ms runtime.MemStats
		runtime.ReadMemStats(&ms)
		return memUsageMsg{Text: fmt.Sprintf("Heap %.1f MB • RSS %.1f MB",
			float64(ms.HeapAlloc)/(1024*1024), float64(rusage.Maxrss)/1024)}
	})
}
