// Package app is the terminal front-end: it stands in for the presentation
// layer the core serves, feeding bytes + extension hints into the
// conversion pipeline and rendering what comes back.
package app

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/Lucalangella/FiletxtKPI/analyze"
	"github.com/Lucalangella/FiletxtKPI/config"
	"github.com/Lucalangella/FiletxtKPI/convert"
	"github.com/Lucalangella/FiletxtKPI/logging"
)

var version = "0.3"

// Styles shared by CLI and TUI output.
var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7aa2f7"))

	subHeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7dcfff")).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a9b1d6"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9ece6a")).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e0af68")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f7768e")).
			Bold(true)

	separatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#565f89"))
)

// Arguments holds the parsed command line.
type Arguments struct {
	Command  string
	Path     string
	Business bool
	JSON     bool
	TUI      bool
	Options  config.Options
}

// Run is the CLI entry point. It returns a process exit code.
func Run(argv []string) int {
	args := parseArguments(argv, config.Load())
	logging.Init(args.Options.Verbose)

	switch args.Command {
	case "convert":
		return runConvert(args)
	case "analyze":
		return runAnalyze(args)
	case "batch":
		return runBatch(args)
	case "help":
		showUsage()
		return 0
	case "version":
		showVersion()
		return 0
	default:
		showUsage()
		return 1
	}
}

// parseArguments parses command line args, env options as the base layer.
func parseArguments(argv []string, opts config.Options) *Arguments {
	result := &Arguments{Command: "", Options: opts}

	expectModel := false
	expectWorkers := false

	for _, a := range argv {
		if expectModel {
			result.Options.TaggerModelPath = a
			expectModel = false
			continue
		}
		if expectWorkers {
			if n, err := strconv.Atoi(a); err == nil && n > 0 {
				result.Options.Workers = n
			}
			expectWorkers = false
			continue
		}
		switch a {
		case "--business":
			result.Business = true
		case "--json":
			result.JSON = true
		case "--tui":
			result.TUI = true
		case "--vader":
			result.Options.UseVader = true
		case "--render-markdown":
			result.Options.RenderMarkdown = true
		case "--verbose":
			result.Options.Verbose = true
		case "--model":
			expectModel = true
		case "--workers":
			expectWorkers = true
		case "--help", "-h":
			result.Command = "help"
		case "--version", "-v":
			result.Command = "version"
		default:
			if result.Command == "" {
				result.Command = a
			} else if result.Path == "" {
				result.Path = a
			}
		}
	}

	return result
}

// buildAnalyzer assembles the analytics engine from the options.
func buildAnalyzer(opts config.Options) (*analyze.Analyzer, func()) {
	analyzer := analyze.NewAnalyzer()
	cleanup := func() {}

	if opts.UseVader {
		analyzer.Sentiment = analyze.NewVaderScorer()
	}
	if opts.TaggerModelPath != "" {
		tagger, err := analyze.NewHugotTagger(opts.TaggerModelPath)
		if err != nil {
			slog.Warn("falling back to heuristic tagger", slog.String("error", err.Error()))
		} else {
			analyzer.Entities.Tagger = tagger
			cleanup = func() { _ = tagger.Close() }
		}
	}

	return analyzer, cleanup
}

func runConvert(args *Arguments) int {
	if args.Path == "" {
		showUsage()
		return 1
	}

	start := time.Now()
	text, err := convert.NewConverter().ConvertFile(args.Path)
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error: "+err.Error()))
		return 1
	}
	slog.Debug("conversion finished",
		slog.String("path", args.Path),
		slog.Duration("elapsed", time.Since(start)))

	fmt.Println(text)
	return 0
}

func runAnalyze(args *Arguments) int {
	if args.Path == "" {
		showUsage()
		return 1
	}

	text, err := convert.NewConverter().ConvertFile(args.Path)
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error: "+err.Error()))
		return 1
	}

	analysisInput := text
	if args.Options.RenderMarkdown && isMarkdownPath(args.Path) {
		analysisInput = convert.MarkdownToPlain(text)
	}

	analyzer, cleanup := buildAnalyzer(args.Options)
	defer cleanup()

	data := analyzer.Extract(analysisInput)
	var business *analyze.BusinessDocumentAnalysis
	if args.Business {
		b := analyzer.ExtractBusiness(analysisInput)
		business = &b
	}

	if args.TUI {
		return runTUI(args.Path, data, business)
	}
	if args.JSON {
		return printJSON(struct {
			File     string                            `json:"file"`
			Data     analyze.ExtractedData             `json:"data"`
			Business *analyze.BusinessDocumentAnalysis `json:"business,omitempty"`
		}{args.Path, data, business})
	}

	printAnalysis(args.Path, data, business)
	return 0
}

func runBatch(args *Arguments) int {
	if args.Path == "" {
		showUsage()
		return 1
	}

	runner := convert.NewBatchRunner(convert.NewConverter(), config.AllTypes())
	runner.SkipDir = config.ShouldSkipDirectory
	if args.Options.Workers > 0 {
		runner.Workers = args.Options.Workers
	}
	runner.OnProgress = func(processed, total int, path string) {
		slog.Debug("converted", slog.Int("n", processed), slog.Int("total", total), slog.String("path", path))
	}

	start := time.Now()
	results, err := runner.Run(context.Background(), args.Path)
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error: "+err.Error()))
		return 1
	}

	converted, failed := 0, 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Println(warningStyle.Render("✗ " + r.Path + ": " + r.Err.Error()))
			continue
		}
		converted++
		fmt.Printf("%s %s (%d chars, %s)\n",
			successStyle.Render("✓"), r.Path, len(r.Text), r.Duration.Round(time.Millisecond))
	}

	fmt.Println(separatorStyle.Render(separator()))
	fmt.Println(infoStyle.Render(fmt.Sprintf(
		"📊 %d converted, %d failed in %.2fs", converted, failed, time.Since(start).Seconds())))
	return 0
}

func printAnalysis(path string, data analyze.ExtractedData, business *analyze.BusinessDocumentAnalysis) {
	sep := separatorStyle.Render(separator())

	fmt.Println(headerStyle.Render("📄 " + path))
	fmt.Println(sep)

	s := data.Statistics
	fmt.Println(subHeaderStyle.Render("Statistics"))
	fmt.Printf("  words %d • characters %d • sentences %d • paragraphs %d\n",
		s.WordCount, s.CharacterCount, s.SentenceCount, s.ParagraphCount)
	fmt.Printf("  avg word length %.1f • reading time %.1f min\n",
		s.AverageWordLength, s.ReadingTimeMinutes)

	fmt.Println(subHeaderStyle.Render("Sentiment"))
	fmt.Printf("  %s (score %.2f, confidence %.2f)\n",
		data.Sentiment.Label, data.Sentiment.Score, data.Sentiment.Confidence)

	if len(data.Keywords) > 0 {
		fmt.Println(subHeaderStyle.Render("Keywords"))
		var words []string
		for _, k := range data.Keywords {
			words = append(words, fmt.Sprintf("%s(%d)", k.Word, k.Frequency))
		}
		fmt.Println("  " + strings.Join(words, " "))
	}

	if len(data.Entities) > 0 {
		fmt.Println(subHeaderStyle.Render("Entities"))
		for _, e := range data.Entities {
			fmt.Printf("  %-14s %s ×%d\n", e.Type, e.Name, e.Occurrences)
		}
	}

	if business != nil {
		fmt.Println(sep)
		fmt.Println(subHeaderStyle.Render("Business document: " + string(business.DocumentType)))
		if business.Financial != nil {
			for _, a := range business.Financial.Amounts {
				fmt.Printf("  amount %.2f %s (%s)\n", a.Value, a.Currency, a.Category)
			}
		}
		if business.Contract != nil && len(business.Contract.Parties) > 0 {
			fmt.Println("  parties: " + strings.Join(business.Contract.Parties, ", "))
		}
		for _, r := range business.RiskIndicators {
			fmt.Printf("  risk [%s] %s\n", r.Severity, r.Keyword)
		}
		for _, c := range business.ComplianceChecks {
			fmt.Printf("  compliance [%s] %s\n", c.Status, c.Requirement)
		}
		for _, a := range business.ActionItems {
			fmt.Printf("  action [%s] %s\n", a.Status, a.Description)
		}
	}
}

func printJSON(v any) int {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error: "+err.Error()))
		return 1
	}
	return 0
}

func isMarkdownPath(path string) bool {
	lower := strings.ToLower(path)
	return strings.HasSuffix(lower, ".md") || strings.HasSuffix(lower, ".markdown")
}

// separator builds a horizontal rule sized to the terminal.
func separator() string {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		width = 80
	}
	if width > 120 {
		width = 120
	}
	return strings.Repeat("━", width)
}

// showUsage displays usage information.
func showUsage() {
	fmt.Println(headerStyle.Render("filetxtkpi - Document Text Conversion & Analytics"))
	fmt.Println()
	fmt.Println(subHeaderStyle.Render("USAGE:"))
	fmt.Println("  filetxtkpi convert <file>")
	fmt.Println("  filetxtkpi analyze <file> [--business] [--json] [--tui] [--vader] [--render-markdown] [--model <path>]")
	fmt.Println("  filetxtkpi batch <dir> [--workers N]")
	fmt.Println()
	fmt.Println(subHeaderStyle.Render("OPTIONS:"))
	fmt.Println("  --business         run the business-document classification pass")
	fmt.Println("  --json             machine-readable output")
	fmt.Println("  --tui              browse the analysis interactively")
	fmt.Println("  --vader            VADER sentiment instead of the lexicon scorer")
	fmt.Println("  --render-markdown  render markdown to plain text before analytics")
	fmt.Println("  --model <path>     token-classification model (hugot builds)")
	fmt.Println("  --workers N        batch worker count")
	fmt.Println()
	fmt.Println(infoStyle.Render("Formats: docx odt pdf doc md eml mbox, plus generic text (hex fallback for anything else)"))
}

// showVersion displays version information.
func showVersion() {
	fmt.Println(successStyle.Render("filetxtkpi v" + version))
}
