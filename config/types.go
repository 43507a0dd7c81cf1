// Package config holds the extension tables and environment-backed
// options shared by the CLI and batch runner.
package config

import (
	"os"
	"strings"

	"github.com/subosito/gotenv"
)

// ArchiveMarkupTypes are ZIP-structured word-processor containers.
var ArchiveMarkupTypes = []string{"docx", "odt"}

// PagedTypes are paginated document formats.
var PagedTypes = []string{"pdf"}

// MarkupTypes are lightweight-markup formats (decode only, no transform).
var MarkupTypes = []string{"md", "markdown"}

// BinaryTypes are legacy binaries and mail formats with dedicated salvage.
var BinaryTypes = []string{"doc", "eml", "mbox"}

// GenericTypes are plain-text formats that take the generic decode path.
var GenericTypes = []string{"txt", "log", "csv", "cfg", "conf", "ini"}

// AllTypes returns every extension the batch runner picks up.
func AllTypes() []string {
	var all []string
	all = append(all, ArchiveMarkupTypes...)
	all = append(all, PagedTypes...)
	all = append(all, MarkupTypes...)
	all = append(all, BinaryTypes...)
	all = append(all, GenericTypes...)
	return all
}

// Options are the runtime knobs, populated from flags and environment.
type Options struct {
	// UseVader switches sentiment scoring to the VADER-backed scorer.
	UseVader bool
	// RenderMarkdown renders markdown to plain text before analytics.
	RenderMarkdown bool
	// TaggerModelPath points at a token-classification model for
	// hugot-enabled builds; empty keeps the heuristic tagger.
	TaggerModelPath string
	// Workers overrides the batch worker count when positive.
	Workers int
	// Verbose raises the log level.
	Verbose bool
}

// Load reads an optional .env file and returns environment-seeded options.
// Flags parsed later may override any of these.
func Load() Options {
	_ = gotenv.Load()

	return Options{
		UseVader:        envBool("USE_VADER"),
		RenderMarkdown:  envBool("RENDER_MARKDOWN"),
		TaggerModelPath: os.Getenv("TAGGER_MODEL_PATH"),
		Verbose:         envBool("VERBOSE"),
	}
}

func envBool(key string) bool {
	switch strings.ToLower(os.Getenv(key)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

// ShouldSkipDirectory reports whether a directory is skipped during batch
// discovery.
func ShouldSkipDirectory(name string) bool {
	skip := map[string]bool{
		".git":         true,
		".svn":         true,
		"node_modules": true,
		"vendor":       true,
		"build":        true,
		"dist":         true,
		"tmp":          true,
		"temp":         true,
	}
	return skip[name] || strings.HasPrefix(name, ".")
}
