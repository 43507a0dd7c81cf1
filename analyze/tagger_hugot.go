//go:build hugot
// +build hugot

package analyze

import (
	"log/slog"

	"github.com/knights-analytics/hugot"
	"github.com/knights-analytics/hugot/pipelines"
)

// HugotTagger backs the NamedEntityTagger capability with a local token
// classification model. It holds the only per-process resources in the
// analytics engine, so callers construct it once and Close it when done.
type HugotTagger struct {
	session  *hugot.Session
	pipeline *pipelines.TokenClassificationPipeline
}

// NewHugotTagger loads a token-classification model from modelPath.
func NewHugotTagger(modelPath string) (*HugotTagger, error) {
	session, err := hugot.NewORTSession()
	if err != nil {
		return nil, err
	}

	config := hugot.TokenClassificationConfig{
		ModelPath: modelPath,
		Name:      "entityTaggingPipeline",
	}
	pipeline, err := hugot.NewPipeline(session, config)
	if err != nil {
		session.Destroy()
		return nil, err
	}

	slog.Info("entity tagging model loaded", slog.String("path", modelPath))
	return &HugotTagger{session: session, pipeline: pipeline}, nil
}

// Close releases the model session.
func (t *HugotTagger) Close() error {
	return t.session.Destroy()
}

// Tag implements NamedEntityTagger. Model labels use the usual BIO tag
// names (PER/ORG/LOC); anything else falls through to the extractor's
// default mapping.
func (t *HugotTagger) Tag(text string) []TaggedWord {
	out, err := t.pipeline.RunPipeline([]string{text})
	if err != nil {
		slog.Warn("entity tagging failed", slog.String("error", err.Error()))
		return nil
	}

	var tagged []TaggedWord
	for _, input := range out.Entities {
		for _, ent := range input {
			tagged = append(tagged, TaggedWord{
				Word:       ent.Word,
				Category:   normalizeModelLabel(ent.Entity),
				Confidence: float64(ent.Score),
			})
		}
	}
	return tagged
}

func normalizeModelLabel(label string) string {
	switch trimBIOPrefix(label) {
	case "PER", "PERSON":
		return "person"
	case "ORG":
		return "organization"
	case "LOC", "GPE":
		return "location"
	default:
		return label
	}
}

func trimBIOPrefix(label string) string {
	if len(label) > 2 && (label[0] == 'B' || label[0] == 'I') && label[1] == '-' {
		return label[2:]
	}
	return label
}
