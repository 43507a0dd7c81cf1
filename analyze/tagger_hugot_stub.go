//go:build !hugot
// +build !hugot

package analyze

import "errors"

// ErrTaggerDisabled is returned when model-backed tagging is not compiled
// in. Builds with the "hugot" tag replace this stub; see tagger_hugot.go.
var ErrTaggerDisabled = errors.New("model-backed entity tagging disabled in this build")

// HugotTagger is a stub in default builds.
type HugotTagger struct{}

// NewHugotTagger always fails in default builds.
func NewHugotTagger(modelPath string) (*HugotTagger, error) {
	return nil, ErrTaggerDisabled
}

// Close is a no-op on the stub.
func (t *HugotTagger) Close() error { return nil }

// Tag returns nothing on the stub.
func (t *HugotTagger) Tag(text string) []TaggedWord { return nil }
