package convert

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"
)

// BatchResult is the outcome of converting one file in a batch run.
type BatchResult struct {
	Path     string
	Text     string
	Duration time.Duration
	Err      error
}

// BatchRunner converts every recognized file under a directory using a
// worker pool. Conversions share no state, so workers need no locking
// beyond the channels that feed them.
type BatchRunner struct {
	Converter  *Converter
	Workers    int
	Extensions map[string]bool
	SkipDir    func(name string) bool
	OnProgress func(processed, total int, path string)
}

// NewBatchRunner builds a runner over the given converter with an I/O-bound
// default worker count.
func NewBatchRunner(c *Converter, extensions []string) *BatchRunner {
	extMap := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		extMap[normalizeExt(ext)] = true
	}
	return &BatchRunner{
		Converter:  c,
		Workers:    runtime.NumCPU() * 2,
		Extensions: extMap,
	}
}

// Run walks root, converts every matching file, and returns per-file
// results in completion order. Cancelling the context stops dispatching;
// in-flight conversions finish (they are not internally interruptible).
func (br *BatchRunner) Run(ctx context.Context, root string) ([]BatchResult, error) {
	files, err := br.discover(root)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}

	jobs := make(chan string, len(files))
	out := make(chan BatchResult, len(files))

	var wg sync.WaitGroup
	for i := 0; i < br.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				start := time.Now()
				text, err := br.Converter.ConvertFile(path)
				out <- BatchResult{
					Path:     path,
					Text:     text,
					Duration: time.Since(start),
					Err:      err,
				}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case jobs <- path:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(out)
	}()

	var results []BatchResult
	for res := range out {
		results = append(results, res)
		if br.OnProgress != nil {
			br.OnProgress(len(results), len(files), res.Path)
		}
	}
	return results, nil
}

// discover finds candidate files under root, honoring the skip rules.
func (br *BatchRunner) discover(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable entries are skipped, not fatal.
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if br.SkipDir != nil && path != root && br.SkipDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		ext := normalizeExt(strings.TrimPrefix(filepath.Ext(path), "."))
		if len(br.Extensions) == 0 || br.Extensions[ext] {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}
