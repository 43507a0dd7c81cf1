// Package logging configures the process-wide slog handler.
package logging

import (
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

// Init installs a tinted slog handler as the default logger.
func Init(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	handler := tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	})
	slog.SetDefault(slog.New(handler))
}
