// Package testlog provides loggers writing to the output of a test.
package testlog

import (
	"log/slog"
	"testing"
	"time"

	"github.com/lmittmann/tint"
)

// New returns a logger that writes colorless records of all levels to the output of t.
func New(t *testing.T) *slog.Logger {
	t.Helper()
	return slog.New(tint.NewHandler(t.Output(), &tint.Options{
		Level:      slog.LevelDebug,
		TimeFormat: time.StampMicro,
		NoColor:    true,
	}))
}
