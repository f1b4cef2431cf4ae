//go:build unit || e2e

package testutil

import (
	"io"
	"log/slog"
)

// a logger that drops everything, for components that require one
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
