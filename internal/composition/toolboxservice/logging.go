package toolboxservice

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"toolbox/go-backend/internal/bootstrap/toolboxconfig"
	"toolbox/go-backend/internal/platform/privacylog"
)

// NewLogger builds the process logger described by cfg. Output always passes
// through the privacy sanitizer.
func NewLogger(cfg toolboxconfig.LoggingConfig, w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(cfg.Level))); err != nil {
		return nil, fmt.Errorf("logging level: %w", err)
	}
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	switch strings.ToLower(strings.TrimSpace(cfg.Format)) {
	case "", "json":
		handler = slog.NewJSONHandler(w, opts)
	case "text":
		handler = slog.NewTextHandler(w, opts)
	default:
		return nil, fmt.Errorf("logging format %q is not supported", cfg.Format)
	}
	return slog.New(privacylog.WrapHandler(handler)), nil
}
