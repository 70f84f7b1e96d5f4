package search

import (
	"io"
	"log/slog"
)

// Option configures a Searcher at construction time.
type Option func(*config)

type config struct {
	hashSizeHint int
	logger       *slog.Logger
}

func defaultConfig() config {
	return config{hashSizeHint: DefaultPowerTwoSize, logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// WithHashSizeHint sets the power-of-two hash table size hint passed to
// pre-processing. See DefaultPowerTwoSize for the default, and
// MaxPowerTwoSize for the bound on its magnitude.
func WithHashSizeHint(hint int) Option {
	return func(c *config) { c.hashSizeHint = hint }
}

// WithLogger attaches a structured logger that receives one Debug-level
// record per direction when pre-processing runs, giving the pattern length
// and whether the shift table is usable (false means the ShiftOr fallback
// is used). The chosen table size is not logged. A nil logger is ignored;
// by default Searchers log nothing.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
