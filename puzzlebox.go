package puzzlebox

import (
	"context"
	"log/slog"
	"time"

	"github.com/aretw0/puzzlebox/internal/logging"
	"github.com/aretw0/puzzlebox/internal/metrics"
	"github.com/aretw0/puzzlebox/internal/puzzles"
	"github.com/aretw0/puzzlebox/pkg/domain"
	"github.com/aretw0/puzzlebox/pkg/registry"
)

// Box is the high-level entry point for the puzzlebox library.
// It owns the puzzle registry and wraps every solve with logging and metrics.
type Box struct {
	registry *registry.Registry
	logger   *slog.Logger
	metrics  *metrics.Recorder
}

// Option defines a functional option for configuring the Box.
type Option func(*Box)

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Box) {
		b.logger = logger
	}
}

// WithMetrics records every solve on the given recorder.
func WithMetrics(rec *metrics.Recorder) Option {
	return func(b *Box) {
		b.metrics = rec
	}
}

// New creates a Box with all built-in puzzles registered.
func New(opts ...Option) *Box {
	b := &Box{}
	for _, opt := range opts {
		opt(b)
	}
	if b.logger == nil {
		b.logger = logging.NewNop()
	}
	b.registry = registry.NewRegistry()
	puzzles.Register(b.registry, b.logger)
	return b
}

// Puzzles lists the registered puzzles sorted by name.
func (b *Box) Puzzles() []registry.Puzzle {
	return b.registry.List()
}

// Lookup returns a registered puzzle by name.
func (b *Box) Lookup(name string) (registry.Puzzle, error) {
	return b.registry.Lookup(name)
}

// Describe returns the markdown description of a puzzle.
func (b *Box) Describe(name string) (string, error) {
	p, err := b.registry.Lookup(name)
	if err != nil {
		return "", err
	}
	return p.Description, nil
}

// Solve runs the named puzzle on input with the given parameters.
// Failures are returned to the caller and only logged at debug level.
func (b *Box) Solve(ctx context.Context, name string, input []byte, params map[string]any) (domain.Answer, error) {
	b.logger.Info("solving", "puzzle", name, "input_bytes", len(input))

	start := time.Now()
	ans, err := b.registry.Solve(ctx, name, input, params)
	elapsed := time.Since(start)

	if b.metrics != nil {
		b.metrics.Observe(name, elapsed, err)
	}
	if err != nil {
		b.logger.Debug("solve failed", "puzzle", name, "duration", elapsed, "error", err)
		return domain.Answer{}, err
	}
	b.logger.Info("solved", "puzzle", name, "duration", elapsed, "parts", len(ans.Parts))
	return ans, nil
}
