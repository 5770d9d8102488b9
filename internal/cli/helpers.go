package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/aretw0/puzzlebox"
	"github.com/aretw0/puzzlebox/internal/logging"
	"github.com/aretw0/puzzlebox/internal/metrics"
	"github.com/aretw0/puzzlebox/internal/presentation/tui"
)

// Options carries the persistent command line flags.
type Options struct {
	LogLevel   string
	NoColor    bool
	JSON       bool
	MetricsOut string

	// Stdout and Stderr default to the process streams.
	Stdout io.Writer
	Stderr io.Writer
}

// SignalContext wraps a context and captures the signal that cancelled it.
type SignalContext struct {
	context.Context
	Cancel func()
	stop   sync.Once
	sigCh  chan os.Signal
	sigVal os.Signal
	mu     sync.Mutex
}

// NewSignalContext creates a context that is cancelled on SIGINT or SIGTERM.
// It acts as a drop-in replacement for signal.NotifyContext but allows retrieving the signal.
func NewSignalContext(parent context.Context) *SignalContext {
	ctx, cancel := context.WithCancel(parent)
	sc := &SignalContext{
		Context: ctx,
		Cancel:  cancel,
		sigCh:   make(chan os.Signal, 1),
	}

	signal.Notify(sc.sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		select {
		case sig := <-sc.sigCh:
			sc.mu.Lock()
			sc.sigVal = sig
			sc.mu.Unlock()
			sc.Cancel()
		case <-sc.Context.Done():
			// Context cancelled elsewhere
		}
		sc.stop.Do(func() {
			signal.Stop(sc.sigCh)
		})
	}()

	return sc
}

// Signal returns the signal that caused the context to be cancelled, or nil.
func (sc *SignalContext) Signal() os.Signal {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.sigVal
}

// app bundles everything a command needs.
type app struct {
	opts    Options
	logger  *slog.Logger
	metrics *metrics.Recorder
	box     *puzzlebox.Box
	printer *tui.Printer
	answers tui.AnswerWriter
}

func newApp(opts Options) (*app, error) {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}

	level, err := logging.ParseLevel(opts.LogLevel)
	if err != nil {
		return nil, err
	}
	var logger *slog.Logger
	if opts.Stderr == nil {
		logger = logging.New(level)
	} else {
		logger = logging.NewWithWriter(opts.Stderr, level)
	}

	boxOpts := []puzzlebox.Option{puzzlebox.WithLogger(logger)}
	var rec *metrics.Recorder
	if opts.MetricsOut != "" {
		rec = metrics.NewRecorder()
		boxOpts = append(boxOpts, puzzlebox.WithMetrics(rec))
	}

	a := &app{
		opts:    opts,
		logger:  logger,
		metrics: rec,
		box:     puzzlebox.New(boxOpts...),
		printer: tui.NewPrinter(opts.Stdout, !opts.NoColor && !opts.JSON),
	}
	a.answers = a.printer
	if opts.JSON {
		a.answers = tui.NewJSONWriter(opts.Stdout)
	}
	return a, nil
}

// finish flushes metrics. It runs even when the command failed so that
// failures are recorded.
func (a *app) finish(cmdErr error) error {
	if a.metrics != nil {
		if err := a.metrics.WriteTextfile(a.opts.MetricsOut); err != nil {
			a.logger.Error("failed to write metrics", "path", a.opts.MetricsOut, "error", err)
			if cmdErr == nil {
				return fmt.Errorf("failed to write metrics: %w", err)
			}
		}
	}
	return cmdErr
}

// readInput loads a puzzle input file.
func readInput(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return data, nil
}
