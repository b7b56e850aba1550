// Package cli implements the dbdplan command-line interface.
//
// The commands load settings, draw plan images, list periods and manage the
// placeholder images. The CLI is built using cobra and logs through
// charmbracelet/log.
//
// # Commands
//
// The main commands are:
//   - plan: Draw the plan for the period containing a date
//   - periods: List upcoming periods and how their days are split
//   - config: Show, create and check the settings file
//   - assets: Create and list placeholder images
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// reports layout, render and cache events. Loggers are passed through
// context.Context.
//
// # Example
//
//	c := cli.New(os.Stderr, cli.LogInfo)
//	if err := c.RootCommand().ExecuteContext(ctx); err != nil {
//	    os.Exit(1)
//	}
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time, e.g. "Loaded 5 placeholders (12ms)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if ctx == nil {
		return log.Default()
	}
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// =============================================================================
// Hooks
// =============================================================================

// logHooks writes plan and cache events to a logger at debug level.
type logHooks struct {
	logger *log.Logger
}

func (h logHooks) OnLayoutStart(_ context.Context, period string) {
	h.logger.Debug("layout started", "period", period)
}

func (h logHooks) OnLayoutComplete(_ context.Context, period string, cells int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("layout failed", "period", period, "err", err)
		return
	}
	h.logger.Debug("layout complete", "period", period, "cells", cells, "duration", d.Round(time.Microsecond))
}

func (h logHooks) OnRenderStart(_ context.Context, period string, cells int) {
	h.logger.Debug("render started", "period", period, "cells", cells)
}

func (h logHooks) OnRenderComplete(_ context.Context, period, path string, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("render failed", "period", period, "err", err)
		return
	}
	h.logger.Debug("render complete", "period", period, "path", path, "duration", d.Round(time.Millisecond))
}

func (h logHooks) OnCacheHit(name string) {
	h.logger.Debug("cache hit", "cache", name)
}

func (h logHooks) OnCacheMiss(name string) {
	h.logger.Debug("cache miss", "cache", name)
}

func (h logHooks) OnCacheSet(name string, size int) {
	h.logger.Debug("cache set", "cache", name, "entries", size)
}
