package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/dbdplan/pkg/observability"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name  string
		level log.Level
		emit  func(*log.Logger)
		want  bool
	}{
		{"info at info", log.InfoLevel, func(l *log.Logger) { l.Info("plan written") }, true},
		{"debug at info", log.InfoLevel, func(l *log.Logger) { l.Debug("layout ready") }, false},
		{"debug at debug", log.DebugLevel, func(l *log.Logger) { l.Debug("layout ready") }, true},
		{"warn at info", log.InfoLevel, func(l *log.Logger) { l.Warn("placeholder missing") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.emit(newLogger(&buf, tt.level))
			if got := buf.Len() > 0; got != tt.want {
				t.Errorf("logged = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestProgressDone(t *testing.T) {
	var buf bytes.Buffer
	prog := newProgress(newLogger(&buf, log.InfoLevel))
	time.Sleep(5 * time.Millisecond)
	prog.done("Placeholders generated")

	out := buf.String()
	if !strings.Contains(out, "Placeholders generated (") || !strings.Contains(out, "ms)") {
		t.Errorf("progress output = %q", out)
	}
}

func TestLoggerContext(t *testing.T) {
	if loggerFromContext(context.Background()) != log.Default() {
		t.Error("empty context should give log.Default()")
	}

	var buf bytes.Buffer
	custom := newLogger(&buf, log.InfoLevel)
	ctx := withLogger(context.Background(), custom)
	if loggerFromContext(ctx) != custom {
		t.Fatal("loggerFromContext should return the attached logger")
	}
	loggerFromContext(ctx).Info("settings loaded")
	if !strings.Contains(buf.String(), "settings loaded") {
		t.Error("attached logger should write to its buffer")
	}
}

func TestLogHooks(t *testing.T) {
	var buf bytes.Buffer
	h := logHooks{logger: newLogger(&buf, log.DebugLevel)}
	ctx := context.Background()

	h.OnLayoutStart(ctx, "September-October 2026")
	h.OnLayoutComplete(ctx, "September-October 2026", 30, time.Millisecond, nil)
	h.OnRenderStart(ctx, "September-October 2026", 30)
	h.OnRenderComplete(ctx, "September-October 2026", "", 0, errors.New("disk full"))
	h.OnCacheMiss("resize")
	h.OnCacheSet("resize", 1)
	h.OnCacheHit("resize")

	out := buf.String()
	for _, want := range []string{"layout started", "layout complete", "cells=30", "render failed", "disk full", "cache miss", "cache set", "entries=1", "cache hit"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestLogHooksQuietAtInfo(t *testing.T) {
	var buf bytes.Buffer
	h := logHooks{logger: newLogger(&buf, log.InfoLevel)}
	h.OnCacheHit("fonts")
	h.OnLayoutStart(context.Background(), "x")
	if buf.Len() != 0 {
		t.Errorf("hooks logged at info level: %s", buf.String())
	}
}

func TestInstallHooks(t *testing.T) {
	defer observability.Reset()

	var buf bytes.Buffer
	c := New(&buf, LogDebug)
	c.InstallHooks()

	observability.Plan().OnRenderStart(context.Background(), "May-June 2026", 31)
	observability.Cache().OnCacheMiss("faces")
	if !strings.Contains(buf.String(), "render started") || !strings.Contains(buf.String(), "cache=faces") {
		t.Errorf("installed hooks did not log:\n%s", buf.String())
	}
}
