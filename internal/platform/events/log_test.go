package events

import (
	"bytes"
	"strings"
	"testing"
)

func TestLogListener(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(&buf, "flappy", "debug")
	if err != nil {
		t.Fatalf("NewLogger() failed: %v", err)
	}
	l := NewLogListener(logger)

	l.GameStarted()
	l.ScoreChanged(1)
	l.GameOver(1)
	l.GameStarted()

	out := buf.String()
	for _, want := range []string{"game started", "point scored", "game over", "score=1", "game=2"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
	if l.Games() != 2 {
		t.Errorf("Games() = %d, expected 2", l.Games())
	}
}

func TestLogListenerLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(&buf, "flappy", "info")
	if err != nil {
		t.Fatalf("NewLogger() failed: %v", err)
	}
	l := NewLogListener(logger)

	l.ScoreChanged(3)
	if buf.Len() != 0 {
		t.Errorf("points should not be logged at info level, got %q", buf.String())
	}
}

func TestNewLoggerRejectsUnknownLevel(t *testing.T) {
	if _, err := NewLogger(&bytes.Buffer{}, "flappy", "loud"); err == nil {
		t.Error("expected an error for an unknown level")
	}
}
