// Package events adapts session notifications to the platform's outputs.
package events

import (
	"io"

	"github.com/charmbracelet/log"
)

// LogListener writes session notifications as structured log records.
type LogListener struct {
	logger *log.Logger
	games  int
}

// NewLogger creates the logger used by the commands. level is one of
// debug, info, warn or error.
func NewLogger(w io.Writer, prefix, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           lvl,
	}), nil
}

// NewLogListener creates a listener logging to logger.
func NewLogListener(logger *log.Logger) *LogListener {
	return &LogListener{logger: logger}
}

// ScoreChanged logs every point at debug level.
func (l *LogListener) ScoreChanged(score int) {
	l.logger.Debug("point scored", "game", l.games, "score", score)
}

// GameStarted logs the start of a new game.
func (l *LogListener) GameStarted() {
	l.games++
	l.logger.Info("game started", "game", l.games)
}

// GameOver logs the final score.
func (l *LogListener) GameOver(finalScore int) {
	l.logger.Info("game over", "game", l.games, "score", finalScore)
}

// Games returns how many games have been started.
func (l *LogListener) Games() int {
	return l.games
}
