package tui

import (
	"strings"
	"sync"
)

// Log keeps the last few lines written to it. It is an io.Writer so that a
// log.Logger can feed it.
type Log struct {
	mu    sync.Mutex
	lines []string
	limit int
	part  string
}

// NewLog keeps up to limit lines.
func NewLog(limit int) *Log {
	return &Log{limit: limit}
}

func (l *Log) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	text := l.part + string(p)
	parts := strings.Split(text, "\n")
	l.part = parts[len(parts)-1]
	l.lines = append(l.lines, parts[:len(parts)-1]...)
	if over := len(l.lines) - l.limit; over > 0 {
		l.lines = append(l.lines[:0:0], l.lines[over:]...)
	}
	return len(p), nil
}

// Lines returns the retained lines, oldest first.
func (l *Log) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}
