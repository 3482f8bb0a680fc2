package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// DefaultPath is the log file, relative to the working directory (project root when run via go run ./cmd/demo).
const DefaultPath = "logs/scene.txt"

// maxLines bounds the in-memory history shown by the debug overlay; the file keeps everything.
const maxLines = 200

// Logger keeps the most recent lines in memory and appends every line to a file on disk.
// Safe for concurrent use.
type Logger struct {
	mu    sync.Mutex
	path  string
	lines []string
	now   func() time.Time
}

// New returns a Logger writing to path (DefaultPath when empty) and makes sure its directory exists.
// An empty path after defaulting, or a directory that cannot be created, leaves the logger memory-only.
func New(path string) *Logger {
	if path == "" {
		path = DefaultPath
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		path = ""
	}
	return &Logger{path: path, lines: make([]string, 0, maxLines), now: time.Now}
}

// Path returns the file the logger appends to, or "" when memory-only.
func (l *Logger) Path() string {
	return l.path
}

// Log stores line prefixed with [timestamp] and appends it to the log file.
func (l *Logger) Log(line string) {
	l.mu.Lock()
	stamped := "[" + l.now().Format("2006-01-02 15:04:05") + "] " + line
	if len(l.lines) == maxLines {
		copy(l.lines, l.lines[1:])
		l.lines = l.lines[:maxLines-1]
	}
	l.lines = append(l.lines, stamped)
	path := l.path
	l.mu.Unlock()

	if path == "" {
		return
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	_, _ = f.WriteString(stamped + "\n")
	_ = f.Close()
}

// Logf formats according to format and logs the result.
func (l *Logger) Logf(format string, args ...any) {
	l.Log(fmt.Sprintf(format, args...))
}

// Lines returns a copy of the stored lines, oldest first.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

// Tail returns up to n of the most recent lines, oldest first.
func (l *Logger) Tail(n int) []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	if n > len(l.lines) {
		n = len(l.lines)
	}
	if n <= 0 {
		return nil
	}
	out := make([]string, n)
	copy(out, l.lines[len(l.lines)-n:])
	return out
}
