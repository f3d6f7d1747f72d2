// Package debuglog writes structured JSON-lines debug events to a file.
package debuglog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// DefaultPath is the fixed path for debug logs.
const DefaultPath = "pagetable-debug.log"

// Logger logs client state transitions and events. A nil or disabled Logger
// discards everything, so callers never need to check.
type Logger struct {
	mu      sync.Mutex
	w       io.Writer
	closer  io.Closer
	enabled bool
	seq     int
	now     func() time.Time
}

// Open creates a logger writing to path when enabled is true.
// When enabled is false it returns a disabled logger.
func Open(enabled bool, path string) (*Logger, error) {
	if !enabled {
		return &Logger{}, nil
	}
	if path == "" {
		path = DefaultPath
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating debug log: %w", err)
	}

	l := &Logger{w: f, closer: f, enabled: true, now: time.Now}
	l.Log("DEBUG_START", map[string]any{
		"log_file": path,
		"time":     l.now().Format(time.RFC3339),
	})
	return l, nil
}

// New returns an enabled logger writing to w. Mostly useful in tests.
func New(w io.Writer) *Logger {
	return &Logger{w: w, enabled: true, now: time.Now}
}

// Enabled reports whether events are being written.
func (l *Logger) Enabled() bool {
	if l == nil {
		return false
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.active()
}

func (l *Logger) active() bool {
	return l.enabled && l.w != nil
}

// Close writes the end marker and closes the underlying file. Events logged
// afterwards are discarded.
func (l *Logger) Close() error {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.active() {
		return nil
	}
	l.write("DEBUG_END", map[string]any{
		"time": l.now().Format(time.RFC3339),
	})

	l.enabled = false
	if l.closer != nil {
		return l.closer.Close()
	}
	return nil
}

// Log writes a structured log entry.
func (l *Logger) Log(event string, data map[string]any) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.active() {
		return
	}
	l.write(event, data)
}

// write emits one entry. mu must be held.
func (l *Logger) write(event string, data map[string]any) {
	l.seq++
	entry := map[string]any{
		"seq":   l.seq,
		"ts":    l.now().Format("15:04:05.000"),
		"event": event,
	}
	for k, v := range data {
		entry[k] = v
	}

	b, _ := json.Marshal(entry)
	_, _ = fmt.Fprintf(l.w, "%s\n", b)
}

// Error logs an error with the context it happened in.
func (l *Logger) Error(context string, err error) {
	if err == nil {
		return
	}
	l.Log("ERROR", map[string]any{
		"context": context,
		"error":   err.Error(),
	})
}
