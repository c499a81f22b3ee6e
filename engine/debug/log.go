// Package debug holds the in-game debug sink. It is a plain value owned by
// the turn state and handed to the renderer; nothing here is global.
package debug

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
)

const maxEntries = 64

// Entry is one recorded game event
type Entry struct {
	Tick     uint64
	Category string // move, attack, phase, plan
	Message  string
}

// String formats the entry as a fixed-width line.
//
//	[T=0042] attack   red infantry hits blue tank
func (e Entry) String() string {
	return fmt.Sprintf("[T=%04d] %-8s %s", e.Tick, e.Category, e.Message)
}

// Log keeps a ring buffer of recent events plus the scratch lines written
// during the current frame
type Log struct {
	entries []Entry
	head    int
	count   int
	frame   []string
}

// NewLog creates an empty log
func NewLog() *Log {
	return &Log{entries: make([]Entry, maxEntries)}
}

// Add records an event, dropping the oldest once full
func (l *Log) Add(tick uint64, category, format string, args ...any) {
	l.entries[l.head] = Entry{Tick: tick, Category: category, Message: fmt.Sprintf(format, args...)}
	l.head = (l.head + 1) % maxEntries
	if l.count < maxEntries {
		l.count++
	}
}

// Recent returns events oldest first
func (l *Log) Recent() []Entry {
	out := make([]Entry, l.count)
	for i := range l.count {
		out[i] = l.entries[(l.head-l.count+i+maxEntries)%maxEntries]
	}
	return out
}

// Printf writes a line to this frame's debug panel
func (l *Log) Printf(format string, args ...any) {
	l.frame = append(l.frame, fmt.Sprintf(format, args...))
}

// Lines returns this frame's panel lines without clearing them
func (l *Log) Lines() []string { return l.frame }

// Drain returns this frame's panel lines and clears them
func (l *Log) Drain() []string {
	out := l.frame
	l.frame = nil
	return out
}

// Report renders the panel lines followed by the event history
func (l *Log) Report() string {
	var b strings.Builder
	for _, s := range l.frame {
		b.WriteString(s)
		b.WriteByte('\n')
	}
	if len(l.frame) > 0 {
		b.WriteByte('\n')
	}
	for _, e := range l.Recent() {
		b.WriteString(e.String())
		b.WriteByte('\n')
	}
	return b.String()
}

var writeClipboard = clipboard.WriteAll

// CopyToClipboard puts the report on the system clipboard
func (l *Log) CopyToClipboard() error {
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard not available on this system")
	}
	if err := writeClipboard(l.Report()); err != nil {
		return fmt.Errorf("copy debug report: %w", err)
	}
	return nil
}
