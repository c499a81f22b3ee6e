package debug

import (
	"strings"
	"testing"
)

func TestLog_RingKeepsNewest(t *testing.T) {
	l := NewLog()
	for i := range maxEntries + 3 {
		l.Add(uint64(i), "move", "step %d", i)
	}
	got := l.Recent()
	if len(got) != maxEntries {
		t.Fatalf("len = %d, want %d", len(got), maxEntries)
	}
	if got[0].Message != "step 3" || got[len(got)-1].Tick != uint64(maxEntries+2) {
		t.Fatalf("unexpected window: first %+v last %+v", got[0], got[len(got)-1])
	}
}

func TestLog_FrameLines(t *testing.T) {
	l := NewLog()
	l.Printf("cursor %d,%d", 3, 4)
	l.Printf("state %s", "none")
	if len(l.Lines()) != 2 {
		t.Fatalf("lines = %v", l.Lines())
	}
	lines := l.Drain()
	if lines[0] != "cursor 3,4" || len(l.Lines()) != 0 {
		t.Fatalf("drain = %v, left %v", lines, l.Lines())
	}
}

func TestLog_Report(t *testing.T) {
	l := NewLog()
	l.Printf("selected none")
	l.Add(42, "attack", "red infantry hits blue tank")
	r := l.Report()
	if !strings.HasPrefix(r, "selected none\n\n") {
		t.Fatalf("report should start with panel lines:\n%s", r)
	}
	if !strings.Contains(r, "[T=0042] attack   red infantry hits blue tank") {
		t.Fatalf("report missing event line:\n%s", r)
	}
}

func TestLog_CopyToClipboardUsesWriter(t *testing.T) {
	var got string
	old := writeClipboard
	writeClipboard = func(s string) error { got = s; return nil }
	defer func() { writeClipboard = old }()

	l := NewLog()
	l.Add(1, "phase", "red")
	err := l.CopyToClipboard()
	if err != nil && !strings.Contains(err.Error(), "not available") {
		t.Fatalf("unexpected error: %v", err)
	}
	if err == nil && !strings.Contains(got, "phase") {
		t.Fatalf("clipboard got %q", got)
	}
}
