package replay

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/1siamBot/tactics-engine/engine/core"
)

var magic = []byte("TRPL\x01")

// ErrBadHeader is returned for data that is not a replay log
var ErrBadHeader = errors.New("not a replay log")

// Recorder appends commands to a replay log
type Recorder struct {
	Commands []Command
	w        *bufio.Writer
	closer   io.Closer
	err      error
}

// NewRecorder writes a log to w
func NewRecorder(w io.Writer) (*Recorder, error) {
	bw := bufio.NewWriter(w)
	if _, err := bw.Write(magic); err != nil {
		return nil, err
	}
	r := &Recorder{w: bw}
	if c, ok := w.(io.Closer); ok {
		r.closer = c
	}
	return r, nil
}

// Create starts a replay file at path
func Create(path string) (*Recorder, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	r, err := NewRecorder(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	return r, nil
}

// Record appends a command. After the first write error every call
// returns that error.
func (r *Recorder) Record(cmd Command) error {
	if r.err != nil {
		return r.err
	}
	r.Commands = append(r.Commands, cmd)
	r.err = cmd.Encode(r.w)
	return r.err
}

// Listen records every committed-order event dispatched on bus
func (r *Recorder) Listen(bus *core.EventBus) {
	bus.OnAny(func(e core.Event) {
		cmd, ok := FromEvent(e)
		if !ok {
			return
		}
		if err := r.Record(cmd); err != nil {
			slog.Error("replay record failed", "cmd", cmd, "error", err)
		}
	})
}

// Close flushes the log and closes the underlying file, if any
func (r *Recorder) Close() error {
	err := r.w.Flush()
	if r.closer != nil {
		if cerr := r.closer.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// Read decodes a whole log
func Read(rd io.Reader) ([]Command, error) {
	br := bufio.NewReader(rd)
	head := make([]byte, len(magic))
	if _, err := io.ReadFull(br, head); err != nil || !bytes.Equal(head, magic) {
		return nil, ErrBadHeader
	}
	var cmds []Command
	for {
		var c Command
		err := c.Decode(br)
		if errors.Is(err, io.EOF) {
			return cmds, nil
		}
		if err != nil {
			return cmds, fmt.Errorf("command %d: %w", len(cmds), err)
		}
		cmds = append(cmds, c)
	}
}

// Load reads a replay file
func Load(path string) ([]Command, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	cmds, err := Read(f)
	if err != nil {
		return cmds, fmt.Errorf("%s: %w", path, err)
	}
	return cmds, nil
}

// ForTick returns the commands recorded at tick
func ForTick(cmds []Command, tick uint64) []Command {
	var out []Command
	for _, c := range cmds {
		if c.Tick == tick {
			out = append(out, c)
		}
	}
	return out
}
