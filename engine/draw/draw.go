// Package draw buffers tagged draw commands for one frame. Game code pushes
// commands in any order; the renderer consumes them sorted by Z.
package draw

import (
	"image/color"
	"slices"
)

// Z layers, lowest drawn first
const (
	ZGround        = 0
	ZTerrain       = 10
	ZMoveHighlight = 11
	ZMoveArrow     = 12
	ZUnit          = 20
	ZUnitHP        = 21
	ZFieldDebug    = 30
	ZCursor        = 100
)

// Kind tags a command
type Kind uint8

const (
	KindSprite Kind = iota
	KindRect
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindSprite:
		return "sprite"
	case KindRect:
		return "rect"
	case KindText:
		return "text"
	}
	return "unknown"
}

// Command is one draw operation in world pixels. Which fields matter
// depends on Kind: sprites use Name and Tint, rects use W, H and Tint,
// text uses Text and Tint.
type Command struct {
	Kind Kind
	Z    int
	X, Y float64
	W, H float64
	Name string
	Text string
	Tint color.RGBA
}

// White leaves sprites untinted
var White = color.RGBA{255, 255, 255, 255}

// Buffer collects the commands of one frame
type Buffer struct {
	cmds []Command
}

// Push appends a command
func (b *Buffer) Push(c Command) {
	b.cmds = append(b.cmds, c)
}

// Sprite queues a named sprite at world position x,y
func (b *Buffer) Sprite(z int, x, y float64, name string, tint color.RGBA) {
	b.Push(Command{Kind: KindSprite, Z: z, X: x, Y: y, Name: name, Tint: tint})
}

// Rect queues a filled rectangle
func (b *Buffer) Rect(z int, x, y, w, h float64, fill color.RGBA) {
	b.Push(Command{Kind: KindRect, Z: z, X: x, Y: y, W: w, H: h, Tint: fill})
}

// Text queues a label
func (b *Buffer) Text(z int, x, y float64, s string, c color.RGBA) {
	b.Push(Command{Kind: KindText, Z: z, X: x, Y: y, Text: s, Tint: c})
}

// Len returns the number of queued commands
func (b *Buffer) Len() int { return len(b.cmds) }

// Commands returns the queued commands in push order
func (b *Buffer) Commands() []Command { return b.cmds }

// Sorted returns the commands ordered by Z. Commands on the same layer keep
// their push order.
func (b *Buffer) Sorted() []Command {
	out := slices.Clone(b.cmds)
	slices.SortStableFunc(out, func(x, y Command) int { return x.Z - y.Z })
	return out
}

// Filter returns the queued commands on layer z in push order
func (b *Buffer) Filter(z int) []Command {
	var out []Command
	for _, c := range b.cmds {
		if c.Z == z {
			out = append(out, c)
		}
	}
	return out
}

// Reset empties the buffer, keeping its storage
func (b *Buffer) Reset() {
	b.cmds = b.cmds[:0]
}
