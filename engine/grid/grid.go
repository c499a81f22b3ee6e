package grid

import (
	"cmp"
	"fmt"
	"iter"
)

// Pos is an integer cell coordinate. X grows right, Y grows down.
type Pos struct {
	X, Y int
}

// Add returns p+o
func (p Pos) Add(o Pos) Pos { return Pos{p.X + o.X, p.Y + o.Y} }

// Sub returns p-o
func (p Pos) Sub(o Pos) Pos { return Pos{p.X - o.X, p.Y - o.Y} }

func (p Pos) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Unit steps in neighbor enumeration order
var (
	Left  = Pos{-1, 0}
	Right = Pos{1, 0}
	Down  = Pos{0, 1}
	Up    = Pos{0, -1}
)

// NeighborOrder is the fixed von Neumann enumeration order. Relaxation batch
// order and every tie-break in path reconstruction depend on it.
var NeighborOrder = [4]Pos{Left, Right, Down, Up}

// Grid is a dense width x height array stored row-major
type Grid[T any] struct {
	Width, Height int
	cells         []T
}

// New creates a grid with every cell set to fill
func New[T any](width, height int, fill T) *Grid[T] {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("grid: negative dimensions %dx%d", width, height))
	}
	g := &Grid[T]{Width: width, Height: height, cells: make([]T, width*height)}
	for i := range g.cells {
		g.cells[i] = fill
	}
	return g
}

// FilledWith creates a grid whose cells are produced by fn
func FilledWith[T any](width, height int, fn func(x, y int) T) *Grid[T] {
	var zero T
	g := New(width, height, zero)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			g.cells[y*width+x] = fn(x, y)
		}
	}
	return g
}

// InBounds reports whether (x, y) addresses a cell
func (g *Grid[T]) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.Width && y < g.Height
}

// Contains reports whether p addresses a cell
func (g *Grid[T]) Contains(p Pos) bool { return g.InBounds(p.X, p.Y) }

func (g *Grid[T]) index(x, y int) int {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("grid: (%d,%d) out of bounds for %dx%d grid", x, y, g.Width, g.Height))
	}
	return y*g.Width + x
}

// Get returns the value at (x, y). Panics when out of bounds.
func (g *Grid[T]) Get(x, y int) T { return g.cells[g.index(x, y)] }

// Ref returns a pointer to the cell at (x, y). Panics when out of bounds.
func (g *Grid[T]) Ref(x, y int) *T { return &g.cells[g.index(x, y)] }

// Set writes v at (x, y). Panics when out of bounds.
func (g *Grid[T]) Set(x, y int, v T) { g.cells[g.index(x, y)] = v }

// At is Get addressed by position
func (g *Grid[T]) At(p Pos) T { return g.Get(p.X, p.Y) }

// SetAt is Set addressed by position
func (g *Grid[T]) SetAt(p Pos, v T) { g.Set(p.X, p.Y, v) }

// Clamp saturates (x, y) into the grid, each axis independently
func (g *Grid[T]) Clamp(x, y int) (int, int) {
	if g.Width == 0 || g.Height == 0 {
		panic("grid: clamp on empty grid")
	}
	return min(max(x, 0), g.Width-1), min(max(y, 0), g.Height-1)
}

// GetClamped looks up the nearest in-bounds cell
func (g *Grid[T]) GetClamped(x, y int) T {
	cx, cy := g.Clamp(x, y)
	return g.cells[cy*g.Width+cx]
}

// GetClampedV is GetClamped addressed by position
func (g *Grid[T]) GetClampedV(p Pos) T { return g.GetClamped(p.X, p.Y) }

// RefClamped returns a pointer to the nearest in-bounds cell
func (g *Grid[T]) RefClamped(x, y int) *T {
	cx, cy := g.Clamp(x, y)
	return &g.cells[cy*g.Width+cx]
}

// Fill sets every cell to v
func (g *Grid[T]) Fill(v T) {
	for i := range g.cells {
		g.cells[i] = v
	}
}

// Clone returns a deep copy
func (g *Grid[T]) Clone() *Grid[T] {
	c := &Grid[T]{Width: g.Width, Height: g.Height, cells: make([]T, len(g.cells))}
	copy(c.cells, g.cells)
	return c
}

// All yields every cell row by row, left to right then top to bottom.
// Maximum scans that keep the first best value rely on this order.
func (g *Grid[T]) All() iter.Seq2[Pos, T] {
	return func(yield func(Pos, T) bool) {
		for y := 0; y < g.Height; y++ {
			for x := 0; x < g.Width; x++ {
				if !yield(Pos{x, y}, g.cells[y*g.Width+x]) {
					return
				}
			}
		}
	}
}

// Each calls fn with a pointer to every cell in All order
func (g *Grid[T]) Each(fn func(x, y int, v *T)) {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			fn(x, y, &g.cells[y*g.Width+x])
		}
	}
}

// Neighbors returns the in-bounds 4-neighbors of p in NeighborOrder
func (g *Grid[T]) Neighbors(p Pos) []Pos {
	out := make([]Pos, 0, 4)
	for _, d := range NeighborOrder {
		n := p.Add(d)
		if g.Contains(n) {
			out = append(out, n)
		}
	}
	return out
}

// SameSize reports whether both grids have identical dimensions
func SameSize[A, B any](a *Grid[A], b *Grid[B]) bool {
	return a.Width == b.Width && a.Height == b.Height
}

// Number covers the element types that support elementwise arithmetic
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// ClampValues clamps every cell of g into [lo, hi] in place
func ClampValues[T cmp.Ordered](g *Grid[T], lo, hi T) {
	for i, v := range g.cells {
		g.cells[i] = min(max(v, lo), hi)
	}
}

// Mul multiplies dst elementwise by other in place. Panics on mismatched
// dimensions.
func Mul[T Number](dst, other *Grid[T]) {
	if !SameSize(dst, other) {
		panic(fmt.Sprintf("grid: mul of %dx%d by %dx%d", dst.Width, dst.Height, other.Width, other.Height))
	}
	for i := range dst.cells {
		dst.cells[i] *= other.cells[i]
	}
}

// MaxPos returns the first position (in All order) holding the greatest
// value among cells accepted by keep. ok is false when keep rejects every cell.
func MaxPos[T cmp.Ordered](g *Grid[T], keep func(Pos) bool) (best Pos, ok bool) {
	var bestV T
	for p, v := range g.All() {
		if keep != nil && !keep(p) {
			continue
		}
		if !ok || v > bestV {
			best, bestV, ok = p, v, true
		}
	}
	return best, ok
}
