package pathfind

import "github.com/1siamBot/tactics-engine/engine/grid"

// ClimbPath follows strictly increasing field values from start until a
// local maximum. Ties between neighbors go to the first one in
// grid.NeighborOrder (left, right, down, up). The path starts at start and
// is empty when start is off the field or holds a value <= 0.
func ClimbPath(field *grid.Grid[int], start grid.Pos) []grid.Pos {
	if !field.Contains(start) {
		return nil
	}
	v := field.At(start)
	if v <= 0 {
		return nil
	}

	path := []grid.Pos{start}
	pos := start
	for {
		neighbors := field.Neighbors(pos)
		if len(neighbors) == 0 {
			break
		}
		next, nv := neighbors[0], field.At(neighbors[0])
		for _, n := range neighbors[1:] {
			if w := field.At(n); w > nv {
				next, nv = n, w
			}
		}
		if nv <= v {
			break
		}
		path = append(path, next)
		pos, v = next, nv
	}
	return path
}

// Direction is a unit step between consecutive path cells
type Direction = grid.Pos

// ArrowSprites names the arrow piece drawn on each path cell after the
// first: a straight or corner piece where the path continues and a head on
// the last cell. The result is parallel to path[1:].
func ArrowSprites(path []grid.Pos) []string {
	if len(path) < 2 {
		return nil
	}
	out := make([]string, 0, len(path)-1)
	for i := 1; i < len(path); i++ {
		in := path[i].Sub(path[i-1])
		if i == len(path)-1 {
			out = append(out, arrowHead(in))
			continue
		}
		out = append(out, arrowBend(in, path[i+1].Sub(path[i])))
	}
	return out
}

func arrowHead(d Direction) string {
	switch d {
	case grid.Left:
		return "arrow_w"
	case grid.Right:
		return "arrow_e"
	case grid.Down:
		return "arrow_s"
	case grid.Up:
		return "arrow_n"
	}
	panic("pathfind: path cells are not adjacent")
}

func arrowBend(in, out Direction) string {
	switch {
	case in == out && (in == grid.Left || in == grid.Right):
		return "arrow_we"
	case in == out:
		return "arrow_ns"
	case (in == grid.Down && out == grid.Right) || (in == grid.Left && out == grid.Up):
		return "arrow_ne"
	case (in == grid.Up && out == grid.Right) || (in == grid.Left && out == grid.Down):
		return "arrow_se"
	case (in == grid.Down && out == grid.Left) || (in == grid.Right && out == grid.Up):
		return "arrow_wn"
	case (in == grid.Up && out == grid.Left) || (in == grid.Right && out == grid.Down):
		return "arrow_ws"
	}
	panic("pathfind: path reverses or skips a cell")
}
