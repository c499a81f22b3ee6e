package pathfind

import "github.com/1siamBot/tactics-engine/engine/grid"

// Relax floods a potential field outward from its seed cells. Each cell ends
// holding the best budget left after paying the cost of every cell entered
// on the way from some seed. Seeds must already hold their budgets; every
// other cell keeps its value unless a neighbor implies a higher one.
//
// This is label-correcting relaxation rather than a priority-queue search:
// cells are revisited in batches until nothing improves. Batch order follows
// seed order and grid.NeighborOrder, so results are reproducible.
func Relax(field *grid.Grid[int], seeds []grid.Pos, cost CostFunc) {
	var work []grid.Pos
	for _, s := range seeds {
		work = append(work, field.Neighbors(s)...)
	}
	RelaxFrom(field, work, cost)
}

// RelaxFrom runs the relaxation starting from an explicit work list instead
// of the neighbors of seed cells. Used to re-raise cells that were pushed
// down after an earlier pass.
func RelaxFrom(field *grid.Grid[int], work []grid.Pos, cost CostFunc) {
	next := work
	for len(next) > 0 {
		batch := next
		next = nil
		for _, p := range batch {
			neighbors := field.Neighbors(p)
			if len(neighbors) == 0 {
				continue
			}
			best := field.At(neighbors[0])
			for _, n := range neighbors[1:] {
				best = max(best, field.At(n))
			}

			c := cost(p)
			if best <= field.At(p)+c {
				continue
			}
			v := best - c
			field.SetAt(p, v)
			for _, n := range neighbors {
				// cheap pre-filter, cells that still change get picked up later
				if field.At(n) < v-cost(n) {
					next = append(next, n)
				}
			}
		}
	}
}

// SeedField creates a width x height zero field with value at each seed.
// Seeds off the board are clamped onto it.
func SeedField(width, height int, seeds []grid.Pos, value int) (*grid.Grid[int], []grid.Pos) {
	field := grid.New(width, height, 0)
	clamped := make([]grid.Pos, len(seeds))
	for i, s := range seeds {
		x, y := field.Clamp(s.X, s.Y)
		clamped[i] = grid.Pos{X: x, Y: y}
		field.SetAt(clamped[i], value)
	}
	return field, clamped
}

// Reach seeds a single cell with budget and relaxes
func Reach(width, height int, from grid.Pos, budget int, cost CostFunc) *grid.Grid[int] {
	field, seeds := SeedField(width, height, []grid.Pos{from}, budget)
	Relax(field, seeds, cost)
	return field
}
