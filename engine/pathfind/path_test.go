package pathfind

import (
	"testing"

	"github.com/1siamBot/tactics-engine/engine/grid"
)

func fieldFromRows(rows [][]int) *grid.Grid[int] {
	return grid.FilledWith(len(rows[0]), len(rows), func(x, y int) int { return rows[y][x] })
}

func samePath(a, b []grid.Pos) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestClimbPath_FollowsIncreasingChain(t *testing.T) {
	f := fieldFromRows([][]int{
		{1, 2, 3, 0},
		{0, 0, 4, 0},
		{0, 0, 5, 6},
	})
	got := ClimbPath(f, grid.Pos{X: 0, Y: 0})
	want := []grid.Pos{{0, 0}, {1, 0}, {2, 0}, {2, 1}, {2, 2}, {3, 2}}
	if !samePath(got, want) {
		t.Fatalf("path = %v, want %v", got, want)
	}
}

func TestClimbPath_EmptyForNonPositiveOrOffField(t *testing.T) {
	f := fieldFromRows([][]int{{0, 5}, {-3, 1}})
	if p := ClimbPath(f, grid.Pos{X: 0, Y: 0}); len(p) != 0 {
		t.Fatalf("zero start should give empty path, got %v", p)
	}
	if p := ClimbPath(f, grid.Pos{X: 0, Y: 1}); len(p) != 0 {
		t.Fatalf("negative start should give empty path, got %v", p)
	}
	if p := ClimbPath(f, grid.Pos{X: 2, Y: 0}); len(p) != 0 {
		t.Fatalf("off-field start should give empty path, got %v", p)
	}
	// row 0 is a valid start row
	if p := ClimbPath(f, grid.Pos{X: 1, Y: 0}); len(p) != 1 {
		t.Fatalf("local maximum on row 0 should give a one-cell path, got %v", p)
	}
}

func TestClimbPath_TieBreakOrder(t *testing.T) {
	// all four neighbors tie: left wins
	f := fieldFromRows([][]int{
		{0, 9, 0},
		{9, 1, 9},
		{0, 9, 0},
	})
	got := ClimbPath(f, grid.Pos{X: 1, Y: 1})
	if !samePath(got, []grid.Pos{{1, 1}, {0, 1}}) {
		t.Fatalf("expected left on a four-way tie, got %v", got)
	}

	// right and down tie: right wins
	f = fieldFromRows([][]int{
		{0, 0, 0},
		{0, 1, 9},
		{0, 9, 0},
	})
	got = ClimbPath(f, grid.Pos{X: 1, Y: 1})
	if !samePath(got, []grid.Pos{{1, 1}, {2, 1}}) {
		t.Fatalf("expected right before down, got %v", got)
	}

	// down and up tie: down wins
	f = fieldFromRows([][]int{
		{0, 9, 0},
		{0, 1, 0},
		{0, 9, 0},
	})
	got = ClimbPath(f, grid.Pos{X: 1, Y: 1})
	if !samePath(got, []grid.Pos{{1, 1}, {1, 2}}) {
		t.Fatalf("expected down before up, got %v", got)
	}
}

func TestClimbPath_StopsOnPlateau(t *testing.T) {
	f := fieldFromRows([][]int{{3, 4, 4, 5}})
	got := ClimbPath(f, grid.Pos{X: 0, Y: 0})
	if !samePath(got, []grid.Pos{{0, 0}, {1, 0}}) {
		t.Fatalf("path must be strictly increasing, got %v", got)
	}
}

func TestClimbPath_OnRelaxedField(t *testing.T) {
	goal := grid.Pos{X: 6, Y: 3}
	f := seeded(8, 5, 50, goal)
	Relax(f, []grid.Pos{goal}, Uniform(1))
	got := ClimbPath(f, grid.Pos{X: 1, Y: 3})
	if len(got) != 6 || got[len(got)-1] != goal {
		t.Fatalf("expected straight run to the goal, got %v", got)
	}
	for i := 1; i < len(got); i++ {
		if f.At(got[i]) <= f.At(got[i-1]) {
			t.Fatalf("path not increasing at %d: %v", i, got)
		}
	}
}

func TestArrowSprites(t *testing.T) {
	path := []grid.Pos{{0, 0}, {1, 0}, {2, 0}, {2, 1}, {1, 1}, {1, 0}}
	got := ArrowSprites(path)
	want := []string{"arrow_we", "arrow_ws", "arrow_wn", "arrow_ne", "arrow_n"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("arrow %d = %s, want %s (all %v)", i, got[i], want[i], got)
		}
	}
	if ArrowSprites(path[:1]) != nil {
		t.Fatal("single-cell path has no arrows")
	}
}
