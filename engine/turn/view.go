package turn

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/1siamBot/tactics-engine/engine/core"
	"github.com/1siamBot/tactics-engine/engine/draw"
	"github.com/1siamBot/tactics-engine/engine/grid"
	"github.com/1siamBot/tactics-engine/engine/maplib"
	"github.com/1siamBot/tactics-engine/engine/pathfind"
)

var (
	gray       = color.RGBA{128, 128, 128, 255}
	fieldShade = color.RGBA{26, 26, 26, 128}
	menuText   = color.RGBA{255, 255, 255, 255}
)

func (s *State) cellPos(p grid.Pos) (float64, float64) {
	w := core.CellToWorld(p, s.Rules.GridSize)
	return w.X, w.Y
}

// tileSprite names the sprite of a ground or terrain type
func tileSprite(v fmt.Stringer) string {
	return strings.ToLower(v.String())
}

func (s *State) drawTiles() {
	for p, g := range s.Level.Ground.All() {
		x, y := s.cellPos(p)
		s.Draw.Sprite(draw.ZGround, x, y, tileSprite(g), draw.White)
		if t := s.Level.Terrain.At(p); t != maplib.TerrainNone {
			s.Draw.Sprite(draw.ZTerrain, x, y, tileSprite(t), draw.White)
		}
	}
}

func (s *State) drawMoveRange(r *grid.Grid[int]) {
	for p, v := range r.All() {
		if v > 0 {
			x, y := s.cellPos(p)
			s.Draw.Sprite(draw.ZMoveHighlight, x, y, "move_range", draw.White)
		}
	}
}

func (s *State) drawMovePath(path []grid.Pos) {
	for i, name := range pathfind.ArrowSprites(path) {
		x, y := s.cellPos(path[i+1])
		s.Draw.Sprite(draw.ZMoveArrow, x, y, name, draw.White)
	}
}

// drawField shades every cell and prints the positive field values
func (s *State) drawField(f *grid.Grid[int]) {
	size := float64(s.Rules.GridSize)
	for p, v := range f.All() {
		x, y := s.cellPos(p)
		s.Draw.Rect(draw.ZFieldDebug, x, y, size, size, fieldShade)
		if v > 0 {
			s.Draw.Text(draw.ZFieldDebug, x, y+size, fmt.Sprint(v), menuText)
		}
	}
}

// hpSprite names the badge drawn over a damaged unit
func hpSprite(hp int) string {
	if hp < 0 || hp > 9 {
		return "hp_question"
	}
	return fmt.Sprintf("hp_%d", hp)
}

func (s *State) drawActors() {
	for _, a := range s.Actors.All() {
		tint := draw.White
		if a.HasMoved {
			tint = gray
		}
		s.Draw.Sprite(draw.ZUnit, a.DrawPos.X, a.DrawPos.Y, a.Sprite, tint)
		if a.HP < core.HPMax {
			s.Draw.Sprite(draw.ZUnitHP, a.DrawPos.X, a.DrawPos.Y, hpSprite(a.HP), draw.White)
		}
	}
}

func (s *State) drawCursor(p grid.Pos) {
	x, y := s.cellPos(p)
	s.Draw.Sprite(draw.ZCursor, x, y, "cursor", draw.White)
}

func (s *State) drawConfirmMenu(a *core.Actor, canAttack bool) {
	x := a.DrawPos.X + float64(s.Rules.GridSize)
	y := a.DrawPos.Y
	s.Draw.Text(draw.ZCursor, x, y, "W: Wait", menuText)
	if canAttack {
		s.Draw.Text(draw.ZCursor, x, y+float64(s.Rules.GridSize), "A: Attack", menuText)
	}
}

func (s *State) drawAIView() {
	v := s.UI.AI
	if v == nil {
		return
	}
	if v.Highlight {
		s.drawMoveRange(v.Plan.MoveRange)
		s.drawMovePath(v.Plan.Path)
	}
	if s.UI.ShowAIField {
		s.drawField(v.Plan.Field)
	}
	if v.ShowCursor {
		s.drawCursor(v.Cursor)
	}
}

// handleDebugInput fills the debug panel and applies the overlay toggles
func (s *State) handleDebugInput(in Input) {
	if in.ToggleField {
		s.UI.ShowField = !s.UI.ShowField
	}
	if in.ToggleAIField {
		s.UI.ShowAIField = !s.UI.ShowAIField
	}

	d := s.Debug
	d.Printf("cursor %v", in.Cursor)
	d.Printf("ground type %s", s.Level.GroundAt(in.Cursor))
	d.Printf("terrain type %s", s.Level.TerrainAt(in.Cursor))
	d.Printf("phase %s", s.Phase)
	if a, ok := s.Actors.Get(s.UI.Selected); ok {
		d.Printf("selected %s", a)
	} else {
		d.Printf("selected None")
	}
	d.Printf("move state %s", s.UI.MoveState)
	for id, a := range s.Actors.All() {
		d.Printf("%v %s %s: %.0f,%.0f", id, a.Team, a.Unit, a.DrawPos.X, a.DrawPos.Y)
	}
}
