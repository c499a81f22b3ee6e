package render

import (
	"image/color"
	"strings"

	"github.com/1siamBot/tactics-engine/engine/draw"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Renderer dispatches buffered draw commands to the screen
type Renderer struct {
	Camera   *Camera
	Sprites  *SpriteManager
	GridSize int
	face     text.Face
}

// NewRenderer creates a renderer for a screenW x screenH window and cells
// of gridSize pixels
func NewRenderer(screenW, screenH, gridSize int) *Renderer {
	return &Renderer{
		Camera:   NewCamera(screenW, screenH),
		Sprites:  NewSpriteManager(gridSize),
		GridSize: gridSize,
		face:     text.NewGoXFace(basicfont.Face7x13),
	}
}

// Draw renders cmds in order. Callers pass them z-sorted.
func (r *Renderer) Draw(screen *ebiten.Image, cmds []draw.Command) {
	cam := r.Camera
	for _, c := range cmds {
		sx, sy := cam.WorldToScreen(c.X, c.Y)
		switch c.Kind {
		case draw.KindSprite:
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(cam.Zoom, cam.Zoom)
			op.GeoM.Translate(sx, sy)
			op.ColorScale.ScaleWithColor(c.Tint)
			screen.DrawImage(r.Sprites.Get(c.Name), op)
		case draw.KindRect:
			vector.DrawFilledRect(screen, float32(sx), float32(sy),
				float32(c.W*cam.Zoom), float32(c.H*cam.Zoom), c.Tint, false)
		case draw.KindText:
			// world text is half size so field numbers fit in a cell
			scale := cam.Zoom / 2
			op := &text.DrawOptions{}
			op.GeoM.Translate(0, -r.face.Metrics().HAscent)
			op.GeoM.Scale(scale, scale)
			op.GeoM.Translate(sx, sy)
			op.ColorScale.ScaleWithColor(c.Tint)
			text.Draw(screen, c.Text, r.face, op)
		}
	}
}

// DrawPanel draws the debug window in the top-left corner
func (r *Renderer) DrawPanel(screen *ebiten.Image, lines []string) {
	if len(lines) == 0 {
		return
	}
	w := 0
	for _, l := range lines {
		w = max(w, len(l))
	}
	vector.DrawFilledRect(screen, 4, 4, float32(w*6+12), float32(len(lines)*16+8), color.RGBA{0, 0, 0, 180}, false)
	ebitenutil.DebugPrintAt(screen, strings.Join(lines, "\n"), 10, 8)
}
