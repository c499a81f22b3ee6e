package render

import (
	"math"

	"github.com/1siamBot/tactics-engine/engine/grid"
)

// Camera is the viewport into the top-down grid world
type Camera struct {
	X, Y     float64 // camera center position (world pixels)
	Zoom     float64 // zoom level (1.0 = one screen pixel per world pixel)
	MinZoom  float64
	MaxZoom  float64
	ZoomStep float64 // zoom factor per wheel notch
	ScreenW  int     // viewport width in pixels
	ScreenH  int     // viewport height in pixels
	PanStep  float64 // keyboard pan distance in screen pixels

	// Map bounds for clamping, in world pixels. Zero disables clamping.
	MapW, MapH float64
}

// NewCamera creates a camera with default settings
func NewCamera(screenW, screenH int) *Camera {
	return &Camera{
		Zoom:     1.0,
		MinZoom:  0.5,
		MaxZoom:  6.0,
		ZoomStep: 1.25,
		ScreenW:  screenW,
		ScreenH:  screenH,
		PanStep:  32,
	}
}

// SetMapBounds sets the map size in cells for camera clamping
func (c *Camera) SetMapBounds(w, h, gridSize int) {
	c.MapW = float64(w * gridSize)
	c.MapH = float64(h * gridSize)
	c.clamp()
}

// Pan moves the camera by a screen pixel delta
func (c *Camera) Pan(dx, dy float64) {
	c.X += dx / c.Zoom
	c.Y += dy / c.Zoom
	c.clamp()
}

// SetZoom sets zoom level with clamping
func (c *Camera) SetZoom(z float64) {
	c.Zoom = math.Max(c.MinZoom, math.Min(c.MaxZoom, z))
}

// ZoomAt zooms by steps wheel notches, keeping the world point under the
// given screen position fixed
func (c *Camera) ZoomAt(steps float64, screenX, screenY int) {
	wx, wy := c.ScreenToWorld(screenX, screenY)
	c.SetZoom(c.Zoom * math.Pow(c.ZoomStep, steps))
	wx2, wy2 := c.ScreenToWorld(screenX, screenY)
	c.X += wx - wx2
	c.Y += wy - wy2
	c.clamp()
}

// CenterOn centers the camera on a world position
func (c *Camera) CenterOn(wx, wy float64) {
	c.X, c.Y = wx, wy
	c.clamp()
}

// CenterOnCell centers the camera on the middle of a cell
func (c *Camera) CenterOnCell(p grid.Pos, gridSize int) {
	gs := float64(gridSize)
	c.CenterOn((float64(p.X)+0.5)*gs, (float64(p.Y)+0.5)*gs)
}

// WorldToScreen converts a world pixel position to screen pixels
func (c *Camera) WorldToScreen(wx, wy float64) (float64, float64) {
	sx := (wx-c.X)*c.Zoom + float64(c.ScreenW)/2
	sy := (wy-c.Y)*c.Zoom + float64(c.ScreenH)/2
	return sx, sy
}

// ScreenToWorld converts a screen pixel to world pixels
func (c *Camera) ScreenToWorld(sx, sy int) (float64, float64) {
	wx := (float64(sx)-float64(c.ScreenW)/2)/c.Zoom + c.X
	wy := (float64(sy)-float64(c.ScreenH)/2)/c.Zoom + c.Y
	return wx, wy
}

// ScreenToCell returns the cell under a screen pixel. The result may lie
// off the map.
func (c *Camera) ScreenToCell(sx, sy, gridSize int) grid.Pos {
	wx, wy := c.ScreenToWorld(sx, sy)
	gs := float64(gridSize)
	return grid.Pos{X: int(math.Floor(wx / gs)), Y: int(math.Floor(wy / gs))}
}

// VisibleCellRange returns the range of cells visible on screen, clamped to
// a w x h map
func (c *Camera) VisibleCellRange(w, h, gridSize int) (minX, minY, maxX, maxY int) {
	lo := c.ScreenToCell(0, 0, gridSize)
	hi := c.ScreenToCell(c.ScreenW, c.ScreenH, gridSize)
	minX, minY = max(lo.X, 0), max(lo.Y, 0)
	maxX, maxY = min(hi.X, w-1), min(hi.Y, h-1)
	return
}

func (c *Camera) clamp() {
	if c.MapW > 0 {
		c.X = math.Max(0, math.Min(c.MapW, c.X))
	}
	if c.MapH > 0 {
		c.Y = math.Max(0, math.Min(c.MapH, c.Y))
	}
}
