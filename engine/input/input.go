// Package input polls ebiten once per frame and turns mouse and keyboard
// state into camera moves and turn.Input snapshots.
package input

import (
	"github.com/1siamBot/tactics-engine/engine/render"
	"github.com/1siamBot/tactics-engine/engine/turn"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState tracks mouse and keyboard state per frame
type InputState struct {
	// Mouse
	MouseX, MouseY   int
	MouseDX, MouseDY int // delta since last frame
	prevMouseX       int
	prevMouseY       int
	LeftJustPressed  bool
	LeftJustReleased bool
	MiddlePressed    bool
	ScrollY          float64

	// Keyboard
	Shift bool
}

func NewInputState() *InputState {
	return &InputState{}
}

// Update should be called every frame
func (s *InputState) Update() {
	s.prevMouseX = s.MouseX
	s.prevMouseY = s.MouseY
	s.MouseX, s.MouseY = ebiten.CursorPosition()
	s.MouseDX = s.MouseX - s.prevMouseX
	s.MouseDY = s.MouseY - s.prevMouseY

	s.LeftJustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	s.LeftJustReleased = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	s.MiddlePressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)

	_, scrollY := ebiten.Wheel()
	s.ScrollY = scrollY

	s.Shift = ebiten.IsKeyPressed(ebiten.KeyShift)
}

// IsKeyJustPressed returns true if key was just pressed this frame
func (s *InputState) IsKeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

// MoveCamera applies middle-drag and Shift+WASD panning and wheel zoom
func (s *InputState) MoveCamera(cam *render.Camera) {
	if s.MiddlePressed && (s.MouseDX != 0 || s.MouseDY != 0) {
		cam.Pan(-float64(s.MouseDX), -float64(s.MouseDY))
	}
	if s.ScrollY != 0 {
		cam.ZoomAt(s.ScrollY, s.MouseX, s.MouseY)
	}
	if !s.Shift {
		return
	}
	step := cam.PanStep
	pans := map[ebiten.Key][2]float64{
		ebiten.KeyW: {0, -step},
		ebiten.KeyS: {0, step},
		ebiten.KeyA: {-step, 0},
		ebiten.KeyD: {step, 0},
	}
	for k, d := range pans {
		if s.IsKeyJustPressed(k) {
			cam.Pan(d[0], d[1])
		}
	}
}

// Snapshot maps this frame's state onto game actions. W and A only act
// when Shift is up since Shift+WASD pans the camera.
func (s *InputState) Snapshot(cam *render.Camera, gridSize int) turn.Input {
	return turn.Input{
		Cursor:        cam.ScreenToCell(s.MouseX, s.MouseY, gridSize),
		Press:         s.LeftJustPressed,
		Release:       s.LeftJustReleased,
		Confirm:       s.IsKeyJustPressed(ebiten.KeySpace),
		Wait:          !s.Shift && s.IsKeyJustPressed(ebiten.KeyW),
		Attack:        !s.Shift && s.IsKeyJustPressed(ebiten.KeyA),
		Cancel:        s.IsKeyJustPressed(ebiten.KeyEscape),
		EndPhase:      s.IsKeyJustPressed(ebiten.KeyEnd),
		ToggleField:   s.IsKeyJustPressed(ebiten.KeyL),
		ToggleAIField: s.IsKeyJustPressed(ebiten.KeyM),
	}
}
