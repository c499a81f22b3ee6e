package turn

import "github.com/1siamBot/tactics-engine/engine/grid"

// Input is what the player did this frame. Button and key fields are
// edge-triggered: true only on the frame the press or release happened.
type Input struct {
	Cursor grid.Pos // board cell under the mouse

	Press   bool // left button pressed: start the planned move
	Release bool // left button released: select or deselect

	Confirm  bool // Space: stay in place, or commit the chosen attack
	Wait     bool // W: end the unit's order without attacking
	Attack   bool // A: open the attack choice, then cycle targets
	Cancel   bool // Escape: drop the attack choice and the selection
	EndPhase bool // End: hand over to the enemy

	ToggleField   bool // L
	ToggleAIField bool // M
}
