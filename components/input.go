package components

import (
	cfg "github.com/automoto/foldmenu/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// PointerData tracks the left and right mouse buttons for click detection.
type PointerData struct {
	X, Y float64

	LeftPressed  bool
	LeftHeldFor  int // Ticks the left button has been down
	LeftReleased bool
	RightClicked bool

	// Row under the pointer when the left button went down, -1 for none
	PressIndex int
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool

	Digit   int // Row picked with a number key this frame, -1 for none
	Pointer PointerData
}

var Input = donburi.NewComponentType[InputData]()
