package systems

import (
	"github.com/automoto/foldmenu/components"
	cfg "github.com/automoto/foldmenu/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// binding lists the keys that trigger an action
type binding struct {
	Keys []ebiten.Key
}

var bindings = map[cfg.ActionID]binding{
	cfg.ActionToggle:   {Keys: []ebiten.Key{ebiten.KeySpace, ebiten.KeyEnter}},
	cfg.ActionClose:    {Keys: []ebiten.Key{ebiten.KeyEscape}},
	cfg.ActionFaster:   {Keys: []ebiten.Key{ebiten.KeyMinus, ebiten.KeyNumpadSubtract}},
	cfg.ActionSlower:   {Keys: []ebiten.Key{ebiten.KeyEqual, ebiten.KeyNumpadAdd}},
	cfg.ActionGravity:  {Keys: []ebiten.Key{ebiten.KeyG}},
	cfg.ActionLanguage: {Keys: []ebiten.Key{ebiten.KeyL}},
}

var digitKeys = []ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3,
	ebiten.Key4, ebiten.Key5, ebiten.Key6,
	ebiten.Key7, ebiten.Key8, ebiten.Key9,
}

// UpdateInput polls raw input and updates the Input component.
// Must run BEFORE the menu system in the system order.
func UpdateInput(e *ecs.ECS) {
	input := getOrCreateInput(e)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	for actionID, b := range bindings {
		for _, key := range b.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
	}

	input.Digit = -1
	for i, key := range digitKeys {
		if i >= cfg.Input.MaxDigit {
			break
		}
		if inpututil.IsKeyJustPressed(key) {
			input.Digit = i
			break
		}
	}

	updatePointer(&input.Pointer)
}

func updatePointer(p *components.PointerData) {
	x, y := ebiten.CursorPosition()
	p.X, p.Y = float64(x), float64(y)

	p.LeftPressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	p.LeftReleased = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	p.RightClicked = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)

	switch {
	case p.LeftPressed:
		p.LeftHeldFor++
	case !p.LeftReleased:
		p.LeftHeldFor = 0
	}
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(e *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Input))
		components.Input.Get(entry).Pointer.PressIndex = -1
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
