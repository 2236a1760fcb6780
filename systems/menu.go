package systems

import (
	"log/slog"

	"github.com/automoto/foldmenu/components"
	cfg "github.com/automoto/foldmenu/config"
	"github.com/automoto/foldmenu/shared/choreo"
	"github.com/automoto/foldmenu/shared/hitbox"
	"github.com/automoto/foldmenu/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateMenu creates the system that turns input into menu requests.
func NewUpdateMenu(logger *slog.Logger) ecs.System {
	return func(e *ecs.ECS) {
		entry, ok := components.Menu.First(e.World)
		if !ok {
			return
		}
		data := components.Menu.Get(entry)
		menu := data.Menu
		input := getOrCreateInput(e)

		// Gravity and direction are fixed per menu, so a change respawns it
		// once it has folded away.
		if data.Rebuild {
			if menu.State() == choreo.Closed {
				rebuildMenu(e, data, logger)
				return
			}
			if menu.State() == choreo.Open {
				menu.Close()
			}
		}

		if GetAction(input, cfg.ActionToggle).JustPressed {
			menu.Toggle()
			syncStatus(data)
		}
		if GetAction(input, cfg.ActionClose).JustPressed {
			menu.Close()
			syncStatus(data)
		}

		if input.Digit >= 0 {
			if err := menu.Select(input.Digit); err != nil {
				logger.Debug("number key ignored", "err", err)
			}
		}

		if space, ok := components.Space.First(e.World); ok {
			handlePointer(menu, components.Space.Get(space), &input.Pointer)
		}

		if GetAction(input, cfg.ActionFaster).JustPressed {
			changeDuration(data, -1)
		}
		if GetAction(input, cfg.ActionSlower).JustPressed {
			changeDuration(data, 1)
		}

		if GetAction(input, cfg.ActionGravity).JustPressed {
			cfg.Menu.Gravity = cycle(cfg.Settings.Gravities, cfg.Menu.Gravity)
			data.Rebuild = true
			_ = SavePrefs()
		}
		if GetAction(input, cfg.ActionLanguage).JustPressed {
			next := cycle(cfg.Settings.Languages, cfg.Menu.Language)
			if err := data.Catalog.SetLanguage(next); err != nil {
				logger.Warn("language switch failed", "lang", next, "err", err)
			} else {
				cfg.Menu.Language = next
				data.Rebuild = true
				_ = SavePrefs()
			}
		}
	}
}

// handlePointer resolves mouse gestures to rows. A left press and release on
// the same row is a click, or a long click when held long enough; a right
// click is always a long click. Releasing on empty space closes an open menu.
func handlePointer(menu *choreo.Menu, grid *hitbox.Grid, p *components.PointerData) {
	if p.LeftPressed && p.LeftHeldFor == 1 {
		p.PressIndex, _ = grid.At(p.X, p.Y)
	}

	if p.LeftReleased {
		index, hit := grid.At(p.X, p.Y)
		switch {
		case !hit && p.PressIndex < 0:
			if menu.State() == choreo.Open {
				menu.Close()
			}
		case hit && index == p.PressIndex:
			menu.Click(clickAt(menu, index, gestureFor(p.LeftHeldFor)))
		}
		p.PressIndex = -1
	}

	if p.RightClicked {
		if index, hit := grid.At(p.X, p.Y); hit {
			menu.Click(clickAt(menu, index, choreo.GestureLongClick))
		}
	}
}

func clickAt(menu *choreo.Menu, index int, g choreo.Gesture) choreo.Click {
	return choreo.Click{Index: index, ID: menu.Items()[index].ID, Gesture: g}
}

func gestureFor(heldTicks int) choreo.Gesture {
	heldMillis := heldTicks * 1000 / max(cfg.C.TPS, 1)
	if heldMillis >= cfg.Input.LongPressMillis {
		return choreo.GestureLongClick
	}
	return choreo.GestureClick
}

func changeDuration(data *components.MenuData, delta int) {
	cfg.Menu.DurationMillis = cfg.NextDuration(cfg.Menu.DurationMillis, delta)
	data.Menu.SetAnimationDuration(cfg.Menu.DurationMillis)
	data.Status = "status_duration"
	data.StatusData = map[string]interface{}{"Millis": cfg.Menu.DurationMillis}
	_ = SavePrefs()
}

// syncStatus follows open and close requests that were accepted.
func syncStatus(data *components.MenuData) {
	switch data.Menu.State() {
	case choreo.Opening:
		data.Status, data.StatusData = "status_open", nil
	case choreo.Closing:
		data.Status, data.StatusData = "status_closed", nil
	}
}

func rebuildMenu(e *ecs.ECS, data *components.MenuData, logger *slog.Logger) {
	catalog := data.Catalog
	factory.DestroyMenu(e)
	if _, err := factory.CreateMenu(e, catalog, logger); err != nil {
		logger.Error("menu rebuild failed", "err", err)
	}
}

// cycle returns the entry after current, wrapping. An unknown current yields
// the first entry.
func cycle(options []string, current string) string {
	if len(options) == 0 {
		return current
	}
	for i, o := range options {
		if o == current {
			return options[(i+1)%len(options)]
		}
	}
	return options[0]
}
