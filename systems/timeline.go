package systems

import (
	"time"

	"github.com/automoto/foldmenu/components"
	cfg "github.com/automoto/foldmenu/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTimeline advances the menu's player by one tick. Completion callbacks
// fire from inside Advance, so listeners run on the game loop.
func UpdateTimeline(e *ecs.ECS) {
	entry, ok := components.Menu.First(e.World)
	if !ok {
		return
	}
	menu := components.Menu.Get(entry)
	menu.Player.Advance(tick())
}

func tick() time.Duration {
	tps := cfg.C.TPS
	if tps <= 0 {
		tps = 60
	}
	return time.Second / time.Duration(tps)
}
