package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/foldmenu/components"
	cfg "github.com/automoto/foldmenu/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every row's hit area and prints the menu's state.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Overlay {
		return
	}
	entry, ok := components.Menu.First(e.World)
	if !ok {
		return
	}
	menu := components.Menu.Get(entry)
	col := menu.Layout

	hit := color.RGBA{0, 255, 255, 255} // Cyan
	for i := 0; i < col.Count; i++ {
		r := col.Row(i)
		vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, hit, false)
	}

	msg := fmt.Sprintf("state: %s\nduration: %s\nprogress: %.2f\ntps: %.0f",
		menu.Menu.State(),
		menu.Menu.AnimationDuration(),
		menu.Player.Progress(),
		ebiten.ActualTPS())
	ebitenutil.DebugPrintAt(screen, msg, int(cfg.Menu.MarginX), int(col.Y+col.Height()+8))
}
