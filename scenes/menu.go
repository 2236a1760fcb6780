package scenes

import (
	"image/color"
	"log"
	"log/slog"
	"sync"

	"github.com/automoto/foldmenu/archetypes"
	"github.com/automoto/foldmenu/components"
	cfg "github.com/automoto/foldmenu/config"
	"github.com/automoto/foldmenu/i18n"
	"github.com/automoto/foldmenu/systems"
	"github.com/automoto/foldmenu/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// MenuScene shows the folding menu
type MenuScene struct {
	ecs     *ecs.ECS
	catalog *i18n.Catalog
	logger  *slog.Logger
	once    sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(catalog *i18n.Catalog, logger *slog.Logger) *MenuScene {
	return &MenuScene{catalog: catalog, logger: logger}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	entry, err := factory.CreateMenu(ms.ecs, ms.catalog, ms.logger)
	if err != nil {
		log.Fatalf("Failed to create menu: %v", err)
	}
	if cfg.Debug.StartOpen {
		data := components.Menu.Get(entry)
		data.Menu.Open()
		data.Status = "status_open"
	}

	// Input first, then requests, then the player so a request made this
	// tick starts animating immediately.
	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(systems.NewUpdateMenu(ms.logger))
	ms.ecs.AddSystem(systems.UpdateTimeline)

	ms.ecs.AddRenderer(archetypes.Default, systems.DrawMenu)
	ms.ecs.AddRenderer(archetypes.Default, systems.DrawDebug)
}
