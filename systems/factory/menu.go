package factory

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/automoto/foldmenu/archetypes"
	"github.com/automoto/foldmenu/components"
	cfg "github.com/automoto/foldmenu/config"
	"github.com/automoto/foldmenu/i18n"
	"github.com/automoto/foldmenu/shared/choreo"
	"github.com/automoto/foldmenu/shared/layout"
	"github.com/automoto/foldmenu/shared/timeline"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Curve maps a configured curve name to an easing curve. Unknown names fall
// back to the hesitating default.
func Curve(name string) timeline.Curve {
	switch strings.ToLower(name) {
	case "linear":
		return timeline.Linear
	case "outcubic":
		return timeline.FromTween(ease.OutCubic)
	case "inoutquad":
		return timeline.FromTween(ease.InOutQuad)
	}
	return timeline.Hesitate
}

// CreateMenu spawns the item entities, their hit areas and the menu entity
// from the current configuration.
func CreateMenu(e *ecs.ECS, catalog *i18n.Catalog, logger *slog.Logger) (*donburi.Entry, error) {
	gravity, err := choreo.ParseGravity(cfg.Menu.Gravity)
	if err != nil {
		return nil, err
	}
	direction := catalog.Direction()

	col := layout.NewColumn(layout.Params{
		ScreenWidth: float64(cfg.C.Width),
		Count:       len(cfg.Menu.Items),
		Size:        cfg.Menu.ItemSize,
		LabelWidth:  cfg.Menu.LabelWidth,
		MarginX:     cfg.Menu.MarginX,
		MarginY:     cfg.Menu.MarginY,
		Resolution:  choreo.Resolve(gravity, direction),
	})

	space := CreateSpace(e, cfg.C.Width, cfg.C.Height, cfg.Hit.CellSize)
	grid := components.Space.Get(space)

	items := make([]choreo.Item, 0, len(cfg.Menu.Items))
	last := len(cfg.Menu.Items) - 1
	for i, id := range cfg.Menu.Items {
		icon, label := timeline.NewTransform(), timeline.NewTransform()

		entry := archetypes.MenuItem.Spawn(e)
		components.Item.SetValue(entry, components.ItemData{
			Index:   i,
			ID:      id,
			Text:    catalog.Get(id),
			Icon:    icon,
			Label:   label,
			Divider: i < last,
		})

		row := col.Row(i)
		grid.Place(i, row.X, row.Y, row.W, row.H)

		items = append(items, choreo.Item{ID: id, Icon: icon, Label: label})
	}

	player := timeline.NewPlayer()
	menu, err := choreo.New(items, choreo.Options{
		Size:        cfg.Menu.ItemSize,
		LabelOffset: cfg.Menu.LabelOffset,
		Gravity:     gravity,
		Direction:   direction,
		Curve:       Curve(cfg.Menu.Curve),
		Runner:      player,
		Logger:      logger,
	})
	if err != nil {
		DestroyMenu(e)
		return nil, fmt.Errorf("create menu: %w", err)
	}
	// Zero is a valid setting here: it makes every transition instant.
	menu.SetAnimationDuration(cfg.Menu.DurationMillis)

	entry := archetypes.Menu.Spawn(e)
	components.Menu.SetValue(entry, components.MenuData{
		Menu:    menu,
		Player:  player,
		Catalog: catalog,
		Layout:  col,
		Status:  "status_closed",
	})

	menu.OnSelect(func(it choreo.Item) {
		setSelected(entry, it, "status_selected")
	})
	menu.OnLongSelect(func(it choreo.Item) {
		setSelected(entry, it, "status_long_selected")
	})

	logger.Info("menu created",
		"items", len(items),
		"gravity", gravity,
		"direction", direction,
		"duration", menu.AnimationDuration())
	return entry, nil
}

func setSelected(entry *donburi.Entry, it choreo.Item, status string) {
	if !entry.Valid() {
		return
	}
	data := components.Menu.Get(entry)
	data.Status = status
	data.StatusData = map[string]interface{}{"Label": data.Catalog.Get(it.ID)}
}

// DestroyMenu removes the menu, its items and its hit space.
func DestroyMenu(e *ecs.ECS) {
	var doomed []donburi.Entity
	components.Item.Each(e.World, func(entry *donburi.Entry) {
		doomed = append(doomed, entry.Entity())
	})
	components.Menu.Each(e.World, func(entry *donburi.Entry) {
		doomed = append(doomed, entry.Entity())
	})
	components.Space.Each(e.World, func(entry *donburi.Entry) {
		doomed = append(doomed, entry.Entity())
	})
	for _, ent := range doomed {
		e.World.Remove(ent)
	}
}
