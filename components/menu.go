package components

import (
	"github.com/automoto/foldmenu/i18n"
	"github.com/automoto/foldmenu/shared/choreo"
	"github.com/automoto/foldmenu/shared/layout"
	"github.com/automoto/foldmenu/shared/timeline"
	"github.com/yohamta/donburi"
)

// MenuData stores the folding menu and what the status line shows
type MenuData struct {
	Menu    *choreo.Menu
	Player  *timeline.Player
	Catalog *i18n.Catalog

	Layout layout.Column

	Status      string // Message ID shown at the bottom of the screen
	StatusData  map[string]interface{}
	LastGesture choreo.Gesture

	// Rebuild asks the menu system to respawn the menu after a gravity or
	// language change. Only honored while the menu is closed.
	Rebuild bool
}

// Menu is the component type for the folding menu singleton
var Menu = donburi.NewComponentType[MenuData]()
