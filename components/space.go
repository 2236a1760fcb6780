package components

import (
	"github.com/automoto/foldmenu/shared/hitbox"
	"github.com/yohamta/donburi"
)

// Space holds the resolv grid used to map clicks to rows
var Space = donburi.NewComponentType[hitbox.Grid]()
