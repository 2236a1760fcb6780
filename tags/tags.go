package tags

import "github.com/yohamta/donburi"

var (
	Menu     = donburi.NewTag().SetName("Menu")
	MenuItem = donburi.NewTag().SetName("MenuItem")
)
