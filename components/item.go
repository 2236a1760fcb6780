package components

import (
	"github.com/automoto/foldmenu/shared/timeline"
	"github.com/yohamta/donburi"
)

// ItemData is one menu row: an icon square and its label
type ItemData struct {
	Index int
	ID    string
	Text  string

	Icon  *timeline.Transform
	Label *timeline.Transform

	Divider bool // Draw a separator under this row
}

var Item = donburi.NewComponentType[ItemData]()
