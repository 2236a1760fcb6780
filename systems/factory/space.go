package factory

import (
	"github.com/automoto/foldmenu/archetypes"
	"github.com/automoto/foldmenu/components"
	"github.com/automoto/foldmenu/shared/hitbox"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellSize int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	components.Space.Set(space, hitbox.New(width, height, cellSize))
	return space
}
