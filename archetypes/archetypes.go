package archetypes

import (
	"github.com/automoto/foldmenu/components"
	"github.com/automoto/foldmenu/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer.
const Default ecs.LayerID = 0

var (
	Menu = newArchetype(
		tags.Menu,
		components.Menu,
	)
	MenuItem = newArchetype(
		tags.MenuItem,
		components.Item,
	)
	Space = newArchetype(
		components.Space,
	)
	Input = newArchetype(
		components.Input,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		Default,
		append(a.components, cs...)...,
	))
	return e
}
