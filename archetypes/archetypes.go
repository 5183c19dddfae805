package archetypes

import (
	"github.com/automoto/doomerang-siege/components"
	"github.com/automoto/doomerang-siege/tags"
	"github.com/yohamta/donburi"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Object,
		components.Player,
		components.Health,
		components.Walker,
	)
	PatrolTurret = newArchetype(
		tags.PatrolTurret,
		components.Object,
		components.Health,
		components.AI,
		components.Turret,
	)
	StationaryTurret = newArchetype(
		tags.StationaryTurret,
		components.Object,
		components.Health,
		components.Turret,
	)
	Zombie = newArchetype(
		tags.Zombie,
		components.Object,
		components.Health,
		components.AI,
		components.Walker,
	)
	Skeleton = newArchetype(
		tags.Skeleton,
		components.Object,
		components.Health,
		components.Walker,
		components.Skeleton,
	)
	Bullet = newArchetype(
		tags.Bullet,
		components.Object,
		components.Bullet,
	)
	Pickup = newArchetype(
		tags.Pickup,
		components.Object,
		components.Pickup,
	)
	Furniture = newArchetype(
		tags.Furniture,
		components.Object,
	)
	HealthBar = newArchetype(
		tags.Decoration,
		components.Object,
		components.HealthBar,
	)
	Shield = newArchetype(
		tags.Shield,
		components.Object,
	)
	Particle = newArchetype(
		tags.Particle,
		components.Particle,
	)
	Input = newArchetype(
		components.Input,
	)
	Audio = newArchetype(
		components.Audio,
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

// Spawn creates an entity with the archetype's components plus any extras.
func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return w.Entry(w.Create(all...))
}
