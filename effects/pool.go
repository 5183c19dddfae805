// Package effects runs one-shot particles. Each particle grows to its
// maximum scale, holds, then fades out before its life span ends.
package effects

import (
	"github.com/automoto/doomerang-siege/archetypes"
	"github.com/automoto/doomerang-siege/components"
	"github.com/automoto/doomerang-siege/objects"
	"github.com/automoto/doomerang-siege/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// Pool owns the particles of one world.
type Pool struct {
	world donburi.World
}

// NewPool stores particles in w.
func NewPool(w donburi.World) *Pool {
	return &Pool{world: w}
}

// Create spawns a particle. Specs without a life span are ignored.
func (p *Pool) Create(d objects.ParticleDesc) {
	spec := d.Spec
	if spec.LifeSpan <= 0 {
		return
	}
	life := float32(spec.LifeSpan)
	scaleIn := life * float32(spec.ScaleInFrac)
	fadeAt := life * float32(spec.FadeOutFrac)

	fade := gween.NewSequence()
	fade.Add(
		gween.New(1, 1, fadeAt, ease.Linear),
		gween.New(1, 0, life-fadeAt, ease.InQuad),
	)

	start := float32(spec.MaxScale)
	if scaleIn > 0 {
		start = 0
	}

	e := archetypes.Particle.Spawn(p.world)
	components.Particle.SetValue(e, components.ParticleData{
		Spec:       spec,
		Pos:        d.Pos,
		Vel:        d.Vel,
		Roll:       d.Roll,
		Scale:      float64(start),
		Alpha:      1,
		ScaleTween: gween.New(start, float32(spec.MaxScale), scaleIn, ease.OutQuad),
		AlphaTween: fade,
	})
}

// Update ages every particle by dt and removes the expired ones.
func (p *Pool) Update(dt float64) {
	var expired []*donburi.Entry
	components.Particle.Each(p.world, func(e *donburi.Entry) {
		pd := components.Particle.Get(e)
		pd.Age += dt
		pd.Pos = pd.Pos.Add(pd.Vel.Scale(dt))

		scale, _ := pd.ScaleTween.Update(float32(dt))
		pd.Scale = float64(scale)
		alpha, _, _ := pd.AlphaTween.Update(float32(dt))
		pd.Alpha = float64(alpha)

		if pd.Age >= pd.Spec.LifeSpan {
			expired = append(expired, e)
		}
	})
	for _, e := range expired {
		p.world.Remove(e.Entity())
	}
}

// Each visits live particles.
func (p *Pool) Each(fn func(pd *components.ParticleData)) {
	components.Particle.Each(p.world, func(e *donburi.Entry) {
		fn(components.Particle.Get(e))
	})
}

// Len is the number of live particles.
func (p *Pool) Len() int {
	n := 0
	tags.Particle.Each(p.world, func(*donburi.Entry) { n++ })
	return n
}

// Clear removes every particle, used when a level restarts.
func (p *Pool) Clear() {
	var all []donburi.Entity
	components.Particle.Each(p.world, func(e *donburi.Entry) {
		all = append(all, e.Entity())
	})
	for _, id := range all {
		p.world.Remove(id)
	}
}
