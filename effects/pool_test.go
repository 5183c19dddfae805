package effects

import (
	"testing"

	"github.com/automoto/doomerang-siege/components"
	"github.com/automoto/doomerang-siege/config"
	"github.com/automoto/doomerang-siege/objects"
	"github.com/automoto/doomerang-siege/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func smoke() config.ParticleSpec {
	return config.ParticleSpec{Sprite: config.SpriteSmoke, LifeSpan: 2, MaxScale: 4, ScaleInFrac: 0.5, FadeOutFrac: 0.8}
}

func only(t *testing.T, p *Pool) components.ParticleData {
	t.Helper()
	var got []components.ParticleData
	p.Each(func(pd *components.ParticleData) { got = append(got, *pd) })
	require.Len(t, got, 1)
	return got[0]
}

func TestParticleLifecycle(t *testing.T) {
	p := NewPool(donburi.NewWorld())
	p.Create(objects.ParticleDesc{Spec: smoke(), Pos: gamemath.V(10, 10)})
	require.Equal(t, 1, p.Len())

	start := only(t, p)
	assert.Zero(t, start.Scale)
	assert.Equal(t, 1.0, start.Alpha)

	// Scaled in after half of the life span and still opaque.
	for i := 0; i < 10; i++ {
		p.Update(0.1)
	}
	mid := only(t, p)
	assert.InDelta(t, 4, mid.Scale, 1e-4)
	assert.InDelta(t, 1, mid.Alpha, 1e-4)

	// Fading after 80%.
	for i := 0; i < 8; i++ {
		p.Update(0.1)
	}
	late := only(t, p)
	assert.Less(t, late.Alpha, 1.0)
	assert.Greater(t, late.Alpha, 0.0)

	for i := 0; i < 3; i++ {
		p.Update(0.1)
	}
	assert.Zero(t, p.Len())
}

func TestParticleDrifts(t *testing.T) {
	p := NewPool(donburi.NewWorld())
	p.Create(objects.ParticleDesc{Spec: smoke(), Pos: gamemath.V(0, 0), Vel: gamemath.V(10, -20)})
	p.Update(0.5)
	pd := only(t, p)
	assert.InDelta(t, 5, pd.Pos.X, 1e-9)
	assert.InDelta(t, -10, pd.Pos.Y, 1e-9)
}

func TestParticleWithoutScaleInStartsFull(t *testing.T) {
	p := NewPool(donburi.NewWorld())
	spec := config.ParticleSpec{Sprite: config.SpriteSpark, LifeSpan: 0.25, MaxScale: 0.5, FadeOutFrac: 0.5}
	p.Create(objects.ParticleDesc{Spec: spec})
	assert.Equal(t, 0.5, only(t, p).Scale)
}

func TestZeroLifeSpanIgnored(t *testing.T) {
	p := NewPool(donburi.NewWorld())
	p.Create(objects.ParticleDesc{Spec: config.ParticleSpec{}})
	assert.Zero(t, p.Len())
}

func TestClear(t *testing.T) {
	p := NewPool(donburi.NewWorld())
	for i := 0; i < 3; i++ {
		p.Create(objects.ParticleDesc{Spec: smoke()})
	}
	require.Equal(t, 3, p.Len())
	p.Clear()
	assert.Zero(t, p.Len())
}
