package components

import (
	"github.com/automoto/doomerang-siege/config"
	"github.com/automoto/doomerang-siege/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ParticleData is a short-lived visual effect. Scale and Alpha are driven
// by tweens built from its ParticleSpec.
type ParticleData struct {
	Spec  config.ParticleSpec
	Pos   gamemath.Vec2
	Vel   gamemath.Vec2
	Roll  float64
	Age   float64
	Scale float64
	Alpha float64

	ScaleTween *gween.Tween
	AlphaTween *gween.Sequence
}

var Particle = donburi.NewComponentType[ParticleData]()
