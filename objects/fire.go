package objects

import (
	"github.com/automoto/doomerang-siege/components"
	"github.com/automoto/doomerang-siege/config"
	"github.com/automoto/doomerang-siege/shared/gamemath"
	"github.com/yohamta/donburi"
)

// Deflection is the largest sideways share of a bullet's speed added at
// launch.
const Deflection = 0.01

// FireGun launches one bullet of the given kind from shooter along dir. The
// bullet starts at the launch offset and inherits the shooter's velocity,
// team and roll, plus a random sideways deflection of up to 1% of its speed.
func (m *Manager) FireGun(shooter *donburi.Entry, kind config.BulletKind, dir gamemath.Vec2) *donburi.Entry {
	so := components.Object.Get(shooter)
	if !so.Alive {
		return nil
	}
	dir = dir.Normalize()
	if dir.IsZero() {
		return nil
	}
	bc, ok := config.Bullets[kind]
	if !ok {
		m.ctx.Logger.Warn("unknown bullet kind", "kind", kind)
		return nil
	}

	launch := bc.LaunchOffset
	if launch == 0 {
		launch = 0.1*m.ctx.Sprites.Width(so.Sprite) + m.ctx.Sprites.Width(bc.Sprite)
	}
	pos := so.Pos.Add(dir.Scale(launch))

	b := m.CreateBullet(kind, pos, so.Team, shooter.Entity())
	bo := components.Object.Get(b)
	side := 2*m.ctx.Random.Float01() - 1
	deflection := dir.NormalCC().Scale(Deflection * side)
	bo.Vel = so.Vel.Add(dir.Add(deflection).Scale(bc.Speed))
	bo.Roll = so.Roll

	if bc.StopGun {
		m.ctx.Audio.Stop(config.SoundGun)
	}
	if bc.FireSound != config.SoundNone {
		m.ctx.Audio.Play(bc.FireSound)
	}
	if bc.Muzzle.LifeSpan > 0 {
		m.ctx.Particles.Create(ParticleDesc{Spec: bc.Muzzle, Pos: pos, Vel: so.Vel, Roll: so.Roll})
	}
	return b
}

// FireSpread fires count bullets fanned angle radians apart, centred on dir.
func (m *Manager) FireSpread(shooter *donburi.Entry, kind config.BulletKind, dir gamemath.Vec2, count int, angle float64) []*donburi.Entry {
	dir = dir.Normalize()
	if count < 1 || dir.IsZero() {
		return nil
	}
	out := make([]*donburi.Entry, 0, count)
	mid := float64(count-1) / 2
	for i := 0; i < count; i++ {
		if b := m.FireGun(shooter, kind, dir.Rotate((float64(i)-mid)*angle)); b != nil {
			out = append(out, b)
		}
	}
	return out
}

// CheckMeleeHit damages every living, damageable entity on another team
// whose circle contains any of the points. Each target is hit at most once
// per call. It reports whether anything was hit.
func (m *Manager) CheckMeleeHit(attacker *donburi.Entry, damage int, points ...gamemath.Vec2) bool {
	ao := components.Object.Get(attacker)
	hit := false
	for _, id := range m.order {
		if id == attacker.Entity() {
			continue
		}
		e, o := m.live(id)
		if e == nil || o.Team == ao.Team || !e.HasComponent(components.Health) {
			continue
		}
		for _, pt := range points {
			if o.Pos.Dist(pt) > o.Radius {
				continue
			}
			m.ctx.Particles.Create(ParticleDesc{Spec: config.Effects.MeleeSpark, Pos: pt})
			m.TakeDamage(e, damage)
			hit = true
			break
		}
	}
	return hit
}
