package objects

import (
	"math"

	"github.com/automoto/doomerang-siege/components"
	"github.com/automoto/doomerang-siege/config"
	"github.com/automoto/doomerang-siege/shared/gamemath"
	"github.com/yohamta/donburi"
)

type bulletBehavior struct{}

// Bullets fly straight and expire once their time alive reaches the life
// span. A zero life span never expires.
func (bulletBehavior) Move(m *Manager, e *donburi.Entry, dt float64) {
	o := components.Object.Get(e)
	if !o.Alive {
		return
	}
	o.Pos = o.Pos.Add(o.Vel.Scale(dt))
	o.TimeAlive += dt
	if o.MaxLifeSpan > 0 && o.TimeAlive >= o.MaxLifeSpan {
		m.Kill(e)
	}
}

// Any contact ends a bullet. Ricocheting kinds sound off walls.
func (bulletBehavior) OnCollision(m *Manager, e *donburi.Entry, normal gamemath.Vec2, d float64, other *donburi.Entry) {
	o := components.Object.Get(e)
	if !o.Alive {
		return
	}
	if other == nil && config.Bullets[components.Bullet.Get(e).Kind].Ricochet {
		m.ctx.Audio.Play(config.SoundRicochet)
	}
	m.Kill(e)
}

func (bulletBehavior) OnDeath(m *Manager, e *donburi.Entry) {
	o := components.Object.Get(e)
	if fx := config.Bullets[components.Bullet.Get(e).Kind].Death; fx.LifeSpan > 0 {
		m.ctx.Particles.Create(ParticleDesc{Spec: fx, Pos: o.Pos})
	}
}

type pickupBehavior struct{ base }

func (pickupBehavior) Move(m *Manager, e *donburi.Entry, dt float64) {}

// Pickups react to the player only.
func (pickupBehavior) OnCollision(m *Manager, e *donburi.Entry, normal gamemath.Vec2, d float64, other *donburi.Entry) {
	o := components.Object.Get(e)
	if !o.Alive || other == nil || components.Object.Get(other).Kind != components.KindPlayer {
		return
	}
	pd := components.Pickup.Get(e)
	pd.Collected = true
	m.collect(other, pd.Variant)
	m.Kill(e)
}

type healthBarBehavior struct{ base }

// The health bar floats above its target and shows its health in steps of
// five percent. A bar whose target is gone picks up the current player.
func (healthBarBehavior) Move(m *Manager, e *donburi.Entry, dt float64) {
	o := components.Object.Get(e)
	hb := components.HealthBar.Get(e)

	p, po := m.live(hb.Target)
	if p == nil {
		hb.Target = m.player
		if p, po = m.live(hb.Target); p == nil {
			return
		}
	}
	o.Frame = healthFrame(components.Health.Get(p), m.ctx.Sprites.FrameCount(o.Sprite))
	lift := m.ctx.Sprites.Height(po.Sprite)/2 + config.HealthBar.OffsetY
	o.Pos = po.Pos.Sub(gamemath.V(0, lift))
}

func healthFrame(h *components.HealthData, frames int) int {
	frame := int(math.Floor(h.Fraction() * 100))
	frame -= frame % 5
	frame /= 5
	if frame < 0 {
		frame = 0
	}
	if frames > 0 && frame >= frames {
		frame = frames - 1
	}
	return frame
}

type shieldBehavior struct{ base }

// The shield lives only while its owner holds it.
func (shieldBehavior) Move(m *Manager, e *donburi.Entry, dt float64) {
	o := components.Object.Get(e)
	owner, _ := m.live(o.Owner)
	if owner == nil || !owner.HasComponent(components.Player) || components.Player.Get(owner).Shield != e.Entity() {
		m.Kill(e)
	}
}
