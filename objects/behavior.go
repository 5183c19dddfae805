package objects

import (
	"github.com/automoto/doomerang-siege/components"
	"github.com/automoto/doomerang-siege/config"
	"github.com/automoto/doomerang-siege/shared/gamemath"
	"github.com/yohamta/donburi"
)

// Behavior is the per-kind half of an entity. State lives in components;
// behaviours are stateless and shared.
type Behavior interface {
	// Move advances the entity by dt seconds.
	Move(m *Manager, e *donburi.Entry, dt float64)
	// OnCollision responds to an overlap of depth d along normal. A nil
	// other means a wall.
	OnCollision(m *Manager, e *donburi.Entry, normal gamemath.Vec2, d float64, other *donburi.Entry)
	// OnDeath runs once when the entity is killed.
	OnDeath(m *Manager, e *donburi.Entry)
}

var behaviors = [components.KindCount]Behavior{
	components.KindPlayer:           playerBehavior{},
	components.KindPatrolTurret:     patrolTurretBehavior{},
	components.KindStationaryTurret: stationaryTurretBehavior{},
	components.KindZombie:           zombieBehavior{},
	components.KindSkeleton:         skeletonBehavior{},
	components.KindBullet:           bulletBehavior{},
	components.KindPickup:           pickupBehavior{},
	components.KindFurniture:        base{},
	components.KindDecoration:       healthBarBehavior{},
	components.KindShield:           shieldBehavior{},
}

func behaviorOf(k components.Kind) Behavior {
	if k >= 0 && k < components.KindCount && behaviors[k] != nil {
		return behaviors[k]
	}
	return base{}
}

// base is the default: linear motion and a positional push.
type base struct{}

func (base) Move(m *Manager, e *donburi.Entry, dt float64) {
	integrate(components.Object.Get(e), dt)
}

func (base) OnCollision(m *Manager, e *donburi.Entry, normal gamemath.Vec2, d float64, other *donburi.Entry) {
	respond(components.Object.Get(e), normal, d, other)
}

func (base) OnDeath(m *Manager, e *donburi.Entry) {}

func integrate(o *components.ObjectData, dt float64) {
	if !o.Alive || o.Static {
		return
	}
	o.Pos = o.Pos.Add(o.Vel.Scale(dt))
}

// respond pushes o out along normal. Walls and static partners take none of
// the push, so o moves the full depth; otherwise each side moves half.
func respond(o *components.ObjectData, normal gamemath.Vec2, d float64, other *donburi.Entry) {
	if !o.Alive || o.Static {
		return
	}
	if other == nil || components.Object.Get(other).Static {
		o.Pos = o.Pos.Add(normal.Scale(d))
		return
	}
	o.Pos = o.Pos.Add(normal.Scale(d / 2))
}

// deathFX is the smoke and spark burst of anything with health.
func (m *Manager) deathFX(o *components.ObjectData) {
	fx := config.Effects
	m.ctx.Particles.Create(ParticleDesc{Spec: fx.DeathSmoke, Pos: o.Pos})
	m.ctx.Particles.Create(ParticleDesc{Spec: fx.DeathSpark, Pos: o.Pos})
}

// hostileBullet returns the bullet data if other is a bullet fired by a
// different team than o.
func hostileBullet(o *components.ObjectData, other *donburi.Entry) (*components.ObjectData, *components.BulletData) {
	if other == nil {
		return nil, nil
	}
	bo := components.Object.Get(other)
	if bo.Kind != components.KindBullet || bo.Team == o.Team {
		return nil, nil
	}
	return bo, components.Bullet.Get(other)
}

// takeBullet consumes a hostile bullet and applies its damage.
func (m *Manager) takeBullet(e, bullet *donburi.Entry, damage int) {
	m.Kill(bullet)
	m.TakeDamage(e, damage)
}

// slide moves a self-moving static entity by delta, stopping at walls. The
// broad phase does not displace these entities.
func (m *Manager) slide(o *components.ObjectData, delta gamemath.Vec2) {
	o.Pos = o.Pos.Add(m.ctx.Tiles.SweepCircle(o.Circle(), delta))
}

// directionOf maps a vector to the nearest cardinal facing. Screen y grows
// downwards.
func directionOf(v gamemath.Vec2) config.Direction {
	a := gamemath.AxisDominant(v)
	switch {
	case a.X > 0:
		return config.DirRight
	case a.X < 0:
		return config.DirLeft
	case a.Y < 0:
		return config.DirUp
	}
	return config.DirDown
}

var facingVectors = [4]gamemath.Vec2{
	config.DirDown:  {X: 0, Y: 1},
	config.DirUp:    {X: 0, Y: -1},
	config.DirLeft:  {X: -1, Y: 0},
	config.DirRight: {X: 1, Y: 0},
}

func facingRoll(d config.Direction) float64 {
	return facingVectors[d].Angle()
}

// animate picks the walker sprite for its state and steps the frame on the
// walker's frame timer.
func (m *Manager) animate(o *components.ObjectData, w *components.WalkerData) {
	sprite := w.Sprites.Stand[w.Facing]
	switch {
	case w.Attacking:
		sprite = w.Sprites.Attack[w.Facing]
	case w.Moving:
		sprite = w.Sprites.Walk[w.Facing]
	}
	if sprite != o.Sprite {
		o.Sprite = sprite
		o.Frame = 0
	}
	if !w.Moving && !w.Attacking {
		return
	}
	if w.FrameTimer.Triggered(m.ctx.Clock.Time()) {
		if n := m.ctx.Sprites.FrameCount(sprite); n > 1 {
			o.Frame = (o.Frame + 1) % n
		}
	}
}
