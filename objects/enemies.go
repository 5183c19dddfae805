package objects

import (
	"math"

	"github.com/automoto/doomerang-siege/components"
	"github.com/automoto/doomerang-siege/config"
	"github.com/automoto/doomerang-siege/shared/gamemath"
	"github.com/yohamta/donburi"
)

// track turns o towards the player while the player is in sight and
// reports whether it was.
func (m *Manager) track(o *components.ObjectData, enabled bool, speed, deadZone, scale, dt float64) bool {
	o.RotSpeed = 0
	visible := false
	if p, ok := m.Player(); ok && enabled {
		po := components.Object.Get(p)
		if m.ctx.Tiles.Visible(o.Pos, po.Pos, po.Radius) {
			visible = true
			bearing := po.Pos.Sub(o.Pos).Angle()
			o.RotSpeed = gamemath.TrackingSpeed(o.Roll, bearing, speed, deadZone)
		}
	}
	o.Roll = gamemath.NormalizeAngle(o.Roll + scale*o.RotSpeed*2*math.Pi*dt)
	return visible
}

// enemyCollision is the shared enemy response to a bullet. It reports
// whether other was a bullet, friendly or not.
func (m *Manager) enemyCollision(e *donburi.Entry, o *components.ObjectData, other *donburi.Entry, damage func(*components.BulletData) int) bool {
	if other == nil {
		return false
	}
	if bo, bd := hostileBullet(o, other); bo != nil {
		m.takeBullet(e, other, damage(bd))
		return true
	}
	return components.Object.Get(other).Kind == components.KindBullet
}

func bulletDamage(bd *components.BulletData) int {
	return bd.Damage
}

func unitDamage(*components.BulletData) int {
	return 1
}

type patrolTurretBehavior struct{ base }

func (patrolTurretBehavior) Move(m *Manager, e *donburi.Entry, dt float64) {
	o := components.Object.Get(e)
	ai := components.AI.Get(e)
	t := components.Turret.Get(e)
	tc := config.Turret

	target, speed := m.steer(o, ai)
	if speed > 0 {
		m.slide(o, target.Sub(o.Pos).Normalize().Scale(speed*dt))
	}

	if m.track(o, t.TrackPlayer, tc.TrackingSpeed, tc.DeadZone, tc.RotationScale, dt) &&
		t.GunTimer.Triggered(m.ctx.Clock.Time()) {
		m.FireGun(e, config.BulletEnemy, o.View())
	}
}

func (patrolTurretBehavior) OnCollision(m *Manager, e *donburi.Entry, normal gamemath.Vec2, d float64, other *donburi.Entry) {
	o := components.Object.Get(e)
	if !o.Alive {
		return
	}
	m.enemyCollision(e, o, other, bulletDamage)
}

func (patrolTurretBehavior) OnDeath(m *Manager, e *donburi.Entry) {
	m.deathFX(components.Object.Get(e))
}

type stationaryTurretBehavior struct{ base }

func (stationaryTurretBehavior) Move(m *Manager, e *donburi.Entry, dt float64) {
	o := components.Object.Get(e)
	t := components.Turret.Get(e)
	sc := config.StationaryTurret

	m.track(o, t.TrackPlayer, sc.TrackingSpeed, sc.DeadZone, sc.RotationScale, dt)
	if t.GunTimer.Triggered(m.ctx.Clock.Time()) {
		m.FireGun(e, sc.Bullet, o.View())
	}
}

// Every hostile bullet costs a stationary turret one point.
func (stationaryTurretBehavior) OnCollision(m *Manager, e *donburi.Entry, normal gamemath.Vec2, d float64, other *donburi.Entry) {
	o := components.Object.Get(e)
	if !o.Alive {
		return
	}
	m.enemyCollision(e, o, other, unitDamage)
}

func (stationaryTurretBehavior) OnDeath(m *Manager, e *donburi.Entry) {
	m.deathFX(components.Object.Get(e))
}

type zombieBehavior struct{ base }

// Zombies walk along one axis at a time, so they only ever face one of the
// four sprite directions.
func (zombieBehavior) Move(m *Manager, e *donburi.Entry, dt float64) {
	o := components.Object.Get(e)
	ai := components.AI.Get(e)
	w := components.Walker.Get(e)
	now := m.ctx.Clock.Time()

	target, speed := m.steer(o, ai)
	var dir gamemath.Vec2
	if speed > 0 {
		dir = gamemath.AxisDominant(target.Sub(o.Pos))
	}
	if dir != w.LastDir && (w.DirTimer == nil || w.DirTimer.Ready(now)) {
		w.LastDir = dir
		w.Moving = !dir.IsZero()
		if w.Moving {
			w.Facing = directionOf(dir)
		}
		if w.DirTimer != nil {
			w.DirTimer.Fire(now)
		}
	}

	m.slide(o, dir.Scale(speed*dt))
	m.animate(o, w)
	o.RotSpeed = 0
}

func (zombieBehavior) OnCollision(m *Manager, e *donburi.Entry, normal gamemath.Vec2, d float64, other *donburi.Entry) {
	o := components.Object.Get(e)
	if !o.Alive || other == nil {
		return
	}
	if m.enemyCollision(e, o, other, bulletDamage) {
		return
	}
	if components.Object.Get(other).Kind == components.KindPickup {
		return
	}
	zc := config.Zombie
	push := math.Min((d+zc.PushEpsilon)/2, zc.MaxPush)
	m.slide(o, normal.Scale(push))
}

func (zombieBehavior) OnDeath(m *Manager, e *donburi.Entry) {
	m.deathFX(components.Object.Get(e))
}

type skeletonBehavior struct{ base }

// Skeletons act only with the player in sight. They close to contact range,
// steering around walls, then strike on their attack cooldown.
func (skeletonBehavior) Move(m *Manager, e *donburi.Entry, dt float64) {
	o := components.Object.Get(e)
	w := components.Walker.Get(e)
	s := components.Skeleton.Get(e)
	kc := config.Skeleton

	o.Vel = gamemath.Vec2{}
	w.Moving, w.Attacking = false, false
	defer m.animate(o, w)

	p, ok := m.Player()
	if !ok {
		return
	}
	po := components.Object.Get(p)
	if !m.ctx.Tiles.Visible(o.Pos, po.Pos, po.Radius) {
		return
	}

	to := po.Pos.Sub(o.Pos)
	if to.Len() > o.Radius+po.Radius {
		dir := m.unblocked(o, to.Normalize(), kc.Speed*dt)
		o.Vel = dir.Scale(kc.Speed)
		m.slide(o, o.Vel.Scale(dt))
		w.Moving = !dir.IsZero()
		if w.Moving {
			w.Facing = directionOf(dir)
		}
		return
	}

	w.Facing = directionOf(to)
	w.Attacking = true
	if s.AttackTimer.Triggered(m.ctx.Clock.Time()) {
		m.damagePlayer(p, kc.AttackDamage)
	}
}

var detours = [...]float64{0, math.Pi / 4, -math.Pi / 4, math.Pi / 2, -math.Pi / 2}

// unblocked returns the first of dir and its 45 and 90 degree detours whose
// trial move makes real progress past the walls, or dir if none does.
func (m *Manager) unblocked(o *components.ObjectData, dir gamemath.Vec2, step float64) gamemath.Vec2 {
	for _, a := range detours {
		try := dir.Rotate(a)
		moved := m.ctx.Tiles.SweepCircle(o.Circle(), try.Scale(step))
		if moved.Len() >= config.Skeleton.BlockedEpsilon*step {
			return try
		}
	}
	return dir
}

func (skeletonBehavior) OnCollision(m *Manager, e *donburi.Entry, normal gamemath.Vec2, d float64, other *donburi.Entry) {
	o := components.Object.Get(e)
	if !o.Alive || m.enemyCollision(e, o, other, bulletDamage) {
		return
	}
	if other != nil && components.Object.Get(other).Kind == components.KindPickup {
		return
	}
	respond(o, normal, d, other)
}

func (skeletonBehavior) OnDeath(m *Manager, e *donburi.Entry) {
	m.deathFX(components.Object.Get(e))
}
