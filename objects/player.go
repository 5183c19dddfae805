package objects

import (
	"math"

	"github.com/automoto/doomerang-siege/components"
	"github.com/automoto/doomerang-siege/config"
	"github.com/automoto/doomerang-siege/shared/gamemath"
	"github.com/yohamta/donburi"
)

type playerBehavior struct{}

func (playerBehavior) Move(m *Manager, e *donburi.Entry, dt float64) {
	o := components.Object.Get(e)
	p := components.Player.Get(e)
	w := components.Walker.Get(e)

	locomotionFor(p.Locomotion).Step(o, p, w, dt)
	m.updateSwings(e, o, p, w, dt)
	m.animate(o, w)
	m.placeShield(e, o, p)
}

func (playerBehavior) OnCollision(m *Manager, e *donburi.Entry, normal gamemath.Vec2, d float64, other *donburi.Entry) {
	o := components.Object.Get(e)
	if !o.Alive {
		return
	}
	if other != nil {
		switch oo := components.Object.Get(other); oo.Kind {
		case components.KindBullet:
			if bo, bd := hostileBullet(o, other); bo != nil {
				m.bulletHitsPlayer(e, o, other, bo, bd)
			}
			return
		case components.KindPickup:
			return
		}
	}
	respond(o, normal, d, other)
}

func (playerBehavior) OnDeath(m *Manager, e *donburi.Entry) {
	m.deathFX(components.Object.Get(e))
}

func (m *Manager) bulletHitsPlayer(e *donburi.Entry, o *components.ObjectData, bullet *donburi.Entry, bo *components.ObjectData, bd *components.BulletData) {
	p := components.Player.Get(e)
	if shieldBlocks(o, p, bo.Pos) {
		m.Kill(bullet)
		m.ctx.Audio.Play(config.SoundClang)
		return
	}
	m.damagePlayer(e, bd.Damage)
}

// shieldBlocks reports whether a bullet at pos approaches from within the
// shield's block angle of the player's facing.
func shieldBlocks(o *components.ObjectData, p *components.PlayerData, pos gamemath.Vec2) bool {
	if !p.ShieldHeld {
		return false
	}
	approach := pos.Sub(o.Pos).Normalize()
	if approach.IsZero() {
		return false
	}
	return approach.Dot(o.View()) >= math.Cos(config.Shield.BlockAngle)
}

// damagePlayer applies n damage unless god mode is on, in which case only
// the impact cue plays.
func (m *Manager) damagePlayer(e *donburi.Entry, n int) {
	if components.Player.Get(e).GodMode {
		m.ctx.Audio.Play(config.SoundGrunt)
		return
	}
	m.TakeDamage(e, n)
}

// updateSwings counts down the active melee swing. The hit test runs once,
// on the first tick of the swing.
func (m *Manager) updateSwings(e *donburi.Entry, o *components.ObjectData, p *components.PlayerData, w *components.WalkerData, dt float64) {
	w.Attacking = false
	for k := range p.Swings {
		s := &p.Swings[k]
		if !s.Active() {
			continue
		}
		wc := config.Melee[config.MeleeKind(k)]
		first := s.Remaining >= wc.SwingDuration
		s.Remaining -= dt

		if first && !s.HasHit && m.swingHits(e, o, wc) {
			s.HasHit = true
			m.ctx.Audio.Play(config.SoundClang)
		}
		if s.Remaining <= 0 {
			*s = components.SwingState{}
			continue
		}
		w.Attacking = true
	}
}

func (m *Manager) swingHits(e *donburi.Entry, o *components.ObjectData, wc config.MeleeWeaponConfig) bool {
	view := o.View()
	points := make([]gamemath.Vec2, len(wc.Samples))
	for i, f := range wc.Samples {
		points[i] = o.Pos.Add(view.Scale(wc.Range * f))
	}
	return m.CheckMeleeHit(e, wc.Damage, points...)
}

// placeShield keeps the shield companion in front of the player while the
// shield is held and removes it otherwise.
func (m *Manager) placeShield(e *donburi.Entry, o *components.ObjectData, p *components.PlayerData) {
	se, so := m.live(p.Shield)
	if !p.ShieldHeld {
		if se != nil {
			m.Kill(se)
		}
		p.Shield = donburi.Null
		return
	}
	if se == nil {
		se = m.createShield(e)
		so = components.Object.Get(se)
		p.Shield = se.Entity()
	}
	so.Pos = o.Pos.Add(o.View().Scale(config.Shield.Offset))
	so.Roll = o.Roll
}

// collect applies a pickup's effect to the player.
func (m *Manager) collect(player *donburi.Entry, variant int) {
	p := components.Player.Get(player)
	switch variant {
	case 0:
		h := components.Health.Get(player)
		h.Current += config.Pickup.HealAmount
		if h.Current > h.Max {
			h.Current = h.Max
		}
		components.Object.Get(player).Tint = healthTint(h)
	case 1:
		if p.UnlockedWeapon < len(config.Ranged)-1 {
			p.UnlockedWeapon++
		}
	case 2:
		p.ShieldAllowed = true
	}
}

// Intents. Each acts on the current player and is ignored without one.

func (m *Manager) playerData() (*donburi.Entry, *components.PlayerData) {
	e, ok := m.Player()
	if !ok {
		return nil, nil
	}
	return e, components.Player.Get(e)
}

// Walk sets the movement direction at walking speed. A zero vector stops.
func (m *Manager) Walk(dir gamemath.Vec2) {
	_, p := m.playerData()
	if p == nil {
		return
	}
	if dir.IsZero() {
		p.MoveDir, p.Speed = gamemath.Vec2{}, 0
		return
	}
	p.MoveDir = dir
	p.Speed = config.Player.WalkSpeed
}

// Stop halts walking and shows the standing sprite for the last direction.
func (m *Manager) Stop() {
	m.Walk(gamemath.Vec2{})
}

// SetSpeed sets the forward speed along the view vector.
func (m *Manager) SetSpeed(speed float64) {
	if _, p := m.playerData(); p != nil {
		p.Speed = speed
	}
}

// SetRotSpeed sets the turn rate in radians per second.
func (m *Manager) SetRotSpeed(speed float64) {
	if _, p := m.playerData(); p != nil {
		p.Turn = speed
	}
}

func (m *Manager) StrafeLeft() {
	if _, p := m.playerData(); p != nil {
		p.StrafeLeft = true
	}
}

func (m *Manager) StrafeRight() {
	if _, p := m.playerData(); p != nil {
		p.StrafeRight = true
	}
}

func (m *Manager) StrafeBack() {
	if _, p := m.playerData(); p != nil {
		p.StrafeBack = true
	}
}

// TriggerSwing starts a melee swing. It is refused while any swing is in
// progress.
func (m *Manager) TriggerSwing(kind config.MeleeKind) bool {
	_, p := m.playerData()
	if p == nil || kind < 0 || kind >= config.MeleeCount || p.Swinging() {
		return false
	}
	p.Swings[kind] = components.SwingState{Remaining: config.Melee[kind].SwingDuration}
	m.ctx.Audio.Play(config.SoundGun)
	return true
}

// FireDirectional fires the selected ranged weapon along dir if its cooldown
// has elapsed.
func (m *Manager) FireDirectional(dir gamemath.Vec2) bool {
	e, p := m.playerData()
	if p == nil || len(config.Ranged) == 0 {
		return false
	}
	dir = dir.Normalize()
	if dir.IsZero() {
		return false
	}
	if p.Weapon < 0 || p.Weapon >= len(config.Ranged) {
		p.Weapon = 0
	}
	timer := p.GunTimers[p.Weapon]
	now := m.ctx.Clock.Time()
	if !timer.Ready(now) {
		return false
	}
	timer.Fire(now)

	w := config.Ranged[p.Weapon]
	if w.Count > 1 {
		m.FireSpread(e, w.Bullet, dir, w.Count, w.SpreadAngle)
	} else {
		m.FireGun(e, w.Bullet, dir)
	}
	if p.Locomotion == config.LocomotionStrafe {
		components.Object.Get(e).Roll = dir.Angle()
	}
	return true
}

// SetShield raises or lowers the shield. Raising needs the shield unlocked.
func (m *Manager) SetShield(held bool) {
	e, p := m.playerData()
	if p == nil {
		return
	}
	p.ShieldHeld = held && p.ShieldAllowed
	m.placeShield(e, components.Object.Get(e), p)
}

// CycleWeapon selects the next unlocked ranged weapon.
func (m *Manager) CycleWeapon() int {
	_, p := m.playerData()
	if p == nil {
		return 0
	}
	p.Weapon = (p.Weapon + 1) % (p.UnlockedWeapon + 1)
	return p.Weapon
}

// ToggleGodMode flips damage immunity and returns the new state.
func (m *Manager) ToggleGodMode() bool {
	_, p := m.playerData()
	if p == nil {
		return false
	}
	p.GodMode = !p.GodMode
	m.ctx.Logger.Info("god mode", "enabled", p.GodMode)
	return p.GodMode
}
