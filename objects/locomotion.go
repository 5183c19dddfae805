package objects

import (
	"github.com/automoto/doomerang-siege/components"
	"github.com/automoto/doomerang-siege/config"
	"github.com/automoto/doomerang-siege/shared/gamemath"
)

// Locomotion turns the player's movement intent into motion.
type Locomotion interface {
	Step(o *components.ObjectData, p *components.PlayerData, w *components.WalkerData, dt float64)
}

var locomotions = map[config.Locomotion]Locomotion{
	config.LocomotionWASD:     wasd{},
	config.LocomotionStrafe:   strafe{},
	config.LocomotionVelocity: velocity{},
}

func locomotionFor(l config.Locomotion) Locomotion {
	if s, ok := locomotions[l]; ok {
		return s
	}
	return wasd{}
}

func walkSpeed(p *components.PlayerData) float64 {
	if p.ShieldHeld {
		return p.Speed * config.Player.ShieldSpeedFactor
	}
	return p.Speed
}

// wasd walks in four directions only. A diagonal keeps its horizontal part.
type wasd struct{}

func (wasd) Step(o *components.ObjectData, p *components.PlayerData, w *components.WalkerData, dt float64) {
	dir := gamemath.AxisDominant(p.MoveDir)
	speed := walkSpeed(p)
	o.Vel = dir.Scale(speed)
	o.Pos = o.Pos.Add(o.Vel.Scale(dt))

	w.Moving = !dir.IsZero() && speed > 0
	if !dir.IsZero() {
		w.Facing = directionOf(dir)
		w.LastDir = dir
		o.Roll = facingRoll(w.Facing)
	}
}

// strafe drives forward along the view vector, turns at the rotation speed
// and sidesteps on the one-shot strafe flags.
type strafe struct{}

func (strafe) Step(o *components.ObjectData, p *components.PlayerData, w *components.WalkerData, dt float64) {
	view := o.View()
	o.Vel = view.Scale(p.Speed)
	o.Pos = o.Pos.Add(o.Vel.Scale(dt))
	o.Roll = gamemath.NormalizeAngle(o.Roll + p.Turn*dt)

	norm := view.NormalCC()
	delta := config.Player.StrafeSpeed * dt
	switch {
	case p.StrafeRight:
		o.Pos = o.Pos.Add(norm.Scale(delta))
	case p.StrafeLeft:
		o.Pos = o.Pos.Sub(norm.Scale(delta))
	case p.StrafeBack:
		o.Pos = o.Pos.Sub(view.Scale(delta))
	}

	w.Moving = p.Speed != 0 || p.StrafeLeft || p.StrafeRight || p.StrafeBack
	w.Facing = directionOf(o.View())
	p.StrafeLeft, p.StrafeRight, p.StrafeBack = false, false, false
}

// velocity moves freely in the input direction, diagonals included.
type velocity struct{}

func (velocity) Step(o *components.ObjectData, p *components.PlayerData, w *components.WalkerData, dt float64) {
	dir := p.MoveDir.Normalize()
	speed := walkSpeed(p)
	o.Vel = dir.Scale(speed)
	o.Pos = o.Pos.Add(o.Vel.Scale(dt))

	w.Moving = !dir.IsZero() && speed > 0
	if !dir.IsZero() {
		w.Facing = directionOf(dir)
		w.LastDir = dir
		o.Roll = dir.Angle()
	}
}
