package game

import (
	"github.com/automoto/doomerang-siege/components"
	"github.com/automoto/doomerang-siege/config"
	"github.com/automoto/doomerang-siege/objects"
	"github.com/automoto/doomerang-siege/shared/gamemath"
)

var meleeActions = [config.MeleeCount]config.ActionID{
	config.MeleeSword:      config.ActionSword,
	config.MeleeDagger:     config.ActionDagger,
	config.MeleeGreatsword: config.ActionGreatsword,
}

// NextFrame rolls the snapshot forward one frame with exactly the given
// actions held.
func NextFrame(in *components.InputData, held ...config.ActionID) {
	in.Previous = in.Current
	in.Current = [config.ActionCount]bool{}
	for _, a := range held {
		in.Current[a] = true
	}
}

func axis(in *components.InputData, left, right, up, down config.ActionID) gamemath.Vec2 {
	var v gamemath.Vec2
	if in.Current[left] {
		v.X--
	}
	if in.Current[right] {
		v.X++
	}
	if in.Current[up] {
		v.Y--
	}
	if in.Current[down] {
		v.Y++
	}
	return v
}

// resolveIntent maps one frame of input onto the manager's player intents.
func resolveIntent(m *objects.Manager, in *components.InputData) {
	p, ok := m.Player()
	if !ok {
		return
	}

	switch components.Player.Get(p).Locomotion {
	case config.LocomotionStrafe:
		speed := 0.0
		if in.Current[config.ActionMoveUp] {
			speed = config.Player.ForwardSpeed
		}
		m.SetSpeed(speed)

		turn := 0.0
		if in.Current[config.ActionMoveLeft] {
			turn -= config.Player.TurnSpeed
		}
		if in.Current[config.ActionMoveRight] {
			turn += config.Player.TurnSpeed
		}
		m.SetRotSpeed(turn)

		if in.Current[config.ActionMoveDown] {
			m.StrafeBack()
		}
		if in.Current[config.ActionStrafeLeft] {
			m.StrafeLeft()
		}
		if in.Current[config.ActionStrafeRight] {
			m.StrafeRight()
		}
	default:
		m.Walk(axis(in, config.ActionMoveLeft, config.ActionMoveRight, config.ActionMoveUp, config.ActionMoveDown))
	}

	for kind, action := range meleeActions {
		if in.Action(action).JustPressed && m.TriggerSwing(config.MeleeKind(kind)) {
			break
		}
	}

	if fire := axis(in, config.ActionFireLeft, config.ActionFireRight, config.ActionFireUp, config.ActionFireDown); !fire.IsZero() {
		m.FireDirectional(fire)
	}
	m.SetShield(in.Current[config.ActionShield])
	if in.Action(config.ActionCycleWeapon).JustPressed {
		m.CycleWeapon()
	}
}
