package objects

import (
	"github.com/automoto/doomerang-siege/components"
	"github.com/automoto/doomerang-siege/config"
	"github.com/automoto/doomerang-siege/shared/gamemath"
)

func newAI(t config.AIConfig, o *components.ObjectData, patrol []gamemath.Vec2) components.AIData {
	ai := components.AIData{Tuning: t, Mode: components.AIReturning, Home: o.Pos}
	if len(patrol) > 0 {
		ai.Patrol = patrol
		ai.Mode = components.AIPatrolling
		o.Pos = patrol[0]
		ai.Home = patrol[0]
	}
	return ai
}

// NextMode applies the chase hysteresis. Chasing starts below the follow
// radius and ends only above the return radius; in between the mode holds.
func NextMode(mode components.AIMode, dist float64, t config.AIConfig, hasPatrol bool) components.AIMode {
	if mode != components.AIChasing {
		if dist < t.FollowRadius {
			return components.AIChasing
		}
		return mode
	}
	if dist > t.ReturnRadius {
		return idleMode(hasPatrol)
	}
	return mode
}

func idleMode(hasPatrol bool) components.AIMode {
	if hasPatrol {
		return components.AIPatrolling
	}
	return components.AIReturning
}

// steer updates the AI mode and returns where to head and how fast. A zero
// speed means hold position.
func (m *Manager) steer(o *components.ObjectData, ai *components.AIData) (gamemath.Vec2, float64) {
	t := ai.Tuning
	hasPatrol := len(ai.Patrol) > 0

	player, ok := m.Player()
	var target gamemath.Vec2
	if ok {
		target = components.Object.Get(player).Pos
		ai.Mode = NextMode(ai.Mode, target.Dist(o.Pos), t, hasPatrol)
	} else if ai.Mode == components.AIChasing {
		ai.Mode = idleMode(hasPatrol)
	}

	switch ai.Mode {
	case components.AIChasing:
		return target, t.PatrolSpeed * t.ChaseMultiplier
	case components.AIPatrolling:
		if !hasPatrol {
			ai.Mode = components.AIReturning
			break
		}
		if ai.PatrolIndex >= len(ai.Patrol) {
			ai.PatrolIndex = 0
		}
		wp := ai.Patrol[ai.PatrolIndex]
		if wp.Dist(o.Pos) < t.ArrivalThreshold {
			ai.PatrolIndex = (ai.PatrolIndex + 1) % len(ai.Patrol)
			wp = ai.Patrol[ai.PatrolIndex]
		}
		return wp, t.PatrolSpeed
	}

	if ai.Home.Dist(o.Pos) < t.ArrivalThreshold {
		return ai.Home, 0
	}
	return ai.Home, t.ReturnSpeed
}
