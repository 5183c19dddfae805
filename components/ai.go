package components

import (
	"github.com/automoto/doomerang-siege/config"
	"github.com/automoto/doomerang-siege/shared/gamemath"
	"github.com/yohamta/donburi"
)

// AIMode is the roaming enemy state.
type AIMode int

const (
	AIPatrolling AIMode = iota
	AIChasing
	AIReturning
)

func (m AIMode) String() string {
	switch m {
	case AIPatrolling:
		return "patrolling"
	case AIChasing:
		return "chasing"
	case AIReturning:
		return "returning"
	}
	return "unknown"
}

type AIData struct {
	Mode        AIMode
	Tuning      config.AIConfig
	Patrol      []gamemath.Vec2 // closed loop, empty means guard Home
	PatrolIndex int
	Home        gamemath.Vec2
}

var AI = donburi.NewComponentType[AIData]()
