package systems

import (
	cfg "github.com/automoto/doomerang-siege/config"
	"github.com/automoto/doomerang-siege/effects"
	"github.com/automoto/doomerang-siege/game"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateSession steps the game session with this frame's input.
// Must run AFTER UpdateInput.
func NewUpdateSession(session *game.Session) ecs.System {
	return func(ecs *ecs.ECS) {
		session.Step(GetOrCreateInput(ecs))
	}
}

// NewUpdateParticles ages particles on the simulation clock. Particles
// freeze while the round is paused.
func NewUpdateParticles(session *game.Session, pool *effects.Pool) ecs.System {
	return func(_ *ecs.ECS) {
		if session.State() == cfg.StatePaused {
			return
		}
		pool.Update(session.Clock().FrameTime())
	}
}
