package headless

import "github.com/automoto/doomerang-siege/config"

// Idle holds nothing.
func Idle(uint64) []config.ActionID {
	return nil
}

var patrolMoves = []config.ActionID{
	config.ActionMoveRight,
	config.ActionMoveDown,
	config.ActionMoveLeft,
	config.ActionMoveUp,
}

var patrolFire = []config.ActionID{
	config.ActionFireRight,
	config.ActionFireDown,
	config.ActionFireLeft,
	config.ActionFireUp,
}

// Patrol walks a square, firing ahead, with a sword swing every two
// seconds and the shield raised every fifth second. Phases are counted in
// frames at the given tick rate.
func Patrol(tps int) Script {
	if tps <= 0 {
		tps = 60
	}
	second := uint64(tps)
	return func(frame uint64) []config.ActionID {
		leg := (frame / second) % uint64(len(patrolMoves))
		held := []config.ActionID{patrolMoves[leg]}
		switch {
		case (frame/second)%5 == 4:
			held = append(held, config.ActionShield)
		case frame%(2*second) == 0:
			held = append(held, config.ActionSword)
		default:
			held = append(held, patrolFire[leg])
		}
		return held
	}
}
