package components

import (
	"github.com/automoto/doomerang-siege/config"
	"github.com/automoto/doomerang-siege/shared/gamemath"
	"github.com/automoto/doomerang-siege/shared/gametime"
	"github.com/yohamta/donburi"
)

// SwingState tracks one melee weapon. Remaining > 0 means swinging.
type SwingState struct {
	Remaining float64
	HasHit    bool
}

func (s *SwingState) Active() bool {
	return s.Remaining > 0
}

type PlayerData struct {
	Locomotion config.Locomotion

	// Intent, written by the driver before each tick
	Speed       float64
	Turn        float64
	MoveDir     gamemath.Vec2
	StrafeLeft  bool
	StrafeRight bool
	StrafeBack  bool

	Swings [config.MeleeCount]SwingState

	ShieldHeld     bool
	ShieldAllowed  bool
	Shield         donburi.Entity
	GodMode        bool
	Weapon         int
	UnlockedWeapon int
	GunTimers      []*gametime.EventTimer
}

// Swinging reports whether any melee weapon is mid-swing.
func (p *PlayerData) Swinging() bool {
	for i := range p.Swings {
		if p.Swings[i].Active() {
			return true
		}
	}
	return false
}

var Player = donburi.NewComponentType[PlayerData]()
