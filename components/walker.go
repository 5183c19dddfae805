package components

import (
	"github.com/automoto/doomerang-siege/config"
	"github.com/automoto/doomerang-siege/shared/gamemath"
	"github.com/automoto/doomerang-siege/shared/gametime"
	"github.com/yohamta/donburi"
)

// WalkerData drives four-direction sprite animation.
type WalkerData struct {
	Sprites    config.WalkerSprites
	Facing     config.Direction
	LastDir    gamemath.Vec2
	Moving     bool
	Attacking  bool
	FrameTimer *gametime.EventTimer
	// DirTimer debounces sprite changes; nil means change immediately.
	DirTimer *gametime.EventTimer
}

var Walker = donburi.NewComponentType[WalkerData]()
