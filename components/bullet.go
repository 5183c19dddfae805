package components

import (
	"github.com/automoto/doomerang-siege/config"
	"github.com/yohamta/donburi"
)

type BulletData struct {
	Kind   config.BulletKind
	Damage int
}

type PickupData struct {
	Variant   int
	Collected bool
}

var Bullet = donburi.NewComponentType[BulletData]()
var Pickup = donburi.NewComponentType[PickupData]()
