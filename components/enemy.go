package components

import (
	"github.com/automoto/doomerang-siege/shared/gametime"
	"github.com/yohamta/donburi"
)

// TurretData is the gun state of turrets.
type TurretData struct {
	GunTimer    *gametime.EventTimer
	TrackPlayer bool
}

// SkeletonData is the melee state of skeletons.
type SkeletonData struct {
	AttackTimer *gametime.EventTimer
}

var Turret = donburi.NewComponentType[TurretData]()
var Skeleton = donburi.NewComponentType[SkeletonData]()
