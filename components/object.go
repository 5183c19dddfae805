package components

import (
	"github.com/automoto/doomerang-siege/config"
	"github.com/automoto/doomerang-siege/shared/gamemath"
	"github.com/yohamta/donburi"
)

// Kind selects an entity's behaviour and collision policy.
type Kind int

const (
	KindPlayer Kind = iota
	KindPatrolTurret
	KindStationaryTurret
	KindZombie
	KindSkeleton
	KindBullet
	KindPickup
	KindFurniture
	KindDecoration
	KindShield
	KindCount
)

var kindNames = [KindCount]string{
	"player", "turret", "stationary-turret", "zombie", "skeleton",
	"bullet", "pickup", "furniture", "decoration", "shield",
}

func (k Kind) String() string {
	if k >= 0 && k < KindCount {
		return kindNames[k]
	}
	return "unknown"
}

// Tint multiplies the sprite colour channels.
type Tint struct {
	R, G, B float32
}

// NoTint leaves the sprite colours unchanged.
var NoTint = Tint{1, 1, 1}

// ObjectData is the flat state every simulated entity carries.
type ObjectData struct {
	Kind Kind

	Pos      gamemath.Vec2
	Vel      gamemath.Vec2
	Roll     float64 // radians, (-pi, pi]
	RotSpeed float64
	Radius   float64 // fixed at creation from the sprite extents

	Sprite config.SpriteID
	Frame  int
	Tint   Tint

	Alive  bool
	Static bool // never displaced by collision response nor integrated
	Team   config.Team

	TimeAlive   float64
	MaxLifeSpan float64 // 0 means no limit

	Owner donburi.Entity // shooter of a bullet, holder of a shield
}

// View is the unit vector the object faces.
func (o *ObjectData) View() gamemath.Vec2 {
	return gamemath.AngleToVector(o.Roll)
}

// Circle is the object's bounding circle.
func (o *ObjectData) Circle() gamemath.Circle {
	return gamemath.Circle{Center: o.Pos, Radius: o.Radius}
}

var Object = donburi.NewComponentType[ObjectData]()
