package tags

import "github.com/yohamta/donburi"

// Entity kind tags, one per simulation kind. Counting a kind iterates its tag
// instead of every entity.
var (
	Player           = donburi.NewTag().SetName("Player")
	PatrolTurret     = donburi.NewTag().SetName("PatrolTurret")
	StationaryTurret = donburi.NewTag().SetName("StationaryTurret")
	Zombie           = donburi.NewTag().SetName("Zombie")
	Skeleton         = donburi.NewTag().SetName("Skeleton")
	Bullet           = donburi.NewTag().SetName("Bullet")
	Pickup           = donburi.NewTag().SetName("Pickup")
	Furniture        = donburi.NewTag().SetName("Furniture")
	Decoration       = donburi.NewTag().SetName("Decoration")
	Shield           = donburi.NewTag().SetName("Shield")
	Particle         = donburi.NewTag().SetName("Particle")
)

// Resolv tags for wall queries
const (
	ResolvSolid = "solid"
	ResolvProbe = "probe"
)
