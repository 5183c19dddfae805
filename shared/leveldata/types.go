// Package leveldata provides TMX level parsing for the simulation.
// It has no dependencies on ebitengine or resolv, only plain data.
package leveldata

import (
	"errors"

	"github.com/yohamta/donburi/features/math"
)

var (
	// ErrNoPlayerSpawn is returned when a level has no PlayerSpawn object.
	ErrNoPlayerSpawn = errors.New("no player spawn defined in map")
	// ErrBadTileLayer is returned when the wall layer does not match the map size.
	ErrBadTileLayer = errors.New("wall layer size does not match map")
)

// WallLayerName is the tile layer whose non-empty cells are solid.
const WallLayerName = "walls"

// LevelData holds everything the simulation needs from a TMX level file.
type LevelData struct {
	Name       string
	MapWidth   int
	MapHeight  int
	TileWidth  int
	TileHeight int

	SolidRects []SolidRect

	PlayerSpawn       Spawn
	Turrets           []EnemySpawn
	StationaryTurrets []EnemySpawn
	Zombies           []EnemySpawn
	Skeletons         []EnemySpawn
	Furniture         []FurnitureSpawn
	Pickups           []PickupSpawn
	PatrolPaths       map[string]PatrolPath
}

// SolidRect represents a solid collision tile.
type SolidRect struct {
	X, Y, W, H float64
}

// Spawn is a world position with an optional facing in radians.
type Spawn struct {
	X, Y float64
	Roll float64
}

// EnemySpawn places an enemy, optionally bound to a named patrol path.
type EnemySpawn struct {
	Spawn
	PatrolPath string
}

// FurnitureSpawn places a decoration. Type is a single letter code from the
// map; "H" is the player's health bar.
type FurnitureSpawn struct {
	Spawn
	Type string
}

// PickupSpawn places a collectible of the given variant.
type PickupSpawn struct {
	Spawn
	Variant int
}

// PatrolPath is a closed waypoint loop in world coordinates.
type PatrolPath struct {
	Name   string
	Points []math.Vec2
}
