// Package objects is the entity simulation: the object manager, per-kind
// behaviours, collision detection and response, and weapon fire.
package objects

import (
	"github.com/automoto/doomerang-siege/components"
	"github.com/automoto/doomerang-siege/config"
	"github.com/automoto/doomerang-siege/shared/gamemath"
	"github.com/automoto/doomerang-siege/shared/gametime"
	"github.com/automoto/doomerang-siege/shared/leveldata"
	"github.com/charmbracelet/log"
)

// Sprites reports sprite extents. Read once when an entity is created.
type Sprites interface {
	Width(id config.SpriteID) float64
	Height(id config.SpriteID) float64
	FrameCount(id config.SpriteID) int
}

// Sprite is the render snapshot of one entity.
type Sprite struct {
	ID    config.SpriteID
	Frame int
	Pos   gamemath.Vec2
	Roll  float64
	Tint  components.Tint
}

// Canvas receives draw calls.
type Canvas interface {
	Draw(s Sprite)
	DrawScreenText(text string, x, y float64)
}

// Audio plays and stops sound cues.
type Audio interface {
	Play(id config.SoundID)
	Stop(id config.SoundID)
}

// Tiles answers wall and line-of-sight queries against the level.
type Tiles interface {
	CollideWithWall(c gamemath.Circle) (bool, gamemath.Vec2, float64)
	// SweepCircle returns how much of delta c can move before meeting a wall.
	SweepCircle(c gamemath.Circle, delta gamemath.Vec2) gamemath.Vec2
	Visible(a, b gamemath.Vec2, radius float64) bool
	SpawnPositions() *leveldata.LevelData
}

// Random is a uniform source in [0, 1).
type Random interface {
	Float01() float64
}

// ParticleDesc describes a one-shot visual effect.
type ParticleDesc struct {
	Spec config.ParticleSpec
	Pos  gamemath.Vec2
	Vel  gamemath.Vec2
	Roll float64
}

// Particles spawns visual effects.
type Particles interface {
	Create(d ParticleDesc)
}

// Context carries the collaborators the simulation depends on.
type Context struct {
	Sprites   Sprites
	Audio     Audio
	Tiles     Tiles
	Clock     gametime.Clock
	Random    Random
	Particles Particles
	Logger    *log.Logger
}

// SpriteTable serves extents from config.Sprites.
type SpriteTable struct{}

func (SpriteTable) Width(id config.SpriteID) float64 {
	return float64(config.Sprites[id].Width)
}

func (SpriteTable) Height(id config.SpriteID) float64 {
	return float64(config.Sprites[id].Height)
}

func (SpriteTable) FrameCount(id config.SpriteID) int {
	return config.Sprites[id].Frames
}
