package config

import "image/color"

// SpriteID names a drawable. Extents come from the Sprites table.
type SpriteID int

const (
	SpriteNone SpriteID = iota

	SpritePlayerWalkDown
	SpritePlayerWalkUp
	SpritePlayerWalkLeft
	SpritePlayerWalkRight
	SpritePlayerStandDown
	SpritePlayerStandUp
	SpritePlayerStandLeft
	SpritePlayerStandRight
	SpritePlayerAttackDown
	SpritePlayerAttackUp
	SpritePlayerAttackLeft
	SpritePlayerAttackRight

	SpriteZombieWalkDown
	SpriteZombieWalkUp
	SpriteZombieWalkLeft
	SpriteZombieWalkRight
	SpriteZombieStandDown
	SpriteZombieStandUp
	SpriteZombieStandLeft
	SpriteZombieStandRight

	SpriteSkeletonWalkDown
	SpriteSkeletonWalkUp
	SpriteSkeletonWalkLeft
	SpriteSkeletonWalkRight
	SpriteSkeletonStandDown
	SpriteSkeletonStandUp
	SpriteSkeletonStandLeft
	SpriteSkeletonStandRight
	SpriteSkeletonAttackDown
	SpriteSkeletonAttackUp
	SpriteSkeletonAttackLeft
	SpriteSkeletonAttackRight

	SpriteTurret
	SpriteStationaryTurret

	SpriteBullet
	SpriteEnemyBullet
	SpriteFireball
	SpriteSwordWave
	SpriteDagger
	SpriteGreatswordWave

	SpriteShield
	SpritePickup
	SpriteFurniture
	SpriteHealthBar

	SpriteSmoke
	SpriteSpark

	SpriteCount
)

// Shape tells the procedural sprite generator what to paint.
type Shape int

const (
	ShapeCircle Shape = iota
	ShapeBox
	ShapeTriangle
	ShapeBar
)

// SpriteInfo describes a generated sprite sheet. Frames are laid out
// horizontally, each Width by Height.
type SpriteInfo struct {
	Name   string
	Width  int
	Height int
	Frames int
	Shape  Shape
	Color  color.RGBA
	// Rotates sprites are painted facing +x and turned by the entity's roll
	// when drawn. The rest are painted facing Facing and drawn upright.
	Rotates bool
	Facing  Direction
}

// Direction is one of the four cardinal facings used by walkers.
type Direction int

const (
	DirDown Direction = iota
	DirUp
	DirLeft
	DirRight
)

// WalkerSprites indexes a walker's sprites by Direction.
type WalkerSprites struct {
	Walk   [4]SpriteID
	Stand  [4]SpriteID
	Attack [4]SpriteID
}

var (
	PlayerSprites = WalkerSprites{
		Walk:   [4]SpriteID{SpritePlayerWalkDown, SpritePlayerWalkUp, SpritePlayerWalkLeft, SpritePlayerWalkRight},
		Stand:  [4]SpriteID{SpritePlayerStandDown, SpritePlayerStandUp, SpritePlayerStandLeft, SpritePlayerStandRight},
		Attack: [4]SpriteID{SpritePlayerAttackDown, SpritePlayerAttackUp, SpritePlayerAttackLeft, SpritePlayerAttackRight},
	}
	ZombieSprites = WalkerSprites{
		Walk:   [4]SpriteID{SpriteZombieWalkDown, SpriteZombieWalkUp, SpriteZombieWalkLeft, SpriteZombieWalkRight},
		Stand:  [4]SpriteID{SpriteZombieStandDown, SpriteZombieStandUp, SpriteZombieStandLeft, SpriteZombieStandRight},
		Attack: [4]SpriteID{SpriteZombieWalkDown, SpriteZombieWalkUp, SpriteZombieWalkLeft, SpriteZombieWalkRight},
	}
	SkeletonSprites = WalkerSprites{
		Walk:   [4]SpriteID{SpriteSkeletonWalkDown, SpriteSkeletonWalkUp, SpriteSkeletonWalkLeft, SpriteSkeletonWalkRight},
		Stand:  [4]SpriteID{SpriteSkeletonStandDown, SpriteSkeletonStandUp, SpriteSkeletonStandLeft, SpriteSkeletonStandRight},
		Attack: [4]SpriteID{SpriteSkeletonAttackDown, SpriteSkeletonAttackUp, SpriteSkeletonAttackLeft, SpriteSkeletonAttackRight},
	}
)

// Sprites is the global sprite table.
var Sprites map[SpriteID]SpriteInfo

func init() {
	playerColor := color.RGBA{70, 160, 255, 255}
	zombieColor := color.RGBA{90, 190, 90, 255}
	skeletonColor := color.RGBA{225, 225, 205, 255}

	Sprites = map[SpriteID]SpriteInfo{}
	walker := func(prefix string, ids WalkerSprites, c color.RGBA, w, h int) {
		names := [4]string{"down", "up", "left", "right"}
		for d := DirDown; d <= DirRight; d++ {
			Sprites[ids.Walk[d]] = SpriteInfo{Name: prefix + "_walk_" + names[d], Width: w, Height: h, Frames: 4, Shape: ShapeTriangle, Color: c, Facing: d}
			Sprites[ids.Stand[d]] = SpriteInfo{Name: prefix + "_stand_" + names[d], Width: w, Height: h, Frames: 1, Shape: ShapeTriangle, Color: c, Facing: d}
			if _, ok := Sprites[ids.Attack[d]]; !ok {
				Sprites[ids.Attack[d]] = SpriteInfo{Name: prefix + "_attack_" + names[d], Width: w, Height: h, Frames: 2, Shape: ShapeTriangle, Color: c, Facing: d}
			}
		}
	}
	walker("player", PlayerSprites, playerColor, 32, 32)
	walker("zombie", ZombieSprites, zombieColor, 32, 32)
	walker("skeleton", SkeletonSprites, skeletonColor, 32, 32)

	Sprites[SpriteTurret] = SpriteInfo{Name: "turret", Width: 40, Height: 40, Frames: 1, Shape: ShapeTriangle, Color: color.RGBA{200, 80, 60, 255}, Rotates: true}
	Sprites[SpriteStationaryTurret] = SpriteInfo{Name: "stationary_turret", Width: 40, Height: 40, Frames: 1, Shape: ShapeBox, Color: color.RGBA{160, 60, 60, 255}}
	Sprites[SpriteBullet] = SpriteInfo{Name: "bullet", Width: 8, Height: 8, Frames: 1, Shape: ShapeCircle, Color: Yellow, Rotates: true}
	Sprites[SpriteEnemyBullet] = SpriteInfo{Name: "enemy_bullet", Width: 8, Height: 8, Frames: 1, Shape: ShapeCircle, Color: Red, Rotates: true}
	Sprites[SpriteFireball] = SpriteInfo{Name: "fireball", Width: 16, Height: 16, Frames: 1, Shape: ShapeCircle, Color: Orange, Rotates: true}
	Sprites[SpriteSwordWave] = SpriteInfo{Name: "sword", Width: 24, Height: 8, Frames: 1, Shape: ShapeBar, Color: White, Rotates: true}
	Sprites[SpriteDagger] = SpriteInfo{Name: "dagger", Width: 12, Height: 4, Frames: 1, Shape: ShapeBar, Color: Grey, Rotates: true}
	Sprites[SpriteGreatswordWave] = SpriteInfo{Name: "greatsword", Width: 32, Height: 12, Frames: 1, Shape: ShapeBar, Color: White, Rotates: true}
	Sprites[SpriteShield] = SpriteInfo{Name: "shield", Width: 8, Height: 24, Frames: 1, Shape: ShapeBar, Color: color.RGBA{120, 200, 255, 200}, Rotates: true}
	Sprites[SpritePickup] = SpriteInfo{Name: "pickup", Width: 16, Height: 16, Frames: 3, Shape: ShapeBox, Color: color.RGBA{250, 210, 60, 255}}
	Sprites[SpriteFurniture] = SpriteInfo{Name: "furniture", Width: 32, Height: 32, Frames: 4, Shape: ShapeBox, Color: color.RGBA{140, 100, 60, 255}}
	Sprites[SpriteHealthBar] = SpriteInfo{Name: "healthbar", Width: 40, Height: 6, Frames: 21, Shape: ShapeBar, Color: color.RGBA{40, 220, 40, 255}}
	Sprites[SpriteSmoke] = SpriteInfo{Name: "smoke", Width: 16, Height: 16, Frames: 1, Shape: ShapeCircle, Color: color.RGBA{200, 200, 200, 255}}
	Sprites[SpriteSpark] = SpriteInfo{Name: "spark", Width: 8, Height: 8, Frames: 1, Shape: ShapeCircle, Color: White}
}
