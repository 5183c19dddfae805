package config

import (
	"image/color"
	"math"
)

// Team separates friendly fire from hostile fire.
type Team int

const (
	TeamNeutral Team = iota
	TeamPlayer
	TeamEnemy
)

// AIConfig holds the shared chase/patrol/return tuning for roaming enemies.
type AIConfig struct {
	Health           int     `yaml:"health"`
	PatrolSpeed      float64 `yaml:"patrol_speed"`
	ChaseMultiplier  float64 `yaml:"chase_multiplier"`
	ReturnSpeed      float64 `yaml:"return_speed"`
	FollowRadius     float64 `yaml:"follow_radius"`
	ReturnRadius     float64 `yaml:"return_radius"`
	ArrivalThreshold float64 `yaml:"arrival_threshold"`
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	Health int `yaml:"health"`

	// Movement
	Locomotion   Locomotion `yaml:"locomotion"`
	WalkSpeed    float64    `yaml:"walk_speed"`
	ForwardSpeed float64    `yaml:"forward_speed"`
	StrafeSpeed  float64    `yaml:"strafe_speed"`
	TurnSpeed    float64    `yaml:"turn_speed"` // radians per second, strafe scheme only

	// Animation
	FrameInterval float64 `yaml:"frame_interval"`

	// Shield
	ShieldSpeedFactor float64 `yaml:"shield_speed_factor"`
	StartWithShield   bool    `yaml:"start_with_shield"`

	// Ranged weapons unlocked at spawn (prefix of Ranged)
	StartingWeapons int  `yaml:"starting_weapons"`
	GodMode         bool `yaml:"god_mode"`

	Sprites WalkerSprites `yaml:"-"`
}

// MeleeKind identifies one of the close range weapons.
type MeleeKind int

const (
	MeleeSword MeleeKind = iota
	MeleeDagger
	MeleeGreatsword
	MeleeCount
)

// MeleeWeaponConfig describes a swing: how long it lasts, how far it reaches
// and where along the reach the hit test samples.
type MeleeWeaponConfig struct {
	Name          string    `yaml:"name"`
	SwingDuration float64   `yaml:"swing_duration"`
	Range         float64   `yaml:"range"`
	Damage        int       `yaml:"damage"`
	Samples       []float64 `yaml:"samples"` // fractions of Range
}

// BulletKind selects a row of the FireGun table.
type BulletKind int

const (
	BulletPlayer BulletKind = iota
	BulletEnemy
	BulletFireball
	BulletSword
	BulletDagger
	BulletGreatsword
	BulletKindCount
)

func (k BulletKind) String() string {
	switch k {
	case BulletPlayer:
		return "bullet"
	case BulletEnemy:
		return "enemy-bullet"
	case BulletFireball:
		return "fireball"
	case BulletSword:
		return "sword"
	case BulletDagger:
		return "dagger"
	case BulletGreatsword:
		return "greatsword"
	}
	return "unknown"
}

// ParticleSpec describes a one-shot particle. A zero LifeSpan means none.
type ParticleSpec struct {
	Sprite      SpriteID
	LifeSpan    float64
	MaxScale    float64
	ScaleInFrac float64
	FadeOutFrac float64
	Color       color.RGBA
}

// BulletConfig is one row of the projectile table used by FireGun.
type BulletConfig struct {
	Sprite SpriteID `yaml:"-"`
	Speed  float64  `yaml:"speed"`
	// LifeSpan of 0 means the bullet lives until it hits something.
	LifeSpan float64 `yaml:"life_span"`
	// LaunchOffset of 0 derives the offset from the shooter and bullet sprites.
	LaunchOffset float64 `yaml:"launch_offset"`
	Damage       int     `yaml:"damage"`

	FireSound SoundID `yaml:"-"`
	StopGun   bool    `yaml:"-"`
	Ricochet  bool    `yaml:"-"` // plays the ricochet cue and smokes on wall hits

	Muzzle ParticleSpec `yaml:"-"`
	Death  ParticleSpec `yaml:"-"`
}

// RangedWeaponConfig is a player-selectable gun.
type RangedWeaponConfig struct {
	Name        string     `yaml:"name"`
	Bullet      BulletKind `yaml:"bullet"`
	Cooldown    float64    `yaml:"cooldown"`
	Count       int        `yaml:"count"`
	SpreadAngle float64    `yaml:"spread_angle"`
}

// ShieldConfig contains the shield companion tuning.
type ShieldConfig struct {
	Offset float64 `yaml:"offset"`
	// BlockAngle is the half-angle in radians around the facing that absorbs bullets.
	BlockAngle float64  `yaml:"block_angle"`
	Sprite     SpriteID `yaml:"-"`
}

// TurretConfig contains patrol turret configuration.
type TurretConfig struct {
	AI            AIConfig `yaml:"ai"`
	TrackingSpeed float64  `yaml:"tracking_speed"`
	DeadZone      float64  `yaml:"dead_zone"`
	RotationScale float64  `yaml:"rotation_scale"`
	FireInterval  float64  `yaml:"fire_interval"`
}

// StationaryTurretConfig contains fixed gun emplacement configuration.
type StationaryTurretConfig struct {
	Health        int        `yaml:"health"`
	FireInterval  float64    `yaml:"fire_interval"`
	TrackPlayer   bool       `yaml:"track_player"`
	TrackingSpeed float64    `yaml:"tracking_speed"`
	DeadZone      float64    `yaml:"dead_zone"`
	RotationScale float64    `yaml:"rotation_scale"`
	Bullet        BulletKind `yaml:"-"`
}

// ZombieConfig contains zombie configuration.
type ZombieConfig struct {
	AI            AIConfig `yaml:"ai"`
	FrameInterval float64  `yaml:"frame_interval"`
	MaxPush       float64  `yaml:"max_push"`
	PushEpsilon   float64  `yaml:"push_epsilon"`
	// DirectionCooldown debounces walk sprite changes.
	DirectionCooldown float64       `yaml:"direction_cooldown"`
	Sprites           WalkerSprites `yaml:"-"`
}

// SkeletonConfig contains skeleton configuration.
type SkeletonConfig struct {
	Health         int           `yaml:"health"`
	Speed          float64       `yaml:"speed"`
	AttackCooldown float64       `yaml:"attack_cooldown"`
	AttackDamage   int           `yaml:"attack_damage"`
	FrameInterval  float64       `yaml:"frame_interval"`
	BlockedEpsilon float64       `yaml:"blocked_epsilon"` // fraction of a full step
	Sprites        WalkerSprites `yaml:"-"`
}

// PickupConfig contains collectible configuration.
type PickupConfig struct {
	HealAmount int `yaml:"heal_amount"`
}

// EffectsConfig contains the shared particle recipes.
type EffectsConfig struct {
	DeathSmoke ParticleSpec
	DeathSpark ParticleSpec
	MeleeSpark ParticleSpec
}

// HealthBarConfig contains the floating health bar configuration.
type HealthBarConfig struct {
	OffsetY float64 `yaml:"offset_y"`
	Steps   int     `yaml:"steps"`
}

// GameConfig contains round flow configuration.
type GameConfig struct {
	WaitDuration   float64 `yaml:"wait_duration"`
	WallIterations int     `yaml:"wall_iterations"`
	MaxFrameTime   float64 `yaml:"max_frame_time"`
	LevelsDir      string  `yaml:"levels_dir"`
}

// UIConfig contains HUD and overlay colours.
type UIConfig struct {
	BackgroundColor color.RGBA
	FloorColor      color.RGBA
	WallColor       color.RGBA
	TextColor       color.RGBA
	OverlayColor    color.RGBA
	HUDFontSize     float64
	TitleFontSize   float64
}

// Config holds general game configuration
type Config struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	TPS    int    `yaml:"tps"`
	Title  string `yaml:"title"`
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Melee map[MeleeKind]MeleeWeaponConfig
var Bullets map[BulletKind]BulletConfig
var Ranged []RangedWeaponConfig
var Shield ShieldConfig
var Turret TurretConfig
var StationaryTurret StationaryTurretConfig
var Zombie ZombieConfig
var Skeleton SkeletonConfig
var Pickup PickupConfig
var Effects EffectsConfig
var HealthBar HealthBarConfig
var Game GameConfig
var UI UIConfig

// Common colours
var (
	White     = color.RGBA{255, 255, 255, 255}
	Yellow    = color.RGBA{255, 255, 0, 255}
	Red       = color.RGBA{255, 0, 0, 255}
	Orange    = color.RGBA{255, 165, 0, 255}
	OrangeRed = color.RGBA{255, 69, 0, 255}
	Grey      = color.RGBA{128, 128, 128, 255}
)

func init() {
	C = &Config{
		Width:  1024,
		Height: 768,
		TPS:    60,
		Title:  "Doomerang Siege",
	}

	Player = PlayerConfig{
		Health:            12,
		Locomotion:        LocomotionWASD,
		WalkSpeed:         200,
		ForwardSpeed:      200,
		StrafeSpeed:       150,
		TurnSpeed:         3,
		FrameInterval:     0.12,
		ShieldSpeedFactor: 0.5,
		StartWithShield:   true,
		StartingWeapons:   2,
		Sprites:           PlayerSprites,
	}

	Melee = map[MeleeKind]MeleeWeaponConfig{
		MeleeSword: {
			Name:          "sword",
			SwingDuration: 0.3,
			Range:         40,
			Damage:        3,
			Samples:       []float64{1},
		},
		MeleeDagger: {
			Name:          "dagger",
			SwingDuration: 0.15,
			Range:         28,
			Damage:        2,
			Samples:       []float64{0.25, 0.5, 1},
		},
		MeleeGreatsword: {
			Name:          "greatsword",
			SwingDuration: 0.6,
			Range:         56,
			Damage:        6,
			Samples:       []float64{0.25, 0.5, 1},
		},
	}

	Effects = EffectsConfig{
		DeathSmoke: ParticleSpec{Sprite: SpriteSmoke, LifeSpan: 2, MaxScale: 4, ScaleInFrac: 0.5, FadeOutFrac: 0.8, Color: White},
		DeathSpark: ParticleSpec{Sprite: SpriteSpark, LifeSpan: 0.5, MaxScale: 1.5, ScaleInFrac: 0.4, FadeOutFrac: 0.5, Color: OrangeRed},
		MeleeSpark: ParticleSpec{Sprite: SpriteSpark, LifeSpan: 0.25, MaxScale: 0.5, ScaleInFrac: 0.4, FadeOutFrac: 0.5, Color: Yellow},
	}

	muzzleSpark := ParticleSpec{Sprite: SpriteSpark, LifeSpan: 0.25, MaxScale: 0.5, ScaleInFrac: 0.4, FadeOutFrac: 0.5, Color: Yellow}
	Bullets = map[BulletKind]BulletConfig{
		BulletPlayer: {
			Sprite:    SpriteBullet,
			Speed:     500,
			LifeSpan:  2,
			Damage:    1,
			FireSound: SoundGun,
			Muzzle:    muzzleSpark,
		},
		BulletEnemy: {
			Sprite:    SpriteEnemyBullet,
			Speed:     500,
			Damage:    1,
			FireSound: SoundGun,
			Ricochet:  true,
			Muzzle:    muzzleSpark,
			Death:     ParticleSpec{Sprite: SpriteSmoke, LifeSpan: 0.5, MaxScale: 0.5, ScaleInFrac: 0.2, FadeOutFrac: 0.8, Color: White},
		},
		BulletFireball: {
			Sprite:    SpriteFireball,
			Speed:     500,
			LifeSpan:  5,
			Damage:    5,
			FireSound: SoundGun,
			Muzzle:    ParticleSpec{Sprite: SpriteSmoke, LifeSpan: 0.5, MaxScale: 1, ScaleInFrac: 0.2, FadeOutFrac: 0.8, Color: Red},
		},
		BulletSword: {
			Sprite:       SpriteSwordWave,
			Speed:        300,
			LifeSpan:     0.25,
			LaunchOffset: 30,
			Damage:       3,
			FireSound:    SoundClang,
			StopGun:      true,
		},
		BulletDagger: {
			Sprite:       SpriteDagger,
			Speed:        600,
			LifeSpan:     1,
			LaunchOffset: 20,
			Damage:       2,
			FireSound:    SoundClang,
			StopGun:      true,
			Muzzle:       muzzleSpark,
		},
		BulletGreatsword: {
			Sprite:       SpriteGreatswordWave,
			Speed:        200,
			LifeSpan:     0.3,
			LaunchOffset: 40,
			Damage:       6,
			FireSound:    SoundBoom,
			StopGun:      true,
			Muzzle:       muzzleSpark,
		},
	}

	Ranged = []RangedWeaponConfig{
		{Name: "pistol", Bullet: BulletPlayer, Cooldown: 0.2, Count: 1},
		{Name: "dagger fan", Bullet: BulletDagger, Cooldown: 0.5, Count: 3, SpreadAngle: 0.262},
		{Name: "fireball", Bullet: BulletFireball, Cooldown: 1.0, Count: 1},
		{Name: "sword wave", Bullet: BulletSword, Cooldown: 0.4, Count: 1},
		{Name: "greatsword wave", Bullet: BulletGreatsword, Cooldown: 0.8, Count: 1},
	}

	Shield = ShieldConfig{
		Offset:     20,
		BlockAngle: math.Pi / 3,
		Sprite:     SpriteShield,
	}

	Turret = TurretConfig{
		AI: AIConfig{
			Health:           8,
			PatrolSpeed:      200,
			ChaseMultiplier:  2.5,
			ReturnSpeed:      200,
			FollowRadius:     200,
			ReturnRadius:     500,
			ArrivalThreshold: 5,
		},
		TrackingSpeed: 2,
		DeadZone:      0.05,
		RotationScale: 0.2,
		FireInterval:  1,
	}

	StationaryTurret = StationaryTurretConfig{
		Health:        8,
		FireInterval:  1,
		TrackPlayer:   true,
		TrackingSpeed: 2,
		DeadZone:      0.05,
		RotationScale: 0.2,
		Bullet:        BulletEnemy,
	}

	Zombie = ZombieConfig{
		AI: AIConfig{
			Health:           8,
			PatrolSpeed:      70,
			ChaseMultiplier:  2.5,
			ReturnSpeed:      2,
			FollowRadius:     200,
			ReturnRadius:     500,
			ArrivalThreshold: 5,
		},
		FrameInterval:     0.12,
		MaxPush:           5,
		PushEpsilon:       0.05,
		DirectionCooldown: 0.15,
		Sprites:           ZombieSprites,
	}

	Skeleton = SkeletonConfig{
		Health:         6,
		Speed:          80,
		AttackCooldown: 2,
		AttackDamage:   1,
		FrameInterval:  0.12,
		BlockedEpsilon: 0.5,
		Sprites:        SkeletonSprites,
	}

	Pickup = PickupConfig{
		HealAmount: 4,
	}

	HealthBar = HealthBarConfig{
		OffsetY: 10,
		Steps:   20,
	}

	Game = GameConfig{
		WaitDuration:   3,
		WallIterations: 2,
		MaxFrameTime:   0.1,
		LevelsDir:      "levels",
	}

	UI = UIConfig{
		BackgroundColor: color.RGBA{18, 18, 24, 255},
		FloorColor:      color.RGBA{46, 44, 52, 255},
		WallColor:       color.RGBA{92, 86, 104, 255},
		TextColor:       White,
		OverlayColor:    color.RGBA{0, 0, 0, 160},
		HUDFontSize:     14,
		TitleFontSize:   28,
	}
}
