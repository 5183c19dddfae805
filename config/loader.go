package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed tuning.yaml
var defaultTuningYAML []byte

// Source names where the applied tuning came from.
const (
	SourceEmbedded = "embedded"
)

// tuningDocument mirrors the override file layout. Every section is optional
// and only the keys present in the file replace the defaults.
type tuningDocument struct {
	Window           *Config                 `yaml:"window"`
	Player           *PlayerConfig           `yaml:"player"`
	Shield           *ShieldConfig           `yaml:"shield"`
	Turret           *TurretConfig           `yaml:"turret"`
	StationaryTurret *StationaryTurretConfig `yaml:"stationary_turret"`
	Zombie           *ZombieConfig           `yaml:"zombie"`
	Skeleton         *SkeletonConfig         `yaml:"skeleton"`
	Pickup           *PickupConfig           `yaml:"pickup"`
	HealthBar        *HealthBarConfig        `yaml:"health_bar"`
	Game             *GameConfig             `yaml:"game"`
	Audio            *AudioConfig            `yaml:"audio"`
	Input            *InputConfig            `yaml:"input"`
}

// Load applies tuning overrides on top of the built-in defaults.
// Search order: customPath -> ~/.doomerang-siege/tuning.yaml -> ./configs/tuning.yaml -> embedded default.
// It returns the source that was applied.
func Load(customPath string) (string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := ApplyYAML(data); err != nil {
			return "", fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return customPath, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("tuning.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := ApplyYAML(data); err == nil {
				return userCfgPath, nil
			}
		}
	}

	// Try local configs directory
	localPath := filepath.Join("configs", "tuning.yaml")
	if data, err := os.ReadFile(localPath); err == nil {
		if err := ApplyYAML(data); err == nil {
			return localPath, nil
		}
	}

	// Use embedded default YAML
	if err := ApplyYAML(defaultTuningYAML); err != nil {
		return "", fmt.Errorf("failed to parse embedded tuning: %w", err)
	}
	return SourceEmbedded, nil
}

// ApplyYAML merges a tuning document into the global configuration. Nothing
// is changed if the document fails to parse.
func ApplyYAML(data []byte) error {
	window := *C
	player := Player
	shield := Shield
	turret := Turret
	stationary := StationaryTurret
	zombie := Zombie
	skeleton := Skeleton
	pickup := Pickup
	healthBar := HealthBar
	game := Game
	audio := Audio
	input := Input

	doc := tuningDocument{
		Window:           &window,
		Player:           &player,
		Shield:           &shield,
		Turret:           &turret,
		StationaryTurret: &stationary,
		Zombie:           &zombie,
		Skeleton:         &skeleton,
		Pickup:           &pickup,
		HealthBar:        &healthBar,
		Game:             &game,
		Audio:            &audio,
		Input:            &input,
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return err
	}
	if err := validate(&window, &turret.AI, &zombie.AI); err != nil {
		return err
	}

	*C = window
	Player = player
	Shield = shield
	Turret = turret
	StationaryTurret = stationary
	Zombie = zombie
	Skeleton = skeleton
	Pickup = pickup
	HealthBar = healthBar
	Game = game
	Audio = audio
	Input = input
	return nil
}

func validate(window *Config, ais ...*AIConfig) error {
	if window.TPS <= 0 {
		return fmt.Errorf("window.tps must be positive, got %d", window.TPS)
	}
	for _, ai := range ais {
		if ai.ReturnRadius <= ai.FollowRadius {
			return fmt.Errorf("return_radius %.1f must exceed follow_radius %.1f", ai.ReturnRadius, ai.FollowRadius)
		}
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".doomerang-siege", filename)
}
