package systems

import (
	cfg "github.com/automoto/doomerang-siege/config"
	"github.com/automoto/doomerang-siege/game"
	"github.com/automoto/doomerang-siege/shared/persistence"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// ApplySettings pushes saved settings into audio, the window and the
// player tuning. It runs at startup before the session is created.
func ApplySettings(saved *persistence.Settings, logger *log.Logger) {
	if saved == nil {
		return
	}
	SetSFXVolume(saved.SFXVolume)
	SetMuted(saved.Muted)
	ebiten.SetFullscreen(saved.Fullscreen)
	cfg.Player.GodMode = saved.GodMode

	if saved.Locomotion != "" {
		l, err := cfg.ParseLocomotion(saved.Locomotion)
		if err != nil {
			logger.Warn("ignoring saved locomotion", "error", err)
		} else {
			cfg.Player.Locomotion = l
		}
	}
}

// CurrentSettings snapshots the settings worth keeping between runs.
func CurrentSettings(session *game.Session) *persistence.Settings {
	return &persistence.Settings{
		SFXVolume:  GetSFXVolume(),
		Muted:      IsMuted(),
		Fullscreen: ebiten.IsFullscreen(),
		GodMode:    session.GodMode(),
		Locomotion: cfg.Player.Locomotion.String(),
		ShowFPS:    session.ShowFPS(),
	}
}

// NewUpdatePersistence saves settings when one of them changes. Must run
// AFTER the session step.
func NewUpdatePersistence(session *game.Session, store *persistence.Persistence) ecs.System {
	last := *CurrentSettings(session)
	return func(_ *ecs.ECS) {
		if now := CurrentSettings(session); *now != last {
			last = *now
			_ = store.SaveSettings(now)
		}
	}
}
