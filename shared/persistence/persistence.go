// Package persistence saves player settings between runs through gdata.
// Failures are logged and never stop the game.
package persistence

import (
	"encoding/json"
	"io"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata"
)

const settingsKey = "settings"

// Settings represents the settings data stored on disk
type Settings struct {
	SFXVolume  float64 `json:"sfxVolume"`
	Muted      bool    `json:"muted"`
	Fullscreen bool    `json:"fullscreen"`
	GodMode    bool    `json:"godMode"`
	Locomotion string  `json:"locomotion"`
	ShowFPS    bool    `json:"showFps"`
}

// Store is the subset of gdata.Manager used here.
type Store interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// Persistence reads and writes the saved items. A nil store turns every
// call into a no-op.
type Persistence struct {
	store  Store
	logger *log.Logger
}

// Open initializes the gdata manager for appName.
func Open(appName string, logger *log.Logger) (*Persistence, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return New(nil, logger), err
	}
	return New(m, logger), nil
}

// New wraps an existing store.
func New(store Store, logger *log.Logger) *Persistence {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Persistence{store: store, logger: logger}
}

// LoadSettings returns nil when nothing has been saved yet.
func (p *Persistence) LoadSettings() *Settings {
	var s Settings
	if !p.load(settingsKey, &s) {
		return nil
	}
	return &s
}

func (p *Persistence) SaveSettings(s *Settings) error {
	return p.save(settingsKey, s)
}

func (p *Persistence) load(key string, v any) bool {
	if p.store == nil {
		return false
	}
	data, err := p.store.LoadItem(key)
	if err != nil {
		p.logger.Warn("could not load saved item", "key", key, "error", err)
		return false
	}
	if len(data) == 0 {
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		p.logger.Warn("could not parse saved item", "key", key, "error", err)
		return false
	}
	return true
}

func (p *Persistence) save(key string, v any) error {
	if p.store == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		p.logger.Warn("could not serialize item", "key", key, "error", err)
		return err
	}
	if err := p.store.SaveItem(key, data); err != nil {
		p.logger.Warn("could not save item", "key", key, "error", err)
		return err
	}
	return nil
}
