// Package game drives rounds of play on top of the object simulation. It
// turns input into player intent, ticks the manager at a fixed step and
// moves between playing, paused and waiting.
package game

import (
	"errors"
	"fmt"
	"io"

	"github.com/automoto/doomerang-siege/components"
	"github.com/automoto/doomerang-siege/config"
	"github.com/automoto/doomerang-siege/objects"
	"github.com/automoto/doomerang-siege/shared/gametime"
	"github.com/automoto/doomerang-siege/shared/leveldata"
	"github.com/automoto/doomerang-siege/shared/tilemap"
	"github.com/charmbracelet/log"
)

// ErrNoLevels is returned when a session is started without levels.
var ErrNoLevels = errors.New("no levels to play")

// Options configures a Session. Nil collaborators fall back to the
// manager's defaults.
type Options struct {
	Levels    []*leveldata.LevelData
	Sprites   objects.Sprites
	Audio     objects.Audio
	Particles objects.Particles
	Random    objects.Random
	Logger    *log.Logger
	TPS       int
	// FPS reports the measured frame rate shown by the FPS toggle.
	FPS func() float64
	// StartLevel is the index of the first level played, wrapped into range.
	StartLevel int
	ShowFPS    bool
}

// Session is one run through the level list.
type Session struct {
	opts    Options
	clock   *gametime.FixedStep
	manager *objects.Manager
	tiles   *tilemap.Map

	level   int
	state   config.GameState
	wait    gametime.Countdown
	won     bool
	showFPS bool
	godMode bool
}

// NewSession loads the first level and starts playing it.
func NewSession(opts Options) (*Session, error) {
	if len(opts.Levels) == 0 {
		return nil, ErrNoLevels
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.TPS <= 0 {
		opts.TPS = config.C.TPS
	}
	if opts.FPS == nil {
		tps := float64(opts.TPS)
		opts.FPS = func() float64 { return tps }
	}

	start := opts.StartLevel % len(opts.Levels)
	if start < 0 {
		start += len(opts.Levels)
	}
	s := &Session{
		opts:    opts,
		clock:   gametime.NewFixedStep(opts.TPS),
		showFPS: opts.ShowFPS,
		godMode: config.Player.GodMode,
	}
	if err := s.load(start); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) load(index int) error {
	level := s.opts.Levels[index]
	if level == nil {
		return fmt.Errorf("level %d: %w", index, leveldata.ErrNoPlayerSpawn)
	}
	tiles := tilemap.New(level)
	m := objects.NewManager(objects.Context{
		Sprites:   s.opts.Sprites,
		Audio:     s.opts.Audio,
		Tiles:     tiles,
		Clock:     s.clock,
		Random:    s.opts.Random,
		Particles: s.opts.Particles,
		Logger:    s.opts.Logger,
	})
	if err := m.Populate(); err != nil {
		return fmt.Errorf("level %s: %w", level.Name, err)
	}
	if p, ok := m.Player(); ok {
		// Every round shows the player's health, whether or not the map places it.
		if m.Count(components.KindDecoration) == 0 {
			m.Create(components.KindDecoration, components.Object.Get(p).Pos)
		}
		// God mode carries over between rounds.
		if components.Player.Get(p).GodMode != s.godMode {
			m.ToggleGodMode()
		}
	}

	s.manager = m
	s.tiles = tiles
	s.level = index
	s.state = config.StatePlaying
	s.won = false
	s.wait = gametime.Countdown{}
	s.play(config.SoundStart)
	s.opts.Logger.Info("level started", "level", level.Name, "index", index, "hostiles", m.HostilesLeft())
	return nil
}

func (s *Session) play(id config.SoundID) {
	if s.opts.Audio != nil {
		s.opts.Audio.Play(id)
	}
}

// Step advances the session by one frame of input.
func (s *Session) Step(in *components.InputData) {
	s.globalActions(in)

	switch s.state {
	case config.StatePlaying:
		resolveIntent(s.manager, in)
		s.clock.Tick(s.manager.Update)
		s.checkRound()
	case config.StateWaiting:
		expired := false
		s.clock.Tick(func(dt float64) {
			s.manager.Update(dt)
			expired = s.wait.Tick(dt)
		})
		if expired {
			s.nextRound()
		}
	}
}

func (s *Session) globalActions(in *components.InputData) {
	if in.Action(config.ActionRestart).JustPressed {
		s.Restart()
		return
	}
	if in.Action(config.ActionPause).JustPressed {
		s.SetPaused(s.state == config.StatePlaying)
	}
	if in.Action(config.ActionToggleFPS).JustPressed {
		s.showFPS = !s.showFPS
	}
	if in.Action(config.ActionGodMode).JustPressed && s.state == config.StatePlaying {
		s.godMode = s.manager.ToggleGodMode()
	}
}

// checkRound ends the round when the player is gone or no hostiles remain.
func (s *Session) checkRound() {
	if _, ok := s.manager.Player(); !ok {
		s.endRound(false)
		return
	}
	if s.manager.HostilesLeft() == 0 {
		s.endRound(true)
	}
}

func (s *Session) endRound(won bool) {
	s.state = config.StateWaiting
	s.won = won
	s.wait.Start(config.Game.WaitDuration)
	s.manager.Stop()
	s.manager.SetShield(false)
	s.opts.Logger.Info("round over", "level", s.Level().Name, "won", won, "frame", s.clock.Frame())
}

// nextRound restarts the level after a loss and moves on, wrapping, after
// a win.
func (s *Session) nextRound() {
	next := s.level
	if s.won {
		next = (s.level + 1) % len(s.opts.Levels)
	}
	if err := s.load(next); err != nil {
		s.opts.Logger.Error("failed to load level", "index", next, "error", err)
	}
}

// SetPaused pauses or resumes a round in play. A waiting round is left alone.
func (s *Session) SetPaused(paused bool) {
	switch {
	case paused && s.state == config.StatePlaying:
		s.state = config.StatePaused
	case !paused && s.state == config.StatePaused:
		s.state = config.StatePlaying
	}
}

// Restart reloads the current level.
func (s *Session) Restart() {
	if err := s.load(s.level); err != nil {
		s.opts.Logger.Error("failed to restart level", "index", s.level, "error", err)
	}
}

// Draw renders the entities and the FPS text when enabled.
func (s *Session) Draw(c objects.Canvas) {
	s.manager.Draw(c)
	if s.showFPS {
		c.DrawScreenText(fmt.Sprintf("FPS %.0f", s.opts.FPS()), 8, 8)
	}
}

// State is the current round state.
func (s *Session) State() config.GameState {
	return s.state
}

// Won reports whether the round in the waiting state was a win.
func (s *Session) Won() bool {
	return s.won
}

// WaitRemaining is the time left before the next round starts.
func (s *Session) WaitRemaining() float64 {
	return s.wait.Remaining
}

// Level is the level being played.
func (s *Session) Level() *leveldata.LevelData {
	return s.opts.Levels[s.level]
}

// LevelCount is the number of levels in the rotation.
func (s *Session) LevelCount() int {
	return len(s.opts.Levels)
}

// LevelIndex is the position of the current level in the list.
func (s *Session) LevelIndex() int {
	return s.level
}

// Manager exposes the simulation of the current level.
func (s *Session) Manager() *objects.Manager {
	return s.manager
}

// Tiles is the wall oracle of the current level.
func (s *Session) Tiles() *tilemap.Map {
	return s.tiles
}

// Clock is the fixed-step simulation clock.
func (s *Session) Clock() *gametime.FixedStep {
	return s.clock
}

// ShowFPS reports whether the FPS text is on.
func (s *Session) ShowFPS() bool {
	return s.showFPS
}

// GodMode reports whether the player ignores damage.
func (s *Session) GodMode() bool {
	return s.godMode
}
