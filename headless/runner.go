package headless

import (
	"context"
	"encoding/binary"
	"hash/fnv"
	"io"
	"math"

	"github.com/automoto/doomerang-siege/components"
	"github.com/automoto/doomerang-siege/config"
	"github.com/automoto/doomerang-siege/game"
	"github.com/automoto/doomerang-siege/shared/gamemath"
	"github.com/charmbracelet/log"
)

// Script returns the actions held on a frame.
type Script func(frame uint64) []config.ActionID

// Summary describes where a run ended up.
type Summary struct {
	Frames       uint64
	Level        string
	LevelIndex   int
	State        config.GameState
	Entities     int
	Hostiles     int
	PlayerAlive  bool
	PlayerHealth int
	PlayerPos    gamemath.Vec2
	Rounds       int
	Sounds       map[config.SoundID]int
	// Checksum hashes the kind and position of every entity.
	Checksum uint64
}

// Runner plays a session from a script.
type Runner struct {
	session *game.Session
	script  Script
	input   components.InputData
	sounds  *soundCounter
	logger  *log.Logger
	rounds  int
	state   config.GameState
}

// NewRunner starts a session. Audio in opts is replaced by a counter.
func NewRunner(opts game.Options, script Script) (*Runner, error) {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if script == nil {
		script = Idle
	}
	sounds := &soundCounter{counts: map[config.SoundID]int{}}
	opts.Audio = sounds
	s, err := game.NewSession(opts)
	if err != nil {
		return nil, err
	}
	return &Runner{
		session: s,
		script:  script,
		sounds:  sounds,
		logger:  opts.Logger,
		state:   s.State(),
	}, nil
}

// Session exposes the running session.
func (r *Runner) Session() *game.Session {
	return r.session
}

// Step feeds one scripted frame to the session.
func (r *Runner) Step() {
	game.NextFrame(&r.input, r.script(r.session.Clock().Frame())...)
	r.session.Step(&r.input)

	if st := r.session.State(); st != r.state {
		if st == config.StateWaiting {
			r.rounds++
		}
		r.state = st
	}
}

// Run steps the session for the given number of frames. With realtime set
// the frames are paced at the session's tick rate.
func (r *Runner) Run(ctx context.Context, frames int, tps int, realtime bool) (Summary, error) {
	rate := 0
	if realtime {
		rate = tps
	}
	left := frames
	loop := NewGameLoop(rate, r.logger, func() bool {
		if left <= 0 {
			return false
		}
		r.Step()
		left--
		return true
	})
	err := loop.Run(ctx)
	sum := r.Summary()
	r.logger.Info("simulation finished",
		"frames", sum.Frames,
		"level", sum.Level,
		"state", sum.State,
		"rounds", sum.Rounds,
		"player_alive", sum.PlayerAlive,
		"player_health", sum.PlayerHealth,
		"hostiles", sum.Hostiles,
	)
	return sum, err
}

// Summary snapshots the session.
func (r *Runner) Summary() Summary {
	s := r.session
	m := s.Manager()
	sum := Summary{
		Frames:     s.Clock().Frame(),
		Level:      s.Level().Name,
		LevelIndex: s.LevelIndex(),
		State:      s.State(),
		Entities:   m.Len(),
		Hostiles:   m.HostilesLeft(),
		Rounds:     r.rounds,
		Sounds:     make(map[config.SoundID]int, len(r.sounds.counts)),
	}
	for id, n := range r.sounds.counts {
		sum.Sounds[id] = n
	}
	if p, ok := m.Player(); ok {
		sum.PlayerAlive = true
		sum.PlayerHealth = components.Health.Get(p).Current
		sum.PlayerPos = components.Object.Get(p).Pos
	}

	h := fnv.New64a()
	var buf [8]byte
	for _, id := range m.Entities() {
		e := m.Entry(id)
		if e == nil {
			continue
		}
		o := components.Object.Get(e)
		for _, v := range []float64{float64(o.Kind), o.Pos.X, o.Pos.Y, o.Roll} {
			binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
			h.Write(buf[:])
		}
	}
	sum.Checksum = h.Sum64()
	return sum
}

type soundCounter struct {
	counts map[config.SoundID]int
}

func (c *soundCounter) Play(id config.SoundID) { c.counts[id]++ }
func (c *soundCounter) Stop(config.SoundID)    {}
