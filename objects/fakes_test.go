package objects

import (
	"math"
	"testing"

	"github.com/automoto/doomerang-siege/components"
	"github.com/automoto/doomerang-siege/config"
	"github.com/automoto/doomerang-siege/shared/gamemath"
	"github.com/automoto/doomerang-siege/shared/gametime"
	"github.com/automoto/doomerang-siege/shared/leveldata"
	"github.com/yohamta/donburi"
)

// fakeSprites makes every sprite 20x20 so every radius is 10.
type fakeSprites struct{}

func (fakeSprites) Width(config.SpriteID) float64  { return 20 }
func (fakeSprites) Height(config.SpriteID) float64 { return 20 }
func (fakeSprites) FrameCount(id config.SpriteID) int {
	if n := config.Sprites[id].Frames; n > 0 {
		return n
	}
	return 1
}

type recordingAudio struct {
	played  []config.SoundID
	stopped []config.SoundID
}

func (a *recordingAudio) Play(id config.SoundID) { a.played = append(a.played, id) }
func (a *recordingAudio) Stop(id config.SoundID) { a.stopped = append(a.stopped, id) }

func (a *recordingAudio) count(id config.SoundID) int {
	n := 0
	for _, p := range a.played {
		if p == id {
			n++
		}
	}
	return n
}

type recordingParticles struct {
	created []ParticleDesc
}

func (p *recordingParticles) Create(d ParticleDesc) { p.created = append(p.created, d) }

func (p *recordingParticles) count(spec config.ParticleSpec) int {
	n := 0
	for _, d := range p.created {
		if d.Spec == spec {
			n++
		}
	}
	return n
}

// fakeTiles is open ground, optionally with a solid half-plane x >= wallX.
type fakeTiles struct {
	wall   bool
	wallX  float64
	hidden bool
	level  *leveldata.LevelData
}

func (t *fakeTiles) CollideWithWall(c gamemath.Circle) (bool, gamemath.Vec2, float64) {
	if !t.wall {
		return false, gamemath.Vec2{}, 0
	}
	d := c.Center.X + c.Radius - t.wallX
	if d <= 0 {
		return false, gamemath.Vec2{}, 0
	}
	return true, gamemath.V(-1, 0), d
}

// SweepCircle stops x motion at the half-plane and lets y through.
func (t *fakeTiles) SweepCircle(c gamemath.Circle, delta gamemath.Vec2) gamemath.Vec2 {
	if t.wall && delta.X > 0 {
		delta.X = math.Min(delta.X, math.Max(0, t.wallX-(c.Center.X+c.Radius)))
	}
	return delta
}

func (t *fakeTiles) Visible(a, b gamemath.Vec2, radius float64) bool {
	return !t.hidden
}

func (t *fakeTiles) SpawnPositions() *leveldata.LevelData {
	return t.level
}

// scriptedRandom replays values in a loop.
type scriptedRandom struct {
	values []float64
	i      int
}

func (r *scriptedRandom) Float01() float64 {
	v := r.values[r.i%len(r.values)]
	r.i++
	return v
}

type fixture struct {
	m         *Manager
	audio     *recordingAudio
	particles *recordingParticles
	tiles     *fakeTiles
	clock     *gametime.ManualClock
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		audio:     &recordingAudio{},
		particles: &recordingParticles{},
		tiles:     &fakeTiles{},
		clock:     &gametime.ManualClock{Step: 1.0 / 60},
	}
	f.m = NewManager(Context{
		Sprites:   fakeSprites{},
		Audio:     f.audio,
		Tiles:     f.tiles,
		Clock:     f.clock,
		Random:    &scriptedRandom{values: []float64{0.5}},
		Particles: f.particles,
	})
	return f
}

// step advances the clock and runs one pass.
func (f *fixture) step(dt float64) {
	f.clock.Step = dt
	f.clock.Advance()
	f.m.Update(dt)
}

func obj(e *donburi.Entry) *components.ObjectData {
	return components.Object.Get(e)
}

func health(e *donburi.Entry) int {
	return components.Health.Get(e).Current
}

// facePlayer points the player along a cardinal direction.
func facePlayer(e *donburi.Entry, d config.Direction) {
	components.Walker.Get(e).Facing = d
	obj(e).Roll = facingRoll(d)
}
