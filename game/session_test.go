package game

import (
	"testing"

	"github.com/automoto/doomerang-siege/components"
	"github.com/automoto/doomerang-siege/config"
	"github.com/automoto/doomerang-siege/objects"
	"github.com/automoto/doomerang-siege/shared/leveldata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingAudio struct {
	played []config.SoundID
}

func (a *recordingAudio) Play(id config.SoundID) { a.played = append(a.played, id) }
func (a *recordingAudio) Stop(config.SoundID)    {}

type textCanvas struct {
	sprites int
	texts   []string
}

func (c *textCanvas) Draw(objects.Sprite) { c.sprites++ }
func (c *textCanvas) DrawScreenText(text string, x, y float64) {
	c.texts = append(c.texts, text)
}

// room is a walled 20x15 tile level with the player in the middle and a
// zombie per spawn, far enough away not to notice the player.
func room(name string, zombies ...leveldata.Spawn) *leveldata.LevelData {
	level := &leveldata.LevelData{
		Name:        name,
		MapWidth:    640,
		MapHeight:   480,
		TileWidth:   32,
		TileHeight:  32,
		PlayerSpawn: leveldata.Spawn{X: 320, Y: 240},
		PatrolPaths: map[string]leveldata.PatrolPath{},
	}
	for x := 0; x < 20; x++ {
		level.SolidRects = append(level.SolidRects,
			leveldata.SolidRect{X: float64(x * 32), Y: 0, W: 32, H: 32},
			leveldata.SolidRect{X: float64(x * 32), Y: 448, W: 32, H: 32},
		)
	}
	for y := 1; y < 14; y++ {
		level.SolidRects = append(level.SolidRects,
			leveldata.SolidRect{X: 0, Y: float64(y * 32), W: 32, H: 32},
			leveldata.SolidRect{X: 608, Y: float64(y * 32), W: 32, H: 32},
		)
	}
	for _, z := range zombies {
		level.Zombies = append(level.Zombies, leveldata.EnemySpawn{Spawn: z})
	}
	return level
}

var farCorner = leveldata.Spawn{X: 580, Y: 60}

func newSession(t *testing.T, levels ...*leveldata.LevelData) (*Session, *recordingAudio) {
	t.Helper()
	audio := &recordingAudio{}
	s, err := NewSession(Options{Levels: levels, Audio: audio, TPS: 60})
	require.NoError(t, err)
	return s, audio
}

func TestNewSessionNeedsLevels(t *testing.T) {
	_, err := NewSession(Options{})
	assert.ErrorIs(t, err, ErrNoLevels)
}

func TestNewSessionRejectsLevelWithoutSpawns(t *testing.T) {
	_, err := NewSession(Options{Levels: []*leveldata.LevelData{nil}})
	assert.Error(t, err)
}

func TestSessionStartsPlaying(t *testing.T) {
	s, audio := newSession(t, room("one", farCorner))

	assert.Equal(t, config.StatePlaying, s.State())
	assert.Equal(t, []config.SoundID{config.SoundStart}, audio.played)
	_, ok := s.Manager().Player()
	assert.True(t, ok)
	assert.Equal(t, 1, s.Manager().Count(components.KindDecoration), "health bar added")
	assert.Equal(t, 1, s.Manager().HostilesLeft())
}

func TestPauseFreezesTheSimulation(t *testing.T) {
	s, _ := newSession(t, room("one", farCorner))
	var in components.InputData

	NextFrame(&in, config.ActionPause)
	s.Step(&in)
	require.Equal(t, config.StatePaused, s.State())
	frame := s.Clock().Frame()

	for i := 0; i < 10; i++ {
		NextFrame(&in, config.ActionMoveRight)
		s.Step(&in)
	}
	assert.Equal(t, frame, s.Clock().Frame())

	NextFrame(&in, config.ActionPause)
	s.Step(&in)
	assert.Equal(t, config.StatePlaying, s.State())
	assert.Equal(t, frame+1, s.Clock().Frame())
}

func TestWalkingMovesThePlayer(t *testing.T) {
	s, _ := newSession(t, room("one", farCorner))
	var in components.InputData

	p, _ := s.Manager().Player()
	start := components.Object.Get(p).Pos
	for i := 0; i < 30; i++ {
		NextFrame(&in, config.ActionMoveLeft)
		s.Step(&in)
	}
	got := components.Object.Get(p).Pos
	assert.InDelta(t, start.X-config.Player.WalkSpeed*0.5, got.X, 1e-6)
	assert.InDelta(t, start.Y, got.Y, 1e-9)
}

func TestFireAndSwingIntents(t *testing.T) {
	s, _ := newSession(t, room("one", farCorner))
	var in components.InputData

	NextFrame(&in, config.ActionFireRight, config.ActionSword)
	s.Step(&in)
	assert.Equal(t, 1, s.Manager().Count(components.KindBullet))
	p, _ := s.Manager().Player()
	assert.True(t, components.Player.Get(p).Swinging())

	NextFrame(&in, config.ActionShield)
	s.Step(&in)
	assert.Equal(t, 1, s.Manager().Count(components.KindShield))

	NextFrame(&in, config.ActionCycleWeapon)
	s.Step(&in)
	assert.Equal(t, 1, components.Player.Get(p).Weapon)
	assert.Zero(t, s.Manager().Count(components.KindShield))
}

func TestSetPausedLeavesWaitingAlone(t *testing.T) {
	s, _ := newSession(t, room("one", farCorner))
	var in components.InputData

	s.SetPaused(true)
	assert.Equal(t, config.StatePaused, s.State())
	s.SetPaused(true)
	assert.Equal(t, config.StatePaused, s.State())
	s.SetPaused(false)
	assert.Equal(t, config.StatePlaying, s.State())

	p, _ := s.Manager().Player()
	s.Manager().TakeDamage(p, 100)
	NextFrame(&in)
	s.Step(&in)
	require.Equal(t, config.StateWaiting, s.State())
	s.SetPaused(true)
	assert.Equal(t, config.StateWaiting, s.State())
}

func TestGodModeAction(t *testing.T) {
	s, _ := newSession(t, room("one", farCorner))
	var in components.InputData

	NextFrame(&in, config.ActionGodMode)
	s.Step(&in)
	p, _ := s.Manager().Player()
	assert.True(t, components.Player.Get(p).GodMode)

	NextFrame(&in, config.ActionGodMode)
	s.Step(&in)
	assert.True(t, components.Player.Get(p).GodMode, "held key toggles once")
	assert.True(t, s.GodMode())
}

func TestGodModeSurvivesRestart(t *testing.T) {
	s, _ := newSession(t, room("one", farCorner))
	var in components.InputData

	NextFrame(&in, config.ActionGodMode)
	s.Step(&in)
	NextFrame(&in, config.ActionRestart)
	s.Step(&in)

	p, ok := s.Manager().Player()
	require.True(t, ok)
	assert.True(t, components.Player.Get(p).GodMode)
}

func TestStartLevelWraps(t *testing.T) {
	levels := []*leveldata.LevelData{room("one", farCorner), room("two", farCorner)}
	tests := []struct {
		start, want int
	}{
		{0, 0},
		{1, 1},
		{3, 1},
		{-1, 1},
	}
	for _, tt := range tests {
		s, err := NewSession(Options{Levels: levels, StartLevel: tt.start})
		require.NoError(t, err)
		assert.Equal(t, tt.want, s.LevelIndex(), "start %d", tt.start)
	}
}

func TestLossRestartsTheLevel(t *testing.T) {
	s, audio := newSession(t, room("one", farCorner), room("two", farCorner))
	var in components.InputData

	p, _ := s.Manager().Player()
	s.Manager().TakeDamage(p, 100)
	NextFrame(&in)
	s.Step(&in)
	require.Equal(t, config.StateWaiting, s.State())
	assert.False(t, s.Won())

	frames := runUntilPlaying(t, s, &in)
	assert.InDelta(t, config.Game.WaitDuration*60, frames, 2)
	assert.Equal(t, 0, s.LevelIndex())
	_, ok := s.Manager().Player()
	assert.True(t, ok)
	assert.Equal(t, 2, countSound(audio, config.SoundStart))
}

func TestWinAdvancesAndWraps(t *testing.T) {
	s, _ := newSession(t, room("one", farCorner), room("two", farCorner))
	var in components.InputData

	for round, want := range []int{1, 0} {
		for _, id := range s.Manager().Entities() {
			if e := s.Manager().Entry(id); e != nil && components.Object.Get(e).Kind == components.KindZombie {
				s.Manager().TakeDamage(e, 100)
			}
		}
		NextFrame(&in)
		s.Step(&in)
		require.Equal(t, config.StateWaiting, s.State(), "round %d", round)
		assert.True(t, s.Won())

		runUntilPlaying(t, s, &in)
		assert.Equal(t, want, s.LevelIndex(), "round %d", round)
	}
}

func TestRestartAction(t *testing.T) {
	s, _ := newSession(t, room("one", farCorner))
	var in components.InputData

	for i := 0; i < 10; i++ {
		NextFrame(&in, config.ActionMoveDown)
		s.Step(&in)
	}
	NextFrame(&in, config.ActionRestart)
	s.Step(&in)

	p, _ := s.Manager().Player()
	assert.InDelta(t, 240, components.Object.Get(p).Pos.Y, 1e-9)
	assert.Equal(t, config.StatePlaying, s.State())
}

func TestFPSToggle(t *testing.T) {
	s, _ := newSession(t, room("one", farCorner))
	var in components.InputData

	var c textCanvas
	s.Draw(&c)
	assert.Empty(t, c.texts)
	assert.Positive(t, c.sprites)

	NextFrame(&in, config.ActionToggleFPS)
	s.Step(&in)
	c = textCanvas{}
	s.Draw(&c)
	assert.Equal(t, []string{"FPS 60"}, c.texts)
}

func TestShowFPSOption(t *testing.T) {
	s, err := NewSession(Options{Levels: []*leveldata.LevelData{room("one", farCorner)}, ShowFPS: true, FPS: func() float64 { return 59.6 }})
	require.NoError(t, err)

	var c textCanvas
	s.Draw(&c)
	assert.Equal(t, []string{"FPS 60"}, c.texts)
}

func runUntilPlaying(t *testing.T, s *Session, in *components.InputData) int {
	t.Helper()
	limit := int(config.Game.WaitDuration*60) + 10
	for i := 1; i <= limit; i++ {
		NextFrame(in)
		s.Step(in)
		if s.State() == config.StatePlaying {
			return i
		}
	}
	t.Fatalf("still %s after %d frames", s.State(), limit)
	return 0
}

func countSound(a *recordingAudio, id config.SoundID) int {
	n := 0
	for _, p := range a.played {
		if p == id {
			n++
		}
	}
	return n
}
