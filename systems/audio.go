package systems

import (
	"sync"

	"github.com/automoto/doomerang-siege/archetypes"
	"github.com/automoto/doomerang-siege/assets"
	"github.com/automoto/doomerang-siege/components"
	cfg "github.com/automoto/doomerang-siege/config"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalSFXVolume    float64 = cfg.Audio.DefaultSFXVol
	globalMuted        bool
	activeSFX                  = map[cfg.SoundID][]*audio.Player{}
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext)
	})
}

// PreloadAllSFX decodes all sound effects at startup to avoid lag on first play.
func PreloadAllSFX(logger *log.Logger) {
	initGlobalAudio()

	paths := make([]string, 0, len(cfg.Sound.SFXPaths))
	for _, p := range cfg.Sound.SFXPaths {
		paths = append(paths, p)
	}
	if err := globalAudioLoader.PreloadSFX(paths...); err != nil {
		logger.Warn("could not preload sound effects", "error", err)
	}
}

// SFXQueue is the simulation's audio sink. Cues are queued on the world's
// audio singleton and flushed once per frame by UpdateAudio.
type SFXQueue struct {
	world donburi.World
}

func NewSFXQueue(w donburi.World) *SFXQueue {
	return &SFXQueue{world: w}
}

func (q *SFXQueue) Play(id cfg.SoundID) {
	a := GetOrCreateAudio(q.world)
	a.PendingSFX = append(a.PendingSFX, id)
}

func (q *SFXQueue) Stop(id cfg.SoundID) {
	a := GetOrCreateAudio(q.world)
	a.StopSFX = append(a.StopSFX, id)
}

// UpdateAudio stops and plays the cues queued this frame. Repeats of a cue
// within one frame play once.
func UpdateAudio(e *ecs.ECS) {
	initGlobalAudio()
	pruneFinished()

	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	stops, plays := components.Audio.Get(entry).Drain()
	for _, id := range stops {
		stopSFX(id)
	}
	for _, id := range plays {
		playSFX(id)
	}
}

func playSFX(soundID cfg.SoundID) {
	if globalMuted || globalSFXVolume <= 0 {
		return
	}

	path, ok := cfg.Sound.SFXPaths[soundID]
	if !ok {
		return
	}

	player, err := globalAudioLoader.LoadSFX(path)
	if err != nil {
		return
	}

	volume := globalSFXVolume
	if mult, ok := cfg.Sound.VolumeMultipliers[soundID]; ok {
		volume *= mult
	}

	player.SetVolume(volume)
	player.Play()
	activeSFX[soundID] = append(activeSFX[soundID], player)
}

func stopSFX(soundID cfg.SoundID) {
	for _, p := range activeSFX[soundID] {
		_ = p.Close()
	}
	delete(activeSFX, soundID)
}

// pruneFinished releases players whose sound has ended.
func pruneFinished() {
	for id, players := range activeSFX {
		live := players[:0]
		for _, p := range players {
			if p.IsPlaying() {
				live = append(live, p)
				continue
			}
			_ = p.Close()
		}
		if len(live) == 0 {
			delete(activeSFX, id)
			continue
		}
		activeSFX[id] = live
	}
}

// StopAllSFX silences every playing cue, used when the window pauses.
func StopAllSFX() {
	for id := range activeSFX {
		stopSFX(id)
	}
}

// SetSFXVolume changes the SFX volume (0.0 - 1.0)
func SetSFXVolume(volume float64) {
	globalSFXVolume = volume
}

// SetMuted silences or restores sound effects without touching the volume.
func SetMuted(muted bool) {
	globalMuted = muted
	if muted {
		StopAllSFX()
	}
}

// IsMuted reports whether sound effects are silenced.
func IsMuted() bool {
	return globalMuted
}

// GetSFXVolume returns the current SFX volume (0.0 - 1.0)
func GetSFXVolume() float64 {
	return globalSFXVolume
}

// GetOrCreateAudio returns the singleton Audio component for this world, creating it if needed
func GetOrCreateAudio(w donburi.World) *components.AudioData {
	entry, ok := components.Audio.First(w)
	if !ok {
		entry = archetypes.Audio.Spawn(w)
		components.Audio.SetValue(entry, components.AudioData{
			SFXVolume:  globalSFXVolume,
			PendingSFX: make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}
