package components

import (
	cfg "github.com/automoto/doomerang-siege/config"
	"github.com/yohamta/donburi"
)

// AudioData stores the per-frame sound queue (singleton component)
type AudioData struct {
	SFXVolume  float64 // 0.0 - 1.0
	PendingSFX []cfg.SoundID
	StopSFX    []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()

// Drain empties the queues. Each cue is returned once however often it was
// queued this frame, in first-queued order. A cue that is both stopped and
// played in the same frame is stopped first and then played.
func (a *AudioData) Drain() (stops, plays []cfg.SoundID) {
	stops = uniqueSounds(a.StopSFX)
	plays = uniqueSounds(a.PendingSFX)
	a.StopSFX = a.StopSFX[:0]
	a.PendingSFX = a.PendingSFX[:0]
	return stops, plays
}

func uniqueSounds(ids []cfg.SoundID) []cfg.SoundID {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[cfg.SoundID]bool, len(ids))
	out := make([]cfg.SoundID, 0, len(ids))
	for _, id := range ids {
		if id == cfg.SoundNone || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
