package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundStart
	SoundBoom
	SoundClang
	SoundGrunt
	SoundGun
	SoundRicochet
	SoundCount
)

func (s SoundID) String() string {
	switch s {
	case SoundStart:
		return "start"
	case SoundBoom:
		return "boom"
	case SoundClang:
		return "clang"
	case SoundGrunt:
		return "grunt"
	case SoundGun:
		return "gun"
	case SoundRicochet:
		return "ricochet"
	}
	return "none"
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int     `yaml:"sample_rate"`
	DefaultSFXVol float64 `yaml:"sfx_volume"`
}

// SoundConfig maps sound IDs to file paths
type SoundConfig struct {
	SFXPaths          map[SoundID]string
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 1.0,
	}

	Sound = SoundConfig{
		SFXPaths: map[SoundID]string{
			SoundStart:    "audio/sfx/start.wav",
			SoundBoom:     "audio/sfx/boom.wav",
			SoundClang:    "audio/sfx/clang.wav",
			SoundGrunt:    "audio/sfx/grunt.wav",
			SoundGun:      "audio/sfx/gun.wav",
			SoundRicochet: "audio/sfx/ricochet.wav",
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundGun:  0.6,
			SoundBoom: 1.2,
		},
	}
}
