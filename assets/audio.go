package assets

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

//go:embed all:audio
var audioFS embed.FS

// AudioLoader handles loading and caching of audio assets
type AudioLoader struct {
	sfxCache map[string][]byte // Cache decoded audio bytes for SFX
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[string][]byte),
		context:  ctx,
	}
}

// PreloadSFX decodes every path up front so the first play does not stall.
// All failures are reported together.
func (l *AudioLoader) PreloadSFX(paths ...string) error {
	var errs []error
	for _, p := range paths {
		if _, err := l.decoded(p); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// LoadSFX returns a new player over the cached decoded bytes.
func (l *AudioLoader) LoadSFX(p string) (*audio.Player, error) {
	data, err := l.decoded(p)
	if err != nil {
		return nil, err
	}
	return l.context.NewPlayer(bytes.NewReader(data))
}

func (l *AudioLoader) decoded(p string) ([]byte, error) {
	if cached, ok := l.sfxCache[p]; ok {
		return cached, nil
	}

	if ext := strings.ToLower(path.Ext(p)); ext != ".wav" {
		return nil, fmt.Errorf("unsupported audio format: %s", ext)
	}

	data, err := audioFS.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file %s: %w", p, err)
	}
	stream, err := wav.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode wav %s: %w", p, err)
	}
	decoded, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read decoded audio %s: %w", p, err)
	}

	l.sfxCache[p] = decoded
	return decoded, nil
}
