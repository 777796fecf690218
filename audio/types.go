// Package audio synthesizes and plays the game's one-shot sound effects
package audio

import (
	"github.com/DoumaAbi/Doumas-Coin-Game/constant"
	"github.com/DoumaAbi/Doumas-Coin-Game/event"
)

// AudioConfig holds synthesis and playback settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0-1.0
	EffectVolumes map[event.SoundKind]float64
	SampleRate    int
}

// DefaultAudioConfig returns the built-in settings
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		EffectVolumes: map[event.SoundKind]float64{
			event.SoundCoin:  0.5,
			event.SoundBuy:   0.7,
			event.SoundClick: 0.4,
			event.SoundBomb:  0.9,
		},
		SampleRate: constant.AudioSampleRate,
	}
}

// volume returns the effective gain for a sound kind
func (c *AudioConfig) volume(kind event.SoundKind) float64 {
	return c.EffectVolumes[kind] * c.MasterVolume
}
