package audio

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/DoumaAbi/Doumas-Coin-Game/event"
)

// LoadAudioConfig loads per-effect volumes and the sample rate from environment variables
// Enabled and MasterVolume come from the application config
func LoadAudioConfig() *AudioConfig {
	cfg := DefaultAudioConfig()

	// Load effect volumes from JSON, keyed by sound name
	if effectVols := os.Getenv("COINGAME_SFX_VOLUMES"); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			for kind := event.SoundKind(0); kind < event.SoundKindCount; kind++ {
				if v, ok := volumes[kind.String()]; ok {
					cfg.EffectVolumes[kind] = clampVolume(v)
				}
			}
		}
	}

	// Load sample rate
	if sampleRate := os.Getenv("COINGAME_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
