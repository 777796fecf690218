package audio

import (
	"testing"

	"github.com/DoumaAbi/Doumas-Coin-Game/event"
)

func TestDefaultAudioConfig(t *testing.T) {
	cfg := DefaultAudioConfig()

	if !cfg.Enabled {
		t.Error("Expected default config to have Enabled=true")
	}
	if cfg.MasterVolume != 0.5 {
		t.Errorf("Expected default master volume 0.5, got %f", cfg.MasterVolume)
	}
	if cfg.SampleRate != 44100 {
		t.Errorf("Expected default sample rate 44100, got %d", cfg.SampleRate)
	}
	for kind := event.SoundKind(0); kind < event.SoundKindCount; kind++ {
		if _, ok := cfg.EffectVolumes[kind]; !ok {
			t.Errorf("Expected volume for %v to be set", kind)
		}
	}
}

func TestLoadAudioConfigDefaults(t *testing.T) {
	t.Setenv("COINGAME_SFX_VOLUMES", "")
	t.Setenv("COINGAME_SAMPLE_RATE", "")

	cfg := LoadAudioConfig()
	def := DefaultAudioConfig()

	if cfg.SampleRate != def.SampleRate {
		t.Errorf("SampleRate = %d, want %d", cfg.SampleRate, def.SampleRate)
	}
	for kind, v := range def.EffectVolumes {
		if cfg.EffectVolumes[kind] != v {
			t.Errorf("volume %v = %f, want %f", kind, cfg.EffectVolumes[kind], v)
		}
	}
}

func TestLoadAudioConfigEffectVolumes(t *testing.T) {
	t.Setenv("COINGAME_SFX_VOLUMES", `{"coin":0.2,"bomb":3,"click":-1,"unknown":0.9}`)

	cfg := LoadAudioConfig()

	if v := cfg.EffectVolumes[event.SoundCoin]; v != 0.2 {
		t.Errorf("coin volume = %f, want 0.2", v)
	}
	if v := cfg.EffectVolumes[event.SoundBomb]; v != 1 {
		t.Errorf("bomb volume = %f, want clamped 1", v)
	}
	if v := cfg.EffectVolumes[event.SoundClick]; v != 0 {
		t.Errorf("click volume = %f, want clamped 0", v)
	}
	if v := cfg.EffectVolumes[event.SoundBuy]; v != DefaultAudioConfig().EffectVolumes[event.SoundBuy] {
		t.Errorf("buy volume = %f, want default", v)
	}
}

func TestLoadAudioConfigInvalidValuesIgnored(t *testing.T) {
	t.Setenv("COINGAME_SFX_VOLUMES", "{not json")
	t.Setenv("COINGAME_SAMPLE_RATE", "-5")

	cfg := LoadAudioConfig()

	if cfg.SampleRate != 44100 {
		t.Errorf("SampleRate = %d, want default after invalid value", cfg.SampleRate)
	}
	if cfg.EffectVolumes[event.SoundCoin] != 0.5 {
		t.Errorf("coin volume = %f after invalid JSON", cfg.EffectVolumes[event.SoundCoin])
	}
}

func TestLoadAudioConfigSampleRate(t *testing.T) {
	t.Setenv("COINGAME_SAMPLE_RATE", "48000")

	if cfg := LoadAudioConfig(); cfg.SampleRate != 48000 {
		t.Errorf("SampleRate = %d, want 48000", cfg.SampleRate)
	}
}
