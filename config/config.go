// Package config resolves runtime settings from defaults, an optional dotenv
// file and COINGAME_* environment variables
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"github.com/DoumaAbi/Doumas-Coin-Game/constant"
)

// DefaultEnvFile is loaded when no -env flag is given
const DefaultEnvFile = ".env"

// Config holds the resolved runtime settings
type Config struct {
	CanvasWidth  int
	CanvasHeight int

	StepRate     int // Hz
	CooldownRate int // Hz
	CosmeticRate int // Hz
	FrameRate    int // Hz

	Seed  int64 // 0 = time-seeded
	Debug bool

	AudioEnabled bool
	MasterVolume float64 // 0.0-1.0
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		CanvasWidth:  constant.DefaultCanvasWidth,
		CanvasHeight: constant.DefaultCanvasHeight,
		StepRate:     constant.StepRate,
		CooldownRate: int(time.Second / constant.CooldownTickInterval),
		CosmeticRate: 60,
		FrameRate:    60,
		AudioEnabled: true,
		MasterVolume: 0.5,
	}
}

// Load applies envFile (ignored when missing) and the environment over the defaults
// Variables already set in the environment win over the file
func Load(envFile string) (Config, error) {
	cfg := Default()

	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				return cfg, errors.Wrapf(err, "config: load %s", envFile)
			}
		} else if !os.IsNotExist(err) {
			return cfg, errors.Wrapf(err, "config: stat %s", envFile)
		}
	}

	ints := []struct {
		key string
		dst *int
	}{
		{"COINGAME_CANVAS_WIDTH", &cfg.CanvasWidth},
		{"COINGAME_CANVAS_HEIGHT", &cfg.CanvasHeight},
		{"COINGAME_STEP_RATE", &cfg.StepRate},
		{"COINGAME_COOLDOWN_RATE", &cfg.CooldownRate},
		{"COINGAME_COSMETIC_RATE", &cfg.CosmeticRate},
		{"COINGAME_FRAME_RATE", &cfg.FrameRate},
	}
	for _, v := range ints {
		if err := positiveInt(v.key, v.dst); err != nil {
			return cfg, err
		}
	}

	if s, ok := lookup("COINGAME_SEED"); ok {
		seed, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return cfg, errors.Wrapf(err, "config: COINGAME_SEED=%q", s)
		}
		cfg.Seed = seed
	}

	if err := boolVar("COINGAME_DEBUG", &cfg.Debug); err != nil {
		return cfg, err
	}
	if err := boolVar("COINGAME_AUDIO_ENABLED", &cfg.AudioEnabled); err != nil {
		return cfg, err
	}

	// Master volume is given as 0-100
	if s, ok := lookup("COINGAME_MASTER_VOLUME"); ok {
		vol, err := strconv.Atoi(s)
		if err != nil {
			return cfg, errors.Wrapf(err, "config: COINGAME_MASTER_VOLUME=%q", s)
		}
		if vol < 0 || vol > 100 {
			return cfg, errors.Errorf("config: COINGAME_MASTER_VOLUME=%d outside 0-100", vol)
		}
		cfg.MasterVolume = float64(vol) / 100
	}

	return cfg, nil
}

// FrameInterval is the presentation frame period
func (c Config) FrameInterval() time.Duration {
	if c.FrameRate <= 0 {
		return constant.FrameUpdateInterval
	}
	return time.Second / time.Duration(c.FrameRate)
}

// lookup returns a non-empty environment value
func lookup(key string) (string, bool) {
	s, ok := os.LookupEnv(key)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

func positiveInt(key string, dst *int) error {
	s, ok := lookup(key)
	if !ok {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return errors.Wrapf(err, "config: %s=%q", key, s)
	}
	if v <= 0 {
		return errors.Errorf("config: %s=%d must be positive", key, v)
	}
	*dst = v
	return nil
}

func boolVar(key string, dst *bool) error {
	s, ok := lookup(key)
	if !ok {
		return nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return errors.Wrapf(err, "config: %s=%q", key, s)
	}
	*dst = v
	return nil
}
