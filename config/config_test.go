package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

var envKeys = []string{
	"COINGAME_CANVAS_WIDTH",
	"COINGAME_CANVAS_HEIGHT",
	"COINGAME_STEP_RATE",
	"COINGAME_COOLDOWN_RATE",
	"COINGAME_COSMETIC_RATE",
	"COINGAME_FRAME_RATE",
	"COINGAME_SEED",
	"COINGAME_DEBUG",
	"COINGAME_AUDIO_ENABLED",
	"COINGAME_MASTER_VOLUME",
}

// clearEnv unsets every config variable for the test; t.Setenv restores them afterwards
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("Load with missing file: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load() = %+v, want defaults %+v", cfg, Default())
	}
	if cfg.CanvasWidth != 800 || cfg.CanvasHeight != 600 {
		t.Errorf("canvas = %dx%d, want 800x600", cfg.CanvasWidth, cfg.CanvasHeight)
	}
	if cfg.StepRate != 120 || cfg.CooldownRate != 10 || cfg.CosmeticRate != 60 {
		t.Errorf("rates = %d/%d/%d, want 120/10/60", cfg.StepRate, cfg.CooldownRate, cfg.CosmeticRate)
	}
}

func TestLoadEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("COINGAME_CANVAS_WIDTH", "1024")
	t.Setenv("COINGAME_STEP_RATE", "60")
	t.Setenv("COINGAME_SEED", "-7")
	t.Setenv("COINGAME_DEBUG", "true")
	t.Setenv("COINGAME_AUDIO_ENABLED", "false")
	t.Setenv("COINGAME_MASTER_VOLUME", "25")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.CanvasWidth != 1024 {
		t.Errorf("CanvasWidth = %d, want 1024", cfg.CanvasWidth)
	}
	if cfg.StepRate != 60 {
		t.Errorf("StepRate = %d, want 60", cfg.StepRate)
	}
	if cfg.Seed != -7 {
		t.Errorf("Seed = %d, want -7", cfg.Seed)
	}
	if !cfg.Debug || cfg.AudioEnabled {
		t.Errorf("Debug = %v, AudioEnabled = %v", cfg.Debug, cfg.AudioEnabled)
	}
	if cfg.MasterVolume != 0.25 {
		t.Errorf("MasterVolume = %v, want 0.25", cfg.MasterVolume)
	}
}

func TestLoadDotenvFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "game.env")
	content := "COINGAME_CANVAS_HEIGHT=480\nCOINGAME_FRAME_RATE=30\nCOINGAME_CANVAS_WIDTH=640\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	// Environment wins over the file
	t.Setenv("COINGAME_CANVAS_WIDTH", "900")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.CanvasHeight != 480 {
		t.Errorf("CanvasHeight = %d, want 480 from file", cfg.CanvasHeight)
	}
	if cfg.FrameRate != 30 {
		t.Errorf("FrameRate = %d, want 30 from file", cfg.FrameRate)
	}
	if cfg.CanvasWidth != 900 {
		t.Errorf("CanvasWidth = %d, want 900 from environment", cfg.CanvasWidth)
	}
}

func TestLoadErrorsNameTheVariable(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"COINGAME_CANVAS_WIDTH", "wide"},
		{"COINGAME_STEP_RATE", "0"},
		{"COINGAME_FRAME_RATE", "-30"},
		{"COINGAME_SEED", "1.5"},
		{"COINGAME_DEBUG", "maybe"},
		{"COINGAME_MASTER_VOLUME", "150"},
		{"COINGAME_MASTER_VOLUME", "loud"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load("")
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.key) {
				t.Errorf("error %q does not name %s", err, tt.key)
			}
		})
	}
}

func TestFrameInterval(t *testing.T) {
	cfg := Default()
	if got := cfg.FrameInterval(); got != time.Second/60 {
		t.Errorf("FrameInterval() = %v, want %v", got, time.Second/60)
	}

	cfg.FrameRate = 0
	if got := cfg.FrameInterval(); got <= 0 {
		t.Errorf("FrameInterval() = %v for zero rate", got)
	}
}
