package vmath

import (
	"math"
	"testing"
)

func TestV2FDist(t *testing.T) {
	tests := []struct {
		name string
		a, b Vec2F
		want float64
	}{
		{"same point", Vec2F{3, 4}, Vec2F{3, 4}, 0},
		{"3-4-5", Vec2F{0, 0}, Vec2F{3, 4}, 5},
		{"negative", Vec2F{-1, -1}, Vec2F{2, 3}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := V2FDist(tt.a, tt.b); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("V2FDist(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestV2FLerp(t *testing.T) {
	a := Vec2F{0, 0}
	b := Vec2F{10, -20}

	if got := V2FLerp(a, b, 0.3); math.Abs(got.X-3) > 1e-9 || math.Abs(got.Y+6) > 1e-9 {
		t.Errorf("V2FLerp 0.3 = %v, want {3 -6}", got)
	}
	if got := V2FLerp(a, b, 1); got != b {
		t.Errorf("V2FLerp 1 = %v, want %v", got, b)
	}
}

func TestRectOverlaps(t *testing.T) {
	player := RectF{X: 100, Y: 100, W: 30, H: 40}

	tests := []struct {
		name string
		coin RectF
		want bool
	}{
		{"inside", RectF{110, 110, 20, 20}, true},
		{"partial left", RectF{81, 120, 20, 20}, true},
		{"touching left edge", RectF{80, 120, 20, 20}, false},
		{"touching bottom edge", RectF{100, 140, 20, 20}, false},
		{"far away", RectF{500, 500, 20, 20}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := player.Overlaps(tt.coin); got != tt.want {
				t.Errorf("Overlaps(%v) = %v, want %v", tt.coin, got, tt.want)
			}
			if got := tt.coin.Overlaps(player); got != tt.want {
				t.Errorf("Overlaps is not symmetric for %v", tt.coin)
			}
		})
	}
}

func TestClampF(t *testing.T) {
	if got := ClampF(-5, 0, 10); got != 0 {
		t.Errorf("ClampF(-5) = %v, want 0", got)
	}
	if got := ClampF(15, 0, 10); got != 10 {
		t.Errorf("ClampF(15) = %v, want 10", got)
	}
	if got := ClampF(7, 0, 10); got != 7 {
		t.Errorf("ClampF(7) = %v, want 7", got)
	}
	if got := ClampF(7, 5, 2); got != 5 {
		t.Errorf("ClampF with inverted bounds = %v, want 5", got)
	}
}

func TestWrapF(t *testing.T) {
	if got := WrapF(361, 360); got != 1 {
		t.Errorf("WrapF(361, 360) = %v, want 1", got)
	}
	if got := WrapF(-1, 360); got != 359 {
		t.Errorf("WrapF(-1, 360) = %v, want 359", got)
	}
	if got := WrapF(2*math.Pi+0.01, 2*math.Pi); math.Abs(got-0.01) > 1e-9 {
		t.Errorf("WrapF(2π+0.01) = %v, want 0.01", got)
	}
}
