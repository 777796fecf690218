package render

import (
	"testing"

	"github.com/DoumaAbi/Doumas-Coin-Game/component"
)

func closeRGB(a, b RGB) bool {
	d := func(x, y uint8) int {
		if x > y {
			return int(x - y)
		}
		return int(y - x)
	}
	return d(a.R, b.R) <= 1 && d(a.G, b.G) <= 1 && d(a.B, b.B) <= 1
}

func TestRainbowRGB(t *testing.T) {
	tests := []struct {
		hue  float64
		want RGB
	}{
		{0, RGB{255, 0, 0}},
		{120, RGB{0, 255, 0}},
		{240, RGB{0, 0, 255}},
	}
	for _, tt := range tests {
		if got := RainbowRGB(tt.hue); got != tt.want {
			t.Errorf("RainbowRGB(%v) = %v, want %v", tt.hue, got, tt.want)
		}
	}
}

func TestDarkMatterRGB(t *testing.T) {
	// sin(0)=0, sin(2)≈0.909, sin(4)≈-0.757
	got := DarkMatterRGB(0)
	want := RGB{50, 57, 17}
	if got != want {
		t.Errorf("DarkMatterRGB(0) = %v, want %v", got, want)
	}

	for phase := 0.0; phase < 7; phase += 0.1 {
		c := DarkMatterRGB(phase)
		if c.R > 100 || c.G > 60 || c.B > 140 {
			t.Fatalf("DarkMatterRGB(%v) = %v out of range", phase, c)
		}
	}
}

func TestBodyRGB(t *testing.T) {
	look := component.NewAppearance()
	if got := BodyRGB(&look); got != RGBFromHex(component.ColorGreen.Hex()) {
		t.Errorf("Default body = %v, want green", got)
	}

	look.Color = component.ColorRainbow
	look.RainbowHue = 0
	if got := BodyRGB(&look); got != (RGB{255, 0, 0}) {
		t.Errorf("Rainbow body at hue 0 = %v, want red", got)
	}

	look.Color = component.ColorDarkMatter
	look.DarkMatterPhase = 1.5
	if got := BodyRGB(&look); got != DarkMatterRGB(1.5) {
		t.Errorf("Dark matter body = %v, want %v", got, DarkMatterRGB(1.5))
	}
}

func TestFadeRGB(t *testing.T) {
	if got := FadeRGB(RgbCoinGold, 1); !closeRGB(got, RgbCoinGold) {
		t.Errorf("Full life should keep the color, got %v", got)
	}
	if got := FadeRGB(RgbCoinGold, 0); !closeRGB(got, RgbBackground) {
		t.Errorf("Zero life should reach the background, got %v", got)
	}
	if got := FadeRGB(RgbCoinGold, -3); !closeRGB(got, RgbBackground) {
		t.Errorf("Negative life should clamp, got %v", got)
	}
}

func TestRGBBlend(t *testing.T) {
	if got := RGBBlack.Blend(RGBWhite, 0.5); got != (RGB{127, 127, 127}) {
		t.Errorf("Half blend = %v", got)
	}
	if got := RGBBlack.Blend(RGBWhite, 2); got != RGBWhite {
		t.Errorf("Over-alpha should return src, got %v", got)
	}
	if got := (RGB{200, 10, 0}).Add(RGB{100, 10, 0}); got != (RGB{255, 20, 0}) {
		t.Errorf("Add should clamp, got %v", got)
	}
}

func TestUIStateCursor(t *testing.T) {
	ui := NewUIState()
	if ui.AccessoryCursor() != component.AccessoryHat {
		t.Fatalf("Cursor should start on the first real accessory")
	}
	for i := 0; i < int(component.AccessoryCount)-2; i++ {
		ui.MoveAccessoryCursor()
	}
	if ui.AccessoryCursor() != component.AccessoryShield {
		t.Fatalf("Cursor = %v, want shield", ui.AccessoryCursor())
	}
	if got := ui.MoveAccessoryCursor(); got != component.AccessoryHat {
		t.Errorf("Cursor should wrap past none, got %v", got)
	}

	if ui.Panel() != PanelShop || ui.NextPanel() != PanelEditor || ui.NextPanel() != PanelShop {
		t.Error("Panel should cycle shop, editor, shop")
	}
}
