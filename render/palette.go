package render

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/DoumaAbi/Doumas-Coin-Game/component"
)

// Theme colors
var (
	RgbBackground  = RGB{26, 27, 38} // Tokyo Night background
	RgbBorder      = RGB{86, 95, 137}
	RgbHudText     = RGB{192, 202, 245}
	RgbHudDim      = RGB{120, 124, 153}
	RgbCoinGold    = RGB{255, 215, 0}
	RgbCoinShade   = RGB{218, 165, 32}
	RgbMagnetRing  = RGB{100, 150, 255}
	RgbShockwave   = RGB{255, 140, 0}
	RgbBannerText  = RGB{255, 235, 59}
	RgbBannerBack  = RGB{60, 40, 0}
	RgbReady       = RGB{76, 175, 80}
	RgbCooldown    = RGB{244, 67, 54}
	RgbLocked      = RGB{90, 90, 90}
	RgbPanelCursor = RGB{255, 255, 255}
)

// BodyRGB resolves the rendered body color, including the animated special colors
func BodyRGB(look *component.Appearance) RGB {
	switch look.Color {
	case component.ColorRainbow:
		return RainbowRGB(look.RainbowHue)
	case component.ColorDarkMatter:
		return DarkMatterRGB(look.DarkMatterPhase)
	default:
		return RGBFromHex(look.Color.Hex())
	}
}

// RainbowRGB is the fully saturated mid-lightness color at hue degrees
func RainbowRGB(hue float64) RGB {
	return RGBFromColorful(colorful.Hsl(hue, 1, 0.5))
}

// DarkMatterRGB cycles three phase-shifted sines in the dark purple range
func DarkMatterRGB(phase float64) RGB {
	return RGB{
		R: uint8(math.Sin(phase)*50 + 50),
		G: uint8(math.Sin(phase+2)*30 + 30),
		B: uint8(math.Sin(phase+4)*70 + 70),
	}
}

// ParticleRGB is the explosion particle color at hue, dimmed toward the background as life runs out
func ParticleRGB(hue, life float64) RGB {
	return RgbBackground.Blend(RainbowRGB(hue), life)
}

// FadeRGB fades c toward the background in perceptual space
func FadeRGB(c RGB, life float64) RGB {
	life = math.Max(0, math.Min(1, life))
	return RGBFromColorful(RgbBackground.Colorful().BlendLab(c.Colorful(), life))
}
