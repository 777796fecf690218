package engine

import (
	"math"

	"github.com/DoumaAbi/Doumas-Coin-Game/component"
	"github.com/DoumaAbi/Doumas-Coin-Game/constant"
	"github.com/DoumaAbi/Doumas-Coin-Game/ledger"
	"github.com/DoumaAbi/Doumas-Coin-Game/vmath"
)

const (
	rainbowHueStep      = 3.0
	darkMatterPhaseStep = 0.05
)

// cosmeticTick advances animation counters; it never touches gameplay state
func (g *Game) cosmeticTick() {
	g.CosmeticTicks++
	w := g.World

	look := &w.Player.Appearance
	if look.Color == component.ColorRainbow && g.Ledger.Owned(ledger.TrackRainbow) {
		look.RainbowHue = vmath.WrapF(look.RainbowHue+rainbowHueStep, 360)
	}
	if look.Color == component.ColorDarkMatter && g.Ledger.Owned(ledger.TrackDarkMatter) {
		look.DarkMatterPhase = vmath.WrapF(look.DarkMatterPhase+darkMatterPhaseStep, 2*math.Pi)
	}

	for i := range w.Coins {
		c := &w.Coins[i]
		c.Rotation += constant.CoinRotationStep
		c.FloatPhase += constant.CoinFloatStep
		c.Scale = 1 + math.Sin(c.FloatPhase)*constant.CoinFloatAmplitude
	}

	alive := w.FX[:0]
	for _, fx := range w.FX {
		fx.Life -= constant.CollectFXDecay
		fx.Scale -= constant.CollectFXDecay
		if fx.Life > 0 {
			alive = append(alive, fx)
		}
	}
	w.FX = alive
}
