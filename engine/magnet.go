package engine

import (
	"github.com/DoumaAbi/Doumas-Coin-Game/component"
	"github.com/DoumaAbi/Doumas-Coin-Game/constant"
	"github.com/DoumaAbi/Doumas-Coin-Game/vmath"
)

// MagnetSystem pulls uncollected coins inside the magnet radius toward the player center
// Pull per step is offset * gain * (1 - dist/radius), no velocity is kept
type MagnetSystem struct{}

func NewMagnetSystem() *MagnetSystem {
	return &MagnetSystem{}
}

func (s *MagnetSystem) Priority() int {
	return 20
}

func (s *MagnetSystem) Update(g *Game) {
	radius := component.MagnetRadius(g.Ledger.MagnetLevel())
	if radius <= 0 {
		return
	}

	w := g.World
	center := w.Player.Center()
	for i := range w.Coins {
		c := &w.Coins[i]
		if c.Collected {
			continue
		}
		pullCoin(c, center, radius)
	}
}

// pullCoin applies one step of attraction toward center; coins at or beyond radius are untouched
func pullCoin(c *component.Coin, center vmath.Vec2F, radius float64) {
	offset := vmath.V2FSub(center, c.Center())
	dist := vmath.V2FMag(offset)
	if dist >= radius {
		return
	}

	strength := 1 - dist/radius
	c.X += offset.X * constant.MagnetGain * strength
	c.Y += offset.Y * constant.MagnetGain * strength
}
