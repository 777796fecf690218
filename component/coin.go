package component

import (
	"github.com/DoumaAbi/Doumas-Coin-Game/constant"
	"github.com/DoumaAbi/Doumas-Coin-Game/vmath"
)

// Coin is a collectible; Collected is terminal for the coin's lifetime
type Coin struct {
	X, Y      float64
	Size      float64
	Collected bool

	// Visual animation state, advanced by the cosmetic tick only
	Rotation   float64
	FloatPhase float64
	Scale      float64
}

// Bounds returns the coin hitbox
func (c *Coin) Bounds() vmath.RectF {
	return vmath.RectF{X: c.X, Y: c.Y, W: c.Size, H: c.Size}
}

// Center returns the hitbox midpoint
func (c *Coin) Center() vmath.Vec2F {
	return vmath.Vec2F{X: c.X + c.Size/2, Y: c.Y + c.Size/2}
}

// CollectFX animates a collected coin toward the currency readout
// Gameplay-inert; removed once Life reaches 0
type CollectFX struct {
	X, Y             float64 // Origin, the coin's last position
	TargetX, TargetY float64
	Life             float64 // 1 → 0
	Scale            float64
}

// NewCollectFX creates an effect anchored at the coin position
func NewCollectFX(x, y float64) CollectFX {
	return CollectFX{
		X:       x,
		Y:       y,
		TargetX: constant.CollectFXTargetX,
		TargetY: constant.CollectFXTargetY,
		Life:    1,
		Scale:   1,
	}
}

// Position returns the eased point between origin and target
func (fx *CollectFX) Position() vmath.Vec2F {
	progress := 1 - fx.Life
	return vmath.V2FLerp(vmath.Vec2F{X: fx.X, Y: fx.Y}, vmath.Vec2F{X: fx.TargetX, Y: fx.TargetY}, progress)
}
