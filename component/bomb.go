package component

import (
	"math"

	"github.com/DoumaAbi/Doumas-Coin-Game/constant"
)

// BombState is the ledger-adjacent bomb ownership and cooldown
type BombState struct {
	Owned    bool
	Cooldown float64 // Seconds remaining, 0 when ready
	Active   bool    // Explosion telegraph in progress
}

// Ready reports whether an activation would be accepted
func (b *BombState) Ready() bool {
	return b.Owned && b.Cooldown <= 0
}

// Progress returns the cooldown completion in [0, 1]
func (b *BombState) Progress() float64 {
	if b.Cooldown <= 0 {
		return 1
	}
	p := (constant.BombCooldown - b.Cooldown) / constant.BombCooldown
	if p < 0 {
		return 0
	}
	return p
}

// SecondsRemaining returns the cooldown rounded up for display
func (b *BombState) SecondsRemaining() int {
	if b.Cooldown <= 0 {
		return 0
	}
	return int(math.Ceil(b.Cooldown))
}

// Particle is a single explosion fragment
type Particle struct {
	X, Y   float64
	VX, VY float64
	Hue    float64 // Degrees in [0, 360)
	Size   float64 // [2, 6)
	Life   float64 // 1 → 0
}

// BombEffect is the explosion geometry while a detonation is pending
type BombEffect struct {
	Active    bool
	CenterX   float64
	CenterY   float64
	Radius    float64
	MaxRadius float64
	Particles []Particle
}

// Magnet holds the magnet upgrade level; radius derives from it
type Magnet struct {
	Level int
}

// MagnetRadius returns the attraction radius for a magnet level
func MagnetRadius(level int) float64 {
	switch {
	case level <= 0:
		return 0
	case level == 1:
		return constant.MagnetRadiusLevel1
	default:
		return constant.MagnetRadiusLevel2
	}
}

// Radius returns the attraction radius for the current level
func (m Magnet) Radius() float64 {
	return MagnetRadius(m.Level)
}
