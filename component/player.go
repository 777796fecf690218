package component

import (
	"github.com/DoumaAbi/Doumas-Coin-Game/constant"
	"github.com/DoumaAbi/Doumas-Coin-Game/vmath"
)

// Direction identifies one of the four movement inputs
type Direction uint8

const (
	DirUp Direction = iota
	DirLeft
	DirDown
	DirRight
	DirCount // Sentinel for array sizing
)

var directionNames = [DirCount]string{"up", "left", "down", "right"}

func (d Direction) String() string {
	if d >= DirCount {
		return "unknown"
	}
	return directionNames[d]
}

// Player holds the avatar pose and its held inputs
// Position is the top-left corner in canvas units
type Player struct {
	X, Y          float64
	Width, Height float64

	// Held direction inputs, indexed by Direction
	Held [DirCount]bool

	Appearance Appearance
}

// NewPlayer creates a player with its top-left corner at the canvas center
func NewPlayer(canvasW, canvasH float64) Player {
	return Player{
		X:          canvasW / 2,
		Y:          canvasH / 2,
		Width:      constant.PlayerWidth,
		Height:     constant.PlayerHeight,
		Appearance: NewAppearance(),
	}
}

// Bounds returns the player hitbox
func (p *Player) Bounds() vmath.RectF {
	return vmath.RectF{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}

// Center returns the hitbox midpoint, used as magnet and bomb anchor
func (p *Player) Center() vmath.Vec2F {
	return vmath.Vec2F{X: p.X + p.Width/2, Y: p.Y + p.Height/2}
}
