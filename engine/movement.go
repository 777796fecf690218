package engine

import (
	"github.com/DoumaAbi/Doumas-Coin-Game/component"
	"github.com/DoumaAbi/Doumas-Coin-Game/constant"
	"github.com/DoumaAbi/Doumas-Coin-Game/event"
	"github.com/DoumaAbi/Doumas-Coin-Game/vmath"
)

// MovementSystem eases the player toward a target derived from held directions
type MovementSystem struct{}

func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

func (s *MovementSystem) Priority() int {
	return 10
}

func (s *MovementSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventDirection}
}

// HandleEvent records held state; movement itself happens in Update
func (s *MovementSystem) HandleEvent(g *Game, ev event.GameEvent) {
	p, ok := ev.Payload.(*event.DirectionPayload)
	if !ok || p.Dir >= component.DirCount {
		return
	}
	g.World.Player.Held[p.Dir] = p.Pressed
}

func (s *MovementSystem) Update(g *Game) {
	w := g.World
	p := &w.Player

	speed := constant.PlayerBaseSpeed * g.Ledger.SpeedMultiplier()
	maxX := w.Width - p.Width
	maxY := w.Height - p.Height

	targetX, targetY := p.X, p.Y
	if p.Held[component.DirUp] && p.Y > 0 {
		targetY -= speed
	}
	if p.Held[component.DirDown] && p.Y < maxY {
		targetY += speed
	}
	if p.Held[component.DirLeft] && p.X > 0 {
		targetX -= speed
	}
	if p.Held[component.DirRight] && p.X < maxX {
		targetX += speed
	}

	// Target clamped to the canvas, so smoothing can never carry the player outside
	targetX = vmath.ClampF(targetX, 0, maxX)
	targetY = vmath.ClampF(targetY, 0, maxY)

	p.X += (targetX - p.X) * constant.PlayerSmoothing
	p.Y += (targetY - p.Y) * constant.PlayerSmoothing
}
