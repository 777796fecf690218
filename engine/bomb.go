package engine

import (
	"log"
	"math"
	"time"

	"github.com/DoumaAbi/Doumas-Coin-Game/constant"
	"github.com/DoumaAbi/Doumas-Coin-Game/event"
	"github.com/DoumaAbi/Doumas-Coin-Game/vmath"
)

// BombDetonationDelay is the time between activation and the collection pulse
const BombDetonationDelay = 800 * time.Millisecond

// bombTaskName is the scheduler name of the pending detonation
const bombTaskName = "bomb-detonate"

// detonation is the activation snapshot carried by the delayed collection task
type detonation struct {
	center vmath.Vec2F
	radius float64
}

// BombSystem handles activation, animates the explosion each step and
// owns the cooldown tick
type BombSystem struct{}

func NewBombSystem() *BombSystem {
	return &BombSystem{}
}

func (s *BombSystem) Priority() int {
	return 30
}

func (s *BombSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventActivateBomb}
}

func (s *BombSystem) HandleEvent(g *Game, ev event.GameEvent) {
	g.activateBomb()
}

// Update grows the ring and integrates particles while an explosion is showing
func (s *BombSystem) Update(g *Game) {
	fx := &g.World.BombFX
	if !fx.Active {
		return
	}

	fx.Radius = math.Min(fx.Radius+constant.BombRadiusStep, fx.MaxRadius)

	alive := fx.Particles[:0]
	for _, p := range fx.Particles {
		p.X += p.VX
		p.Y += p.VY
		p.VY += constant.BombGravity
		p.Life -= constant.BombParticleDecay
		if p.Life > 0 {
			alive = append(alive, p)
		}
	}
	fx.Particles = alive
}

// activateBomb starts an explosion if the bomb is owned and off cooldown
// The collection pulse is scheduled as a one-shot task on the same scheduler
func (g *Game) activateBomb() {
	w := g.World
	if !g.Ledger.BombOwned() || w.Bomb.Cooldown > 0 {
		return
	}

	center := w.Player.Center()

	w.Bomb.Cooldown = constant.BombCooldown
	w.Bomb.Active = true
	w.BombFX.Active = true
	w.BombFX.CenterX = center.X
	w.BombFX.CenterY = center.Y
	w.BombFX.Radius = 0
	w.BombFX.MaxRadius = constant.BombMaxRadius
	w.SpawnBombParticles(center.X, center.Y, constant.BombParticleCount)

	g.emitSound(event.SoundBomb)

	d := detonation{center: center, radius: constant.BombMaxRadius}
	g.Scheduler.After(bombTaskName, BombDetonationDelay, func() {
		g.detonate(d)
	})
	log.Printf("game: bomb activated at (%.1f, %.1f)", center.X, center.Y)
}

// detonate collects every uncollected coin strictly inside the snapshot radius in one batch
func (g *Game) detonate(d detonation) {
	w := g.World

	collected := 0
	for i := range w.Coins {
		c := &w.Coins[i]
		if c.Collected {
			continue
		}
		if vmath.V2FDist(d.center, c.Center()) < d.radius {
			g.collectCoin(c)
			collected++
		}
	}

	if collected > 0 {
		g.emitSound(event.SoundCoin)
	}
	g.regenerateIfCleared()

	w.Bomb.Active = false
	w.BombFX.Active = false
	w.BombFX.Particles = nil
	log.Printf("game: bomb detonated, %d coins collected", collected)
}

// cooldownTick decays the bomb cooldown at the low-rate cadence
func (g *Game) cooldownTick() {
	g.CooldownTicks++

	b := &g.World.Bomb
	if b.Cooldown <= 0 {
		return
	}
	b.Cooldown -= constant.BombCooldownStep
	// Snap float residue so 450 ticks land exactly on zero
	if b.Cooldown < 1e-9 {
		b.Cooldown = 0
	}
}
