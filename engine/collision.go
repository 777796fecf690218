package engine

import (
	"log"

	"github.com/DoumaAbi/Doumas-Coin-Game/component"
	"github.com/DoumaAbi/Doumas-Coin-Game/event"
)

// CollisionSystem collects coins overlapping the player hitbox
type CollisionSystem struct{}

func NewCollisionSystem() *CollisionSystem {
	return &CollisionSystem{}
}

func (s *CollisionSystem) Priority() int {
	return 40
}

func (s *CollisionSystem) Update(g *Game) {
	w := g.World
	hitbox := w.Player.Bounds()

	for i := range w.Coins {
		c := &w.Coins[i]
		if c.Collected || !hitbox.Overlaps(c.Bounds()) {
			continue
		}

		g.collectCoin(c)
		g.emitSound(event.SoundCoin)

		// Regenerated set is all fresh; remaining old entries were collected
		if g.regenerateIfCleared() {
			return
		}
	}
}

// collectCoin marks a coin collected, credits one coin and spawns its FX
func (g *Game) collectCoin(c *component.Coin) {
	c.Collected = true
	g.World.SpawnCollectionFX(c.X, c.Y)
	g.creditCoin()
}

// regenerateIfCleared replaces the coin set when every coin is collected
func (g *Game) regenerateIfCleared() bool {
	if !g.World.AllCollected() {
		return false
	}
	count := g.Ledger.CoinTarget()
	g.World.RegenerateCoins(count)
	log.Printf("game: coin set cleared, regenerated %d coins", count)
	return true
}
