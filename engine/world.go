package engine

import (
	"math"
	"math/rand"
	"sync"

	"github.com/DoumaAbi/Doumas-Coin-Game/component"
	"github.com/DoumaAbi/Doumas-Coin-Game/constant"
)

// World is the entity store: player, coin set, collection FX and bomb effect
// The simulation is its only writer; adapters read through snapshots taken under RunSafe
type World struct {
	Width, Height float64

	Player component.Player
	Coins  []component.Coin
	FX     []component.CollectFX

	Bomb   component.BombState
	BombFX component.BombEffect

	rng         *rand.Rand
	updateMutex sync.Mutex
}

// NewWorld creates an empty world for a canvas of the given size
func NewWorld(width, height float64, rng *rand.Rand) *World {
	return &World{
		Width:  width,
		Height: height,
		Player: component.NewPlayer(width, height),
		BombFX: component.BombEffect{MaxRadius: constant.BombMaxRadius},
		rng:    rng,
	}
}

// RunSafe executes a function while holding the world's update lock
func (w *World) RunSafe(fn func()) {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	fn()
}

// Lock acquires the world's update mutex
func (w *World) Lock() {
	w.updateMutex.Lock()
}

// Unlock releases the update mutex
func (w *World) Unlock() {
	w.updateMutex.Unlock()
}

// newCoin creates a coin at a uniform random position inside the canvas
func (w *World) newCoin() component.Coin {
	return component.Coin{
		X:          w.rng.Float64() * math.Max(w.Width-constant.CoinSize, 0),
		Y:          w.rng.Float64() * math.Max(w.Height-constant.CoinSize, 0),
		Size:       constant.CoinSize,
		Rotation:   w.rng.Float64() * 2 * math.Pi,
		FloatPhase: w.rng.Float64() * 2 * math.Pi,
		Scale:      1,
	}
}

// RegenerateCoins replaces the whole coin set with count fresh coins
func (w *World) RegenerateCoins(count int) {
	coins := make([]component.Coin, count)
	for i := range coins {
		coins[i] = w.newCoin()
	}
	w.Coins = coins
}

// GrowCoins appends extra fresh coins, existing coins are untouched
func (w *World) GrowCoins(extra int) {
	for i := 0; i < extra; i++ {
		w.Coins = append(w.Coins, w.newCoin())
	}
}

// Remaining returns the number of uncollected coins
func (w *World) Remaining() int {
	n := 0
	for i := range w.Coins {
		if !w.Coins[i].Collected {
			n++
		}
	}
	return n
}

// AllCollected reports whether every coin in the set is collected
func (w *World) AllCollected() bool {
	for i := range w.Coins {
		if !w.Coins[i].Collected {
			return false
		}
	}
	return true
}

// SpawnCollectionFX appends one collection effect at the coin's last position
func (w *World) SpawnCollectionFX(x, y float64) {
	w.FX = append(w.FX, component.NewCollectFX(x, y))
}

// SpawnBombParticles resets the explosion particle set to n fresh particles at the center
func (w *World) SpawnBombParticles(cx, cy float64, n int) {
	half := constant.BombParticleSpeed / 2
	particles := make([]component.Particle, n)
	for i := range particles {
		particles[i] = component.Particle{
			X:    cx,
			Y:    cy,
			VX:   w.rng.Float64()*constant.BombParticleSpeed - half,
			VY:   w.rng.Float64()*constant.BombParticleSpeed - half,
			Hue:  w.rng.Float64() * 360,
			Size: w.rng.Float64()*constant.BombParticleSizeRange + constant.BombParticleMinSize,
			Life: 1,
		}
	}
	w.BombFX.Particles = particles
}
