package engine

import (
	"time"

	"github.com/DoumaAbi/Doumas-Coin-Game/component"
	"github.com/DoumaAbi/Doumas-Coin-Game/ledger"
)

// Snapshot is a read-only copy of everything presentation needs for one frame
// It shares no memory with the live world
type Snapshot struct {
	Width, Height float64

	Player       component.Player
	MagnetRadius float64
	Coins        []component.Coin
	FX           []component.CollectFX

	Bomb   component.BombState
	BombFX component.BombEffect

	Ledger             ledger.Summary
	RainbowUnlocked    bool
	DarkMatterUnlocked bool

	Steps   uint64
	Elapsed time.Duration // Virtual time
}

// Snapshot copies the current state; callers sharing the game wrap it in World.RunSafe
func (g *Game) Snapshot() Snapshot {
	w := g.World

	player := w.Player
	player.Appearance = w.Player.Appearance.Clone()

	bombFX := w.BombFX
	bombFX.Particles = append([]component.Particle(nil), w.BombFX.Particles...)

	bomb := w.Bomb
	bomb.Owned = g.Ledger.BombOwned()

	return Snapshot{
		Width:              w.Width,
		Height:             w.Height,
		Player:             player,
		MagnetRadius:       component.MagnetRadius(g.Ledger.MagnetLevel()),
		Coins:              append([]component.Coin(nil), w.Coins...),
		FX:                 append([]component.CollectFX(nil), w.FX...),
		Bomb:               bomb,
		BombFX:             bombFX,
		Ledger:             g.Ledger.Summary(),
		RainbowUnlocked:    g.Ledger.Owned(ledger.TrackRainbow),
		DarkMatterUnlocked: g.Ledger.Owned(ledger.TrackDarkMatter),
		Steps:              g.Steps,
		Elapsed:            g.Scheduler.Now(),
	}
}

// SafeSnapshot takes a snapshot under the world lock
func (g *Game) SafeSnapshot() Snapshot {
	var snap Snapshot
	g.World.RunSafe(func() {
		snap = g.Snapshot()
	})
	return snap
}

// ColorUnlocked reports whether the snapshot's ledger allows selecting color
func (s *Snapshot) ColorUnlocked(color component.BodyColor) bool {
	switch color {
	case component.ColorRainbow:
		return s.RainbowUnlocked
	case component.ColorDarkMatter:
		return s.DarkMatterUnlocked
	default:
		return color.Valid()
	}
}
