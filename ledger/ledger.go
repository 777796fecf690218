// Package ledger is the authoritative record of currency and upgrade state.
// All operations are total: invalid purchases are rejected without error and
// leave the ledger untouched.
package ledger

import (
	"github.com/DoumaAbi/Doumas-Coin-Game/constant"
)

// Ledger tracks coins, player level and every upgrade track
// Not safe for concurrent use; owned by the simulation
type Ledger struct {
	Coins int
	Level int

	tracks [TrackCount]TrackState
}

// New creates a ledger in its starting state
func New() *Ledger {
	return &Ledger{
		Coins:  0,
		Level:  1,
		tracks: initialTracks(),
	}
}

// Purchase describes the outcome of a purchase attempt
type Purchase struct {
	Accepted bool
	Track    Track
	Cost     int // Amount deducted, 0 when rejected
	Level    int // Track level after the purchase (leveled tracks)

	// GrowCoins is the number of coins to append to the live set (moreCoins only)
	GrowCoins int
}

// Track returns a copy of the track state
func (l *Ledger) Track(t Track) TrackState {
	if t >= TrackCount {
		return TrackState{}
	}
	return l.tracks[t]
}

// CanPurchase re-validates affordability and track limits
func (l *Ledger) CanPurchase(t Track) bool {
	if t >= TrackCount {
		return false
	}
	s := &l.tracks[t]
	return l.Coins >= s.Cost && !s.Maxed(t)
}

// TryPurchase validates and applies a purchase on any track
// Rejection is silent: the returned Purchase has Accepted=false and nothing changed
func (l *Ledger) TryPurchase(t Track) Purchase {
	if !l.CanPurchase(t) {
		return Purchase{Track: t}
	}

	s := &l.tracks[t]
	cost := s.Cost
	l.Coins -= cost

	result := Purchase{Accepted: true, Track: t, Cost: cost}

	if !t.Leveled() {
		s.Owned = true
		return result
	}

	prevTarget := l.CoinTarget()
	s.Level++
	s.escalate()
	result.Level = s.Level

	if t == TrackMoreCoins {
		result.GrowCoins = l.CoinTarget() - prevTarget
	}
	return result
}

// SpeedMultiplier is 1 + (speedLevel-1)*0.5
func (l *Ledger) SpeedMultiplier() float64 {
	return 1 + float64(l.tracks[TrackSpeed].Level-1)*constant.SpeedStepPerLevel
}

// CoinTarget is the coin set size for the current moreCoins level
func (l *Ledger) CoinTarget() int {
	return constant.CoinBaseCount + (l.tracks[TrackMoreCoins].Level-1)*constant.CoinCountPerLevel
}

// MagnetLevel returns the magnet track level (0 when not bought)
func (l *Ledger) MagnetLevel() int {
	return l.tracks[TrackMagnet].Level
}

// BombOwned reports whether the bomb was purchased
func (l *Ledger) BombOwned() bool {
	return l.tracks[TrackBomb].Owned
}

// Owned reports whether a one-time track was purchased
func (l *Ledger) Owned(t Track) bool {
	if t >= TrackCount || t.Leveled() {
		return false
	}
	return l.tracks[t].Owned
}
