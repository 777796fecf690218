package ledger

import (
	"math"

	"github.com/DoumaAbi/Doumas-Coin-Game/constant"
)

// Track identifies a purchasable upgrade line
type Track uint8

const (
	TrackSpeed Track = iota
	TrackMagnet
	TrackMoreCoins
	TrackBomb
	TrackRainbow
	TrackDarkMatter

	TrackCount // Sentinel for array sizing
)

var trackNames = [TrackCount]string{"speed", "magnet", "moreCoins", "bomb", "rainbow", "darkmatter"}

func (t Track) String() string {
	if t >= TrackCount {
		return "unknown"
	}
	return trackNames[t]
}

// Leveled reports whether the track has levels rather than a one-time flag
func (t Track) Leveled() bool {
	return t == TrackSpeed || t == TrackMagnet || t == TrackMoreCoins
}

// TrackState is the mutable record of one track
// Leveled tracks use Level/MaxLevel; one-time tracks use Owned
type TrackState struct {
	Level      int
	MaxLevel   int
	Cost       int
	Multiplier float64 // Cost escalation per purchase, leveled tracks only
	Owned      bool
}

// Maxed reports whether no further purchase is possible
func (s *TrackState) Maxed(t Track) bool {
	if t.Leveled() {
		return s.Level >= s.MaxLevel
	}
	return s.Owned
}

// escalate applies the per-purchase geometric cost increase, floored
func (s *TrackState) escalate() {
	s.Cost = int(math.Floor(float64(s.Cost) * s.Multiplier))
}

// initialTracks returns the starting state of every track
func initialTracks() [TrackCount]TrackState {
	return [TrackCount]TrackState{
		TrackSpeed: {
			Level:      1,
			MaxLevel:   constant.SpeedMaxLevel,
			Cost:       constant.SpeedBaseCost,
			Multiplier: constant.SpeedCostMultiplier,
		},
		TrackMagnet: {
			Level:      0,
			MaxLevel:   constant.MagnetMaxLevel,
			Cost:       constant.MagnetBaseCost,
			Multiplier: constant.MagnetCostMultiplier,
		},
		TrackMoreCoins: {
			Level:      1,
			MaxLevel:   constant.MoreCoinsMaxLevel,
			Cost:       constant.MoreCoinsBaseCost,
			Multiplier: constant.MoreCoinsCostMultiplier,
		},
		TrackBomb:       {Cost: constant.BombCost},
		TrackRainbow:    {Cost: constant.RainbowUnlockCost},
		TrackDarkMatter: {Cost: constant.DarkMatterUnlockCost},
	}
}
