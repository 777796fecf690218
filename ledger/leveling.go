package ledger

import (
	"fmt"

	"github.com/DoumaAbi/Doumas-Coin-Game/constant"
)

// LevelFor derives the player level from a coin balance
func LevelFor(coins int) int {
	if coins < 0 {
		coins = 0
	}
	return coins/constant.CoinsPerLevel + 1
}

// ThresholdReward returns the one-time bonus granted on reaching level, if any
func ThresholdReward(level int) (int, bool) {
	switch {
	case level == 25:
		return 20, true
	case level == 50:
		return 40, true
	case level == 75:
		return 60, true
	case level == 100:
		return 100, true
	case level > 100 && level%constant.RewardLevelInterval == 0:
		return (level / constant.RewardLevelInterval) * constant.RewardPerInterval, true
	default:
		return 0, false
	}
}

// LevelUp reports a level change produced by a credit
type LevelUp struct {
	From, To int
	Reward   int // Bonus coins granted, 0 when no threshold was hit
}

// Rewarded reports whether a threshold bonus was paid
func (lu LevelUp) Rewarded() bool {
	return lu.Reward > 0
}

// Message is the reward notification text
func (lu LevelUp) Message() string {
	return fmt.Sprintf("Level %d Reward: +%d Coins!", lu.To, lu.Reward)
}

// CreditCoin adds one coin and evaluates leveling for that single unit
// The level follows the current balance; a reward is paid only when the new level
// is higher and lands exactly on a threshold, so skipped thresholds pay nothing
func (l *Ledger) CreditCoin() (LevelUp, bool) {
	l.Coins++

	old := l.Level
	l.Level = LevelFor(l.Coins)
	if l.Level <= old {
		return LevelUp{}, false
	}

	lu := LevelUp{From: old, To: l.Level}
	if reward, ok := ThresholdReward(l.Level); ok {
		l.Coins += reward
		lu.Reward = reward
	}
	return lu, true
}
