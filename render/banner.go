package render

import (
	"sync"
	"time"

	"github.com/DoumaAbi/Doumas-Coin-Game/constant"
	"github.com/DoumaAbi/Doumas-Coin-Game/engine"
)

// RewardBanner holds the latest level reward message for a fixed display time
// ShowReward is called from the signal flush, Text from the render loop
type RewardBanner struct {
	mu       sync.Mutex
	clock    engine.TimeProvider
	duration time.Duration

	text    string
	expires time.Time
}

// NewRewardBanner creates a banner timed by clock
func NewRewardBanner(clock engine.TimeProvider) *RewardBanner {
	return &RewardBanner{
		clock:    clock,
		duration: constant.RewardBannerDuration,
	}
}

// ShowReward implements engine.RewardNotifier; a newer message replaces the current one
func (b *RewardBanner) ShowReward(text string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.text = text
	b.expires = b.clock.Now().Add(b.duration)
}

// Text returns the message while it is visible
func (b *RewardBanner) Text() (string, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.text == "" || !b.clock.Now().Before(b.expires) {
		return "", false
	}
	return b.text, true
}
