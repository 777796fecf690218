package engine

//go:generate mockgen -source=signals.go -destination=mocks/mock_signals.go -package=mocks

import (
	"github.com/DoumaAbi/Doumas-Coin-Game/event"
)

// SoundPlayer receives one-shot sound signals
type SoundPlayer interface {
	Play(kind event.SoundKind)
}

// RewardNotifier receives level reward notifications
type RewardNotifier interface {
	ShowReward(text string)
}

// FlushSignals drains pending signals in emission order
// A nil sink drops its signal kind; returns the number of signals drained
func (g *Game) FlushSignals(sounds SoundPlayer, rewards RewardNotifier) int {
	signals := g.signals.Consume()
	for _, ev := range signals {
		switch p := ev.Payload.(type) {
		case *event.SoundPayload:
			if sounds != nil {
				sounds.Play(p.Kind)
			}
		case *event.RewardPayload:
			if rewards != nil {
				rewards.ShowReward(p.Text)
			}
		}
	}
	return len(signals)
}
