package engine_test

import (
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/DoumaAbi/Doumas-Coin-Game/component"
	"github.com/DoumaAbi/Doumas-Coin-Game/constant"
	"github.com/DoumaAbi/Doumas-Coin-Game/engine"
	"github.com/DoumaAbi/Doumas-Coin-Game/engine/mocks"
	"github.com/DoumaAbi/Doumas-Coin-Game/event"
	"github.com/DoumaAbi/Doumas-Coin-Game/ledger"
)

func newSignalGame() *engine.Game {
	return engine.NewGame(engine.Options{Width: 800, Height: 600, Seed: 3})
}

// coinUnderPlayer replaces the coin set with one coin on the player and one far away
func coinUnderPlayer(g *engine.Game) {
	center := g.World.Player.Center()
	half := float64(constant.CoinSize) / 2
	g.World.Coins = []component.Coin{
		{X: center.X - half, Y: center.Y - half, Size: constant.CoinSize, Scale: 1},
		{X: center.X + 300, Y: center.Y, Size: constant.CoinSize, Scale: 1},
	}
}

func TestFlushSignalsDeliversRewardAndSound(t *testing.T) {
	ctrl := gomock.NewController(t)
	sounds := mocks.NewMockSoundPlayer(ctrl)
	rewards := mocks.NewMockRewardNotifier(ctrl)

	g := newSignalGame()
	g.Ledger.Coins = 239
	g.Ledger.Level = ledger.LevelFor(239)
	coinUnderPlayer(g)

	g.Advance(constant.StepInterval)

	sounds.EXPECT().Play(event.SoundCoin).Times(1)
	rewards.EXPECT().ShowReward("Level 25 Reward: +20 Coins!").Times(1)

	if n := g.FlushSignals(sounds, rewards); n != 2 {
		t.Errorf("FlushSignals drained %d signals, want 2", n)
	}
}

func TestFlushSignalsPreservesOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	sounds := mocks.NewMockSoundPlayer(ctrl)
	rewards := mocks.NewMockRewardNotifier(ctrl)

	g := newSignalGame()
	g.Ledger.Coins = 10
	g.Submit(event.Purchase(ledger.TrackSpeed))
	g.Submit(event.SetEmotion(component.EmotionLove))
	g.Advance(constant.StepInterval)

	gomock.InOrder(
		sounds.EXPECT().Play(event.SoundBuy),
		sounds.EXPECT().Play(event.SoundClick),
	)
	rewards.EXPECT().ShowReward(gomock.Any()).Times(0)

	g.FlushSignals(sounds, rewards)
}

func TestFlushSignalsNilSinksDrop(t *testing.T) {
	g := newSignalGame()
	g.Submit(event.SelectColor(component.ColorBlue))
	g.Advance(constant.StepInterval)

	if n := g.FlushSignals(nil, nil); n != 1 {
		t.Errorf("FlushSignals drained %d signals, want 1", n)
	}
	if n := g.FlushSignals(nil, nil); n != 0 {
		t.Errorf("signals left after flush: %d", n)
	}
}

func TestFlushSignalsBombSequence(t *testing.T) {
	ctrl := gomock.NewController(t)
	sounds := mocks.NewMockSoundPlayer(ctrl)

	g := newSignalGame()
	g.Ledger.Coins = constant.BombCost
	g.Submit(event.Purchase(ledger.TrackBomb))
	g.Submit(event.ActivateBomb())
	g.Advance(constant.StepInterval)

	gomock.InOrder(
		sounds.EXPECT().Play(event.SoundBuy),
		sounds.EXPECT().Play(event.SoundBomb),
	)
	g.FlushSignals(sounds, nil)
}
