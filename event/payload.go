package event

import (
	"github.com/DoumaAbi/Doumas-Coin-Game/component"
	"github.com/DoumaAbi/Doumas-Coin-Game/ledger"
)

// DirectionPayload carries a held-state change for one direction
type DirectionPayload struct {
	Dir     component.Direction
	Pressed bool
}

// PurchasePayload names the upgrade track to buy
type PurchasePayload struct {
	Track ledger.Track
}

// ColorPayload names a body color
type ColorPayload struct {
	Color component.BodyColor
}

// AccessoryPayload names an accessory, AccessoryNone clears the set
type AccessoryPayload struct {
	Accessory component.Accessory
}

// EmotionPayload names an emotion
type EmotionPayload struct {
	Emotion component.Emotion
}

// SoundKind identifies a one-shot sound effect
type SoundKind uint8

const (
	SoundCoin SoundKind = iota
	SoundBuy
	SoundClick
	SoundBomb

	SoundKindCount // Sentinel for array sizing
)

var soundNames = [SoundKindCount]string{"coin", "buy", "click", "bomb"}

func (k SoundKind) String() string {
	if k >= SoundKindCount {
		return "unknown"
	}
	return soundNames[k]
}

// SoundPayload names the effect to play
type SoundPayload struct {
	Kind SoundKind
}

// RewardPayload describes a paid level threshold
type RewardPayload struct {
	Level  int
	Amount int
	Text   string
}
