package event

import (
	"github.com/DoumaAbi/Doumas-Coin-Game/component"
	"github.com/DoumaAbi/Doumas-Coin-Game/ledger"
)

// Command constructors used by input adapters

func Direction(dir component.Direction, pressed bool) GameEvent {
	return GameEvent{Type: EventDirection, Payload: &DirectionPayload{Dir: dir, Pressed: pressed}}
}

func ActivateBomb() GameEvent {
	return GameEvent{Type: EventActivateBomb}
}

func Purchase(track ledger.Track) GameEvent {
	return GameEvent{Type: EventPurchase, Payload: &PurchasePayload{Track: track}}
}

func UnlockColor(color component.BodyColor) GameEvent {
	return GameEvent{Type: EventUnlockColor, Payload: &ColorPayload{Color: color}}
}

func SelectColor(color component.BodyColor) GameEvent {
	return GameEvent{Type: EventSelectColor, Payload: &ColorPayload{Color: color}}
}

func ToggleAccessory(acc component.Accessory) GameEvent {
	return GameEvent{Type: EventToggleAccessory, Payload: &AccessoryPayload{Accessory: acc}}
}

func SetEmotion(emotion component.Emotion) GameEvent {
	return GameEvent{Type: EventSetEmotion, Payload: &EmotionPayload{Emotion: emotion}}
}

// EmitSound pushes a sound signal
func EmitSound(q *EventQueue, kind SoundKind) {
	q.Push(GameEvent{Type: EventPlaySound, Payload: &SoundPayload{Kind: kind}})
}

// EmitReward pushes a reward notification signal
func EmitReward(q *EventQueue, level, amount int, text string) {
	q.Push(GameEvent{Type: EventShowReward, Payload: &RewardPayload{Level: level, Amount: amount, Text: text}})
}
