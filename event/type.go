package event

// EventType represents the type of game event
type EventType int

const (
	// === Commands (adapter -> simulation) ===

	// EventDirection sets or clears a held movement direction
	// Trigger: InputHandler key press / inferred release
	// Consumer: MovementSystem | Payload: *DirectionPayload
	EventDirection EventType = iota

	// EventActivateBomb requests a bomb detonation
	// Trigger: Space or Q
	// Consumer: BombSystem | Payload: nil
	EventActivateBomb

	// EventPurchase requests an upgrade purchase
	// Trigger: shop keys
	// Consumer: ShopSystem | Payload: *PurchasePayload
	EventPurchase

	// EventUnlockColor requests the one-time unlock of a special body color
	// Consumer: ShopSystem | Payload: *ColorPayload
	EventUnlockColor

	// EventSelectColor changes the body color, locked specials are ignored
	// Consumer: CustomizationSystem | Payload: *ColorPayload
	EventSelectColor

	// EventToggleAccessory adds or removes an accessory, none clears all
	// Consumer: CustomizationSystem | Payload: *AccessoryPayload
	EventToggleAccessory

	// EventSetEmotion replaces the active emotion
	// Consumer: CustomizationSystem | Payload: *EmotionPayload
	EventSetEmotion

	// === Signals (simulation -> adapter) ===

	// EventPlaySound requests playback of a one-shot effect
	// Trigger: collection, purchase, customization, bomb activation
	// Consumer: audio adapter | Payload: *SoundPayload
	EventPlaySound EventType = iota + 100 // Offset keeps signals apart from commands

	// EventShowReward carries a level reward notification
	// Trigger: level threshold reached
	// Consumer: presentation adapter | Payload: *RewardPayload
	EventShowReward
)

var eventNames = map[EventType]string{
	EventDirection:       "direction",
	EventActivateBomb:    "activate_bomb",
	EventPurchase:        "purchase",
	EventUnlockColor:     "unlock_color",
	EventSelectColor:     "select_color",
	EventToggleAccessory: "toggle_accessory",
	EventSetEmotion:      "set_emotion",
	EventPlaySound:       "play_sound",
	EventShowReward:      "show_reward",
}

func (t EventType) String() string {
	if name, ok := eventNames[t]; ok {
		return name
	}
	return "unknown"
}

// IsCommand reports whether the event flows from adapters into the simulation
func (t EventType) IsCommand() bool {
	return t >= EventDirection && t <= EventSetEmotion
}

// GameEvent is the unit carried by the queues
type GameEvent struct {
	Type    EventType
	Payload any
}
