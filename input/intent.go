package input

import (
	"github.com/DoumaAbi/Doumas-Coin-Game/component"
	"github.com/DoumaAbi/Doumas-Coin-Game/ledger"
)

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit       // Esc, Ctrl+C
	IntentResize     // Terminal resize event
	IntentTogglePause
	IntentToggleMute // Ctrl+S, m

	// Simulation commands
	IntentMove     // WASD, arrows
	IntentBomb     // Space, q
	IntentPurchase // 1-4
	IntentSpecialColor

	// Appearance editor
	IntentCycleColor
	IntentCycleEmotion
	IntentAccessoryNext
	IntentAccessoryToggle
	IntentAccessoryClear

	// Presentation
	IntentTogglePanel // Tab
)

var intentNames = map[IntentType]string{
	IntentNone:            "none",
	IntentQuit:            "quit",
	IntentResize:          "resize",
	IntentTogglePause:     "pause",
	IntentToggleMute:      "mute",
	IntentMove:            "move",
	IntentBomb:            "bomb",
	IntentPurchase:        "purchase",
	IntentSpecialColor:    "special_color",
	IntentCycleColor:      "cycle_color",
	IntentCycleEmotion:    "cycle_emotion",
	IntentAccessoryNext:   "accessory_next",
	IntentAccessoryToggle: "accessory_toggle",
	IntentAccessoryClear:  "accessory_clear",
	IntentTogglePanel:     "panel",
}

func (t IntentType) String() string {
	if name, ok := intentNames[t]; ok {
		return name
	}
	return "unknown"
}

// Intent is one parsed key action with its argument
// Only the field matching Type is meaningful
type Intent struct {
	Type      IntentType
	Direction component.Direction
	Track     ledger.Track
	Color     component.BodyColor
}
