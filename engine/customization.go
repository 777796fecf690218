package engine

import (
	"github.com/DoumaAbi/Doumas-Coin-Game/component"
	"github.com/DoumaAbi/Doumas-Coin-Game/event"
	"github.com/DoumaAbi/Doumas-Coin-Game/ledger"
)

// CustomizationSystem applies cosmetic commands to the player appearance
type CustomizationSystem struct{}

func NewCustomizationSystem() *CustomizationSystem {
	return &CustomizationSystem{}
}

func (s *CustomizationSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventSelectColor, event.EventToggleAccessory, event.EventSetEmotion}
}

func (s *CustomizationSystem) HandleEvent(g *Game, ev event.GameEvent) {
	switch p := ev.Payload.(type) {
	case *event.ColorPayload:
		g.selectColor(p.Color)
	case *event.AccessoryPayload:
		g.toggleAccessory(p.Accessory)
	case *event.EmotionPayload:
		g.setEmotion(p.Emotion)
	}
}

// ColorUnlocked reports whether a color is selectable
func (g *Game) ColorUnlocked(color component.BodyColor) bool {
	switch color {
	case component.ColorRainbow:
		return g.Ledger.Owned(ledger.TrackRainbow)
	case component.ColorDarkMatter:
		return g.Ledger.Owned(ledger.TrackDarkMatter)
	default:
		return color.Valid()
	}
}

func (g *Game) selectColor(color component.BodyColor) bool {
	if !g.ColorUnlocked(color) {
		return false
	}
	g.World.Player.Appearance.Color = color
	g.emitSound(event.SoundClick)
	return true
}

// toggleAccessory clicks on every valid choice, even one refused by the cap
func (g *Game) toggleAccessory(acc component.Accessory) bool {
	if acc >= component.AccessoryCount {
		return false
	}
	changed := g.World.Player.Appearance.ToggleAccessory(acc)
	g.emitSound(event.SoundClick)
	return changed
}

func (g *Game) setEmotion(emotion component.Emotion) bool {
	if emotion >= component.EmotionCount {
		return false
	}
	g.World.Player.Appearance.Emotion = emotion
	g.emitSound(event.SoundClick)
	return true
}
