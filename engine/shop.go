package engine

import (
	"log"

	"github.com/DoumaAbi/Doumas-Coin-Game/component"
	"github.com/DoumaAbi/Doumas-Coin-Game/event"
	"github.com/DoumaAbi/Doumas-Coin-Game/ledger"
)

// ShopSystem applies purchase and color unlock commands against the ledger
// Every command is re-validated here regardless of what the adapter displayed
type ShopSystem struct{}

func NewShopSystem() *ShopSystem {
	return &ShopSystem{}
}

func (s *ShopSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventPurchase, event.EventUnlockColor}
}

func (s *ShopSystem) HandleEvent(g *Game, ev event.GameEvent) {
	switch ev.Type {
	case event.EventPurchase:
		if p, ok := ev.Payload.(*event.PurchasePayload); ok {
			g.purchase(p.Track)
		}
	case event.EventUnlockColor:
		if p, ok := ev.Payload.(*event.ColorPayload); ok {
			g.unlockColor(p.Color)
		}
	}
}

// purchase buys a level or the bomb; color tracks go through unlockColor
func (g *Game) purchase(track ledger.Track) bool {
	switch track {
	case ledger.TrackSpeed, ledger.TrackMagnet, ledger.TrackMoreCoins, ledger.TrackBomb:
	default:
		return false
	}
	return g.applyPurchase(track)
}

// unlockColor buys the one-time unlock of a special color
func (g *Game) unlockColor(color component.BodyColor) bool {
	switch color {
	case component.ColorRainbow:
		return g.applyPurchase(ledger.TrackRainbow)
	case component.ColorDarkMatter:
		return g.applyPurchase(ledger.TrackDarkMatter)
	default:
		return false
	}
}

func (g *Game) applyPurchase(track ledger.Track) bool {
	p := g.Ledger.TryPurchase(track)
	if !p.Accepted {
		return false
	}

	switch track {
	case ledger.TrackMoreCoins:
		g.World.GrowCoins(p.GrowCoins)
	case ledger.TrackBomb:
		g.World.Bomb.Owned = true
	}

	g.emitSound(event.SoundBuy)
	log.Printf("game: bought %v for %d (level %d, %d coins left)", track, p.Cost, p.Level, g.Ledger.Coins)
	return true
}
