package engine

import (
	"log"

	"github.com/DoumaAbi/Doumas-Coin-Game/event"
)

// creditCoin adds one coin and evaluates leveling for that unit
func (g *Game) creditCoin() {
	lu, leveled := g.Ledger.CreditCoin()
	if !leveled || !lu.Rewarded() {
		return
	}

	text := lu.Message()
	log.Printf("game: %s", text)
	event.EmitReward(g.signals, lu.To, lu.Reward, text)
}
