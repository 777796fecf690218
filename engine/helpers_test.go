package engine

import (
	"io"
	"log"
	"os"
	"testing"
	"time"

	"github.com/DoumaAbi/Doumas-Coin-Game/component"
	"github.com/DoumaAbi/Doumas-Coin-Game/constant"
	"github.com/DoumaAbi/Doumas-Coin-Game/event"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

// newTestGame creates a deterministic game on the default canvas
func newTestGame(t *testing.T) *Game {
	t.Helper()
	return NewGame(Options{
		Width:  constant.DefaultCanvasWidth,
		Height: constant.DefaultCanvasHeight,
		Seed:   42,
	})
}

// coinAt builds an uncollected coin whose center is (cx, cy)
func coinAt(cx, cy float64) component.Coin {
	return component.Coin{
		X:     cx - constant.CoinSize/2,
		Y:     cy - constant.CoinSize/2,
		Size:  constant.CoinSize,
		Scale: 1,
	}
}

// drainSounds consumes pending signals and returns the sound kinds in order
func drainSounds(g *Game) []event.SoundKind {
	var kinds []event.SoundKind
	for _, ev := range g.signals.Consume() {
		if p, ok := ev.Payload.(*event.SoundPayload); ok {
			kinds = append(kinds, p.Kind)
		}
	}
	return kinds
}

// advanceBy feeds d to the game in frames the delta cap accepts
func advanceBy(g *Game, d time.Duration) {
	for d > 0 {
		chunk := min(d, constant.MaxFrameDelta)
		g.Advance(chunk)
		d -= chunk
	}
}

func equalSounds(got, want []event.SoundKind) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
