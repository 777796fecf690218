// Package input translates terminal key events into game commands
package input

import (
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/DoumaAbi/Doumas-Coin-Game/component"
	"github.com/DoumaAbi/Doumas-Coin-Game/constant"
	"github.com/DoumaAbi/Doumas-Coin-Game/engine"
	"github.com/DoumaAbi/Doumas-Coin-Game/event"
	"github.com/DoumaAbi/Doumas-Coin-Game/render"
)

// Sink accepts simulation commands; *engine.Game satisfies it
type Sink interface {
	Submit(ev event.GameEvent)
}

// StateReader supplies the current state for commands relative to it
type StateReader interface {
	Snapshot() engine.Snapshot
}

// Pauser toggles simulation time; *engine.Runner satisfies it
type Pauser interface {
	TogglePause() bool
}

// Muter toggles sound output; *audio.SoundManager satisfies it
type Muter interface {
	ToggleMute() bool
}

// Deps are the collaborators a Handler drives
// Pause, Mute and Sounds may be nil
type Deps struct {
	Sink   Sink
	State  StateReader
	Pause  Pauser
	Mute   Muter
	Sounds engine.SoundPlayer
	UI     *render.UIState
	Clock  engine.TimeProvider
}

// Handler owns held-direction tracking and applies intents
// Terminals report no key release, so a direction is held until its repeats
// stop for longer than the hold timeout
type Handler struct {
	deps  Deps
	table *KeyTable

	holdTimeout time.Duration
	lastPress   [component.DirCount]time.Time
	held        [component.DirCount]bool
}

// NewHandler creates a handler with the default key table
func NewHandler(deps Deps) *Handler {
	return &Handler{
		deps:        deps,
		table:       DefaultKeyTable(),
		holdTimeout: constant.KeyHoldTimeout,
	}
}

// HandleEvent parses and applies one terminal event
// The returned intent lets the caller react to quit and resize
func (h *Handler) HandleEvent(ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return Intent{Type: IntentResize}
	case *tcell.EventKey:
		intent, ok := h.table.Lookup(ev)
		if !ok {
			return Intent{}
		}
		h.Apply(intent)
		return intent
	}
	return Intent{}
}

// Apply executes an intent against the game and UI state
func (h *Handler) Apply(intent Intent) {
	switch intent.Type {
	case IntentMove:
		h.press(intent.Direction)

	case IntentBomb:
		h.deps.Sink.Submit(event.ActivateBomb())

	case IntentPurchase:
		h.deps.Sink.Submit(event.Purchase(intent.Track))

	case IntentSpecialColor:
		// Unlock runs first in the same step, so the select sees the new ownership
		snap := h.deps.State.Snapshot()
		if !snap.ColorUnlocked(intent.Color) {
			h.deps.Sink.Submit(event.UnlockColor(intent.Color))
		}
		h.deps.Sink.Submit(event.SelectColor(intent.Color))

	case IntentCycleColor:
		snap := h.deps.State.Snapshot()
		h.deps.Sink.Submit(event.SelectColor(nextFreeColor(snap.Player.Appearance.Color)))

	case IntentCycleEmotion:
		snap := h.deps.State.Snapshot()
		next := (snap.Player.Appearance.Emotion + 1) % component.EmotionCount
		h.deps.Sink.Submit(event.SetEmotion(next))

	case IntentAccessoryNext:
		h.deps.UI.MoveAccessoryCursor()

	case IntentAccessoryToggle:
		h.deps.Sink.Submit(event.ToggleAccessory(h.deps.UI.AccessoryCursor()))

	case IntentAccessoryClear:
		h.deps.Sink.Submit(event.ToggleAccessory(component.AccessoryNone))

	case IntentTogglePanel:
		h.deps.UI.NextPanel()
		if h.deps.Sounds != nil {
			h.deps.Sounds.Play(event.SoundClick)
		}

	case IntentTogglePause:
		if h.deps.Pause == nil {
			return
		}
		paused := h.deps.Pause.TogglePause()
		h.deps.UI.SetPaused(paused)
		log.Printf("input: paused=%v", paused)

	case IntentToggleMute:
		if h.deps.Mute != nil {
			log.Printf("input: muted=%v", h.deps.Mute.ToggleMute())
		}
	}
}

// press marks a direction held, submitting only the press edge
func (h *Handler) press(dir component.Direction) {
	h.lastPress[dir] = h.deps.Clock.Now()
	if h.held[dir] {
		return
	}
	h.held[dir] = true
	h.deps.Sink.Submit(event.Direction(dir, true))
}

// ReleaseStale submits the release edge for directions whose repeats stopped
// Returns the number of directions released
func (h *Handler) ReleaseStale() int {
	now := h.deps.Clock.Now()
	released := 0
	for dir := component.Direction(0); dir < component.DirCount; dir++ {
		if !h.held[dir] || now.Sub(h.lastPress[dir]) < h.holdTimeout {
			continue
		}
		h.held[dir] = false
		h.deps.Sink.Submit(event.Direction(dir, false))
		released++
	}
	return released
}

// Held reports whether a direction is currently considered held
func (h *Handler) Held(dir component.Direction) bool {
	return dir < component.DirCount && h.held[dir]
}

// nextFreeColor cycles the unlocked-by-default palette; special colors restart it
func nextFreeColor(c component.BodyColor) component.BodyColor {
	if c.IsSpecial() || c+1 >= component.ColorRainbow {
		return component.ColorGreen
	}
	return c + 1
}
