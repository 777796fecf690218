package render

import (
	"sync"

	"github.com/DoumaAbi/Doumas-Coin-Game/component"
)

// Panel selects the lower panel content
type Panel uint8

const (
	PanelShop Panel = iota
	PanelEditor

	panelCount
)

func (p Panel) String() string {
	if p == PanelEditor {
		return "Editor"
	}
	return "Shop"
}

// UIState is presentation-only state shared by the input and render loops
// It never reaches the simulation
type UIState struct {
	mu sync.RWMutex

	panel     Panel
	accessory component.Accessory // Editor cursor, never AccessoryNone
	paused    bool
}

// NewUIState starts on the shop panel with the cursor on the first accessory
func NewUIState() *UIState {
	return &UIState{accessory: component.AccessoryNone + 1}
}

// Panel returns the visible panel
func (u *UIState) Panel() Panel {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.panel
}

// NextPanel cycles the lower panel and returns the new one
func (u *UIState) NextPanel() Panel {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.panel = (u.panel + 1) % panelCount
	return u.panel
}

// AccessoryCursor returns the accessory under the editor cursor
func (u *UIState) AccessoryCursor() component.Accessory {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.accessory
}

// MoveAccessoryCursor advances the cursor, skipping AccessoryNone
func (u *UIState) MoveAccessoryCursor() component.Accessory {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.accessory++
	if u.accessory >= component.AccessoryCount {
		u.accessory = component.AccessoryNone + 1
	}
	return u.accessory
}

// SetPaused records the pause state for the overlay
func (u *UIState) SetPaused(paused bool) {
	u.mu.Lock()
	u.paused = paused
	u.mu.Unlock()
}

// Paused reports whether the pause overlay is shown
func (u *UIState) Paused() bool {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.paused
}
