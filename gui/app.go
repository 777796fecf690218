// Package gui is a windowed presentation and input adapter built on ebiten
package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/DoumaAbi/Doumas-Coin-Game/component"
	"github.com/DoumaAbi/Doumas-Coin-Game/engine"
	"github.com/DoumaAbi/Doumas-Coin-Game/event"
	"github.com/DoumaAbi/Doumas-Coin-Game/input"
	"github.com/DoumaAbi/Doumas-Coin-Game/ledger"
	"github.com/DoumaAbi/Doumas-Coin-Game/render"
)

// Window layout in pixels
const (
	hudHeight   = 28
	panelHeight = 44
)

// Deps are the collaborators the window drives
type Deps struct {
	Game   *engine.Game
	Runner *engine.Runner
	Mute   input.Muter
	Sounds engine.SoundPlayer
	Clock  engine.TimeProvider
}

// App implements ebiten.Game
// Update polls keys, advances the runner and flushes signals; Draw renders the latest snapshot
type App struct {
	deps    Deps
	handler *input.Handler
	ui      *render.UIState
	banner  *render.RewardBanner

	keys    map[ebiten.Key]input.Intent
	dirKeys [component.DirCount][]ebiten.Key
	held    [component.DirCount]bool

	width, height int
	face          font.Face
}

// New creates the window adapter for a game and its runner
func New(deps Deps) *App {
	ui := render.NewUIState()
	snap := deps.Runner.Snapshot()
	return &App{
		deps: deps,
		handler: input.NewHandler(input.Deps{
			Sink:   deps.Game,
			State:  deps.Runner,
			Pause:  deps.Runner,
			Mute:   deps.Mute,
			Sounds: deps.Sounds,
			UI:     ui,
			Clock:  deps.Clock,
		}),
		ui:      ui,
		banner:  render.NewRewardBanner(deps.Clock),
		keys:    defaultKeys(),
		dirKeys: defaultDirKeys(),
		width:   int(snap.Width),
		height:  int(snap.Height),
		face:    basicfont.Face7x13,
	}
}

func defaultDirKeys() [component.DirCount][]ebiten.Key {
	var keys [component.DirCount][]ebiten.Key
	keys[component.DirUp] = []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp}
	keys[component.DirLeft] = []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}
	keys[component.DirDown] = []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown}
	keys[component.DirRight] = []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}
	return keys
}

func defaultKeys() map[ebiten.Key]input.Intent {
	return map[ebiten.Key]input.Intent{
		ebiten.KeyEscape: {Type: input.IntentQuit},
		ebiten.KeySpace:  {Type: input.IntentBomb},
		ebiten.KeyQ:      {Type: input.IntentBomb},
		ebiten.KeyDigit1: {Type: input.IntentPurchase, Track: ledger.TrackSpeed},
		ebiten.KeyDigit2: {Type: input.IntentPurchase, Track: ledger.TrackMagnet},
		ebiten.KeyDigit3: {Type: input.IntentPurchase, Track: ledger.TrackMoreCoins},
		ebiten.KeyDigit4: {Type: input.IntentPurchase, Track: ledger.TrackBomb},
		ebiten.KeyDigit5: {Type: input.IntentSpecialColor, Color: component.ColorRainbow},
		ebiten.KeyDigit6: {Type: input.IntentSpecialColor, Color: component.ColorDarkMatter},
		ebiten.KeyC:      {Type: input.IntentCycleColor},
		ebiten.KeyE:      {Type: input.IntentCycleEmotion},
		ebiten.KeyZ:      {Type: input.IntentAccessoryNext},
		ebiten.KeyX:      {Type: input.IntentAccessoryToggle},
		ebiten.KeyN:      {Type: input.IntentAccessoryClear},
		ebiten.KeyTab:    {Type: input.IntentTogglePanel},
		ebiten.KeyP:      {Type: input.IntentTogglePause},
		ebiten.KeyM:      {Type: input.IntentToggleMute},
	}
}

// Update runs once per ebiten tick
func (a *App) Update() error {
	a.pollDirections(ebiten.IsKeyPressed)

	for key, intent := range a.keys {
		if !inpututil.IsKeyJustPressed(key) {
			continue
		}
		if intent.Type == input.IntentQuit {
			return ebiten.Termination
		}
		a.handler.Apply(intent)
	}

	a.deps.Runner.Tick()
	a.deps.Runner.FlushSignals(a.deps.Sounds, a.banner)
	return nil
}

// pollDirections submits press and release edges; any bound key holds its direction
func (a *App) pollDirections(isPressed func(ebiten.Key) bool) {
	for dir := component.Direction(0); dir < component.DirCount; dir++ {
		pressed := false
		for _, key := range a.dirKeys[dir] {
			if isPressed(key) {
				pressed = true
				break
			}
		}
		if pressed == a.held[dir] {
			continue
		}
		a.held[dir] = pressed
		a.deps.Game.Submit(event.Direction(dir, pressed))
	}
}

// Layout keeps the canvas at its logical size with the HUD above and panel below
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height + hudHeight + panelHeight
}

// Run opens the window and blocks until it closes
func Run(app *App, title string) error {
	w, h := app.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(title)
	return ebiten.RunGame(app)
}
