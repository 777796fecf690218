package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/DoumaAbi/Doumas-Coin-Game/component"
	"github.com/DoumaAbi/Doumas-Coin-Game/ledger"
)

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Tab, Esc)
	SpecialKeys map[tcell.Key]Intent

	// Rune bindings, matched case-insensitively
	Runes map[rune]Intent
}

func move(dir component.Direction) Intent {
	return Intent{Type: IntentMove, Direction: dir}
}

func purchase(track ledger.Track) Intent {
	return Intent{Type: IntentPurchase, Track: track}
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Intent{
			tcell.KeyEscape: {Type: IntentQuit},
			tcell.KeyCtrlC:  {Type: IntentQuit},
			tcell.KeyCtrlS:  {Type: IntentToggleMute},
			tcell.KeyTab:    {Type: IntentTogglePanel},

			tcell.KeyUp:    move(component.DirUp),
			tcell.KeyLeft:  move(component.DirLeft),
			tcell.KeyDown:  move(component.DirDown),
			tcell.KeyRight: move(component.DirRight),
		},
		Runes: map[rune]Intent{
			'w': move(component.DirUp),
			'a': move(component.DirLeft),
			's': move(component.DirDown),
			'd': move(component.DirRight),

			' ': {Type: IntentBomb},
			'q': {Type: IntentBomb},

			'1': purchase(ledger.TrackSpeed),
			'2': purchase(ledger.TrackMagnet),
			'3': purchase(ledger.TrackMoreCoins),
			'4': purchase(ledger.TrackBomb),
			'5': {Type: IntentSpecialColor, Color: component.ColorRainbow},
			'6': {Type: IntentSpecialColor, Color: component.ColorDarkMatter},

			'c': {Type: IntentCycleColor},
			'e': {Type: IntentCycleEmotion},
			'z': {Type: IntentAccessoryNext},
			'x': {Type: IntentAccessoryToggle},
			'n': {Type: IntentAccessoryClear},
			'p': {Type: IntentTogglePause},
			'm': {Type: IntentToggleMute},
		},
	}
}

// Lookup resolves a key event
func (kt *KeyTable) Lookup(ev *tcell.EventKey) (Intent, bool) {
	if ev.Key() == tcell.KeyRune {
		intent, ok := kt.Runes[unicode.ToLower(ev.Rune())]
		return intent, ok
	}
	intent, ok := kt.SpecialKeys[ev.Key()]
	return intent, ok
}
