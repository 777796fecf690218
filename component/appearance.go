package component

// BodyColor identifies a palette entry for the avatar body
type BodyColor uint8

const (
	ColorGreen BodyColor = iota
	ColorBlue
	ColorRed
	ColorYellow
	ColorPurple
	ColorOrange
	ColorPink
	ColorCyan
	ColorWhite
	ColorBlack

	// Special colors, locked until purchased
	ColorRainbow
	ColorDarkMatter

	ColorCount // Sentinel for array sizing
)

// DefaultBodyColor is the color a new player starts with
const DefaultBodyColor = ColorGreen

var colorNames = [ColorCount]string{
	"green", "blue", "red", "yellow", "purple", "orange",
	"pink", "cyan", "white", "black", "rainbow", "darkmatter",
}

// colorHex holds the sRGB value of each fixed palette entry; specials are computed at render time
var colorHex = [ColorCount]uint32{
	0x4CAF50, 0x2196F3, 0xF44336, 0xFFEB3B, 0x9C27B0, 0xFF9800,
	0xE91E63, 0x00BCD4, 0xFFFFFF, 0x212121, 0, 0,
}

func (c BodyColor) String() string {
	if c >= ColorCount {
		return "unknown"
	}
	return colorNames[c]
}

// IsSpecial reports whether the color requires an unlock purchase
func (c BodyColor) IsSpecial() bool {
	return c == ColorRainbow || c == ColorDarkMatter
}

// Valid reports whether c names a palette entry
func (c BodyColor) Valid() bool {
	return c < ColorCount
}

// Hex returns the fixed sRGB value, zero for special colors
func (c BodyColor) Hex() uint32 {
	if c >= ColorCount {
		return 0
	}
	return colorHex[c]
}

// Accessory identifies a wearable item
type Accessory uint8

const (
	AccessoryNone Accessory = iota // Sentinel: selecting it clears all accessories
	AccessoryHat
	AccessoryGlasses
	AccessoryCrown
	AccessoryHalo
	AccessoryMask
	AccessoryHeadphones
	AccessoryWings
	AccessoryCape
	AccessoryJetpack
	AccessorySword
	AccessoryShield

	AccessoryCount // Sentinel for array sizing
)

// MaxAccessories is the cap on simultaneously worn accessories
const MaxAccessories = 3

var accessoryNames = [AccessoryCount]string{
	"none", "hat", "glasses", "crown", "halo", "mask", "headphones",
	"wings", "cape", "jetpack", "sword", "shield",
}

func (a Accessory) String() string {
	if a >= AccessoryCount {
		return "unknown"
	}
	return accessoryNames[a]
}

// Emotion identifies the face expression
type Emotion uint8

const (
	EmotionHappy Emotion = iota
	EmotionSad
	EmotionAngry
	EmotionSurprised
	EmotionCool
	EmotionLaughing
	EmotionSleepy
	EmotionDevil
	EmotionLove
	EmotionRobot
	EmotionAlien
	EmotionClown

	EmotionCount // Sentinel for array sizing
)

var emotionNames = [EmotionCount]string{
	"happy", "sad", "angry", "surprised", "cool", "laughing",
	"sleepy", "devil", "love", "robot", "alien", "clown",
}

func (e Emotion) String() string {
	if e >= EmotionCount {
		return "unknown"
	}
	return emotionNames[e]
}

// Appearance is the cosmetic state of the avatar
// Only customization commands and the cosmetic tick mutate it
type Appearance struct {
	Color       BodyColor
	Accessories []Accessory // Ordered by selection, len <= MaxAccessories
	Emotion     Emotion

	// Animation counters for the special colors
	RainbowHue      float64 // Degrees in [0, 360)
	DarkMatterPhase float64 // Radians in [0, 2π)
}

// NewAppearance returns the default look
func NewAppearance() Appearance {
	return Appearance{
		Color:       DefaultBodyColor,
		Accessories: make([]Accessory, 0, MaxAccessories),
		Emotion:     EmotionHappy,
	}
}

// HasAccessory reports whether a is currently worn
func (a *Appearance) HasAccessory(acc Accessory) bool {
	for _, worn := range a.Accessories {
		if worn == acc {
			return true
		}
	}
	return false
}

// ToggleAccessory applies the selection rules and reports whether the set changed
// None clears the set, a worn item is removed, a new item is added only below the cap
func (a *Appearance) ToggleAccessory(acc Accessory) bool {
	if acc >= AccessoryCount {
		return false
	}
	if acc == AccessoryNone {
		changed := len(a.Accessories) > 0
		a.Accessories = a.Accessories[:0]
		return changed
	}

	for i, worn := range a.Accessories {
		if worn == acc {
			a.Accessories = append(a.Accessories[:i], a.Accessories[i+1:]...)
			return true
		}
	}

	if len(a.Accessories) >= MaxAccessories {
		return false
	}
	a.Accessories = append(a.Accessories, acc)
	return true
}

// Clone returns a copy that shares no slice storage with a
func (a Appearance) Clone() Appearance {
	out := a
	out.Accessories = append(make([]Accessory, 0, MaxAccessories), a.Accessories...)
	return out
}
