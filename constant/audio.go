package constant

import "time"

// Audio Engine
const (
	// AudioSampleRate is the default speaker sample rate
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond
)

// Coin Sound Timing
const (
	CoinSoundNote1Duration = 80 * time.Millisecond
	CoinSoundNote2Duration = 280 * time.Millisecond
	CoinSoundAttack        = 5 * time.Millisecond
	CoinSoundNote1Release  = 40 * time.Millisecond
	CoinSoundNote2Release  = 200 * time.Millisecond
)

// Buy Sound Timing
const (
	BuySoundNoteDuration = 70 * time.Millisecond
	BuySoundAttack       = 5 * time.Millisecond
	BuySoundRelease      = 50 * time.Millisecond
)

// Click Sound Timing
const (
	ClickSoundDuration = 25 * time.Millisecond
	ClickSoundAttack   = 1 * time.Millisecond
	ClickSoundRelease  = 15 * time.Millisecond
)

// Bomb Sound Timing
const (
	BombSoundDuration = 700 * time.Millisecond
	BombSoundAttack   = 10 * time.Millisecond
	BombSoundRelease  = 600 * time.Millisecond
)
