package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/DoumaAbi/Doumas-Coin-Game/constant"
	"github.com/DoumaAbi/Doumas-Coin-Game/event"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// Note frequencies (Hz)
const (
	noteB5 = 987.77
	noteC6 = 1046.50
	noteE6 = 1318.51
	noteG6 = 1567.98

	clickFreq      = 2200.0
	bombRumbleFreq = 55.0
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64 // [0, 1)
	length   int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator creates an oscillator that stops after duration
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:   freq,
		length: rate.N(duration),
		wave:   wave,
		rate:   rate,
		rng:    rand.New(rand.NewSource(int64(freq*1000) + int64(duration))),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.length {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = -1.0
			if o.phase < 0.5 {
				val = 1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream
type envelope struct {
	streamer     beep.Streamer
	position     int
	attack       int
	releaseStart int
	release      int
	total        int
}

// NewEnvelope shapes s over duration; sustain fills whatever attack and release leave
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	if att+rel > total {
		rel = max(total-att, 0)
	}

	return &envelope{
		streamer:     s,
		attack:       att,
		releaseStart: total - rel,
		release:      rel,
		total:        total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if e.position >= e.releaseStart && e.release > 0 {
			vol = float64(e.total-e.position) / float64(e.release)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a gain stage
// math.Log2(0) is -Inf, so zero volume becomes a silent stage
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// tone is one enveloped oscillator
func tone(freq float64, wave WaveType, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, duration, wave, rate), duration, attack, release, rate)
}

// CreateCoinSound generates the two-note chime played on every collection
func CreateCoinSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	sequence := beep.Seq(
		tone(noteB5, WaveSquare, constant.CoinSoundNote1Duration, constant.CoinSoundAttack, constant.CoinSoundNote1Release, rate),
		tone(noteE6, WaveSquare, constant.CoinSoundNote2Duration, constant.CoinSoundAttack, constant.CoinSoundNote2Release, rate),
	)
	return newVolume(sequence, cfg.volume(event.SoundCoin))
}

// CreateBuySound generates a rising three-note arpeggio for accepted purchases
func CreateBuySound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	d, a, r := constant.BuySoundNoteDuration, constant.BuySoundAttack, constant.BuySoundRelease
	sequence := beep.Seq(
		tone(noteC6, WaveSine, d, a, r, rate),
		tone(noteE6, WaveSine, d, a, r, rate),
		tone(noteG6, WaveSine, d, a, r, rate),
	)
	return newVolume(sequence, cfg.volume(event.SoundBuy))
}

// CreateClickSound generates a short tick for customization changes
func CreateClickSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	click := tone(clickFreq, WaveSquare, constant.ClickSoundDuration, constant.ClickSoundAttack, constant.ClickSoundRelease, rate)
	return newVolume(click, cfg.volume(event.SoundClick))
}

// CreateBombSound generates a noise burst over a low rumble
func CreateBombSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	d, a, r := constant.BombSoundDuration, constant.BombSoundAttack, constant.BombSoundRelease
	mixed := beep.Mix(
		newVolume(tone(0, WaveNoise, d, a, r, rate), 0.6),
		newVolume(tone(bombRumbleFreq, WaveSaw, d, a, r, rate), 0.4),
	)
	// Bound the mix to the envelope length
	return newVolume(beep.Take(rate.N(d), mixed), cfg.volume(event.SoundBomb))
}

// GetSoundEffect returns a fresh streamer for the given sound kind, nil if unknown
func GetSoundEffect(kind event.SoundKind, cfg *AudioConfig) beep.Streamer {
	switch kind {
	case event.SoundCoin:
		return CreateCoinSound(cfg)
	case event.SoundBuy:
		return CreateBuySound(cfg)
	case event.SoundClick:
		return CreateClickSound(cfg)
	case event.SoundBomb:
		return CreateBombSound(cfg)
	default:
		return nil
	}
}
