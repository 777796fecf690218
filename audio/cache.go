package audio

import (
	"sync"

	"github.com/gopxl/beep"

	"github.com/DoumaAbi/Doumas-Coin-Game/event"
)

// soundCache stores one pre-rendered buffer per sound kind at the configured gain
type soundCache struct {
	mu     sync.RWMutex
	cfg    *AudioConfig
	format beep.Format
	store  [event.SoundKindCount]*beep.Buffer
}

func newSoundCache(cfg *AudioConfig) *soundCache {
	return &soundCache{
		cfg: cfg,
		format: beep.Format{
			SampleRate:  beep.SampleRate(cfg.SampleRate),
			NumChannels: 2,
			Precision:   2,
		},
	}
}

// get returns the cached buffer or renders it on demand
func (c *soundCache) get(kind event.SoundKind) *beep.Buffer {
	if kind >= event.SoundKindCount {
		return nil
	}

	c.mu.RLock()
	buf := c.store[kind]
	c.mu.RUnlock()
	if buf != nil {
		return buf
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring write lock
	if c.store[kind] != nil {
		return c.store[kind]
	}

	buf = beep.NewBuffer(c.format)
	buf.Append(GetSoundEffect(kind, c.cfg))
	c.store[kind] = buf
	return buf
}

// preload renders every sound so the first play does not stall the caller
func (c *soundCache) preload() {
	for kind := event.SoundKind(0); kind < event.SoundKindCount; kind++ {
		c.get(kind)
	}
}
