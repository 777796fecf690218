package engine

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/DoumaAbi/Doumas-Coin-Game/constant"
	"github.com/DoumaAbi/Doumas-Coin-Game/status"
)

// Runner drives a Game from a pausable real-time clock
// Each poll measures elapsed game time and hands it to the scheduler, so the
// simulation rate does not depend on how often the runner wakes up
type Runner struct {
	game  *Game
	clock *PausableClock

	pollInterval time.Duration
	lastElapsed  time.Duration

	// Measurement window for the steps-per-second gauge
	windowStart time.Duration
	windowSteps uint64

	// Cached metric pointers
	statSteps    *atomic.Int64
	statCooldown *atomic.Int64
	statCosmetic *atomic.Int64
	statPaused   *atomic.Bool
	statTPS      *status.AtomicFloat
	statClamped  *status.AtomicFloat
}

// NewRunner creates a runner; the clock's current elapsed time is the starting point
func NewRunner(game *Game, clock *PausableClock, reg *status.Registry) *Runner {
	start := clock.Elapsed()
	return &Runner{
		game:         game,
		clock:        clock,
		pollInterval: constant.RunnerPollInterval,
		lastElapsed:  start,
		windowStart:  start,
		statSteps:    reg.Ints.Get("engine.steps"),
		statCooldown: reg.Ints.Get("engine.cooldown_ticks"),
		statCosmetic: reg.Ints.Get("engine.cosmetic_ticks"),
		statPaused:   reg.Bools.Get("engine.paused"),
		statTPS:      reg.Floats.Get("engine.steps_per_sec"),
		statClamped:  reg.Floats.Get("engine.clamped_ms"),
	}
}

// Clock returns the runner's clock for pause control
func (r *Runner) Clock() *PausableClock {
	return r.clock
}

// Pause freezes game time
func (r *Runner) Pause() {
	r.clock.Pause()
	r.statPaused.Store(true)
}

// Resume continues game time from where it was paused
func (r *Runner) Resume() {
	r.clock.Resume()
	r.statPaused.Store(false)
}

// TogglePause flips the pause state and returns whether the game is now paused
func (r *Runner) TogglePause() bool {
	paused := r.clock.Toggle()
	r.statPaused.Store(paused)
	return paused
}

// Tick advances the game by the game time elapsed since the previous tick
// Returns the number of scheduled task runs
func (r *Runner) Tick() int {
	elapsed := r.clock.Elapsed()
	dt := elapsed - r.lastElapsed
	r.lastElapsed = elapsed
	if dt <= 0 {
		return 0
	}

	var runs int
	var steps, cooldown, cosmetic uint64
	var clamped time.Duration
	r.game.World.RunSafe(func() {
		runs = r.game.Advance(dt)
		steps = r.game.Steps
		cooldown = r.game.CooldownTicks
		cosmetic = r.game.CosmeticTicks
		clamped = r.game.Scheduler.Clamped()
	})

	r.statSteps.Store(int64(steps))
	r.statCooldown.Store(int64(cooldown))
	r.statCosmetic.Store(int64(cosmetic))
	r.statClamped.Set(float64(clamped) / float64(time.Millisecond))

	if window := elapsed - r.windowStart; window >= time.Second {
		r.statTPS.Set(float64(steps-r.windowSteps) / window.Seconds())
		r.windowStart = elapsed
		r.windowSteps = steps
	}
	return runs
}

// Snapshot copies the game state under the world lock
func (r *Runner) Snapshot() Snapshot {
	var snap Snapshot
	r.game.World.RunSafe(func() {
		snap = r.game.Snapshot()
	})
	return snap
}

// FlushSignals drains game signals under the world lock
func (r *Runner) FlushSignals(sounds SoundPlayer, rewards RewardNotifier) int {
	var n int
	r.game.World.RunSafe(func() {
		n = r.game.FlushSignals(sounds, rewards)
	})
	return n
}

// Run polls until the context is cancelled
func (r *Runner) Run(ctx context.Context) error {
	timer := time.NewTimer(r.pollInterval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-timer.C:
		}

		interval := r.pollInterval
		if r.clock.IsPaused() {
			// A paused clock yields zero deltas, poll slower
			interval = constant.RunnerPausedPollInterval
		}
		r.Tick()
		timer.Reset(interval)
	}
}
