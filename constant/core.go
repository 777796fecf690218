package constant

import "time"

// Simulation Cadence
const (
	// StepRate is the fixed simulation step frequency (steps per second)
	StepRate = 120

	// StepInterval is the virtual time covered by one simulation step
	StepInterval = time.Second / StepRate

	// CooldownTickInterval is the low-rate periodic tick driving bomb cooldown (10Hz)
	CooldownTickInterval = 100 * time.Millisecond

	// CosmeticTickInterval is the periodic tick driving visual animation counters (~60Hz)
	CosmeticTickInterval = time.Second / 60

	// MaxFrameDelta caps the virtual time a single Advance call may replay
	MaxFrameDelta = 250 * time.Millisecond
)

// Runner & Presentation Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// RunnerPollInterval is how often the real-time runner advances the simulation
	RunnerPollInterval = 4 * time.Millisecond

	// RunnerPausedPollInterval is the runner sleep while paused
	RunnerPausedPollInterval = 50 * time.Millisecond

	// KeyHoldTimeout is how long a terminal direction key stays held without a repeat
	KeyHoldTimeout = 150 * time.Millisecond

	// RewardBannerDuration is how long a level reward message stays on screen
	RewardBannerDuration = 3 * time.Second
)

// Queue Limits
const (
	// EventQueueSize is the fixed capacity of the command/signal ring buffers
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255
)
