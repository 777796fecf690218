package constant

// Canvas defaults
const (
	DefaultCanvasWidth  = 800
	DefaultCanvasHeight = 600
)

// Player
const (
	PlayerWidth  = 30
	PlayerHeight = 40

	// PlayerBaseSpeed is the per-step displacement of the movement target before multiplier
	PlayerBaseSpeed = 4.0

	// PlayerSmoothing is the fraction of the remaining distance covered each step
	PlayerSmoothing = 0.3
)

// Coins
const (
	CoinSize = 20

	// CoinBaseCount is the coin set size at moreCoins level 1
	CoinBaseCount = 10

	// CoinCountPerLevel is added to the coin set for each moreCoins level above 1
	CoinCountPerLevel = 5

	// CoinRotationStep is the per-cosmetic-tick rotation advance (radians)
	CoinRotationStep = 0.02

	// CoinFloatStep is the per-cosmetic-tick float phase advance (radians)
	CoinFloatStep = 0.05

	// CoinFloatAmplitude scales the sine of the float phase into the coin scale
	CoinFloatAmplitude = 0.1
)

// Collection FX
const (
	// CollectFXTargetX/Y is the on-screen anchor of the currency readout
	CollectFXTargetX = 50.0
	CollectFXTargetY = 50.0

	// CollectFXDecay is the life and scale lost per cosmetic tick
	CollectFXDecay = 0.03
)

// Leveling
const (
	// CoinsPerLevel is the balance step between levels
	CoinsPerLevel = 10

	// RewardLevelInterval is the level spacing of threshold rewards beyond level 100
	RewardLevelInterval = 25

	// RewardPerInterval scales floor(level/25) for rewards beyond level 100
	RewardPerInterval = 20
)

// Magnet
const (
	MagnetRadiusLevel1 = 80.0
	MagnetRadiusLevel2 = 150.0

	// MagnetGain is the fraction of the offset to the player closed per step at full strength
	MagnetGain = 0.08
)

// Bomb
const (
	// BombCooldown is the cooldown in seconds set on activation
	BombCooldown = 45.0

	// BombCooldownStep is subtracted on every cooldown tick
	BombCooldownStep = 0.1

	// BombParticleCount is the number of particles spawned on activation
	BombParticleCount = 80

	// BombParticleSpeed is the full width of the per-axis velocity range centered on zero
	BombParticleSpeed = 15.0

	// BombParticleMinSize and BombParticleSizeRange bound particle size to [2, 6)
	BombParticleMinSize   = 2.0
	BombParticleSizeRange = 4.0

	// BombParticleDecay is the particle life lost per step
	BombParticleDecay = 0.02

	// BombGravity is added to particle vertical velocity per step
	BombGravity = 0.1

	// BombRadiusStep is the explosion ring growth per step
	BombRadiusStep = 20.0

	// BombMaxRadius caps the ring and bounds the collection pulse
	BombMaxRadius = 300.0
)
