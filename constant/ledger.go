package constant

// Speed track
const (
	SpeedBaseCost       = 10
	SpeedMaxLevel       = 5
	SpeedCostMultiplier = 1.8

	// SpeedStepPerLevel is the multiplier gained per level above 1
	SpeedStepPerLevel = 0.5
)

// Magnet track
const (
	MagnetBaseCost       = 120
	MagnetMaxLevel       = 2
	MagnetCostMultiplier = 2.0
)

// More coins track
const (
	MoreCoinsBaseCost       = 50
	MoreCoinsMaxLevel       = 10
	MoreCoinsCostMultiplier = 1.5
)

// One-time purchases
const (
	BombCost             = 400
	RainbowUnlockCost    = 200
	DarkMatterUnlockCost = 300
)
