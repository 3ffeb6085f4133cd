package parameter

// Food
const (
	// FoodPrimaryValue is the score value of a primary food
	FoodPrimaryValue = 100

	// FoodSecondaryValue is the score value of a secondary (crunchy) food
	FoodSecondaryValue = 150

	// FoodSecondaryChance is the per-spawn probability of a secondary food
	FoodSecondaryChance = 0.25

	// SpawnRetryBudget caps placement attempts before the last candidate is accepted
	SpawnRetryBudget = 100
)

// Power-up
const (
	// PowerUpSpawnChance is the chance of a power-up after each food replenishment
	PowerUpSpawnChance = 0.30

	// PowerUpWeightBonus/Invulnerability/Speed form the kind distribution (sum 100)
	PowerUpWeightBonus           = 40
	PowerUpWeightInvulnerability = 30
	PowerUpWeightSpeed           = 30

	// PowerUpBonusPoints is the score increment of the bonus points power-up
	PowerUpBonusPoints = 500
)
