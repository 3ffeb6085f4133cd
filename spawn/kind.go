package spawn

import "github.com/lixenwraith/grid-snake/parameter"

// FoodKind is the closed set of food variants
type FoodKind uint8

const (
	FoodPrimary FoodKind = iota
	FoodSecondary
)

// Value returns the score awarded on consumption
func (k FoodKind) Value() int {
	switch k {
	case FoodSecondary:
		return parameter.FoodSecondaryValue
	default:
		return parameter.FoodPrimaryValue
	}
}

func (k FoodKind) String() string {
	switch k {
	case FoodPrimary:
		return "primary"
	case FoodSecondary:
		return "secondary"
	default:
		return "unknown"
	}
}

// PowerUpKind is the closed set of power-up variants
type PowerUpKind uint8

const (
	PowerUpBonusPoints PowerUpKind = iota
	PowerUpInvulnerability
	PowerUpSpeedBoost
)

func (k PowerUpKind) String() string {
	switch k {
	case PowerUpBonusPoints:
		return "bonus_points"
	case PowerUpInvulnerability:
		return "invulnerability"
	case PowerUpSpeedBoost:
		return "speed_boost"
	default:
		return "unknown"
	}
}

// powerUpWeights is indexed by PowerUpKind
var powerUpWeights = [...]int{
	PowerUpBonusPoints:     parameter.PowerUpWeightBonus,
	PowerUpInvulnerability: parameter.PowerUpWeightInvulnerability,
	PowerUpSpeedBoost:      parameter.PowerUpWeightSpeed,
}
