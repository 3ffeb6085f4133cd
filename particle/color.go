package particle

import "github.com/lixenwraith/grid-snake/spawn"

// Color is a packed 0xRRGGBB value
type Color uint32

// RGB unpacks the channels
func (c Color) RGB() (r, g, b int32) {
	return int32(c>>16) & 0xFF, int32(c>>8) & 0xFF, int32(c) & 0xFF
}

// Palette shared with the renderer
const (
	ColorTrail     Color = 0x3A6B35
	ColorDebris    Color = 0xE04A3F
	ColorPrimary   Color = 0xF2C14E
	ColorSecondary Color = 0xF78154
	ColorBonus     Color = 0xFFD700
	ColorGhost     Color = 0x9AD1F5
	ColorSpeed     Color = 0x7CFC00
)

var fireworkPalette = [...]Color{0xFF5E5B, 0xFFED66, 0x00CECB, 0xD8D8D8, 0xB388EB}

// FoodColor returns the confetti color for a food kind
func FoodColor(k spawn.FoodKind) Color {
	switch k {
	case spawn.FoodSecondary:
		return ColorSecondary
	default:
		return ColorPrimary
	}
}

// PowerUpColor returns the confetti color for a power-up kind
func PowerUpColor(k spawn.PowerUpKind) Color {
	switch k {
	case spawn.PowerUpInvulnerability:
		return ColorGhost
	case spawn.PowerUpSpeedBoost:
		return ColorSpeed
	default:
		return ColorBonus
	}
}
