package render

import (
	"github.com/lixenwraith/grid-snake/particle"
	"github.com/lixenwraith/grid-snake/spawn"
)

// Palette
var (
	RgbBackground = RGB{26, 27, 38}    // Tokyo Night background
	RgbBoard      = RGB{31, 33, 46}    // Playfield floor
	RgbBorder     = RGB{122, 162, 247} // Border blue
	RgbText       = RGB{192, 202, 245}
	RgbTextDim    = RGB{86, 95, 137}
	RgbHighlight  = RGB{255, 158, 100}

	RgbHead      = RGB{158, 206, 106}
	RgbBody      = RGB{115, 170, 80}
	RgbTail      = RGB{70, 120, 55}
	RgbGhost     = FromPacked(particle.ColorGhost)
	RgbBoostPeak = RGB{230, 255, 140}

	RgbPrimary   = FromPacked(particle.ColorPrimary)
	RgbSecondary = FromPacked(particle.ColorSecondary)
	RgbBonus     = FromPacked(particle.ColorBonus)
	RgbSpeed     = FromPacked(particle.ColorSpeed)

	RgbOverlayBg  = RGB{16, 17, 26}
	RgbGameOver   = RGB{247, 118, 142}
	RgbPaused     = RGB{224, 175, 104}
	RgbLevelUp    = RGB{187, 154, 247}
	RgbMuted      = RGB{255, 80, 80}
	RgbUnmuted    = RGB{80, 200, 120}
	RgbStatusText = RGB{0, 0, 0}
)

// FoodRGB returns the display color for a food kind
func FoodRGB(k spawn.FoodKind) RGB {
	if k == spawn.FoodSecondary {
		return RgbSecondary
	}
	return RgbPrimary
}

// PowerUpRGB returns the display color for a power-up kind
func PowerUpRGB(k spawn.PowerUpKind) RGB {
	switch k {
	case spawn.PowerUpInvulnerability:
		return RgbGhost
	case spawn.PowerUpSpeedBoost:
		return RgbSpeed
	default:
		return RgbBonus
	}
}
