package parameter

import "time"

// Status Effects
const (
	// InvulnerabilityDuration is how long self-collision is ignored after pickup
	InvulnerabilityDuration = 10 * time.Second

	// SpeedBoostDuration is how long the boost interval overrides the base interval
	SpeedBoostDuration = 8 * time.Second

	// PulseDuration is the cosmetic pulse window armed with speed boost
	PulseDuration = 600 * time.Millisecond
)
