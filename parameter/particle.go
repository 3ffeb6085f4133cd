package parameter

// Particle System
const (
	// MaxParticles bounds the live particle pool; oldest slots are overwritten when full
	MaxParticles = 2048

	// ParticleGravity is the downward acceleration in cells/sec²
	ParticleGravity = 9.8

	// ParticleFloorY is the ground plane height
	ParticleFloorY = 0.0

	// ParticleFloorCull removes bounced debris once it sinks below this height
	ParticleFloorCull = -0.5
)

// Trail
const (
	TrailDecayRate = 2.5 // life per second
)

// Crash Debris
const (
	CrashParticleCount  = 24
	CrashSpeedMin       = 2.0
	CrashSpeedMax       = 6.0
	CrashUpSpeedMin     = 3.0
	CrashUpSpeedMax     = 7.0
	CrashDecayRate      = 0.35
	CrashRestitution    = 0.45
	CrashSpinMax        = 8.0 // rad/s
	CrashBounceMinSpeed = 0.4 // vertical speed below which a bounce settles
)

// Confetti
const (
	ConfettiCount     = 14
	ConfettiSpeedMax  = 3.0
	ConfettiUpSpeed   = 4.0
	ConfettiGravity   = 0.35 // fraction of ParticleGravity
	ConfettiDecayRate = 1.2
	ConfettiSpinMax   = 10.0
)

// Firework
const (
	FireworkSparkCount = 32
	FireworkSpeed      = 5.0
	FireworkHeight     = 6.0
	FireworkDrag       = 1.6 // velocity damping per second
	FireworkGravity    = 0.25
	FireworkDecayRate  = 0.9
)

// Ghost Wisp
const (
	GhostWispRise      = 1.2 // cells/sec upward drift
	GhostWispSway      = 0.6 // lateral sway amplitude
	GhostWispSwayFreq  = 5.0 // rad/s
	GhostWispDecayRate = 1.5
)
