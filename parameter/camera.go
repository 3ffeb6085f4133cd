package parameter

// Camera
const (
	// CameraFollowRate is the exponential follow rate toward the target (1/sec)
	CameraFollowRate = 4.0

	// CameraShakeDecay is the exponential shake decay rate (1/sec)
	CameraShakeDecay = 3.0

	// CameraShakeCrash is the shake magnitude applied on collision
	CameraShakeCrash = 1.0

	// CameraShakeLevelUp is the shake magnitude applied on level-up
	CameraShakeLevelUp = 0.25

	// CameraShakeFrequency is the oscillation rate of the shake offset (rad/s)
	CameraShakeFrequency = 40.0

	// CameraShakeEpsilon drops residual shake below this magnitude
	CameraShakeEpsilon = 0.01
)
