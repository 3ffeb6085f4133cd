package parameter

import "time"

// Audio Output
const (
	AudioSampleRate   = 44100
	AudioBufferLength = 100 * time.Millisecond
	AudioMasterVolume = 0.5
)

// Cue Durations
const (
	EatSoundDuration     = 70 * time.Millisecond
	CrunchSoundDuration  = 110 * time.Millisecond
	CrashSoundDuration   = 450 * time.Millisecond
	PowerUpNoteDuration  = 80 * time.Millisecond
	LevelUpNoteDuration  = 120 * time.Millisecond
	BoostSoundDuration   = 300 * time.Millisecond
	PauseSoundDuration   = 90 * time.Millisecond
	ClickSoundDuration   = 25 * time.Millisecond
	CueAttack            = 5 * time.Millisecond
	CueRelease           = 40 * time.Millisecond
	CrashRelease         = 350 * time.Millisecond
)

// Ambient Cadence
const (
	CadenceBeatNormal  = 500 * time.Millisecond // 120 BPM
	CadenceBeatBoosted = 300 * time.Millisecond // 200 BPM
	CadenceKickLength  = 90 * time.Millisecond
	CadenceVolume      = 0.35
)
