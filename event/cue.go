package event

// Cue is a discrete named sound requested from the audio collaborator
type Cue uint8

const (
	CueEat Cue = iota
	CueEatCrunchy
	CueCrash
	CuePowerUp
	CueLevelUp
	CueBoostStart
	CuePause
	CueResume
	CueClick
)

func (c Cue) String() string {
	switch c {
	case CueEat:
		return "eat"
	case CueEatCrunchy:
		return "eat-crunchy"
	case CueCrash:
		return "crash"
	case CuePowerUp:
		return "power-up"
	case CueLevelUp:
		return "level-up"
	case CueBoostStart:
		return "boost-start"
	case CuePause:
		return "pause"
	case CueResume:
		return "resume"
	case CueClick:
		return "click"
	default:
		return "unknown"
	}
}
