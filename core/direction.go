package core

// Direction is one of the four axis-aligned unit moves
type Direction uint8

const (
	DirUp    Direction = iota // (0,-1)
	DirDown                   // (0,1)
	DirLeft                   // (-1,0)
	DirRight                  // (1,0)
)

// Delta returns the (dx, dz) offset for one step
func (d Direction) Delta() (dx, dz int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the 180° reversal of d
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return d
	}
}

// IsOpposite reports whether o is the exact negation of d
func (d Direction) IsOpposite(o Direction) bool {
	return d.Valid() && o.Valid() && d.Opposite() == o
}

// Valid reports whether d is one of the four defined directions
func (d Direction) Valid() bool {
	return d <= DirRight
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "Unknown"
	}
}
