package core

import "fmt"

// Cell is an integer grid coordinate on the XZ plane
type Cell struct {
	X, Z int
}

// Add returns the cell one step away in direction d
func (c Cell) Add(d Direction) Cell {
	dx, dz := d.Delta()
	return Cell{X: c.X + dx, Z: c.Z + dz}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Z)
}
