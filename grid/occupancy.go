package grid

import "github.com/lixenwraith/grid-snake/core"

// Occupancy is a set of cells held by the snake, live food or the live power-up
type Occupancy struct {
	cells map[core.Cell]struct{}
}

// NewOccupancy creates an empty set with room for hint cells
func NewOccupancy(hint int) *Occupancy {
	return &Occupancy{cells: make(map[core.Cell]struct{}, hint)}
}

func (o *Occupancy) Add(c core.Cell) {
	o.cells[c] = struct{}{}
}

func (o *Occupancy) AddAll(cells []core.Cell) {
	for _, c := range cells {
		o.cells[c] = struct{}{}
	}
}

func (o *Occupancy) Remove(c core.Cell) {
	delete(o.cells, c)
}

func (o *Occupancy) Has(c core.Cell) bool {
	_, ok := o.cells[c]
	return ok
}

func (o *Occupancy) Len() int {
	return len(o.cells)
}

// Reset empties the set while keeping its allocation
func (o *Occupancy) Reset() {
	clear(o.cells)
}
