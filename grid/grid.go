// Package grid provides the bounded integer playfield and occupancy queries
package grid

import (
	"github.com/lixenwraith/grid-snake/core"
)

// RNG is the random source used for cell selection
type RNG interface {
	Intn(n int) int
}

// World is a square playfield of size N with cells in [-N/2, N/2) on both axes
type World struct {
	size int
	min  int
	max  int // exclusive
}

// New creates a world of the given side length
func New(size int) *World {
	if size < 1 {
		size = 1
	}
	lo := -size / 2
	return &World{
		size: size,
		min:  lo,
		max:  lo + size,
	}
}

// Size returns the side length
func (w *World) Size() int {
	return w.size
}

// Min returns the lowest valid coordinate on either axis
func (w *World) Min() int {
	return w.min
}

// Max returns the exclusive upper coordinate bound
func (w *World) Max() int {
	return w.max
}

// Contains reports whether c lies within bounds
func (w *World) Contains(c core.Cell) bool {
	return c.X >= w.min && c.X < w.max && c.Z >= w.min && c.Z < w.max
}

// CellCount returns the total number of cells
func (w *World) CellCount() int {
	return w.size * w.size
}

// RandomCell returns a uniformly random in-bounds cell
func (w *World) RandomCell(rng RNG) core.Cell {
	return core.Cell{
		X: w.min + rng.Intn(w.size),
		Z: w.min + rng.Intn(w.size),
	}
}
