package core

import "testing"

func TestDirectionDelta(t *testing.T) {
	tests := []struct {
		dir    Direction
		dx, dz int
	}{
		{DirUp, 0, -1},
		{DirDown, 0, 1},
		{DirLeft, -1, 0},
		{DirRight, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			dx, dz := tt.dir.Delta()
			if dx != tt.dx || dz != tt.dz {
				t.Errorf("%v.Delta() = (%d,%d), want (%d,%d)", tt.dir, dx, dz, tt.dx, tt.dz)
			}

			// Opposite must negate the delta exactly
			ox, oz := tt.dir.Opposite().Delta()
			if ox != -dx || oz != -dz {
				t.Errorf("%v.Opposite() delta = (%d,%d), want (%d,%d)", tt.dir, ox, oz, -dx, -dz)
			}
		})
	}
}

func TestDirectionIsOpposite(t *testing.T) {
	if !DirUp.IsOpposite(DirDown) {
		t.Error("Up should be opposite of Down")
	}
	if !DirLeft.IsOpposite(DirRight) {
		t.Error("Left should be opposite of Right")
	}
	if DirUp.IsOpposite(DirLeft) {
		t.Error("Up should not be opposite of Left")
	}
	if DirUp.IsOpposite(DirUp) {
		t.Error("Up should not be opposite of itself")
	}
	if Direction(9).IsOpposite(DirUp) {
		t.Error("Invalid direction should never be opposite")
	}
}

func TestCellAdd(t *testing.T) {
	c := Cell{X: 0, Z: 0}
	if got := c.Add(DirUp); got != (Cell{X: 0, Z: -1}) {
		t.Errorf("Add(Up) = %v, want (0,-1)", got)
	}
	if got := c.Add(DirRight).Add(DirRight); got != (Cell{X: 2, Z: 0}) {
		t.Errorf("Add(Right)x2 = %v, want (2,0)", got)
	}
	if got := (Cell{X: 3, Z: -4}).String(); got != "(3,-4)" {
		t.Errorf("String() = %q, want %q", got, "(3,-4)")
	}
}
