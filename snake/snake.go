// Package snake holds the ordered body, direction state and buffered turn requests
package snake

import (
	"github.com/lixenwraith/grid-snake/core"
)

// Role tags a segment for the rendering collaborator
type Role uint8

const (
	RoleHead Role = iota
	RoleBody
	RoleTail
)

func (r Role) String() string {
	switch r {
	case RoleHead:
		return "Head"
	case RoleBody:
		return "Body"
	case RoleTail:
		return "Tail"
	default:
		return "Unknown"
	}
}

// Segment is one body cell with its render role
type Segment struct {
	Cell core.Cell
	Role Role
}

// Snake is a non-empty ordered cell sequence, head at index 0
type Snake struct {
	body      []core.Cell
	direction core.Direction
}

// New lays out a snake of length cells with the head at head, trailing opposite to dir
func New(head core.Cell, dir core.Direction, length int) *Snake {
	s := &Snake{}
	s.Reset(head, dir, length)
	return s
}

// Reset re-lays the snake in place
func (s *Snake) Reset(head core.Cell, dir core.Direction, length int) {
	if length < 1 {
		length = 1
	}
	s.body = s.body[:0]
	s.direction = dir

	back := dir.Opposite()
	c := head
	for i := 0; i < length; i++ {
		s.body = append(s.body, c)
		c = c.Add(back)
	}
}

// Head returns the head cell
func (s *Snake) Head() core.Cell {
	return s.body[0]
}

// Tail returns the last cell
func (s *Snake) Tail() core.Cell {
	return s.body[len(s.body)-1]
}

// Len returns the segment count
func (s *Snake) Len() int {
	return len(s.body)
}

// Direction returns the direction applied on the last tick (or the initial heading)
func (s *Snake) Direction() core.Direction {
	return s.direction
}

// SetDirection makes d the current direction; callers validate reversal beforehand
func (s *Snake) SetDirection(d core.Direction) {
	s.direction = d
}

// Next returns the cell the head moves into with the current direction
func (s *Snake) Next() core.Cell {
	return s.body[0].Add(s.direction)
}

// Contains reports whether any segment occupies c
func (s *Snake) Contains(c core.Cell) bool {
	for _, b := range s.body {
		if b == c {
			return true
		}
	}
	return false
}

// Advance prepends next as the new head and drops the tail unless grow is set
// Returns the vacated cell and whether a cell was vacated
func (s *Snake) Advance(next core.Cell, grow bool) (core.Cell, bool) {
	s.body = append(s.body, core.Cell{})
	copy(s.body[1:], s.body[:len(s.body)-1])
	s.body[0] = next

	if grow {
		return core.Cell{}, false
	}

	vacated := s.body[len(s.body)-1]
	s.body = s.body[:len(s.body)-1]
	return vacated, true
}

// Cells returns a copy of the body, head first
func (s *Snake) Cells() []core.Cell {
	out := make([]core.Cell, len(s.body))
	copy(out, s.body)
	return out
}

// Segments returns the body tagged with head/body/tail roles
func (s *Snake) Segments() []Segment {
	out := make([]Segment, len(s.body))
	last := len(s.body) - 1
	for i, c := range s.body {
		role := RoleBody
		switch {
		case i == 0:
			role = RoleHead
		case i == last:
			role = RoleTail
		}
		out[i] = Segment{Cell: c, Role: role}
	}
	return out
}

// SelfIntersecting reports whether two segments share a cell
func (s *Snake) SelfIntersecting() bool {
	seen := make(map[core.Cell]struct{}, len(s.body))
	for _, c := range s.body {
		if _, ok := seen[c]; ok {
			return true
		}
		seen[c] = struct{}{}
	}
	return false
}

// ContainsExceptTail reports whether any segment other than the tail occupies c
func (s *Snake) ContainsExceptTail(c core.Cell) bool {
	for _, b := range s.body[:len(s.body)-1] {
		if b == c {
			return true
		}
	}
	return false
}

// Restore replaces the body with a copy of cells and sets the direction
// Ignored when cells is empty
func (s *Snake) Restore(cells []core.Cell, dir core.Direction) {
	if len(cells) == 0 {
		return
	}
	s.body = append(s.body[:0], cells...)
	s.direction = dir
}
