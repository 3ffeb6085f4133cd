package snake

import (
	"github.com/lixenwraith/grid-snake/core"
)

// InputQueue is a bounded FIFO of pending direction requests
// Each request is validated against the last enqueued direction, or the current one when empty
type InputQueue struct {
	buf      []core.Direction
	capacity int
}

// NewInputQueue creates a queue holding at most capacity requests
func NewInputQueue(capacity int) *InputQueue {
	if capacity < 1 {
		capacity = 1
	}
	return &InputQueue{
		buf:      make([]core.Direction, 0, capacity),
		capacity: capacity,
	}
}

// Enqueue accepts d unless the queue is full, d reverses the reference direction,
// or d repeats it; returns true when accepted
func (q *InputQueue) Enqueue(d, current core.Direction) bool {
	if !d.Valid() || len(q.buf) >= q.capacity {
		return false
	}

	ref := current
	if len(q.buf) > 0 {
		ref = q.buf[len(q.buf)-1]
	}

	if d == ref || d.IsOpposite(ref) {
		return false
	}

	q.buf = append(q.buf, d)
	return true
}

// Dequeue removes and returns the oldest request
func (q *InputQueue) Dequeue() (core.Direction, bool) {
	if len(q.buf) == 0 {
		return 0, false
	}
	d := q.buf[0]
	copy(q.buf, q.buf[1:])
	q.buf = q.buf[:len(q.buf)-1]
	return d, true
}

// Last returns the most recently enqueued request
func (q *InputQueue) Last() (core.Direction, bool) {
	if len(q.buf) == 0 {
		return 0, false
	}
	return q.buf[len(q.buf)-1], true
}

// Pending returns a copy of queued requests in FIFO order
func (q *InputQueue) Pending() []core.Direction {
	out := make([]core.Direction, len(q.buf))
	copy(out, q.buf)
	return out
}

func (q *InputQueue) Len() int {
	return len(q.buf)
}

func (q *InputQueue) Cap() int {
	return q.capacity
}

func (q *InputQueue) Clear() {
	q.buf = q.buf[:0]
}
