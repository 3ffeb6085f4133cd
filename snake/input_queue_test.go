package snake

import (
	"testing"

	"github.com/lixenwraith/grid-snake/core"
)

func TestInputQueueRejectsReversalOfCurrent(t *testing.T) {
	q := NewInputQueue(3)

	if q.Enqueue(core.DirDown, core.DirUp) {
		t.Error("reversal of current direction must be rejected")
	}
	if q.Len() != 0 {
		t.Errorf("rejected request must not appear in queue, Len() = %d", q.Len())
	}
	if !q.Enqueue(core.DirLeft, core.DirUp) {
		t.Error("perpendicular request must be accepted")
	}
}

func TestInputQueueValidatesAgainstLastQueued(t *testing.T) {
	q := NewInputQueue(3)

	// Moving up: queue Left, then Right is a reversal of the queued Left
	if !q.Enqueue(core.DirLeft, core.DirUp) {
		t.Fatal("Left should be accepted")
	}
	if q.Enqueue(core.DirRight, core.DirUp) {
		t.Error("Right reverses last queued Left and must be rejected")
	}
	// Down reverses current Up but not last queued Left
	if !q.Enqueue(core.DirDown, core.DirUp) {
		t.Error("Down is perpendicular to last queued Left and must be accepted")
	}

	got := q.Pending()
	want := []core.Direction{core.DirLeft, core.DirDown}
	if len(got) != len(want) {
		t.Fatalf("Pending() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Pending()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestInputQueueCapacityAndFIFO(t *testing.T) {
	q := NewInputQueue(3)
	seq := []core.Direction{core.DirLeft, core.DirUp, core.DirRight}
	cur := core.DirDown

	// Down current: Left ok, Up ok (vs Left), Right ok (vs Up)
	for _, d := range seq {
		if !q.Enqueue(d, cur) {
			t.Fatalf("Enqueue(%v) rejected", d)
		}
	}
	if q.Enqueue(core.DirDown, cur) {
		t.Error("full queue must reject further requests")
	}

	for i, want := range seq {
		d, ok := q.Dequeue()
		if !ok || d != want {
			t.Errorf("Dequeue #%d = %v,%v, want %v,true", i, d, ok, want)
		}
	}
	if _, ok := q.Dequeue(); ok {
		t.Error("empty queue Dequeue must report false")
	}
}

func TestInputQueueRejectsDuplicateAndInvalid(t *testing.T) {
	q := NewInputQueue(3)
	if q.Enqueue(core.DirUp, core.DirUp) {
		t.Error("repeat of current direction consumes no slot")
	}
	if q.Enqueue(core.Direction(42), core.DirUp) {
		t.Error("invalid direction must be rejected")
	}
	q.Enqueue(core.DirLeft, core.DirUp)
	q.Clear()
	if q.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", q.Len())
	}
	if _, ok := q.Last(); ok {
		t.Error("Last() on empty queue must report false")
	}
}
