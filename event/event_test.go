package event

import (
	"testing"

	"github.com/lixenwraith/grid-snake/parameter"
)

type recordingHandler struct {
	types []EventType
	got   []GameEvent
}

func (h *recordingHandler) EventTypes() []EventType { return h.types }

func (h *recordingHandler) HandleEvent(_ Frame, ev GameEvent) {
	h.got = append(h.got, ev)
}

func TestQueueFIFO(t *testing.T) {
	q := NewEventQueue()
	for i := 0; i < 3; i++ {
		q.Push(GameEvent{Type: EventTrail, Tick: uint64(i)})
	}
	if q.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", q.Len())
	}

	got := q.Consume()
	for i, ev := range got {
		if ev.Tick != uint64(i) {
			t.Errorf("event %d tick = %d", i, ev.Tick)
		}
	}
	if q.Consume() != nil {
		t.Error("second Consume must be empty")
	}
}

func TestQueueOverflowDropsOldest(t *testing.T) {
	q := NewEventQueue()
	total := parameter.EventQueueSize + 10
	for i := 0; i < total; i++ {
		q.Push(GameEvent{Tick: uint64(i)})
	}

	got := q.Consume()
	if len(got) != parameter.EventQueueSize {
		t.Fatalf("Consume len = %d, want %d", len(got), parameter.EventQueueSize)
	}
	if got[0].Tick != 10 {
		t.Errorf("oldest retained tick = %d, want 10", got[0].Tick)
	}
	if got[len(got)-1].Tick != uint64(total-1) {
		t.Errorf("newest tick = %d, want %d", got[len(got)-1].Tick, total-1)
	}
}

func TestRouterDispatchByType(t *testing.T) {
	q := NewEventQueue()
	r := NewRouter[Frame](q)

	crash := &recordingHandler{types: []EventType{EventCrash}}
	both := &recordingHandler{types: []EventType{EventCrash, EventCue}}
	r.Register(crash)
	r.Register(both)

	q.Push(GameEvent{Type: EventCue, Payload: &CuePayload{Cue: CueEat}})
	q.Push(GameEvent{Type: EventCrash, Payload: &CrashPayload{Wall: true}})
	q.Push(GameEvent{Type: EventTrail})

	if n := r.DispatchAll(Frame{}); n != 3 {
		t.Errorf("DispatchAll consumed %d, want 3", n)
	}
	if len(crash.got) != 1 || crash.got[0].Type != EventCrash {
		t.Errorf("crash handler got %v", crash.got)
	}
	if len(both.got) != 2 || both.got[0].Type != EventCue {
		t.Errorf("multi handler got %v, want cue then crash", both.got)
	}
	if r.HasHandlers(EventTrail) {
		t.Error("no handler registered for trail")
	}
	if r.HandlerCount(EventCrash) != 2 {
		t.Errorf("HandlerCount(crash) = %d", r.HandlerCount(EventCrash))
	}
}

func TestEnumStrings(t *testing.T) {
	if EventLevelUp.String() != "LevelUp" {
		t.Errorf("EventLevelUp.String() = %q", EventLevelUp.String())
	}
	if EventType(99).String() != "Unknown" {
		t.Error("out of range type must be Unknown")
	}
	if CueEatCrunchy.String() != "eat-crunchy" {
		t.Errorf("CueEatCrunchy.String() = %q", CueEatCrunchy.String())
	}
}
