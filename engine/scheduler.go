package engine

import (
	"slices"
	"time"
)

// Action is a scheduled one-shot callback invoked with the drain time
// Actions must re-check game mode before acting; entries are not revoked by transitions
type Action func(now time.Time)

type scheduled struct {
	fireAt time.Time
	seq    uint64
	action Action
}

// Scheduler is a deterministic (fireAt, action) list drained against the game clock
type Scheduler struct {
	entries []scheduled
	seq     uint64
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// After schedules fn at now+d
func (s *Scheduler) After(now time.Time, d time.Duration, fn Action) {
	s.seq++
	s.entries = append(s.entries, scheduled{fireAt: now.Add(d), seq: s.seq, action: fn})
}

// Drain runs every entry due at or before now in (fireAt, insertion) order
// Entries scheduled by a running action wait for the next drain
func (s *Scheduler) Drain(now time.Time) int {
	if len(s.entries) == 0 {
		return 0
	}

	var due, pending []scheduled
	for _, e := range s.entries {
		if !e.fireAt.After(now) {
			due = append(due, e)
		} else {
			pending = append(pending, e)
		}
	}
	if len(due) == 0 {
		return 0
	}
	s.entries = pending

	slices.SortFunc(due, func(a, b scheduled) int {
		if c := a.fireAt.Compare(b.fireAt); c != 0 {
			return c
		}
		if a.seq < b.seq {
			return -1
		}
		return 1
	})
	for _, e := range due {
		e.action(now)
	}
	return len(due)
}

// Clear drops all pending entries
func (s *Scheduler) Clear() {
	s.entries = nil
}

// Len returns the pending entry count
func (s *Scheduler) Len() int {
	return len(s.entries)
}
