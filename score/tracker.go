// Package score tracks the running score, the level-start checkpoint and the leaderboard
package score

// Tracker holds the current score and the checkpoint restored on retry
type Tracker struct {
	score    int
	snapshot int
}

func NewTracker() *Tracker {
	return &Tracker{}
}

func (t *Tracker) Score() int {
	return t.score
}

// Add increments the score; negative deltas are ignored
func (t *Tracker) Add(n int) int {
	if n > 0 {
		t.score += n
	}
	return t.score
}

// TakeSnapshot records the current score as the level-start checkpoint
func (t *Tracker) TakeSnapshot() {
	t.snapshot = t.score
}

// Snapshot returns the level-start checkpoint
func (t *Tracker) Snapshot() int {
	return t.snapshot
}

// Rollback restores the level-start checkpoint
func (t *Tracker) Rollback() {
	t.score = t.snapshot
}

// Reset zeroes score and checkpoint for a new run
func (t *Tracker) Reset() {
	t.score = 0
	t.snapshot = 0
}
