package score

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/grid-snake/parameter"
)

// ErrMalformed reports undecodable persisted leaderboard data
var ErrMalformed = errors.New("score: malformed leaderboard data")

// Entry is one leaderboard record
type Entry struct {
	Name  string `toml:"name"`
	Score int    `toml:"score"`
}

// leaderboardDTO is the persisted document
type leaderboardDTO struct {
	Entries []Entry `toml:"entries"`
}

// Leaderboard is a bounded list sorted descending by score
type Leaderboard struct {
	store   Store
	key     string
	size    int
	entries []Entry
}

// NewLeaderboard creates an empty board persisted under the default key
func NewLeaderboard(store Store) *Leaderboard {
	return &Leaderboard{
		store: store,
		key:   parameter.LeaderboardKey,
		size:  parameter.LeaderboardSize,
	}
}

// Entries returns a copy of all records
func (l *Leaderboard) Entries() []Entry {
	return slices.Clone(l.entries)
}

// Top returns at most n highest records
func (l *Leaderboard) Top(n int) []Entry {
	if n > len(l.entries) {
		n = len(l.entries)
	}
	if n < 0 {
		n = 0
	}
	return slices.Clone(l.entries[:n])
}

// Qualifies reports whether score would enter the board
func (l *Leaderboard) Qualifies(score int) bool {
	if score <= 0 {
		return false
	}
	if len(l.entries) < l.size {
		return true
	}
	return score > l.entries[len(l.entries)-1].Score
}

// Load replaces the in-memory list with persisted data
// Absent data yields an empty list and nil; malformed data yields an empty list and ErrMalformed
func (l *Leaderboard) Load() error {
	l.entries = nil

	data, err := l.store.Get(l.key)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	var dto leaderboardDTO
	if err := toml.Unmarshal(data, &dto); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	entries := make([]Entry, 0, len(dto.Entries))
	for _, e := range dto.Entries {
		entries = append(entries, normalize(e))
	}
	l.entries = l.merge(entries)
	return nil
}

// Submit merges a record, persists the board and returns its 1-based rank, 0 if it did not place
// The in-memory board is updated even when persistence fails
func (l *Leaderboard) Submit(name string, score int) (int, error) {
	e := normalize(Entry{Name: name, Score: score})

	// Stable merge places the new record after every record with an equal or higher score
	rank := 1
	for _, cur := range l.entries {
		if cur.Score >= e.Score {
			rank++
		}
	}
	if rank > l.size {
		rank = 0
	}

	merged := l.merge(append(slices.Clone(l.entries), e))
	l.entries = merged

	if err := l.save(); err != nil {
		return rank, err
	}
	return rank, nil
}

func (l *Leaderboard) save() error {
	data, err := toml.Marshal(leaderboardDTO{Entries: l.entries})
	if err != nil {
		return err
	}
	return l.store.Put(l.key, data)
}

// merge sorts descending with stable ties and truncates to size
func (l *Leaderboard) merge(entries []Entry) []Entry {
	slices.SortStableFunc(entries, func(a, b Entry) int {
		return cmp.Compare(b.Score, a.Score)
	})
	if len(entries) > l.size {
		entries = entries[:l.size]
	}
	return entries
}

// normalize trims the name to the rune limit and clamps score
func normalize(e Entry) Entry {
	e.Name = strings.TrimSpace(e.Name)
	if utf8.RuneCountInString(e.Name) > parameter.NameMaxLength {
		e.Name = string([]rune(e.Name)[:parameter.NameMaxLength])
	}
	if e.Name == "" {
		e.Name = parameter.DefaultPlayerName
	}
	if e.Score < 0 {
		e.Score = 0
	}
	return e
}
