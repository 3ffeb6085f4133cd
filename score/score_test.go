package score

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/grid-snake/parameter"
)

func TestTrackerSnapshotRollback(t *testing.T) {
	tr := NewTracker()
	tr.Add(300)
	tr.TakeSnapshot()
	tr.Add(100)
	tr.Add(-50)

	if tr.Score() != 400 {
		t.Errorf("Score() = %d, want 400", tr.Score())
	}
	tr.Rollback()
	if tr.Score() != 300 || tr.Snapshot() != 300 {
		t.Errorf("after Rollback score=%d snapshot=%d, want 300/300", tr.Score(), tr.Snapshot())
	}
	tr.Reset()
	if tr.Score() != 0 || tr.Snapshot() != 0 {
		t.Error("Reset must zero score and snapshot")
	}
}

func TestLeaderboardSubmitSortsAndTruncates(t *testing.T) {
	lb := NewLeaderboard(NewMemoryStore())

	scores := []int{300, 900, 100, 500, 700, 200}
	for _, s := range scores {
		lb.Submit("p", s)
	}

	got := lb.Entries()
	want := []int{900, 700, 500, 300, 200}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Score != want[i] {
			t.Errorf("entry %d = %d, want %d", i, got[i].Score, want[i])
		}
	}

	if top := lb.Top(parameter.LeaderboardDisplaySize); len(top) != 3 || top[0].Score != 900 {
		t.Errorf("Top(3) = %v", top)
	}
}

func TestLeaderboardRank(t *testing.T) {
	lb := NewLeaderboard(NewMemoryStore())
	tests := []struct {
		score int
		rank  int
	}{
		{500, 1},
		{800, 1},
		{500, 3}, // tie goes after the existing 500
		{100, 4},
		{50, 5},
		{10, 0}, // board full, below last
		{600, 2},
	}
	for _, tt := range tests {
		rank, err := lb.Submit("x", tt.score)
		if err != nil {
			t.Fatalf("Submit: %v", err)
		}
		if rank != tt.rank {
			t.Errorf("Submit(%d) rank = %d, want %d", tt.score, rank, tt.rank)
		}
	}
}

func TestLeaderboardQualifies(t *testing.T) {
	lb := NewLeaderboard(NewMemoryStore())
	if lb.Qualifies(0) {
		t.Error("zero score must not qualify")
	}
	if !lb.Qualifies(1) {
		t.Error("any positive score qualifies on a non-full board")
	}
	for i := 1; i <= 5; i++ {
		lb.Submit("p", i*100)
	}
	if lb.Qualifies(100) {
		t.Error("score equal to last entry on a full board must not qualify")
	}
	if !lb.Qualifies(101) {
		t.Error("score above last entry must qualify")
	}
}

func TestLeaderboardNormalizesNames(t *testing.T) {
	lb := NewLeaderboard(NewMemoryStore())
	lb.Submit("   ", 10)
	lb.Submit("abcdefghijklmnop", 20)
	lb.Submit("ünïcødé-name", -5)

	e := lb.Entries()
	if e[0].Name != "abcdefghij" {
		t.Errorf("long name = %q, want trimmed to 10 runes", e[0].Name)
	}
	if e[1].Name != "anon" {
		t.Errorf("blank name = %q, want anon", e[1].Name)
	}
	if e[2].Score != 0 || e[2].Name != "ünïcødé-na" {
		t.Errorf("entry = %+v, want clamped score and rune-trimmed name", e[2])
	}
}

func TestLeaderboardRoundTripIdempotent(t *testing.T) {
	store := NewMemoryStore()
	lb := NewLeaderboard(store)
	for _, s := range []int{40, 10, 30, 60, 20, 50} {
		lb.Submit("p", s)
	}

	fresh := NewLeaderboard(store)
	for i := 0; i < 3; i++ {
		if err := fresh.Load(); err != nil {
			t.Fatalf("Load #%d: %v", i, err)
		}
		got := fresh.Entries()
		if len(got) != 5 {
			t.Fatalf("Load #%d len = %d, want 5", i, len(got))
		}
		for j := 1; j < len(got); j++ {
			if got[j].Score > got[j-1].Score {
				t.Fatalf("Load #%d not sorted descending: %v", i, got)
			}
		}
		if got[0].Score != 60 || got[4].Score != 20 {
			t.Errorf("Load #%d = %v", i, got)
		}
	}
}

func TestLeaderboardMalformedAndAbsent(t *testing.T) {
	store := NewMemoryStore()
	lb := NewLeaderboard(store)

	if err := lb.Load(); err != nil {
		t.Errorf("absent data Load err = %v, want nil", err)
	}
	if len(lb.Entries()) != 0 {
		t.Error("absent data must yield empty board")
	}

	store.Put(parameter.LeaderboardKey, []byte("[[entries]\nname = "))
	err := lb.Load()
	if !errors.Is(err, ErrMalformed) {
		t.Errorf("malformed Load err = %v, want ErrMalformed", err)
	}
	if len(lb.Entries()) != 0 {
		t.Error("malformed data must yield empty board")
	}

	// Valid document with unsorted, oversized content is normalized on load
	doc := `
[[entries]]
name = "a"
score = 10

[[entries]]
name = "b"
score = -3

[[entries]]
name = "c"
score = 90
`
	store.Put(parameter.LeaderboardKey, []byte(doc))
	if err := lb.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	got := lb.Entries()
	if len(got) != 3 || got[0].Name != "c" || got[2].Score != 0 {
		t.Errorf("normalized load = %v", got)
	}
}

func TestFileStore(t *testing.T) {
	dir := t.TempDir()
	fs := NewFileStore(filepath.Join(dir, "data"))

	if _, err := fs.Get("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get missing err = %v, want ErrNotFound", err)
	}

	lb := NewLeaderboard(fs)
	if _, err := lb.Submit("file", 1234); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if _, err := os.Stat(fs.FilePath(parameter.LeaderboardKey)); err != nil {
		t.Fatalf("leaderboard file not written: %v", err)
	}

	reloaded := NewLeaderboard(fs)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if e := reloaded.Entries(); len(e) != 1 || e[0].Name != "file" || e[0].Score != 1234 {
		t.Errorf("reloaded = %v", e)
	}
}
