package spawn

import (
	"testing"

	"golang.org/x/exp/rand"

	"github.com/lixenwraith/grid-snake/core"
	"github.com/lixenwraith/grid-snake/grid"
)

// scriptedRNG replays fixed values, cycling when exhausted
type scriptedRNG struct {
	ints   []int
	floats []float64
	ii, fi int
}

func (r *scriptedRNG) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[r.ii%len(r.ints)]
	r.ii++
	return v % n
}

func (r *scriptedRNG) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.99
	}
	v := r.floats[r.fi%len(r.floats)]
	r.fi++
	return v
}

type cellSet map[core.Cell]bool

func (s cellSet) Contains(c core.Cell) bool { return s[c] }

type blockAll struct{}

func (blockAll) Contains(core.Cell) bool { return true }

func TestFillPlacesDistinctFreeCells(t *testing.T) {
	w := grid.New(30)
	s := New(w, rand.New(rand.NewSource(7)))
	snakeCells := cellSet{{X: 0, Z: 0}: true, {X: 0, Z: 1}: true, {X: 0, Z: 2}: true}

	spawned := s.Fill(5, snakeCells)
	if len(spawned) != 5 || s.FoodCount() != 5 {
		t.Fatalf("Fill spawned %d, FoodCount %d, want 5", len(spawned), s.FoodCount())
	}
	for _, p := range spawned {
		if p.Degraded {
			t.Errorf("degraded placement %v on an empty grid", p.Food.Cell)
		}
	}

	seen := cellSet{}
	for _, f := range s.Foods() {
		if !w.Contains(f.Cell) {
			t.Errorf("food %v out of bounds", f.Cell)
		}
		if snakeCells[f.Cell] {
			t.Errorf("food %v placed on snake", f.Cell)
		}
		if seen[f.Cell] {
			t.Errorf("duplicate food cell %v", f.Cell)
		}
		seen[f.Cell] = true
	}

	// Already at target: no-op
	more := s.Fill(5, snakeCells)
	if len(more) != 0 {
		t.Errorf("Fill at target spawned %d", len(more))
	}
}

func TestSpawnDegradesWhenBudgetExhausted(t *testing.T) {
	w := grid.New(4)
	s := New(w, rand.New(rand.NewSource(1)))
	s.SetRetryBudget(10)

	f, degraded := s.SpawnFood(blockAll{})
	if !degraded {
		t.Error("expected degraded placement when every cell is blocked")
	}
	if !w.Contains(f.Cell) {
		t.Errorf("degraded candidate %v must still be in bounds", f.Cell)
	}
	if s.FoodCount() != 1 {
		t.Errorf("degraded food must still be accepted, FoodCount = %d", s.FoodCount())
	}
}

func TestFoodKindChance(t *testing.T) {
	tests := []struct {
		name  string
		roll  float64
		want  FoodKind
		value int
	}{
		{"secondary below chance", 0.10, FoodSecondary, 150},
		{"primary at chance", 0.25, FoodPrimary, 100},
		{"primary above chance", 0.80, FoodPrimary, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := &scriptedRNG{ints: []int{3, 4}, floats: []float64{tt.roll}}
			s := New(grid.New(30), rng)
			f, _ := s.SpawnFood(nil)
			if f.Kind != tt.want {
				t.Errorf("Kind = %v, want %v", f.Kind, tt.want)
			}
			if f.Kind.Value() != tt.value {
				t.Errorf("Value = %d, want %d", f.Kind.Value(), tt.value)
			}
		})
	}
}

func TestPowerUpAtMostOne(t *testing.T) {
	s := New(grid.New(30), rand.New(rand.NewSource(3)))
	s.SetPowerUpChance(1)

	first, spawned, _ := s.MaybeSpawnPowerUp(nil)
	if !spawned {
		t.Fatal("chance 1 must spawn a power-up")
	}
	if _, spawned, _ := s.MaybeSpawnPowerUp(nil); spawned {
		t.Error("second power-up spawned while one is live")
	}
	if got, ok := s.PowerUpAt(first.Cell); !ok || got.ID != first.ID {
		t.Errorf("PowerUpAt(%v) = %v,%v", first.Cell, got, ok)
	}

	s.ClearPowerUp()
	if _, ok := s.PowerUp(); ok {
		t.Error("PowerUp still live after ClearPowerUp")
	}

	s.SetPowerUpChance(0)
	if _, spawned, _ := s.MaybeSpawnPowerUp(nil); spawned {
		t.Error("chance 0 must never spawn")
	}
}

func TestPowerUpWeightedKind(t *testing.T) {
	tests := []struct {
		roll int
		want PowerUpKind
	}{
		{0, PowerUpBonusPoints},
		{39, PowerUpBonusPoints},
		{40, PowerUpInvulnerability},
		{69, PowerUpInvulnerability},
		{70, PowerUpSpeedBoost},
		{99, PowerUpSpeedBoost},
	}

	for _, tt := range tests {
		// Two ints for placement then one for the kind roll
		rng := &scriptedRNG{ints: []int{1, 2, tt.roll}}
		s := New(grid.New(30), rng)
		pu, spawned, _ := s.SpawnPowerUp(nil)
		if !spawned {
			t.Fatalf("roll %d: not spawned", tt.roll)
		}
		if pu.Kind != tt.want {
			t.Errorf("roll %d: Kind = %v, want %v", tt.roll, pu.Kind, tt.want)
		}
	}
}

func TestPlacementAvoidsLiveItems(t *testing.T) {
	// First candidate collides with existing food and is rejected
	rng := &scriptedRNG{ints: []int{5, 5, 5, 5, 6, 6}}
	s := New(grid.New(30), rng)

	a, _ := s.SpawnFood(nil)
	b, degraded := s.SpawnFood(nil)
	if degraded {
		t.Fatal("unexpected degraded placement")
	}
	if a.Cell == b.Cell {
		t.Errorf("second food reused occupied cell %v", a.Cell)
	}
	if a.ID == b.ID {
		t.Error("food ids must be unique")
	}

	if !s.RemoveFood(a.ID) {
		t.Fatal("RemoveFood returned false")
	}
	if _, ok := s.FoodAt(a.Cell); ok {
		t.Error("removed food still reported")
	}
	if s.RemoveFood(a.ID) {
		t.Error("second RemoveFood of same id must report false")
	}

	s.Reset()
	if s.FoodCount() != 0 {
		t.Errorf("FoodCount after Reset = %d", s.FoodCount())
	}
}
