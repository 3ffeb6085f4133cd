// Package spawn places food and power-ups on unoccupied cells
package spawn

import (
	"github.com/lixenwraith/grid-snake/core"
	"github.com/lixenwraith/grid-snake/grid"
	"github.com/lixenwraith/grid-snake/parameter"
)

// RNG is the random source used for placement and kind selection
// *golang.org/x/exp/rand.Rand satisfies it
type RNG interface {
	Intn(n int) int
	Float64() float64
}

// Blocker reports cells held outside the spawner, typically the snake body
type Blocker interface {
	Contains(c core.Cell) bool
}

// Food is a live food item; ID keys the renderer's visual object
type Food struct {
	ID   uint64
	Cell core.Cell
	Kind FoodKind
}

// PowerUp is the single live power-up
type PowerUp struct {
	ID   uint64
	Cell core.Cell
	Kind PowerUpKind
}

// Spawner owns live food and the optional live power-up
type Spawner struct {
	world *grid.World
	rng   RNG

	foods   []Food
	powerUp PowerUp
	hasPU   bool
	items   *grid.Occupancy
	nextID  uint64

	secondaryChance float64
	powerUpChance   float64
	retryBudget     int
}

// New creates a spawner with default probabilities
func New(world *grid.World, rng RNG) *Spawner {
	return &Spawner{
		world:           world,
		rng:             rng,
		items:           grid.NewOccupancy(64),
		secondaryChance: parameter.FoodSecondaryChance,
		powerUpChance:   parameter.PowerUpSpawnChance,
		retryBudget:     parameter.SpawnRetryBudget,
	}
}

// SetPowerUpChance overrides the post-replenishment power-up probability
func (s *Spawner) SetPowerUpChance(p float64) {
	s.powerUpChance = p
}

// SetSecondaryChance overrides the per-spawn secondary food probability
func (s *Spawner) SetSecondaryChance(p float64) {
	s.secondaryChance = p
}

// SetRetryBudget overrides the placement attempt cap
func (s *Spawner) SetRetryBudget(n int) {
	if n < 1 {
		n = 1
	}
	s.retryBudget = n
}

// Foods returns a copy of live food
func (s *Spawner) Foods() []Food {
	out := make([]Food, len(s.foods))
	copy(out, s.foods)
	return out
}

// FoodCount returns the number of live food items
func (s *Spawner) FoodCount() int {
	return len(s.foods)
}

// PowerUp returns the live power-up if any
func (s *Spawner) PowerUp() (PowerUp, bool) {
	return s.powerUp, s.hasPU
}

// FoodAt returns the live food at c
func (s *Spawner) FoodAt(c core.Cell) (Food, bool) {
	for _, f := range s.foods {
		if f.Cell == c {
			return f, true
		}
	}
	return Food{}, false
}

// PowerUpAt returns the live power-up if it occupies c
func (s *Spawner) PowerUpAt(c core.Cell) (PowerUp, bool) {
	if s.hasPU && s.powerUp.Cell == c {
		return s.powerUp, true
	}
	return PowerUp{}, false
}

// RemoveFood deletes the food with the given id
func (s *Spawner) RemoveFood(id uint64) bool {
	for i, f := range s.foods {
		if f.ID == id {
			s.foods = append(s.foods[:i], s.foods[i+1:]...)
			s.rebuildItems()
			return true
		}
	}
	return false
}

// ClearPowerUp removes the live power-up
func (s *Spawner) ClearPowerUp() {
	if !s.hasPU {
		return
	}
	s.hasPU = false
	s.powerUp = PowerUp{}
	s.rebuildItems()
}

// Reset removes all live items; ids keep increasing
func (s *Spawner) Reset() {
	s.foods = s.foods[:0]
	s.hasPU = false
	s.powerUp = PowerUp{}
	s.items.Reset()
}

// SpawnFood places one food; degraded is true when the retry budget was exhausted
func (s *Spawner) SpawnFood(blocked Blocker) (Food, bool) {
	cell, degraded := s.place(blocked)

	kind := FoodPrimary
	if s.rng.Float64() < s.secondaryChance {
		kind = FoodSecondary
	}

	return s.PlaceFood(cell, kind), degraded
}

// Placement is one spawned food and whether its placement degraded
type Placement struct {
	Food     Food
	Degraded bool
}

// Fill spawns food until target items are live
func (s *Spawner) Fill(target int, blocked Blocker) []Placement {
	var spawned []Placement
	for len(s.foods) < target {
		f, d := s.SpawnFood(blocked)
		spawned = append(spawned, Placement{Food: f, Degraded: d})
	}
	return spawned
}

// MaybeSpawnPowerUp rolls the power-up chance when none is live
// spawned reports placement; degraded reports an exhausted retry budget
func (s *Spawner) MaybeSpawnPowerUp(blocked Blocker) (pu PowerUp, spawned, degraded bool) {
	if s.hasPU {
		return PowerUp{}, false, false
	}
	if s.rng.Float64() >= s.powerUpChance {
		return PowerUp{}, false, false
	}
	return s.SpawnPowerUp(blocked)
}

// SpawnPowerUp places a power-up of weighted random kind unconditionally, unless one is live
func (s *Spawner) SpawnPowerUp(blocked Blocker) (pu PowerUp, spawned, degraded bool) {
	if s.hasPU {
		return PowerUp{}, false, false
	}
	cell, degraded := s.place(blocked)

	s.nextID++
	s.powerUp = PowerUp{ID: s.nextID, Cell: cell, Kind: s.pickPowerUpKind()}
	s.hasPU = true
	s.items.Add(cell)
	return s.powerUp, true, degraded
}

// PlaceFood puts a food of kind k at c without occupancy checks
func (s *Spawner) PlaceFood(c core.Cell, k FoodKind) Food {
	s.nextID++
	f := Food{ID: s.nextID, Cell: c, Kind: k}
	s.foods = append(s.foods, f)
	s.items.Add(c)
	return f
}

// PlacePowerUp puts a power-up of kind k at c, replacing any live one
func (s *Spawner) PlacePowerUp(c core.Cell, k PowerUpKind) PowerUp {
	s.nextID++
	s.powerUp = PowerUp{ID: s.nextID, Cell: c, Kind: k}
	s.hasPU = true
	s.rebuildItems()
	return s.powerUp
}

// place samples candidates until one is free or the budget runs out
func (s *Spawner) place(blocked Blocker) (core.Cell, bool) {
	var c core.Cell
	for i := 0; i < s.retryBudget; i++ {
		c = s.world.RandomCell(s.rng)
		if !s.occupied(c, blocked) {
			return c, false
		}
	}
	// Degrade: accept last candidate rather than spin
	return c, true
}

func (s *Spawner) occupied(c core.Cell, blocked Blocker) bool {
	if s.items.Has(c) {
		return true
	}
	return blocked != nil && blocked.Contains(c)
}

func (s *Spawner) pickPowerUpKind() PowerUpKind {
	total := 0
	for _, w := range powerUpWeights {
		total += w
	}
	if total <= 0 {
		return PowerUpBonusPoints
	}
	roll := s.rng.Intn(total)
	for k, w := range powerUpWeights {
		if roll < w {
			return PowerUpKind(k)
		}
		roll -= w
	}
	return PowerUpBonusPoints
}

func (s *Spawner) rebuildItems() {
	s.items.Reset()
	for _, f := range s.foods {
		s.items.Add(f.Cell)
	}
	if s.hasPU {
		s.items.Add(s.powerUp.Cell)
	}
}
