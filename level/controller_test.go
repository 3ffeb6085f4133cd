package level

import (
	"testing"
	"time"
)

func TestNewStartsAtLevelOne(t *testing.T) {
	c := New(DefaultSettings())
	if c.Level() != 1 {
		t.Errorf("Level() = %d, want 1", c.Level())
	}
	if c.Countdown() != 60*time.Second {
		t.Errorf("Countdown() = %v, want 60s", c.Countdown())
	}
	if c.BaseInterval() != 150*time.Millisecond {
		t.Errorf("BaseInterval() = %v, want 150ms", c.BaseInterval())
	}
	if c.TargetFood() != 5 {
		t.Errorf("TargetFood() = %d, want 5", c.TargetFood())
	}
}

func TestTickReportsExpiryOnce(t *testing.T) {
	s := DefaultSettings()
	s.Duration = 300 * time.Millisecond
	c := New(s)

	if c.Tick(150 * time.Millisecond) {
		t.Fatal("expired early")
	}
	if !c.Tick(150 * time.Millisecond) {
		t.Fatal("expected expiry at zero")
	}
	if c.Countdown() != 0 {
		t.Errorf("Countdown() = %v, want 0", c.Countdown())
	}
	if c.Tick(150 * time.Millisecond) {
		t.Error("expiry must be reported once")
	}
}

func TestFoodTighteningFloors(t *testing.T) {
	s := DefaultSettings()
	s.BaseInterval = 55 * time.Millisecond
	c := New(s)

	if got := c.TightenForFood(); got != 53*time.Millisecond {
		t.Errorf("TightenForFood() = %v, want 53ms", got)
	}
	for i := 0; i < 10; i++ {
		c.TightenForFood()
	}
	if c.BaseInterval() != 50*time.Millisecond {
		t.Errorf("BaseInterval() = %v, want floor 50ms", c.BaseInterval())
	}
}

func TestAdvanceAndRestore(t *testing.T) {
	c := New(DefaultSettings())
	c.TightenForFood()
	c.TightenForFood()
	c.Tick(10 * time.Second)

	c.Advance()
	if c.Level() != 2 {
		t.Errorf("Level() = %d, want 2", c.Level())
	}
	if c.LevelBaseInterval() != 140*time.Millisecond || c.BaseInterval() != 140*time.Millisecond {
		t.Errorf("intervals = %v/%v, want 140ms", c.LevelBaseInterval(), c.BaseInterval())
	}
	if c.Countdown() != 60*time.Second {
		t.Errorf("Countdown() = %v, want full reset", c.Countdown())
	}
	if c.TargetFood() != 10 {
		t.Errorf("TargetFood() = %d, want 10", c.TargetFood())
	}

	c.TightenForFood()
	c.RestoreBaseInterval()
	if c.BaseInterval() != 140*time.Millisecond {
		t.Errorf("RestoreBaseInterval() left %v", c.BaseInterval())
	}
}

func TestBaseIntervalMonotonicAcrossLevels(t *testing.T) {
	c := New(DefaultSettings())
	prev := c.LevelBaseInterval()
	for i := 0; i < 20; i++ {
		c.Advance()
		cur := c.LevelBaseInterval()
		if cur > prev {
			t.Fatalf("level %d base %v increased from %v", c.Level(), cur, prev)
		}
		if cur < 50*time.Millisecond {
			t.Fatalf("level %d base %v below floor", c.Level(), cur)
		}
		prev = cur
	}
	if prev != 50*time.Millisecond {
		t.Errorf("base after 20 levels = %v, want floor 50ms", prev)
	}
}
