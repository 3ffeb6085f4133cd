package powerup

import (
	"testing"
	"time"

	"github.com/lixenwraith/grid-snake/spawn"
)

var t0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestApplyBonusPoints(t *testing.T) {
	e := New(DefaultDurations())
	a := e.Apply(spawn.PowerUpBonusPoints, t0)
	if a.Points != 500 {
		t.Errorf("Points = %d, want 500", a.Points)
	}
	if e.Invulnerable(t0) || e.Boosted(t0) {
		t.Error("bonus points must not arm timed effects")
	}
}

func TestInvulnerabilityWindow(t *testing.T) {
	e := New(DefaultDurations())
	e.Apply(spawn.PowerUpInvulnerability, t0)

	tests := []struct {
		offset time.Duration
		want   bool
	}{
		{0, true},
		{9999 * time.Millisecond, true},
		{10 * time.Second, false},
		{11 * time.Second, false},
	}
	for _, tt := range tests {
		if got := e.Invulnerable(t0.Add(tt.offset)); got != tt.want {
			t.Errorf("Invulnerable(t0+%v) = %v, want %v", tt.offset, got, tt.want)
		}
	}

	if r := e.Remaining(spawn.PowerUpInvulnerability, t0.Add(4*time.Second)); r != 6*time.Second {
		t.Errorf("Remaining = %v, want 6s", r)
	}
}

func TestSpeedBoostArmsPulse(t *testing.T) {
	e := New(DefaultDurations())
	e.Apply(spawn.PowerUpSpeedBoost, t0)

	st := e.Status(t0.Add(100 * time.Millisecond))
	if !st.Boosted || !st.Pulsing {
		t.Fatalf("Status = %+v, want boosted and pulsing", st)
	}
	if st.BoostRemaining != 7900*time.Millisecond {
		t.Errorf("BoostRemaining = %v", st.BoostRemaining)
	}

	late := e.Status(t0.Add(time.Second))
	if !late.Boosted || late.Pulsing {
		t.Errorf("Status at 1s = %+v, want boosted without pulse", late)
	}
	if e.Boosted(t0.Add(8 * time.Second)) {
		t.Error("boost must end at expiry")
	}
}

func TestExpiredReportsOnce(t *testing.T) {
	e := New(DefaultDurations())
	e.Apply(spawn.PowerUpInvulnerability, t0)
	e.Apply(spawn.PowerUpSpeedBoost, t0)

	if got := e.Expired(t0.Add(5 * time.Second)); len(got) != 0 {
		t.Errorf("Expired at 5s = %v, want none", got)
	}
	got := e.Expired(t0.Add(8 * time.Second))
	if len(got) != 1 || got[0] != spawn.PowerUpSpeedBoost {
		t.Errorf("Expired at 8s = %v, want [speed_boost]", got)
	}
	got = e.Expired(t0.Add(12 * time.Second))
	if len(got) != 1 || got[0] != spawn.PowerUpInvulnerability {
		t.Errorf("Expired at 12s = %v, want [invulnerability]", got)
	}
	if got := e.Expired(t0.Add(20 * time.Second)); len(got) != 0 {
		t.Errorf("repeat Expired = %v, want none", got)
	}
}

func TestReapplyRestartsAndReset(t *testing.T) {
	e := New(DefaultDurations())
	e.Apply(spawn.PowerUpInvulnerability, t0)
	e.Apply(spawn.PowerUpInvulnerability, t0.Add(5*time.Second))
	if !e.Invulnerable(t0.Add(14 * time.Second)) {
		t.Error("reapply must extend expiry from the second pickup")
	}

	e.Reset()
	if e.Invulnerable(t0.Add(6 * time.Second)) {
		t.Error("Reset must clear invulnerability")
	}
}
