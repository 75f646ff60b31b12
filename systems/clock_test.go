package systems

import (
	"testing"
	"time"

	cfg "github.com/voidwhale/spraydash/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestAdvanceClockFirstCallOnlySeeds(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	w0 := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	AdvanceClock(e, w0)

	clock := GetOrCreateClock(e)
	if !clock.Now.Equal(w0) {
		t.Fatalf("clock.Now = %v, want %v", clock.Now, w0)
	}
	if clock.Delta != 0 {
		t.Fatalf("first tick delta = %v, want 0", clock.Delta)
	}
}

func TestAdvanceClockTracksWallTime(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	w0 := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	AdvanceClock(e, w0)
	AdvanceClock(e, w0.Add(16*time.Millisecond))

	clock := GetOrCreateClock(e)
	if clock.Delta != 16*time.Millisecond {
		t.Fatalf("delta = %v, want 16ms", clock.Delta)
	}
	if !clock.Now.Equal(w0.Add(16 * time.Millisecond)) {
		t.Fatalf("clock.Now = %v, want %v", clock.Now, w0.Add(16*time.Millisecond))
	}
}

func TestAdvanceClockClampsStalls(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	w0 := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	AdvanceClock(e, w0)
	AdvanceClock(e, w0.Add(5*time.Second))

	clock := GetOrCreateClock(e)
	if clock.Delta != cfg.Session.MaxTickDelta {
		t.Fatalf("stall delta = %v, want clamp %v", clock.Delta, cfg.Session.MaxTickDelta)
	}
	if !clock.Now.Equal(w0.Add(cfg.Session.MaxTickDelta)) {
		t.Fatalf("clock.Now = %v, want wall start + clamp", clock.Now)
	}
}

func TestAdvanceClockIgnoresBackwardWallSteps(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	w0 := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	AdvanceClock(e, w0)
	AdvanceClock(e, w0.Add(-time.Second))

	clock := GetOrCreateClock(e)
	if clock.Delta != 0 {
		t.Fatalf("backward step delta = %v, want 0", clock.Delta)
	}
	if !clock.Now.Equal(w0) {
		t.Fatalf("clock.Now moved backward to %v", clock.Now)
	}
}

func TestAdvanceClockFreezesWhilePaused(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	w0 := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	AdvanceClock(e, w0)
	AdvanceClock(e, w0.Add(16*time.Millisecond))
	frozen := GetOrCreateClock(e).Now

	SetClockPaused(e, true)
	AdvanceClock(e, w0.Add(3*time.Second))

	clock := GetOrCreateClock(e)
	if clock.Delta != 0 {
		t.Fatalf("paused delta = %v, want 0", clock.Delta)
	}
	if !clock.Now.Equal(frozen) {
		t.Fatalf("paused clock.Now = %v, want frozen %v", clock.Now, frozen)
	}

	// Resuming continues from the frozen timestamp; the pause gap never
	// reaches session time.
	SetClockPaused(e, false)
	AdvanceClock(e, w0.Add(3*time.Second).Add(20*time.Millisecond))

	if clock.Delta != 20*time.Millisecond {
		t.Fatalf("resume delta = %v, want 20ms", clock.Delta)
	}
	if !clock.Now.Equal(frozen.Add(20 * time.Millisecond)) {
		t.Fatalf("resume clock.Now = %v, want %v", clock.Now, frozen.Add(20*time.Millisecond))
	}
}
