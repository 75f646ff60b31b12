package systems

import (
	"testing"
	"time"

	"github.com/voidwhale/spraydash/components"
	cfg "github.com/voidwhale/spraydash/config"
	"github.com/voidwhale/spraydash/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// stepContact runs one full gameplay tick minus input and spawning, the
// order the minigame scene uses.
func stepContact(e *ecs.ECS, d time.Duration, resolve ecs.System) {
	tick(e, d)
	UpdateMovement(e)
	UpdateObjects(e)
	UpdateCollisions(e)
	UpdateEffects(e)
	if resolve != nil {
		resolve(e)
	}
}

func TestGraceWindowAbsorbsTheSecondEnemy(t *testing.T) {
	e := newRun(cfg.VariantRooftop, 1)
	session := GetSession(e)
	session.Hearts = 5
	v := session.Variant
	py := v.FloorY - v.PlayerHeight()/2
	addPlayer(e, 320, py)

	spawnTestEnemy(e, 30, 320, py, 0, 0)
	stepContact(e, 16*time.Millisecond, nil)
	if session.Hearts != 4 {
		t.Fatalf("hearts after first contact = %d, want 4", session.Hearts)
	}

	// 500ms later a second enemy overlaps inside the 1500ms grace window.
	second := spawnTestEnemy(e, 30, 320, py, 0, 0)
	stepContact(e, 500*time.Millisecond, nil)
	if session.Hearts != 4 {
		t.Fatalf("hearts inside grace window = %d, want 4", session.Hearts)
	}
	if !second.Valid() {
		t.Fatal("enemy destroyed while passing through the grace window")
	}

	// Past the window the same enemy connects again.
	stepContact(e, 1100*time.Millisecond, nil)
	if session.Hearts != 3 {
		t.Fatalf("hearts after the window = %d, want 3", session.Hearts)
	}
}

func TestQuietSurvivalRunWinsExactlyOnce(t *testing.T) {
	e := newRun(cfg.VariantPlaza, 1)
	session := GetSession(e)
	addPlayer(e, 320, 180)

	var wins, losses int
	resolve := NewUpdateSession(
		func(*components.SessionData) { wins++ },
		func(*components.SessionData) { losses++ },
	)

	// 25 simulated seconds in 100ms ticks, no enemies ever spawned.
	for i := 0; i < 250; i++ {
		stepContact(e, 100*time.Millisecond, resolve)
	}

	if wins != 1 || losses != 0 {
		t.Fatalf("wins=%d losses=%d, want exactly one win", wins, losses)
	}
	wantScore := int(session.Variant.Duration.Seconds() * session.Variant.PointsPerSecond)
	if session.Score != wantScore {
		t.Fatalf("score = %d, want %d from time alone", session.Score, wantScore)
	}
}

func TestScoreRushWinsBeforeTheTimer(t *testing.T) {
	e := newRun(cfg.VariantRooftop, 1)
	session := GetSession(e)
	v := session.Variant
	py := v.FloorY - v.PlayerHeight()/2
	addPlayer(e, 320, py)

	var wins int
	resolve := NewUpdateSession(func(*components.SessionData) { wins++ }, nil)

	// Ten cans, one per 100ms tick, long before the 30s deadline.
	for i := 0; i < v.TargetScore/v.PointValue; i++ {
		factory.CreatePickup(e, components.CategoryPoint, v.Points[0], 320, py, 0, 0, GetOrCreateClock(e).Now)
		stepContact(e, 100*time.Millisecond, resolve)
	}

	if session.Score != v.TargetScore {
		t.Fatalf("score = %d, want %d", session.Score, v.TargetScore)
	}
	if session.Running {
		t.Fatal("session still running at the score target")
	}
	if remaining := session.RemainingSeconds(GetOrCreateClock(e).Now); remaining == 0 {
		t.Fatal("win should land with time still on the clock")
	}

	stepContact(e, cfg.Session.ResolveDelay, resolve)
	if wins != 1 {
		t.Fatalf("wins = %d, want 1", wins)
	}
}

func TestCollapseFreezesTheSimulation(t *testing.T) {
	e := newRun(cfg.VariantRooftop, 1)
	session := GetSession(e)
	session.Hearts = 1
	v := session.Variant
	py := v.FloorY - v.PlayerHeight()/2
	addPlayer(e, 320, py)

	var losses int
	resolve := NewUpdateSession(nil, func(*components.SessionData) { losses++ })

	spawnTestEnemy(e, 30, 320, py, 0, 0)
	stepContact(e, 16*time.Millisecond, resolve)

	if session.Running {
		t.Fatal("session survived losing its last heart")
	}

	// A dead session accepts no more mutations: consumed pickups score
	// nothing and armed spawner deadlines stay quiet.
	can := factory.CreatePickup(e, components.CategoryPoint, v.Points[0], 320, py, 0, 0, GetOrCreateClock(e).Now)
	can.AddComponent(components.Consumed)
	UpdateSpawner(e)
	stepContact(e, 10*time.Second, resolve)

	if session.Score != 0 {
		t.Fatalf("score mutated after the loss, %d", session.Score)
	}
	if losses != 1 {
		t.Fatalf("losses = %d, want exactly 1", losses)
	}
}
