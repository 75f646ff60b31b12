package systems

import (
	"math"
	"testing"
	"time"

	"github.com/voidwhale/spraydash/components"
	cfg "github.com/voidwhale/spraydash/config"
	"github.com/voidwhale/spraydash/systems/factory"
	"github.com/voidwhale/spraydash/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func almost(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

// spawnTestEnemy drops an enemy of the variant's first kind at (x, y).
func spawnTestEnemy(e *ecs.ECS, size, x, y, vx, vy float64) *donburi.Entry {
	v := GetSession(e).Variant
	return factory.CreateEnemy(e, v.EnemyKinds[0], size, x, y, vx, vy, GetOrCreateClock(e).Now)
}

func TestPlayerRunsAlongTheLedge(t *testing.T) {
	e := newRun(cfg.VariantRooftop, 1)
	v := GetSession(e).Variant
	groundY := v.FloorY - v.PlayerHeight()/2
	entry := addPlayer(e, 320, groundY)
	player := components.Player.Get(entry)
	pos := components.Position.Get(entry)

	player.MoveX = 1
	tick(e, 100*time.Millisecond)
	UpdateMovement(e)

	if want := 320 + v.MoveSpeed*0.1; !almost(pos.X, want) {
		t.Fatalf("pos.X = %v, want %v", pos.X, want)
	}
	if !almost(pos.Y, groundY) {
		t.Fatalf("pos.Y = %v, want pinned to ledge %v", pos.Y, groundY)
	}
}

func TestPlayerStopsAtTheScreenEdge(t *testing.T) {
	e := newRun(cfg.VariantRooftop, 1)
	v := GetSession(e).Variant
	entry := addPlayer(e, 600, v.FloorY-v.PlayerHeight()/2)
	player := components.Player.Get(entry)
	pos := components.Position.Get(entry)

	player.MoveX = 1
	for i := 0; i < 60; i++ {
		tick(e, 16*time.Millisecond)
		UpdateMovement(e)
	}

	want := float64(cfg.C.Width) - v.PlayerWidth(v.PlayerAspect)/2
	if !almost(pos.X, want) {
		t.Fatalf("pos.X = %v, want clamped at %v", pos.X, want)
	}
}

func TestMovementSkipsPausedTicks(t *testing.T) {
	e := newRun(cfg.VariantRooftop, 1)
	v := GetSession(e).Variant
	entry := addPlayer(e, 320, v.FloorY-v.PlayerHeight()/2)
	components.Player.Get(entry).MoveX = 1
	pos := components.Position.Get(entry)

	GetOrCreateClock(e).Delta = 0
	UpdateMovement(e)

	if pos.X != 320 {
		t.Fatalf("pos.X = %v moved on a zero-delta tick", pos.X)
	}
}

func TestQueuedJumpArcsAndLands(t *testing.T) {
	e := newRun(cfg.VariantFence, 1)
	v := GetSession(e).Variant
	groundY := v.FloorY - v.PlayerHeight()/2
	entry := addPlayer(e, 200, groundY)
	player := components.Player.Get(entry)
	pos := components.Position.Get(entry)

	player.JumpQueued = true
	tick(e, 16*time.Millisecond)
	UpdateMovement(e)

	if player.Grounded {
		t.Fatal("player still grounded after queued jump")
	}
	if pos.Y >= groundY {
		t.Fatalf("pos.Y = %v did not rise above ledge %v", pos.Y, groundY)
	}

	apexY := pos.Y
	landed := false
	for i := 0; i < 600; i++ {
		tick(e, 16*time.Millisecond)
		UpdateMovement(e)
		if pos.Y < apexY {
			apexY = pos.Y
		}
		if player.Grounded {
			landed = true
			break
		}
	}

	if !landed {
		t.Fatal("player never landed")
	}
	if !almost(pos.Y, groundY) {
		t.Fatalf("landing pos.Y = %v, want snapped to %v", pos.Y, groundY)
	}
	if player.VelY != 0 {
		t.Fatalf("landing VelY = %v, want 0", player.VelY)
	}
	if apexY > groundY-40 {
		t.Fatalf("apex %v barely cleared ledge %v", apexY, groundY)
	}
}

func TestJumpIgnoredInMidair(t *testing.T) {
	e := newRun(cfg.VariantFence, 1)
	v := GetSession(e).Variant
	entry := addPlayer(e, 200, v.FloorY-v.PlayerHeight()/2-50)
	player := components.Player.Get(entry)
	player.Grounded = false
	player.VelY = -100

	player.JumpQueued = true
	tick(e, 16*time.Millisecond)
	UpdateMovement(e)

	// Gravity keeps pulling; the queued jump must not relaunch.
	if want := -100 + v.Gravity*0.016; !almost(player.VelY, want) {
		t.Fatalf("VelY = %v, want %v", player.VelY, want)
	}
}

func TestPointerSteersThePlaza(t *testing.T) {
	e := newRun(cfg.VariantPlaza, 1)
	entry := addPlayer(e, 320, 180)
	player := components.Player.Get(entry)
	pos := components.Position.Get(entry)

	input := getOrCreateInput(e)
	input.PointerActive = true
	input.PointerX = 500
	input.PointerY = 90
	player.MoveX = -1

	tick(e, 16*time.Millisecond)
	UpdateMovement(e)

	if !almost(pos.X, 500) || !almost(pos.Y, 90) {
		t.Fatalf("pos = (%v, %v), want pointer target (500, 90)", pos.X, pos.Y)
	}
}

func TestPointerTargetClampedInside(t *testing.T) {
	e := newRun(cfg.VariantPlaza, 1)
	v := GetSession(e).Variant
	entry := addPlayer(e, 320, 180)
	pos := components.Position.Get(entry)

	input := getOrCreateInput(e)
	input.PointerActive = true
	input.PointerX = 5000
	input.PointerY = -50

	tick(e, 16*time.Millisecond)
	UpdateMovement(e)

	wantX := float64(cfg.C.Width) - v.PlayerWidth(v.PlayerAspect)/2
	wantY := v.PlayerHeight() / 2
	if !almost(pos.X, wantX) || !almost(pos.Y, wantY) {
		t.Fatalf("pos = (%v, %v), want clamped (%v, %v)", pos.X, pos.Y, wantX, wantY)
	}
}

func TestEnemiesDriftWithTheirVelocity(t *testing.T) {
	e := newRun(cfg.VariantRooftop, 1)
	v := GetSession(e).Variant
	addPlayer(e, 320, v.FloorY-v.PlayerHeight()/2)
	enemy := spawnTestEnemy(e, 30, 320, 100, 0, 180)
	pos := components.Position.Get(enemy)

	tick(e, 100*time.Millisecond)
	UpdateMovement(e)

	if !almost(pos.Y, 118) {
		t.Fatalf("pos.Y = %v, want 118 after 100ms at 180px/s", pos.Y)
	}
}

func TestStrayEnemiesAreCulled(t *testing.T) {
	e := newRun(cfg.VariantRooftop, 1)
	v := GetSession(e).Variant
	addPlayer(e, 320, v.FloorY-v.PlayerHeight()/2)
	spawnTestEnemy(e, 30, 320, float64(cfg.C.Height)+v.CullMargin+10, 0, 0)
	kept := spawnTestEnemy(e, 30, 320, 100, 0, 0)

	tick(e, time.Millisecond)
	UpdateMovement(e)

	if got := countTag(e, tags.Enemy); got != 1 {
		t.Fatalf("live enemies = %d, want only the on-screen one", got)
	}
	if !kept.Valid() {
		t.Fatal("on-screen enemy was culled")
	}
}
