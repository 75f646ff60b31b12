package systems

import (
	"testing"
	"time"

	"github.com/voidwhale/spraydash/components"
	cfg "github.com/voidwhale/spraydash/config"
	"github.com/voidwhale/spraydash/tags"
)

func TestSpawnerArmsBeforeFirstSpawn(t *testing.T) {
	e := newRun(cfg.VariantRooftop, 1)
	spawner := GetSpawner(e)

	UpdateSpawner(e)

	if !spawner.EnemyArmed {
		t.Fatal("enemy slot not armed on first tick")
	}
	if got := countTag(e, tags.Enemy); got != 0 {
		t.Fatalf("enemies after arming tick = %d, want 0", got)
	}
	want := testStart.Add(cfg.Variants[cfg.VariantRooftop].EnemyInterval)
	if !spawner.NextEnemyAt.Equal(want) {
		t.Fatalf("NextEnemyAt = %v, want %v", spawner.NextEnemyAt, want)
	}
	if !spawner.CollectibleArmed || !spawner.PointArmed {
		t.Fatal("pickup slots not armed on first tick")
	}
}

func TestSpawnerSpawnsOnDeadline(t *testing.T) {
	e := newRun(cfg.VariantRooftop, 1)
	spawner := GetSpawner(e)
	clock := GetOrCreateClock(e)

	UpdateSpawner(e)

	clock.Now = spawner.NextEnemyAt.Add(-time.Millisecond)
	UpdateSpawner(e)
	if got := countTag(e, tags.Enemy); got != 0 {
		t.Fatalf("enemy spawned %v early", time.Millisecond)
	}

	clock.Now = spawner.NextEnemyAt
	UpdateSpawner(e)
	if got := countTag(e, tags.Enemy); got != 1 {
		t.Fatalf("enemies at deadline = %d, want 1", got)
	}

	// The slot re-arms off the spawn instant.
	want := clock.Now.Add(cfg.Variants[cfg.VariantRooftop].EnemyInterval)
	if !spawner.NextEnemyAt.Equal(want) {
		t.Fatalf("rearmed NextEnemyAt = %v, want %v", spawner.NextEnemyAt, want)
	}
}

func TestSpawnerHoldsAtLiveCap(t *testing.T) {
	e := newRun(cfg.VariantFence, 1)
	spawner := GetSpawner(e)
	clock := GetOrCreateClock(e)
	maxLive := cfg.Variants[cfg.VariantFence].MaxEnemies

	UpdateSpawner(e)
	for i := 0; i < maxLive+5; i++ {
		clock.Now = spawner.NextEnemyAt
		UpdateSpawner(e)
	}

	if got := countTag(e, tags.Enemy); got != maxLive {
		t.Fatalf("live enemies = %d, want cap %d", got, maxLive)
	}
	// A capped window still re-arms instead of stalling the schedule.
	if !spawner.NextEnemyAt.After(clock.Now) {
		t.Fatalf("NextEnemyAt = %v not past %v after capped window", spawner.NextEnemyAt, clock.Now)
	}
}

func TestEmptyKindListDisablesEnemySpawns(t *testing.T) {
	e := newRun(cfg.VariantRooftop, 1)
	session := GetSession(e)
	spawner := GetSpawner(e)
	session.Variant.EnemyKinds = nil

	UpdateSpawner(e)
	tick(e, time.Minute)
	UpdateSpawner(e)

	if spawner.EnemyArmed {
		t.Fatal("enemy slot armed with no kinds configured")
	}
	if got := countTag(e, tags.Enemy); got != 0 {
		t.Fatalf("enemies = %d, want 0", got)
	}
}

func TestPlazaHasNoPickupSlots(t *testing.T) {
	e := newRun(cfg.VariantPlaza, 1)
	spawner := GetSpawner(e)

	UpdateSpawner(e)
	tick(e, 30*time.Second)
	UpdateSpawner(e)

	if spawner.CollectibleArmed || spawner.PointArmed {
		t.Fatal("pickup slot armed on a variant without pickups")
	}
	if got := countTag(e, tags.Collectible) + countTag(e, tags.PointItem); got != 0 {
		t.Fatalf("pickups = %d, want 0", got)
	}
}

func TestPointSlotHoldsOneLiveItem(t *testing.T) {
	e := newRun(cfg.VariantRooftop, 1)
	spawner := GetSpawner(e)
	clock := GetOrCreateClock(e)

	UpdateSpawner(e)
	clock.Now = spawner.NextPointAt
	UpdateSpawner(e)

	if got := countTag(e, tags.PointItem); got != 1 {
		t.Fatalf("point items after deadline = %d, want 1", got)
	}
	if spawner.PointArmed {
		t.Fatal("point slot still armed while its item is live")
	}

	// More deadlines pass; the occupied slot must not double-spawn.
	tick(e, 20*time.Second)
	UpdateSpawner(e)
	if got := countTag(e, tags.PointItem); got != 1 {
		t.Fatalf("point items while slot occupied = %d, want 1", got)
	}

	// Emptying the slot re-arms it for a fresh delay.
	entry, _ := tags.PointItem.First(e.World)
	destroyEntity(e, entry)
	UpdateSpawner(e)
	if !spawner.PointArmed {
		t.Fatal("point slot not re-armed after its item despawned")
	}
	want := clock.Now.Add(cfg.Variants[cfg.VariantRooftop].PointDelay)
	if !spawner.NextPointAt.Equal(want) {
		t.Fatalf("NextPointAt = %v, want %v", spawner.NextPointAt, want)
	}

	clock.Now = spawner.NextPointAt
	UpdateSpawner(e)
	if got := countTag(e, tags.PointItem); got != 1 {
		t.Fatalf("point items after re-arm cycle = %d, want 1", got)
	}
}

func TestEnemyKindsFollowSpawnWeights(t *testing.T) {
	e := newRun(cfg.VariantRooftop, 7)
	spawner := GetSpawner(e)
	clock := GetOrCreateClock(e)

	counts := map[string]int{}
	UpdateSpawner(e)
	for i := 0; i < 150; i++ {
		clock.Now = spawner.NextEnemyAt
		UpdateSpawner(e)
		entry, ok := tags.Enemy.First(e.World)
		if !ok {
			t.Fatalf("spawn %d produced no enemy", i)
		}
		counts[components.Enemy.Get(entry).Kind]++
		destroyEntity(e, entry)
	}

	// Rooftop weighs bottles 4:1 over flowerpots; a seeded run must land
	// clearly on that side without pinning exact draws.
	if counts["flowerpot"] == 0 {
		t.Fatal("flowerpot never spawned in 150 draws")
	}
	if counts["bottle"] <= counts["flowerpot"]*2 {
		t.Fatalf("bottle/flowerpot = %d/%d, want bottles clearly dominant", counts["bottle"], counts["flowerpot"])
	}
}

func TestFallPlacementEntersFromTheTop(t *testing.T) {
	v := cfg.Variants[cfg.VariantRooftop]
	rng := &stubRand{floats: []float64{0.5}}

	x, y, vx, vy := enemyPlacement(v, 30, rng)

	if x != 320 {
		t.Fatalf("x = %v, want 320", x)
	}
	if want := -v.SpawnMargin - 15; y != want {
		t.Fatalf("y = %v, want %v above the top edge", y, want)
	}
	if vx != 0 || vy != v.EnemySpeed {
		t.Fatalf("velocity = (%v, %v), want straight fall at %v", vx, vy, v.EnemySpeed)
	}
}

func TestScrollPlacementEntersFromTheRight(t *testing.T) {
	v := cfg.Variants[cfg.VariantFence]
	rng := &stubRand{}

	x, y, vx, vy := enemyPlacement(v, 30, rng)

	if want := 640 + v.SpawnMargin + 15; x != want {
		t.Fatalf("x = %v, want %v past the right edge", x, want)
	}
	if want := v.FloorY - 15; y != want {
		t.Fatalf("y = %v, want %v on the floor line", y, want)
	}
	if vx != -v.EnemySpeed || vy != 0 {
		t.Fatalf("velocity = (%v, %v), want leftward scroll", vx, vy)
	}
}

func TestEdgePlacementAimsInward(t *testing.T) {
	v := cfg.Variants[cfg.VariantPlaza]
	// Scripted draws: left edge, mid-height entry, zero aim jitter.
	rng := &stubRand{ints: []int{2}, floats: []float64{0.5, 0, 0}}

	x, y, vx, vy := enemyPlacement(v, 40, rng)

	if want := -v.SpawnMargin - 20; x != want {
		t.Fatalf("x = %v, want %v past the left edge", x, want)
	}
	if y != 180 {
		t.Fatalf("y = %v, want 180", y)
	}
	if vx != v.EnemySpeed || vy != 0 {
		t.Fatalf("velocity = (%v, %v), want dead-center aim at %v", vx, vy, v.EnemySpeed)
	}
}

func TestScrollPointPlacementSitsInTheJumpBand(t *testing.T) {
	v := cfg.Variants[cfg.VariantFence]
	rng := &stubRand{floats: []float64{0.5}}

	x, y, vx, vy := pickupPlacement(v, 20, rng)

	if want := 640 + v.SpawnMargin + 10; x != want {
		t.Fatalf("x = %v, want %v past the right edge", x, want)
	}
	wantAlt := v.PointAltMin + 0.5*(v.PointAltMax-v.PointAltMin)
	if want := v.FloorY - wantAlt; y != want {
		t.Fatalf("y = %v, want %v inside the jump band", y, want)
	}
	if vx != -v.PickupSpeed || vy != 0 {
		t.Fatalf("velocity = (%v, %v), want leftward drift", vx, vy)
	}
}

// stubRand replays a fixed script of draws.
type stubRand struct {
	floats []float64
	ints   []int
	f, i   int
}

func (s *stubRand) Float64() float64 {
	v := s.floats[s.f]
	s.f++
	return v
}

func (s *stubRand) Intn(n int) int {
	v := s.ints[s.i]
	s.i++
	return v % n
}
