package systems

import (
	"testing"
	"time"

	"github.com/voidwhale/spraydash/components"
	cfg "github.com/voidwhale/spraydash/config"
	"github.com/voidwhale/spraydash/systems/factory"
	"github.com/voidwhale/spraydash/tags"
)

func TestEnemyContactFilesOneHit(t *testing.T) {
	e := newRun(cfg.VariantRooftop, 1)
	v := GetSession(e).Variant
	py := v.FloorY - v.PlayerHeight()/2
	playerEntry := addPlayer(e, 320, py)
	spawnTestEnemy(e, 30, 320, py, 0, 0)

	UpdateObjects(e)
	UpdateCollisions(e)

	if !playerEntry.HasComponent(components.HitEvent) {
		t.Fatal("no hit event for an overlapping enemy")
	}
	hit := components.HitEvent.Get(playerEntry)
	if hit.EnemyKind != "bottle" {
		t.Fatalf("hit kind = %q, want bottle", hit.EnemyKind)
	}
	if got := countTag(e, tags.Enemy); got != 0 {
		t.Fatalf("enemy survived its own contact, %d live", got)
	}

	effects := components.Effects.Get(playerEntry)
	want := GetOrCreateClock(e).Now.Add(cfg.Effects.Invulnerability)
	if !effects.InvulnerableUntil.Equal(want) {
		t.Fatalf("InvulnerableUntil = %v, want %v", effects.InvulnerableUntil, want)
	}
}

func TestAtMostOneHitPerTick(t *testing.T) {
	e := newRun(cfg.VariantRooftop, 1)
	v := GetSession(e).Variant
	py := v.FloorY - v.PlayerHeight()/2
	playerEntry := addPlayer(e, 320, py)
	spawnTestEnemy(e, 30, 318, py, 0, 0)
	spawnTestEnemy(e, 30, 322, py, 0, 0)

	UpdateObjects(e)
	UpdateCollisions(e)

	if !playerEntry.HasComponent(components.HitEvent) {
		t.Fatal("no hit event for overlapping enemies")
	}
	// The first contact armed invulnerability, so the second enemy passes.
	if got := countTag(e, tags.Enemy); got != 1 {
		t.Fatalf("live enemies after one tick = %d, want 1", got)
	}
}

func TestInvulnerabilityLetsEnemiesPass(t *testing.T) {
	e := newRun(cfg.VariantRooftop, 1)
	v := GetSession(e).Variant
	py := v.FloorY - v.PlayerHeight()/2
	playerEntry := addPlayer(e, 320, py)
	spawnTestEnemy(e, 30, 320, py, 0, 0)

	effects := components.Effects.Get(playerEntry)
	effects.InvulnerableUntil = GetOrCreateClock(e).Now.Add(time.Second)

	UpdateObjects(e)
	UpdateCollisions(e)

	if playerEntry.HasComponent(components.HitEvent) {
		t.Fatal("hit filed during the invulnerability window")
	}
	if got := countTag(e, tags.Enemy); got != 1 {
		t.Fatalf("enemy destroyed during invulnerability, %d live", got)
	}
}

func TestPickupsCollectDuringInvulnerability(t *testing.T) {
	e := newRun(cfg.VariantRooftop, 1)
	v := GetSession(e).Variant
	py := v.FloorY - v.PlayerHeight()/2
	playerEntry := addPlayer(e, 320, py)
	heart := factory.CreatePickup(e, components.CategoryCollectible, v.Collectibles[0], 320, py, 0, 0, testStart)

	components.Effects.Get(playerEntry).InvulnerableUntil = GetOrCreateClock(e).Now.Add(time.Second)

	UpdateObjects(e)
	UpdateCollisions(e)

	if !heart.HasComponent(components.Consumed) {
		t.Fatal("pickup not collected while invulnerable")
	}
}

func TestPickupConsumedOnlyOnce(t *testing.T) {
	e := newRun(cfg.VariantRooftop, 1)
	v := GetSession(e).Variant
	py := v.FloorY - v.PlayerHeight()/2
	addPlayer(e, 320, py)
	can := factory.CreatePickup(e, components.CategoryPoint, v.Points[0], 320, py, 0, 0, testStart)

	UpdateObjects(e)
	UpdateCollisions(e)
	UpdateCollisions(e)

	if !can.HasComponent(components.Consumed) {
		t.Fatal("pickup not collected")
	}
	// Detection only marks; the despawn belongs to the effects pass.
	if got := countTag(e, tags.PointItem); got != 1 {
		t.Fatalf("point items after detection = %d, want 1", got)
	}
}

func TestPlazaCirclesForgiveNearMisses(t *testing.T) {
	e := newRun(cfg.VariantPlaza, 1)
	playerEntry := addPlayer(e, 320, 180)
	enemy := spawnTestEnemy(e, 40, 350, 180, 0, 0)

	// Boxes overlap at 30px separation, the shrunken circles do not:
	// player radius 12.8 plus obstacle radius 16 stays under 30.
	UpdateObjects(e)
	UpdateCollisions(e)

	if playerEntry.HasComponent(components.HitEvent) {
		t.Fatal("near miss counted as a hit")
	}
	if got := countTag(e, tags.Enemy); got != 1 {
		t.Fatalf("enemy destroyed on a near miss, %d live", got)
	}

	components.Position.Get(enemy).X = 348
	UpdateObjects(e)
	UpdateCollisions(e)

	if !playerEntry.HasComponent(components.HitEvent) {
		t.Fatal("true circle overlap not counted as a hit")
	}
}

func TestDriftedPickupsAreCulledUnconsumed(t *testing.T) {
	e := newRun(cfg.VariantRooftop, 1)
	session := GetSession(e)
	v := session.Variant
	addPlayer(e, 100, v.FloorY-v.PlayerHeight()/2)
	factory.CreatePickup(e, components.CategoryPoint, v.Points[0],
		500, float64(cfg.C.Height)+v.CullMargin+10, 0, 0, testStart)

	UpdateObjects(e)
	UpdateCollisions(e)
	UpdateEffects(e)

	if got := countTag(e, tags.PointItem); got != 0 {
		t.Fatalf("drifted point item still live, %d", got)
	}
	if session.Score != 0 {
		t.Fatalf("score = %d after a culled pickup, want 0", session.Score)
	}
}
