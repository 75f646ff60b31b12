package config

import (
	"math/rand"
	"testing"
	"time"
)

func TestEveryVariantIsRegisteredAndOrdered(t *testing.T) {
	if len(Variants) != len(VariantOrder) {
		t.Fatalf("%d variants but %d in the progression order", len(Variants), len(VariantOrder))
	}
	for _, id := range VariantOrder {
		v, ok := Variants[id]
		if !ok {
			t.Fatalf("ordered variant %q not registered", id)
		}
		if v.ID != id {
			t.Fatalf("variant registered under %q carries ID %q", id, v.ID)
		}
		if v.Duration <= 0 {
			t.Fatalf("variant %q has no session duration", id)
		}
		if len(v.EnemyKinds) == 0 {
			t.Fatalf("variant %q has nothing to dodge", id)
		}
	}
}

func TestPlayerHeightPrefersViewportFraction(t *testing.T) {
	v := &VariantConfig{PlayerHeightFrac: 0.16}
	if got, want := v.PlayerHeight(), 0.16*float64(C.Height); got != want {
		t.Fatalf("PlayerHeight = %v, want %v", got, want)
	}

	v = &VariantConfig{PlayerFixedHeight: 32}
	if got := v.PlayerHeight(); got != 32 {
		t.Fatalf("fixed PlayerHeight = %v, want 32", got)
	}
}

func TestPlayerWidthFallsBackToConfiguredAspect(t *testing.T) {
	v := &VariantConfig{PlayerFixedHeight: 40, PlayerAspect: 0.5}

	if got := v.PlayerWidth(0); got != 20 {
		t.Fatalf("PlayerWidth(unresolved) = %v, want 20", got)
	}
	if got := v.PlayerWidth(0.75); got != 30 {
		t.Fatalf("PlayerWidth(resolved) = %v, want 30", got)
	}
}

func TestRadiusTuningHasForgivingDefaults(t *testing.T) {
	v := &VariantConfig{PlayerFixedHeight: 32, PlayerAspect: 1}

	if got := v.PlayerRadius(1); got != 16 {
		t.Fatalf("default PlayerRadius = %v, want half width", got)
	}
	v.PlayerRadiusScale = 0.8
	if got := v.PlayerRadius(1); got != 12.8 {
		t.Fatalf("scaled PlayerRadius = %v, want 12.8", got)
	}

	if got := v.ObstacleRadius(40); got != 20 {
		t.Fatalf("default ObstacleRadius = %v, want size/2", got)
	}
	v.ObstacleRadiusDiv = 2.5
	if got := v.ObstacleRadius(40); got != 16 {
		t.Fatalf("tuned ObstacleRadius = %v, want 16", got)
	}
}

func TestRespawnIntervalFixedVersusRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	fixed := &VariantConfig{EnemyInterval: 900 * time.Millisecond}
	for i := 0; i < 10; i++ {
		if got := fixed.EnemyRespawnInterval(rng); got != 900*time.Millisecond {
			t.Fatalf("fixed interval draw = %v, want 900ms", got)
		}
	}

	ranged := &VariantConfig{
		EnemyIntervalMin: 450 * time.Millisecond,
		EnemyIntervalMax: 1100 * time.Millisecond,
	}
	for i := 0; i < 100; i++ {
		got := ranged.EnemyRespawnInterval(rng)
		if got < 450*time.Millisecond || got >= 1100*time.Millisecond {
			t.Fatalf("ranged interval draw = %v, want within [450ms, 1100ms)", got)
		}
	}
}
