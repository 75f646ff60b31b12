package assets

import (
	"testing"

	cfg "github.com/voidwhale/spraydash/config"
)

func TestDistrictMapLoadsStationsInOrder(t *testing.T) {
	d := LoadDistrictMap(cfg.Worldmap.MapFile)

	if len(d.Stations) != 3 {
		t.Fatalf("stations = %d, want 3", len(d.Stations))
	}
	if d.Width != cfg.C.Width || d.Height != cfg.C.Height {
		t.Fatalf("map size = %dx%d, want viewport %dx%d", d.Width, d.Height, cfg.C.Width, cfg.C.Height)
	}

	wantVariants := []cfg.VariantID{cfg.VariantRooftop, cfg.VariantPlaza, cfg.VariantFence}
	for i, s := range d.Stations {
		if s.Order != i {
			t.Fatalf("station %d has order %d, sort is broken", i, s.Order)
		}
		if s.Variant != wantVariants[i] {
			t.Fatalf("station %d variant = %q, want %q", i, s.Variant, wantVariants[i])
		}
	}

	first := d.Stations[0]
	if first.X != 120 || first.Y != 128 {
		t.Fatalf("first station at (%v, %v), want authored (120, 128)", first.X, first.Y)
	}
}

func TestDistrictMapCarriesWalkPaths(t *testing.T) {
	d := LoadDistrictMap(cfg.Worldmap.MapFile)

	if len(d.WalkPaths) != 1 {
		t.Fatalf("walk paths = %d, want 1", len(d.WalkPaths))
	}
	path := d.WalkPaths[0]
	if len(path) < 2 {
		t.Fatalf("path has %d points, want a drawable polyline", len(path))
	}

	// Polyline points are object-relative in the TMX; loading must shift
	// them into world coordinates that start at the first station.
	if path[0].X != 120 || path[0].Y != 128 {
		t.Fatalf("path start = (%v, %v), want (120, 128)", path[0].X, path[0].Y)
	}
	last := path[len(path)-1]
	if last.X != 520 || last.Y != 142 {
		t.Fatalf("path end = (%v, %v), want (520, 142)", last.X, last.Y)
	}
}

func TestMissingMapFallsBackToStockLayout(t *testing.T) {
	d := LoadDistrictMap("maps/missing.tmx")

	if len(d.Stations) != len(cfg.VariantOrder) {
		t.Fatalf("fallback stations = %d, want %d", len(d.Stations), len(cfg.VariantOrder))
	}
	for i, s := range d.Stations {
		if s.Variant != cfg.VariantOrder[i] {
			t.Fatalf("fallback station %d variant = %q, want %q", i, s.Variant, cfg.VariantOrder[i])
		}
		if i > 0 && s.X <= d.Stations[i-1].X {
			t.Fatalf("fallback stations not spread left to right: %v then %v", d.Stations[i-1].X, s.X)
		}
		if s.X <= 0 || s.X >= float64(cfg.C.Width) || s.Y <= 0 || s.Y >= float64(cfg.C.Height) {
			t.Fatalf("fallback station %d off screen at (%v, %v)", i, s.X, s.Y)
		}
	}
}
