package assets

import (
	"bytes"
	"image"
	"image/png"
	"testing"
	"testing/fstest"
)

func pngFile(t *testing.T, w, h int) *fstest.MapFile {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewNRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return &fstest.MapFile{Data: buf.Bytes()}
}

func TestLookupPrefersTheHandleOwnSkin(t *testing.T) {
	r := NewResolver(fstest.MapFS{
		"skins/writer_nova.png": pngFile(t, 2, 2),
		"skins/writer.png":      pngFile(t, 2, 2),
	})

	if got := r.Lookup("writer_nova", "writer"); got != "skins/writer_nova.png" {
		t.Fatalf("Lookup = %q, want the handle's own skin", got)
	}
}

func TestLookupWalksTheFallbackChain(t *testing.T) {
	r := NewResolver(fstest.MapFS{
		"skins/writer.png": pngFile(t, 2, 2),
	})

	if got := r.Lookup("writer_nova", "writer"); got != "skins/writer.png" {
		t.Fatalf("Lookup = %q, want the chain fallback", got)
	}
}

func TestLookupCachesMisses(t *testing.T) {
	fsys := fstest.MapFS{}
	r := NewResolver(fsys)

	if got := r.Lookup("ghost"); got != "" {
		t.Fatalf("Lookup on empty tree = %q, want placeholder", got)
	}

	// A file appearing later must not resurrect the handle: the miss is
	// final for the resolver's lifetime.
	fsys["skins/ghost.png"] = pngFile(t, 2, 2)
	if got := r.Lookup("ghost"); got != "" {
		t.Fatalf("cached miss re-resolved to %q", got)
	}
}

func TestAspectFallsBackForPlaceholders(t *testing.T) {
	r := NewResolver(fstest.MapFS{})

	if got := r.Aspect(0.6, "ghost"); got != 0.6 {
		t.Fatalf("Aspect = %v, want the 0.6 fallback", got)
	}
}

func TestAspectMeasuresTheSkin(t *testing.T) {
	r := NewResolver(fstest.MapFS{
		"skins/writer.png": pngFile(t, 3, 4),
	})

	if got := r.Aspect(1, "writer"); got != 0.75 {
		t.Fatalf("Aspect = %v, want 0.75 from a 3x4 skin", got)
	}
}

func TestAspectFollowsTheResolvedChainFile(t *testing.T) {
	r := NewResolver(fstest.MapFS{
		"skins/writer.png": pngFile(t, 2, 2),
	})

	if got := r.Aspect(0.6, "writer_nova", "writer"); got != 1 {
		t.Fatalf("Aspect = %v, want 1 from the chain fallback skin", got)
	}
}

func TestAspectSurvivesACorruptSkin(t *testing.T) {
	r := NewResolver(fstest.MapFS{
		"skins/writer.png": {Data: []byte("not a png")},
	})

	if got := r.Aspect(0.6, "writer"); got != 0.6 {
		t.Fatalf("Aspect = %v, want fallback for an undecodable skin", got)
	}
}
