package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

//go:embed all:maps
var assetFS embed.FS

// Resolver maps visual handles ("enemy_bottle", "writer_nova") to skin
// files in the asset tree. Every lookup walks a fallback chain: the
// handle's own file first, then each alternate. A handle whose whole
// chain is missing resolves to the procedural placeholder (empty path,
// nil image) and logs a single warning, so a stripped-down asset tree
// still runs.
type Resolver struct {
	fsys     fs.FS
	resolved map[string]string
	aspects  map[string]float64
	images   map[string]*ebiten.Image
	warned   map[string]bool
}

func NewResolver(fsys fs.FS) *Resolver {
	return &Resolver{
		fsys:     fsys,
		resolved: make(map[string]string),
		aspects:  make(map[string]float64),
		images:   make(map[string]*ebiten.Image),
		warned:   make(map[string]bool),
	}
}

// Default resolves against the embedded asset tree.
var Default = NewResolver(assetFS)

func skinPath(handle string) string {
	return fmt.Sprintf("skins/%s.png", handle)
}

// Lookup returns the path of the first skin file that exists for the
// handle's fallback chain, or "" when the whole chain is missing.
// Results are cached, including misses.
func (r *Resolver) Lookup(handle string, alternates ...string) string {
	if path, ok := r.resolved[handle]; ok {
		return path
	}

	for _, name := range append([]string{handle}, alternates...) {
		path := skinPath(name)
		if _, err := fs.Stat(r.fsys, path); err == nil {
			r.resolved[handle] = path
			return path
		}
	}

	if !r.warned[handle] {
		r.warned[handle] = true
		log.Printf("Warning: no skin found for %q, using placeholder shape", handle)
	}
	r.resolved[handle] = ""
	return ""
}

// Aspect returns the width/height ratio of the resolved skin, or
// fallback when the chain resolves to the placeholder. Only the image
// header is decoded, so this works without a graphics context.
func (r *Resolver) Aspect(fallback float64, handle string, alternates ...string) float64 {
	path := r.Lookup(handle, alternates...)
	if path == "" {
		return fallback
	}

	if a, ok := r.aspects[path]; ok {
		return a
	}

	data, err := fs.ReadFile(r.fsys, path)
	if err != nil {
		log.Printf("Warning: could not read skin %s: %v", path, err)
		return fallback
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil || cfg.Height == 0 {
		log.Printf("Warning: could not decode skin %s: %v", path, err)
		return fallback
	}

	a := float64(cfg.Width) / float64(cfg.Height)
	r.aspects[path] = a
	return a
}

// Image materializes the resolved skin as a GPU image. A nil return
// means the placeholder shape should be drawn instead.
func (r *Resolver) Image(handle string, alternates ...string) *ebiten.Image {
	path := r.Lookup(handle, alternates...)
	if path == "" {
		return nil
	}

	if img, ok := r.images[path]; ok {
		return img
	}

	data, err := fs.ReadFile(r.fsys, path)
	if err != nil {
		log.Printf("Warning: could not read skin %s: %v", path, err)
		return nil
	}
	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(data))
	if err != nil {
		log.Printf("Warning: could not decode skin %s: %v", path, err)
		return nil
	}

	r.images[path] = img
	return img
}
