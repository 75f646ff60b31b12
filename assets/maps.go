package assets

import (
	"log"
	"sort"

	"github.com/lafriks/go-tiled"
	cfg "github.com/voidwhale/spraydash/config"
	"github.com/yohamta/donburi/features/math"
)

// Station is one playable spot on the district map.
type Station struct {
	Name    string
	Variant cfg.VariantID
	Order   int
	X, Y    float64
}

// DistrictMap is the overworld the player picks stations from.
type DistrictMap struct {
	Stations  []Station
	WalkPaths [][]math.Vec2
	Width     int
	Height    int
}

// LoadDistrictMap reads the district TMX from the embedded asset tree.
// A missing or empty map falls back to a built-in three-station layout
// with a warning, so the game always boots.
func LoadDistrictMap(path string) DistrictMap {
	tmx, err := tiled.LoadFile(path, tiled.WithFileSystem(assetFS))
	if err != nil {
		log.Printf("Warning: could not load district map %s: %v", path, err)
		return fallbackDistrict()
	}

	d := parseDistrict(tmx)
	if len(d.Stations) == 0 {
		log.Printf("Warning: district map %s has no stations, using built-in layout", path)
		return fallbackDistrict()
	}
	return d
}

func parseDistrict(tmx *tiled.Map) DistrictMap {
	d := DistrictMap{
		Width:  tmx.Width * tmx.TileWidth,
		Height: tmx.Height * tmx.TileHeight,
	}

	for _, og := range tmx.ObjectGroups {
		switch og.Name {
		case "Stations":
			for _, o := range og.Objects {
				variant := cfg.VariantID(o.Properties.GetString("variant"))
				if _, ok := cfg.Variants[variant]; !ok {
					log.Printf("Warning: station %q references unknown variant %q, skipping", o.Name, variant)
					continue
				}
				d.Stations = append(d.Stations, Station{
					Name:    o.Name,
					Variant: variant,
					Order:   o.Properties.GetInt("order"),
					X:       o.X,
					Y:       o.Y,
				})
			}
		case "WalkPaths":
			for _, o := range og.Objects {
				if len(o.PolyLines) == 0 {
					continue
				}
				polyline := o.PolyLines[0]
				if polyline.Points == nil || len(*polyline.Points) < 2 {
					continue
				}
				points := make([]math.Vec2, len(*polyline.Points))
				for i, point := range *polyline.Points {
					points[i] = math.Vec2{
						X: o.X + point.X,
						Y: o.Y + point.Y,
					}
				}
				d.WalkPaths = append(d.WalkPaths, points)
			}
		}
	}

	sort.Slice(d.Stations, func(i, j int) bool {
		return d.Stations[i].Order < d.Stations[j].Order
	})

	return d
}

// fallbackDistrict lays the three stock stations across the screen.
func fallbackDistrict() DistrictMap {
	w := float64(cfg.C.Width)
	h := float64(cfg.C.Height)
	stations := make([]Station, 0, len(cfg.VariantOrder))
	for i, id := range cfg.VariantOrder {
		frac := (float64(i) + 1) / (float64(len(cfg.VariantOrder)) + 1)
		stations = append(stations, Station{
			Name:    cfg.Variants[id].Title,
			Variant: id,
			Order:   i,
			X:       w * frac,
			Y:       h * 0.55,
		})
	}
	return DistrictMap{Stations: stations, Width: cfg.C.Width, Height: cfg.C.Height}
}
