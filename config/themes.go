package config

import "image/color"

// ShapeKind selects the procedural stand-in drawn for an unresolved sprite
type ShapeKind int

const (
	ShapeRect ShapeKind = iota
	ShapeCircle
	ShapeCan
	ShapeHeart
	ShapeBottle
	ShapePot
	ShapeChair
	ShapeCone
	ShapeCrate
	ShapeWriter
	ShapeWriterTop
)

// VisualStyle describes how the renderer draws a visual handle when no
// image asset resolves for it
type VisualStyle struct {
	Shape     ShapeKind
	Primary   color.RGBA
	Secondary color.RGBA
}

// ThemeConfig is the per-variant skin: backdrop, instruction text and
// anything else that is presentation-only
type ThemeConfig struct {
	Background   string // visual handle for the backdrop image
	SkyTop       color.RGBA
	SkyBottom    color.RGBA
	GroundColor  color.RGBA
	Accent       color.RGBA
	Instructions []string
}

// Themes maps each variant to its skin
var Themes map[VariantID]ThemeConfig

// Visuals maps visual handles to their procedural stand-in styles.
// Handles missing here fall through to the plain placeholder rectangle.
var Visuals map[string]VisualStyle

func init() {
	Themes = map[VariantID]ThemeConfig{
		VariantRooftop: {
			Background:  "bg_rooftop",
			SkyTop:      color.RGBA{R: 30, G: 24, B: 64, A: 255},
			SkyBottom:   color.RGBA{R: 96, G: 52, B: 110, A: 255},
			GroundColor: color.RGBA{R: 52, G: 48, B: 58, A: 255},
			Accent:      Teal,
			Instructions: []string{
				"Junk is raining off the tower.",
				"Slide along the ledge, dodge the junk,",
				"and catch falling cans to fill your piece.",
			},
		},
		VariantPlaza: {
			Background:  "bg_plaza",
			SkyTop:      color.RGBA{R: 40, G: 44, B: 52, A: 255},
			SkyBottom:   color.RGBA{R: 70, G: 74, B: 84, A: 255},
			GroundColor: color.RGBA{R: 84, G: 80, B: 74, A: 255},
			Accent:      Pink,
			Instructions: []string{
				"The cafe crowd is hurling furniture.",
				"Keep moving and stay clear",
				"until the heat dies down.",
			},
		},
		VariantFence: {
			Background:  "bg_alley",
			SkyTop:      color.RGBA{R: 18, G: 30, B: 40, A: 255},
			SkyBottom:   color.RGBA{R: 46, G: 70, B: 86, A: 255},
			GroundColor: color.RGBA{R: 44, G: 52, B: 44, A: 255},
			Accent:      BrightGreen,
			Instructions: []string{
				"The yard is littered with junk.",
				"Hop the obstacles and grab the cans",
				"hanging along the fence line.",
			},
		},
	}

	Visuals = map[string]VisualStyle{
		"writer":     {Shape: ShapeWriter, Primary: Teal, Secondary: White},
		"writer_top": {Shape: ShapeWriterTop, Primary: Teal, Secondary: White},

		"enemy_bottle":    {Shape: ShapeBottle, Primary: color.RGBA{R: 90, G: 160, B: 90, A: 255}, Secondary: color.RGBA{R: 200, G: 220, B: 200, A: 255}},
		"enemy_flowerpot": {Shape: ShapePot, Primary: color.RGBA{R: 180, G: 92, B: 50, A: 255}, Secondary: BrightGreen},
		"enemy_chair":     {Shape: ShapeChair, Primary: color.RGBA{R: 150, G: 100, B: 60, A: 255}, Secondary: color.RGBA{R: 100, G: 66, B: 40, A: 255}},
		"enemy_stool":     {Shape: ShapeChair, Primary: color.RGBA{R: 110, G: 110, B: 120, A: 255}, Secondary: color.RGBA{R: 80, G: 80, B: 90, A: 255}},
		"enemy_cone":      {Shape: ShapeCone, Primary: Orange, Secondary: White},
		"enemy_crate":     {Shape: ShapeCrate, Primary: color.RGBA{R: 160, G: 120, B: 70, A: 255}, Secondary: color.RGBA{R: 110, G: 80, B: 45, A: 255}},

		"pickup_heart":      {Shape: ShapeHeart, Primary: LightRed, Secondary: White},
		"pickup_can_silver": {Shape: ShapeCan, Primary: color.RGBA{R: 190, G: 195, B: 205, A: 255}, Secondary: Teal},
		"pickup_can_gold":   {Shape: ShapeCan, Primary: color.RGBA{R: 230, G: 190, B: 60, A: 255}, Secondary: Orange},
	}
}
