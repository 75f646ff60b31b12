package components

import (
	"github.com/tanema/gween"
	cfg "github.com/voidwhale/spraydash/config"
	"github.com/yohamta/donburi"
)

// TransitionData stores the pre-session briefing state (singleton
// component). Intro runs the fade-in and hold legs; Outro fades back to
// black once the player confirms. Alpha is the latest sampled value,
// 0 = black, 1 = card fully visible.
type TransitionData struct {
	Variant cfg.VariantID

	Intro *gween.Sequence
	Outro *gween.Tween
	Alpha float64

	Elapsed float64
}

var Transition = donburi.NewComponentType[TransitionData]()
