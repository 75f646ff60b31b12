package components

import (
	"math"
	"time"

	cfg "github.com/voidwhale/spraydash/config"
	"github.com/yohamta/donburi"
)

// OutcomeID represents how a session ended
type OutcomeID int

const (
	OutcomeNone OutcomeID = iota
	OutcomeWon
	OutcomeLost
)

// SessionData stores one minigame run (singleton component).
// The session entity owns the variant policy, the player's hearts and
// score, and the terminal bookkeeping. Hearts and score live here rather
// than on the player entity because they are session results, not body
// state.
type SessionData struct {
	Variant *cfg.VariantConfig

	Score     int
	Hearts    int
	MaxHearts int

	StartedAt time.Time
	Running   bool
	Outcome   OutcomeID

	// ResolveAt is when the end-of-game callback fires; Resolved latches
	// after it has fired so resolution happens exactly once.
	ResolveAt time.Time
	Resolved  bool

	CharacterID string
}

var Session = donburi.NewComponentType[SessionData]()

// Elapsed returns how long the session has been running at now.
func (s *SessionData) Elapsed(now time.Time) time.Duration {
	if now.Before(s.StartedAt) {
		return 0
	}
	return now.Sub(s.StartedAt)
}

// RemainingSeconds returns the whole seconds left on the session timer,
// rounded up and never negative. A session 0.2s from expiry still shows 1.
func (s *SessionData) RemainingSeconds(now time.Time) int {
	left := s.Variant.Duration - s.Elapsed(now)
	if left <= 0 {
		return 0
	}
	return int(math.Ceil(left.Seconds()))
}

// Expired reports whether the session timer has run out at now.
func (s *SessionData) Expired(now time.Time) bool {
	return s.Elapsed(now) >= s.Variant.Duration
}
