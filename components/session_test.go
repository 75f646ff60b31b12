package components

import (
	"testing"
	"time"

	cfg "github.com/voidwhale/spraydash/config"
)

func timedSession(d time.Duration) (*SessionData, time.Time) {
	start := time.Date(2025, 6, 1, 22, 0, 0, 0, time.UTC)
	return &SessionData{
		Variant:   &cfg.VariantConfig{Duration: d},
		StartedAt: start,
		Running:   true,
	}, start
}

func TestRemainingSecondsRoundsUp(t *testing.T) {
	s, start := timedSession(30 * time.Second)

	if got := s.RemainingSeconds(start); got != 30 {
		t.Fatalf("remaining at start = %d, want 30", got)
	}
	// 0.2s from expiry still reads as 1 on the HUD.
	if got := s.RemainingSeconds(start.Add(29800 * time.Millisecond)); got != 1 {
		t.Fatalf("remaining near expiry = %d, want 1", got)
	}
	if got := s.RemainingSeconds(start.Add(12500 * time.Millisecond)); got != 18 {
		t.Fatalf("remaining mid-run = %d, want 18", got)
	}
}

func TestRemainingSecondsNeverNegative(t *testing.T) {
	s, start := timedSession(30 * time.Second)

	if got := s.RemainingSeconds(start.Add(31 * time.Second)); got != 0 {
		t.Fatalf("remaining past expiry = %d, want 0", got)
	}
}

func TestElapsedFloorsBeforeStart(t *testing.T) {
	s, start := timedSession(30 * time.Second)

	if got := s.Elapsed(start.Add(-time.Second)); got != 0 {
		t.Fatalf("elapsed before start = %v, want 0", got)
	}
}

func TestExpiredIsInclusiveAtTheDeadline(t *testing.T) {
	s, start := timedSession(20 * time.Second)

	if s.Expired(start.Add(20*time.Second - time.Millisecond)) {
		t.Fatal("expired one millisecond early")
	}
	if !s.Expired(start.Add(20 * time.Second)) {
		t.Fatal("not expired exactly at the deadline")
	}
}
