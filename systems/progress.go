package systems

import (
	cfg "github.com/voidwhale/spraydash/config"
)

// clearedStations records which stations have been painted this run.
// Package-level so it survives scene teardown; it is not persisted
// between launches.
var clearedStations = map[cfg.VariantID]bool{}

// MarkCleared records a station win.
func MarkCleared(id cfg.VariantID) {
	clearedStations[id] = true
}

// IsCleared reports whether the station has been won this run.
func IsCleared(id cfg.VariantID) bool {
	return clearedStations[id]
}

// ClearedCount returns how many stations have been won this run.
func ClearedCount() int {
	return len(clearedStations)
}

// ResetProgress wipes the cleared set. Used when a fresh run starts
// from the welcome screen.
func ResetProgress() {
	clearedStations = map[cfg.VariantID]bool{}
}
