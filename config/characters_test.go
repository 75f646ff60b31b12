package config

import "testing"

func TestCharacterByIDFallsBackToFirst(t *testing.T) {
	if got := CharacterByID("nova"); got.ID != "nova" {
		t.Fatalf("CharacterByID(nova) = %q", got.ID)
	}
	if got := CharacterByID("somebody_else"); got.ID != Characters[0].ID {
		t.Fatalf("unknown id resolved to %q, want first character %q", got.ID, Characters[0].ID)
	}
}

func TestCharactersHaveDistinctVisuals(t *testing.T) {
	seen := map[string]bool{}
	for _, c := range Characters {
		if c.ID == "" || c.Name == "" || c.Visual == "" {
			t.Fatalf("character %+v missing identity fields", c)
		}
		if seen[c.Visual] {
			t.Fatalf("visual %q used by two characters", c.Visual)
		}
		seen[c.Visual] = true
	}
}

func TestDefaultCharacterExists(t *testing.T) {
	if got := CharacterByID(Settings.DefaultCharacter); got.ID != Settings.DefaultCharacter {
		t.Fatalf("default character %q not in the roster", Settings.DefaultCharacter)
	}
}
