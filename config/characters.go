package config

import "image/color"

// CharacterConfig describes one selectable writer
type CharacterConfig struct {
	ID     string
	Name   string
	Visual string     // visual handle override for the player sprite
	Jacket color.RGBA // procedural stand-in colors
	Cap    color.RGBA
}

// Characters lists the selectable writers in display order
var Characters []CharacterConfig

func init() {
	Characters = []CharacterConfig{
		{ID: "nova", Name: "NOVA", Visual: "writer_nova", Jacket: Teal, Cap: White},
		{ID: "kilo", Name: "KILO", Visual: "writer_kilo", Jacket: BrightOrange, Cap: color.RGBA{R: 40, G: 40, B: 40, A: 255}},
		{ID: "echo", Name: "ECHO", Visual: "writer_echo", Jacket: Purple, Cap: Pink},
	}
}

// CharacterByID returns the character with the given id, falling back to
// the first entry when the id is unknown.
func CharacterByID(id string) CharacterConfig {
	for _, c := range Characters {
		if c.ID == id {
			return c
		}
	}
	return Characters[0]
}
