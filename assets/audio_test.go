package assets

import (
	"encoding/binary"
	"testing"

	cfg "github.com/voidwhale/spraydash/config"
)

func TestSynthesizeRendersStereoPCM(t *testing.T) {
	const rate = 48000
	pcm := Synthesize(cfg.SoundHit, rate)
	if pcm == nil {
		t.Fatal("no PCM for a known sound")
	}

	want := int(float64(rate)*sfxRecipes[cfg.SoundHit].Duration.Seconds()) * 4
	if len(pcm) != want {
		t.Fatalf("len(pcm) = %d, want %d", len(pcm), want)
	}
}

func TestSynthesizeDuplicatesChannels(t *testing.T) {
	pcm := Synthesize(cfg.SoundPoint, 44100)
	for i := 0; i+3 < len(pcm); i += 4 {
		if pcm[i] != pcm[i+2] || pcm[i+1] != pcm[i+3] {
			t.Fatalf("frame %d: left and right channels differ", i/4)
		}
	}
}

func TestSynthesizedToneIsAudible(t *testing.T) {
	pcm := Synthesize(cfg.SoundHit, 44100)

	peak := int16(0)
	for i := 0; i+1 < len(pcm); i += 2 {
		v := int16(binary.LittleEndian.Uint16(pcm[i:]))
		if v < 0 {
			v = -v
		}
		if v > peak {
			peak = v
		}
	}
	if peak < 8000 {
		t.Fatalf("peak sample = %d, tone is near-silent", peak)
	}
}

func TestReleaseRampsToSilence(t *testing.T) {
	pcm := Synthesize(cfg.SoundLose, 44100)

	last := int16(binary.LittleEndian.Uint16(pcm[len(pcm)-4:]))
	if last < 0 {
		last = -last
	}
	if last > 2000 {
		t.Fatalf("final sample = %d, release did not ramp out", last)
	}
}

func TestUnknownSoundHasNoRecipe(t *testing.T) {
	if pcm := Synthesize(cfg.SoundID(999), 44100); pcm != nil {
		t.Fatalf("unknown sound rendered %d bytes", len(pcm))
	}
}

func TestEveryRecipeRenders(t *testing.T) {
	for id := range sfxRecipes {
		if pcm := Synthesize(id, 44100); len(pcm) == 0 {
			t.Fatalf("sound %d rendered empty", id)
		}
	}
}
