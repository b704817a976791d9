package game

import (
	"encoding/binary"
	"testing"
)

// Only the pure synthesis functions are tested; creating an audio.Context
// needs a real audio device.

func decodeSamples(t *testing.T, pcm []byte) []int16 {
	t.Helper()
	if len(pcm)%4 != 0 {
		t.Fatalf("pcm length %d is not whole stereo frames", len(pcm))
	}
	out := make([]int16, 0, len(pcm)/4)
	for i := 0; i < len(pcm); i += 4 {
		l := int16(binary.LittleEndian.Uint16(pcm[i:]))
		r := int16(binary.LittleEndian.Uint16(pcm[i+2:]))
		if l != r {
			t.Fatalf("frame %d: channels differ (%d vs %d), expected a mono signal", i/4, l, r)
		}
		out = append(out, l)
	}
	return out
}

func TestRenderChirp_Shape(t *testing.T) {
	samples := decodeSamples(t, renderChirp())
	if want := int(0.09 * sampleRate); len(samples) != want {
		t.Fatalf("chirp length = %d frames, want %d", len(samples), want)
	}

	var peak int16
	for _, s := range samples {
		if s > peak {
			peak = s
		}
	}
	if peak == 0 {
		t.Fatal("chirp is silent")
	}
	if peak > 16384 {
		t.Fatalf("chirp peak %d exceeds the 0.35 amplitude budget", peak)
	}

	// The envelope decays: the loudest part sits in the first half.
	var firstPeak, lastPeak int16
	half := len(samples) / 2
	for _, s := range samples[:half] {
		if s > firstPeak {
			firstPeak = s
		}
	}
	for _, s := range samples[half:] {
		if s > lastPeak {
			lastPeak = s
		}
	}
	if lastPeak >= firstPeak {
		t.Fatalf("chirp does not decay: first half %d, second half %d", firstPeak, lastPeak)
	}
}

func TestRenderTick_ShorterAndQuieterThanChirp(t *testing.T) {
	tick := decodeSamples(t, renderTick())
	chirp := decodeSamples(t, renderChirp())
	if len(tick) >= len(chirp) {
		t.Fatalf("tick (%d frames) should be shorter than the chirp (%d)", len(tick), len(chirp))
	}

	var tickPeak, chirpPeak int16
	for _, s := range tick {
		if s > tickPeak {
			tickPeak = s
		}
	}
	for _, s := range chirp {
		if s > chirpPeak {
			chirpPeak = s
		}
	}
	if tickPeak == 0 {
		t.Fatal("tick is silent")
	}
	if tickPeak >= chirpPeak {
		t.Fatalf("tick peak %d should sit below the chirp peak %d", tickPeak, chirpPeak)
	}
}

func TestNilSoundBank_IsSilent(t *testing.T) {
	var b *soundBank
	// Must not panic.
	b.playCapture()
	b.playTick()
}
