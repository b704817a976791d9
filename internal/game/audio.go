package game

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const sampleRate = 44100

// soundBank holds the procedurally synthesised effects. A nil bank is
// silent, which is what the headless harness uses.
type soundBank struct {
	ctx     *audio.Context
	capture []byte
	tick    []byte
}

// newSoundBank builds the audio context and renders the effect samples once.
func newSoundBank() *soundBank {
	return &soundBank{
		ctx:     audio.NewContext(sampleRate),
		capture: renderChirp(),
		tick:    renderTick(),
	}
}

// playCapture plays the catch chirp.
func (b *soundBank) playCapture() {
	if b == nil {
		return
	}
	b.play(b.capture)
}

// playTick plays the soft UI tick.
func (b *soundBank) playTick() {
	if b == nil {
		return
	}
	b.play(b.tick)
}

func (b *soundBank) play(pcm []byte) {
	if b == nil || b.ctx == nil || len(pcm) == 0 {
		return
	}
	b.ctx.NewPlayerFromBytes(pcm).Play()
}

// renderChirp synthesises the capture sound: a short upward sine sweep
// with an exponential decay.
func renderChirp() []byte {
	const dur = 0.09
	return renderMono(dur, func(t, u float64) float64 {
		freq := 1100 + 700*u
		env := math.Exp(-6 * u)
		return 0.35 * env * math.Sin(2*math.Pi*freq*t)
	})
}

// renderTick synthesises a quiet click for menu actions.
func renderTick() []byte {
	const dur = 0.035
	return renderMono(dur, func(t, u float64) float64 {
		env := math.Exp(-10 * u)
		return 0.2 * env * math.Sin(2*math.Pi*660*t)
	})
}

// renderMono renders a waveform into 16-bit little-endian stereo PCM, the
// format NewPlayerFromBytes expects. gen receives the absolute time t and
// normalised progress u in [0,1).
func renderMono(dur float64, gen func(t, u float64) float64) []byte {
	n := int(dur * sampleRate)
	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		t := float64(i) / sampleRate
		u := float64(i) / float64(n)
		v := gen(t, u)
		if v > 1 {
			v = 1
		}
		if v < -1 {
			v = -1
		}
		s := int16(v * math.MaxInt16)
		lo := byte(s)
		hi := byte(s >> 8)
		buf[i*4] = lo
		buf[i*4+1] = hi
		buf[i*4+2] = lo
		buf[i*4+3] = hi
	}
	return buf
}
