package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/younwookim/dodgeball/internal/application/system"
)

// waveType defines oscillator wave shapes
type waveType int

const (
	waveSine waveType = iota
	waveSquare
	waveNoise
)

// oscillator generates a raw wave with a linear decay to silence
type oscillator struct {
	freq     float64
	phase    float64
	position int
	duration int
	wave     waveType
	rate     beep.SampleRate
}

func newOscillator(freq float64, duration time.Duration, wave waveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		val := sample(o.wave, o.phase)
		val *= 1 - float64(o.position)/float64(o.duration)

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

func sample(wave waveType, phase float64) float64 {
	switch wave {
	case waveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case waveNoise:
		return rand.Float64()*2 - 1
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// arpeggio loops a note pattern forever, each note fading in and out
type arpeggio struct {
	notes    []float64
	noteLen  int
	position int
	phase    float64
	rate     beep.SampleRate
}

func newArpeggio(notes []float64, noteLen time.Duration, rate beep.SampleRate) beep.Streamer {
	return &arpeggio{
		notes:   notes,
		noteLen: rate.N(noteLen),
		rate:    rate,
	}
}

func (a *arpeggio) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		note := (a.position / a.noteLen) % len(a.notes)
		within := float64(a.position%a.noteLen) / float64(a.noteLen)

		val := 0.3 * math.Sin(2*math.Pi*a.phase) * math.Sin(math.Pi*within)
		samples[i][0] = val
		samples[i][1] = val

		a.phase += a.notes[note] / float64(a.rate)
		a.phase -= math.Floor(a.phase)
		a.position++
	}
	return len(samples), true
}

func (a *arpeggio) Err() error { return nil }

// Music patterns keyed by level track name. Frequencies in Hz.
var tracks = map[string][]float64{
	"menu":   {261.63, 329.63, 392.00, 523.25},
	"level1": {220.00, 261.63, 329.63, 261.63},
	"level2": {196.00, 246.94, 293.66, 369.99},
	"level3": {146.83, 174.61, 220.00, 233.08, 220.00, 174.61},
}

const defaultTrack = "level1"

// trackNotes returns the pattern for a track, falling back to the default.
func trackNotes(track string) []float64 {
	if notes, ok := tracks[track]; ok {
		return notes
	}
	return tracks[defaultTrack]
}

// cueStreamer builds the one-shot sound for a cue, or nil for an unknown cue.
func cueStreamer(cue system.Cue, rate beep.SampleRate) beep.Streamer {
	switch cue {
	case system.CueCollision:
		return newOscillator(180, 120*time.Millisecond, waveSquare, rate)
	case system.CueShoot:
		return newOscillator(880, 80*time.Millisecond, waveSine, rate)
	case system.CueExplosion:
		return newOscillator(0, 450*time.Millisecond, waveNoise, rate)
	case system.CuePowerUp:
		return beep.Seq(
			newOscillator(659.25, 90*time.Millisecond, waveSine, rate),
			newOscillator(987.77, 140*time.Millisecond, waveSine, rate),
		)
	default:
		return nil
	}
}

// newVolume scales a stream linearly. math.Log2(0) is -Inf, so zero is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
