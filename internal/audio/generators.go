package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
)

// SweepGenerator plays a tone that glides from one frequency to another with
// a linear fade out. It ends after its duration.
type SweepGenerator struct {
	sr        beep.SampleRate
	from, to  float64 // Hz
	amplitude float64
	phase     float64
	pos       int
	samples   int
	square    bool
}

// NewSweepGenerator creates a sine sweep lasting d.
func NewSweepGenerator(sr beep.SampleRate, from, to float64, d time.Duration, amplitude float64) *SweepGenerator {
	return &SweepGenerator{
		sr:        sr,
		from:      from,
		to:        to,
		amplitude: amplitude,
		samples:   sr.N(d),
	}
}

// NewBuzzGenerator creates a harsher square-wave sweep lasting d.
func NewBuzzGenerator(sr beep.SampleRate, from, to float64, d time.Duration, amplitude float64) *SweepGenerator {
	g := NewSweepGenerator(sr, from, to, d, amplitude)
	g.square = true
	return g
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.samples {
			return i, i > 0
		}
		progress := float64(g.pos) / float64(g.samples)
		freq := g.from + (g.to-g.from)*progress

		g.phase += freq / float64(g.sr)
		g.phase -= math.Floor(g.phase)

		v := math.Sin(2 * math.Pi * g.phase)
		if g.square {
			v = math.Copysign(0.6, v)
		}
		sample := g.amplitude * (1 - progress) * v

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error {
	return nil
}

// ChimeGenerator plays a short rising arpeggio for orb pickups.
type ChimeGenerator struct {
	sr    beep.SampleRate
	notes []float64
	step  int // Samples per note
	pos   int
}

// NewChimeGenerator creates a chime of the given notes, each lasting d.
func NewChimeGenerator(sr beep.SampleRate, d time.Duration, notes ...float64) *ChimeGenerator {
	return &ChimeGenerator{sr: sr, notes: notes, step: sr.N(d)}
}

func (g *ChimeGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	total := g.step * len(g.notes)
	for i := range samples {
		if g.pos >= total {
			return i, i > 0
		}
		note := g.notes[g.pos/g.step]
		local := g.pos % g.step
		t := float64(g.pos) / float64(g.sr)

		env := math.Exp(-float64(local) / float64(g.step) * 4)
		sample := 0.18 * env * (math.Sin(2*math.Pi*note*t) + 0.3*math.Sin(4*math.Pi*note*t))

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChimeGenerator) Err() error {
	return nil
}

// SlideGenerator is an endless filtered-noise hiss used while the player
// rides a platform.
type SlideGenerator struct {
	sr   beep.SampleRate
	rng  *rand.Rand
	last float64 // One-pole low-pass state
	pos  int
}

// NewSlideGenerator creates a slide hiss generator.
func NewSlideGenerator(sr beep.SampleRate) *SlideGenerator {
	return &SlideGenerator{sr: sr, rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (g *SlideGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		noise := g.rng.Float64()*2 - 1
		g.last += 0.08 * (noise - g.last)

		// Slow wobble keeps the hiss from sounding static
		t := float64(g.pos) / float64(g.sr)
		wobble := 0.75 + 0.25*math.Sin(2*math.Pi*3*t)
		sample := 0.35 * wobble * g.last

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SlideGenerator) Err() error {
	return nil
}

// SynthwaveGenerator is the endless ambient track: a kick on every beat and
// a bass line walking a minor progression, one chord per bar.
type SynthwaveGenerator struct {
	sr     beep.SampleRate
	pos    int
	beat   int // Samples per beat
	chords []float64
}

// NewSynthwaveGenerator creates the ambient track at 110 BPM.
func NewSynthwaveGenerator(sr beep.SampleRate) *SynthwaveGenerator {
	return &SynthwaveGenerator{
		sr:     sr,
		beat:   sr.N(time.Minute / 110),
		chords: []float64{55.00, 43.65, 65.41, 49.00}, // A1 F1 C2 G1
	}
}

func (g *SynthwaveGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	kickLen := g.sr.N(90 * time.Millisecond)
	for i := range samples {
		beatPos := g.pos % g.beat
		bar := (g.pos / (g.beat * 4)) % len(g.chords)
		root := g.chords[bar]
		t := float64(g.pos) / float64(g.sr)

		kick := 0.0
		if beatPos < kickLen {
			env := 1 - float64(beatPos)/float64(kickLen)
			bt := float64(beatPos) / float64(g.sr)
			kick = 0.35 * env * math.Sin(2*math.Pi*55*(1+2*env)*bt)
		}

		// Eighth-note octave bass
		octave := 1.0
		if (g.pos/(g.beat/2))%2 == 1 {
			octave = 2
		}
		bass := 0.12 * math.Sin(2*math.Pi*root*octave*t)
		pad := 0.04 * math.Sin(2*math.Pi*root*4*t) * (0.6 + 0.4*math.Sin(2*math.Pi*0.25*t))

		sample := kick + bass + pad
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SynthwaveGenerator) Err() error {
	return nil
}
