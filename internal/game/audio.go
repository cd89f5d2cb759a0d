package game

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
	"github.com/ncruces/zenity"
)

const (
	plopLength   = 140 * time.Millisecond
	plopLowHz    = 280
	plopHighHz   = 880
	plopGain     = 0.35
	plopDecay    = 5.0
	levelSamples = 1024
)

// plopper plays the liquid sound. All plops go through one mixer so the tap
// sees everything that is audible.
type plopper struct {
	rate   beep.SampleRate
	mixer  *beep.Mixer
	tap    *visualTap
	sample *beep.Buffer
	muted  bool
}

func newPlopper(rate beep.SampleRate, ringSize int) (*plopper, error) {
	if err := speaker.Init(rate, rate.N(time.Second/30)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	p := &plopper{rate: rate, mixer: &beep.Mixer{}}
	p.tap = newVisualTap(p.mixer, ringSize)
	speaker.Play(p.tap)
	return p, nil
}

// play queues a plop. strength scales loudness and is clamped to [0, 1].
func (p *plopper) play(strength float64) {
	if p == nil || p.muted {
		return
	}
	strength = clamp01(strength)
	if strength == 0 {
		return
	}

	var s beep.Streamer
	if p.sample != nil {
		s = &effects.Volume{
			Streamer: p.sample.Streamer(0, p.sample.Len()),
			Base:     2,
			Volume:   math.Log2(strength),
		}
	} else {
		s = synthPlop(p.rate, strength)
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

func (p *plopper) level() float64 {
	if p == nil {
		return 0
	}
	return p.tap.level(levelSamples)
}

// synthPlop is a short rising sine with an exponential decay.
func synthPlop(rate beep.SampleRate, strength float64) beep.Streamer {
	n := rate.N(plopLength)
	i := 0
	var phase float64
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if i >= n {
			return 0, false
		}
		for j := range samples {
			if i >= n {
				return j, true
			}
			t := float64(i) / float64(n)
			freq := plopLowHz + (plopHighHz-plopLowHz)*t*t
			phase += 2 * math.Pi * freq / float64(rate)
			v := math.Sin(phase) * math.Exp(-plopDecay*t) * plopGain * strength
			samples[j] = [2]float64{v, v}
			i++
		}
		return len(samples), true
	})
}

// loadSample decodes a wav, mp3 or flac file fully into memory, resampled to
// the speaker rate.
func (p *plopper) loadSample(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}

	// Decode based on extension
	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	default:
		_ = f.Close()
		return errors.New("unsupported file type: " + filepath.Ext(path))
	}
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("decode %s: %w", path, err)
	}
	defer streamer.Close()

	var src beep.Streamer = streamer
	if format.SampleRate != p.rate {
		src = beep.Resample(4, format.SampleRate, p.rate, streamer)
	}
	buf := beep.NewBuffer(beep.Format{SampleRate: p.rate, NumChannels: 2, Precision: 2})
	buf.Append(src)
	if err := streamer.Err(); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	speaker.Lock()
	p.sample = buf
	speaker.Unlock()
	return nil
}

func (p *plopper) openSampleDialog() error {
	filename, err := zenity.SelectFile(
		zenity.Title("Open Plop Sound"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: []string{"*.wav", "*.mp3", "*.flac"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}
	return p.loadSample(filename)
}
