package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

const (
	blipAttack  = 2 * time.Millisecond
	blipRelease = 30 * time.Millisecond
	noteLength  = 110 * time.Millisecond
)

// clipVolumes balances the effects against each other before the master
// volume is applied. Shots fire constantly and sit lowest.
var clipVolumes = [core.SoundCount]float64{
	core.SoundNewRound:   0.7,
	core.SoundBreach:     0.9,
	core.SoundAlienHit:   0.6,
	core.SoundPlayerHit:  1.0,
	core.SoundPlayerFire: 0.35,
	core.SoundAlienFire:  0.3,
}

// newClip synthesizes the streamer for a sound. Returns nil for unknown
// sounds.
func newClip(s core.Sound, rate beep.SampleRate) beep.Streamer {
	var clip beep.Streamer

	switch s {
	case core.SoundNewRound:
		// Rising arpeggio C5 E5 G5 C6
		clip = beep.Seq(
			note(523.25, WaveSine, rate),
			note(659.25, WaveSine, rate),
			note(783.99, WaveSine, rate),
			NewEnvelope(NewOscillator(1046.5, 2*noteLength, WaveSine, rate), 2*noteLength, blipAttack, noteLength, rate),
		)
	case core.SoundBreach:
		// Falling alarm
		clip = beep.Seq(
			note(440, WaveSquare, rate),
			note(330, WaveSquare, rate),
			NewEnvelope(NewSweep(220, 110, 3*noteLength, WaveSquare, rate), 3*noteLength, blipAttack, 2*noteLength, rate),
		)
	case core.SoundAlienHit:
		d := 150 * time.Millisecond
		clip = beep.Mix(
			NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, blipAttack, d-blipAttack, rate),
			newVolume(NewEnvelope(NewSweep(400, 120, d, WaveSquare, rate), d, blipAttack, d/2, rate), 0.4),
		)
	case core.SoundPlayerHit:
		d := 450 * time.Millisecond
		clip = beep.Mix(
			NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, blipAttack, d-blipAttack, rate),
			newVolume(NewEnvelope(NewSweep(160, 40, d, WaveSaw, rate), d, blipAttack, d/2, rate), 0.6),
		)
	case core.SoundPlayerFire:
		d := 90 * time.Millisecond
		clip = NewEnvelope(NewSweep(1400, 500, d, WaveSquare, rate), d, blipAttack, blipRelease, rate)
	case core.SoundAlienFire:
		d := 120 * time.Millisecond
		clip = NewEnvelope(NewSweep(300, 180, d, WaveSaw, rate), d, blipAttack, blipRelease, rate)
	default:
		return nil
	}

	return newVolume(clip, clipVolumes[s])
}

func note(freq float64, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, noteLength, wave, rate), noteLength, blipAttack, blipRelease, rate)
}

// renderClip synthesizes a sound into an in-memory buffer.
func renderClip(s core.Sound, rate beep.SampleRate) *beep.Buffer {
	clip := newClip(s, rate)
	if clip == nil {
		return nil
	}

	buf := beep.NewBuffer(beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2})
	buf.Append(clip)
	return buf
}
