package audio

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// bufferLatency is the speaker buffer size; lower means snappier effects.
const bufferLatency = 50 * time.Millisecond

// Engine mixes sound effects into the system speaker.
type Engine struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	volume      float64
	clips       [core.SoundCount]*beep.Buffer
	mixer       *beep.Mixer
	initialized bool

	played  atomic.Uint64
	dropped atomic.Uint64
}

// NewEngine creates an engine and preloads every clip, the new-round
// fanfare included. The speaker is not touched until Initialize.
func NewEngine(cfg config.AudioConfig) *Engine {
	rate := beep.SampleRate(cfg.SampleRate)
	if rate <= 0 {
		rate = beep.SampleRate(config.Default().Audio.SampleRate)
	}

	e := &Engine{
		rate:   rate,
		volume: min(max(cfg.Volume, 0), 1),
		mixer:  &beep.Mixer{},
	}
	for s := core.Sound(0); s < core.SoundCount; s++ {
		e.clips[s] = renderClip(s, rate)
	}
	return e
}

// Initialize opens the speaker and starts the mixer.
func (e *Engine) Initialize() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.initialized {
		return nil
	}

	if err := speaker.Init(e.rate, e.rate.N(bufferLatency)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}

	speaker.Play(e.mixer)
	e.initialized = true
	return nil
}

// Play starts a clip on top of whatever is already playing. Sounds played
// before Initialize or after Close are dropped.
func (e *Engine) Play(s core.Sound) {
	e.mu.Lock()
	defer e.mu.Unlock()

	clip := e.clip(s)
	if !e.initialized || clip == nil || e.volume <= 0 {
		e.dropped.Add(1)
		return
	}

	streamer := newVolume(clip.Streamer(0, clip.Len()), e.volume)

	speaker.Lock()
	e.mixer.Add(streamer)
	speaker.Unlock()

	e.played.Add(1)
}

// Close stops all sounds and releases the speaker.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return
	}

	speaker.Lock()
	e.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	e.initialized = false
}

// Stats returns how many sounds were played and dropped.
func (e *Engine) Stats() (played, dropped uint64) {
	return e.played.Load(), e.dropped.Load()
}

// ClipLength returns the duration of a preloaded clip, or zero if the
// sound has none.
func (e *Engine) ClipLength(s core.Sound) time.Duration {
	clip := e.clip(s)
	if clip == nil {
		return 0
	}
	return e.rate.D(clip.Len())
}

func (e *Engine) clip(s core.Sound) *beep.Buffer {
	if s < 0 || s >= core.SoundCount {
		return nil
	}
	return e.clips[s]
}
