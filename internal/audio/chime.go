// Package audio plays a short chime when a curve finishes its descent.
// Output-only portaudio stream; no input analysis.
package audio

import (
	"math"
	"sync"

	"github.com/gordonklaus/portaudio"
)

const (
	SampleRate = 44100
	BufferSize = 1024

	chimeSeconds = 0.35
	maxPending   = 8
)

// Finishing order picks the pitch: winner gets the highest note of a
// descending major arpeggio.
var rankFreqs = []float64{880.00, 659.25, 523.25, 440.00}

type voice struct {
	freq  float64
	phase float64
	t     float64
}

// Chimes synthesizes finish notes on a shared output stream. Trigger is
// safe to call from the UI goroutine while the portaudio callback
// drains voices on its own thread.
type Chimes struct {
	stream *portaudio.Stream

	mu     sync.Mutex
	voices []voice
	active bool
}

func NewChimes() *Chimes {
	return &Chimes{}
}

func (c *Chimes) Start() error {
	if err := portaudio.Initialize(); err != nil {
		return err
	}
	stream, err := portaudio.OpenDefaultStream(0, 2, SampleRate, BufferSize, c.process)
	if err != nil {
		portaudio.Terminate()
		return err
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return err
	}
	c.stream = stream
	c.active = true
	return nil
}

func (c *Chimes) Stop() {
	if c.stream != nil {
		c.stream.Stop()
		c.stream.Close()
		c.stream = nil
	}
	portaudio.Terminate()
	c.active = false
}

func (c *Chimes) Active() bool { return c.active }

// Trigger queues the chime for a finishing rank. The queue is bounded;
// when full the note is dropped rather than delayed.
func (c *Chimes) Trigger(rank int) {
	if rank < 0 {
		return
	}
	if rank >= len(rankFreqs) {
		rank = len(rankFreqs) - 1
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.voices) >= maxPending {
		return
	}
	c.voices = append(c.voices, voice{freq: rankFreqs[rank]})
}

// Pending reports queued-or-sounding voice count.
func (c *Chimes) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.voices)
}

func triangle(phase float64) float64 {
	p := phase - math.Floor(phase)
	return 4.0*math.Abs(p-0.5) - 1.0
}

func (c *Chimes) process(out [][]float32) {
	c.mu.Lock()
	defer c.mu.Unlock()

	dt := 1.0 / float64(SampleRate)
	for i := range out[0] {
		sample := 0.0
		for v := range c.voices {
			vo := &c.voices[v]
			// Exponential decay envelope, short attack.
			env := math.Exp(-6 * vo.t / chimeSeconds)
			if vo.t < 0.01 {
				env *= vo.t / 0.01
			}
			sample += triangle(vo.phase) * env * 0.2
			vo.phase += vo.freq * dt
			vo.t += dt
		}
		out[0][i] = float32(sample)
		out[1][i] = float32(sample)
	}

	// Drop voices that have fully decayed.
	live := c.voices[:0]
	for _, v := range c.voices {
		if v.t < chimeSeconds {
			live = append(live, v)
		}
	}
	c.voices = live
}
