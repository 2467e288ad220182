package audio

import (
	"sync"
	"testing"
)

func TestTriggerBoundedQueue(t *testing.T) {
	c := NewChimes()

	for i := 0; i < 50; i++ {
		c.Trigger(i % 4)
	}
	if got := c.Pending(); got > maxPending {
		t.Errorf("queue grew past bound: %d", got)
	}
}

func TestTriggerClampsRank(t *testing.T) {
	c := NewChimes()
	c.Trigger(-1) // dropped
	c.Trigger(99) // clamped to the last note
	if got := c.Pending(); got != 1 {
		t.Errorf("pending = %d, want 1", got)
	}
}

func TestTriggerConcurrent(t *testing.T) {
	c := NewChimes()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(rank int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.Trigger(rank % 4)
				c.Pending()
			}
		}(i)
	}
	wg.Wait()

	if got := c.Pending(); got > maxPending {
		t.Errorf("queue grew past bound under contention: %d", got)
	}
}

func TestVoicesDecay(t *testing.T) {
	c := NewChimes()
	c.Trigger(0)

	out := [][]float32{make([]float32, BufferSize), make([]float32, BufferSize)}
	// Enough callbacks to cover the full chime length.
	steps := int(chimeSeconds*SampleRate)/BufferSize + 2
	for i := 0; i < steps; i++ {
		c.process(out)
	}
	if got := c.Pending(); got != 0 {
		t.Errorf("voice never decayed: %d pending", got)
	}
}

func TestProcessSilenceWhenIdle(t *testing.T) {
	c := NewChimes()
	out := [][]float32{make([]float32, 64), make([]float32, 64)}
	c.process(out)
	for i, v := range out[0] {
		if v != 0 {
			t.Fatalf("sample %d = %f, want silence", i, v)
		}
	}
}
