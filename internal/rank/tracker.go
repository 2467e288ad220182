// Package rank orders race participants by descent progress and tracks
// rank transitions between consecutive frames for UI animation hints.
package rank

import "sort"

// Transition describes how an entry's rank moved since the previous
// frame.
type Transition int

const (
	None Transition = iota
	Advanced
	Declined
)

func (t Transition) String() string {
	switch t {
	case Advanced:
		return "advanced"
	case Declined:
		return "declined"
	default:
		return "none"
	}
}

// Sample is one curve's progress snapshot, supplied in registry order.
type Sample struct {
	Name     string
	Progress float64
	Time     float64 // display time, already frozen to the nominal duration at finish
}

// Entry is a ranked sample. Rank 0 is the most advanced curve.
type Entry struct {
	Name       string
	Progress   float64
	Time       float64
	Rank       int
	PrevRank   int
	Transition Transition
}

// Tracker keeps exactly one frame of ranking history. Lifetime is one
// animation run; Reset clears it.
type Tracker struct {
	prev    map[string]int
	entries []Entry
}

func NewTracker() *Tracker {
	return &Tracker{prev: make(map[string]int)}
}

// Update ranks the snapshot by descending progress. The sort is stable,
// so ties keep the input (registry) order and coinciding progress
// values cannot jitter. Each entry is marked advanced or declined when
// its rank index moved against the immediately previous frame.
func (t *Tracker) Update(samples []Sample) []Entry {
	entries := make([]Entry, len(samples))
	for i, s := range samples {
		entries[i] = Entry{Name: s.Name, Progress: s.Progress, Time: s.Time}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Progress > entries[j].Progress
	})

	next := make(map[string]int, len(entries))
	for i := range entries {
		e := &entries[i]
		e.Rank = i
		next[e.Name] = i

		prev, seen := t.prev[e.Name]
		if !seen {
			e.PrevRank = i
			continue
		}
		e.PrevRank = prev
		switch {
		case i < prev:
			e.Transition = Advanced
		case i > prev:
			e.Transition = Declined
		}
	}

	t.prev = next
	t.entries = entries
	return entries
}

// Entries returns the most recent ranking without recomputing it.
func (t *Tracker) Entries() []Entry { return t.entries }

func (t *Tracker) Reset() {
	t.prev = make(map[string]int)
	t.entries = nil
}
