package rank_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/curverace/internal/rank"
)

var _ = Describe("Tracker", func() {
	var tracker *rank.Tracker

	BeforeEach(func() {
		tracker = rank.NewTracker()
	})

	It("orders by descending progress", func() {
		entries := tracker.Update([]rank.Sample{
			{Name: "A", Progress: 0.2},
			{Name: "B", Progress: 0.9},
			{Name: "C", Progress: 0.5},
		})

		Expect(entries).To(HaveLen(3))
		Expect(entries[0].Name).To(Equal("B"))
		Expect(entries[1].Name).To(Equal("C"))
		Expect(entries[2].Name).To(Equal("A"))
		for i, e := range entries {
			Expect(e.Rank).To(Equal(i))
		}
	})

	It("breaks ties by input order", func() {
		entries := tracker.Update([]rank.Sample{
			{Name: "A", Progress: 0.5},
			{Name: "B", Progress: 0.5},
			{Name: "C", Progress: 0.3},
		})

		Expect(entries[0].Name).To(Equal("A"))
		Expect(entries[1].Name).To(Equal("B"))
		Expect(entries[2].Name).To(Equal("C"))
	})

	It("keeps all-zero snapshots in registry order", func() {
		entries := tracker.Update([]rank.Sample{
			{Name: "A"}, {Name: "B"}, {Name: "C"}, {Name: "D"},
		})

		names := []string{entries[0].Name, entries[1].Name, entries[2].Name, entries[3].Name}
		Expect(names).To(Equal([]string{"A", "B", "C", "D"}))
		for _, e := range entries {
			Expect(e.Transition).To(Equal(rank.None))
		}
	})

	It("carries no transitions on the first frame", func() {
		entries := tracker.Update([]rank.Sample{
			{Name: "A", Progress: 0.1},
			{Name: "B", Progress: 0.8},
		})

		for _, e := range entries {
			Expect(e.Transition).To(Equal(rank.None))
			Expect(e.PrevRank).To(Equal(e.Rank))
		}
	})

	It("marks overtakes as advanced and declined", func() {
		tracker.Update([]rank.Sample{
			{Name: "A", Progress: 0.5},
			{Name: "B", Progress: 0.4},
		})
		entries := tracker.Update([]rank.Sample{
			{Name: "A", Progress: 0.6},
			{Name: "B", Progress: 0.7},
		})

		Expect(entries[0].Name).To(Equal("B"))
		Expect(entries[0].Transition).To(Equal(rank.Advanced))
		Expect(entries[0].PrevRank).To(Equal(1))
		Expect(entries[1].Name).To(Equal("A"))
		Expect(entries[1].Transition).To(Equal(rank.Declined))
		Expect(entries[1].PrevRank).To(Equal(0))
	})

	It("drops transition markers once ranks settle", func() {
		tracker.Update([]rank.Sample{
			{Name: "A", Progress: 0.5},
			{Name: "B", Progress: 0.4},
		})
		tracker.Update([]rank.Sample{
			{Name: "A", Progress: 0.6},
			{Name: "B", Progress: 0.7},
		})
		entries := tracker.Update([]rank.Sample{
			{Name: "A", Progress: 0.7},
			{Name: "B", Progress: 0.9},
		})

		for _, e := range entries {
			Expect(e.Transition).To(Equal(rank.None))
		}
	})

	It("retains only one frame of history", func() {
		tracker.Update([]rank.Sample{
			{Name: "A", Progress: 0.9},
			{Name: "B", Progress: 0.1},
		})
		tracker.Update([]rank.Sample{
			{Name: "A", Progress: 0.9},
			{Name: "B", Progress: 0.95},
		})
		// A was rank 0 two frames ago; only the immediately previous
		// frame counts, so staying at rank 1 now is not a transition.
		entries := tracker.Update([]rank.Sample{
			{Name: "A", Progress: 0.91},
			{Name: "B", Progress: 0.99},
		})

		Expect(entries[1].Name).To(Equal("A"))
		Expect(entries[1].Transition).To(Equal(rank.None))
	})

	It("clears history and entries on reset", func() {
		tracker.Update([]rank.Sample{
			{Name: "A", Progress: 0.5},
			{Name: "B", Progress: 0.6},
		})
		tracker.Reset()

		Expect(tracker.Entries()).To(BeEmpty())

		entries := tracker.Update([]rank.Sample{
			{Name: "A", Progress: 0.1},
			{Name: "B", Progress: 0.9},
		})
		for _, e := range entries {
			Expect(e.Transition).To(Equal(rank.None))
		}
	})

	It("exposes the latest entries without recomputing", func() {
		first := tracker.Update([]rank.Sample{
			{Name: "A", Progress: 0.5},
			{Name: "B", Progress: 0.6},
		})
		Expect(tracker.Entries()).To(Equal(first))
	})
})
