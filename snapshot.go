package sortarr

import "time"

// Snapshot describes an array at a resize boundary.
type Snapshot[T any] struct {
	Policy Kind
	// From is the capacity before the resize.
	From     int
	Capacity int
	Count    int
	Resizes  int
	// Elapsed is measured from the construction of the array.
	Elapsed     time.Duration
	MemoryBytes int
	// Samples are the elements at SamplePositions(Count).
	Samples []T
}

// Observer receives snapshots. It only ever sees copies of the elements.
type Observer[T any] interface {
	Observe(Snapshot[T])
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc[T any] func(Snapshot[T])

// Observe
func (f ObserverFunc[T]) Observe(s Snapshot[T]) {
	f(s)
}

// SamplePositions returns the positions 0, n/4, n/2, 3n/4 and n-1 that fall
// inside [0, n). Small n yields repeated positions, which are kept.
func SamplePositions(n int) []int {
	candidates := [...]int{0, n / 4, n / 2, (3 * n) / 4, n - 1}

	positions := make([]int, 0, len(candidates))
	for _, p := range candidates {
		if p >= 0 && p < n {
			positions = append(positions, p)
		}
	}
	return positions
}

// Snapshot returns the current state of the array.
func (a *Array[T]) Snapshot() Snapshot[T] {
	return a.snapshot(a.capacity)
}

func (a *Array[T]) snapshot(from int) Snapshot[T] {
	positions := SamplePositions(a.n)
	samples := make([]T, len(positions))
	for i, p := range positions {
		samples[i] = a.at(p)
	}

	return Snapshot[T]{
		Policy:      a.policy.Kind(),
		From:        from,
		Capacity:    a.capacity,
		Count:       a.n,
		Resizes:     a.resizes,
		Elapsed:     time.Since(a.start),
		MemoryBytes: a.Footprint(),
		Samples:     samples,
	}
}
