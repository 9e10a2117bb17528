// Package baseline holds the structures the sorted arrays are compared with.
// They have no growth policy and report at power-of-two sizes.
package baseline

import (
	"cmp"
	"time"
	"unsafe"

	"github.com/xgzlucario/sortarr"
	"github.com/xgzlucario/sortarr/internal/list"
)

// milestone reports whether n is a power of two.
func milestone(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// Slice is a sorted Go slice left to the runtime's own growth.
type Slice[T any] struct {
	list  *list.SortedList[T]
	obs   sortarr.Observer[T]
	start time.Time
	hits  int
}

// NewSlice
func NewSlice[T cmp.Ordered](obs sortarr.Observer[T]) *Slice[T] {
	return NewSliceFunc(cmp.Compare[T], obs)
}

// NewSliceFunc
func NewSliceFunc[T any](compare func(a, b T) int, obs sortarr.Observer[T]) *Slice[T] {
	return &Slice[T]{
		list:  list.New(compare),
		obs:   obs,
		start: time.Now(),
	}
}

// Insert
func (s *Slice[T]) Insert(v T) {
	s.list.Insert(v)

	if n := s.list.Len(); milestone(n) {
		s.hits++
		if s.obs != nil {
			s.obs.Observe(s.Snapshot())
		}
	}
}

// Len
func (s *Slice[T]) Len() int {
	return s.list.Len()
}

// Items
func (s *Slice[T]) Items() []T {
	return s.list.Items()
}

// Snapshot reports the length in place of a capacity, as the slice has none
// of its own.
func (s *Slice[T]) Snapshot() sortarr.Snapshot[T] {
	n := s.list.Len()

	positions := sortarr.SamplePositions(n)
	samples := make([]T, len(positions))
	for i, p := range positions {
		samples[i] = s.list.At(p)
	}

	return sortarr.Snapshot[T]{
		From:        n,
		Capacity:    n,
		Count:       n,
		Resizes:     s.hits,
		Elapsed:     time.Since(s.start),
		MemoryBytes: s.Footprint(),
		Samples:     samples,
	}
}

// Footprint approximates the bytes held by the slice.
func (s *Slice[T]) Footprint() int {
	var zero T
	size := int(unsafe.Sizeof(*s)) + s.list.Cap()*int(unsafe.Sizeof(zero))
	for i := 0; i < s.list.Len(); i++ {
		size += sortarr.HeapBytes(s.list.At(i))
	}
	return size
}
