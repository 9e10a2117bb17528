package list

import "slices"

// SortedList is a sorted list backed by a plain Go slice.
// Growth of the backing slice is left to the runtime unless Grow is called.
type SortedList[T any] struct {
	data []T
	cmp  func(T, T) int
}

// New
func New[T any](cmp func(T, T) int) *SortedList[T] {
	return &SortedList[T]{
		data: make([]T, 0),
		cmp:  cmp,
	}
}

// Search returns the index of the first element not less than v.
func (l *SortedList[T]) Search(v T) int {
	i, _ := slices.BinarySearchFunc(l.data, v, l.cmp)
	return i
}

// Insert places v before the first element not less than v and returns its index.
func (l *SortedList[T]) Insert(v T) int {
	i := l.Search(v)
	l.data = slices.Insert(l.data, i, v)
	return i
}

// Grow makes room for at least n elements in total.
func (l *SortedList[T]) Grow(n int) {
	if n > len(l.data) {
		l.data = slices.Grow(l.data, n-len(l.data))
	}
}

// At
func (l *SortedList[T]) At(i int) T {
	return l.data[i]
}

// Items returns a copy of the elements.
func (l *SortedList[T]) Items() []T {
	return slices.Clone(l.data)
}

func (l *SortedList[T]) Len() int {
	return len(l.data)
}

func (l *SortedList[T]) Cap() int {
	return cap(l.data)
}
