// Package sortarr implements a sorted, growable, contiguous array.
//
// Elements are kept in ascending order at all times. Insert places a value
// with a lower-bound binary search and shifts the tail right. When the array
// is full the active growth Policy picks the next capacity, a fresh buffer is
// allocated and the live region is copied over.
package sortarr

import (
	"cmp"
	"time"
	"unsafe"

	"github.com/xgzlucario/sortarr/bcmp"
	"github.com/xgzlucario/sortarr/internal/list"
)

// InitialCapacity is the capacity of a new array.
const InitialCapacity = 2

// Array is a sorted growable array. It is not safe for concurrent use.
type Array[T any] struct {
	// buf holds the elements, len(buf) is the capacity.
	// Slots [n, len(buf)) are never read.
	buf []T
	n   int

	// list replaces buf in slice-backed mode, capacity is then a threshold only.
	list     *list.SortedList[T]
	capacity int

	policy  Policy
	compare func(a, b T) int
	sizer   func(T) int

	observers []Observer[T]
	start     time.Time
	resizes   int
}

type config[T any] struct {
	initial   int
	slice     bool
	sizer     func(T) int
	observers []Observer[T]
}

// Option configures an Array.
type Option[T any] func(*config[T])

// WithObserver registers an observer notified after every resize.
func WithObserver[T any](o Observer[T]) Option[T] {
	return func(c *config[T]) {
		if o != nil {
			c.observers = append(c.observers, o)
		}
	}
}

// WithInitialCapacity overrides the initial capacity, which must be at least 2.
func WithInitialCapacity[T any](n int) Option[T] {
	return func(c *config[T]) {
		c.initial = n
	}
}

// WithSizer sets the function reporting the heap bytes an element owns
// beyond its slot, used by Footprint.
func WithSizer[T any](fn func(T) int) Option[T] {
	return func(c *config[T]) {
		c.sizer = fn
	}
}

// WithSliceBacking stores the elements in a Go slice grown by slices.Insert
// instead of an explicitly managed buffer. Capacity then only decides when
// the policy runs.
func WithSliceBacking[T any]() Option[T] {
	return func(c *config[T]) {
		c.slice = true
	}
}

// New creates an array for ordered element types.
func New[T cmp.Ordered](p Policy, opts ...Option[T]) (*Array[T], error) {
	return NewFunc(p, cmp.Compare[T], opts...)
}

// NewNamed creates an array whose policy is selected by name.
func NewNamed[T cmp.Ordered](name string, opts ...Option[T]) (*Array[T], error) {
	p, err := ParsePolicy(name)
	if err != nil {
		return nil, err
	}
	return New(p, opts...)
}

// NewBytes creates an array of byte slices in bytes.Compare order.
func NewBytes(p Policy, opts ...Option[[]byte]) (*Array[[]byte], error) {
	return NewFunc(p, bcmp.Compare, opts...)
}

// NewFunc creates an array ordered by compare.
func NewFunc[T any](p Policy, compare func(a, b T) int, opts ...Option[T]) (*Array[T], error) {
	if compare == nil {
		return nil, &ConfigurationError{Field: "comparator", Value: nil}
	}
	if err := p.validate(); err != nil {
		return nil, err
	}

	c := config[T]{initial: InitialCapacity}
	for _, opt := range opts {
		opt(&c)
	}
	if c.initial < InitialCapacity {
		return nil, &ConfigurationError{Field: "initial capacity", Value: c.initial}
	}

	a := &Array[T]{
		capacity:  c.initial,
		policy:    p,
		compare:   compare,
		sizer:     c.sizer,
		observers: c.observers,
		start:     time.Now(),
	}
	if a.sizer == nil {
		a.sizer = HeapBytes[T]
	}
	if c.slice {
		a.list = list.New(compare)
		a.list.Grow(c.initial)
	} else {
		a.buf = make([]T, c.initial)
	}

	return a, nil
}

// Insert adds v keeping the array sorted. Equal elements already present
// stay after v.
func (a *Array[T]) Insert(v T) {
	if a.n == a.capacity {
		a.resize()
	}

	if a.list != nil {
		a.list.Insert(v)
		a.n++
		return
	}

	i := a.Search(v)
	copy(a.buf[i+1:a.n+1], a.buf[i:a.n])
	a.buf[i] = v
	a.n++
}

// Search returns the index of the first live element not less than v.
func (a *Array[T]) Search(v T) int {
	if a.list != nil {
		return a.list.Search(v)
	}

	left, right := 0, a.n-1
	for left <= right {
		mid := (left + right) / 2
		if a.compare(a.buf[mid], v) < 0 {
			left = mid + 1
		} else {
			right = mid - 1
		}
	}
	return left
}

// resize asks the policy for a larger capacity and moves the live region
// into a new buffer.
func (a *Array[T]) resize() {
	from := a.capacity
	next := a.policy.next(from)
	// a Fibonacci term can trail a custom initial capacity.
	for next <= from {
		next = a.policy.next(next)
	}

	if a.list != nil {
		a.list.Grow(next)
	} else {
		buf := make([]T, next)
		copy(buf, a.buf[:a.n])
		a.buf = buf
	}
	a.capacity = next
	a.resizes++

	if len(a.observers) > 0 {
		s := a.snapshot(from)
		for _, o := range a.observers {
			o.Observe(s)
		}
	}
}

// At returns the i-th smallest element.
func (a *Array[T]) At(i int) (T, error) {
	if i < 0 || i >= a.n {
		var zero T
		return zero, &OutOfRangeError{Index: i, Len: a.n}
	}
	return a.at(i), nil
}

func (a *Array[T]) at(i int) T {
	if a.list != nil {
		return a.list.At(i)
	}
	return a.buf[i]
}

// Len returns the number of live elements.
func (a *Array[T]) Len() int {
	return a.n
}

// Cap returns the current capacity.
func (a *Array[T]) Cap() int {
	return a.capacity
}

// Resizes returns how many times the array has grown.
func (a *Array[T]) Resizes() int {
	return a.resizes
}

// Policy
func (a *Array[T]) Policy() Policy {
	return a.policy
}

// Items returns a copy of the live region.
func (a *Array[T]) Items() []T {
	if a.list != nil {
		return a.list.Items()
	}
	items := make([]T, a.n)
	copy(items, a.buf[:a.n])
	return items
}

// Range calls fn for each live element in order until fn returns false.
func (a *Array[T]) Range(fn func(i int, v T) bool) {
	for i := 0; i < a.n; i++ {
		if !fn(i, a.at(i)) {
			return
		}
	}
}

// Footprint approximates the bytes held by the array: its header, every
// slot of the buffer and the heap data owned by live elements.
func (a *Array[T]) Footprint() int {
	var zero T
	slots := a.capacity
	if a.list != nil {
		slots = a.list.Cap()
	}

	size := int(unsafe.Sizeof(*a)) + slots*int(unsafe.Sizeof(zero))
	for i := 0; i < a.n; i++ {
		size += a.sizer(a.at(i))
	}
	return size
}

// HeapBytes is the default element sizer: the bytes behind strings and byte
// slices, zero for everything else.
func HeapBytes[T any](v T) int {
	switch v := any(v).(type) {
	case string:
		return len(v)
	case []byte:
		return cap(v)
	}
	return 0
}
