package sortarr

import (
	"cmp"
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

// backings runs every test against the buffer and the slice backed array.
var backings = []struct {
	name string
	opts func() []Option[string]
}{
	{"Buffer", func() []Option[string] { return nil }},
	{"Slice", func() []Option[string] { return []Option[string]{WithSliceBacking[string]()} }},
}

func policies() []Policy {
	return []Policy{IncrementalPolicy(DefaultStep), DoublingPolicy(), FibonacciPolicy()}
}

func TestEmpty(t *testing.T) {
	for _, b := range backings {
		t.Run(b.name, func(t *testing.T) {
			assert := assert.New(t)
			a, err := New(DoublingPolicy(), b.opts()...)
			assert.Nil(err)

			assert.Equal(0, a.Len())
			assert.Equal(InitialCapacity, a.Cap())
			assert.Equal(0, a.Resizes())
			assert.Empty(a.Items())
			assert.Equal(0, a.Search("x"))

			_, err = a.At(0)
			assert.ErrorIs(err, ErrOutOfRange)
		})
	}
}

func TestWords(t *testing.T) {
	for _, b := range backings {
		t.Run(b.name, func(t *testing.T) {
			assert := assert.New(t)
			a, err := New(DoublingPolicy(), b.opts()...)
			assert.Nil(err)

			for i, w := range []string{"banana", "apple", "cherry", "apple"} {
				a.Insert(w)
				assert.Equal(i+1, a.Len())
			}

			assert.Equal([]string{"apple", "apple", "banana", "cherry"}, a.Items())
			assert.Equal(4, a.Cap())
			assert.Equal(1, a.Resizes())
		})
	}
}

func TestSortedness(t *testing.T) {
	for _, b := range backings {
		for _, p := range policies() {
			t.Run(b.name+"/"+p.String(), func(t *testing.T) {
				assert := assert.New(t)
				a, err := New(p, b.opts()...)
				assert.Nil(err)

				for i := 0; i < 2000; i++ {
					a.Insert(strconv.Itoa(rand.Intn(300)))

					assert.Equal(i+1, a.Len())
					assert.GreaterOrEqual(a.Cap(), a.Len())
				}
				assert.True(slices.IsSorted(a.Items()))
			})
		}
	}
}

func TestResizeBoundary(t *testing.T) {
	tests := []struct {
		policy Policy
		want   []int
	}{
		{IncrementalPolicy(DefaultStep), []int{12, 22, 32, 42, 52}},
		{DoublingPolicy(), []int{4, 8, 16, 32, 64}},
		{FibonacciPolicy(), []int{3, 5, 8, 13, 21, 34, 55}},
	}

	for _, b := range backings {
		for _, tt := range tests {
			t.Run(b.name+"/"+tt.policy.String(), func(t *testing.T) {
				assert := assert.New(t)

				var got []int
				obs := ObserverFunc[string](func(s Snapshot[string]) {
					// resize happens only on a full array.
					assert.Equal(s.From, s.Count)
					assert.Equal(len(got)+1, s.Resizes)
					assert.Equal(tt.policy.Kind(), s.Policy)
					got = append(got, s.Capacity)
				})

				opts := append(b.opts(), WithObserver[string](obs))
				a, err := New(tt.policy, opts...)
				assert.Nil(err)

				last := tt.want[len(tt.want)-2]
				for i := 0; i < last+1; i++ {
					before := a.Cap()
					full := a.Len() == a.Cap()
					a.Insert(fmt.Sprintf("%04d", i))
					assert.Equal(full, a.Cap() != before)
				}
				assert.Equal(tt.want, got)
				assert.Equal(len(tt.want), a.Resizes())
			})
		}
	}
}

type tagged struct {
	value int
	tag   string
}

func TestTieBreak(t *testing.T) {
	assert := assert.New(t)

	a, err := NewFunc(DoublingPolicy(), func(x, y tagged) int {
		return cmp.Compare(x.value, y.value)
	})
	assert.Nil(err)

	a.Insert(tagged{5, "a"})
	a.Insert(tagged{3, "b"})
	a.Insert(tagged{5, "c"})
	a.Insert(tagged{1, "d"})

	values := make([]int, 0, a.Len())
	tags := make([]string, 0, a.Len())
	a.Range(func(_ int, v tagged) bool {
		values = append(values, v.value)
		tags = append(tags, v.tag)
		return true
	})
	assert.Equal([]int{1, 3, 5, 5}, values)
	// a new element lands before the equal ones already present.
	assert.Equal([]string{"d", "b", "c", "a"}, tags)
}

func TestSearch(t *testing.T) {
	for _, b := range backings {
		t.Run(b.name, func(t *testing.T) {
			assert := assert.New(t)
			a, _ := New(IncrementalPolicy(3), b.opts()...)
			for _, w := range []string{"b", "d", "d", "d", "f"} {
				a.Insert(w)
			}

			assert.Equal(0, a.Search("a"))
			assert.Equal(0, a.Search("b"))
			assert.Equal(1, a.Search("c"))
			assert.Equal(1, a.Search("d"))
			assert.Equal(4, a.Search("e"))
			assert.Equal(5, a.Search("g"))
		})
	}
}

func TestAt(t *testing.T) {
	for _, b := range backings {
		t.Run(b.name, func(t *testing.T) {
			assert := assert.New(t)
			a, _ := New(DoublingPolicy(), b.opts()...)
			a.Insert("y")
			a.Insert("x")
			a.Insert("z")

			v, err := a.At(0)
			assert.Nil(err)
			assert.Equal("x", v)
			v, err = a.At(2)
			assert.Nil(err)
			assert.Equal("z", v)

			// slot 3 exists in the buffer but is not live.
			assert.Equal(4, a.Cap())
			for _, i := range []int{-1, 3, 4, 100} {
				_, err := a.At(i)
				assert.ErrorIs(err, ErrOutOfRange)

				var rerr *OutOfRangeError
				assert.True(errors.As(err, &rerr))
				assert.Equal(i, rerr.Index)
				assert.Equal(3, rerr.Len)
			}
		})
	}
}

func TestItemsIsCopy(t *testing.T) {
	assert := assert.New(t)
	a, _ := New[int](DoublingPolicy())
	a.Insert(2)
	a.Insert(1)

	items := a.Items()
	items[0] = 100
	v, _ := a.At(0)
	assert.Equal(1, v)
}

func TestRangeStop(t *testing.T) {
	assert := assert.New(t)
	a, _ := New[int](FibonacciPolicy())
	for i := 10; i > 0; i-- {
		a.Insert(i)
	}

	var seen []int
	a.Range(func(i int, v int) bool {
		seen = append(seen, v)
		return i < 2
	})
	assert.Equal([]int{1, 2, 3}, seen)
}

func TestConfiguration(t *testing.T) {
	assert := assert.New(t)

	_, err := NewNamed[string]("tripling")
	assert.ErrorIs(err, ErrConfiguration)

	a, err := NewNamed[string]("fib")
	assert.Nil(err)
	assert.Equal(Fibonacci, a.Policy().Kind())

	_, err = New[int](IncrementalPolicy(0))
	assert.ErrorIs(err, ErrConfiguration)

	_, err = New[int](Policy{})
	assert.ErrorIs(err, ErrConfiguration)

	_, err = New(DoublingPolicy(), WithInitialCapacity[int](1))
	assert.ErrorIs(err, ErrConfiguration)

	_, err = NewFunc[int](DoublingPolicy(), nil)
	assert.ErrorIs(err, ErrConfiguration)
}

func TestInitialCapacity(t *testing.T) {
	assert := assert.New(t)

	a, err := New(DoublingPolicy(), WithInitialCapacity[int](5))
	assert.Nil(err)
	assert.Equal(5, a.Cap())
	for i := 0; i < 6; i++ {
		a.Insert(i)
	}
	assert.Equal(10, a.Cap())

	// the Fibonacci sequence skips terms below the current capacity.
	f, err := New(FibonacciPolicy(), WithInitialCapacity[int](10))
	assert.Nil(err)
	for i := 0; i < 11; i++ {
		f.Insert(i)
	}
	assert.Equal(13, f.Cap())
	assert.Equal(1, f.Resizes())
}

func TestBytes(t *testing.T) {
	assert := assert.New(t)
	a, err := NewBytes(IncrementalPolicy(DefaultStep))
	assert.Nil(err)

	for _, k := range []string{"pear", "fig", "apple", "fig"} {
		a.Insert([]byte(k))
	}
	assert.Equal([][]byte{[]byte("apple"), []byte("fig"), []byte("fig"), []byte("pear")}, a.Items())
}

func TestFootprint(t *testing.T) {
	assert := assert.New(t)
	a, _ := New[string](DoublingPolicy())
	empty := a.Footprint()
	assert.Greater(empty, 0)

	a.Insert("hello")
	assert.Equal(empty+5, a.Footprint())

	// growing the buffer adds slots.
	a.Insert("a")
	a.Insert("b")
	assert.Greater(a.Footprint(), empty+7)

	b, _ := New(DoublingPolicy(), WithSizer(func(string) int { return 100 }))
	b.Insert("x")
	assert.Equal(empty+100, b.Footprint())
}

func BenchmarkInsert(b *testing.B) {
	for _, p := range policies() {
		b.Run(p.String(), func(b *testing.B) {
			a, _ := New[int](p)
			for i := 0; i < b.N; i++ {
				a.Insert(rand.Intn(1 << 20))
			}
		})
	}
}
