package baseline

import (
	"encoding/binary"
	"errors"
	"math"
	"time"

	"github.com/andy-kimball/arenaskl"

	"github.com/xgzlucario/sortarr"
)

const (
	// DefaultArenaSize is the initial arena size of a Skiplist.
	DefaultArenaSize uint32 = 1 << 20

	// seqSize is the length of the sequence suffix of every key.
	seqSize = 9
)

var ErrArenaTooLarge = errors.New("baseline: skiplist arena cannot grow further")

// Skiplist keeps words in an arena skiplist. Keys are the word followed by
// a zero byte and an insertion sequence, so repeated words are all kept.
type Skiplist struct {
	skl *arenaskl.Skiplist
	it  *arenaskl.Iterator

	n     int
	seq   uint64
	grows int

	obs   sortarr.Observer[string]
	start time.Time
}

// NewSkiplist
func NewSkiplist(size uint32, obs sortarr.Observer[string]) *Skiplist {
	if size == 0 {
		size = DefaultArenaSize
	}
	s := &Skiplist{obs: obs, start: time.Now()}
	s.reset(size)
	return s
}

func (s *Skiplist) reset(size uint32) {
	s.skl = arenaskl.NewSkiplist(arenaskl.NewArena(size))
	var it arenaskl.Iterator
	it.Init(s.skl)
	s.it = &it
}

// Insert
func (s *Skiplist) Insert(word string) error {
	key := make([]byte, len(word)+seqSize)
	copy(key, word)
	binary.BigEndian.PutUint64(key[len(word)+1:], s.seq)

	for {
		err := s.it.Add(key, nil, 0)
		if err == nil {
			break
		}
		if !errors.Is(err, arenaskl.ErrArenaFull) {
			return err
		}
		if err := s.grow(); err != nil {
			return err
		}
	}
	s.seq++
	s.n++

	if milestone(s.n) && s.obs != nil {
		s.obs.Observe(s.Snapshot())
	}
	return nil
}

// grow moves every key into an arena twice the size.
func (s *Skiplist) grow() error {
	size := uint64(s.skl.Arena().Cap()) * 2
	if size > math.MaxUint32 {
		return ErrArenaTooLarge
	}
	if err := s.rebuild(uint32(size)); err != nil {
		return err
	}
	s.grows++
	return nil
}

// rebuild copies every key into a new arena of the given size. The current
// list is only replaced once the copy is complete.
func (s *Skiplist) rebuild(size uint32) error {
	skl := arenaskl.NewSkiplist(arenaskl.NewArena(size))
	var it arenaskl.Iterator
	it.Init(skl)

	for s.it.SeekToFirst(); s.it.Valid(); s.it.Next() {
		if err := it.Add(s.it.Key(), s.it.Value(), s.it.Meta()); err != nil {
			return err
		}
	}

	s.skl, s.it = skl, &it
	return nil
}

// Len
func (s *Skiplist) Len() int {
	return s.n
}

// Grows returns how many times the arena was rebuilt.
func (s *Skiplist) Grows() int {
	return s.grows
}

// Keys returns the raw keys in order.
func (s *Skiplist) Keys() [][]byte {
	keys := make([][]byte, 0, s.n)
	for s.it.SeekToFirst(); s.it.Valid(); s.it.Next() {
		keys = append(keys, append([]byte(nil), s.it.Key()...))
	}
	return keys
}

// Words returns the words in order.
func (s *Skiplist) Words() []string {
	words := make([]string, 0, s.n)
	for s.it.SeekToFirst(); s.it.Valid(); s.it.Next() {
		words = append(words, wordOf(s.it.Key()))
	}
	return words
}

// Snapshot walks the list once to collect the samples.
func (s *Skiplist) Snapshot() sortarr.Snapshot[string] {
	positions := sortarr.SamplePositions(s.n)
	samples := make([]string, 0, len(positions))

	i := 0
	s.it.SeekToFirst()
	for _, p := range positions {
		for ; i < p && s.it.Valid(); i++ {
			s.it.Next()
		}
		if !s.it.Valid() {
			break
		}
		samples = append(samples, wordOf(s.it.Key()))
	}

	return sortarr.Snapshot[string]{
		From:        s.n,
		Capacity:    s.n,
		Count:       s.n,
		Resizes:     s.grows,
		Elapsed:     time.Since(s.start),
		MemoryBytes: int(s.skl.Arena().Size()),
		Samples:     samples,
	}
}

func wordOf(key []byte) string {
	return string(key[:len(key)-seqSize])
}
