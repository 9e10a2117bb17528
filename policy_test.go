package sortarr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func capacities(p Policy, start, resizes int) []int {
	res := make([]int, 0, resizes)
	capacity := start
	for i := 0; i < resizes; i++ {
		capacity = p.next(capacity)
		res = append(res, capacity)
	}
	return res
}

func TestPolicyNext(t *testing.T) {
	assert := assert.New(t)

	assert.Equal([]int{12, 22, 32, 42}, capacities(IncrementalPolicy(DefaultStep), 2, 4))
	assert.Equal([]int{7, 12, 17}, capacities(IncrementalPolicy(5), 2, 3))
	assert.Equal([]int{4, 8, 16, 32, 64}, capacities(DoublingPolicy(), 2, 5))
	assert.Equal([]int{3, 5, 8, 13, 21, 34}, capacities(FibonacciPolicy(), 2, 6))
}

func TestFibonacciStatePersists(t *testing.T) {
	assert := assert.New(t)

	p := FibonacciPolicy()
	assert.Equal(3, p.next(2))
	assert.Equal(5, p.next(3))

	// copies are independent.
	q := p
	assert.Equal(8, q.next(5))
	assert.Equal(8, p.next(5))
	assert.Equal(13, p.next(8))

	// a fresh policy starts from the seed again.
	f := FibonacciPolicy()
	assert.Equal(3, f.next(2))
}

func TestParsePolicy(t *testing.T) {
	assert := assert.New(t)

	tests := []struct {
		name string
		kind Kind
	}{
		{"incremental", Incremental},
		{"Incremental", Incremental},
		{"doubling", Doubling},
		{" DOUBLING ", Doubling},
		{"fibonacci", Fibonacci},
		{"fib", Fibonacci},
		{"Fib", Fibonacci},
	}
	for _, tt := range tests {
		p, err := ParsePolicy(tt.name)
		assert.Nil(err, tt.name)
		assert.Equal(tt.kind, p.Kind(), tt.name)
		assert.Equal(tt.kind.String(), p.String())
	}

	p, err := ParsePolicy("incremental")
	assert.Nil(err)
	assert.Equal(DefaultStep, p.Step())

	for _, name := range []string{"", "tripling", "fibonaccis"} {
		_, err := ParsePolicy(name)
		assert.True(errors.Is(err, ErrConfiguration), name)

		var cerr *ConfigurationError
		assert.True(errors.As(err, &cerr))
		assert.Equal("policy", cerr.Field)
	}
}

func TestPolicyValidate(t *testing.T) {
	assert := assert.New(t)

	assert.Nil(IncrementalPolicy(1).validate())
	assert.Nil(DoublingPolicy().validate())
	assert.Nil(FibonacciPolicy().validate())

	assert.ErrorIs(IncrementalPolicy(0).validate(), ErrConfiguration)
	assert.ErrorIs(IncrementalPolicy(-3).validate(), ErrConfiguration)
	assert.ErrorIs(Policy{}.validate(), ErrConfiguration)
	assert.ErrorIs(Policy{kind: Kind(9)}.validate(), ErrConfiguration)
	assert.Equal("unknown", Kind(9).String())
}
