package sortarr

import (
	"strings"
)

// Kind enumerates the growth policies.
type Kind uint8

const (
	Incremental Kind = iota + 1
	Doubling
	Fibonacci
)

const (
	// DefaultStep is the capacity added per resize by the incremental policy.
	DefaultStep = 10

	fibSeedA = 1
	fibSeedB = 2
)

// String
func (k Kind) String() string {
	switch k {
	case 0:
		return "none"
	case Incremental:
		return "incremental"
	case Doubling:
		return "doubling"
	case Fibonacci:
		return "fibonacci"
	}
	return "unknown"
}

// Policy computes the next capacity of a full array.
// A Policy carries state (the Fibonacci pair), so each Array owns its own copy.
type Policy struct {
	kind Kind
	step int
	a, b int
}

// IncrementalPolicy grows the capacity by a fixed step.
func IncrementalPolicy(step int) Policy {
	return Policy{kind: Incremental, step: step}
}

// DoublingPolicy multiplies the capacity by 2.
func DoublingPolicy() Policy {
	return Policy{kind: Doubling}
}

// FibonacciPolicy follows the additive recurrence seeded at (1, 2).
func FibonacciPolicy() Policy {
	return Policy{kind: Fibonacci, a: fibSeedA, b: fibSeedB}
}

// ParsePolicy maps a selector to a fresh policy. Matching is case-insensitive
// and "fib" is accepted for fibonacci.
func ParsePolicy(name string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "incremental":
		return IncrementalPolicy(DefaultStep), nil
	case "doubling":
		return DoublingPolicy(), nil
	case "fibonacci", "fib":
		return FibonacciPolicy(), nil
	}
	return Policy{}, &ConfigurationError{Field: "policy", Value: name}
}

// Kind
func (p Policy) Kind() Kind {
	return p.kind
}

// Step returns the incremental step, zero for the other policies.
func (p Policy) Step() int {
	return p.step
}

// String
func (p Policy) String() string {
	return p.kind.String()
}

// validate
func (p Policy) validate() error {
	switch p.kind {
	case Incremental:
		if p.step <= 0 {
			return &ConfigurationError{Field: "step", Value: p.step}
		}
	case Doubling:
	case Fibonacci:
		if p.a <= 0 || p.b <= p.a {
			return &ConfigurationError{Field: "fibonacci seed", Value: [2]int{p.a, p.b}}
		}
	default:
		return &ConfigurationError{Field: "policy", Value: p.kind}
	}
	return nil
}

// next returns the capacity that follows capacity. The Fibonacci state
// advances on every call and is never reset.
func (p *Policy) next(capacity int) int {
	switch p.kind {
	case Incremental:
		return capacity + p.step
	case Doubling:
		return capacity * 2
	case Fibonacci:
		n := p.a + p.b
		p.a, p.b = p.b, n
		return n
	}
	panic(ErrConfiguration)
}
