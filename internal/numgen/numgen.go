// Package numgen provides pluggable integer sources for commands that produce
// numbers. Bounds are validated against the JSON safe-integer range so every
// value survives the trip back to Discord unchanged.
package numgen

import (
	"math/rand/v2"

	"github.com/RogueDynamite/Justine/pkg/cmd"
)

// Generator produces integers on demand.
type Generator interface {
	Next() int64
	Min() int64
	Max() int64
}

type bounds struct {
	min, max int64
}

func newBounds(min, max int64) (bounds, error) {
	if min >= max {
		return bounds{}, cmd.Argumentf("min must be less than the max")
	}
	if max > cmd.MaxSafeInteger {
		return bounds{}, cmd.Argumentf("max must be at most %d", cmd.MaxSafeInteger)
	}
	if min < cmd.MinSafeInteger {
		return bounds{}, cmd.Argumentf("min must be at least %d", cmd.MinSafeInteger)
	}
	return bounds{min: min, max: max}, nil
}

func (b bounds) Min() int64 { return b.min }
func (b bounds) Max() int64 { return b.max }

// Uniform draws independent values uniformly from [min, max). The upper bound
// is exclusive.
type Uniform struct {
	bounds
	rng *rand.Rand
}

// UniformOption configures a Uniform generator.
type UniformOption func(*Uniform)

// WithSource makes the generator draw from r instead of the global source.
func WithSource(r *rand.Rand) UniformOption {
	return func(u *Uniform) { u.rng = r }
}

// NewUniform returns a generator over [min, max).
func NewUniform(min, max int64, opts ...UniformOption) (*Uniform, error) {
	b, err := newBounds(min, max)
	if err != nil {
		return nil, err
	}
	u := &Uniform{bounds: b}
	for _, opt := range opts {
		opt(u)
	}
	return u, nil
}

// Next returns the next sample.
func (u *Uniform) Next() int64 {
	span := u.max - u.min
	if u.rng != nil {
		return u.rng.Int64N(span) + u.min
	}
	return rand.Int64N(span) + u.min
}

// Cyclic walks min, min+1, ..., max and starts over. Unlike Uniform the upper
// bound is inclusive. Not safe for concurrent use.
type Cyclic struct {
	bounds
	current int64
}

// NewCyclic returns a generator cycling through [min, max].
func NewCyclic(min, max int64) (*Cyclic, error) {
	b, err := newBounds(min, max)
	if err != nil {
		return nil, err
	}
	return &Cyclic{bounds: b, current: min}, nil
}

// Next returns the current position and advances, wrapping at max.
func (c *Cyclic) Next() int64 {
	v := c.current
	if c.current == c.max {
		c.current = c.min
	} else {
		c.current++
	}
	return v
}

// Generate draws count values from g in call order.
func Generate(count int, g Generator) ([]int64, error) {
	if count <= 0 {
		return nil, cmd.Argumentf("count must be a positive integer")
	}
	out := make([]int64, count)
	for i := range out {
		out[i] = g.Next()
	}
	return out, nil
}
