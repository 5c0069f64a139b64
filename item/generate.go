package item

import (
	"fmt"
	"math/rand"
	"strconv"
)

// Option configures Generate via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation.
type Option func(*GenerateOptions)

// GenerateOptions holds the randomness source for Generate.
type GenerateOptions struct {
	// Rand, when non-nil, is used as-is and advanced by the draws.
	Rand *rand.Rand

	// Seed is used when Rand is nil and HasSeed is true.
	Seed    int64
	HasSeed bool

	err error
}

// DefaultOptions returns GenerateOptions with no seed and no generator,
// meaning Generate draws from a fresh time-seeded stream.
func DefaultOptions() GenerateOptions {
	return GenerateOptions{}
}

// WithSeed makes the generated menu reproducible.
func WithSeed(seed int64) Option {
	return func(o *GenerateOptions) {
		o.Seed = seed
		o.HasSeed = true
	}
}

// WithRand draws from a caller-owned generator. It takes precedence over WithSeed.
//
//	r != nil: use r
//	r == nil: invalid option → ErrOptionViolation
func WithRand(r *rand.Rand) Option {
	return func(o *GenerateOptions) {
		if r == nil {
			o.err = fmt.Errorf("%w: nil *rand.Rand", ErrOptionViolation)
			return
		}
		o.Rand = r
	}
}

// source resolves the generator to draw from.
func (o GenerateOptions) source() *rand.Rand {
	switch {
	case o.Rand != nil:
		return o.Rand
	case o.HasSeed:
		return rngFromSeed(o.Seed)
	default:
		return rngFromClock()
	}
}

// Generate produces exactly n synthetic menu items named item0..item{n-1}.
//
// For each item, in index order, calories are drawn first and value second:
//
//	calories ∈ {100, 150, …, 950}
//	value    ∈ {1, …, 9}
//
// Contract:
//   - n == 0 yields an empty, non-nil slice.
//   - n < 0 yields ErrNegativeCount.
//   - Same seed ⇒ identical output.
//
// Complexity: O(n) time, O(n) space.
func Generate(n int, opts ...Option) ([]Item, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativeCount, n)
	}

	var o = DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	var (
		r     = o.source()
		items = make([]Item, n)
		cal   int
		i     int
	)
	for i = 0; i < n; i++ {
		cal = drawCalories(r) // calories strictly before value
		items[i] = Item{
			Name:     NamePrefix + strconv.Itoa(i),
			Calories: cal,
			Value:    drawValue(r),
		}
	}

	return items, nil
}
