// Package item - RNG utilities for the menu generator.
//
// Goals:
//   - Determinism: same seed ⇒ identical menus across runs and platforms.
//   - Injection: callers may own the *rand.Rand; there is no package-level source.
//   - Fallback: with no seed and no generator, a fresh time-seeded stream per call.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.
package item

import (
	"math/rand"
	"time"
)

// calorieBuckets is the number of distinct calorie values the generator can draw.
const calorieBuckets = (MaxCalories-MinCalories)/CalorieStep + 1

// rngFromSeed returns a deterministic *rand.Rand for seed.
// Unlike the unseeded fallback, every seed (zero included) is used verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// rngFromClock returns a *rand.Rand seeded from the wall clock.
// Used only when the caller asked for neither a seed nor a generator.
func rngFromClock() *rand.Rand {
	return rngFromSeed(time.Now().UnixNano())
}

// drawCalories returns a uniform draw from {MinCalories, MinCalories+CalorieStep, …, MaxCalories}.
//
// Complexity: O(1).
func drawCalories(r *rand.Rand) int {
	return MinCalories + r.Intn(calorieBuckets)*CalorieStep
}

// drawValue returns a uniform draw from MinValue..MaxValue.
//
// Complexity: O(1).
func drawValue(r *rand.Rand) int {
	return MinValue + r.Intn(MaxValue-MinValue+1)
}
