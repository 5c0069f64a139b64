package item

import "math"

// TotalCalories sums Calories over s.
//
// Complexity: O(n).
func (s Selection) TotalCalories() int {
	var (
		total int
		i     int
	)
	for i = range s {
		total += s[i].Calories
	}

	return total
}

// TotalValue sums Value over s.
//
// Complexity: O(n).
func (s Selection) TotalValue() int {
	var (
		total int
		i     int
	)
	for i = range s {
		total += s[i].Value
	}

	return total
}

// Density returns TotalValue/TotalCalories.
// An empty selection (or one with zero total calories) reports NaN when it
// also has zero value, +Inf otherwise; callers render both as "no density".
func (s Selection) Density() float64 {
	var cal, val = s.TotalCalories(), s.TotalValue()
	if cal == 0 {
		if val == 0 {
			return math.NaN()
		}

		return math.Inf(1)
	}

	return float64(val) / float64(cal)
}

// Feasible reports whether s fits inside capacity.
func (s Selection) Feasible(capacity int) bool {
	return s.TotalCalories() <= capacity
}

// Names returns item names in selection order.
func (s Selection) Names() []string {
	var names = make([]string, len(s))
	for i := range s {
		names[i] = s[i].Name
	}

	return names
}

// Clone returns a copy of s that shares no backing array with it.
// A nil selection clones to an empty, non-nil one.
func (s Selection) Clone() Selection {
	var out = make(Selection, len(s))
	copy(out, s)

	return out
}
