// Package item defines the Item and Selection types, generator bounds
// and sentinel errors.
package item

import (
	"errors"
	"math"
)

// Generator bounds. Calories are drawn from MinCalories..MaxCalories
// (inclusive) in steps of CalorieStep; values from MinValue..MaxValue.
const (
	MinCalories = 100
	MaxCalories = 950
	CalorieStep = 50
	MinValue    = 1
	MaxValue    = 9
)

// NamePrefix is prepended to the generation index to build item names.
const NamePrefix = "item"

// Sentinel errors for generation and decoding.
var (
	// ErrNegativeCount is returned when Generate is asked for n < 0 items.
	ErrNegativeCount = errors.New("item: count must be non-negative")

	// ErrInvalidItem is returned by Decode for items with an empty name or
	// negative calories/value.
	ErrInvalidItem = errors.New("item: invalid item")

	// ErrUnknownFormat is returned by Decode for an unsupported Format.
	ErrUnknownFormat = errors.New("item: unknown format")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("item: invalid option supplied")
)

// Item is a single menu entry. It is a value type; algorithms never mutate it.
type Item struct {
	// Name identifies the item; unique per generated menu, not enforced.
	Name string `json:"name" yaml:"name"`

	// Calories is the cost dimension.
	Calories int `json:"calories" yaml:"calories"`

	// Value is the benefit dimension.
	Value int `json:"value" yaml:"value"`
}

// Density returns Value/Calories. Zero-calorie items report +Inf.
func (it Item) Density() float64 {
	if it.Calories == 0 {
		return math.Inf(1)
	}

	return float64(it.Value) / float64(it.Calories)
}

// Selection is the ordered subset chosen by a selector. Order is the
// algorithm's insertion order and carries no meaning beyond that.
type Selection []Item
