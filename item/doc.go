// Package item defines the shared data model for the knapsack selectors
// and the synthetic generator that feeds them.
//
// 🚀 What is an Item?
//
//	A food item on a restaurant menu: a Name, a calorie cost and a value
//	(how much you want to eat it). Items are plain immutable values; every
//	algorithm reads them and none of them writes them back.
//
// ✨ Key features:
//   - Item & Selection value types with totals and value density
//   - Generate: reproducible random menus (seeded or caller-owned *rand.Rand)
//   - Decode: read a menu from JSON or YAML
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/knapsack/item"
//
//	menu, err := item.Generate(50, item.WithSeed(42))
//	if err != nil {
//	  // handle ErrNegativeCount
//	}
//	fmt.Println(menu[0].Name, menu[0].Calories, menu[0].Value)
//
// Randomness:
//
//   - Calories are drawn uniformly from {100, 150, …, 950}.
//   - Value is drawn uniformly from 1..9.
//   - Draw order is calories then value, per item, in index order.
//   - The same seed yields the same menu on every run and platform.
//
// Density:
//
//	Density = Value / Calories. A zero-calorie item has density +Inf, so it
//	ranks first under any density ordering instead of faulting.
package item
