// Package knapsack picks the most valuable dishes from a menu without going
// over a calorie budget: the 0/1 knapsack problem, solved two ways.
//
// 🚀 What is in the box?
//
//	item/          Item and Selection types, a seeded menu generator, JSON/YAML loading
//	greedy/        rank by value per calorie, fill the budget in one pass
//	exhaustive/    try every include/exclude combination, always optimal
//	selector/      pick an algorithm by name, compare both on one menu
//	report/        lipgloss tables and JSON/YAML output
//	timing/        measured blocks with a report line, OpenTelemetry span and histogram
//	logging/       process-wide slog setup
//	telemetry/     tracer provider setup
//	cmd/knapsack/  the CLI tying it together
//
// ✨ Why two selectors?
//
//   - greedy is O(n log n) and usually close, but a dense item can crowd
//     out a better pair of lighter ones
//   - exhaustive is O(2ⁿ) and exact; the gap between them is what
//     "knapsack compare" prints
//
// Quick example:
//
//	A(100 kcal, 5)  B(200 kcal, 6)  C(150 kcal, 9), budget 250
//
//	greedy:     C, A  → value 14
//	exhaustive: A, C  → value 14
//
// Both agree here; see greedy/doc.go for a menu where they do not.
//
//	go install github.com/katalvlaran/knapsack/cmd/knapsack@latest
package knapsack
