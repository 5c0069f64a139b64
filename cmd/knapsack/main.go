// Command knapsack builds a random menu and picks the most valuable dishes
// that fit a calorie budget, greedily and exhaustively.
package main

import "github.com/katalvlaran/knapsack/cmd/knapsack/commands"

func main() {
	commands.Execute()
}
