// Command knapsack reads a 0/1 knapsack instance from stdin and prints the
// best achievable total value.
//
//	$ printf '3 50\n10 20 30\n60 100 120\n' | knapsack
//	220
package main

import "github.com/katalvlaran/knapsack/cmd/knapsack/commands"

func main() {
	commands.Execute()
}
