package knapsack_test

import (
	"fmt"

	"github.com/katalvlaran/knapsack/knapsack"
)

// ExampleMaxValue spends 50 on three books priced 10, 20 and 30.
// The best pick is the 20 and 30 books: 100+120 = 220 pages.
func ExampleMaxValue() {
	best, err := knapsack.MaxValue(
		[]int{10, 20, 30},
		[]int{60, 100, 120},
		50,
	)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(best)
	// Output: 220
}

// ExampleSolve_fullTable recovers which items make up the optimum.
//
// Complexity: O(N·B) time, O(N·B) memory.
func ExampleSolve_fullTable() {
	items := []knapsack.Item{
		{Cost: 0, Value: 7},
		{Cost: 5, Value: 3},
		{Cost: 4, Value: 6},
		{Cost: 2, Value: 2},
	}
	opts := knapsack.DefaultOptions()
	opts.MemoryMode = knapsack.FullTable
	opts.ReturnItems = true

	res, err := knapsack.Solve(items, 6, &opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("value=%d cost=%d items=%v\n", res.Value, res.Cost, res.Items)
	// Output: value=15 cost=6 items=[0 2 3]
}

// ExampleSolve_limits shows how an oversized budget is rejected up front.
func ExampleSolve_limits() {
	opts := knapsack.DefaultOptions()
	opts.Limits = knapsack.Limits{MaxBudget: 1000}

	_, err := knapsack.Solve([]knapsack.Item{{Cost: 1, Value: 1}}, 5000, &opts)
	fmt.Println(err)
	// Output: budget 5000 above max 1000: knapsack: input exceeds configured limits
}
