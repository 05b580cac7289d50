// Package knapsack solves the 0/1 knapsack problem: pick a subset of items,
// each with a cost and a value, maximizing total value while the total cost
// stays within a budget. Every item is used at most once.
//
// 🚀 Where does it show up?
//
//	  • Spending a fixed amount on books to get the most pages
//	  • Choosing which jobs fit into a capacity window
//	  • Cargo / cache / ad-slot selection under a hard limit
//
// ✨ Key features:
//   - rolling mode: a single budget-indexed row, O(budget) memory
//   - full-table mode: (n+1)x(budget+1) table with item reconstruction
//   - explicit Limits guard against oversized inputs before allocating
//   - sentinel errors only, branch with errors.Is
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/knapsack/knapsack"
//
//	best, err := knapsack.MaxValue(
//	  []int{10, 20, 30}, // costs
//	  []int{60, 100, 120}, // values
//	  50, // budget
//	)
//	// best == 220
//
//	opts := knapsack.DefaultOptions()
//	opts.MemoryMode = knapsack.FullTable
//	opts.ReturnItems = true
//	res, err := knapsack.Solve(items, 50, &opts)
//	// res.Items == [1 2]
//
// Performance:
//
//   - Time:   O(n·budget)
//   - Memory: O(budget) (Rolling) or O(n·budget) (FullTable)
package knapsack
