package knapsack

// Knapsack - 0/1 value maximization under a budget
//
// Algorithm Outline (Rolling):
//  1. Allocate dp[0..budget], all zeros.
//  2. For each item i in input order:
//     For w = budget down to cost[i]:
//     dp[w] = max(dp[w], dp[w-cost[i]] + value[i])
//  3. Answer = dp[budget].
//
// The inner loop must run from high to low budget. Going upward would read
// dp[w-cost[i]] after it already counted item i in the same pass, turning the
// problem into the unbounded variant.
//
// Algorithm Outline (FullTable):
//
//	T[i][w] = best value using items 0..i-1 with cost ≤ w.
//	T[i][w] = T[i-1][w], or T[i-1][w-cost]+value when cost ≤ w.
//	Backtrack from (n, budget): item i-1 was taken iff T[i][w] != T[i-1][w].
//
// Complexity:
//
//	Time   = O(n·budget)
//	Memory = O(budget) (Rolling) or O(n·budget) (FullTable)

// MaxValue returns the best total value reachable from the parallel costs and
// values sequences without exceeding budget, each item used at most once.
//
// It applies DefaultLimits. Use Solve for custom limits or item reconstruction.
//
// Errors: ErrLengthMismatch, ErrInvalidRange, ErrLimitExceeded.
func MaxValue(costs, values []int, budget int) (int, error) {
	if len(costs) != len(values) {
		return 0, ErrLengthMismatch
	}
	items := make([]Item, len(costs))
	for i := range costs {
		items[i] = Item{Cost: costs[i], Value: values[i]}
	}

	res, err := Solve(items, budget, nil)
	if err != nil {
		return 0, err
	}

	return res.Value, nil
}

// Solve computes the optimal 0/1 selection of items within budget.
// A nil opts means DefaultOptions().
//
// If opts.ReturnItems is true, opts.MemoryMode must be FullTable.
//
// Example:
//
//	opts := DefaultOptions()
//	opts.MemoryMode = FullTable
//	opts.ReturnItems = true
//	res, err := Solve(items, 50, &opts)
func Solve(items []Item, budget int, opts *Options) (Result, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := validate(items, budget, o); err != nil {
		return Result{}, err
	}

	if o.MemoryMode == Rolling {
		return Result{Value: rolling(items, budget)}, nil
	}

	table := fullTable(items, budget)
	res := Result{Value: table[len(items)][budget]}
	if o.ReturnItems {
		res.Items, res.Cost = backtrack(table, items, budget)
	}

	return res, nil
}

// rolling fills a single row right to left for every item.
func rolling(items []Item, budget int) int {
	dp := make([]int, budget+1)
	for _, it := range items {
		for w := budget; w >= it.Cost; w-- {
			if cand := dp[w-it.Cost] + it.Value; cand > dp[w] {
				dp[w] = cand
			}
		}
	}

	return dp[budget]
}

// fullTable returns the (n+1)x(budget+1) table; row 0 is all zeros.
func fullTable(items []Item, budget int) [][]int {
	n := len(items)
	table := make([][]int, n+1)
	for i := range table {
		table[i] = make([]int, budget+1)
	}

	for i := 1; i <= n; i++ {
		it := items[i-1]
		prev, cur := table[i-1], table[i]
		copy(cur, prev)
		for w := it.Cost; w <= budget; w++ {
			if cand := prev[w-it.Cost] + it.Value; cand > cur[w] {
				cur[w] = cand
			}
		}
	}

	return table
}

// backtrack walks the table from (n, budget) to row 0 and returns the chosen
// indices in ascending order together with their total cost.
func backtrack(table [][]int, items []Item, budget int) ([]int, int) {
	picked := make([]int, 0, len(items))
	w, cost := budget, 0
	for i := len(items); i >= 1; i-- {
		if table[i][w] != table[i-1][w] {
			picked = append(picked, i-1)
			w -= items[i-1].Cost
			cost += items[i-1].Cost
		}
	}

	// reverse in-place
	for l, r := 0, len(picked)-1; l < r; l, r = l+1, r-1 {
		picked[l], picked[r] = picked[r], picked[l]
	}

	return picked, cost
}
