package knapsack

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
)

// Sentinel errors for knapsack operations. Call sites attach context with %w.
var (
	// ErrInvalidRange indicates a negative budget, item count, cost or value.
	ErrInvalidRange = errors.New("knapsack: value out of range")

	// ErrLengthMismatch indicates the cost and value sequences differ in length.
	ErrLengthMismatch = errors.New("knapsack: costs and values must have equal length")

	// ErrLimitExceeded indicates the item count or budget is above the configured Limits.
	ErrLimitExceeded = errors.New("knapsack: input exceeds configured limits")

	// ErrItemsNeedFullTable indicates ReturnItems was requested without FullTable mode.
	ErrItemsNeedFullTable = errors.New("knapsack: ReturnItems requires MemoryMode=FullTable")

	// ErrUnknownMemoryMode indicates an unsupported MemoryMode value.
	ErrUnknownMemoryMode = errors.New("knapsack: unknown memory mode")
)

// Item is a single candidate with a cost and the value gained by taking it.
type Item struct {
	Cost  int
	Value int
}

// MemoryMode controls how the solver stores its DP table.
//
//   - Rolling   - one row of budget+1 entries updated in place, right to left.
//     Memory: O(budget). Cannot recover which items were chosen.
//
//   - FullTable - keep all n+1 rows. Allows backtracking the chosen items.
//     Memory: O(n·budget).
type MemoryMode int

const (
	// Rolling keeps a single budget-indexed row.
	Rolling MemoryMode = iota

	// FullTable keeps every row so the selection can be reconstructed.
	FullTable
)

// String returns the lower-case mode name used in configs and logs.
func (m MemoryMode) String() string {
	switch m {
	case Rolling:
		return "rolling"
	case FullTable:
		return "full"
	default:
		return fmt.Sprintf("MemoryMode(%d)", int(m))
	}
}

// ParseMemoryMode maps "rolling" / "full" back to a MemoryMode.
func ParseMemoryMode(s string) (MemoryMode, error) {
	switch s {
	case "", "rolling":
		return Rolling, nil
	case "full":
		return FullTable, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownMemoryMode)
	}
}

// maxCells is the largest DP table the solver will allocate whatever the
// Limits say. 8-byte cells must stay below the runtime allocation ceiling.
const maxCells = min(uint64(1)<<40, uint64(math.MaxInt)/8)

// Limits bounds the problem size accepted before any table is allocated.
// A zero field disables that bound.
//
// MaxCells bounds the (n+1)·(budget+1) cells of a FullTable solve; Rolling
// mode only allocates budget+1 cells and is bounded by MaxBudget.
type Limits struct {
	MaxItems  int
	MaxBudget int
	MaxCells  int
}

// DefaultLimits caps inputs at one million items and a budget of 1e8,
// which keeps a Rolling table under one gigabyte, and a FullTable at
// 5e7 cells (400 MB).
func DefaultLimits() Limits {
	return Limits{
		MaxItems:  1_000_000,
		MaxBudget: 100_000_000,
		MaxCells:  50_000_000,
	}
}

// Check reports ErrLimitExceeded when n or budget is above the configured maxima.
func (l Limits) Check(n, budget int) error {
	if l.MaxItems > 0 && n > l.MaxItems {
		return fmt.Errorf("item count %d above max %d: %w", n, l.MaxItems, ErrLimitExceeded)
	}
	if l.MaxBudget > 0 && budget > l.MaxBudget {
		return fmt.Errorf("budget %d above max %d: %w", budget, l.MaxBudget, ErrLimitExceeded)
	}

	return nil
}

// CheckTable reports ErrLimitExceeded when a table of rows x cols cells is
// above MaxCells or above the solver's hard ceiling. The product never overflows.
func (l Limits) CheckTable(rows, cols int) error {
	hi, cells := bits.Mul64(uint64(rows), uint64(cols))
	if hi != 0 || cells > maxCells {
		return fmt.Errorf("table %dx%d too large to allocate: %w", rows, cols, ErrLimitExceeded)
	}
	if l.MaxCells > 0 && cells > uint64(l.MaxCells) {
		return fmt.Errorf("table %dx%d = %d cells above max %d: %w", rows, cols, cells, l.MaxCells, ErrLimitExceeded)
	}

	return nil
}

// Options configures Solve.
//
// Fields:
//   - MemoryMode  - Rolling (default) or FullTable.
//   - ReturnItems - if true, Solve backtracks and fills Result.Items and
//     Result.Cost. Requires MemoryMode=FullTable.
//   - Limits      - size guard applied before allocation.
//
// Example:
//
//	opts := DefaultOptions()
//	opts.MemoryMode = FullTable
//	opts.ReturnItems = true
//
//	res, err := Solve(items, budget, &opts)
//	if err != nil {
//	  // handle ErrInvalidRange, ErrLimitExceeded, ...
//	}
//	fmt.Println(res.Value, res.Items)
type Options struct {
	MemoryMode  MemoryMode
	ReturnItems bool
	Limits      Limits
}

// DefaultOptions returns Rolling mode, no item reconstruction and DefaultLimits.
func DefaultOptions() Options {
	return Options{
		MemoryMode:  Rolling,
		ReturnItems: false,
		Limits:      DefaultLimits(),
	}
}

// Result holds the outcome of Solve.
type Result struct {
	// Value is the maximum total value within the budget.
	Value int

	// Items lists the chosen input indices in ascending order.
	// Nil unless Options.ReturnItems was set.
	Items []int

	// Cost is the total cost of Items. Zero unless Options.ReturnItems was set.
	Cost int
}
