package knapsack

import "fmt"

// validate checks options first, then sizes against limits, then every item.
// It never allocates proportional to budget.
//
// Complexity: O(n).
func validate(items []Item, budget int, opts Options) error {
	switch opts.MemoryMode {
	case Rolling, FullTable:
	default:
		return fmt.Errorf("%v: %w", opts.MemoryMode, ErrUnknownMemoryMode)
	}
	if opts.ReturnItems && opts.MemoryMode != FullTable {
		return ErrItemsNeedFullTable
	}

	if budget < 0 {
		return fmt.Errorf("budget %d: %w", budget, ErrInvalidRange)
	}
	if err := opts.Limits.Check(len(items), budget); err != nil {
		return err
	}
	if uint64(budget)+1 > maxCells {
		return fmt.Errorf("budget %d: row too large to allocate: %w", budget, ErrLimitExceeded)
	}
	if opts.MemoryMode == FullTable {
		if err := opts.Limits.CheckTable(len(items)+1, budget+1); err != nil {
			return err
		}
	}

	for i, it := range items {
		if it.Cost < 0 {
			return fmt.Errorf("cost[%d]=%d: %w", i, it.Cost, ErrInvalidRange)
		}
		if it.Value < 0 {
			return fmt.Errorf("value[%d]=%d: %w", i, it.Value, ErrInvalidRange)
		}
	}

	return nil
}
