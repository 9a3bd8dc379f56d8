package model

import (
	"fmt"
	"sort"
)

// StockOption is an available raw bar length in mm.
type StockOption float64

// DefaultStockLength is the fallback bar length used when the caller supplies
// no stock options. 6000 mm is the standard mill length for most steel
// sections.
const DefaultStockLength StockOption = 6000

// NormalizeStockOptions prepares caller-supplied stock lengths for planning:
// duplicates collapse to one entry and the result is sorted ascending.
// An empty or nil input normalizes to the single DefaultStockLength.
// Non-positive lengths are a ValidationError.
func NormalizeStockOptions(stocks []StockOption) ([]StockOption, error) {
	if len(stocks) == 0 {
		return []StockOption{DefaultStockLength}, nil
	}
	seen := make(map[StockOption]bool, len(stocks))
	var out []StockOption
	for _, s := range stocks {
		if s <= 0 {
			return nil, &ValidationError{Index: -1, Field: "stock", Msg: fmt.Sprintf("length must be positive, got %g", float64(s))}
		}
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}

// MaxStockOption returns the largest of the given options.
// The slice must be non-empty.
func MaxStockOption(stocks []StockOption) StockOption {
	max := stocks[0]
	for _, s := range stocks[1:] {
		if s > max {
			max = s
		}
	}
	return max
}
