package stats

import (
	"fmt"
	"math"
)

// CategoryCount holds a single {category: percentage} pair.
type CategoryCount map[string]int

// Distribute converts per-category product counts into rounded percentage
// shares of total, one entry per category in input order. Shares are rounded
// independently and need not add up to 100.
//
// total must be positive whenever categories is non-empty.
func Distribute(categories []string, total int, count func(category string) (int, error)) ([]CategoryCount, error) {
	shares := make([]CategoryCount, 0, len(categories))
	if len(categories) == 0 {
		return shares, nil
	}
	if total <= 0 {
		return nil, fmt.Errorf("%w: total product count %d", ErrPrecondition, total)
	}

	for _, category := range categories {
		n, err := count(category)
		if err != nil {
			return nil, fmt.Errorf("failed to count category %q: %w", category, err)
		}
		shares = append(shares, CategoryCount{category: int(math.Round(float64(n) / float64(total) * 100))})
	}
	return shares, nil
}
