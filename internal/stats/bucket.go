package stats

import (
	"fmt"
	"time"
)

// Timestamped is any record the bucketer can place on a calendar.
type Timestamped interface {
	Created() time.Time
}

// monthsBetween is the calendar month difference between ref and t.
// For records inside Window(ref, 12) it equals (refMonth - month + 12) mod 12.
func monthsBetween(ref, t time.Time) int {
	return (ref.Year()-t.Year())*12 + int(ref.Month()) - int(t.Month())
}

// bucketIndexes maps every record to its slot in a length-month series,
// index 0 being the oldest month and length-1 the month of ref.
//
// Records must already be bounded to Window(ref, length); anything outside
// it is rejected rather than silently folded into another month.
func bucketIndexes[T Timestamped](records []T, length int, ref time.Time) ([]int, error) {
	if length <= 0 {
		return nil, fmt.Errorf("%w: bucket length %d", ErrPrecondition, length)
	}
	window := Window(ref, length)
	idx := make([]int, len(records))
	for i, rec := range records {
		created := rec.Created().In(ref.Location())
		if !window.Contains(created) {
			return nil, fmt.Errorf("%w: record created %s outside %d-month window [%s, %s]",
				ErrPrecondition, created.Format(time.RFC3339), length,
				window.Start.Format(time.RFC3339), window.End.Format(time.RFC3339))
		}
		idx[i] = length - monthsBetween(ref, created) - 1
	}
	return idx, nil
}

// MonthlyCounts counts records per month over the length months ending at ref.
func MonthlyCounts[T Timestamped](records []T, length int, ref time.Time) ([]int, error) {
	idx, err := bucketIndexes(records, length, ref)
	if err != nil {
		return nil, err
	}
	counts := make([]int, length)
	for _, i := range idx {
		counts[i]++
	}
	return counts, nil
}

// MonthlySums adds value(record) per month over the length months ending at ref.
func MonthlySums[T Timestamped](records []T, length int, ref time.Time, value func(T) float64) ([]float64, error) {
	idx, err := bucketIndexes(records, length, ref)
	if err != nil {
		return nil, err
	}
	sums := make([]float64, length)
	for n, i := range idx {
		sums[i] += value(records[n])
	}
	return sums, nil
}
