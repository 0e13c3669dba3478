package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rogerio-castellano/shop-backoffice/internal/models"
)

var ref = time.Date(2026, time.October, 14, 12, 0, 0, 0, time.UTC)

func orderAt(t time.Time, total float64) models.Order {
	return models.Order{Total: total, CreatedAt: t}
}

func TestMonthlyCounts_EmptyInput(t *testing.T) {
	for _, length := range []int{1, 6, 12} {
		counts, err := MonthlyCounts([]models.Order{}, length, ref)
		require.NoError(t, err)
		assert.Equal(t, make([]int, length), counts)

		sums, err := MonthlySums([]models.Order{}, length, ref, orderTotal)
		require.NoError(t, err)
		assert.Equal(t, make([]float64, length), sums)
	}
}

func TestMonthlyCounts_PlacesOldestFirst(t *testing.T) {
	orders := []models.Order{
		orderAt(ref, 10),
		orderAt(time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC), 20),
		orderAt(time.Date(2026, time.September, 30, 23, 59, 0, 0, time.UTC), 30),
		orderAt(time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC), 40),
	}

	counts, err := MonthlyCounts(orders, 6, ref)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0, 0, 0, 1, 2}, counts)

	sums, err := MonthlySums(orders, 6, ref, orderTotal)
	require.NoError(t, err)
	assert.Equal(t, []float64{40, 0, 0, 0, 30, 30}, sums)
}

func TestMonthlyCounts_AcrossYearBoundary(t *testing.T) {
	jan := time.Date(2027, time.January, 20, 0, 0, 0, 0, time.UTC)
	orders := []models.Order{
		orderAt(time.Date(2026, time.November, 3, 0, 0, 0, 0, time.UTC), 1),
		orderAt(time.Date(2026, time.December, 24, 0, 0, 0, 0, time.UTC), 1),
		orderAt(time.Date(2027, time.January, 2, 0, 0, 0, 0, time.UTC), 1),
	}

	counts, err := MonthlyCounts(orders, 6, jan)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0, 1, 1, 1}, counts)
}

func TestMonthlySums_MissingValueCountsAsZero(t *testing.T) {
	orders := []models.Order{orderAt(ref, 0), orderAt(ref, 12.5)}

	sums, err := MonthlySums(orders, 12, ref, orderDiscount)
	require.NoError(t, err)
	assert.Len(t, sums, 12)
	assert.Zero(t, sums[11])
}

func TestMonthlyCounts_SumMatchesRecordCount(t *testing.T) {
	for _, length := range []int{6, 12} {
		window := Window(ref, length)
		var orders []models.Order
		total := 0.0
		for i := 0; i < 50; i++ {
			created := window.Start.Add(time.Duration(i) * ref.Sub(window.Start) / 50)
			value := float64(i%7) * 3.25
			orders = append(orders, orderAt(created, value))
			total += value
		}

		counts, err := MonthlyCounts(orders, length, ref)
		require.NoError(t, err)
		n := 0
		for _, c := range counts {
			n += c
		}
		assert.Equal(t, len(orders), n, "length %d", length)

		sums, err := MonthlySums(orders, length, ref, orderTotal)
		require.NoError(t, err)
		s := 0.0
		for _, v := range sums {
			s += v
		}
		assert.InDelta(t, total, s, 1e-9, "length %d", length)
	}
}

func TestMonthlyCounts_RejectsRecordsOutsideWindow(t *testing.T) {
	tests := []struct {
		name    string
		created time.Time
		length  int
	}{
		{"same calendar month one year back", time.Date(2025, time.October, 20, 0, 0, 0, 0, time.UTC), 12},
		{"seven months back in a six month window", time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC), 6},
		{"after reference date", ref.Add(time.Second), 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := MonthlyCounts([]models.Order{orderAt(tt.created, 1)}, tt.length, ref)
			assert.ErrorIs(t, err, ErrPrecondition)
		})
	}
}

func TestMonthlyCounts_RejectsEmptyWindow(t *testing.T) {
	_, err := MonthlyCounts([]models.Order{}, 0, ref)
	assert.ErrorIs(t, err, ErrPrecondition)

	_, err = MonthlySums([]models.Order{}, -1, ref, orderTotal)
	assert.ErrorIs(t, err, ErrPrecondition)
}

func TestMonthlyCounts_UsesReferenceLocation(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	localRef := time.Date(2026, time.October, 14, 12, 0, 0, 0, loc)
	// 22:30 UTC on Sep 30 is already Oct 1 at UTC+3.
	orders := []models.Order{orderAt(time.Date(2026, time.September, 30, 22, 30, 0, 0, time.UTC), 1)}

	counts, err := MonthlyCounts(orders, 2, localRef)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, counts)
}
