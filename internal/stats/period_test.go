package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPeriods(t *testing.T) {
	this := ThisMonth(ref)
	assert.Equal(t, time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC), this.Start)
	assert.Equal(t, ref, this.End)

	prev := PreviousMonth(ref)
	assert.Equal(t, time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC), prev.Start)
	assert.True(t, prev.Contains(time.Date(2026, time.September, 30, 23, 59, 59, 0, time.UTC)))
	assert.False(t, prev.Contains(this.Start))
}

func TestPreviousMonth_January(t *testing.T) {
	prev := PreviousMonth(time.Date(2027, time.January, 5, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2026, time.December, 1, 0, 0, 0, 0, time.UTC), prev.Start)
	assert.Equal(t, time.Date(2026, time.December, 31, 23, 59, 59, 999999999, time.UTC), prev.End)
}

func TestWindow(t *testing.T) {
	assert.Equal(t, time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC), Window(ref, 6).Start)
	assert.Equal(t, time.Date(2025, time.November, 1, 0, 0, 0, 0, time.UTC), Window(ref, 12).Start)
	assert.Equal(t, ref, Window(ref, 12).End)
}
