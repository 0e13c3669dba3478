package stats

// PercentageChange returns the change from previous to current in percent.
// With no previous activity the current value is scaled by 100, so growth
// from nothing reads as current*100 rather than infinity. No rounding.
func PercentageChange(current, previous float64) float64 {
	if previous == 0 {
		return current * 100
	}
	return (current - previous) / previous * 100
}
