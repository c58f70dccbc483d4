package plates

import "math"

// SmallestIncrement returns the smallest total step the inventory allows:
// one of the lightest plates on each side. Zero when the inventory is empty.
func SmallestIncrement(inv Inventory) float64 {
	if len(inv) == 0 {
		return 0
	}
	return 2 * minOf(inv)
}

// Step is SmallestIncrement with FallbackStep substituted for zero.
func Step(inv Inventory) float64 {
	if inc := SmallestIncrement(inv); inc > 0 {
		return inc
	}
	return FallbackStep
}

// Snap moves total onto the nearest bar + k*increment, never below the bar.
// It does not consult the resolver; feed the result back through Resolve when
// the exact loadable weight matters.
func Snap(total, increment float64) float64 {
	if increment <= 0 {
		return total
	}
	k := math.Round((total - BarbellWeight) / increment)
	return max(BarbellWeight, BarbellWeight+k*increment)
}

func minOf(inv Inventory) float64 {
	m := inv[0]
	for _, p := range inv[1:] {
		if p < m {
			m = p
		}
	}
	return m
}
