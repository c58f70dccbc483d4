package plates

import (
	"fmt"
	"math"
	"sort"
)

// BarbellWeight is the unloaded bar in kilograms.
const BarbellWeight = 20.0

// MaxLoad is the heaviest total Resolve will try to build. Targets above it
// are resolved as if they were MaxLoad and never reported exact.
const MaxLoad = 1000.0

// FallbackStep is used for weight stepping when no plates are selected.
const FallbackStep = 0.5

// Catalog lists every plate size the app knows about, heaviest first.
var Catalog = []float64{25, 20, 15, 10, 5, 2.5, 1.25, 1, 0.75, 0.5, 0.25}

// DefaultSelection is the inventory checked on a fresh install.
var DefaultSelection = []float64{25, 20, 15, 10, 5, 2.5, 1.25}

// Inventory is a set of distinct plate weights, sorted descending.
// Each entry stands for plates available in pairs.
type Inventory []float64

// NewInventory validates weights and returns them as a descending set.
// Duplicates are collapsed by gram value.
func NewInventory(weights ...float64) (Inventory, error) {
	seen := make(map[int64]bool, len(weights))
	inv := make(Inventory, 0, len(weights))
	for _, w := range weights {
		if math.IsNaN(w) || math.IsInf(w, 0) || toGrams(w) <= 0 {
			return nil, fmt.Errorf("invalid plate weight %v", w)
		}
		g := toGrams(w)
		if seen[g] {
			continue
		}
		seen[g] = true
		inv = append(inv, w)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(inv)))
	return inv, nil
}

// PlatePair is one plate size and how many of it go on each side.
type PlatePair struct {
	Plate float64 `json:"plate"`
	Count int     `json:"count"`
}

// Resolution is the closest achievable load for a requested total.
type Resolution struct {
	Weight float64     `json:"weight"`
	Pairs  []PlatePair `json:"plates"`
	Exact  bool        `json:"exact"`
	Delta  float64     `json:"delta"`
}

// Resolve finds the heaviest total not above target that the inventory can build,
// taking plates greedily from largest to smallest. ok is false when the target
// is above the bar and there are no plates to approach it with.
//
// Greedy is only optimal for canonical plate systems such as Catalog.
func Resolve(target float64, inv Inventory) (res Resolution, ok bool) {
	if target <= BarbellWeight {
		return Resolution{
			Weight: BarbellWeight,
			Pairs:  []PlatePair{},
			Exact:  target == BarbellWeight,
			Delta:  roundKg(BarbellWeight - target),
		}, true
	}
	if len(inv) == 0 {
		return Resolution{}, false
	}

	perSide := max(0, toGrams((min(target, MaxLoad)-BarbellWeight)/2))
	remain := perSide
	pairs := []PlatePair{}
	for _, p := range inv {
		pg := toGrams(p)
		if pg <= 0 {
			continue
		}
		if count := remain / pg; count > 0 {
			pairs = append(pairs, PlatePair{Plate: roundKg(float64(pg) / 1000), Count: int(count)})
			remain -= count * pg
		}
	}

	achieved := float64(toGrams(BarbellWeight)+(perSide-remain)*2) / 1000
	return Resolution{
		Weight: roundKg(achieved),
		Pairs:  pairs,
		Exact:  remain == 0 && target <= MaxLoad,
		Delta:  roundKg(achieved - target),
	}, true
}

func toGrams(kg float64) int64 {
	return int64(math.Round(kg * 1000))
}

func roundKg(kg float64) float64 {
	return math.Round(kg*100) / 100
}
