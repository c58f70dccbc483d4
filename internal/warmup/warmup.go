// Package warmup builds the ascending warmup ladder that leads up to a work set,
// resolving every set to a loadable plate combination.
package warmup

import (
	"fmt"
	"math"

	"github.com/meltforce/barload/internal/plates"
)

// WorkSetLabel marks the final set of a plan.
const WorkSetLabel = "Work Set"

// Set is one row of a plan.
type Set struct {
	Reps   string             `json:"set"`
	Weight float64            `json:"weight"`
	Pairs  []plates.PlatePair `json:"plates"`
	Label  string             `json:"label"`
}

// IsWork reports whether s is the work set.
func (s Set) IsWork() bool {
	return s.Label == WorkSetLabel
}

// Plan is an ordered list of warmup sets followed by the work set.
type Plan []Set

// WorkSet returns the plan's work set, if it could be resolved.
func (p Plan) WorkSet() (Set, bool) {
	if n := len(p); n > 0 && p[n-1].IsWork() {
		return p[n-1], true
	}
	return Set{}, false
}

// Generate builds the warmup plan for workWeight on exercise ex.
// Sets whose load cannot be resolved with inv are left out; an empty plan is
// a valid result.
func Generate(workWeight float64, ex Exercise, inv plates.Inventory) Plan {
	work := max(plates.BarbellWeight, workWeight)
	prog := ProgressionFor(ex)

	firstWarm := plates.BarbellWeight
	if prog.FirstWarm != nil {
		firstWarm = prog.FirstWarm.weight(work)
	}

	var sets Plan
	for _, r := range prog.Rules {
		base := plates.BarbellWeight
		if r.Base == FromFirstWarm {
			base = firstWarm
		}
		if !r.Gate.open(work, base) {
			continue
		}
		target, ok := r.target(work, base)
		if !ok {
			continue
		}
		res, ok := plates.Resolve(target, inv)
		if !ok {
			continue
		}
		sets = append(sets, Set{
			Reps:   r.Reps,
			Weight: res.Weight,
			Pairs:  res.Pairs,
			Label:  percentOf(res.Weight, work),
		})
	}

	if res, ok := plates.Resolve(work, inv); ok {
		sets = append(sets, Set{
			Reps:   prog.WorkSet,
			Weight: res.Weight,
			Pairs:  res.Pairs,
			Label:  WorkSetLabel,
		})
	}

	plan := dedupe(sets)
	if work == plates.BarbellWeight && len(plan) > 1 {
		return plan[len(plan)-1:]
	}
	return plan
}

// target applies the floor and the [bar, work-0.5] clamp. Percentage rules
// that end up on the empty bar are dropped.
func (r Rule) target(work, base float64) (float64, bool) {
	t := base
	if r.Percent > 0 {
		t = max(work*r.Percent, base+r.Floor)
	}
	t = max(plates.BarbellWeight, t)
	t = min(t, work-0.5)
	if r.Percent > 0 && t < plates.BarbellWeight+0.1 {
		return 0, false
	}
	return t, true
}

// dedupe drops a set that repeats its predecessor, and lets the work set
// replace a warmup that resolved to the same load.
func dedupe(sets Plan) Plan {
	out := make(Plan, 0, len(sets))
	for _, s := range sets {
		if n := len(out); n > 0 {
			prev := out[n-1]
			if prev.Weight == s.Weight && prev.Reps == s.Reps {
				continue
			}
			if s.IsWork() && prev.Weight == s.Weight && !prev.IsWork() {
				out = out[:n-1]
			}
		}
		out = append(out, s)
	}
	return out
}

func percentOf(weight, work float64) string {
	if work <= 0 {
		return ""
	}
	return fmt.Sprintf("%d%%", int(math.Round(weight/work*100)))
}
