package warmup

import (
	"strings"

	"github.com/meltforce/barload/internal/plates"
)

// Exercise identifies one of the supported barbell lifts.
type Exercise string

const (
	Bench    Exercise = "bench"
	Deadlift Exercise = "deadlift"
	Overhead Exercise = "overhead"
	Row      Exercise = "row"
	Squat    Exercise = "squat"
)

// Exercises lists every supported lift in display order.
var Exercises = []Exercise{Bench, Deadlift, Overhead, Row, Squat}

// ParseExercise normalizes s and reports whether it names a supported lift.
func ParseExercise(s string) (Exercise, bool) {
	ex := Exercise(strings.ToLower(strings.TrimSpace(s)))
	_, ok := progressions[ex]
	return ex, ok
}

// Base is the load a rule's fixed weight, floor and gate are measured from.
type Base int

const (
	FromBar Base = iota
	FromFirstWarm
)

// Gate decides whether a rule takes part for a given work weight.
// A rule with a nil gate always takes part.
type Gate struct {
	Above   float64 // work > base+Above
	Lead    float64 // base < work-Lead; replaces Above when set
	MinWork float64 // work > MinWork
}

func (g *Gate) open(work, base float64) bool {
	if g == nil {
		return true
	}
	if work <= g.MinWork {
		return false
	}
	if g.Lead > 0 {
		return base < work-g.Lead
	}
	return work > base+g.Above
}

// Rule is one candidate warmup set. Percent is a fraction of the work weight;
// a zero Percent means a fixed load equal to the base.
type Rule struct {
	Reps    string
	Base    Base
	Percent float64
	Floor   float64 // minimum load above the base, percentage rules only
	Gate    *Gate
}

// FirstWarm computes the opening warmup load for pulls:
// max(bar, Percent*work, Floor if work > Above).
type FirstWarm struct {
	Percent float64 `json:"percent"`
	Floor   float64 `json:"floor"`
	Above   float64 `json:"above"`
}

func (f *FirstWarm) weight(work float64) float64 {
	floor := plates.BarbellWeight
	if work > f.Above {
		floor = f.Floor
	}
	return max(plates.BarbellWeight, work*f.Percent, floor)
}

// Progression is an exercise's warmup table and work set scheme.
type Progression struct {
	WorkSet   string
	FirstWarm *FirstWarm
	Rules     []Rule
}

const bar = plates.BarbellWeight

var progressions = map[Exercise]Progression{
	Squat: {
		WorkSet: "5x5",
		Rules: []Rule{
			{Reps: "2x5", Base: FromBar},
			{Reps: "1x5", Base: FromBar, Percent: 0.40, Floor: 5, Gate: &Gate{Above: 10}},
			{Reps: "1x3", Base: FromBar, Percent: 0.60, Floor: 10, Gate: &Gate{Above: 20}},
			{Reps: "1x2", Base: FromBar, Percent: 0.80, Floor: 15, Gate: &Gate{Above: 30}},
		},
	},
	Bench: {
		WorkSet: "5x5",
		Rules: []Rule{
			{Reps: "2x5", Base: FromBar},
			{Reps: "1x5", Base: FromBar, Percent: 0.50, Floor: 2.5, Gate: &Gate{Above: 5}},
			{Reps: "1x3", Base: FromBar, Percent: 0.70, Floor: 5, Gate: &Gate{Above: 15}},
			{Reps: "1x2", Base: FromBar, Percent: 0.85, Floor: 10, Gate: &Gate{Above: 25}},
		},
	},
	Overhead: {
		WorkSet: "5x5",
		Rules: []Rule{
			{Reps: "2x5", Base: FromBar},
			{Reps: "1x5", Base: FromBar, Percent: 0.55, Floor: 1.25, Gate: &Gate{Above: 2.5}},
			{Reps: "1x3", Base: FromBar, Percent: 0.70, Floor: 2.5, Gate: &Gate{Above: 10}},
			{Reps: "1x2", Base: FromBar, Percent: 0.85, Floor: 5, Gate: &Gate{Above: 20}},
		},
	},
	Row: {
		WorkSet:   "5x5",
		FirstWarm: &FirstWarm{Percent: 0.4, Floor: 30, Above: 40},
		Rules: []Rule{
			{Reps: "1x5", Base: FromFirstWarm, Gate: &Gate{Lead: 2.5, MinWork: bar}},
			{Reps: "1x3", Base: FromFirstWarm, Percent: 0.70, Floor: 5, Gate: &Gate{Above: 10, MinWork: 40}},
		},
	},
	Deadlift: {
		WorkSet:   "1x5",
		FirstWarm: &FirstWarm{Percent: 0.4, Floor: 40, Above: 60},
		Rules: []Rule{
			{Reps: "1x5", Base: FromFirstWarm, Gate: &Gate{Lead: 5, MinWork: bar}},
			{Reps: "1x3", Base: FromFirstWarm, Percent: 0.65, Floor: 10, Gate: &Gate{Above: 15, MinWork: 60}},
			{Reps: "1x2", Base: FromFirstWarm, Percent: 0.80, Floor: 20, Gate: &Gate{Above: 30, MinWork: 80}},
		},
	},
}

// ProgressionFor returns the table for ex. Unknown exercises get an empty
// table with a 5x5 work set.
func ProgressionFor(ex Exercise) Progression {
	if p, ok := progressions[ex]; ok {
		return p
	}
	return Progression{WorkSet: "5x5"}
}
