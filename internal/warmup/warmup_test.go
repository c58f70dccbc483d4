package warmup

import (
	"reflect"
	"testing"

	"github.com/meltforce/barload/internal/plates"
)

var standard = plates.Inventory{25, 20, 15, 10, 5, 2.5, 1.25}

type row struct {
	reps   string
	weight float64
	label  string
}

func summarize(p Plan) []row {
	out := make([]row, len(p))
	for i, s := range p {
		out[i] = row{s.Reps, s.Weight, s.Label}
	}
	return out
}

// TestGenerateLadders checks full plans for each exercise against the
// progression tables.
func TestGenerateLadders(t *testing.T) {
	cases := []struct {
		name string
		work float64
		ex   Exercise
		want []row
	}{
		{"squat 60", 60, Squat, []row{
			{"2x5", 20, "33%"},
			{"1x5", 25, "42%"},
			{"1x3", 35, "58%"},
			{"1x2", 47.5, "79%"},
			{"5x5", 60, WorkSetLabel},
		}},
		{"squat 35 skips heavy rules", 35, Squat, []row{
			{"2x5", 20, "57%"},
			{"1x5", 25, "71%"},
			{"5x5", 35, WorkSetLabel},
		}},
		{"bench 60", 60, Bench, []row{
			{"2x5", 20, "33%"},
			{"1x5", 30, "50%"},
			{"1x3", 40, "67%"},
			{"1x2", 50, "83%"},
			{"5x5", 60, WorkSetLabel},
		}},
		{"overhead 45", 45, Overhead, []row{
			{"2x5", 20, "44%"},
			{"1x5", 22.5, "50%"},
			{"1x3", 30, "67%"},
			{"1x2", 37.5, "83%"},
			{"5x5", 45, WorkSetLabel},
		}},
		{"overhead 40 keeps a bar-weight 1x5", 40, Overhead, []row{
			{"2x5", 20, "50%"},
			{"1x5", 20, "50%"},
			{"1x3", 27.5, "69%"},
			{"5x5", 40, WorkSetLabel},
		}},
		{"row 50", 50, Row, []row{
			{"1x5", 30, "60%"},
			{"1x3", 35, "70%"},
			{"5x5", 50, WorkSetLabel},
		}},
		{"row 40 has no second warmup", 40, Row, []row{
			{"1x5", 20, "50%"},
			{"5x5", 40, WorkSetLabel},
		}},
		{"deadlift 100", 100, Deadlift, []row{
			{"1x5", 40, "40%"},
			{"1x3", 65, "65%"},
			{"1x2", 80, "80%"},
			{"1x5", 100, WorkSetLabel},
		}},
		{"deadlift 60", 60, Deadlift, []row{
			{"1x5", 22.5, "38%"},
			{"1x5", 60, WorkSetLabel},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := summarize(Generate(tc.work, tc.ex, standard))
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Generate(%v, %s) =\n  %v\nwant\n  %v", tc.work, tc.ex, got, tc.want)
			}
		})
	}
}

// TestGenerateEmptyBar verifies that a bar-only work weight needs no warmup,
// even with no plates selected.
func TestGenerateEmptyBar(t *testing.T) {
	for _, inv := range []plates.Inventory{nil, standard} {
		plan := Generate(20, Bench, inv)
		if len(plan) != 1 {
			t.Fatalf("Generate(20, bench, %v) = %v, want one set", inv, plan)
		}
		if !plan[0].IsWork() || plan[0].Weight != 20 || len(plan[0].Pairs) != 0 {
			t.Errorf("set = %+v, want bar-only work set", plan[0])
		}
	}
}

// TestGenerateFloorsWorkWeight verifies that work weights below the bar are
// treated as the bar.
func TestGenerateFloorsWorkWeight(t *testing.T) {
	plan := Generate(5, Squat, standard)
	want := []row{{"5x5", 20, WorkSetLabel}}
	if got := summarize(plan); !reflect.DeepEqual(got, want) {
		t.Errorf("Generate(5, squat) = %v, want %v", got, want)
	}
}

// TestGenerateWorkSetSupersedes verifies that a warmup resolving to the work
// load is replaced by the work set.
func TestGenerateWorkSetSupersedes(t *testing.T) {
	plan := Generate(25, Bench, plates.Inventory{10})
	want := []row{{"5x5", 20, WorkSetLabel}}
	if got := summarize(plan); !reflect.DeepEqual(got, want) {
		t.Errorf("Generate(25, bench, [10]) = %v, want %v", got, want)
	}
}

// TestGenerateUnresolvableSetsOmitted verifies that sets above the bar are
// dropped rather than failing the plan when no plates are available.
func TestGenerateUnresolvableSetsOmitted(t *testing.T) {
	plan := Generate(60, Squat, nil)
	want := []row{{"2x5", 20, "33%"}}
	if got := summarize(plan); !reflect.DeepEqual(got, want) {
		t.Errorf("Generate(60, squat, nil) = %v, want %v", got, want)
	}
	if _, ok := plan.WorkSet(); ok {
		t.Error("WorkSet() ok = true, want false")
	}

	if plan := Generate(60, Row, nil); len(plan) != 0 {
		t.Errorf("Generate(60, row, nil) = %v, want empty", plan)
	}
}

// TestGenerateUnknownExercise verifies that an unrecognized lift falls
// through to a work-set-only plan.
func TestGenerateUnknownExercise(t *testing.T) {
	plan := Generate(60, Exercise("curl"), standard)
	want := []row{{"5x5", 60, WorkSetLabel}}
	if got := summarize(plan); !reflect.DeepEqual(got, want) {
		t.Errorf("Generate(60, curl) = %v, want %v", got, want)
	}
}

// TestGenerateInvariants sweeps work weights for every exercise and checks
// that plans end in a single work set and never repeat a set.
func TestGenerateInvariants(t *testing.T) {
	for _, ex := range Exercises {
		for i := 40; i <= 500; i++ {
			work := float64(i) / 2
			plan := Generate(work, ex, standard)
			if len(plan) == 0 {
				t.Fatalf("Generate(%v, %s) empty", work, ex)
			}
			ws, ok := plan.WorkSet()
			if !ok {
				t.Fatalf("Generate(%v, %s) has no work set", work, ex)
			}
			want, _ := plates.Resolve(work, standard)
			if ws.Weight != want.Weight {
				t.Errorf("Generate(%v, %s) work set = %v, want %v", work, ex, ws.Weight, want.Weight)
			}
			for j, s := range plan {
				if j < len(plan)-1 && s.IsWork() {
					t.Errorf("Generate(%v, %s): work set at position %d", work, ex, j)
				}
				if s.Weight > ws.Weight {
					t.Errorf("Generate(%v, %s): set %v heavier than work set", work, ex, s)
				}
				if j > 0 && plan[j-1].Weight == s.Weight && plan[j-1].Reps == s.Reps {
					t.Errorf("Generate(%v, %s): repeated set %v", work, ex, s)
				}
			}
		}
	}
}

// TestParseExercise covers normalization and rejection.
func TestParseExercise(t *testing.T) {
	cases := []struct {
		input string
		want  Exercise
		ok    bool
	}{
		{"squat", Squat, true},
		{" Bench ", Bench, true},
		{"DEADLIFT", Deadlift, true},
		{"curl", Exercise("curl"), false},
		{"", Exercise(""), false},
	}
	for _, tc := range cases {
		got, ok := ParseExercise(tc.input)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ParseExercise(%q) = %q, %v; want %q, %v", tc.input, got, ok, tc.want, tc.ok)
		}
	}
}
