package warmup

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/meltforce/barload/internal/plates"
)

// BarOnly is shown in place of a plate list when nothing is loaded.
const BarOnly = "Bar only"

// TableHeaders are the column titles for a rendered plan.
var TableHeaders = []string{"Set", "Weight (kg)", "Plates (per side)"}

// PlateLines renders per-side plates, one "<plate>kg × <count>" per line.
func PlateLines(pairs []plates.PlatePair) string {
	if len(pairs) == 0 {
		return BarOnly
	}
	lines := make([]string, len(pairs))
	for i, p := range pairs {
		lines[i] = fmt.Sprintf("%skg × %d", FormatPlate(p.Plate), p.Count)
	}
	return strings.Join(lines, "\n")
}

// FormatPlate prints a plate size without trailing zeros (2.5, 1.25, 25).
func FormatPlate(kg float64) string {
	return strconv.FormatFloat(kg, 'f', -1, 64)
}

// FormatWeight prints a load with one decimal place, rounding halves away
// from zero (74.25 prints as 74.3).
func FormatWeight(kg float64) string {
	return strconv.FormatFloat(math.Round(kg*10)/10, 'f', 1, 64)
}

// Title is the set column text, e.g. "1x5 (42%)" or "5x5 (Work Set)".
func (s Set) Title() string {
	if s.Label == "" {
		return s.Reps
	}
	return s.Reps + " (" + s.Label + ")"
}

// Rows renders the plan as table cells matching TableHeaders.
func (p Plan) Rows() [][]string {
	rows := make([][]string, len(p))
	for i, s := range p {
		rows[i] = []string{s.Title(), FormatWeight(s.Weight), PlateLines(s.Pairs)}
	}
	return rows
}
