// Package planner validates a requested work weight, snaps it to the plate
// inventory and assembles the warmup plan with the status line shown to the
// lifter.
package planner

import (
	"errors"
	"fmt"
	"math"

	"github.com/meltforce/barload/internal/plates"
	"github.com/meltforce/barload/internal/warmup"
)

// Input validation errors. Their messages are shown to the user as-is.
var (
	ErrInvalidWeight = fmt.Errorf("Enter a valid work set weight (at least %g kg).", plates.BarbellWeight)
	ErrBelowBar      = fmt.Errorf("Weight must be at least %g kg (the barbell weight).", plates.BarbellWeight)
	ErrAboveMax      = fmt.Errorf("Weight must be at most %g kg.", plates.MaxLoad)
	ErrNoPlates      = errors.New("Please select available plates to calculate loads.")
	ErrUnresolvable  = errors.New("Unable to compute load with the selected plates.")
)

// NoSetsStatus is reported when the plan comes out empty.
const NoSetsStatus = "No warmup sets for this configuration."

// DeloadFactor is applied to the planned (snapped) weight for the deload display.
const DeloadFactor = 0.9

// Input is one planning request.
type Input struct {
	Exercise warmup.Exercise
	Weight   float64
	Plates   plates.Inventory
	Snap     bool // snap Weight onto the inventory's step before planning
}

// Result is a computed plan plus everything needed to display it.
type Result struct {
	Exercise  warmup.Exercise   `json:"exercise"`
	Requested float64           `json:"requested"`
	Target    float64           `json:"target"`
	Snapped   bool              `json:"snapped"`
	Step      float64           `json:"step"`
	Deload    float64           `json:"deload"`
	Work      plates.Resolution `json:"work"`
	Plan      warmup.Plan       `json:"sets"`
	Status    string            `json:"status,omitempty"`
}

// Build runs a planning request.
func Build(in Input) (*Result, error) {
	if math.IsNaN(in.Weight) || math.IsInf(in.Weight, 0) {
		return nil, ErrInvalidWeight
	}
	if in.Weight < plates.BarbellWeight {
		return nil, ErrBelowBar
	}
	if in.Weight > plates.MaxLoad {
		return nil, ErrAboveMax
	}

	step := plates.Step(in.Plates)
	target := in.Weight
	if in.Snap {
		target = plates.Snap(in.Weight, step)
	}

	if len(in.Plates) == 0 && target > plates.BarbellWeight {
		return nil, ErrNoPlates
	}
	work, ok := plates.Resolve(target, in.Plates)
	if !ok {
		return nil, ErrUnresolvable
	}

	res := &Result{
		Exercise:  in.Exercise,
		Requested: in.Weight,
		Target:    target,
		Snapped:   math.Abs(target-in.Weight) > 1e-9,
		Step:      step,
		Deload:    Deload(target),
		Work:      work,
		Status:    DeltaStatus(work),
	}
	res.Plan = warmup.Generate(target, in.Exercise, in.Plates)
	if len(res.Plan) == 0 {
		res.Status = NoSetsStatus
	}
	return res, nil
}

// Deload returns the deload weight for a work weight, to the nearest 10 g.
func Deload(weight float64) float64 {
	return max(0, math.Round(weight*DeloadFactor*100)/100)
}

// DeltaStatus describes how far the achievable load is from the request,
// or returns "" when they match.
func DeltaStatus(r plates.Resolution) string {
	if math.Abs(r.Delta) <= 0.001 {
		return ""
	}
	sign := "+"
	if r.Delta < 0 {
		sign = "−"
	}
	return fmt.Sprintf("Achievable work set: %s kg (%s%s kg from target).",
		warmup.FormatWeight(r.Weight), sign, warmup.FormatWeight(math.Abs(r.Delta)))
}
