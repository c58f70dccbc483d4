package mcp

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/meltforce/barload/internal/config"
	"github.com/meltforce/barload/internal/models"
	"github.com/meltforce/barload/internal/planner"
	"github.com/meltforce/barload/internal/plates"
	"github.com/meltforce/barload/internal/warmup"
)

var exerciseNames = []string{"bench", "deadlift", "overhead", "row", "squat"}

// --- Tool definitions ---

var toolWarmupPlan = mcp.NewTool("warmup_plan",
	mcp.WithDescription("Build the warmup ladder and work set for a barbell lift. Each set lists its weight and the plates to load per side."),
	mcp.WithString("exercise", mcp.Required(), mcp.Description("Lift name"), mcp.Enum(exerciseNames...)),
	mcp.WithNumber("weight", mcp.Required(), mcp.Description("Work set weight in kg, including the 20 kg bar")),
	mcp.WithString("plates", mcp.Description("Comma-separated plate sizes in kg (e.g. '25,20,10,5,2.5'). Defaults to the plates saved for the exercise.")),
	mcp.WithBoolean("snap", mcp.Description("Snap the weight to the smallest loadable increment first. Defaults to true.")),
)

var toolResolvePlates = mcp.NewTool("resolve_plates",
	mcp.WithDescription("Find the closest loadable total at or below a target weight and the plates per side that make it."),
	mcp.WithNumber("weight", mcp.Required(), mcp.Description("Target total in kg, including the bar")),
	mcp.WithString("plates", mcp.Description("Comma-separated plate sizes in kg. Defaults to the configured inventory.")),
)

var toolSnapWeight = mcp.NewTool("snap_weight",
	mcp.WithDescription("Round a weight to the nearest bar + whole increments, where the increment is one pair of the lightest plate."),
	mcp.WithNumber("weight", mcp.Required(), mcp.Description("Weight in kg")),
	mcp.WithString("plates", mcp.Description("Comma-separated plate sizes in kg. Defaults to the configured inventory.")),
)

var toolGetExerciseState = mcp.NewTool("get_exercise_state",
	mcp.WithDescription("Return the last work weight and plate selection saved for an exercise."),
	mcp.WithString("exercise", mcp.Required(), mcp.Description("Lift name"), mcp.Enum(exerciseNames...)),
)

var toolSaveExerciseState = mcp.NewTool("save_exercise_state",
	mcp.WithDescription("Remember a work weight and plate selection for an exercise."),
	mcp.WithString("exercise", mcp.Required(), mcp.Description("Lift name"), mcp.Enum(exerciseNames...)),
	mcp.WithNumber("weight", mcp.Required(), mcp.Description("Work set weight in kg")),
	mcp.WithString("plates", mcp.Required(), mcp.Description("Comma-separated plate sizes in kg")),
)

// --- Tool handlers ---

func (h *handlers) warmupPlan(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("exercise")
	if err != nil {
		return mcp.NewToolResultError("exercise parameter is required"), nil
	}
	ex, ok := warmup.ParseExercise(name)
	if !ok {
		return mcp.NewToolResultError("unknown exercise: " + name), nil
	}
	weight, err := req.RequireFloat("weight")
	if err != nil {
		return mcp.NewToolResultError("weight parameter is required"), nil
	}

	inv, err := h.platesFor(ctx, req, ex)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	res, err := planner.Build(planner.Input{
		Exercise: ex,
		Weight:   weight,
		Plates:   inv,
		Snap:     req.GetBool("snap", true),
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(map[string]any{
		"result": res,
		"table":  res.Plan.Rows(),
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) resolvePlates(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	weight, err := req.RequireFloat("weight")
	if err != nil {
		return mcp.NewToolResultError("weight parameter is required"), nil
	}
	if weight > plates.MaxLoad {
		return mcp.NewToolResultError(planner.ErrAboveMax.Error()), nil
	}
	inv, err := h.requestPlates(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	res, ok := plates.Resolve(weight, inv)
	if !ok {
		return mcp.NewToolResultError(planner.ErrNoPlates.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(map[string]any{
		"resolution": res,
		"per_side":   warmup.PlateLines(res.Pairs),
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) snapWeight(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	weight, err := req.RequireFloat("weight")
	if err != nil {
		return mcp.NewToolResultError("weight parameter is required"), nil
	}
	if weight > plates.MaxLoad {
		return mcp.NewToolResultError(planner.ErrAboveMax.Error()), nil
	}
	inv, err := h.requestPlates(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	step := plates.Step(inv)
	result, err := mcp.NewToolResultJSON(map[string]any{
		"weight":  weight,
		"step":    step,
		"snapped": plates.Snap(weight, step),
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getExerciseState(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("exercise")
	if err != nil {
		return mcp.NewToolResultError("exercise parameter is required"), nil
	}
	ex, ok := warmup.ParseExercise(name)
	if !ok {
		return mcp.NewToolResultError("unknown exercise: " + name), nil
	}

	st, err := h.ds.GetExerciseState(ctx, string(ex))
	if err != nil {
		h.log.Error("mcp get_exercise_state", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(st)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) saveExerciseState(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("exercise")
	if err != nil {
		return mcp.NewToolResultError("exercise parameter is required"), nil
	}
	ex, ok := warmup.ParseExercise(name)
	if !ok {
		return mcp.NewToolResultError("unknown exercise: " + name), nil
	}
	weight, err := req.RequireFloat("weight")
	if err != nil {
		return mcp.NewToolResultError("weight parameter is required"), nil
	}
	list, err := req.RequireString("plates")
	if err != nil {
		return mcp.NewToolResultError("plates parameter is required"), nil
	}
	inv, err := parseInventory(list)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	st := models.StateFromSelection(string(ex), weight, inv)
	st.Normalize()
	if err := h.ds.SaveExerciseState(ctx, st); err != nil {
		h.log.Error("mcp save_exercise_state", "error", err)
		return mcp.NewToolResultError("save failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(st)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

// platesFor returns the plates named in the request, else the plates saved
// for the exercise, else the configured inventory.
func (h *handlers) platesFor(ctx context.Context, req mcp.CallToolRequest, ex warmup.Exercise) (plates.Inventory, error) {
	if _, ok := req.GetArguments()["plates"]; ok {
		return parseInventory(req.GetString("plates", ""))
	}
	if h.ds != nil {
		st, err := h.ds.GetExerciseState(ctx, string(ex))
		if err != nil {
			h.log.Warn("mcp warmup_plan: saved plates unavailable", "exercise", ex, "error", err)
		} else if inv, err := st.SelectedPlates(); err == nil {
			return inv, nil
		}
	}
	return h.inventory, nil
}

func (h *handlers) requestPlates(req mcp.CallToolRequest) (plates.Inventory, error) {
	if _, ok := req.GetArguments()["plates"]; ok {
		return parseInventory(req.GetString("plates", ""))
	}
	return h.inventory, nil
}

func parseInventory(list string) (plates.Inventory, error) {
	weights, err := config.ParsePlateList(strings.TrimSpace(list))
	if err != nil {
		return nil, err
	}
	return plates.NewInventory(weights...)
}
