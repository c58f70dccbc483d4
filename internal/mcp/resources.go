package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/meltforce/barload/internal/plates"
	"github.com/meltforce/barload/internal/warmup"
)

func (h *handlers) plateCatalog(_ context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return jsonResource(req.Params.URI, map[string]any{
		"bar":       plates.BarbellWeight,
		"catalog":   plates.Catalog,
		"defaults":  plates.DefaultSelection,
		"available": h.inventory,
		"increment": plates.SmallestIncrement(h.inventory),
	})
}

type ruleView struct {
	Reps      string  `json:"reps"`
	Base      string  `json:"base"`
	Percent   float64 `json:"percent,omitempty"`
	Floor     float64 `json:"floor,omitempty"`
	Above     float64 `json:"above,omitempty"`
	Lead      float64 `json:"lead,omitempty"`
	MinWork   float64 `json:"min_work,omitempty"`
	Unguarded bool    `json:"always,omitempty"`
}

type progressionView struct {
	Exercise  warmup.Exercise   `json:"exercise"`
	WorkSet   string            `json:"work_set"`
	FirstWarm *warmup.FirstWarm `json:"first_warm,omitempty"`
	Rules     []ruleView        `json:"rules"`
}

func (h *handlers) progressionTable(_ context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	var out []progressionView
	for _, ex := range warmup.Exercises {
		p := warmup.ProgressionFor(ex)
		v := progressionView{Exercise: ex, WorkSet: p.WorkSet, FirstWarm: p.FirstWarm}
		for _, r := range p.Rules {
			rv := ruleView{Reps: r.Reps, Base: "bar", Percent: r.Percent, Floor: r.Floor}
			if r.Base == warmup.FromFirstWarm {
				rv.Base = "first_warm"
			}
			if r.Gate == nil {
				rv.Unguarded = true
			} else {
				rv.Above, rv.Lead, rv.MinWork = r.Gate.Above, r.Gate.Lead, r.Gate.MinWork
			}
			v.Rules = append(v.Rules, rv)
		}
		out = append(out, v)
	}
	return jsonResource(req.Params.URI, out)
}

func jsonResource(uri string, v any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
