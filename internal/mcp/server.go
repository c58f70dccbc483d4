package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/meltforce/barload/internal/plates"
)

// New creates an MCP server with all tools and resources registered.
// inventory is used when neither the request nor the saved state names plates.
func New(ds StateSource, inventory plates.Inventory, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("barload", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("barload computes barbell plate loading and warmup ladders. Weights are kilograms on a 20 kg bar; plates are listed per side."),
	)

	h := &handlers{ds: ds, inventory: inventory, log: log}

	// Tools
	s.AddTools(
		server.ServerTool{Tool: toolWarmupPlan, Handler: h.warmupPlan},
		server.ServerTool{Tool: toolResolvePlates, Handler: h.resolvePlates},
		server.ServerTool{Tool: toolSnapWeight, Handler: h.snapWeight},
		server.ServerTool{Tool: toolGetExerciseState, Handler: h.getExerciseState},
		server.ServerTool{Tool: toolSaveExerciseState, Handler: h.saveExerciseState},
	)

	// Resources
	s.AddResources(
		server.ServerResource{Resource: resPlateCatalog, Handler: h.plateCatalog},
		server.ServerResource{Resource: resProgressions, Handler: h.progressionTable},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	ds        StateSource
	inventory plates.Inventory
	log       *slog.Logger
}

// --- Resource definitions ---

var resPlateCatalog = mcp.NewResource(
	"barload://plate_catalog",
	"Plate Catalog",
	mcp.WithResourceDescription("Known plate sizes, the default selection, and the configured inventory with its smallest increment"),
	mcp.WithMIMEType("application/json"),
)

var resProgressions = mcp.NewResource(
	"barload://progressions",
	"Warmup Progressions",
	mcp.WithResourceDescription("Per-exercise warmup rules: reps, percentage of work weight, floors and inclusion thresholds"),
	mcp.WithMIMEType("application/json"),
)
