package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/meltforce/barload/internal/planner"
	"github.com/meltforce/barload/internal/warmup"
)

// TestPrintTable verifies columns line up when cells contain multi-byte
// characters and multi-line cells are flattened.
func TestPrintTable(t *testing.T) {
	var buf bytes.Buffer
	PrintTable(&buf, []string{"Set", "Plates"}, [][]string{
		{"2x5", "Bar only"},
		{"5x5 (Work Set)", "20kg × 1\n2.5kg × 1"},
	}, nil)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4:\n%s", len(lines), buf.String())
	}
	if !strings.Contains(lines[3], "20kg × 1, 2.5kg × 1") {
		t.Errorf("multi-line cell not flattened: %q", lines[3])
	}
	col := strings.Index(lines[0], "Plates")
	if got := strings.Index(lines[2], "Bar only"); got != col {
		t.Errorf("row 1 plates column at %d, want %d", got, col)
	}
}

// TestPrintTableEmpty verifies nothing is printed without rows.
func TestPrintTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	PrintTable(&buf, []string{"Set"}, nil, nil)
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

// TestRootCommandHelp verifies help lists the subcommands.
func TestRootCommandHelp(t *testing.T) {
	cmd := NewRootCmd()
	cmd.SetArgs([]string{"--help"})
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	for _, want := range []string{"plan", "resolve", "snap", "state", "exercises"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("help missing %q", want)
		}
	}
}

// TestSetVersion verifies --version reports the value set at startup.
func TestSetVersion(t *testing.T) {
	defer SetVersion("dev")
	SetVersion("1.2.3")
	SetVersion("")

	cmd := NewRootCmd()
	cmd.SetArgs([]string{"--version"})
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "1.2.3" {
		t.Errorf("version = %q, want 1.2.3", got)
	}
}

// TestPrintPlanEmpty verifies an empty plan prints the status in place of a
// table.
func TestPrintPlanEmpty(t *testing.T) {
	var buf bytes.Buffer
	printPlan(&buf, &planner.Result{Exercise: warmup.Row, Requested: 60, Target: 60, Deload: 54, Status: planner.NoSetsStatus})

	out := buf.String()
	if !strings.Contains(out, "  "+planner.NoSetsStatus+"\n") {
		t.Errorf("output missing empty state:\n%s", out)
	}
	if strings.Contains(out, "Plates (per side)") || strings.Contains(out, "⚠") {
		t.Errorf("empty plan printed a table or warning:\n%s", out)
	}
}
