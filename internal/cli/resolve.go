package cli

import (
	"fmt"
	"strings"

	"github.com/meltforce/barload/internal/planner"
	"github.com/meltforce/barload/internal/plates"
	"github.com/meltforce/barload/internal/warmup"
	"github.com/spf13/cobra"
)

func newResolveCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <weight>",
		Short: "Show the plates per side for a total weight",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			weight, err := parseWeight(args[0])
			if err != nil {
				return err
			}
			if weight > plates.MaxLoad {
				return planner.ErrAboveMax
			}
			inv, err := opts.inventory(cmd)
			if err != nil {
				return err
			}

			res, ok := plates.Resolve(weight, inv)
			if !ok {
				return planner.ErrNoPlates
			}

			w := cmd.OutOrStdout()
			if opts.jsonOutput {
				return outputJSON(w, res)
			}
			PrintLabelValue(w, "Total", warmup.FormatWeight(res.Weight)+" kg")
			PrintLabelValue(w, "Per side", strings.ReplaceAll(warmup.PlateLines(res.Pairs), "\n", ", "))
			if status := planner.DeltaStatus(res); status != "" {
				PrintWarning(w, status)
			}
			return nil
		},
	}
}

func newSnapCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "snap <weight>",
		Short: "Round a weight to the nearest loadable increment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			weight, err := parseWeight(args[0])
			if err != nil {
				return err
			}
			if weight > plates.MaxLoad {
				return planner.ErrAboveMax
			}
			inv, err := opts.inventory(cmd)
			if err != nil {
				return err
			}

			step := plates.Step(inv)
			snapped := plates.Snap(weight, step)

			w := cmd.OutOrStdout()
			if opts.jsonOutput {
				return outputJSON(w, map[string]float64{"weight": weight, "step": step, "snapped": snapped})
			}
			_, _ = fmt.Fprintf(w, "%s kg (step %s kg)\n", warmup.FormatWeight(snapped), warmup.FormatPlate(step))
			return nil
		},
	}
}
