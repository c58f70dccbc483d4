package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/meltforce/barload/internal/models"
	"github.com/meltforce/barload/internal/planner"
	"github.com/meltforce/barload/internal/warmup"
	"github.com/spf13/cobra"
)

func newPlanCmd(opts *options) *cobra.Command {
	var noSnap, noSave bool

	cmd := &cobra.Command{
		Use:   "plan <exercise> [weight]",
		Short: "Show the warmup ladder and work set for a lift",
		Long: `Show the warmup ladder and work set for a lift.

Without a weight the last weight used for the lift is planned. The weight is
snapped to the nearest loadable increment unless --no-snap is given.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ex, err := parseExercise(args[0])
			if err != nil {
				return err
			}

			state, err := opts.openState()
			if err != nil {
				return err
			}
			defer state.Close()

			st, err := state.GetExerciseState(cmd.Context(), string(ex))
			if err != nil {
				return fmt.Errorf("loading %s state: %w", ex, err)
			}

			weight := st.LastWeight
			if len(args) == 2 {
				if weight, err = parseWeight(args[1]); err != nil {
					return err
				}
			}

			inv, ok, err := opts.flagPlates(cmd)
			if err != nil {
				return err
			}
			if !ok {
				if inv, err = st.SelectedPlates(); err != nil {
					return fmt.Errorf("saved plates for %s: %w", ex, err)
				}
			}

			res, err := planner.Build(planner.Input{Exercise: ex, Weight: weight, Plates: inv, Snap: !noSnap})
			if err != nil {
				return err
			}

			if !noSave {
				if ok {
					st = models.StateFromSelection(st.Exercise, res.Target, inv)
				}
				st.LastWeight = res.Target
				if err := state.SaveExerciseState(cmd.Context(), st); err != nil {
					return fmt.Errorf("saving %s state: %w", ex, err)
				}
			}

			w := cmd.OutOrStdout()
			if opts.jsonOutput {
				return outputJSON(w, res)
			}
			printPlan(w, res)
			return nil
		},
	}

	cmd.Flags().BoolVar(&noSnap, "no-snap", false, "Plan the weight exactly as given")
	cmd.Flags().BoolVar(&noSave, "no-save", false, "Do not remember the weight and plates")
	return cmd
}

func printPlan(w io.Writer, res *planner.Result) {
	PrintSection(w, fmt.Sprintf("%s %s kg", exerciseTitle(res.Exercise), warmup.FormatWeight(res.Target)))
	if res.Snapped {
		PrintLabelValue(w, "Snapped", fmt.Sprintf("%s kg to %s kg (step %s kg)",
			warmup.FormatWeight(res.Requested), warmup.FormatWeight(res.Target), warmup.FormatPlate(res.Step)))
	}
	PrintLabelValue(w, "Deload (90%)", warmup.FormatWeight(res.Deload)+" kg")
	_, _ = fmt.Fprintln(w)

	if len(res.Plan) == 0 {
		PrintEmptyState(w, res.Status)
		return
	}
	PrintTable(w, warmup.TableHeaders, res.Plan.Rows(), func(i int) bool { return res.Plan[i].IsWork() })
	if res.Status != "" {
		_, _ = fmt.Fprintln(w)
		PrintWarning(w, res.Status)
	}
}

func parseExercise(s string) (warmup.Exercise, error) {
	ex, ok := warmup.ParseExercise(s)
	if !ok {
		names := make([]string, len(warmup.Exercises))
		for i, e := range warmup.Exercises {
			names[i] = string(e)
		}
		return "", fmt.Errorf("unknown exercise %q (want one of %s)", s, strings.Join(names, ", "))
	}
	return ex, nil
}

func parseWeight(s string) (float64, error) {
	w, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, planner.ErrInvalidWeight
	}
	return w, nil
}

func exerciseTitle(ex warmup.Exercise) string {
	s := string(ex)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
