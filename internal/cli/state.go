package cli

import (
	"fmt"
	"strings"

	"github.com/meltforce/barload/internal/models"
	"github.com/meltforce/barload/internal/warmup"
	"github.com/spf13/cobra"
)

func newStateCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "state [exercise]",
		Short: "Show the remembered weight and plates",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			exercises := warmup.Exercises
			if len(args) == 1 {
				ex, err := parseExercise(args[0])
				if err != nil {
					return err
				}
				exercises = []warmup.Exercise{ex}
			}

			state, err := opts.openState()
			if err != nil {
				return err
			}
			defer state.Close()

			states := make([]models.ExerciseState, 0, len(exercises))
			for _, ex := range exercises {
				st, err := state.GetExerciseState(cmd.Context(), string(ex))
				if err != nil {
					return fmt.Errorf("loading %s state: %w", ex, err)
				}
				states = append(states, st)
			}

			w := cmd.OutOrStdout()
			if opts.jsonOutput {
				return outputJSON(w, states)
			}
			rows := make([][]string, len(states))
			for i, st := range states {
				rows[i] = []string{st.Exercise, warmup.FormatWeight(st.LastWeight), checkedPlates(st)}
			}
			PrintTable(w, []string{"Exercise", "Last weight (kg)", "Plates"}, rows, nil)
			return nil
		},
	}

	cmd.AddCommand(newStateResetCmd(opts))
	return cmd
}

func newStateResetCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "reset <exercise>",
		Short: "Forget the weight and plates for a lift",
		Args:  cobra.ExactArgs(1),
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

			if err := state.SaveExerciseState(cmd.Context(), models.DefaultState(string(ex))); err != nil {
				return fmt.Errorf("resetting %s: %w", ex, err)
			}
			PrintSuccess(cmd.OutOrStdout(), fmt.Sprintf("%s reset to %s kg", ex, warmup.FormatWeight(models.DefaultLastWeight)))
			return nil
		},
	}
}

func newExercisesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "exercises",
		Short: "List the supported lifts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if opts.jsonOutput {
				return outputJSON(w, warmup.Exercises)
			}
			rows := make([][]string, len(warmup.Exercises))
			for i, ex := range warmup.Exercises {
				rows[i] = []string{string(ex), warmup.ProgressionFor(ex).WorkSet}
			}
			PrintTable(w, []string{"Exercise", "Work set"}, rows, nil)
			return nil
		},
	}
}

// checkedPlates lists the selected plates heaviest first, or a placeholder.
func checkedPlates(st models.ExerciseState) string {
	inv, err := st.SelectedPlates()
	if err != nil || len(inv) == 0 {
		return "none"
	}
	labels := make([]string, len(inv))
	for i, p := range inv {
		labels[i] = warmup.FormatPlate(p)
	}
	return strings.Join(labels, ", ")
}
