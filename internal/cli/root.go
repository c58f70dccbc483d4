// Package cli implements the barload-plan command line tool.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/meltforce/barload/internal/config"
	"github.com/meltforce/barload/internal/localstate"
	"github.com/meltforce/barload/internal/plates"
	"github.com/spf13/cobra"
)

// options holds the global flags shared by every command.
type options struct {
	jsonOutput bool
	stateDir   string
	plates     string
}

var version = "dev"

// SetVersion overrides the version reported by --version.
func SetVersion(v string) {
	if v == "" {
		return
	}
	version = v
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:     "barload-plan",
		Version: version,
		Short:   "Plate loading and warmup ladders for barbell lifts",
		Long: `barload-plan works out which plates to put on each side of a 20 kg bar
and the warmup sets leading up to a work set.

The last weight and plate selection for each lift are remembered between runs.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}
	root.SetVersionTemplate("{{.Version}}\n")

	root.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")
	root.PersistentFlags().StringVar(&opts.stateDir, "state-dir", "", "Directory for the state database (default: user config dir)")
	root.PersistentFlags().StringVar(&opts.plates, "plates", "", "Comma-separated plate sizes in kg, overriding the saved selection")

	root.AddCommand(
		newPlanCmd(opts),
		newResolveCmd(opts),
		newSnapCmd(opts),
		newStateCmd(opts),
		newExercisesCmd(opts),
	)
	return root
}

// Execute runs the command line tool.
func Execute() error {
	return NewRootCmd().Execute()
}

// openState opens the state database named by --state-dir.
func (o *options) openState() (*localstate.StateDB, error) {
	dir := o.stateDir
	if dir == "" {
		var err error
		dir, err = localstate.DefaultDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve state directory: %w", err)
		}
	}
	return localstate.Open(dir)
}

// flagPlates parses --plates. ok is false when the flag was not given.
func (o *options) flagPlates(cmd *cobra.Command) (inv plates.Inventory, ok bool, err error) {
	if !cmd.Flags().Changed("plates") {
		return nil, false, nil
	}
	weights, err := config.ParsePlateList(o.plates)
	if err != nil {
		return nil, true, err
	}
	inv, err = plates.NewInventory(weights...)
	return inv, true, err
}

// inventory returns --plates when given, else the default selection.
func (o *options) inventory(cmd *cobra.Command) (plates.Inventory, error) {
	inv, ok, err := o.flagPlates(cmd)
	if ok || err != nil {
		return inv, err
	}
	return plates.NewInventory(plates.DefaultSelection...)
}

// outputJSON writes v as indented JSON.
func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Main runs the tool and returns the process exit code.
func Main() int {
	if err := Execute(); err != nil {
		PrintError(os.Stderr, err.Error())
		return 1
	}
	return 0
}
