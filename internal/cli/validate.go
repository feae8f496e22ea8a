package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ampere07/operationmobileapp-sub006/internal/screen"
)

// ValidateResult is the JSON payload of the validate command.
type ValidateResult struct {
	Screens []string `json:"screens,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <dir>",
		Short: "Validate a directory of screen definitions",
		Long: `Validate compiles every CUE file in the directory and reports all
definition errors with their source positions. On success it lists the
screens the directory defines.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := &OutputFormatter{
				Format:    rootOpts.Format,
				Writer:    cmd.OutOrStdout(),
				ErrWriter: cmd.ErrOrStderr(),
				Verbose:   rootOpts.Verbose,
			}

			set, errs := screen.LoadDir(args[0], screen.LoadModeCollectAll)
			if len(errs) > 0 {
				result := ValidateResult{}
				for _, err := range errs {
					result.Errors = append(result.Errors, err.Error())
				}
				if rootOpts.Format == "json" {
					if err := formatter.Error(ErrCodeCompileFailed, "screen validation failed", result.Errors); err != nil {
						return err
					}
				} else {
					for _, msg := range result.Errors {
						fmt.Fprintln(cmd.OutOrStdout(), msg)
					}
					fmt.Fprintf(cmd.OutOrStdout(), "\n%d error(s)\n", len(result.Errors))
				}
				return NewExitError(ExitFailure, "screen validation failed")
			}

			if rootOpts.Format == "json" {
				return formatter.Success(ValidateResult{Screens: set.Names()})
			}
			for _, name := range set.Names() {
				scr, _ := set.Get(name)
				fmt.Fprintf(cmd.OutOrStdout(), "%-16s %d columns\n", name, len(scr.Columns))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\n%d screen(s) valid\n", set.Len())
			return nil
		},
	}
}
