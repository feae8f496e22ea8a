package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ampere07/operationmobileapp-sub006/internal/config"
)

// ValidFormats lists the accepted values for the --format flag.
var ValidFormats = []string{"text", "json"}

// RootOptions holds global options shared by all commands.
type RootOptions struct {
	Verbose    bool
	Format     string
	ConfigPath string

	cfg *config.Config
	log zerolog.Logger
}

// Logger returns the logger configured from the global flags.
func (o *RootOptions) Logger() zerolog.Logger {
	return o.log
}

// Config loads the configuration file on first use and caches it.
func (o *RootOptions) Config() (config.Config, error) {
	if o.cfg != nil {
		return *o.cfg, nil
	}
	cfg, err := config.LoadOrDefault(o.ConfigPath)
	if err != nil {
		return cfg, WrapExitError(ExitCommandError, "loading configuration", err)
	}
	o.cfg = &cfg
	return cfg, nil
}

// NewRootCommand creates the root opsview command.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	rootCmd := &cobra.Command{
		Use:   "opsview",
		Short: "Operations record browser",
		Long: `opsview renders operational record screens: applications, visits,
job orders, billing, invoices and the rest. Records come from the
configured API or a local data file; filtering, sorting, column layout
and pagination are applied locally and the layout survives restarts.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			valid := false
			for _, f := range ValidFormats {
				if opts.Format == f {
					valid = true
					break
				}
			}
			if !valid {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q (valid: %s)", opts.Format, strings.Join(ValidFormats, ", ")))
			}

			level := zerolog.WarnLevel
			if opts.Verbose {
				level = zerolog.DebugLevel
			}
			opts.log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
				Level(level).
				With().Timestamp().Logger()
			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&opts.Format, "format", "f", "text", "output format (text or json)")
	rootCmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "path to config file")

	rootCmd.AddCommand(NewListCommand(opts))
	rootCmd.AddCommand(NewScreensCommand(opts))
	rootCmd.AddCommand(NewColumnsCommand(opts))
	rootCmd.AddCommand(NewValidateCommand(opts))
	rootCmd.AddCommand(NewBrowseCommand(opts))

	return rootCmd
}
