package cli

import (
	"github.com/spf13/cobra"

	"github.com/ampere07/operationmobileapp-sub006/internal/source"
	"github.com/ampere07/operationmobileapp-sub006/internal/tui"
	"github.com/ampere07/operationmobileapp-sub006/internal/view"
)

// BrowseOptions holds options for the browse command.
type BrowseOptions struct {
	Root *RootOptions

	DataFile string
	PageSize int
}

// NewBrowseCommand creates the browse command.
func NewBrowseCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &BrowseOptions{Root: rootOpts}

	cmd := &cobra.Command{
		Use:   "browse <screen>",
		Short: "Browse a record screen interactively",
		Long: `Browse opens the full-screen terminal browser for one record screen:
live search, category facets, per-field filters, sortable columns and
pagination, with the column layout persisted across sessions.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.DataFile, "data", "", "read records from a JSON file instead of the API")
	cmd.Flags().IntVar(&opts.PageSize, "page-size", 0, "override the screen's page size")

	return cmd
}

func runBrowse(opts *BrowseOptions, screenName string) error {
	cfg, err := opts.Root.Config()
	if err != nil {
		return err
	}
	screens, err := loadScreens(cfg)
	if err != nil {
		return err
	}
	scr, err := resolveScreen(screens, screenName)
	if err != nil {
		return err
	}

	kv, closeKV := opts.Root.openKV(cfg)
	defer closeKV()

	pageSize := opts.PageSize
	if pageSize == 0 {
		pageSize = cfg.PageSize
	}
	engine := view.New(scr, view.Options{
		KV:       kv,
		Logger:   opts.Root.Logger(),
		PageSize: pageSize,
	})

	src, err := opts.Root.buildSource(cfg, opts.DataFile)
	if err != nil {
		return err
	}

	if err := tui.Run(engine, source.NewLoader(src), cfg.Theme); err != nil {
		return WrapExitError(ExitFailure, "browser exited", err)
	}
	return nil
}
