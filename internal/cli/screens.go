package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// ScreenInfo describes one screen in the screens command output.
type ScreenInfo struct {
	Name     string   `json:"name"`
	Title    string   `json:"title"`
	Columns  []string `json:"columns"`
	PageSize int      `json:"page_size,omitempty"`
}

// NewScreensCommand creates the screens command.
func NewScreensCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "screens",
		Short: "List the available record screens",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := &OutputFormatter{
				Format:    rootOpts.Format,
				Writer:    cmd.OutOrStdout(),
				ErrWriter: cmd.ErrOrStderr(),
				Verbose:   rootOpts.Verbose,
			}

			cfg, err := rootOpts.Config()
			if err != nil {
				return err
			}
			screens, err := loadScreens(cfg)
			if err != nil {
				return err
			}

			var infos []ScreenInfo
			for _, name := range screens.Names() {
				scr, _ := screens.Get(name)
				infos = append(infos, ScreenInfo{
					Name:     scr.Name,
					Title:    scr.Title,
					Columns:  scr.ColumnKeys(),
					PageSize: scr.PageSize,
				})
			}

			if rootOpts.Format == "json" {
				return formatter.Success(infos)
			}
			for _, info := range infos {
				fmt.Fprintf(cmd.OutOrStdout(), "%-16s %-24s %d columns",
					info.Name, info.Title, len(info.Columns))
				if info.PageSize > 0 {
					fmt.Fprintf(cmd.OutOrStdout(), ", page size %d", info.PageSize)
				}
				fmt.Fprintln(cmd.OutOrStdout())
				if rootOpts.Verbose {
					fmt.Fprintf(cmd.OutOrStdout(), "  columns: %s\n", strings.Join(info.Columns, ", "))
				}
			}
			return nil
		},
	}
}
