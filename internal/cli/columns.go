package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ampere07/operationmobileapp-sub006/internal/screen"
	"github.com/ampere07/operationmobileapp-sub006/internal/view"
)

// NewColumnsCommand creates the columns command group.
func NewColumnsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "columns",
		Short: "Manage a screen's persisted column layout",
		Long: `Columns shows and edits the per-screen column layout: which columns
are visible and in what order. Changes persist in the state store and
apply to list and browse alike.`,
	}

	cmd.AddCommand(newColumnsShowCommand(rootOpts))
	cmd.AddCommand(newColumnsToggleCommand(rootOpts))
	cmd.AddCommand(newColumnsReorderCommand(rootOpts))
	cmd.AddCommand(newColumnsResetCommand(rootOpts))
	return cmd
}

// openLayout builds the persisted layout for a screen.
func openLayout(rootOpts *RootOptions, screenName string) (*screen.Screen, *view.Layout, func(), error) {
	cfg, err := rootOpts.Config()
	if err != nil {
		return nil, nil, nil, err
	}
	screens, err := loadScreens(cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	scr, err := resolveScreen(screens, screenName)
	if err != nil {
		return nil, nil, nil, err
	}
	kv, closeKV := rootOpts.openKV(cfg)
	layout := view.NewLayout(scr.Name, scr.ColumnKeys(), kv, rootOpts.Logger())
	return scr, layout, closeKV, nil
}

// ColumnState is one column in the columns show output.
type ColumnState struct {
	Key     string `json:"key"`
	Label   string `json:"label"`
	Visible bool   `json:"visible"`
}

func newColumnsShowCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <screen>",
		Short: "Show the screen's column layout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scr, layout, closeKV, err := openLayout(rootOpts, args[0])
			if err != nil {
				return err
			}
			defer closeKV()

			var states []ColumnState
			for _, key := range layout.Order() {
				label := key
				if col, ok := scr.ColumnByKey(key); ok {
					label = col.Label
				}
				states = append(states, ColumnState{
					Key:     key,
					Label:   label,
					Visible: layout.IsVisible(key),
				})
			}

			if rootOpts.Format == "json" {
				formatter := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
				return formatter.Success(states)
			}
			for _, st := range states {
				mark := " "
				if st.Visible {
					mark = "x"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "[%s] %-20s %s\n", mark, st.Key, st.Label)
			}
			return nil
		},
	}
}

func newColumnsToggleCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <screen> <column>...",
		Short: "Flip the visibility of one or more columns",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			scr, layout, closeKV, err := openLayout(rootOpts, args[0])
			if err != nil {
				return err
			}
			defer closeKV()

			for _, key := range args[1:] {
				if _, ok := scr.ColumnByKey(key); !ok {
					return NewExitError(ExitCommandError,
						fmt.Sprintf("screen %s has no column %q", scr.Name, key))
				}
				layout.Toggle(key)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "visible: %v\n", layout.VisibleColumnsInOrder())
			return nil
		},
	}
}

func newColumnsReorderCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "reorder <screen> <column> <before>",
		Short: "Move a column immediately before another",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, layout, closeKV, err := openLayout(rootOpts, args[0])
			if err != nil {
				return err
			}
			defer closeKV()

			layout.Reorder(args[1], args[2])
			fmt.Fprintf(cmd.OutOrStdout(), "order: %v\n", layout.Order())
			return nil
		},
	}
}

func newColumnsResetCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "reset <screen>",
		Short: "Drop the screen's persisted layout and filters",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := rootOpts.Config()
			if err != nil {
				return err
			}
			screens, err := loadScreens(cfg)
			if err != nil {
				return err
			}
			scr, err := resolveScreen(screens, args[0])
			if err != nil {
				return err
			}

			st, err := rootOpts.openStore(cfg)
			if err != nil {
				return err
			}
			defer st.Close()

			for _, prefix := range []string{"columns:" + scr.Name, "funnel:" + scr.Name} {
				if err := st.DeletePrefix(prefix); err != nil {
					return WrapExitError(ExitFailure, "resetting view state", err)
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "reset view state for %s\n", scr.Name)
			return nil
		},
	}
}
