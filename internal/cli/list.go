package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ampere07/operationmobileapp-sub006/internal/view"
)

// ListOptions holds options for the list command.
type ListOptions struct {
	Root *RootOptions

	Search       string
	Category     string
	SortColumn   string
	Descending   bool
	Page         int
	PageSize     int
	Filters      []string
	ClearFilters bool
	DataFile     string
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ListOptions{Root: rootOpts}

	cmd := &cobra.Command{
		Use:   "list <screen>",
		Short: "Render one page of a record screen",
		Long: `List fetches the screen's records and renders the current page after
applying the category filter, free-text search, field filters and sort.

Field filters persist across runs, like they do in the app. Pass
--clear-filters to drop them, or --filter to replace them:

  opsview list billing --filter balance=100..500
  opsview list visits --filter date=2026-01-01..2026-03-31
  opsview list applications --filter status=pending`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.Search, "search", "s", "", "free-text search across the screen's search fields")
	cmd.Flags().StringVar(&opts.Category, "category", "", "location category filter (default all)")
	cmd.Flags().StringVar(&opts.SortColumn, "sort", "", "column key to sort by")
	cmd.Flags().BoolVar(&opts.Descending, "desc", false, "sort descending (with --sort)")
	cmd.Flags().IntVarP(&opts.Page, "page", "p", 1, "page number")
	cmd.Flags().IntVar(&opts.PageSize, "page-size", 0, "override the screen's page size")
	cmd.Flags().StringArrayVar(&opts.Filters, "filter", nil, "field filter key=value or key=from..to (repeatable)")
	cmd.Flags().BoolVar(&opts.ClearFilters, "clear-filters", false, "drop persisted field filters")
	cmd.Flags().StringVar(&opts.DataFile, "data", "", "read records from a JSON file instead of the API")

	return cmd
}

func runList(cmd *cobra.Command, opts *ListOptions, screenName string) error {
	formatter := &OutputFormatter{
		Format:    opts.Root.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Root.Verbose,
	}

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

	if opts.ClearFilters {
		engine.SetFunnel(view.Funnel{})
	}
	if len(opts.Filters) > 0 {
		funnel := view.Funnel{}
		for _, raw := range opts.Filters {
			key, constraint, err := parseFilter(raw)
			if err != nil {
				return WrapExitError(ExitCommandError, "invalid --filter", err)
			}
			funnel[key] = constraint
		}
		engine.SetFunnel(funnel)
	}

	src, err := opts.Root.buildSource(cfg, opts.DataFile)
	if err != nil {
		return err
	}
	formatter.VerboseLog("Fetching %s records...", scr.Name)
	records, err := src.Fetch(cmd.Context(), scr.Name)
	if err != nil {
		return WrapExitError(ExitFailure, fmt.Sprintf("fetching %s records", scr.Name), err)
	}
	engine.SetRecords(records)

	engine.SetSearch(opts.Search)
	engine.SetCategory(opts.Category)
	if opts.SortColumn != "" {
		engine.ClickSort(opts.SortColumn)
		if opts.Descending {
			engine.ClickSort(opts.SortColumn)
		}
	}
	engine.SetPage(opts.Page)

	snap := engine.Snapshot()

	if opts.Root.Format == "json" {
		return formatter.Success(listPayload(scr.Name, snap))
	}
	fmt.Fprint(cmd.OutOrStdout(), renderSnapshot(scr.Title, snap))
	return nil
}

// ListRow is one rendered row in JSON output.
type ListRow struct {
	ID    string            `json:"id"`
	Cells map[string]string `json:"cells"`
}

// ListResult is the JSON payload of the list command.
type ListResult struct {
	Screen     string    `json:"screen"`
	Columns    []string  `json:"columns"`
	Rows       []ListRow `json:"rows"`
	Total      int       `json:"total"`
	Filtered   int       `json:"filtered"`
	Page       int       `json:"page"`
	TotalPages int       `json:"total_pages"`
}

func listPayload(name string, snap view.Snapshot) ListResult {
	out := ListResult{
		Screen:     name,
		Total:      snap.Total,
		Filtered:   snap.Filtered,
		Page:       snap.Page,
		TotalPages: snap.TotalPages,
		Rows:       []ListRow{},
	}
	for _, col := range snap.Columns {
		out.Columns = append(out.Columns, col.Key)
	}
	for _, row := range snap.Rows {
		cells := make(map[string]string, len(snap.Columns))
		for i, col := range snap.Columns {
			cells[col.Key] = row.Cells[i]
		}
		out.Rows = append(out.Rows, ListRow{ID: row.ID, Cells: cells})
	}
	return out
}

// renderSnapshot renders the text table for a snapshot.
func renderSnapshot(title string, snap view.Snapshot) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", title)
	if snap.Err != nil {
		fmt.Fprintf(&b, "warning: %v\n", snap.Err)
	}

	widths := make([]int, len(snap.Columns))
	for i, col := range snap.Columns {
		widths[i] = col.Width
		if n := len([]rune(col.Label)); n > widths[i] {
			widths[i] = n
		}
	}

	var header, rule []string
	for i, col := range snap.Columns {
		header = append(header, pad(col.Label, widths[i]))
		rule = append(rule, strings.Repeat("-", widths[i]))
	}
	fmt.Fprintln(&b, strings.TrimRight(strings.Join(header, "  "), " "))
	fmt.Fprintln(&b, strings.Join(rule, "  "))

	for _, row := range snap.Rows {
		cells := make([]string, len(row.Cells))
		for i, cell := range row.Cells {
			cells[i] = pad(cell, widths[i])
		}
		fmt.Fprintln(&b, strings.TrimRight(strings.Join(cells, "  "), " "))
	}

	if snap.TotalPages == 0 {
		fmt.Fprintf(&b, "\nno records\n")
	} else {
		fmt.Fprintf(&b, "\npage %d/%d - %d of %d records\n",
			snap.Page, snap.TotalPages, snap.Filtered, snap.Total)
	}
	return b.String()
}

// pad fits s into width runes, truncating with an ellipsis when too long.
func pad(s string, width int) string {
	runes := []rune(s)
	if len(runes) > width {
		if width <= 1 {
			return string(runes[:width])
		}
		return string(runes[:width-1]) + "…"
	}
	return s + strings.Repeat(" ", width-len(runes))
}

// parseFilter parses a --filter flag value into a field key and its typed
// constraint.
func parseFilter(raw string) (string, view.Constraint, error) {
	key, value, ok := strings.Cut(raw, "=")
	if !ok || key == "" {
		return "", nil, fmt.Errorf("expected key=value, got %q", raw)
	}
	c, err := view.ParseConstraint(value)
	if err != nil {
		return "", nil, fmt.Errorf("filter %q: %w", key, err)
	}
	return key, c, nil
}
