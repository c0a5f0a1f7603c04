package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/lnds/daily-log/pkg/commands/options"
	"github.com/lnds/daily-log/pkg/runner/show"
	"github.com/lnds/daily-log/pkg/store"
)

func addShow(topLevel *cobra.Command) {
	fo := &options.FilterOptions{}
	oo := &options.OutputOptions{}
	ui := &options.UIOptions{}
	var (
		age    string
		count  int
		editor bool
		order  string
	)

	cmd := &cobra.Command{
		Use:   "show [SECTION|@TAGS...]",
		Short: "List all entries",
		Long: `List entries. The arguments can be section names, @tags or both.
"pick" or "choose" as an argument will offer a section menu.`,
		Example: `
daily-log show
daily-log show Archive
daily-log show @urgent -c 5
daily-log show --from "monday to friday" -o json
`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			opts, err := fo.Filter(time.Now())
			if err != nil {
				return err
			}
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			p, err := store.Open(cfg)
			if err != nil {
				return err
			}
			r := show.Show{
				Args:        args,
				Age:         age,
				Sort:        order,
				Count:       count,
				Interactive: ui.Interactive,
				Menu:        ui.Menu,
				Filter:      opts,
				Print:       oo.PrintOptions(fo.Search),
				Persistence: p,
			}
			return r.Do(context.Background())
		},
	}

	options.AddFilterArgs(cmd, fo)
	options.AddDateFilterArgs(cmd, fo)
	options.AddOnlyTimedArg(cmd, fo)
	options.AddOutputArgs(cmd, oo)
	options.AddHiliteArg(cmd, oo)
	options.AddInteractiveArg(cmd, ui)
	cmd.Flags().StringVarP(&age, "age", "a", "newest",
		"Age (oldest|newest).")
	cmd.Flags().IntVarP(&count, "count", "c", 0,
		"Max count to show.")
	cmd.Flags().BoolVarP(&editor, "editor", "e", false,
		"Edit matching entries with editor.")
	cmd.Flags().BoolVarP(&ui.Menu, "menu", "m", false,
		"Select section or tag to display from a menu.")
	cmd.Flags().StringVar(&order, "sort", "desc",
		"Sort order (asc/desc).")
	registerSectionCompletion(cmd)

	topLevel.AddCommand(cmd)
}
