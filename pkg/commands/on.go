package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/lnds/daily-log/pkg/commands/options"
	"github.com/lnds/daily-log/pkg/runner/on"
	"github.com/lnds/daily-log/pkg/store"
)

func addOn(topLevel *cobra.Command) {
	fo := &options.FilterOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "on DATE_STRING",
		Short: "List entries on a specific date",
		Long: `List entries on a date or within a date range. The argument can be
natural language ("yesterday", "last tuesday") or a range joined with
"to" or "through".`,
		Example: `
daily-log on 2025-06-01
daily-log on "last friday"
daily-log on "jan 1 to jan 15" -o csv
`,
		Args: cobra.ExactArgs(1),
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
			r := on.On{
				Date:        args[0],
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
	registerSectionCompletion(cmd)

	topLevel.AddCommand(cmd)
}
