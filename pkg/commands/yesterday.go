package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/lnds/daily-log/pkg/commands/options"
	"github.com/lnds/daily-log/pkg/filter"
	"github.com/lnds/daily-log/pkg/runner/yesterday"
	"github.com/lnds/daily-log/pkg/store"
)

func addYesterday(topLevel *cobra.Command) {
	fo := &options.FilterOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "yesterday",
		Short: "List entries from yesterday",
		Long:  `Show only entries with start times within the previous 24 hour period.`,
		Example: `
daily-log yesterday
daily-log yesterday --after 2pm --before 6pm
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			p, err := store.Open(cfg)
			if err != nil {
				return err
			}
			r := yesterday.Yesterday{
				After:  fo.After,
				Before: fo.Before,
				From:   fo.From,
				Filter: filter.Options{
					Sections:  fo.Sections,
					OnlyTimed: fo.OnlyTimed,
				},
				Print:       oo.PrintOptions(""),
				Persistence: p,
			}
			return r.Do(context.Background())
		},
	}

	cmd.Flags().StringArrayVarP(&fo.Sections, "section", "s", nil,
		"Specify a section (may be used more than once).")
	options.AddDateFilterArgs(cmd, fo)
	options.AddOnlyTimedArg(cmd, fo)
	options.AddOutputArgs(cmd, oo)
	registerSectionCompletion(cmd)

	topLevel.AddCommand(cmd)
}
