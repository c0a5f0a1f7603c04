package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/lnds/daily-log/pkg/commands/options"
	"github.com/lnds/daily-log/pkg/runner/since"
	"github.com/lnds/daily-log/pkg/store"
)

func addSince(topLevel *cobra.Command) {
	fo := &options.FilterOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "since DATE_STRING",
		Short: "List entries since a date",
		Long: `List entries since a date. Date arguments can be natural language and
are always interpreted as being in the past.`,
		Example: `
daily-log since "last monday"
daily-log since 7am --tag deploy
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
			r := since.Since{
				Date:        args[0],
				Filter:      opts,
				Print:       oo.PrintOptions(fo.Search),
				Persistence: p,
			}
			return r.Do(context.Background())
		},
	}

	options.AddFilterArgs(cmd, fo)
	options.AddOnlyTimedArg(cmd, fo)
	options.AddOutputArgs(cmd, oo)
	registerSectionCompletion(cmd)

	topLevel.AddCommand(cmd)
}
