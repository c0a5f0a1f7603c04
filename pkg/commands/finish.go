package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lnds/daily-log/pkg/commands/options"
	"github.com/lnds/daily-log/pkg/runner/finish"
	"github.com/lnds/daily-log/pkg/store"
)

func addFinish(topLevel *cobra.Command) {
	fo := &options.FinishOptions{}
	mo := &options.FilterOptions{}
	ui := &options.UIOptions{}
	var back, from string

	cmd := &cobra.Command{
		Use:   "finish [COUNT]",
		Short: "Mark last X entries as @done",
		Long: `Mark the most recent entry, or the most recent COUNT entries, as
@done. Filters narrow which entries count as candidates.`,
		Example: `
daily-log finish
daily-log finish 3 --auto
daily-log finish --tag meeting --archive
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			count := 1
			if len(args) > 0 {
				var err error
				count, err = strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("Invalid count: %s", args[0])
				}
			}
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			p, err := store.Open(cfg)
			if err != nil {
				return err
			}
			r := finish.Finish{
				Count:       count,
				Archive:     fo.Archive,
				At:          fo.At,
				Auto:        fo.Auto,
				Back:        back,
				From:        from,
				Interactive: ui.Interactive,
				Not:         mo.Not,
				Remove:      fo.Remove,
				Sections:    mo.Sections,
				Search:      mo.Search,
				Took:        fo.Took,
				Tag:         mo.Tag,
				Unfinished:  fo.Unfinished,
				Update:      fo.Update,
				Exact:       mo.Exact,
				Date:        fo.Date,
				Config:      cfg,
				Persistence: p,
			}
			return r.Do(context.Background())
		},
	}

	options.AddMatchArgs(cmd, mo)
	options.AddDoneArgs(cmd, fo)
	options.AddInteractiveArg(cmd, ui)
	cmd.Flags().BoolVar(&fo.Auto, "auto", false,
		"Auto-generate finish dates from the next entry's start time.")
	cmd.Flags().BoolVar(&fo.Update, "update", false,
		"Overwrite existing @done tag with new date.")
	cmd.Flags().StringVarP(&back, "back", "b", "",
		"Backdate completed date to date string.")
	cmd.Flags().StringVar(&from, "from", "",
		"Start and end times as a date/time range.")
	registerSectionCompletion(cmd)

	topLevel.AddCommand(cmd)
}
