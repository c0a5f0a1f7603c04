package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/lnds/daily-log/pkg/commands/options"
	"github.com/lnds/daily-log/pkg/runner/reset"
	"github.com/lnds/daily-log/pkg/store"
)

func addReset(topLevel *cobra.Command) {
	fo := &options.FilterOptions{}
	ui := &options.UIOptions{}
	var (
		noResume bool
		resume   bool
		took     string
	)

	cmd := &cobra.Command{
		Use:     "reset [DATE_STRING]",
		Aliases: []string{"begin"},
		Short:   "Reset the start time of an entry",
		Long: `Update the start time of the last entry or the last entry matching a
tag/search filter. If no argument is provided, the start time will be
reset to the current time. If a date string is provided as an argument,
the start time will be set to the parsed result.`,
		Example: `
daily-log reset
daily-log reset "20 minutes ago"
daily-log reset --tag standup --took 15m
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			date := ""
			if len(args) > 0 {
				date = args[0]
			}
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			p, err := store.Open(cfg)
			if err != nil {
				return err
			}
			r := reset.Reset{
				Date:        date,
				Bool:        fo.Bool,
				Case:        fo.Case,
				From:        fo.From,
				Interactive: ui.Interactive,
				NoResume:    noResume,
				Not:         fo.Not,
				Resume:      resume,
				Sections:    fo.Sections,
				Search:      fo.Search,
				Took:        took,
				Tag:         fo.Tag,
				Val:         fo.Val,
				Exact:       fo.Exact,
				Config:      cfg,
				Persistence: p,
			}
			return r.Do(context.Background())
		},
	}

	options.AddFilterArgs(cmd, fo)
	options.AddInteractiveArg(cmd, ui)
	cmd.Flags().StringVar(&fo.From, "from", "",
		"Start and end times as a date/time range (e.g., \"1am to 8am\").")
	cmd.Flags().BoolVarP(&noResume, "no_resume", "n", false,
		"Change start date but do not remove @done.")
	cmd.Flags().BoolVarP(&resume, "resume", "r", true,
		"Resume entry (remove @done).")
	cmd.Flags().StringVarP(&took, "took", "t", "",
		"Set completion date to start date plus interval (XX[mhd] or HH:MM).")
	registerSectionCompletion(cmd)

	topLevel.AddCommand(cmd)
}
