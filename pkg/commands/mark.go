package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/lnds/daily-log/pkg/commands/options"
	"github.com/lnds/daily-log/pkg/entry"
	"github.com/lnds/daily-log/pkg/runner/tag"
	"github.com/lnds/daily-log/pkg/store"
)

func addMark(topLevel *cobra.Command) {
	to := &options.TagOptions{}
	fo := &options.FilterOptions{}
	ui := &options.UIOptions{}

	cmd := &cobra.Command{
		Use:     "mark",
		Aliases: []string{"flag"},
		Short:   "Mark last entry as flagged",
		Long: `Mark the last entry as @flagged, or the entries matching the given
search filter. Use --remove to unflag.`,
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
			r := tag.Tag{
				Tags:        []string{entry.FlagTag},
				Count:       to.Count,
				Bool:        fo.Bool,
				Case:        fo.Case,
				Date:        to.Date,
				Force:       to.Force,
				Interactive: ui.Interactive,
				Not:         fo.Not,
				Remove:      to.Remove,
				Sections:    fo.Sections,
				Search:      fo.Search,
				Tag:         fo.Tag,
				Unfinished:  to.Unfinished,
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
	cmd.Flags().IntVarP(&to.Count, "count", "c", 1,
		"How many recent entries to flag (0 for all).")
	cmd.Flags().BoolVarP(&to.Date, "date", "d", false,
		"Include current date/time with flag.")
	cmd.Flags().BoolVar(&to.Force, "force", false,
		"Don't ask permission to flag all entries when count is 0.")
	cmd.Flags().BoolVarP(&to.Remove, "remove", "r", false,
		"Remove flag.")
	cmd.Flags().BoolVarP(&to.Unfinished, "unfinished", "u", false,
		"Flag last entry (or entries) not marked @done.")
	registerSectionCompletion(cmd)

	topLevel.AddCommand(cmd)
}
