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

func addCancel(topLevel *cobra.Command) {
	mo := &options.FilterOptions{}
	ui := &options.UIOptions{}
	var archive, unfinished bool

	cmd := &cobra.Command{
		Use:   "cancel [COUNT]",
		Short: "End last X entries with no time tracked",
		Long: `Adds an @done tag without a timestamp, marking the entry finished but
leaving no interval to sum.`,
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
				Archive:     archive,
				Interactive: ui.Interactive,
				Not:         mo.Not,
				Sections:    mo.Sections,
				Search:      mo.Search,
				Tag:         mo.Tag,
				Unfinished:  unfinished,
				Exact:       mo.Exact,
				Config:      cfg,
				Persistence: p,
			}
			return r.Do(context.Background())
		},
	}

	options.AddMatchArgs(cmd, mo)
	options.AddInteractiveArg(cmd, ui)
	cmd.Flags().BoolVarP(&archive, "archive", "a", false,
		"Archive entries.")
	cmd.Flags().BoolVarP(&unfinished, "unfinished", "u", false,
		"Cancel last entry (or entries) not already marked @done.")
	registerSectionCompletion(cmd)

	topLevel.AddCommand(cmd)
}
