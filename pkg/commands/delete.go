package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lnds/daily-log/pkg/commands/options"
	"github.com/lnds/daily-log/pkg/runner/remove"
	"github.com/lnds/daily-log/pkg/store"
)

func addDelete(topLevel *cobra.Command) {
	fo := &options.FilterOptions{}
	ui := &options.UIOptions{}
	var force bool

	cmd := &cobra.Command{
		Use:   "delete [COUNT]",
		Short: "Delete entries from the journal",
		Long: `Delete the last entry, or the last COUNT entries matching the given
search filter. Deletion asks for confirmation unless --force is set.`,
		Example: `
daily-log delete
daily-log delete 3 --search standup -f
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			count := 1
			if len(args) > 0 {
				n, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("Invalid count: %s", args[0])
				}
				count = n
			}
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			p, err := store.Open(cfg)
			if err != nil {
				return err
			}
			r := remove.Remove{
				Count:       count,
				Interactive: ui.Interactive,
				Not:         fo.Not,
				Sections:    fo.Sections,
				Search:      fo.Search,
				Tag:         fo.Tag,
				Exact:       fo.Exact,
				Force:       force,
				Config:      cfg,
				Persistence: p,
			}
			return r.Do(context.Background())
		},
	}

	options.AddMatchArgs(cmd, fo)
	options.AddInteractiveArg(cmd, ui)
	cmd.Flags().BoolVarP(&force, "force", "f", false,
		"Force deletion without confirmation.")
	registerSectionCompletion(cmd)

	topLevel.AddCommand(cmd)
}
