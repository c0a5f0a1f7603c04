package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/lnds/daily-log/pkg/commands/options"
	"github.com/lnds/daily-log/pkg/runner/now"
	"github.com/lnds/daily-log/pkg/store"
)

func addNow(topLevel *cobra.Command) {
	eo := &options.EntryOptions{}
	finishLast := false

	cmd := &cobra.Command{
		Use:   "now [ENTRY]",
		Short: "Add an entry",
		Long: `Record what you're starting now, or backdate the start time using natural
language. A parenthetical at the end of the entry will be converted to a
note. Run without arguments to create a new entry interactively.`,
		Example: `
daily-log now fixing the build
daily-log now --back 20m reviewing PRs (left comments on three)
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
			r := now.Now{
				Words:       args,
				Note:        eo.Note,
				Ask:         eo.Ask,
				Back:        eo.Back,
				From:        eo.From,
				Section:     eo.Section,
				Editor:      eo.Editor,
				FinishLast:  finishLast,
				Config:      cfg,
				Persistence: p,
			}
			return r.Do(context.Background())
		},
	}

	options.AddEntryArgs(cmd, eo)
	cmd.Flags().BoolVarP(&finishLast, "finish_last", "f", false, "Mark the last entry in the section @done when adding this one.")
	registerSectionCompletion(cmd)

	topLevel.AddCommand(cmd)
}
