package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/lnds/daily-log/pkg/commands/options"
	"github.com/lnds/daily-log/pkg/runner/done"
	"github.com/lnds/daily-log/pkg/store"
)

func addDone(topLevel *cobra.Command) {
	eo := &options.EntryOptions{}
	fo := &options.FinishOptions{}

	cmd := &cobra.Command{
		Use:     "done [ENTRY]",
		Aliases: []string{"did"},
		Short:   "Add a completed item with @done(date)",
		Long: `Record something you already finished, stamped @done. Without arguments
the last entry in the section is marked @done instead.`,
		Example: `
daily-log done wrote the standup notes
daily-log done --took 45m triaged the inbox
daily-log done
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
			r := done.Done{
				Words:       args,
				Note:        eo.Note,
				Ask:         eo.Ask,
				Back:        eo.Back,
				At:          fo.At,
				Took:        fo.Took,
				From:        eo.From,
				Section:     eo.Section,
				Editor:      eo.Editor,
				Archive:     fo.Archive,
				Remove:      fo.Remove,
				Unfinished:  fo.Unfinished,
				Config:      cfg,
				Persistence: p,
			}
			return r.Do(context.Background())
		},
	}

	options.AddEntryArgs(cmd, eo)
	options.AddDoneArgs(cmd, fo)
	registerSectionCompletion(cmd)

	topLevel.AddCommand(cmd)
}
