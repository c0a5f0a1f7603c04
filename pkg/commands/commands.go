package commands

import (
	"context"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"github.com/lnds/daily-log/pkg/runner/now"
	"github.com/lnds/daily-log/pkg/runner/recent"
	"github.com/lnds/daily-log/pkg/store"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "daily-log",
		Short: base.Wrap80("A command line tool for tracking what you're doing."),
		Args:  cobra.ArbitraryArgs,
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
			// Bare words start an entry, no arguments shows recent work.
			if len(args) > 0 {
				n := now.Now{Words: args, Config: cfg, Persistence: p}
				return n.Do(context.Background())
			}
			r := recent.Recent{Count: 10, Persistence: p}
			return r.Do(context.Background())
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addNow(topLevel)
	addDone(topLevel)
	addFinish(topLevel)
	addCancel(topLevel)
	addAgain(topLevel)
	addTag(topLevel)
	addMark(topLevel)
	addNote(topLevel)
	addDelete(topLevel)
	addReset(topLevel)
	addLater(topLevel)

	addShow(topLevel)
	addGrep(topLevel)
	addRecent(topLevel)
	addLast(topLevel)
	addToday(topLevel)
	addYesterday(topLevel)
	addOn(topLevel)
	addSince(topLevel)

	addSections(topLevel)
	addTags(topLevel)
	addArchive(topLevel)
	addUndo(topLevel)
	addInfo(topLevel)

	addCompletions(topLevel)
	addVersion(topLevel)
}
