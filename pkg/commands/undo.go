package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/lnds/daily-log/pkg/runner/undo"
	"github.com/lnds/daily-log/pkg/store"
)

func addUndo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "undo",
		Short: "Undo the last change to the journal file",
		Long: `Restore the journal file from the most recent backup. Each command
that writes the file leaves a backup behind, so repeated undo steps
back through recent changes.`,
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
			r := undo.Undo{
				Persistence: p,
			}
			return r.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
