package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/lnds/daily-log/pkg/runner/last"
	"github.com/lnds/daily-log/pkg/store"
)

func addLast(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "last",
		Short: "Show the last entry",
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
			r := last.Last{
				Persistence: p,
			}
			return r.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
