package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/lnds/daily-log/pkg/runner/info"
	"github.com/lnds/daily-log/pkg/store"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show configuration and journal details",
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
			r := info.Info{
				Config:      cfg,
				Persistence: p,
			}
			return r.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
