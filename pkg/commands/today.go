package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/lnds/daily-log/pkg/runner/today"
	"github.com/lnds/daily-log/pkg/store"
)

func addToday(topLevel *cobra.Command) {
	var section string

	cmd := &cobra.Command{
		Use:   "today",
		Short: "Show entries from today",
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
			r := today.Today{
				Section:     section,
				Persistence: p,
			}
			return r.Do(context.Background())
		},
	}

	cmd.Flags().StringVarP(&section, "section", "s", "",
		"Show entries from a specific section.")
	registerSectionCompletion(cmd)

	topLevel.AddCommand(cmd)
}
