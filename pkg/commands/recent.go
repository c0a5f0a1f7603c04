package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/lnds/daily-log/pkg/runner/recent"
	"github.com/lnds/daily-log/pkg/store"
)

func addRecent(topLevel *cobra.Command) {
	var (
		count   int
		section string
	)

	cmd := &cobra.Command{
		Use:   "recent",
		Short: "Show recent entries",
		Long: `Show the most recent entries across all sections, newest first. With
--section, show that section's entries in file order instead.`,
		Example: `
daily-log recent
daily-log recent -c 25
daily-log recent -s Later
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
			r := recent.Recent{
				Count:       count,
				Section:     section,
				Persistence: p,
			}
			return r.Do(context.Background())
		},
	}

	cmd.Flags().IntVarP(&count, "count", "c", 10,
		"Number of entries to show.")
	cmd.Flags().StringVarP(&section, "section", "s", "",
		"Show entries from a specific section.")
	registerSectionCompletion(cmd)

	topLevel.AddCommand(cmd)
}
