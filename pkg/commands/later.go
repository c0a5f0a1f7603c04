package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/lnds/daily-log/pkg/runner/later"
	"github.com/lnds/daily-log/pkg/store"
)

func addLater(topLevel *cobra.Command) {
	var (
		tags []string
		note string
	)

	cmd := &cobra.Command{
		Use:   "later TASK...",
		Short: "Add an entry to the Later section",
		Long: `Add an entry to the Later section without starting it. Tags may be
given with or without the @ prefix, and with a value in parentheses.`,
		Example: `
daily-log later "review the RFC"
daily-log later "rotate the certs" --tag ops --tag "due(friday)"
`,
		Args: cobra.ArbitraryArgs,
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
			r := later.Later{
				Words:       args,
				Tags:        tags,
				Note:        note,
				Persistence: p,
			}
			return r.Do(context.Background())
		},
	}

	cmd.Flags().StringArrayVar(&tags, "tag", nil,
		"Tag the entry (may be used more than once).")
	cmd.Flags().StringVarP(&note, "note", "n", "",
		"Include a note.")

	topLevel.AddCommand(cmd)
}
