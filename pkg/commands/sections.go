package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/lnds/daily-log/pkg/runner/sections"
	"github.com/lnds/daily-log/pkg/store"
)

func addSections(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "sections",
		Short: "List, add or remove sections",
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
			r := sections.List{
				Persistence: p,
			}
			return r.Do(context.Background())
		},
	}

	addSectionsList(cmd)
	addSectionsAdd(cmd)
	addSectionsRemove(cmd)

	topLevel.AddCommand(cmd)
}

func addSectionsList(parent *cobra.Command) {
	var column bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List sections with entry counts",
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
			r := sections.List{
				Column:      column,
				Persistence: p,
			}
			return r.Do(context.Background())
		},
	}

	cmd.Flags().BoolVarP(&column, "column", "c", false,
		"Print section names only, one per line.")

	parent.AddCommand(cmd)
}

func addSectionsAdd(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "add SECTION_NAME",
		Short: "Add a new section",
		Args:  cobra.ExactArgs(1),
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
			r := sections.Add{
				Name:        args[0],
				Persistence: p,
			}
			return r.Do(context.Background())
		},
	}

	parent.AddCommand(cmd)
}

func addSectionsRemove(parent *cobra.Command) {
	var archive bool

	cmd := &cobra.Command{
		Use:   "remove SECTION_NAME",
		Short: "Remove a section",
		Args:  cobra.ExactArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) != 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return sectionCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
		},
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
			r := sections.Remove{
				Name:        args[0],
				Archive:     archive,
				Persistence: p,
			}
			return r.Do(context.Background())
		},
	}

	cmd.Flags().BoolVarP(&archive, "archive", "a", false,
		"Move the section's entries to Archive instead of discarding them.")

	parent.AddCommand(cmd)
}
