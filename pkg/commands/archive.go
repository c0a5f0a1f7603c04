package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/lnds/daily-log/pkg/commands/options"
	"github.com/lnds/daily-log/pkg/runner/archive"
	"github.com/lnds/daily-log/pkg/store"
)

func addArchive(topLevel *cobra.Command) {
	fo := &options.FilterOptions{}
	var (
		keep  int
		label bool
		to    string
	)

	cmd := &cobra.Command{
		Use:   "archive [SECTION|@TAGS]",
		Short: "Move entries between sections",
		Long: `Move entries to the Archive section, or to the section named with
--to. The argument can be a section name or a @tag. Without an
argument, all sections are swept.`,
		Example: `
daily-log archive @done
daily-log archive Currently --keep 5
daily-log archive Later --to Currently
`,
		Args: cobra.MaximumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) != 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return sectionCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			target := ""
			if len(args) > 0 {
				target = args[0]
			}
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			p, err := store.Open(cfg)
			if err != nil {
				return err
			}
			r := archive.Archive{
				Target:      target,
				After:       fo.After,
				Before:      fo.Before,
				Case:        fo.Case,
				From:        fo.From,
				Keep:        keep,
				Label:       label,
				Not:         fo.Not,
				Search:      fo.Search,
				To:          to,
				Tag:         fo.Tag,
				Val:         fo.Val,
				Exact:       fo.Exact,
				Persistence: p,
			}
			return r.Do(context.Background())
		},
	}

	options.AddDateFilterArgs(cmd, fo)
	cmd.Flags().StringVar(&fo.Bool, "bool", "pattern",
		"Boolean used to combine multiple tags (AND|OR|NOT).")
	cmd.Flags().StringVar(&fo.Case, "case", "smart",
		"Case sensitivity for search string matching [(c)ase-sensitive, (i)gnore, (s)mart].")
	cmd.Flags().IntVarP(&keep, "keep", "k", 0,
		"Leave the newest X entries in the source section.")
	cmd.Flags().BoolVar(&label, "label", true,
		"Label moved entries with @from_section.")
	cmd.Flags().BoolVar(&fo.Not, "not", false,
		"Archive items that *don't* match search/tag filters.")
	cmd.Flags().StringVar(&fo.Search, "search", "",
		"Filter entries using a search query.")
	cmd.Flags().StringVarP(&to, "to", "t", "Archive",
		"Move entries to a named section.")
	cmd.Flags().StringVar(&fo.Tag, "tag", "",
		"Filter entries by tag.")
	cmd.Flags().StringArrayVar(&fo.Val, "val", nil,
		"Perform a tag value query.")
	cmd.Flags().BoolVarP(&fo.Exact, "exact", "x", false,
		"Force exact search string matching (case sensitive).")

	topLevel.AddCommand(cmd)
}
