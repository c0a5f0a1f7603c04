package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/lnds/daily-log/pkg/commands/options"
	"github.com/lnds/daily-log/pkg/runner/grep"
	"github.com/lnds/daily-log/pkg/store"
)

func addGrep(topLevel *cobra.Command) {
	fo := &options.FilterOptions{}
	oo := &options.OutputOptions{}
	ui := &options.UIOptions{}
	var (
		del    bool
		editor bool
	)

	cmd := &cobra.Command{
		Use:     "grep SEARCH_PATTERN",
		Aliases: []string{"search"},
		Short:   "Search for entries",
		Long:    `Search all sections for entries matching text or regular expression.`,
		Example: `
daily-log grep standup
daily-log grep "'oncall" --section Archive
daily-log grep canary --delete
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			opts, err := fo.Filter(time.Now())
			if err != nil {
				return err
			}
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			p, err := store.Open(cfg)
			if err != nil {
				return err
			}
			r := grep.Grep{
				Pattern:     args[0],
				Delete:      del,
				Interactive: ui.Interactive,
				Filter:      opts,
				Print:       oo.PrintOptions(args[0]),
				Persistence: p,
			}
			return r.Do(context.Background())
		},
	}

	// The positional pattern is the search query, so no --search flag
	// here. The rest of the filter set applies as usual.
	cmd.Flags().StringArrayVarP(&fo.Sections, "section", "s", nil,
		"Limit to section (may be used more than once).")
	cmd.Flags().BoolVarP(&fo.Exact, "exact", "x", false,
		"Force exact string matching (case sensitive).")
	cmd.Flags().StringVar(&fo.Case, "case", "smart",
		"Case sensitivity for search string matching [(c)ase-sensitive, (i)gnore, (s)mart].")
	cmd.Flags().StringVar(&fo.Bool, "bool", "pattern",
		"Boolean used to combine multiple tags (AND|OR|NOT).")
	cmd.Flags().StringVar(&fo.Tag, "tag", "",
		"Filter entries by tag.")
	cmd.Flags().BoolVar(&fo.Not, "not", false,
		"Search items that *don't* match.")
	cmd.Flags().StringArrayVar(&fo.Val, "val", nil,
		"Perform a tag value query.")
	options.AddDateFilterArgs(cmd, fo)
	options.AddOnlyTimedArg(cmd, fo)
	options.AddOutputArgs(cmd, oo)
	options.AddHiliteArg(cmd, oo)
	options.AddInteractiveArg(cmd, ui)
	cmd.Flags().BoolVarP(&del, "delete", "d", false,
		"Delete matching entries.")
	cmd.Flags().BoolVarP(&editor, "editor", "e", false,
		"Edit matching entries with editor.")
	registerSectionCompletion(cmd)

	topLevel.AddCommand(cmd)
}
