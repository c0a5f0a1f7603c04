package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lnds/daily-log/pkg/commands/options"
	"github.com/lnds/daily-log/pkg/runner/tags"
	"github.com/lnds/daily-log/pkg/store"
)

func addTags(topLevel *cobra.Command) {
	fo := &options.FilterOptions{}
	ui := &options.UIOptions{}
	var (
		counts bool
		line   bool
		order  string
		sortBy string
	)

	cmd := &cobra.Command{
		Use:   "tags [MAX_COUNT]",
		Short: "List all tags in the journal",
		Long: `List tags with usage counts, optionally limited to the MAX_COUNT most
used. Filter flags narrow which entries are tallied.`,
		Example: `
daily-log tags
daily-log tags 5 --counts
daily-log tags --line --section Currently
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			maxCount := 0
			if len(args) > 0 {
				n, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("Invalid count: %s", args[0])
				}
				maxCount = n
			}
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			p, err := store.Open(cfg)
			if err != nil {
				return err
			}
			r := tags.Tags{
				MaxCount:    maxCount,
				Counts:      counts,
				Line:        line,
				Order:       order,
				Sort:        sortBy,
				Interactive: ui.Interactive,
				Sections:    fo.Sections,
				Search:      fo.Search,
				Tag:         fo.Tag,
				Val:         fo.Val,
				Case:        fo.Case,
				Exact:       fo.Exact,
				Not:         fo.Not,
				Persistence: p,
			}
			return r.Do(context.Background())
		},
	}

	// No --bool here, tag filters on this command are single patterns.
	cmd.Flags().StringArrayVarP(&fo.Sections, "section", "s", nil,
		"Limit to section (may be used more than once).")
	cmd.Flags().StringVar(&fo.Search, "search", "",
		"Filter entries using a search query.")
	cmd.Flags().StringVar(&fo.Tag, "tag", "",
		"Filter entries by tag.")
	cmd.Flags().StringArrayVar(&fo.Val, "val", nil,
		"Perform a tag value query.")
	cmd.Flags().StringVar(&fo.Case, "case", "smart",
		"Case sensitivity for search string matching [(c)ase-sensitive, (i)gnore, (s)mart].")
	cmd.Flags().BoolVarP(&fo.Exact, "exact", "x", false,
		"Force exact search string matching (case sensitive).")
	cmd.Flags().BoolVar(&fo.Not, "not", false,
		"Tally items that *don't* match search/tag filters.")
	options.AddInteractiveArg(cmd, ui)
	cmd.Flags().BoolVarP(&counts, "counts", "c", false,
		"Show tag counts.")
	cmd.Flags().BoolVar(&line, "line", false,
		"Output tags in a single line.")
	cmd.Flags().StringVarP(&order, "order", "o", "asc",
		"Sort order (asc|desc).")
	cmd.Flags().StringVar(&sortBy, "sort", "name",
		"Sort tags by (name|time).")
	registerSectionCompletion(cmd)

	topLevel.AddCommand(cmd)
}
