// Package options defines the shared flag sets for CLI commands.
package options

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/lnds/daily-log/pkg/dates"
	"github.com/lnds/daily-log/pkg/filter"
)

// FilterOptions
type FilterOptions struct {
	Sections  []string
	Search    string
	Exact     bool
	Case      string
	Bool      string
	Tag       string
	Not       bool
	OnlyTimed bool
	Val       []string
	After     string
	Before    string
	From      string
}

func AddFilterArgs(cmd *cobra.Command, o *FilterOptions) {
	cmd.Flags().StringArrayVarP(&o.Sections, "section", "s", nil,
		"Limit to section (may be used more than once).")
	cmd.Flags().StringVar(&o.Search, "search", "",
		"Filter entries using a search query.")
	cmd.Flags().BoolVarP(&o.Exact, "exact", "x", false,
		"Force exact search string matching (case sensitive).")
	cmd.Flags().StringVar(&o.Case, "case", "smart",
		"Case sensitivity for search string matching [(c)ase-sensitive, (i)gnore, (s)mart].")
	cmd.Flags().StringVar(&o.Bool, "bool", "pattern",
		"Boolean used to combine multiple tags (AND|OR|NOT).")
	cmd.Flags().StringVar(&o.Tag, "tag", "",
		"Filter entries by tag.")
	cmd.Flags().BoolVar(&o.Not, "not", false,
		"Act on items that *don't* match search/tag filters.")
	cmd.Flags().StringArrayVar(&o.Val, "val", nil,
		"Perform a tag value query.")
}

// AddMatchArgs registers the reduced filter set carried by finish,
// cancel and delete: no case, boolean or tag value flags.
func AddMatchArgs(cmd *cobra.Command, o *FilterOptions) {
	cmd.Flags().StringArrayVarP(&o.Sections, "section", "s", nil,
		"Limit to section (may be used more than once).")
	cmd.Flags().StringVar(&o.Search, "search", "",
		"Filter entries using a search query.")
	cmd.Flags().StringVar(&o.Tag, "tag", "",
		"Filter entries by tag.")
	cmd.Flags().BoolVar(&o.Not, "not", false,
		"Act on items that *don't* match search/tag filters.")
	cmd.Flags().BoolVarP(&o.Exact, "exact", "x", false,
		"Force exact search string matching (case sensitive).")
}

func AddDateFilterArgs(cmd *cobra.Command, o *FilterOptions) {
	cmd.Flags().StringVar(&o.After, "after", "",
		"Show entries newer than date.")
	cmd.Flags().StringVar(&o.Before, "before", "",
		"Show entries older than date.")
	cmd.Flags().StringVar(&o.From, "from", "",
		"Date range to show.")
}

func AddOnlyTimedArg(cmd *cobra.Command, o *FilterOptions) {
	cmd.Flags().BoolVar(&o.OnlyTimed, "only_timed", false,
		"Only show items with recorded time intervals.")
}

// Tags splits the --tag value into individual tokens.
func (o *FilterOptions) Tags() []string {
	return filter.SplitTags(o.Tag)
}

// Filter assembles the query the flags describe. Date flags parse
// relative to now.
func (o *FilterOptions) Filter(now time.Time) (filter.Options, error) {
	opts := filter.Options{
		Sections:  o.Sections,
		Search:    o.Search,
		Exact:     o.Exact,
		Case:      filter.ParseCase(o.Case),
		Tags:      o.Tags(),
		Strategy:  filter.ParseStrategy(o.Bool),
		OnlyTimed: o.OnlyTimed,
		Val:       o.Val,
		Invert:    o.Not,
	}
	if o.After != "" {
		b, err := dates.Parse(o.After, now)
		if err != nil {
			return filter.Options{}, err
		}
		opts.After = &b
	}
	if o.Before != "" {
		b, err := dates.Parse(o.Before, now)
		if err != nil {
			return filter.Options{}, err
		}
		opts.Before = &b
	}
	if o.From != "" {
		r, err := dates.ParseRange(o.From, now)
		if err != nil {
			return filter.Options{}, err
		}
		opts.From = &r
	}
	return opts, nil
}
