package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/lnds/daily-log/pkg/commands/options"
	"github.com/lnds/daily-log/pkg/runner/tag"
	"github.com/lnds/daily-log/pkg/store"
)

func addTag(topLevel *cobra.Command) {
	to := &options.TagOptions{}
	fo := &options.FilterOptions{}
	ui := &options.UIOptions{}
	var autotag bool

	cmd := &cobra.Command{
		Use:   "tag TAG...",
		Short: "Add tag(s) to last entry",
		Long: `Add (or remove) tags from the last entry, or from multiple entries with
--count, --search or --tag. When removing with -r, wildcards are
allowed: * matches multiple characters, ? matches one. With --regex the
pattern is a regular expression instead. Matching is case insensitive
unless the pattern contains an uppercase letter. Tag arguments do not
need the @ prefix.`,
		Example: `
daily-log tag urgent
daily-log tag -c 3 reviewed
daily-log tag --rename "proj_*" project
`,
		Args: cobra.MinimumNArgs(1),
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
			r := tag.Tag{
				Tags:        args,
				Count:       to.Count,
				Bool:        fo.Bool,
				Case:        fo.Case,
				Date:        to.Date,
				Force:       to.Force,
				Interactive: ui.Interactive,
				Not:         fo.Not,
				Remove:      to.Remove,
				Regex:       to.Regex,
				Rename:      to.Rename,
				Sections:    fo.Sections,
				Search:      fo.Search,
				Tag:         fo.Tag,
				Unfinished:  to.Unfinished,
				Val:         fo.Val,
				Value:       to.Value,
				Exact:       fo.Exact,
				Config:      cfg,
				Persistence: p,
			}
			return r.Do(context.Background())
		},
	}

	options.AddFilterArgs(cmd, fo)
	options.AddTagArgs(cmd, to)
	options.AddInteractiveArg(cmd, ui)
	cmd.Flags().BoolVarP(&autotag, "autotag", "a", false,
		"Autotag entries based on autotag configuration.")
	registerSectionCompletion(cmd)

	topLevel.AddCommand(cmd)
}
