package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/lnds/daily-log/pkg/commands/options"
	"github.com/lnds/daily-log/pkg/runner/again"
	"github.com/lnds/daily-log/pkg/store"
)

func addAgain(topLevel *cobra.Command) {
	fo := &options.FilterOptions{}
	ui := &options.UIOptions{}
	var ask, editor, noauto bool
	var back, in, note string

	cmd := &cobra.Command{
		Use:     "again",
		Aliases: []string{"resume"},
		Short:   "Repeat last entry as new entry",
		Long: `Duplicate the most recent matching entry with a fresh start time. This
allows multiple time intervals to be recorded for the same work.`,
		Example: `
daily-log again
daily-log again --search standup --in Currently
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
			r := again.Again{
				Ask:         ask,
				Back:        back,
				Bool:        fo.Bool,
				Case:        fo.Case,
				Editor:      editor,
				Interactive: ui.Interactive,
				In:          in,
				Note:        note,
				Not:         fo.Not,
				Sections:    fo.Sections,
				Search:      fo.Search,
				Tag:         fo.Tag,
				Val:         fo.Val,
				Exact:       fo.Exact,
				Config:      cfg,
				Persistence: p,
			}
			return r.Do(context.Background())
		},
	}

	options.AddFilterArgs(cmd, fo)
	options.AddInteractiveArg(cmd, ui)
	cmd.Flags().BoolVar(&ask, "ask", false,
		"Prompt for note via multi-line input.")
	cmd.Flags().StringVarP(&back, "back", "b", "",
		"Backdate start date for new entry to date string [4pm|20m|2h|yesterday noon].")
	cmd.Flags().BoolVarP(&editor, "editor", "e", false,
		"Edit entry with editor.")
	cmd.Flags().StringVar(&in, "in", "",
		"Add new entry to section (default: same section as repeated entry).")
	cmd.Flags().StringVarP(&note, "note", "n", "",
		"Include a note.")
	cmd.Flags().BoolVarP(&noauto, "noauto", "X", false,
		"Exclude auto tags and default tags.")
	registerSectionCompletion(cmd)

	topLevel.AddCommand(cmd)
}
