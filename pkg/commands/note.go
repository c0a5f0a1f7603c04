package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/lnds/daily-log/pkg/commands/options"
	"github.com/lnds/daily-log/pkg/runner/note"
	"github.com/lnds/daily-log/pkg/store"
)

func addNote(topLevel *cobra.Command) {
	fo := &options.FilterOptions{}
	ui := &options.UIOptions{}
	var (
		ask    bool
		editor bool
		remove bool
	)

	cmd := &cobra.Command{
		Use:   "note [NOTE_TEXT...]",
		Short: "Add a note to the last entry",
		Long: `If -r is provided with no other arguments, the last note is removed.
If new content is specified through arguments or STDIN, any previous
note will be replaced with the new one. Use -e to load the last entry
in a text editor where you can append a note.`,
		Example: `
daily-log note "rolled back after the canary failed"
daily-log note --tag deploy "see incident 4411"
daily-log note -r
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
			r := note.Note{
				Words:       args,
				Ask:         ask,
				Editor:      editor,
				Remove:      remove,
				Interactive: ui.Interactive,
				Sections:    fo.Sections,
				Search:      fo.Search,
				Tag:         fo.Tag,
				Bool:        fo.Bool,
				Case:        fo.Case,
				Val:         fo.Val,
				Exact:       fo.Exact,
				Not:         fo.Not,
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
	cmd.Flags().BoolVarP(&editor, "editor", "e", false,
		"Edit entry with editor.")
	cmd.Flags().BoolVarP(&remove, "remove", "r", false,
		"Replace/Remove last entry's note (default append).")
	registerSectionCompletion(cmd)

	topLevel.AddCommand(cmd)
}
