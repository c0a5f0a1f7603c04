package options

import (
	"github.com/spf13/cobra"
)

// EntryOptions collects the flags shared by commands that create or
// restart entries.
type EntryOptions struct {
	Note    string
	Ask     bool
	Back    string
	From    string
	Section string
	Editor  bool
	NoAuto  bool
}

func AddEntryArgs(cmd *cobra.Command, o *EntryOptions) {
	cmd.Flags().StringVarP(&o.Note, "note", "n", "",
		"Include a note.")
	cmd.Flags().BoolVar(&o.Ask, "ask", false,
		"Prompt for note via multi-line input.")
	cmd.Flags().StringVarP(&o.Back, "back", "b", "",
		"Backdate start time [4pm|20m|2h|\"yesterday noon\"].")
	cmd.Flags().StringVar(&o.From, "from", "",
		"Set a start and optionally end time as a date range.")
	cmd.Flags().StringVarP(&o.Section, "section", "s", "",
		"Section.")
	cmd.Flags().BoolVarP(&o.Editor, "editor", "e", false,
		"Edit entry with editor.")
	cmd.Flags().BoolVarP(&o.NoAuto, "noauto", "X", false,
		"Exclude auto tags and default tags.")
}
