package options

import (
	"github.com/spf13/cobra"
)

// TagOptions collects the flags for bulk tag edits.
type TagOptions struct {
	Count      int
	Date       bool
	Force      bool
	Remove     bool
	Regex      bool
	Rename     string
	Unfinished bool
	Value      string
}

func AddTagArgs(cmd *cobra.Command, o *TagOptions) {
	cmd.Flags().IntVarP(&o.Count, "count", "c", 1,
		"How many recent entries to tag (0 for all).")
	cmd.Flags().BoolVarP(&o.Date, "date", "d", false,
		"Include a time value with the tag.")
	cmd.Flags().BoolVar(&o.Force, "force", false,
		"Don't ask permission to tag all entries when count is 0.")
	cmd.Flags().BoolVarP(&o.Remove, "remove", "r", false,
		"Remove given tag(s).")
	cmd.Flags().BoolVar(&o.Regex, "regex", false,
		"Interpret tag string as regular expression.")
	cmd.Flags().StringVar(&o.Rename, "rename", "",
		"Replace existing tag with tag argument.")
	cmd.Flags().BoolVarP(&o.Unfinished, "unfinished", "u", false,
		"Tag last entry not marked @done.")
	cmd.Flags().StringVarP(&o.Value, "value", "v", "",
		"Include a value, e.g. @tag(value).")
}
