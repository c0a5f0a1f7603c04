package options

import (
	"github.com/spf13/cobra"
)

// FinishOptions collects the flags shared by commands that mark
// entries done.
type FinishOptions struct {
	At         string
	Took       string
	Archive    bool
	Remove     bool
	Unfinished bool
	Update     bool
	Auto       bool
	Date       bool
}

func AddDoneArgs(cmd *cobra.Command, o *FinishOptions) {
	cmd.Flags().StringVar(&o.At, "at", "",
		"Set finish date to specific date/time.")
	cmd.Flags().StringVarP(&o.Took, "took", "t", "",
		"Set completion date to start date plus interval (XX[mhd] or HH:MM).")
	cmd.Flags().BoolVarP(&o.Archive, "archive", "a", false,
		"Move entry to Archive section.")
	cmd.Flags().BoolVarP(&o.Remove, "remove", "r", false,
		"Remove @done tag.")
	cmd.Flags().BoolVarP(&o.Unfinished, "unfinished", "u", false,
		"Only mark unfinished entries.")
	cmd.Flags().BoolVar(&o.Date, "date", true,
		"Include date with @done tag.")
}
