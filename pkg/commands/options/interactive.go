package options

import (
	"github.com/spf13/cobra"
)

// UIOptions
type UIOptions struct {
	Interactive bool
	Menu        bool
}

func AddInteractiveArg(cmd *cobra.Command, o *UIOptions) {
	cmd.Flags().BoolVarP(&o.Interactive, "interactive", "i", false,
		"Select entries to act on from a menu.")
}
