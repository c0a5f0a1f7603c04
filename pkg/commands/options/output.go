package options

import (
	"github.com/spf13/cobra"

	"github.com/lnds/daily-log/pkg/printers"
)

// OutputOptions
type OutputOptions struct {
	Output   string
	Times    bool
	Duration bool
	Totals   bool
	Hilite   bool
	TagOrder string
}

func AddOutputArgs(cmd *cobra.Command, o *OutputOptions) {
	cmd.Flags().StringVarP(&o.Output, "output", "o", "",
		"Output format [taskpaper|markdown|json|timeline|html|csv].")
	cmd.Flags().BoolVarP(&o.Times, "times", "t", true,
		"Show time intervals on completed entries.")
	cmd.Flags().BoolVar(&o.Duration, "duration", false,
		"Show elapsed time on entries without @done.")
	cmd.Flags().BoolVar(&o.Totals, "totals", false,
		"Show intervals with totals at the end of output.")
	cmd.Flags().StringVar(&o.TagOrder, "tag_order", "asc",
		"Tag sort direction (asc|desc).")
}

func AddHiliteArg(cmd *cobra.Command, o *OutputOptions) {
	cmd.Flags().BoolVar(&o.Hilite, "hilite", false,
		"Highlight search matches in output.")
}

// PrintOptions maps the flags to printer settings. The query is the
// search string to highlight, if any.
func (o *OutputOptions) PrintOptions(query string) printers.Options {
	return printers.Options{
		Times:    o.Times,
		Duration: o.Duration,
		Totals:   o.Totals,
		Hilite:   o.Hilite,
		Query:    query,
		Format:   printers.ParseFormat(o.Output),
		TagOrder: printers.ParseSortOrder(o.TagOrder),
	}
}
