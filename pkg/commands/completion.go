package commands

import (
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lnds/daily-log/pkg/store"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(daily-log completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(daily-log completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(os.Stdout)
		},
	}

	topLevel.AddCommand(cmd)
}

// registerSectionCompletion completes the --section flag with the
// sections present in the journal.
func registerSectionCompletion(cmd *cobra.Command) {
	_ = cmd.RegisterFlagCompletionFunc("section", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return sectionCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
	})
}

func sectionCompletions(toComplete string) []string {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil
	}
	p, err := store.Open(cfg)
	if err != nil {
		return nil
	}
	j, err := p.Load()
	if err != nil {
		return nil
	}
	var names []string
	for _, name := range j.Names() {
		if toComplete != "" && !strings.HasPrefix(name, toComplete) {
			continue
		}
		names = append(names, strconv.Quote(name))
	}
	return names
}
