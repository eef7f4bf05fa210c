package cli

import (
	"github.com/spf13/cobra"

	"github.com/npillmayer/qss/qssdbg"
	"github.com/npillmayer/qss/style/qssom"
	"github.com/npillmayer/qss/style/qssom/douceuradapter"
	"github.com/npillmayer/qss/theme"
)

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump [file.qss]",
		Short: "Show the rule structure of a style sheet as a tree",
		Long: `Dump merges a style sheet into its rule-set and prints it as a tree:
widget classes, their selectors, and the property assignments. Without a
file argument the built-in dark theme is dumped.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var sheet qssom.StyleSheet
			var err error
			if len(args) == 1 {
				sheet, err = douceuradapter.ParseFile(args[0])
			} else {
				sheet, err = douceuradapter.ParseString(theme.Source())
			}
			if err != nil {
				return err
			}
			rules, err := qssom.Cascade(sheet)
			if err != nil {
				return err
			}
			return qssdbg.Dump(rules, cmd.OutOrStdout())
		},
	}
	return cmd
}
