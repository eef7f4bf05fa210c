package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/npillmayer/qss/style/qssom"
	"github.com/npillmayer/qss/style/qssom/douceuradapter"
)

func newFmtCmd() *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "fmt file.qss",
		Short: "Print a style sheet in canonical form",
		Long: `Fmt parses a style sheet and prints it in canonical form: one rule
per selector group, 4-space indented declarations. The canonical form is
semantically equivalent to the input.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sheet, err := douceuradapter.ParseFile(args[0])
			if err != nil {
				return err
			}
			out := qssom.Format(sheet)
			if write {
				return os.WriteFile(args[0], []byte(out), 0o644)
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "write result back to the source file")
	return cmd
}
