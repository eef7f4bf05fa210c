package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/npillmayer/qss/lint"
	"github.com/npillmayer/qss/theme"
)

func newVetCmd() *cobra.Command {
	var iconDir string
	var token string

	cmd := &cobra.Command{
		Use:   "vet [file.qss]",
		Short: "Check a style sheet's colors, icon references and selectors",
		Long: `Vet checks the asset-integrity properties of a style sheet: color
literals must be 6-digit hex, url(...) references must resolve to files
under the icon directory, and selectors must parse. Without a file
argument the built-in dark theme is checked.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			src := theme.Source()
			target := "builtin dark theme"
			if len(args) == 1 {
				raw, err := os.ReadFile(args[0])
				if err != nil {
					return err
				}
				src = string(raw)
				target = args[0]
			}
			logger.Debug("vetting style sheet", "target", target)

			opts := lint.Options{IconDir: iconDir, IconDirToken: token}
			issues := lint.CheckSource(src, opts)
			for _, issue := range issues {
				fmt.Fprintln(cmd.OutOrStdout(), issue)
			}
			if err := lint.RoundTrip(src); err != nil {
				return err
			}
			if lint.HasErrors(issues) {
				return fmt.Errorf("%s: vet found errors", target)
			}
			logger.Info("style sheet is clean", "target", target, "issues", len(issues))
			return nil
		},
	}

	cmd.Flags().StringVar(&iconDir, "icons", "", "icon directory for asset checks (skipped when empty)")
	cmd.Flags().StringVar(&token, "token", "", "asset-directory placeholder (default \"$ICON_DIR\")")
	return cmd
}
