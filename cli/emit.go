package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/npillmayer/qss/theme"
)

func newEmitCmd() *cobra.Command {
	var iconDir string
	var palettePath string
	var outPath string

	cmd := &cobra.Command{
		Use:   "emit",
		Short: "Resolve the built-in dark theme",
		Long: `Emit resolves the built-in dark theme: the $ICON_DIR placeholder is
substituted with the given icon directory and optional palette overrides
(a TOML file with a [colors] table) are applied. The resolved stylesheet
is printed, or written with -o.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			opts := theme.Options{IconDir: iconDir}
			if palettePath != "" {
				overrides, err := theme.LoadOverrides(palettePath)
				if err != nil {
					return err
				}
				logger.Debug("palette overrides loaded", "roles", len(overrides))
				opts.Palette = overrides
			}
			t, err := theme.Dark(opts)
			if err != nil {
				return err
			}
			logger.Info("theme resolved", "selectors", t.Rules.Size())
			if outPath != "" {
				return os.WriteFile(outPath, []byte(t.Text), 0o644)
			}
			fmt.Fprint(cmd.OutOrStdout(), t.Text)
			return nil
		},
	}

	cmd.Flags().StringVar(&iconDir, "icons", "", "icon directory substituted for $ICON_DIR")
	cmd.Flags().StringVar(&palettePath, "palette", "", "TOML file with palette overrides")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write the resolved stylesheet to a file")
	return cmd
}
