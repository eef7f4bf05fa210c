// Package cli implements the qssvet command-line interface.
//
// qssvet operates on Qt style sheet (QSS) theme files: it vets them
// against the asset contract (hex colors, icon references, selector
// grammar), re-formats them canonically, dumps their rule structure,
// and emits the built-in dark theme with a substituted icon directory
// and optional palette overrides.
//
// All commands support --verbose (-v) for debug-level logging. Loggers
// are passed through context.Context.
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
)

// SetVersion sets the version information displayed by --version.
// Typically called by the main package with values injected via ldflags.
func SetVersion(v, c string) {
	version = v
	commit = c
}

// Execute runs the qssvet CLI and returns an error if any command fails.
func Execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:          "qssvet",
		Short:        "qssvet checks and resolves Qt style sheet themes",
		Long:         `qssvet operates on Qt style sheet (QSS) files: vet checks colors, icon references and selectors; fmt prints the canonical form; dump shows the rule structure; emit resolves the built-in dark theme for an icon directory.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newVetCmd())
	root.AddCommand(newFmtCmd())
	root.AddCommand(newDumpCmd())
	root.AddCommand(newEmitCmd())

	return root.ExecuteContext(context.Background())
}
