// Package cmd wires the folio CLI: convention-driven discovery, loading, and
// reporting of data-driven game asset folders.
package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for folio
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "folio",
		Short: "Folder-driven asset discovery for game content pipelines",
		Long: `Folio discovers data-driven asset files by filename convention
(<stem><suffix>, e.g. fireball.spell.yaml), derives an identifier from each
stem, loads the files, and builds an id-to-asset index per folder.

Files whose name starts with "." (hidden) or "_" (disabled) are never loaded.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	cmd.PersistentFlags().String("config", "", "path to folio.yaml (default: ./folio.yaml)")
	cmd.PersistentFlags().String("log-level", "", "log verbosity: trace, debug, info, warn, error")

	cmd.AddCommand(NewScanCommand())
	cmd.AddCommand(NewLoadCommand())
	cmd.AddCommand(NewDescribeCommand())
	cmd.AddCommand(NewExportCommand())
	cmd.AddCommand(NewHistoryCommand())

	return cmd
}
