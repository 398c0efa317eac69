package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ewen/folio/internal/config"
	"github.com/ewen/folio/internal/manifest"
)

// NewExportCommand creates the 'folio export' command
func NewExportCommand() *cobra.Command {
	var suffix string
	var outPath string

	cmd := &cobra.Command{
		Use:   "export <directory>",
		Short: "Load a folder and write its index to a YAML manifest",
		Long: `Run a load cycle over a folder and export the resulting
id-to-file index as a YAML manifest for downstream pipeline steps.

The manifest is written atomically under an exclusive file lock, so
concurrent pipeline runs never observe a partial file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return runExport(cmd, cfg, args[0], suffix, outPath)
		},
	}

	cmd.Flags().StringVarP(&suffix, "suffix", "s", "", "full filename tail to match, e.g. .spell.yaml (required)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "manifest.yaml", "manifest output path")
	cmd.MarkFlagRequired("suffix")

	return cmd
}

func runExport(cmd *cobra.Command, cfg *config.Config, dir, suffix, outPath string) error {
	log := newLogger(cmd, cfg)
	def := config.FolderDef{Name: dir, Path: dir, Suffix: suffix}

	rep, cycle, err := loadFolder(context.Background(), cfg, log, def)
	if err != nil {
		return err
	}

	m := &manifest.Manifest{
		Folder:      rep.Folder,
		Suffix:      rep.Suffix,
		GeneratedAt: time.Now().UTC(),
		Expected:    rep.Expected,
		Loaded:      rep.Loaded,
		Failed:      rep.FailedPaths,
	}
	for _, id := range cycle.Index().IDs() {
		path, _ := cycle.Source(id)
		m.Assets = append(m.Assets, manifest.Asset{ID: id, Path: path})
	}

	if err := manifest.Write(outPath, m); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %d asset(s) to %s\n", len(m.Assets), outPath)
	return nil
}
