package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ewen/folio/internal/config"
	"github.com/ewen/folio/internal/fileutil"
	"github.com/ewen/folio/internal/folder"
	"github.com/ewen/folio/internal/history"
	"github.com/ewen/folio/internal/identity"
	"github.com/ewen/folio/internal/loader"
	"github.com/ewen/folio/internal/logger"
)

// NewLoadCommand creates the 'folio load' command
func NewLoadCommand() *cobra.Command {
	var suffix string
	var noHistory bool

	cmd := &cobra.Command{
		Use:   "load [directory]",
		Short: "Run a full load cycle over one folder or every configured folder",
		Long: `Discover, load, and index the assets of a folder.

With a directory argument, --suffix selects the files to load. Without
arguments, every folder defined in folio.yaml is loaded in order.

Individual file failures are absorbed: the cycle still completes, failed
files are reported, and the index simply ends up smaller. Each completed
cycle is recorded to the history store unless --no-history is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			var folders []config.FolderDef
			if len(args) == 1 {
				if suffix == "" {
					return fmt.Errorf("--suffix is required when loading a directory")
				}
				folders = []config.FolderDef{{Name: args[0], Path: args[0], Suffix: suffix}}
			} else {
				if len(cfg.Folders) == 0 {
					return fmt.Errorf("no folders configured; pass a directory or define folders in %s", config.DefaultPath)
				}
				folders = cfg.Folders
			}

			return runLoad(cmd, cfg, folders, noHistory)
		},
	}

	cmd.Flags().StringVarP(&suffix, "suffix", "s", "", "full filename tail to match, e.g. .spell.yaml")
	cmd.Flags().BoolVar(&noHistory, "no-history", false, "do not record this cycle to the history store")

	return cmd
}

func runLoad(cmd *cobra.Command, cfg *config.Config, folders []config.FolderDef, noHistory bool) error {
	log := newLogger(cmd, cfg)
	out := cmd.OutOrStdout()

	var store *history.Store
	if cfg.History.Enabled && !noHistory {
		var err error
		store, err = history.NewStore(cfg.History.DBPath)
		if err != nil {
			return fmt.Errorf("open history store: %w", err)
		}
		defer store.Close()
	}

	ctx := context.Background()
	for _, def := range folders {
		rep, _, err := loadFolder(ctx, cfg, log, def)
		if err != nil {
			return err
		}
		logger.WriteReport(out, rep)

		if store != nil {
			if err := store.Record(rep); err != nil {
				log.Warnf("history not recorded: %v", err)
			}
		}
	}
	return nil
}

// loadFolder runs one load cycle and returns its report and cycle.
func loadFolder(ctx context.Context, cfg *config.Config, log *logger.Console, def config.FolderDef) (folder.Report, *folder.Cycle[StringID, AssetData], error) {
	deriver := identity.Deriver[StringID]{Suffix: def.Suffix, New: newStringID}
	cycle := folder.NewCycle[StringID, AssetData](def.Path, deriver, log)

	scanner := fileutil.DirScanner{
		Opts: fileutil.Options{Suffix: def.Suffix},
		Warn: func(err error) { log.Warnf("%v", err) },
	}
	ld := loader.NewYAMLLoader[AssetData](cfg.Parallelism)

	if err := cycle.Run(ctx, scanner, ld); err != nil {
		return folder.Report{}, nil, err
	}
	return cycle.Report(), cycle, nil
}
