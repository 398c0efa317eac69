package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ewen/folio/internal/history"
)

// NewHistoryCommand creates the 'folio history' command group
func NewHistoryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect recorded load-cycle reports",
	}

	cmd.AddCommand(newHistoryShowCommand())
	cmd.AddCommand(newHistoryStatsCommand())
	cmd.AddCommand(newHistoryClearCommand())

	return cmd
}

// openStore opens the history store configured for this command.
func openStore(cmd *cobra.Command) (*history.Store, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	store, err := history.NewStore(cfg.History.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open history store: %w", err)
	}
	return store, nil
}

func newHistoryShowCommand() *cobra.Command {
	var folderPath string
	var limit int

	cmd := &cobra.Command{
		Use:   "show",
		Short: "List recent load cycles, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer store.Close()

			records, err := store.List(folderPath, limit)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(records) == 0 {
				fmt.Fprintln(out, "no load cycles recorded")
				return nil
			}
			for _, rec := range records {
				fmt.Fprintf(out, "%s  %s (suffix %s): %d/%d loaded, %d failed, %s\n",
					rec.StartedAt.Local().Format("2006-01-02 15:04:05"),
					rec.Folder, rec.Suffix, rec.Loaded, rec.Expected, rec.Failed,
					rec.Duration.Round(time.Millisecond))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&folderPath, "folder", "", "only show cycles for this folder path")
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of cycles to show (0 = all)")

	return cmd
}

func newHistoryStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show per-folder aggregates across all recorded cycles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer store.Close()

			stats, err := store.Stats()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(stats) == 0 {
				fmt.Fprintln(out, "no load cycles recorded")
				return nil
			}
			for _, st := range stats {
				fmt.Fprintf(out, "%s: %d cycle(s), %d loaded, %d failed, last run %s\n",
					st.Folder, st.Cycles, st.TotalLoaded, st.TotalFailed,
					st.LastRun.Local().Format("2006-01-02 15:04:05"))
			}
			return nil
		},
	}
}

func newHistoryClearCommand() *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete recorded load cycles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer store.Close()

			var before time.Time
			if days > 0 {
				before = time.Now().AddDate(0, 0, -days)
			}
			removed, err := store.Clear(before)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed %d cycle(s)\n", removed)
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 0, "only delete cycles older than this many days (0 = all)")

	return cmd
}
