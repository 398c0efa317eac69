package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ewen/folio/internal/fileutil"
	"github.com/ewen/folio/internal/identity"
)

// NewScanCommand creates the 'folio scan' command
func NewScanCommand() *cobra.Command {
	var suffix string
	var all bool

	cmd := &cobra.Command{
		Use:   "scan <directory>",
		Short: "Enumerate a folder and show which files would load",
		Long: `Scan a single directory (non-recursively) and classify each file:
  - eligible: matches the suffix and would be loaded, with its derived id
  - hidden/disabled: name starts with "." or "_", never loaded
  - mismatch: does not end with the suffix, ignored

Nothing is loaded; this is a dry run of discovery.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, args[0], suffix, all)
		},
	}

	cmd.Flags().StringVarP(&suffix, "suffix", "s", "", "full filename tail to match, e.g. .spell.yaml (required)")
	cmd.Flags().BoolVar(&all, "all", false, "also list hidden, disabled, and mismatched files")
	cmd.MarkFlagRequired("suffix")

	return cmd
}

func runScan(cmd *cobra.Command, dir, suffix string, all bool) error {
	out := cmd.OutOrStdout()

	opts := fileutil.Options{}
	if !all {
		opts.Suffix = suffix
		opts.SkipHidden = true
	}
	result, err := fileutil.Enumerate(dir, opts)
	if err != nil {
		return err
	}

	deriver := identity.Deriver[StringID]{Suffix: suffix, New: newStringID}
	eligible := 0
	for _, path := range result.Files {
		switch {
		case identity.IsHiddenOrDisabled(path):
			fmt.Fprintf(out, "  skip (hidden/disabled)  %s\n", path)
		default:
			id, ok := deriver.Derive(path)
			if !ok {
				fmt.Fprintf(out, "  skip (suffix mismatch)  %s\n", path)
				continue
			}
			fmt.Fprintf(out, "  load  %-24s %s\n", id, path)
			eligible++
		}
	}

	fmt.Fprintf(out, "%d eligible file(s) in %s with suffix %s\n", eligible, dir, suffix)
	for _, err := range result.Errors {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", err)
	}
	return nil
}
