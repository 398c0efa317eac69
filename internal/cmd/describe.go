package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ewen/folio/internal/sidecar"
)

// NewDescribeCommand creates the 'folio describe' command
func NewDescribeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "describe <asset-file>",
		Short: "Show the designer notes sidecar for an asset file",
		Long: `Look up the sidecar document next to an asset file and print its
title, tags, and summary. For fireball.spell.yaml the sidecar is
fireball.spell.md: YAML frontmatter plus a markdown body. When the
frontmatter has no summary, the first paragraph of the body is shown.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDescribe(cmd, args[0])
		},
	}
	return cmd
}

func runDescribe(cmd *cobra.Command, assetPath string) error {
	out := cmd.OutOrStdout()

	doc, found, err := sidecar.Load(assetPath)
	if err != nil {
		return err
	}
	if !found {
		fmt.Fprintf(out, "no sidecar for %s (expected %s)\n", assetPath, sidecar.PathFor(assetPath))
		return nil
	}

	fmt.Fprintf(out, "%s\n", doc.Title)
	if len(doc.Tags) > 0 {
		fmt.Fprintf(out, "tags: %s\n", strings.Join(doc.Tags, ", "))
	}
	if doc.Summary != "" {
		fmt.Fprintf(out, "\n%s\n", doc.Summary)
	}
	return nil
}
