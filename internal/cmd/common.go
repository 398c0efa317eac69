package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ewen/folio/internal/config"
	"github.com/ewen/folio/internal/logger"
)

// AssetData is the CLI's opaque asset reference: the decoded YAML document of
// one asset file. The pipeline never interprets it beyond display.
type AssetData map[string]interface{}

// StringID is the CLI's identifier type: the stem itself.
type StringID = string

// newStringID is the one-way stem-to-identifier conversion for CLI cycles.
func newStringID(stem string) StringID { return stem }

// loadConfig resolves the effective configuration for a command, honoring the
// persistent --config and --log-level flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.DefaultPath
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.LogLevel = level
	}
	return cfg, nil
}

// newLogger builds the console logger for a command from config.
func newLogger(cmd *cobra.Command, cfg *config.Config) *logger.Console {
	return logger.NewConsole(cmd.ErrOrStderr(), cfg.LogLevel)
}
