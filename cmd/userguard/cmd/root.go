// Package cmd holds the userguard command line: offline validation of user
// requests plus a few operator helpers for the service.
package cmd

import (
	"github.com/shandysiswandi/userguard/internal/pkg/config"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
}

// NewRootCommand builds the userguard command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "userguard",
		Short: "Validate user management requests",
		Long: `userguard checks user management requests (create, update, bulk upload,
password, role and visibility changes) against the platform rules.

The HTTP service is started by the main binary of this repository. This tool
runs the same rules offline and helps operating the service.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default: CONFIG_PATH or ./config/config.yaml)")

	root.AddCommand(
		newValidateCommand(opts),
		newOperationsCommand(),
		newTokenCommand(opts),
		newMigrateCommand(opts),
	)

	return root
}

func (o *rootOptions) loadConfig() (config.Config, error) {
	if o.configPath != "" {
		return config.NewViper(o.configPath)
	}
	return config.Load()
}
