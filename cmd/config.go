package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"memberadmin/internal/config"
)

func newConfigCmd(opts *options) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the memberadmin config file.",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default config file.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := config.NewConfigServiceWithPath(opts.configPath)
			path, err := initConfig(svc, force)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Config written to %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing config file")

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print the config file location.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), config.NewConfigServiceWithPath(opts.configPath).Path())
		},
	}

	configCmd.AddCommand(initCmd, pathCmd)
	return configCmd
}

// initConfig writes the defaults unless a file is already there
func initConfig(svc config.ConfigService, force bool) (string, error) {
	path := svc.Path()
	if _, err := os.Stat(path); err == nil && !force {
		return "", fmt.Errorf("config %s already exists (use --force to overwrite)", path)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("failed to check config %s: %w", path, err)
	}

	if err := svc.Save(config.DefaultConfig()); err != nil {
		return "", err
	}
	return path, nil
}
