package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"checkgrip/internal/config"
	"checkgrip/internal/logging"
	"checkgrip/internal/selector"
)

var forceInit bool

var initCmd = &cobra.Command{
	Use:   "init [options-file]",
	Short: "Write a default config file",
	Long: `Write the default configuration to --config (or
$XDG_CONFIG_HOME/checkgrip/config.toml). When an options file is given its
options are validated and stored inline in the config.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logging.SetupConsoleLogger(verbosity, cmd.ErrOrStderr())

		svc := config.NewConfigService(configPath)
		path := svc.Path()

		if _, err := os.Stat(path); err == nil && !forceInit {
			return fmt.Errorf("config already exists at %s (use --force to overwrite)", path)
		} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to check config path: %w", err)
		}

		cfg := config.DefaultConfig()
		if len(args) > 0 {
			opts, err := config.LoadOptions(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			reg, err := selector.NewRegistry(opts)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			cfg.Options = reg.Options()
		}

		if err := svc.SaveToPath(cfg, path); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVarP(&forceInit, "force", "f", false, "Overwrite an existing config file")
}
