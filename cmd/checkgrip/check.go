package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"checkgrip/internal/config"
	"checkgrip/internal/logging"
	"checkgrip/internal/selector"
)

var listOptions bool

var checkCmd = &cobra.Command{
	Use:   "check <options-file>",
	Short: "Validate an options file",
	Long: `Load an options file (.toml, .yaml/.yml or plain text) and report how
many options it defines. Fails on empty or duplicate option names.
With --list the options are printed in the plain text format.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logging.SetupConsoleLogger(verbosity, cmd.ErrOrStderr())

		opts, err := config.LoadOptions(args[0], cmd.InOrStdin())
		if err != nil {
			return err
		}
		reg, err := selector.NewRegistry(opts)
		if err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}

		defaults := selector.New(reg, false, selector.StrategyDerived).Count()
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d options, %d checked by default\n", args[0], reg.Len(), defaults)

		if listOptions {
			for _, opt := range reg.Options() {
				fmt.Fprintln(cmd.OutOrStdout(), config.FormatTextOption(opt))
			}
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().BoolVarP(&listOptions, "list", "l", false, "Print the options in plain text format")
}
