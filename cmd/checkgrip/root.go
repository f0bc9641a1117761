package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"checkgrip/internal/config"
	"checkgrip/internal/eventbus"
	"checkgrip/internal/logging"
	"checkgrip/internal/selector"
	"checkgrip/internal/ui"
)

var (
	verbosity   int
	configPath  string
	logFile     string
	allSelected bool
	strategy    string
	title       string
	printOnQuit bool
	optionFlags []string

	rootCmd = &cobra.Command{
		Use:   "checkgrip [options-file]",
		Short: "Pick items from a checklist in the terminal",
		Long: `checkgrip shows a list of options as checkboxes under a "Select All"
control. Press enter to accept; the checked option names are printed to
stdout, one per line.

Options come from the file argument ("-" reads names from stdin), from
repeated --option flags, or from the config file.

Plain text options files hold one option per line, "name" or
"name<TAB>label". A leading "+" checks the option by default and lines
starting with "#" are comments. Escape a name that itself starts with
"+", "#" or "\" with a backslash: "\#1" is the option "#1".`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runChecklist,
	}
)

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase log verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Log file (default is $XDG_STATE_HOME/checkgrip/checkgrip.log)")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default is $XDG_CONFIG_HOME/checkgrip/config.toml)")

	rootCmd.Flags().BoolVarP(&allSelected, "all", "a", false, "Start with every option checked")
	rootCmd.Flags().StringVar(&strategy, "strategy", "", "Aggregate strategy: derived or tracked")
	rootCmd.Flags().StringVarP(&title, "title", "t", "", "Title shown above the checklist")
	rootCmd.Flags().BoolVar(&printOnQuit, "print-on-quit", false, "Print the selection even when quitting with q/esc")
	rootCmd.Flags().StringArrayVarP(&optionFlags, "option", "o", nil, "Add an option as name[=label] (repeatable)")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
}

func runChecklist(cmd *cobra.Command, args []string) error {
	closer, err := logging.SetupLogger(verbosity, logFile)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: logging disabled: %v\n", err)
	}
	defer closer.Close()

	bus := eventbus.New()
	defer bus.Close()
	subscribeAuditLog(bus)

	cfg, err := config.NewConfigServiceWithBus(configPath, bus).Load()
	if err != nil {
		return err
	}
	applyFlags(cmd, cfg)

	strat, err := selector.ParseStrategy(cfg.Strategy)
	if err != nil {
		return err
	}

	reg, source, err := loadRegistry(cfg, args, optionFlags, cmd.InOrStdin())
	if err != nil {
		return err
	}
	bus.Publish(eventbus.RegistryLoadedEvent{Source: source, Count: reg.Len()})

	// The checklist draws on stderr and reads the tty so stdout and stdin
	// stay free for pipelines
	out := cmd.ErrOrStderr()
	lr := newTerminalRenderer(out)

	model := ui.NewModel(cfg, selector.New(reg, cfg.AllSelected, strat), bus, lr)
	if os.Getenv(e2eEnv) == "1" {
		model.OnReady(func() {
			fmt.Fprint(out, readyMarker)
		})
	}

	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithOutput(out),
		tea.WithInputTTY(),
	)
	if _, err := p.Run(); err != nil {
		log.Error().Err(err).Msg("Error running program")
		return fmt.Errorf("error running program: %w", err)
	}

	return report(cmd.OutOrStdout(), model.Result(), cfg.UISettings.PrintOnQuit)
}

const (
	e2eEnv      = "CHECKGRIP_E2E_TEST"
	readyMarker = "__READY__"
)

// newTerminalRenderer binds lipgloss to the stream the TUI draws on. The
// background colour query runs here, before Bubble Tea starts reading the
// tty, so it cannot swallow keystrokes. Under e2e the profile is fixed and
// no query is sent.
func newTerminalRenderer(w io.Writer) *lipgloss.Renderer {
	lr := lipgloss.NewRenderer(w)
	if os.Getenv(e2eEnv) == "1" {
		lr.SetColorProfile(termenv.ANSI256)
		lr.SetHasDarkBackground(true)
	} else {
		lr.HasDarkBackground()
	}
	lipgloss.SetDefaultRenderer(lr)
	return lr
}

// applyFlags overrides config values with flags the user actually set
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("all") {
		cfg.AllSelected = allSelected
	}
	if flags.Changed("strategy") {
		cfg.Strategy = strategy
	}
	if flags.Changed("title") {
		cfg.Title = title
	}
	if flags.Changed("print-on-quit") {
		cfg.UISettings.PrintOnQuit = printOnQuit
	}
}

// loadRegistry picks the option source: file argument, then --option flags,
// then the config's options_file, then its inline options
func loadRegistry(cfg *config.Config, args, flagOpts []string, stdin io.Reader) (*selector.Registry, string, error) {
	var (
		opts   []selector.Option
		source string
		err    error
	)

	switch {
	case len(args) > 0:
		source = args[0]
		opts, err = config.LoadOptions(source, stdin)
	case len(flagOpts) > 0:
		source = "flags"
		for _, f := range flagOpts {
			opts = append(opts, config.ParseOptionFlag(f))
		}
	case cfg.OptionsFile != "":
		source = cfg.OptionsFile
		opts, err = config.LoadOptions(source, stdin)
	default:
		source = "config"
		opts = cfg.Options
	}
	if err != nil {
		return nil, source, err
	}

	reg, err := selector.NewRegistry(opts)
	if err != nil {
		return nil, source, fmt.Errorf("invalid options from %s: %w", source, err)
	}
	return reg, source, nil
}

// report prints the selection and maps the outcome to an exit code
func report(w io.Writer, res ui.Result, printOnQuit bool) error {
	if res.Aborted {
		return exitError{code: 130}
	}
	if !res.Accepted && !printOnQuit {
		return exitError{code: 1}
	}

	for _, name := range res.Selected {
		if _, err := fmt.Fprintln(w, name); err != nil {
			return err
		}
	}
	return nil
}

// subscribeAuditLog writes every selection event to the log file
func subscribeAuditLog(bus eventbus.EventBus) {
	logger := logging.GetLogger("audit")

	bus.Subscribe(eventbus.EventConfigLoaded, func(e eventbus.DomainEvent) {
		ev := e.(eventbus.ConfigLoadedEvent)
		logger.Info().Str("path", ev.Path).Bool("found", ev.Found).Msg("Config loaded")
	})
	bus.Subscribe(eventbus.EventRegistryLoaded, func(e eventbus.DomainEvent) {
		ev := e.(eventbus.RegistryLoadedEvent)
		logger.Info().Str("source", ev.Source).Int("count", ev.Count).Msg("Options loaded")
	})
	bus.Subscribe(eventbus.EventOptionToggled, func(e eventbus.DomainEvent) {
		ev := e.(eventbus.OptionToggledEvent)
		logger.Info().Str("option", ev.Name).Bool("checked", ev.Checked).Bool("all", ev.AllSelected).Msg("Option toggled")
	})
	bus.Subscribe(eventbus.EventAllToggled, func(e eventbus.DomainEvent) {
		ev := e.(eventbus.AllToggledEvent)
		logger.Info().Bool("checked", ev.Checked).Int("count", ev.Count).Msg("All toggled")
	})
	bus.Subscribe(eventbus.EventSelectionDone, func(e eventbus.DomainEvent) {
		ev := e.(eventbus.SelectionDoneEvent)
		logger.Info().Bool("accepted", ev.Accepted).Strs("selected", ev.Selected).Msg("Selection done")
	})
	bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
		ev := e.(eventbus.ErrorEvent)
		logger.Error().Err(ev.Err).Msg(ev.Message)
	})
}
