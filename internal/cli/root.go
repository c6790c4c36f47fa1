package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"countryexplorer/internal/config"
	"countryexplorer/internal/countries"
	"countryexplorer/internal/logging"
	"countryexplorer/internal/ui"
)

// app carries flag values and the resources built from them
type app struct {
	configPath string
	endpoint   string
	logFile    string
	logLevel   string
	filter     string

	cfg    *config.Config
	logger *zap.Logger

	// newFetcher is swapped in tests
	newFetcher func(cfg *config.Config, logger *zap.Logger) countries.Fetcher
}

// NewRootCommand creates the root command
func NewRootCommand(version, commit, date string) *cobra.Command {
	a := &app{
		newFetcher: defaultFetcher,
	}

	cmd := &cobra.Command{
		Use:   "countryexplorer",
		Short: "Browse and filter the world's countries",
		Long: `countryexplorer fetches the list of countries from a GraphQL endpoint and
shows it in an interactive table that can be narrowed by country code.

Run without arguments to start the interactive explorer.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if skipsSetup(cmd) {
				return nil
			}
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInteractive(cmd)
		},
	}

	cmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "config file (default is $XDG_CONFIG_HOME/countryexplorer/config.toml)")
	cmd.PersistentFlags().StringVar(&a.endpoint, "endpoint", "", "GraphQL endpoint serving the countries query")
	cmd.PersistentFlags().StringVar(&a.logFile, "log-file", "", "log file path (empty disables logging)")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	cmd.Flags().StringVarP(&a.filter, "filter", "f", "", "initial country code filter")

	cmd.AddCommand(newListCommand(a))
	cmd.AddCommand(newVersionCommand(version, commit, date))

	return cmd
}

// skipsSetup reports whether cmd only prints static text and needs neither
// config nor logging
func skipsSetup(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "version", "help", "completion":
			return true
		}
	}
	return false
}

func defaultFetcher(cfg *config.Config, logger *zap.Logger) countries.Fetcher {
	return countries.NewClient(cfg.Endpoint, countries.WithLogger(logger))
}

// setup resolves configuration (defaults, file, environment, flags) and builds the logger
func (a *app) setup(cmd *cobra.Command) error {
	config.LoadDotEnv()

	configSvc := config.NewConfigService()
	if a.configPath != "" {
		configSvc = config.NewConfigServiceAt(a.configPath)
	}

	cfg, created, err := loadOrCreateConfig(configSvc)
	if err != nil {
		return err
	}

	if err := config.ApplyEnv(cfg, nil); err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("endpoint") {
		cfg.Endpoint = a.endpoint
	}
	if flags.Changed("log-file") {
		cfg.LogFile = a.logFile
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger

	if created {
		logger.Info("Created config", zap.String("path", configSvc.Path()))
	} else {
		logger.Info("Loaded config", zap.String("path", configSvc.Path()))
	}
	logger.Debug("Resolved config",
		zap.String("endpoint", cfg.Endpoint),
		zap.Duration("timeout", cfg.RequestTimeout()))
	return nil
}

// loadOrCreateConfig loads the config file or writes the defaults on first run.
// Failing to write the defaults is not fatal.
func loadOrCreateConfig(configSvc config.ConfigService) (*config.Config, bool, error) {
	cfg, err := configSvc.LoadFromPath(configSvc.Path())
	if err == nil {
		return cfg, false, nil
	}
	if !errors.Is(err, config.ErrConfigNotFound) {
		return nil, false, err
	}

	cfg = config.DefaultConfig()
	if err := configSvc.Save(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
	return cfg, true, nil
}

// runInteractive runs the TUI until the user quits or a signal arrives
func (a *app) runInteractive(cmd *cobra.Command) error {
	ctx, stop := signal.NotifyContext(commandContext(cmd), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	model := ui.NewModel(ctx, a.cfg, a.newFetcher(a.cfg, a.logger), a.logger)
	if a.filter != "" {
		model.SetFilter(a.filter)
	}

	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if a.cfg.UISettings.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	p := tea.NewProgram(model, opts...)
	model.SetProgram(p)

	a.logger.Info("Starting UI")
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			a.logger.Info("UI stopped by signal")
			return nil
		}
		a.logger.Error("Error running program", zap.Error(err))
		return fmt.Errorf("error running program: %w", err)
	}
	a.logger.Info("UI exited normally")
	return nil
}

// commandContext returns the command context, never nil
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
