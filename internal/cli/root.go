// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jeranaias/cookbot-tui/internal/api"
	"github.com/jeranaias/cookbot-tui/internal/config"
	"github.com/jeranaias/cookbot-tui/internal/logging"
	"github.com/jeranaias/cookbot-tui/internal/ui/app"
	"github.com/jeranaias/cookbot-tui/internal/ui/styles"
)

// Version information, overridden at build time.
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// skipSetup marks commands that run without loading configuration.
const skipSetup = "cookbot/skip-setup"

// globalFlags are the persistent flags shared by every command.
type globalFlags struct {
	backend    string
	configPath string
	theme      string
	verbose    bool
}

// env is the state built once per invocation by the root command.
type env struct {
	flags  globalFlags
	cfg    *config.Config
	logger *zap.Logger
	client *api.Client

	// cfgPath is the file the configuration came from, if any.
	cfgPath string
}

// NewRootCmd builds the full command tree.
func NewRootCmd() *cobra.Command {
	e := &env{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "cookbot",
		Short: "CookBot - Your Digital Sous Chef",
		Long: `CookBot is a terminal client for the CookBot cooking assistant.

Run without arguments to start the full-screen interface. Ask for recipes,
save the ones you like, and copy ingredient lists to the clipboard.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Annotations[skipSetup] == "true" {
				return nil
			}
			return e.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = e.logger.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.runTUI(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&e.flags.backend, "backend", "", "backend base URL (e.g. http://127.0.0.1:5000/api)")
	pf.StringVar(&e.flags.configPath, "config", "", "config file (default ~/.cookbot/config.toml)")
	pf.StringVar(&e.flags.theme, "theme", "", "color theme: dark, light or auto")
	pf.BoolVarP(&e.flags.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newAskCmd(e),
		newChatCmd(e),
		newRecipesCmd(e),
		newContactCmd(e),
		newHealthCmd(e),
		newConfigCmd(e),
		newServeCmd(e),
		newVersionCmd(),
	)
	return root
}

// Execute runs the command tree against os.Args and returns the exit code.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := NewRootCmd()
	if err := root.ExecuteContext(ctx); err != nil {
		p := newPrinter(root.ErrOrStderr())
		p.Failure(displayError(err))
		return ExitCode(err)
	}
	return ExitSuccess
}

// setup loads configuration, applies flags and builds the logger and
// client.
func (e *env) setup(cmd *cobra.Command) error {
	cfg, path, err := e.loadConfig(cmd)
	if err != nil {
		return err
	}

	if e.flags.backend != "" {
		cfg.Backend.URL = e.flags.backend
	}
	if e.flags.theme != "" {
		cfg.UI.Theme = e.flags.theme
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %w", config.ErrInvalidConfig, err)
	}

	logger, err := logging.New(logging.Config{
		Enabled: cfg.Logging.Enabled,
		Path:    cfg.Logging.Path(),
		Level:   cfg.Logging.Level,
		Verbose: e.flags.verbose,
	})
	if err != nil {
		// Logging is diagnostic only; carry on without it.
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", err)
		logger = zap.NewNop()
	}

	e.cfg = cfg
	e.cfgPath = path
	e.logger = logger
	e.client = api.NewClient(cfg.Backend.URL).
		WithTimeout(cfg.Backend.Timeout()).
		WithRateLimit(cfg.Backend.RequestsPerSecond).
		WithLogger(logger)
	config.SetGlobal(cfg)

	logger.Debug("command starting",
		zap.String("command", cmd.CommandPath()),
		zap.String("backend", cfg.Backend.URL),
		zap.String("config", path),
	)
	return nil
}

// loadConfig loads --config when given, otherwise the default file. A
// broken default file is reported and defaults are used.
func (e *env) loadConfig(cmd *cobra.Command) (*config.Config, string, error) {
	if e.flags.configPath != "" {
		if err := config.LoadDotEnv(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", err)
		}
		cfg, err := config.LoadFromPath(e.flags.configPath)
		if err != nil {
			return nil, "", err
		}
		return cfg, e.flags.configPath, nil
	}

	cfg, err := config.Load()
	if cfg == nil {
		return nil, "", err
	}
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v (using defaults)\n", err)
	}

	path, _ := config.ConfigPathTOML()
	if _, statErr := os.Stat(path); statErr != nil {
		path = ""
	}
	return cfg, path, nil
}

// runTUI starts the full-screen interface.
func (e *env) runTUI(cmd *cobra.Command) error {
	if !IsTTY() || !isTerminal(cmd.OutOrStdout()) {
		return &TTYRequiredError{Operation: "run the full-screen interface"}
	}

	m := app.New(app.Options{
		Backend: e.client,
		Config:  e.cfg,
		Logger:  e.logger,
		Theme:   styles.NewTheme(styles.ParseMode(e.cfg.UI.Theme)),
	})
	return app.Run(cmd.Context(), m, e.cfgPath)
}

// =============================================================================
// VERSION
// =============================================================================

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print version information",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipSetup: "true"},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "cookbot %s (commit %s, built %s)\n", Version, GitCommit, BuildDate)
		},
	}
}
