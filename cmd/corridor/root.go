package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/routeforge/corridor/config"
)

// Build-time variables, set from main's init() via -ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

type cliContextKey struct{}

// RootOptions holds the global, persistent CLI flags.
type RootOptions struct {
	ConfigPath string
	LogLevel   string
	Verbose    bool
}

// CLIContext carries the dependencies every subcommand needs, built once
// in PersistentPreRunE and retrieved via GetCLIContext.
type CLIContext struct {
	Config *config.Config
	Logger *zap.Logger
}

// NewRootCommand builds the "corridor" root command with its global flags
// and the run/validate subcommands attached.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:     "corridor",
		Short:   "corridor — a composable-model vehicle routing search engine",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildDate),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return persistentPreRun(cmd, opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.ConfigPath, "config", "c", "corridor.yaml", "config file path")
	pf.StringVar(&opts.LogLevel, "log-level", "", "override log level (debug|info|warn|error)")
	pf.BoolVarP(&opts.Verbose, "verbose", "v", false, "shorthand for --log-level=debug")

	cmd.AddCommand(newRunCommand(), newValidateCommand())
	return cmd
}

// persistentPreRun loads config, builds the logger, and stashes both in
// a CLIContext attached to cmd's context, matching the load-then-stash
// chain every subcommand relies on.
func persistentPreRun(cmd *cobra.Command, opts *RootOptions) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	level := cfg.Log.Level
	if opts.Verbose {
		level = "debug"
	} else if opts.LogLevel != "" {
		level = opts.LogLevel
	}

	logger, err := newLogger(level, cfg.Log.Format)
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}

	ctx := context.WithValue(cmd.Context(), cliContextKey{}, &CLIContext{Config: cfg, Logger: logger})
	cmd.SetContext(ctx)
	return nil
}

// newLogger builds a zap.Logger writing to stderr, at the given level
// ("debug"|"info"|"warn"|"error") and format ("json"|"console").
func newLogger(level, format string) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}
	if strings.EqualFold(format, "console") {
		zc.Encoding = "console"
		zc.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}

	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = zapcore.InfoLevel
	}
	zc.Level = zap.NewAtomicLevelAt(lvl)

	return zc.Build()
}

// GetCLIContext retrieves the CLIContext stashed by persistentPreRun.
// Panics if called before PersistentPreRunE has run, which would be a
// programming error (every subcommand is a child of the root command).
func GetCLIContext(cmd *cobra.Command) *CLIContext {
	ctx, ok := cmd.Context().Value(cliContextKey{}).(*CLIContext)
	if !ok {
		panic("corridor: CLIContext missing from command context")
	}
	return ctx
}
