package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/vito/imp/pkg/imp"
	"github.com/vito/imp/pkg/ioctx"
)

// Config holds the application configuration
type Config struct {
	Debug      bool
	Dump       bool
	Parallel   bool
	NoColor    bool
	ShowTypes  bool
	ConfigFile string
}

func main() {
	ctx := context.Background()
	ctx = ioctx.StdoutToContext(ctx, os.Stdout)
	ctx = ioctx.StderrToContext(ctx, os.Stderr)

	if err := fang.Execute(ctx, rootCmd(),
		fang.WithVersion("v0.1.0"),
		fang.WithCommit("dev"),
		fang.WithErrorHandler(func(w io.Writer, styles fang.Styles, err error) {
			_, _ = fmt.Fprintln(w, err.Error())
		}),
	); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var cfg Config

	cmd := &cobra.Command{
		Use:   "imp [flags] [sample...]",
		Short: "Evaluate and type check the built-in imp programs",
		Long: `imp runs small imperative programs built directly as syntax trees.
Each run prints the program, its result or final state, and whether the
type checker accepts it.`,
		Example: `  # Run every sample
  imp

  # Run two samples concurrently, showing the type environment
  imp --parallel --show-types declarations sum

  # Dump the syntax tree before running
  imp --dump assign-mismatch`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			project, err := loadProject(cmd, &cfg)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg, project, args)
		},
	}

	flags := cmd.PersistentFlags()
	flags.BoolVarP(&cfg.Debug, "debug", "d", false, "Enable debug logging")
	flags.BoolVar(&cfg.NoColor, "no-color", false, "Disable styled output")
	flags.StringVarP(&cfg.ConfigFile, "config", "c", "", "Path to imp.toml (searched upwards from the working directory if not specified)")

	cmd.Flags().BoolVar(&cfg.Dump, "dump", false, "Print each syntax tree before running it")
	cmd.Flags().BoolVarP(&cfg.Parallel, "parallel", "p", false, "Run samples concurrently")
	cmd.Flags().BoolVar(&cfg.ShowTypes, "show-types", false, "Print the type environment after each statement run")

	cmd.AddCommand(listCmd(&cfg), prettyCmd(&cfg), checkCmd(&cfg))

	return cmd
}

// loadProject finds imp.toml, folds it into cfg for every flag the user did
// not set explicitly, and installs the logger.
func loadProject(cmd *cobra.Command, cfg *Config) (*imp.Config, error) {
	var (
		project *imp.Config
		err     error
	)
	if cfg.ConfigFile != "" {
		project, err = imp.LoadConfig(cfg.ConfigFile)
		if err != nil {
			return nil, err
		}
	} else {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		_, project, err = imp.FindConfig(cwd)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", imp.ConfigFileName, err)
		}
	}
	if project == nil {
		project = &imp.Config{}
	}

	flags := cmd.Flags()
	if !flags.Changed("debug") {
		cfg.Debug = project.Debug
	}
	if !flags.Changed("no-color") {
		cfg.NoColor = !project.ColorEnabled()
	}
	if flags.Lookup("parallel") != nil && !flags.Changed("parallel") {
		cfg.Parallel = project.Parallel
	}
	if flags.Lookup("show-types") != nil && !flags.Changed("show-types") {
		cfg.ShowTypes = project.ShowTypes
	}

	setupLogging(cfg.Debug)

	return project, nil
}

func setupLogging(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

func run(ctx context.Context, cfg Config, project *imp.Config, args []string) error {
	names := args
	if len(names) == 0 {
		names = project.Samples
	}
	samples, err := imp.SelectSamples(names)
	if err != nil {
		return err
	}

	r := newRenderer(!cfg.NoColor)

	if cfg.Dump {
		for _, sample := range samples {
			dumpNode(ctx, sample)
		}
	}

	opts := project.RunOptions()
	opts.Banner = r.banner(imp.DefaultBanner)
	opts.ShowTypes = cfg.ShowTypes
	opts.Parallel = cfg.Parallel

	slog.DebugContext(ctx, "running samples", "count", len(samples), "parallel", opts.Parallel)

	return imp.RunAll(ctx, samples, opts)
}
