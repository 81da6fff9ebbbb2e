package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"libshelf/internal/config"
	"libshelf/internal/console"
	"libshelf/internal/logger"
	"libshelf/internal/service"
)

func newRootCommand() *cobra.Command {
	cfg := &config.Config{}
	var configFlag string

	rootCmd := &cobra.Command{
		Use:   "libshelf [root]",
		Short: "Scan, organize, and stage copies of a document library",
		Long: `libshelf walks a directory tree for document files, deduplicates and
categorizes them, optionally lets you reorganize the categories
interactively, and stages per-category copies with an audit log.

Without a root argument it starts the interactive wizard.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				cfg.Root = args[0]
			}
			return run(cfg, configFlag)
		},
	}

	flags := rootCmd.Flags()
	flags.StringSliceVar(&cfg.IncludeExt, "include-ext", nil, "extensions to scan for (overrides the default set)")
	flags.StringSliceVar(&cfg.ExcludeExt, "exclude-ext", nil, "extensions to skip")
	flags.StringVar(&cfg.OutputJSON, "output-json", "", "write results as JSON to this path")
	flags.StringVar(&cfg.OutputText, "output-text", "", "write results as structured text to this path")
	flags.BoolVar(&cfg.Apply, "apply", false, "write output files (default is a dry-run preview)")
	flags.BoolVarP(&cfg.AssumeYes, "yes", "y", false, "auto-approve confirmation gates")
	flags.BoolVar(&cfg.AllowMedia, "allow-media", false, "admit audio/video extensions")
	flags.StringVar(&cfg.CopyDest, "copy-dest", "", "destination root for staged per-category copies")
	flags.StringVar(&cfg.CopyLog, "copy-log", "", "copy audit log path (default <copy-dest>/copy_log.txt)")
	flags.BoolVarP(&cfg.Interactive, "interactive", "i", false, "run the wizard even when a root is given")
	flags.StringVarP(&configFlag, "config", "c", "", "configuration file path")
	flags.StringVar(&cfg.Log.Level, "log-level", "", "log level (debug, info, warn, error)")
	flags.StringVar(&cfg.Log.Format, "log-format", "", "log format (text, json)")
	flags.StringVar(&cfg.Log.File, "log-file", "", "also log to this rotating file")

	return rootCmd
}

func run(cfg *config.Config, configPath string) error {
	if err := config.Load(configPath, cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := initLogger(cfg.Log); err != nil {
		return err
	}
	defer logger.Shutdown()

	tty := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	prompter := console.NewPrompter(console.NewStdio(), cfg.AssumeYes)

	if cfg.Root == "" || cfg.Interactive {
		if !tty {
			return fmt.Errorf("no root directory given and stdin is not a terminal; pass a root argument or run interactively")
		}
		return service.RunWizard(cfg, prompter)
	}

	if tty && !cfg.AssumeYes {
		service.OfferCopyDestination(cfg, prompter)
	}
	return service.NewPipeline(cfg, prompter).Run()
}

func initLogger(settings config.LogSettings) error {
	logConfig := logger.Config{
		Level:  logger.ParseLevel(settings.Level),
		Format: logger.ParseFormat(settings.Format),
	}
	if settings.File != "" {
		logConfig.File = logger.FileConfig{
			Enabled:    true,
			Path:       settings.File,
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		}
	}
	return logger.Init(logConfig)
}
