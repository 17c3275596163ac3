// Command subtext is the rule-based textual pattern scanner: it matches
// free text against keyword taxonomies for frames, masks, spells, and
// prisons, and reports the invisible architecture it finds.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"subtext/internal/analyzer"
	"subtext/internal/archive"
	"subtext/internal/config"
	"subtext/internal/signal"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// app carries the wired-up state shared by all subcommands.
type app struct {
	cfg      *config.Config
	log      *zap.Logger
	tables   *signal.Tables
	analyzer *analyzer.Analyzer
	archive  *archive.Store
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		debug      bool
		a          app
	)

	root := &cobra.Command{
		Use:   "subtext",
		Short: "Scan text for the invisible architecture of control",
		Long: `subtext matches free text against fixed keyword taxonomies —
frames, masks, spells, prisons — scores each finding by signal density,
and assembles the results into a structured map of what shapes the text.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(configPath, debug)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.teardown()
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: search standard locations)")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	root.AddCommand(
		newAnalyzeCmd(&a),
		newDetectCmd(&a, "frames", "Detect frames in a text"),
		newDetectCmd(&a, "masks", "Identify masks in a text"),
		newDetectCmd(&a, "spells", "Analyze spells in a text"),
		newDetectCmd(&a, "prisons", "Map prisons in a text"),
		newCorpusCmd(&a),
		newCollectiveCmd(&a),
		newSelfCmd(&a),
		newTrailCmd(&a),
	)
	return root
}

func (a *app) setup(configPath string, debug bool) error {
	var err error
	if configPath != "" {
		a.cfg, _, err = config.LoadFromPath(configPath)
	} else {
		a.cfg, _, err = config.Load()
	}
	if err != nil {
		return err
	}

	a.log, err = newLogger(a.cfg.LogLevel, debug)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}

	a.tables = signal.Defaults()
	if a.cfg.SignalsPath != "" {
		a.tables, err = signal.LoadFile(a.cfg.SignalsPath)
		if err != nil {
			return fmt.Errorf("failed to load signal tables: %w", err)
		}
		a.log.Info("signal tables replaced", zap.String("path", a.cfg.SignalsPath))
	}

	a.analyzer = analyzer.New(a.tables, analyzer.Options{
		CollectivePath: a.cfg.CollectivePath,
		TrailPath:      a.cfg.TrailPath,
	}, a.log)

	if a.cfg.ArchivePath != "" {
		a.archive, err = archive.New(a.cfg.ArchivePath)
		if err != nil {
			return fmt.Errorf("failed to open archive: %w", err)
		}
		a.analyzer.Collective().AttachArchive(a.archive)
	}
	return nil
}

func (a *app) teardown() {
	if a.archive != nil {
		a.archive.Close()
	}
	if a.log != nil {
		a.log.Sync()
	}
}

func newLogger(level string, debug bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	lvl := zapcore.InfoLevel
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = zapcore.InfoLevel
	}
	if debug {
		lvl = zapcore.DebugLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}
