package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/JebBesecker03/roguedex-Tableau/internal/config"
	"github.com/JebBesecker03/roguedex-Tableau/internal/etl"
	"github.com/JebBesecker03/roguedex-Tableau/internal/storage"
)

func main() {
	root := &cobra.Command{
		Use:          "roguedex",
		Short:        "RogueDex run log normalizer",
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "", "config file path")

	normalizeCmd := &cobra.Command{
		Use:   "normalize",
		Short: "Normalize run logs into CSV tables",
		RunE:  runNormalize,
	}

	normalizeCmd.Flags().String("in", "./data/raw_runs", "input directory of per-run JSON files")
	normalizeCmd.Flags().String("out", "./data/processed", "output directory for CSV tables")
	normalizeCmd.Flags().Bool("fail-fast", false, "abort the batch on the first bad document")
	normalizeCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(normalizeCmd)

	loadCmd := &cobra.Command{
		Use:   "load",
		Short: "Load CSV tables into Postgres",
		RunE:  runLoad,
	}

	loadCmd.Flags().String("pg-dsn", "", "Postgres DSN")
	loadCmd.Flags().String("dir", "./data/processed", "directory containing CSV tables")
	loadCmd.Flags().StringSlice("tables", nil, "tables to load (comma-separated, default all)")
	loadCmd.Flags().Int("batch-size", 1000, "batch size for DB writes")
	loadCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(loadCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func runNormalize(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sink := storage.NewCSVStorage(cfg.Out)
	runner := etl.NewRunner(etl.RunConfig{
		InputDir: cfg.In,
		FailFast: cfg.FailFast,
	}, sink, logger)

	logger.Info("normalize start",
		zap.String("in", cfg.In),
		zap.String("out", cfg.Out),
		zap.Bool("fail_fast", cfg.FailFast),
	)

	_, err = runner.Run(ctx)
	return err
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevel()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}

	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}
