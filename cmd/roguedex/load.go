package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/JebBesecker03/roguedex-Tableau/internal/config"
	"github.com/JebBesecker03/roguedex-Tableau/internal/model"
	"github.com/JebBesecker03/roguedex-Tableau/internal/storage"
	"github.com/JebBesecker03/roguedex-Tableau/internal/storage/postgres"
)

func runLoad(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadDB(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if cfg.PGDSN == "" {
		return fmt.Errorf("pg dsn is required")
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 1000
	}

	tables, err := selectTables(cfg.Tables)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := postgres.NewStore(ctx, cfg.PGDSN)
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}
	defer store.Close()

	if err := store.EnsureSchema(ctx, tables); err != nil {
		return err
	}

	csvStore := storage.NewCSVStorage(cfg.Dir)

	logger.Info("load start",
		zap.String("dir", cfg.Dir),
		zap.Int("tables", len(tables)),
		zap.Int("batch_size", cfg.BatchSize),
	)

	for _, table := range tables {
		rows, err := csvStore.ReadTable(table)
		if err != nil {
			return err
		}

		for start := 0; start < len(rows); start += cfg.BatchSize {
			end := start + cfg.BatchSize
			if end > len(rows) {
				end = len(rows)
			}
			if err := store.UpsertRows(ctx, table, rows[start:end]); err != nil {
				return err
			}
		}

		logger.Info("table loaded", zap.String("table", table.Name), zap.Int("rows", len(rows)))
	}

	return nil
}

// selectTables resolves the --tables filter against the known tables,
// keeping emission order. An empty filter means all tables.
func selectTables(names []string) ([]model.Table, error) {
	all := model.AllTables()
	if len(names) == 0 {
		return all, nil
	}

	byName := make(map[string]model.Table, len(all))
	for _, table := range all {
		byName[table.Name] = table
	}

	wanted := make(map[string]bool, len(names))
	for _, name := range names {
		if _, ok := byName[name]; !ok {
			return nil, fmt.Errorf("unknown table: %s", name)
		}
		wanted[name] = true
	}

	out := make([]model.Table, 0, len(wanted))
	for _, table := range all {
		if wanted[table.Name] {
			out = append(out, table)
		}
	}
	return out, nil
}
