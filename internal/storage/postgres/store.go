package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/JebBesecker03/roguedex-Tableau/internal/model"
)

// primaryKeys fixes the conflict target per mirrored table.
var primaryKeys = map[string][]string{
	"runs":                   {"run_id"},
	"encounters":             {"encounter_id"},
	"encounter_participants": {"encounter_id", "side", "slot_index"},
}

// Store mirrors the emitted tables into Postgres for analysis tooling.
// Columns are TEXT: the CSV output is the typed contract and the mirror
// keeps its rendering verbatim.
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(ctx context.Context, dsn string) (*Store, error) {
	if dsn == "" {
		return nil, fmt.Errorf("pg dsn is required")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	return &Store{pool: pool}, nil
}

func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// EnsureSchema creates any missing mirror tables.
func (s *Store) EnsureSchema(ctx context.Context, tables []model.Table) error {
	for _, table := range tables {
		ddl, err := createTableDDL(table)
		if err != nil {
			return err
		}
		if _, err := s.pool.Exec(ctx, ddl); err != nil {
			return fmt.Errorf("create table %s: %w", table.Name, err)
		}
	}
	return nil
}

// UpsertRows inserts or replaces rows keyed by the table's primary key.
func (s *Store) UpsertRows(ctx context.Context, table model.Table, rows []model.Row) error {
	if len(rows) == 0 {
		return nil
	}

	stmt, err := upsertStatement(table)
	if err != nil {
		return err
	}

	batch := &pgx.Batch{}
	for _, row := range rows {
		args := make([]any, len(table.Columns))
		for i, col := range table.Columns {
			if value, ok := row[col]; ok {
				args[i] = value
			}
		}
		batch.Queue(stmt, args...)
	}

	br := s.pool.SendBatch(ctx, batch)
	defer br.Close()

	for range rows {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("upsert into %s: %w", table.Name, err)
		}
	}
	return nil
}

func createTableDDL(table model.Table) (string, error) {
	pk, ok := primaryKeys[table.Name]
	if !ok {
		return "", fmt.Errorf("unknown table: %s", table.Name)
	}
	cols := make([]string, 0, len(table.Columns))
	for _, col := range table.Columns {
		cols = append(cols, col+" TEXT")
	}
	return fmt.Sprintf(
		"CREATE TABLE IF NOT EXISTS %s (%s, PRIMARY KEY (%s))",
		table.Name, strings.Join(cols, ", "), strings.Join(pk, ", "),
	), nil
}

func upsertStatement(table model.Table) (string, error) {
	pk, ok := primaryKeys[table.Name]
	if !ok {
		return "", fmt.Errorf("unknown table: %s", table.Name)
	}

	key := make(map[string]bool, len(pk))
	for _, col := range pk {
		key[col] = true
	}

	placeholders := make([]string, len(table.Columns))
	updates := make([]string, 0, len(table.Columns))
	for i, col := range table.Columns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		if !key[col] {
			updates = append(updates, fmt.Sprintf("%s = EXCLUDED.%s", col, col))
		}
	}

	return fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) ON CONFLICT (%s) DO UPDATE SET %s",
		table.Name,
		strings.Join(table.Columns, ", "),
		strings.Join(placeholders, ", "),
		strings.Join(pk, ", "),
		strings.Join(updates, ", "),
	), nil
}
