package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/JebBesecker03/roguedex-Tableau/internal/model"
)

// CSVStorage reads and writes tables as <name>.csv files under a
// directory, one header line plus one line per row.
type CSVStorage struct {
	dir string
}

func NewCSVStorage(dir string) *CSVStorage {
	return &CSVStorage{dir: dir}
}

// WriteTable writes the header and every row in the table's static
// column order. Cells for columns a row does not carry are empty; row
// keys outside the column list are dropped. Columns are never inferred
// from the data.
func (s *CSVStorage) WriteTable(table model.Table, rows []model.Row) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	file, err := os.Create(s.tablePath(table))
	if err != nil {
		return fmt.Errorf("create table file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(table.Columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	record := make([]string, len(table.Columns))
	for _, row := range rows {
		for i, col := range table.Columns {
			record[i] = row[col]
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush table: %w", err)
	}
	return nil
}

// ReadTable loads a previously written table back into rows keyed by the
// file's own header. Empty cells are absent from the row.
func (s *CSVStorage) ReadTable(table model.Table) ([]model.Row, error) {
	file, err := os.Open(s.tablePath(table))
	if err != nil {
		return nil, fmt.Errorf("open table file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read table file: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("table %s has no header", table.Name)
	}

	header := records[0]
	rows := make([]model.Row, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(model.Row, len(header))
		for i, col := range header {
			if i < len(record) && record[i] != "" {
				row[col] = record[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (s *CSVStorage) tablePath(table model.Table) string {
	return filepath.Join(s.dir, table.Name+".csv")
}
