package storage

import "github.com/JebBesecker03/roguedex-Tableau/internal/model"

// Storage defines a sink for fully materialized tables.
type Storage interface {
	WriteTable(table model.Table, rows []model.Row) error
}
