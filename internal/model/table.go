package model

// Table names an output table and fixes its column order. The order is a
// static contract: it never depends on which fields any document carried.
type Table struct {
	Name    string
	Columns []string
}

// Row maps column names to rendered cell values. Keys absent from a row
// render as empty cells; keys outside the table's columns are dropped.
type Row map[string]string

// AllTables lists every output table in emission order.
func AllTables() []Table {
	return []Table{RunsTable, EncountersTable, ParticipantsTable}
}
