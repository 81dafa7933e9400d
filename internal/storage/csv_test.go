package storage

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/JebBesecker03/roguedex-Tableau/internal/model"
)

var testTable = model.Table{
	Name:    "runs",
	Columns: []string{"run_id", "result", "total_battles"},
}

func TestWriteTableColumnContract(t *testing.T) {
	dir := t.TempDir()
	sink := NewCSVStorage(dir)

	rows := []model.Row{
		{"run_id": "r1", "total_battles": "7", "stray_key": "dropped"},
		{"run_id": "r2", "result": "Loss"},
	}
	if err := sink.WriteTable(testTable, rows); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "runs.csv"))
	if err != nil {
		t.Fatalf("read output: %v", err)
	}

	want := "run_id,result,total_battles\nr1,,7\nr2,Loss,\n"
	if string(data) != want {
		t.Fatalf("output mismatch:\ngot  %q\nwant %q", string(data), want)
	}
}

func TestWriteTableEmptyStillHasHeader(t *testing.T) {
	dir := t.TempDir()
	sink := NewCSVStorage(dir)

	if err := sink.WriteTable(testTable, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "runs.csv"))
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(data) != "run_id,result,total_battles\n" {
		t.Fatalf("got %q", string(data))
	}
}

func TestWriteTableCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	sink := NewCSVStorage(dir)

	if err := sink.WriteTable(testTable, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "runs.csv")); err != nil {
		t.Fatalf("expected output file: %v", err)
	}
}

func TestReadTableRoundTrip(t *testing.T) {
	dir := t.TempDir()
	sink := NewCSVStorage(dir)

	rows := []model.Row{
		{"run_id": "r1", "result": "Win", "total_battles": "3"},
		{"run_id": "r2"},
	}
	if err := sink.WriteTable(testTable, rows); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := sink.ReadTable(testTable)
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	want := []model.Row{
		{"run_id": "r1", "result": "Win", "total_battles": "3"},
		{"run_id": "r2"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("round-trip mismatch: %+v != %+v", got, want)
	}
}

func TestReadTableMissingFile(t *testing.T) {
	sink := NewCSVStorage(t.TempDir())
	if _, err := sink.ReadTable(testTable); err == nil {
		t.Fatalf("expected error for missing table file")
	}
}
