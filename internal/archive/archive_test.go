package archive

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lehigh-university-libraries/transcriber/internal/export"
	"github.com/lehigh-university-libraries/transcriber/internal/tabletemplate"
)

func writeExport(t *testing.T, dir, image string, page int, edit func(rows [][]string)) {
	t.Helper()
	table := tabletemplate.Generate(page)
	if edit != nil {
		edit(table.Rows)
	}
	if _, err := export.New(dir).Export(table, image); err != nil {
		t.Fatalf("Failed to export %s: %v", image, err)
	}
}

func TestCollect(t *testing.T) {
	dir := t.TempDir()
	writeExport(t, dir, "page002.jpg", 2, nil)
	writeExport(t, dir, "page001.jpg", 1, func(rows [][]string) {
		rows[0][2] = "12.5"
		rows[0][3] = "3"
	})
	if err := os.WriteFile(filepath.Join(dir, "broken_table.csv"), []byte("a,b\n1,2\n"), 0644); err != nil {
		t.Fatal(err)
	}

	rows, summary, err := Collect(dir)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if summary.Files != 2 {
		t.Errorf("Expected 2 files, got %d", summary.Files)
	}
	if len(summary.Skipped) != 1 || summary.Skipped[0] != "broken_table.csv" {
		t.Errorf("Expected broken_table.csv to be skipped, got %v", summary.Skipped)
	}
	if len(rows) != 2*tabletemplate.DaysPerPage {
		t.Fatalf("Expected %d rows, got %d", 2*tabletemplate.DaysPerPage, len(rows))
	}

	first := rows[0]
	if first.Source != "page001_table.csv" {
		t.Errorf("Expected rows sorted by file, got source %s", first.Source)
	}
	if first.Page != "p002.jpg" || first.Date != "1" {
		t.Errorf("Unexpected first row %+v", first)
	}
	if len(first.Values) != 2*tabletemplate.AttributePairs {
		t.Errorf("Expected %d values, got %d", 2*tabletemplate.AttributePairs, len(first.Values))
	}
	if first.Values[0] != "12.5" || first.Values[1] != "3" {
		t.Errorf("Expected edited values to be kept, got %v", first.Values[:2])
	}
}

func TestBuildAndRead(t *testing.T) {
	dir := t.TempDir()
	writeExport(t, dir, "page001.jpg", 1, func(rows [][]string) {
		rows[30][25] = "last"
	})

	output := filepath.Join(t.TempDir(), "tables.parquet")
	summary, err := Build(dir, output)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if summary.Rows != tabletemplate.DaysPerPage {
		t.Errorf("Expected %d rows, got %d", tabletemplate.DaysPerPage, summary.Rows)
	}

	rows, err := Read(output)
	if err != nil {
		t.Fatalf("Unexpected read error: %v", err)
	}
	if len(rows) != tabletemplate.DaysPerPage {
		t.Fatalf("Expected %d rows back, got %d", tabletemplate.DaysPerPage, len(rows))
	}
	last := rows[len(rows)-1]
	if last.Date != "31" {
		t.Errorf("Expected last date 31, got %s", last.Date)
	}
	if got := last.Values[len(last.Values)-1]; got != "last" {
		t.Errorf("Expected last cell to survive, got %q", got)
	}
}
