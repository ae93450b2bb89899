package archive

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/lehigh-university-libraries/transcriber/internal/export"
	"github.com/parquet-go/parquet-go"
)

// ExportPattern matches the files written by the export pipeline
const ExportPattern = "*_table.csv"

// Row is one transcribed day of one page
type Row struct {
	Source string   `parquet:"source"`
	Page   string   `parquet:"page"`
	Date   string   `parquet:"date"`
	Values []string `parquet:"values,list"`
}

// Summary describes what Build collected
type Summary struct {
	Files   int
	Skipped []string
	Rows    int
}

// Collect reads every export in dir, in filename order, and flattens them into rows.
// Files that do not match the template shape are skipped and listed in the summary.
func Collect(dir string) ([]Row, *Summary, error) {
	paths, err := filepath.Glob(filepath.Join(dir, ExportPattern))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list exports: %w", err)
	}
	sort.Strings(paths)

	summary := &Summary{}
	var rows []Row

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read %s: %w", path, err)
		}

		table, err := export.DecodeCSV(data)
		if err == nil {
			err = export.Validate(table)
		}
		if err != nil {
			slog.Warn("Skipping export", "file", path, "err", err)
			summary.Skipped = append(summary.Skipped, filepath.Base(path))
			continue
		}

		source := filepath.Base(path)
		for _, record := range table.Rows {
			rows = append(rows, Row{
				Source: source,
				Page:   record[0],
				Date:   record[1],
				Values: append([]string(nil), record[2:]...),
			})
		}
		summary.Files++
	}

	summary.Rows = len(rows)
	return rows, summary, nil
}

// Build collects the exports in dir and writes them to a Parquet file at output
func Build(dir, output string) (*Summary, error) {
	rows, summary, err := Collect(dir)
	if err != nil {
		return nil, err
	}

	file, err := os.Create(output)
	if err != nil {
		return nil, fmt.Errorf("failed to create archive: %w", err)
	}
	defer file.Close()

	writer := parquet.NewGenericWriter[Row](file)
	if _, err := writer.Write(rows); err != nil {
		return nil, fmt.Errorf("failed to write rows: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize archive: %w", err)
	}

	slog.Info("Archive written", "path", output, "files", summary.Files, "rows", summary.Rows, "skipped", len(summary.Skipped))

	return summary, nil
}

// Read loads every row from a Parquet archive
func Read(path string) ([]Row, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive: %w", err)
	}
	defer file.Close()

	reader := parquet.NewGenericReader[Row](file)
	defer reader.Close()

	slog.Debug("Parquet archive opened", "path", path, "num_rows", reader.NumRows())

	rows := make([]Row, 0, reader.NumRows())
	for {
		// fresh buffer per batch: the reader may reuse slice storage of its target rows
		batch := make([]Row, 128)
		n, err := reader.Read(batch)
		rows = append(rows, batch[:n]...)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read rows: %w", err)
		}
	}

	return rows, nil
}
