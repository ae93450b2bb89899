package models

import (
	"slices"
	"time"

	"github.com/lehigh-university-libraries/transcriber/internal/navigation"
)

// TranscriptionSession represents one user's pass over the page catalog
type TranscriptionSession struct {
	ID         string           `json:"id"`
	Navigation navigation.State `json:"navigation"`
	LastExport string           `json:"last_export,omitempty"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

// ImageRecord represents a page image discovered in the catalog directory
type ImageRecord struct {
	Path    string `json:"path"`
	Name    string `json:"name"`
	Caption string `json:"caption"`
}

// Table is a rectangular grid of string cells with a named column header
type Table struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// Clone returns a deep copy of the table
func (t *Table) Clone() *Table {
	clone := &Table{
		Columns: slices.Clone(t.Columns),
		Rows:    make([][]string, len(t.Rows)),
	}
	for i, row := range t.Rows {
		clone.Rows[i] = slices.Clone(row)
	}
	return clone
}

// Equal reports whether both tables hold the same columns and cell values
func (t *Table) Equal(other *Table) bool {
	if t == nil || other == nil {
		return t == other
	}
	if !slices.Equal(t.Columns, other.Columns) || len(t.Rows) != len(other.Rows) {
		return false
	}
	for i := range t.Rows {
		if !slices.Equal(t.Rows[i], other.Rows[i]) {
			return false
		}
	}
	return true
}

