package export

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/lehigh-university-libraries/transcriber/internal/models"
	"github.com/lehigh-university-libraries/transcriber/internal/tabletemplate"
)

// ContentType is the MIME type of the download artifact
const ContentType = "text/csv"

// Pipeline writes edited tables next to each other in one output directory
type Pipeline struct {
	dir string
}

// Result describes a finished export
type Result struct {
	FileName    string
	Path        string
	ContentType string
	Message     string
	// Data holds exactly the bytes written to Path
	Data []byte
}

// New returns a pipeline writing into dir
func New(dir string) *Pipeline {
	if dir == "" {
		dir = "."
	}
	return &Pipeline{dir: dir}
}

// FileName derives the export file name for an image: "page007.jpg" -> "page007_table.csv"
func FileName(imagePath string) string {
	base := filepath.Base(imagePath)
	return strings.TrimSuffix(base, filepath.Ext(base)) + "_table.csv"
}

// Validate checks that an edited table still has the template's shape
func Validate(table *models.Table) error {
	if table == nil {
		return fmt.Errorf("%w: no table", ErrInvalidTable)
	}
	columns := tabletemplate.Columns()
	if !slices.Equal(table.Columns, columns) {
		return fmt.Errorf("%w: unexpected columns %v", ErrInvalidTable, table.Columns)
	}
	if len(table.Rows) != tabletemplate.DaysPerPage {
		return fmt.Errorf("%w: expected %d rows, got %d", ErrInvalidTable, tabletemplate.DaysPerPage, len(table.Rows))
	}
	for i, row := range table.Rows {
		if len(row) != len(columns) {
			return fmt.Errorf("%w: row %d has %d cells, expected %d", ErrInvalidTable, i+1, len(row), len(columns))
		}
	}
	return nil
}

// Export serializes the edited table and writes it as <image base>_table.csv.
// An existing file is overwritten in place, so a crash mid-write can leave it truncated,
// and two sessions exporting the same image race with the last writer winning.
func (p *Pipeline) Export(table *models.Table, imagePath string) (*Result, error) {
	if err := Validate(table); err != nil {
		return nil, err
	}

	data, err := EncodeCSV(table)
	if err != nil {
		return nil, err
	}

	fileName := FileName(imagePath)
	path := filepath.Join(p.dir, fileName)

	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, &IOError{Path: path, Err: err}
	}

	slog.Info("Table exported", "image", imagePath, "file", path, "bytes", len(data))

	return &Result{
		FileName:    fileName,
		Path:        path,
		ContentType: ContentType,
		Message:     "Table saved as " + fileName,
		Data:        data,
	}, nil
}
