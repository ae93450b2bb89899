package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/lehigh-university-libraries/transcriber/internal/models"
)

// EncodeCSV serializes a table as UTF-8 CSV with a header row and no index column
func EncodeCSV(table *models.Table) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(table.Columns); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}
	for i, row := range table.Rows {
		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}

	return buf.Bytes(), nil
}

// DecodeCSV parses CSV produced by EncodeCSV (or a spreadsheet) back into a table.
// The first record is the header.
func DecodeCSV(data []byte) (*models.Table, error) {
	reader := csv.NewReader(bytes.NewReader(data))

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: missing header row", ErrInvalidTable)
	}

	return &models.Table{
		Columns: records[0],
		Rows:    records[1:],
	}, nil
}
