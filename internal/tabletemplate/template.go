package tabletemplate

import (
	"strconv"

	"github.com/lehigh-university-libraries/transcriber/internal/models"
)

const (
	// DaysPerPage is the number of date rows on every page
	DaysPerPage = 31
	// AttributePairs is how many g.f/k column pairs follow the Date column
	AttributePairs = 12
)

// Columns returns the fixed header: Page, Date, then g.f-N/k-N for N in 1..12
func Columns() []string {
	columns := make([]string, 0, 2+2*AttributePairs)
	columns = append(columns, "Page", "Date")
	for i := 1; i <= AttributePairs; i++ {
		n := strconv.Itoa(i)
		columns = append(columns, "g.f-"+n, "k-"+n)
	}
	return columns
}

// PageLabel formats the Page cell for a page counter.
// The label is "p00" followed by pageCounter+1, so counter 1 yields "p002.jpg".
// Existing exports use this exact shape; do not pad or drop the offset.
func PageLabel(pageCounter int) string {
	return "p00" + strconv.Itoa(pageCounter+1) + ".jpg"
}

// Generate builds a blank table for the given page counter
func Generate(pageCounter int) *models.Table {
	columns := Columns()
	label := PageLabel(pageCounter)

	table := &models.Table{
		Columns: columns,
		Rows:    make([][]string, 0, DaysPerPage),
	}
	for day := 1; day <= DaysPerPage; day++ {
		row := make([]string, len(columns))
		row[0] = label
		row[1] = strconv.Itoa(day)
		table.Rows = append(table.Rows, row)
	}

	return table
}
