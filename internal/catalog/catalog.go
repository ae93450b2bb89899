package catalog

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lehigh-university-libraries/transcriber/internal/models"
)

// imageExtensions are matched case-sensitively, so "scan.JPG" is not picked up.
var imageExtensions = []string{".jpg", ".jpeg", ".png"}

// Catalog is the ordered, immutable list of page images in one directory
type Catalog struct {
	records []models.ImageRecord
	byName  map[string]int
}

// New loads the catalog for dir
func New(dir string) (*Catalog, error) {
	records, err := Load(dir)
	if err != nil {
		return nil, err
	}

	byName := make(map[string]int, len(records))
	for i, record := range records {
		byName[record.Name] = i
	}

	return &Catalog{
		records: records,
		byName:  byName,
	}, nil
}

// Load lists the page images in dir, sorted by filename.
// Sorting is plain byte order: "img10.jpg" comes before "img2.jpg".
func Load(dir string) ([]models.ImageRecord, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &AccessError{Dir: dir, Err: err}
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if isImage(entry.Name()) {
			names = append(names, entry.Name())
		}
	}

	if len(names) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyCatalog, dir)
	}

	sort.Strings(names)

	records := make([]models.ImageRecord, 0, len(names))
	for _, name := range names {
		records = append(records, models.ImageRecord{
			Path:    filepath.Join(dir, name),
			Name:    name,
			Caption: " " + name,
		})
	}

	slog.Debug("Loaded image catalog", "dir", dir, "images", len(records), "skipped", len(entries)-len(records))

	return records, nil
}

func isImage(name string) bool {
	for _, ext := range imageExtensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// Len returns the number of images
func (c *Catalog) Len() int {
	return len(c.records)
}

// At returns the image at index i
func (c *Catalog) At(i int) (models.ImageRecord, bool) {
	if i < 0 || i >= len(c.records) {
		return models.ImageRecord{}, false
	}
	return c.records[i], true
}

// Lookup finds an image by filename
func (c *Catalog) Lookup(name string) (models.ImageRecord, bool) {
	i, ok := c.byName[name]
	if !ok {
		return models.ImageRecord{}, false
	}
	return c.records[i], true
}

// Records returns a copy of the ordered records
func (c *Catalog) Records() []models.ImageRecord {
	out := make([]models.ImageRecord, len(c.records))
	copy(out, c.records)
	return out
}
