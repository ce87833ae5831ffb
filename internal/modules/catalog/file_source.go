// README: Catalog source reading a delimited text table from disk.
package catalog

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
)

// FileSource loads the catalog from a tab- or comma-separated file with a
// header row. Rows with the wrong column count are padded or truncated to the
// header width, matching how upstream catalog exports are cleaned.
type FileSource struct {
	path  string
	comma rune
}

func NewFileSource(path string, delimiter string) *FileSource {
	comma := '\t'
	if delimiter == "comma" {
		comma = ','
	}
	return &FileSource{path: path, comma: comma}
}

func (f *FileSource) Load(ctx context.Context) (*Snapshot, error) {
	file, err := os.Open(f.path)
	if err != nil {
		return nil, fmt.Errorf("catalog: open %s: %w", f.path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comma = f.comma
	reader.FieldsPerRecord = -1 // ragged rows handled below
	reader.LazyQuotes = true

	raw, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", f.path, err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("catalog: %s has no header row", f.path)
	}

	header := raw[0]
	snap := &Snapshot{Columns: header}
	for _, row := range raw[1:] {
		rec := make(Record, len(header))
		for i, col := range header {
			if i < len(row) {
				rec[col] = row[i]
			} else {
				rec[col] = ""
			}
		}
		snap.Rows = append(snap.Rows, rec)
	}

	if err := validateSchema(snap); err != nil {
		return nil, err
	}
	return snap, nil
}
