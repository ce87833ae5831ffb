// README: In-memory vehicle catalog snapshot.
package catalog

import "fmt"

// Record is one catalog row: column name to raw text value. Values are never
// type-coerced at load time; the quote engine interprets fields as needed.
type Record map[string]string

// Snapshot is the full catalog table, loaded once per process and treated as
// read-only shared state afterwards. Safe for unsynchronized concurrent reads.
type Snapshot struct {
	Columns []string
	Rows    []Record
}

func (s *Snapshot) HasColumn(name string) bool {
	for _, c := range s.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// requiredColumns are the pricing columns the quote engine sorts and prices by.
// A catalog missing any of them is a configuration error, caught at load time
// rather than surfacing as nonsense sort orders per request.
var requiredColumns = []string{"capacity", "price_4hr", "prom_price_6hr"}

func validateSchema(s *Snapshot) error {
	for _, col := range requiredColumns {
		if !s.HasColumn(col) {
			return fmt.Errorf("catalog: required column %q missing from schema", col)
		}
	}
	return nil
}
