// README: Catalog source backed by PostgreSQL.
package catalog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresSource reads the whole vehicles table in one pass. Columns are
// discovered from the result set so the table schema can evolve with the
// delimited exports it mirrors; every value is rendered as text, NULL as "".
type PostgresSource struct {
	db *pgxpool.Pool
}

func NewPostgresSource(db *pgxpool.Pool) *PostgresSource {
	return &PostgresSource{db: db}
}

func (p *PostgresSource) Load(ctx context.Context) (*Snapshot, error) {
	rows, err := p.db.Query(ctx, `SELECT * FROM vehicles`)
	if err != nil {
		return nil, fmt.Errorf("catalog: query vehicles: %w", err)
	}
	defer rows.Close()

	var columns []string
	for _, fd := range rows.FieldDescriptions() {
		columns = append(columns, fd.Name)
	}

	snap := &Snapshot{Columns: columns}
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("catalog: scan vehicles row: %w", err)
		}
		rec := make(Record, len(columns))
		for i, col := range columns {
			if i >= len(values) || values[i] == nil {
				rec[col] = ""
				continue
			}
			rec[col] = fmt.Sprintf("%v", values[i])
		}
		snap.Rows = append(snap.Rows, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("catalog: read vehicles: %w", err)
	}

	if err := validateSchema(snap); err != nil {
		return nil, err
	}
	return snap, nil
}
