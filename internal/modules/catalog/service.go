// README: Catalog service holds the loaded snapshot and serves diagnostics.
package catalog

import "context"

// Source produces a catalog snapshot. Implemented by FileSource and
// PostgresSource.
type Source interface {
	Load(ctx context.Context) (*Snapshot, error)
}

type Service struct {
	snapshot *Snapshot
}

// NewService loads the catalog once through the given source. A load failure
// is fatal to startup; there is no lazy reload.
func NewService(ctx context.Context, src Source) (*Service, error) {
	snap, err := src.Load(ctx)
	if err != nil {
		return nil, err
	}
	return &Service{snapshot: snap}, nil
}

// NewServiceFromSnapshot wires a pre-built snapshot, used by tests.
func NewServiceFromSnapshot(snap *Snapshot) *Service {
	return &Service{snapshot: snap}
}

func (s *Service) Snapshot() *Snapshot {
	return s.snapshot
}

// Stats reports row and column counts for the diagnostics endpoint.
func (s *Service) Stats() (rows, cols int) {
	return len(s.snapshot.Rows), len(s.snapshot.Columns)
}
