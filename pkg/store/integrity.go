package store

import (
	"context"
	"fmt"
)

// IntegrityCheck runs the substrate's own consistency check, independent of
// the content-hash verification performed by the check operation. For
// SQLite this is PRAGMA integrity_check; PostgreSQL has no equivalent
// single-statement check, so a simple round trip confirms connectivity.
func (s *Store) IntegrityCheck(ctx context.Context) error {
	switch s.config.Type {
	case DatabaseTypeSQLite:
		var result string
		if err := s.db.WithContext(ctx).Raw("PRAGMA integrity_check").Scan(&result).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrStoreIO, err)
		}
		if result != "ok" {
			return fmt.Errorf("%w: PRAGMA integrity_check reported %q", ErrSchema, result)
		}
		return nil
	case DatabaseTypePostgres:
		var one int
		if err := s.db.WithContext(ctx).Raw("SELECT 1").Scan(&one).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrStoreIO, err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported database type: %s", s.config.Type)
	}
}
