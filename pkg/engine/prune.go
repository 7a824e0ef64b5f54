package engine

import (
	"context"
	"time"

	"github.com/jsolano/ridgevault/internal/logger"
	"github.com/jsolano/ridgevault/pkg/store"
	"gorm.io/gorm"
)

// ============================================================
// Types
// ============================================================

// PruneStats reports the outcome of a prune.
type PruneStats struct {
	SnapshotID     int64
	OrphanContents int
	BytesReclaimed int64
}

// ============================================================
// Prune
// ============================================================

// Prune deletes a snapshot's FileRefs and its own row, then reclaims any
// content rows left with no remaining reference. Everything happens in one
// transaction, so a snapshot is never removed without its orphaned content
// being evaluated in the same view, and a failure midway leaves the store
// exactly as it was before the call.
func (e *Engine) Prune(ctx context.Context, snapshotID int64) (*PruneStats, error) {
	start := time.Now()
	stats := &PruneStats{SnapshotID: snapshotID}

	err := e.store.Transaction(ctx, func(tx *gorm.DB) error {
		if err := store.DeleteSnapshot(tx, snapshotID); err != nil {
			return err
		}

		orphans, err := store.OrphanContents(tx)
		if err != nil {
			return err
		}
		if len(orphans) == 0 {
			return nil
		}

		hashes := make([]string, len(orphans))
		for i, o := range orphans {
			hashes[i] = o.Hash
			stats.BytesReclaimed += int64(len(o.Blob))
		}
		stats.OrphanContents = len(orphans)

		return store.DeleteContents(tx, hashes)
	})
	if err != nil {
		logger.Error("prune failed",
			logger.SnapshotID(snapshotID),
			logger.Err(err))
		return nil, err
	}

	logger.Info("prune completed",
		logger.SnapshotID(snapshotID),
		logger.OrphanContents(stats.OrphanContents),
		logger.BytesReclaimed(stats.BytesReclaimed),
		logger.DurationField(logger.Duration(start)))

	e.metrics.addBytesReclaimed(stats.BytesReclaimed)
	return stats, nil
}
