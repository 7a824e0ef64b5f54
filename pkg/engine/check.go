package engine

import (
	"context"
	"time"

	"github.com/jsolano/ridgevault/internal/logger"
	"github.com/jsolano/ridgevault/pkg/content"
	"github.com/jsolano/ridgevault/pkg/store"
	"gorm.io/gorm"
)

// ============================================================
// Types
// ============================================================

// CheckReport summarizes the result of a check.
type CheckReport struct {
	ContentsScanned int
	CorruptHashes   []string // content rows whose blob no longer hashes to their key
	MissingHashes   []string // FileRef hashes with no corresponding content row
}

// OK reports whether the check found no problems.
func (r *CheckReport) OK() bool {
	return len(r.CorruptHashes) == 0 && len(r.MissingHashes) == 0
}

// ============================================================
// Check
// ============================================================

// Check verifies the database's own consistency (via the store's substrate
// integrity check) and then verifies that every content row still hashes
// to its own key, and that every FileRef's hash resolves to a content row.
func (e *Engine) Check(ctx context.Context) (*CheckReport, error) {
	start := time.Now()

	if err := e.store.IntegrityCheck(ctx); err != nil {
		logger.Error("check failed", logger.Err(err))
		return nil, err
	}

	report := &CheckReport{}

	err := e.store.Transaction(ctx, func(tx *gorm.DB) error {
		hashes, err := store.AllContentHashes(tx)
		if err != nil {
			return err
		}
		report.ContentsScanned = len(hashes)

		for _, hash := range hashes {
			row, err := store.GetContent(tx, hash)
			if err != nil {
				return err
			}
			if err := content.Verify(hash, row.Blob); err != nil {
				report.CorruptHashes = append(report.CorruptHashes, hash)
			}
		}

		var missing []string
		if err := tx.Raw(
			"SELECT DISTINCT hash FROM files WHERE hash NOT IN (SELECT hash FROM contents)",
		).Scan(&missing).Error; err != nil {
			return err
		}
		report.MissingHashes = missing

		return nil
	})
	if err != nil {
		logger.Error("check failed", logger.Err(err))
		return nil, err
	}

	logger.Info("check completed",
		logger.FileCount(report.ContentsScanned),
		logger.CorruptHashes(len(report.CorruptHashes)),
		logger.MissingHashes(len(report.MissingHashes)),
		logger.DurationField(logger.Duration(start)))

	e.metrics.setCorruptHashes(len(report.CorruptHashes))
	return report, nil
}
