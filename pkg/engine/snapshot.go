package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jsolano/ridgevault/internal/logger"
	"github.com/jsolano/ridgevault/pkg/content"
	"github.com/jsolano/ridgevault/pkg/store"
	"github.com/jsolano/ridgevault/pkg/walk"
	"gorm.io/gorm"
)

// Warning describes a single file skipped during a snapshot. It is
// recoverable: the file is left out of the snapshot but the operation
// otherwise continues.
type Warning struct {
	RelativePath string
	Err          error
}

// ============================================================
// Snapshot
// ============================================================

// Snapshot walks targetDir, writes every regular file it finds into the
// content store, and records the result as a new, immutable snapshot. Files
// that exceed the configured size cap are skipped and reported back as
// warnings rather than aborting the snapshot.
//
// The whole operation runs inside a single database transaction: if the
// walk is aborted by a fatal filesystem error partway through, the
// transaction rolls back and no trace of the attempt remains (the
// Idle -> Building -> Aborted path). Only a transaction that reaches its end
// commits the Idle -> Building -> Committed path, at which point the
// snapshot becomes visible to list, restore, prune, and check.
func (e *Engine) Snapshot(ctx context.Context, targetDir string) (int64, []Warning, error) {
	var snapshotID int64
	var warnings []Warning
	fileCount := 0
	start := time.Now()

	err := e.store.Transaction(ctx, func(tx *gorm.DB) error {
		id, err := store.CreateSnapshot(tx, time.Now().UTC())
		if err != nil {
			return err
		}
		snapshotID = id

		return e.walker.Walk(targetDir, func(entry walk.Entry) error {
			data, err := io.ReadAll(entry.Reader)
			if err != nil {
				return fmt.Errorf("%w: %v", store.ErrFileIO, err)
			}

			hash, wasNew, err := content.Put(tx, data, e.maxFileSize)
			if err != nil {
				if errors.Is(err, store.ErrTooLarge) {
					logger.Warn("file skipped: exceeds size cap",
						logger.Path(entry.RelativePath),
						logger.Err(err))
					warnings = append(warnings, Warning{RelativePath: entry.RelativePath, Err: err})
					return nil
				}
				return err
			}
			if !wasNew {
				e.metrics.addBytesDeduped(int64(len(data)))
			}

			if err := store.InsertFileRef(tx, snapshotID, entry.RelativePath, hash); err != nil {
				return err
			}

			fileCount++
			return nil
		})
	})
	if err != nil {
		logger.Error("snapshot aborted",
			logger.TargetDir(targetDir),
			logger.Err(err))
		return 0, nil, err
	}

	logger.Info("snapshot committed",
		logger.SnapshotID(snapshotID),
		logger.TargetDir(targetDir),
		logger.FileCount(fileCount),
		logger.DurationField(logger.Duration(start)))

	e.metrics.observeSnapshot(time.Since(start).Seconds())
	return snapshotID, warnings, nil
}
