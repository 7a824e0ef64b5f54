package engine

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jsolano/ridgevault/internal/logger"
	"github.com/jsolano/ridgevault/pkg/content"
	"github.com/jsolano/ridgevault/pkg/store"
	"gorm.io/gorm"
)

// Restore writes every file recorded under snapshotID into outputDir,
// recreating the relative path layout the snapshot captured. The read side
// of the operation runs inside one transaction so the file list and every
// blob it fetches reflect a single consistent view of the snapshot; the
// filesystem writes themselves are not transactional, matching the spec's
// filesystem write contract.
func (e *Engine) Restore(ctx context.Context, snapshotID int64, outputDir string) error {
	start := time.Now()
	fileCount := 0

	err := e.store.Transaction(ctx, func(tx *gorm.DB) error {
		exists, err := store.SnapshotExists(tx, snapshotID)
		if err != nil {
			return err
		}
		if !exists {
			return store.ErrUnknownSnapshot
		}

		refs, err := store.ListFiles(tx, snapshotID)
		if err != nil {
			return err
		}

		for _, ref := range refs {
			data, err := content.Get(tx, ref.Hash)
			if err != nil {
				return err
			}

			destPath := filepath.Join(outputDir, filepath.FromSlash(ref.RelativePath))
			if err := os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
				return fmt.Errorf("%w: %v", store.ErrFileIO, err)
			}
			if err := os.WriteFile(destPath, data, 0644); err != nil {
				return fmt.Errorf("%w: %v", store.ErrFileIO, err)
			}

			fileCount++
		}

		return nil
	})
	if err != nil {
		logger.Error("restore failed",
			logger.SnapshotID(snapshotID),
			logger.OutputDir(outputDir),
			logger.Err(err))
		return err
	}

	logger.Info("restore completed",
		logger.SnapshotID(snapshotID),
		logger.OutputDir(outputDir),
		logger.FileCount(fileCount),
		logger.DurationField(logger.Duration(start)))

	e.metrics.observeRestore(time.Since(start).Seconds())
	return nil
}
