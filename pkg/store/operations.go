package store

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// Transaction runs fn inside a single database transaction, rolling back on
// any returned error and committing otherwise. Every multi-row mutation the
// store performs (a snapshot, a prune) goes through this so a crash or
// error mid-operation leaves no partial trace.
func (s *Store) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	err := s.db.WithContext(ctx).Transaction(fn)
	if err != nil && isUniqueConstraintError(err) {
		return ErrConstraint
	}
	return err
}

// CreateSnapshot inserts a new snapshot row and returns its assigned id.
func CreateSnapshot(tx *gorm.DB, takenAt time.Time) (int64, error) {
	row := Snapshot{TakenAt: takenAt}
	if err := tx.Create(&row).Error; err != nil {
		return 0, err
	}
	return row.ID, nil
}

// PutContentIfAbsent inserts a content row for hash if one doesn't already
// exist. It reports whether the row was newly created, which callers use to
// decide whether bytes were actually deduplicated.
func PutContentIfAbsent(tx *gorm.DB, hash string, blob []byte) (wasNew bool, err error) {
	var existing Content
	err = tx.Where("hash = ?", hash).First(&existing).Error
	switch {
	case err == nil:
		return false, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := tx.Create(&Content{Hash: hash, Blob: blob}).Error; err != nil {
			if isUniqueConstraintError(err) {
				// Lost a race with another writer inserting the same hash;
				// the spec's single-writer model means this only happens
				// in tests that open two transactions concurrently.
				return false, nil
			}
			return false, err
		}
		return true, nil
	default:
		return false, err
	}
}

// InsertFileRef records that relativePath held the content identified by
// hash at the time snapshotID was taken.
func InsertFileRef(tx *gorm.DB, snapshotID int64, relativePath, hash string) error {
	return tx.Create(&FileRef{
		SnapshotID:   snapshotID,
		RelativePath: relativePath,
		Hash:         hash,
	}).Error
}

// GetContent fetches the blob stored for hash.
func GetContent(tx *gorm.DB, hash string) (*Content, error) {
	var c Content
	if err := tx.Where("hash = ?", hash).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMissingContent
		}
		return nil, err
	}
	return &c, nil
}

// ListSnapshots returns every snapshot ordered by id, oldest first.
func (s *Store) ListSnapshots(ctx context.Context) ([]Snapshot, error) {
	var rows []Snapshot
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// SnapshotExists reports whether a snapshot with the given id exists.
func SnapshotExists(tx *gorm.DB, snapshotID int64) (bool, error) {
	var count int64
	if err := tx.Model(&Snapshot{}).Where("id = ?", snapshotID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListFiles returns every file recorded under snapshotID, ordered by path.
func ListFiles(tx *gorm.DB, snapshotID int64) ([]FileRef, error) {
	var rows []FileRef
	if err := tx.Where("snapshot_id = ?", snapshotID).Order("path ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// DeleteSnapshot removes a snapshot's FileRefs and its own row. It does not
// touch contents; orphaned content rows are found separately by
// OrphanContents and removed by DeleteContents, so that prune can report
// bytes freed before removing them.
func DeleteSnapshot(tx *gorm.DB, snapshotID int64) error {
	exists, err := SnapshotExists(tx, snapshotID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrUnknownSnapshot
	}
	if err := tx.Where("snapshot_id = ?", snapshotID).Delete(&FileRef{}).Error; err != nil {
		return err
	}
	return tx.Delete(&Snapshot{}, snapshotID).Error
}

// OrphanContents returns every content row no longer referenced by any
// FileRef.
func OrphanContents(tx *gorm.DB) ([]Content, error) {
	var rows []Content
	if err := tx.Where("hash NOT IN (SELECT DISTINCT hash FROM files)").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// DeleteContents removes the content rows for the given hashes.
func DeleteContents(tx *gorm.DB, hashes []string) error {
	if len(hashes) == 0 {
		return nil
	}
	return tx.Where("hash IN ?", hashes).Delete(&Content{}).Error
}

// AllContentHashes returns every hash currently stored in contents.
func AllContentHashes(tx *gorm.DB) ([]string, error) {
	var hashes []string
	if err := tx.Model(&Content{}).Pluck("hash", &hashes).Error; err != nil {
		return nil, err
	}
	return hashes, nil
}

// UniqueHashesForSnapshot returns the hashes referenced by snapshotID that no
// other snapshot also references — the content a prune of snapshotID alone
// would reclaim.
func UniqueHashesForSnapshot(tx *gorm.DB, snapshotID int64) ([]string, error) {
	var hashes []string
	err := tx.Model(&FileRef{}).
		Where("snapshot_id = ? AND hash NOT IN (SELECT DISTINCT hash FROM files WHERE snapshot_id <> ?)", snapshotID, snapshotID).
		Distinct("hash").
		Pluck("hash", &hashes).Error
	if err != nil {
		return nil, err
	}
	return hashes, nil
}

// TotalContentSize returns the sum of every distinct content row's byte
// length, the on-disk footprint of unique data across the whole store.
func TotalContentSize(tx *gorm.DB) (int64, error) {
	var total int64
	err := tx.Model(&Content{}).Select("COALESCE(SUM(LENGTH(blob)), 0)").Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}
