package engine

import (
	"context"

	"github.com/jsolano/ridgevault/pkg/store"
	"gorm.io/gorm"
)

// SnapshotSummary describes one snapshot for the list operation.
type SnapshotSummary struct {
	ID           int64
	TakenAt      string
	FileCount    int
	TotalSize    int64 // sum of every file's content size, duplicates counted per reference
	DistinctSize int64 // sum of the sizes of hashes referenced only by this snapshot; what pruning it alone would reclaim
}

// ListResult is the result of a list operation.
type ListResult struct {
	Snapshots []SnapshotSummary
	TotalSize int64 // sum of length(blob) over every distinct content row in the store
}

// List returns a summary of every snapshot, oldest first, along with the
// store's total distinct-content size.
func (e *Engine) List(ctx context.Context) (*ListResult, error) {
	snapshots, err := e.store.ListSnapshots(ctx)
	if err != nil {
		return nil, err
	}

	result := &ListResult{Snapshots: make([]SnapshotSummary, 0, len(snapshots))}
	err = e.store.Transaction(ctx, func(tx *gorm.DB) error {
		for _, snap := range snapshots {
			summary, err := summarizeSnapshot(tx, snap)
			if err != nil {
				return err
			}
			result.Snapshots = append(result.Snapshots, summary)
		}

		total, err := store.TotalContentSize(tx)
		if err != nil {
			return err
		}
		result.TotalSize = total
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func summarizeSnapshot(tx *gorm.DB, snap store.Snapshot) (SnapshotSummary, error) {
	refs, err := store.ListFiles(tx, snap.ID)
	if err != nil {
		return SnapshotSummary{}, err
	}

	summary := SnapshotSummary{
		ID:        snap.ID,
		TakenAt:   snap.TakenAt.UTC().Format("2006-01-02 15:04:05"),
		FileCount: len(refs),
	}

	sizes := make(map[string]int64, len(refs))
	for _, ref := range refs {
		size, ok := sizes[ref.Hash]
		if !ok {
			row, err := store.GetContent(tx, ref.Hash)
			if err != nil {
				return SnapshotSummary{}, err
			}
			size = int64(len(row.Blob))
			sizes[ref.Hash] = size
		}
		summary.TotalSize += size
	}

	uniqueHashes, err := store.UniqueHashesForSnapshot(tx, snap.ID)
	if err != nil {
		return SnapshotSummary{}, err
	}
	for _, hash := range uniqueHashes {
		summary.DistinctSize += sizes[hash]
	}

	return summary, nil
}
