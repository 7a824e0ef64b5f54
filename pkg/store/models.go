package store

import "time"

// Snapshot is a single point-in-time backup of a target directory.
// A snapshot is considered committed once its row exists in the database;
// rows are only ever written inside a transaction that also writes every
// FileRef for that snapshot, so a reader never observes a partial one.
type Snapshot struct {
	ID       int64     `gorm:"column:id;primaryKey;autoIncrement"`
	TakenAt  time.Time `gorm:"column:taken_at;not null"`
	FileRefs []FileRef `gorm:"foreignKey:SnapshotID;references:ID"`
}

func (Snapshot) TableName() string {
	return "snapshots"
}

// Content is a single deduplicated blob, addressed by the hex-encoded
// SHA-256 digest of its bytes. Two files with identical contents, whether
// in the same snapshot or different ones, reference the same Content row.
type Content struct {
	Hash string `gorm:"column:hash;primaryKey;size:64"`
	Blob []byte `gorm:"column:blob;not null"`
}

func (Content) TableName() string {
	return "contents"
}

// FileRef binds a relative path within a snapshot to the content it held
// at that point in time. The composite primary key enforces one entry per
// path per snapshot; RelativePath is always forward-slash separated and
// contains no leading slash or "." / ".." segments.
type FileRef struct {
	SnapshotID   int64  `gorm:"column:snapshot_id;primaryKey"`
	RelativePath string `gorm:"column:path;primaryKey;size:4096"`
	Hash         string `gorm:"column:hash;not null;index:files_by_hash"`
}

func (FileRef) TableName() string {
	return "files"
}

// AllModels returns every model managed by AutoMigrate, in an order that
// satisfies their foreign key dependencies.
func AllModels() []any {
	return []any{
		&Snapshot{},
		&Content{},
		&FileRef{},
	}
}
