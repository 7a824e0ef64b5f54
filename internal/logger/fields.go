package logger

import "log/slog"

// Standard field keys for structured logging.
// Use these keys consistently across all log statements for log aggregation and querying.
const (
	// ========================================================================
	// Snapshot identity
	// ========================================================================
	KeySnapshotID = "snapshot_id" // Numeric snapshot identifier
	KeyTakenAt    = "taken_at"    // Snapshot timestamp

	// ========================================================================
	// Content addressing
	// ========================================================================
	KeyHash     = "hash"      // SHA-256 content hash (hex)
	KeyRefCount = "ref_count" // Number of FileRefs pointing at a content row

	// ========================================================================
	// Filesystem paths
	// ========================================================================
	KeyPath      = "path"       // Relative path within the target/output directory
	KeyTargetDir = "target_dir" // Directory being walked for a snapshot
	KeyOutputDir = "output_dir" // Directory a restore writes into
	KeyDBPath    = "db_path"    // Path to the backup store database

	// ========================================================================
	// Size & duration
	// ========================================================================
	KeySize       = "size"        // Byte size of a file or content blob
	KeyTotalSize  = "total_size"  // Aggregate byte size across a snapshot
	KeyFileCount  = "file_count"  // Number of files in a snapshot
	KeyDurationMS = "duration_ms" // Operation duration in milliseconds

	// ========================================================================
	// Errors & outcomes
	// ========================================================================
	KeyError     = "error"     // Error message
	KeyErrorKind = "error_kind" // Taxonomy error kind (store_io, schema, corrupt_content, ...)
	KeyOperation = "operation" // Name of the operation being performed (snapshot, restore, prune, check)

	// ========================================================================
	// Prune & check reporting
	// ========================================================================
	KeyOrphanContents = "orphan_contents" // Number of content rows reclaimed by prune
	KeyBytesReclaimed = "bytes_reclaimed" // Bytes freed by prune
	KeyCorruptHashes  = "corrupt_hashes"  // Number of hash mismatches found by check
	KeyMissingHashes  = "missing_hashes"  // Number of FileRef hashes with no content row
)

// ============================================================================
// Field constructors for type safety
// ============================================================================

// SnapshotID returns a slog.Attr for a snapshot identifier.
func SnapshotID(id int64) slog.Attr {
	return slog.Int64(KeySnapshotID, id)
}

// TakenAt returns a slog.Attr for a snapshot timestamp.
func TakenAt(ts string) slog.Attr {
	return slog.String(KeyTakenAt, ts)
}

// Hash returns a slog.Attr for a content hash.
func Hash(h string) slog.Attr {
	return slog.String(KeyHash, h)
}

// RefCount returns a slog.Attr for a content row's reference count.
func RefCount(n int64) slog.Attr {
	return slog.Int64(KeyRefCount, n)
}

// Path returns a slog.Attr for a relative file path.
func Path(p string) slog.Attr {
	return slog.String(KeyPath, p)
}

// TargetDir returns a slog.Attr for the directory being walked.
func TargetDir(p string) slog.Attr {
	return slog.String(KeyTargetDir, p)
}

// OutputDir returns a slog.Attr for a restore's destination directory.
func OutputDir(p string) slog.Attr {
	return slog.String(KeyOutputDir, p)
}

// DBPath returns a slog.Attr for the backup store's database path.
func DBPath(p string) slog.Attr {
	return slog.String(KeyDBPath, p)
}

// Size returns a slog.Attr for a byte size.
func Size(n int64) slog.Attr {
	return slog.Int64(KeySize, n)
}

// TotalSize returns a slog.Attr for an aggregate byte size.
func TotalSize(n int64) slog.Attr {
	return slog.Int64(KeyTotalSize, n)
}

// FileCount returns a slog.Attr for a file count.
func FileCount(n int) slog.Attr {
	return slog.Int(KeyFileCount, n)
}

// DurationField returns a slog.Attr for an operation duration in milliseconds.
func DurationField(ms float64) slog.Attr {
	return slog.Float64(KeyDurationMS, ms)
}

// Err returns a slog.Attr for an error value.
func Err(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}

// ErrorKind returns a slog.Attr for a taxonomy error kind.
func ErrorKind(kind string) slog.Attr {
	return slog.String(KeyErrorKind, kind)
}

// Operation returns a slog.Attr naming the operation in progress.
func Operation(name string) slog.Attr {
	return slog.String(KeyOperation, name)
}

// OrphanContents returns a slog.Attr for the number of reclaimed content rows.
func OrphanContents(n int) slog.Attr {
	return slog.Int(KeyOrphanContents, n)
}

// BytesReclaimed returns a slog.Attr for bytes freed by prune.
func BytesReclaimed(n int64) slog.Attr {
	return slog.Int64(KeyBytesReclaimed, n)
}

// CorruptHashes returns a slog.Attr for the number of hash mismatches found by check.
func CorruptHashes(n int) slog.Attr {
	return slog.Int(KeyCorruptHashes, n)
}

// MissingHashes returns a slog.Attr for the number of missing content blobs found by check.
func MissingHashes(n int) slog.Attr {
	return slog.Int(KeyMissingHashes, n)
}
