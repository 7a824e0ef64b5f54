package store

import "errors"

// ============================================================
// STORE ERRORS
// ============================================================

var (
	// ErrStoreIO indicates the underlying database could not be reached or
	// a read/write against it failed for reasons outside the schema itself
	// (disk full, connection refused, permission denied, and so on).
	ErrStoreIO = errors.New("store: i/o error")

	// ErrSchema indicates the database does not match the expected schema,
	// typically because it predates a migration or was created by something
	// other than this tool.
	ErrSchema = errors.New("store: schema mismatch")

	// ErrConstraint indicates a write violated a database constraint other
	// than the ones mapped to a more specific error below.
	ErrConstraint = errors.New("store: constraint violation")

	// ErrUnknownSnapshot indicates a snapshot id was referenced that does
	// not exist in the store.
	ErrUnknownSnapshot = errors.New("store: unknown snapshot")
)

// ============================================================
// CONTENT ERRORS
// ============================================================

var (
	// ErrMissingContent indicates a FileRef points at a hash with no
	// corresponding row in contents.
	ErrMissingContent = errors.New("content: missing blob for hash")

	// ErrCorruptContent indicates a content row's blob does not hash to
	// its own primary key.
	ErrCorruptContent = errors.New("content: hash mismatch")

	// ErrTooLarge indicates a file exceeded the configured maximum size
	// and was rejected by the content layer before being stored.
	ErrTooLarge = errors.New("content: file exceeds maximum size")
)

// ============================================================
// FILESYSTEM ERRORS
// ============================================================

// ErrFileIO indicates a failure reading from the target directory during a
// snapshot, or writing into the output directory during a restore. Per the
// single-threaded walk contract, this aborts the whole operation rather
// than skipping the offending file.
var ErrFileIO = errors.New("filesystem i/o error")
