// Package content implements the content-addressed blob layer: hashing
// file bytes into SHA-256 digests and storing or retrieving the
// corresponding rows through the store package, all within a caller-
// supplied transaction.
package content

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/jsolano/ridgevault/internal/bytesize"
	"github.com/jsolano/ridgevault/pkg/store"
	"gorm.io/gorm"
)

// DefaultMaxSize is the largest single file this tool will snapshot unless
// overridden by configuration.
const DefaultMaxSize = 1 * bytesize.GiB

// Put hashes data and stores it if no content row already exists for that
// hash, returning the hash and whether the row was newly written.
// maxSize of 0 disables the size cap.
func Put(tx *gorm.DB, data []byte, maxSize bytesize.ByteSize) (hash string, wasNew bool, err error) {
	if maxSize > 0 && uint64(len(data)) > uint64(maxSize) {
		return "", false, fmt.Errorf("%w: %d bytes exceeds limit of %s", store.ErrTooLarge, len(data), maxSize)
	}

	sum := sha256.Sum256(data)
	hash = hex.EncodeToString(sum[:])

	wasNew, err = store.PutContentIfAbsent(tx, hash, data)
	if err != nil {
		return "", false, err
	}
	return hash, wasNew, nil
}

// Get retrieves the bytes stored for hash, verifying that they still hash
// to hash itself. A mismatch means the row was corrupted at rest and
// ErrCorruptContent is returned instead of the stale bytes.
func Get(tx *gorm.DB, hash string) ([]byte, error) {
	row, err := store.GetContent(tx, hash)
	if err != nil {
		return nil, err
	}
	if err := Verify(hash, row.Blob); err != nil {
		return nil, err
	}
	return row.Blob, nil
}

// Size returns the byte length of the content stored for hash, without
// verifying it against the hash.
func Size(tx *gorm.DB, hash string) (int64, error) {
	row, err := store.GetContent(tx, hash)
	if err != nil {
		return 0, err
	}
	return int64(len(row.Blob)), nil
}

// Verify reports whether data actually hashes to hash, returning
// ErrCorruptContent if not.
func Verify(hash string, data []byte) error {
	sum := sha256.Sum256(data)
	if hex.EncodeToString(sum[:]) != hash {
		return fmt.Errorf("%w: %s", store.ErrCorruptContent, hash)
	}
	return nil
}
