// Package walk provides the filesystem traversal contract used by the
// snapshot operation: every regular file under a target directory, paired
// with its canonical relative path.
package walk

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jsolano/ridgevault/pkg/store"
)

// Entry is one file discovered by a walk: its canonical, forward-slash
// relative path and an opened handle to its bytes. Walk closes Reader once
// the callback returns.
type Entry struct {
	RelativePath string
	Reader       io.ReadCloser
	Size         int64
}

// Walker enumerates the regular files under a directory.
type Walker interface {
	// Walk calls fn once per regular file found under root, in a
	// deterministic order. Symlinks, directories, and other special files
	// are skipped. entry.Reader is closed automatically after fn returns;
	// fn must not retain it. If the directory disappears or becomes
	// unreadable mid-walk, Walk returns ErrFileIO rather than a partial
	// result.
	Walk(root string, fn func(Entry) error) error
}

// OSWalker walks the real filesystem via os and filepath.
type OSWalker struct{}

// Walk implements Walker using filepath.WalkDir over the local filesystem.
func (OSWalker) Walk(root string, fn func(Entry) error) error {
	info, err := os.Lstat(root)
	if err != nil {
		return fmt.Errorf("%w: %v", store.ErrFileIO, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", store.ErrFileIO, root)
	}

	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("%w: %v", store.ErrFileIO, err)
		}

		if d.IsDir() {
			return nil
		}

		// Symlinks and other special files (devices, sockets, FIFOs) are
		// excluded; only regular files are backed up.
		info, err := d.Info()
		if err != nil {
			return fmt.Errorf("%w: %v", store.ErrFileIO, err)
		}
		if !info.Mode().IsRegular() {
			return nil
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return fmt.Errorf("%w: %v", store.ErrFileIO, err)
		}
		relPath = filepath.ToSlash(relPath)

		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("%w: %v", store.ErrFileIO, err)
		}
		defer f.Close()

		return fn(Entry{RelativePath: relPath, Reader: f, Size: info.Size()})
	})
}
