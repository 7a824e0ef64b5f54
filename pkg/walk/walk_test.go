package walk

import (
	"io"
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func TestOSWalkerFindsRegularFilesOnly(t *testing.T) {
	root := t.TempDir()

	mustWriteFile(t, filepath.Join(root, "a.txt"), "a")
	mustWriteFile(t, filepath.Join(root, "sub", "b.txt"), "bb")

	if err := os.Mkdir(filepath.Join(root, "emptydir"), 0755); err != nil {
		t.Fatalf("Mkdir failed: %v", err)
	}
	if err := os.Symlink(filepath.Join(root, "a.txt"), filepath.Join(root, "link.txt")); err != nil {
		t.Skipf("symlinks unsupported on this filesystem: %v", err)
	}

	var found []string
	err := (OSWalker{}).Walk(root, func(e Entry) error {
		data, err := io.ReadAll(e.Reader)
		if err != nil {
			return err
		}
		if int64(len(data)) != e.Size {
			t.Errorf("entry %s: size mismatch, read %d bytes but Size was %d", e.RelativePath, len(data), e.Size)
		}
		found = append(found, e.RelativePath)
		return nil
	})
	if err != nil {
		t.Fatalf("Walk failed: %v", err)
	}

	sort.Strings(found)
	want := []string{"a.txt", "sub/b.txt"}
	if len(found) != len(want) {
		t.Fatalf("expected %v, got %v (symlink should have been excluded)", want, found)
	}
	for i := range want {
		if found[i] != want[i] {
			t.Errorf("expected %v, got %v", want, found)
			break
		}
	}
}

func TestOSWalkerRejectsNonDirectoryRoot(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "notadir")
	mustWriteFile(t, file, "x")

	err := (OSWalker{}).Walk(file, func(Entry) error { return nil })
	if err == nil {
		t.Fatalf("expected an error when root is not a directory")
	}
}

func mustWriteFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
}
