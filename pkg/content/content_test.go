package content

import (
	"context"
	"errors"
	"testing"

	"github.com/jsolano/ridgevault/pkg/store"
	"gorm.io/gorm"
)

func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(&store.Config{Type: store.DatabaseTypeSQLite, SQLite: store.SQLiteConfig{Path: ":memory:"}})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func TestPutAndGetRoundTrip(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	var hash string
	err := st.Transaction(ctx, func(tx *gorm.DB) error {
		var err error
		hash, _, err = Put(tx, []byte("hello world"), 0)
		return err
	})
	if err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	var got []byte
	err = st.Transaction(ctx, func(tx *gorm.DB) error {
		var err error
		got, err = Get(tx, hash)
		return err
	})
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(got) != "hello world" {
		t.Errorf("expected round-tripped bytes to match, got %q", got)
	}
}

func TestPutDeduplicatesIdenticalBytes(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	var hash1, hash2 string
	var wasNew1, wasNew2 bool
	err := st.Transaction(ctx, func(tx *gorm.DB) error {
		var err error
		hash1, wasNew1, err = Put(tx, []byte("same bytes"), 0)
		if err != nil {
			return err
		}
		hash2, wasNew2, err = Put(tx, []byte("same bytes"), 0)
		return err
	})
	if err != nil {
		t.Fatalf("transaction failed: %v", err)
	}
	if hash1 != hash2 {
		t.Errorf("expected identical bytes to hash the same, got %q and %q", hash1, hash2)
	}
	if !wasNew1 || wasNew2 {
		t.Errorf("expected first Put to be new and second to be a duplicate")
	}
}

func TestPutRejectsOversizedFiles(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	err := st.Transaction(ctx, func(tx *gorm.DB) error {
		_, _, err := Put(tx, make([]byte, 100), 10)
		return err
	})
	if !errors.Is(err, store.ErrTooLarge) {
		t.Fatalf("expected ErrTooLarge, got %v", err)
	}
}

func TestGetMissingContent(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	err := st.Transaction(ctx, func(tx *gorm.DB) error {
		_, err := Get(tx, "doesnotexist")
		return err
	})
	if !errors.Is(err, store.ErrMissingContent) {
		t.Fatalf("expected ErrMissingContent, got %v", err)
	}
}

func TestVerifyDetectsCorruption(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	var hash string
	err := st.Transaction(ctx, func(tx *gorm.DB) error {
		var err error
		hash, _, err = Put(tx, []byte("original"), 0)
		if err != nil {
			return err
		}
		return tx.Model(&store.Content{}).Where("hash = ?", hash).Update("blob", []byte("tampered")).Error
	})
	if err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	err = st.Transaction(ctx, func(tx *gorm.DB) error {
		_, err := Get(tx, hash)
		return err
	})
	if !errors.Is(err, store.ErrCorruptContent) {
		t.Fatalf("expected ErrCorruptContent, got %v", err)
	}
}
