package state

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

const (
	cursorBucket     = "cursors"
	cursorValueBytes = 8
)

// boltStore implements a Store backed by BoltDB.
type boltStore struct {
	db *bolt.DB
}

// openBolt initializes a BoltDB-backed Store.
func openBolt(path string) (Store, error) {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create state directory: %w", err)
		}
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bbolt db: %w", err)
	}
	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(cursorBucket))
		return err
	}); err != nil {
		db.Close()
		return nil, fmt.Errorf("init bucket: %w", err)
	}

	return &boltStore{db: db}, nil
}

// Close closes the BoltDB store.
func (b *boltStore) Close() error {
	if b == nil || b.db == nil {
		return nil
	}
	return b.db.Close()
}

// Cursor reads the stored id for stream.
func (b *boltStore) Cursor(stream string) (int64, error) {
	if b == nil || b.db == nil {
		return 0, nil
	}

	var id int64
	err := b.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(cursorBucket))
		if bucket == nil {
			return fmt.Errorf("cursor bucket missing")
		}
		value := bucket.Get([]byte(stream))
		if value == nil {
			return nil
		}
		decoded, ok := decodeCursor(value)
		if !ok {
			return fmt.Errorf("corrupt cursor for %s", stream)
		}
		id = decoded
		return nil
	})
	return id, err
}

// SaveCursor stores id for stream unless a higher id is already stored.
func (b *boltStore) SaveCursor(stream string, id int64) error {
	if b == nil || b.db == nil {
		return nil
	}
	if id < 0 {
		return fmt.Errorf("negative cursor %d for %s", id, stream)
	}

	return b.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(cursorBucket))
		if bucket == nil {
			return fmt.Errorf("cursor bucket missing")
		}
		key := []byte(stream)
		if current, ok := decodeCursor(bucket.Get(key)); ok && current >= id {
			return nil
		}
		buf := make([]byte, cursorValueBytes)
		binary.BigEndian.PutUint64(buf, uint64(id))
		return bucket.Put(key, buf)
	})
}

// decodeCursor decodes a stored id. A missing or malformed value reports false.
func decodeCursor(value []byte) (int64, bool) {
	if len(value) != cursorValueBytes {
		return 0, false
	}
	return int64(binary.BigEndian.Uint64(value)), true
}
