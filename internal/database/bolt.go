// Package database provides persistent key value storage for fetched avatars.
package database

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

// BoltKVStore provides simple kv store interface based on boltdb.
// All keys live in a single bucket.
type BoltKVStore struct {
	db         *bbolt.DB
	bucketName []byte
}

// NewBoltKVStore opens (or creates) database file and its bucket.
// Fails after openTimeout if file is locked by another process.
func NewBoltKVStore(dbPath string, bucketName string, openTimeout time.Duration) (*BoltKVStore, error) {
	if bucketName == "" {
		return nil, errors.New("bucket name cannot be empty")
	}

	db, err := bbolt.Open(dbPath, 0600, &bbolt.Options{Timeout: openTimeout})
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	}); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating database bucket: %w", err)
	}

	return &BoltKVStore{
		db:         db,
		bucketName: []byte(bucketName),
	}, nil
}

// ReadKey returns copy of data saved for given key. Returns nil if there's no data stored.
func (s *BoltKVStore) ReadKey(key []byte) ([]byte, error) {
	var data []byte
	if err := s.db.View(func(tx *bbolt.Tx) error {
		if v := tx.Bucket(s.bucketName).Get(key); v != nil {
			// Bolt values are only valid inside transaction.
			data = append([]byte{}, v...)
		}
		return nil
	}); err != nil {
		return nil, fmt.Errorf("reading from db: %w", err)
	}

	return data, nil
}

// UpdateKey stores given data under given key.
func (s *BoltKVStore) UpdateKey(key []byte, data []byte) error {
	if err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(s.bucketName).Put(key, data)
	}); err != nil {
		return fmt.Errorf("writing to db: %w", err)
	}

	return nil
}

// PruneKeys deletes keys with given prefix for which keep returns false.
// Returns number of deleted keys.
func (s *BoltKVStore) PruneKeys(prefix []byte, keep func(value []byte) bool) (int, error) {
	var deleted int
	if err := s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(s.bucketName)
		var expired [][]byte
		c := b.Cursor()
		for k, v := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, v = c.Next() {
			if !keep(v) {
				expired = append(expired, append([]byte{}, k...))
			}
		}
		// Deleting with cursor while iterating skips elements.
		for _, k := range expired {
			if err := b.Delete(k); err != nil {
				return err
			}
		}
		deleted = len(expired)
		return nil
	}); err != nil {
		return 0, fmt.Errorf("pruning db: %w", err)
	}

	return deleted, nil
}

// Close closes database.
func (s *BoltKVStore) Close() error {
	return s.db.Close()
}
