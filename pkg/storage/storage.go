// Package storage is a tiny key -> blob store over a single bbolt file. It
// plays the role of the client's durable key-value storage: one slot for the
// full engine snapshot, one for the session user.
package storage

import (
	"github.com/pkg/errors"
	bolt "go.etcd.io/bbolt"

	"github.com/videomack/videomack/pkg/constants"
)

type Storage struct {
	db *bolt.DB
}

func Open(path string) (*Storage, error) {
	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "open storage file %s failed", path)
	}
	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(constants.StorageBucket))
		return err
	}); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "create storage bucket failed")
	}
	return &Storage{db: db}, nil
}

// Get returns nil when the key is absent.
func (s *Storage) Get(key string) ([]byte, error) {
	var val []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(constants.StorageBucket)).Get([]byte(key))
		if v != nil {
			val = make([]byte, len(v))
			copy(val, v)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "read key %s failed", key)
	}
	return val, nil
}

func (s *Storage) Put(key string, val []byte) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(constants.StorageBucket)).Put([]byte(key), val)
	})
	if err != nil {
		return errors.Wrapf(err, "write key %s failed", key)
	}
	return nil
}

func (s *Storage) Delete(key string) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(constants.StorageBucket)).Delete([]byte(key))
	})
	if err != nil {
		return errors.Wrapf(err, "delete key %s failed", key)
	}
	return nil
}

func (s *Storage) Close() error {
	return s.db.Close()
}
