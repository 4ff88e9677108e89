// Package store is the local relational store behind the VideoMack UI. Six
// collections (users, videos, comments, messages, subscriptions, watch_later)
// live in an in-memory SQLite engine; after every mutation the whole engine
// is serialized and written into the durable client storage slot, the same
// cycle the browser build runs against localStorage.
package store

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/videomack/videomack/pkg/constants"
	"github.com/videomack/videomack/pkg/errno"
	"github.com/videomack/videomack/pkg/storage"
	"github.com/videomack/videomack/pkg/utils"
)

// Fixed schema, applied on every cold start. Columns mirror the entity
// structs in pkg/model; there is no versioning, a schema change means
// resetting the snapshot and session keys.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		full_name TEXT,
		username TEXT,
		email TEXT,
		phone_number TEXT,
		country TEXT,
		country_code TEXT,
		bio TEXT,
		is_authenticated INTEGER,
		is_activated INTEGER,
		is_verified INTEGER,
		verification_type TEXT,
		avatar TEXT,
		cover_photo TEXT,
		subscriber_count INTEGER DEFAULT 0,
		following_count INTEGER DEFAULT 0,
		wallet_balance REAL DEFAULT 0.0,
		is_two_factor_enabled INTEGER DEFAULT 0,
		badges TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS videos (
		id TEXT PRIMARY KEY,
		title TEXT,
		artist TEXT,
		user_id TEXT,
		views INTEGER,
		duration TEXT,
		thumbnail TEXT,
		category TEXT,
		liked INTEGER,
		uploaded_at TEXT,
		description TEXT,
		is_live INTEGER DEFAULT 0,
		likes_count INTEGER DEFAULT 0,
		reposts_count INTEGER DEFAULT 0,
		shares_count INTEGER DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS comments (
		id TEXT PRIMARY KEY,
		video_id TEXT,
		user_id TEXT,
		username TEXT,
		content TEXT,
		created_at TEXT,
		parent_id TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS messages (
		id TEXT PRIMARY KEY,
		sender_id TEXT,
		receiver_id TEXT,
		content TEXT,
		timestamp TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS subscriptions (
		user_id TEXT,
		subscriber_id TEXT,
		PRIMARY KEY (user_id, subscriber_id)
	)`,
	`CREATE TABLE IF NOT EXISTS watch_later (
		user_id TEXT,
		video_id TEXT,
		PRIMARY KEY (user_id, video_id)
	)`,
}

var tables = []string{
	constants.UserTableName,
	constants.VideoTableName,
	constants.CommentTableName,
	constants.MessageTableName,
	constants.SubscriptionTableName,
	constants.WatchLaterTableName,
}

// Store owns the engine and the snapshot slot exclusively. Every read hands
// back detached copies, never references into engine state. The execution
// model is synchronous per call; the mutex only keeps the handle safe if a
// caller shares it across goroutines anyway.
type Store struct {
	mu sync.Mutex
	db *gorm.DB
	kv *storage.Storage
}

var defaultStore *Store

// Init is the idempotent bootstrap: the first call constructs the engine
// (restoring a prior snapshot when one exists), later calls return the same
// handle. Callers block the UI until this has succeeded once.
func Init(kv *storage.Storage) (*Store, error) {
	if defaultStore != nil {
		return defaultStore, nil
	}
	s, err := Open(kv)
	if err != nil {
		return nil, err
	}
	defaultStore = s
	return s, nil
}

// Open builds a fresh store on top of the given storage. A failure to
// construct the engine, or a snapshot that no longer deserializes, is fatal:
// silently starting empty would drop the user's data without warning.
func Open(kv *storage.Storage) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, errors.Wrapf(errno.StoreUnavailableErr, "open engine failed: %v", err)
	}
	// One in-memory SQLite database per connection; pin the pool to a single
	// connection so every session sees the same engine.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrapf(errno.StoreUnavailableErr, "engine pool unavailable: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	s := &Store{db: db, kv: kv}

	for _, stmt := range schema {
		if err := s.db.Exec(stmt).Error; err != nil {
			return nil, errors.Wrapf(errno.StoreUnavailableErr, "apply schema failed: %v", err)
		}
	}

	snapshot, err := kv.Get(constants.SnapshotKey)
	if err != nil {
		return nil, errors.Wrapf(errno.StoreUnavailableErr, "read snapshot failed: %v", err)
	}
	if snapshot != nil {
		if err := s.restore(snapshot); err != nil {
			return nil, errors.Wrapf(errno.SnapshotCorruptErr, "restore snapshot failed: %v", err)
		}
	}

	s.persist()
	return s, nil
}

// persist serializes the entire engine and replaces the snapshot slot. It
// runs after every mutation, no batching. A failed persist leaves memory and
// durable state diverged until the next successful cycle, so it logs instead
// of failing the mutation.
func (s *Store) persist() {
	data, err := s.export()
	if err != nil {
		logrus.Warnf("snapshot export failed: %v", err)
		return
	}
	if err := s.kv.Put(constants.SnapshotKey, data); err != nil {
		logrus.Warnf("snapshot write failed: %v", err)
	}
}

// export runs VACUUM INTO a scratch file and reads the bytes back. That is
// the closest database/sql gets to sql.js's Database.export().
func (s *Store) export() ([]byte, error) {
	path := filepath.Join(os.TempDir(), "videomack-export-"+utils.GenerateId()+".db")
	defer os.Remove(path)

	if err := s.db.Exec("VACUUM INTO ?", path).Error; err != nil {
		return nil, errors.Wrap(err, "vacuum into scratch file failed")
	}
	return os.ReadFile(path)
}

// restore attaches the snapshot bytes as a second database and copies every
// table into the fresh in-memory engine.
func (s *Store) restore(snapshot []byte) error {
	path := filepath.Join(os.TempDir(), "videomack-restore-"+utils.GenerateId()+".db")
	if err := os.WriteFile(path, snapshot, 0600); err != nil {
		return errors.Wrap(err, "write scratch snapshot failed")
	}
	defer os.Remove(path)

	if err := s.db.Exec("ATTACH DATABASE ? AS snap", path).Error; err != nil {
		return errors.Wrap(err, "attach snapshot failed")
	}
	for _, table := range tables {
		if err := s.db.Exec("INSERT INTO " + table + " SELECT * FROM snap." + table).Error; err != nil {
			s.db.Exec("DETACH DATABASE snap")
			return errors.Wrapf(err, "copy table %s failed", table)
		}
	}
	return s.db.Exec("DETACH DATABASE snap").Error
}
