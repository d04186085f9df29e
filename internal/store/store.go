package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/bep/debounce"
	bolt "go.etcd.io/bbolt"
	"go.uber.org/zap"

	"github.com/osint-atlas/atlas/internal/model"
	"github.com/osint-atlas/atlas/internal/review"
)

// Persisted keys owned by this package.
const (
	KeyUser      = "osint-user"
	KeyFavorites = "osint-favorites"
	KeyRecent    = "osint-recent"
	KeyReviews   = "osint-reviews"
)

const bucketName = "osint"

// saveDebounceWindow coalesces bursts of routine review-list saves into a
// single write.
const saveDebounceWindow = 100 * time.Millisecond

// Store is a best-effort key-value adapter over a local bbolt database.
// Every operation contains failures: errors are logged as warnings and
// converted to sentinel values (nil for Get, false for Set/Remove) rather
// than propagated. Application state remains the source of truth; the store
// is a cache that may silently fail to update.
type Store struct {
	db        *bolt.DB
	log       *zap.Logger
	debounced func(func())
}

// Open opens (or creates) the database at path.
func Open(path string, log *zap.Logger) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}

	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	if log == nil {
		log = zap.NewNop()
	}

	return &Store{
		db:        db,
		log:       log,
		debounced: debounce.New(saveDebounceWindow),
	}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the raw value for key, or nil if the key is absent or the
// read fails.
func (s *Store) Get(key string) []byte {
	var value []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(bucketName)).Get([]byte(key))
		if v != nil {
			value = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		s.log.Warn("failed to read store key", zap.String("key", key), zap.Error(err))
		return nil
	}
	return value
}

// Set writes value under key. Returns false on failure.
func (s *Store) Set(key string, value []byte) bool {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).Put([]byte(key), value)
	})
	if err != nil {
		s.log.Warn("failed to write store key", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

// Remove deletes key. Returns false on failure.
func (s *Store) Remove(key string) bool {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).Delete([]byte(key))
	})
	if err != nil {
		s.log.Warn("failed to remove store key", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

// LoadValidReviews hydrates the persisted review list, dropping corrupted
// entries. Total: an absent key, a parse failure or a non-list payload all
// yield an empty list.
func (s *Store) LoadValidReviews() []model.Review {
	return review.Parse(s.Get(KeyReviews))
}

// SaveReviews persists the review collection immediately. Used on the
// submission path, where the caller rolls back on failure.
func (s *Store) SaveReviews(reviews []model.Review) bool {
	data, err := json.Marshal(reviews)
	if err != nil {
		s.log.Warn("failed to encode reviews", zap.Error(err))
		return false
	}
	return s.Set(KeyReviews, data)
}

// ScheduleSaveReviews persists the review collection after a short quiet
// period; repeated calls within the window collapse into one write. Used for
// routine state changes, where a lost write only means "not remembered".
func (s *Store) ScheduleSaveReviews(reviews []model.Review) {
	snapshot := append([]model.Review(nil), reviews...)
	s.debounced(func() {
		s.SaveReviews(snapshot)
	})
}

// LoadIDs reads an ordered id list (favorites, recently viewed). Absent or
// unparseable data yields an empty list.
func (s *Store) LoadIDs(key string) []int {
	data := s.Get(key)
	if data == nil {
		return []int{}
	}
	var ids []int
	if err := json.Unmarshal(data, &ids); err != nil {
		s.log.Warn("failed to parse id list", zap.String("key", key), zap.Error(err))
		return []int{}
	}
	return ids
}

// SaveIDs writes an ordered id list.
func (s *Store) SaveIDs(key string, ids []int) bool {
	data, err := json.Marshal(ids)
	if err != nil {
		s.log.Warn("failed to encode id list", zap.String("key", key), zap.Error(err))
		return false
	}
	return s.Set(key, data)
}

// LoadUser reads the persisted session user, or nil if absent or corrupted.
func (s *Store) LoadUser() *model.User {
	data := s.Get(KeyUser)
	if data == nil {
		return nil
	}
	var u model.User
	if err := json.Unmarshal(data, &u); err != nil {
		s.log.Warn("failed to parse session user", zap.Error(err))
		return nil
	}
	return &u
}

// SaveUser persists the session user.
func (s *Store) SaveUser(u model.User) bool {
	data, err := json.Marshal(u)
	if err != nil {
		s.log.Warn("failed to encode session user", zap.Error(err))
		return false
	}
	return s.Set(KeyUser, data)
}

// RemoveUser deletes the persisted session user.
func (s *Store) RemoveUser() bool {
	return s.Remove(KeyUser)
}

// DefaultPath returns the default database path under the data directory.
func DefaultPath(dataDir string) string {
	return filepath.Join(dataDir, "atlas.db")
}
