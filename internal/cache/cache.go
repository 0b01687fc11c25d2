// Package cache persists slow-changing catalog data between sessions.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/mmcdole/marquee/internal/domain"
)

var bucketGenres = []byte("genres")

const keyGenreList = "movie:list"

// GenreStore implements domain.GenreCache using BoltDB.
type GenreStore struct {
	db *bolt.DB
	mu sync.RWMutex // Protects memory cache

	// In-memory cache for hot-path reads (promoted on access)
	cache map[string][]byte
}

// NewGenreStore opens the cache for an API endpoint.
// An empty baseCacheDir yields a memory-only store.
func NewGenreStore(baseCacheDir, apiURL string) (*GenreStore, error) {
	if baseCacheDir == "" {
		return &GenreStore{cache: make(map[string][]byte)}, nil
	}

	dir := baseCacheDir
	if apiURL != "" {
		dir = filepath.Join(baseCacheDir, hashURL(apiURL))
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	dbPath := filepath.Join(dir, "marquee.db")
	db, err := bolt.Open(dbPath, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketGenres)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &GenreStore{db: db, cache: make(map[string][]byte)}, nil
}

func hashURL(apiURL string) string {
	normalized := strings.TrimRight(strings.ToLower(apiURL), "/")
	hash := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(hash[:6])
}

func (s *GenreStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *GenreStore) get(bucket []byte, key string, dest any) bool {
	cacheKey := string(bucket) + ":" + key

	s.mu.RLock()
	if data, ok := s.cache[cacheKey]; ok {
		s.mu.RUnlock()
		return json.Unmarshal(data, dest) == nil
	}
	s.mu.RUnlock()

	if s.db == nil {
		return false
	}

	var data []byte
	s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucket)
		if b == nil {
			return nil
		}
		if v := b.Get([]byte(key)); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})

	if data == nil {
		return false
	}

	// Promote to memory cache
	s.mu.Lock()
	s.cache[cacheKey] = data
	s.mu.Unlock()

	return json.Unmarshal(data, dest) == nil
}

func (s *GenreStore) set(bucket []byte, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	cacheKey := string(bucket) + ":" + key

	s.mu.Lock()
	s.cache[cacheKey] = data
	s.mu.Unlock()

	if s.db == nil {
		return nil // Memory-only mode
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucket).Put([]byte(key), data)
	})
}

func (s *GenreStore) delete(bucket []byte, key string) {
	cacheKey := string(bucket) + ":" + key

	s.mu.Lock()
	delete(s.cache, cacheKey)
	s.mu.Unlock()

	if s.db == nil {
		return
	}

	s.db.Update(func(tx *bolt.Tx) error {
		if b := tx.Bucket(bucket); b != nil {
			b.Delete([]byte(key))
		}
		return nil
	})
}

// GetGenres returns the cached genre catalog, if any
func (s *GenreStore) GetGenres() (domain.CachedGenres, bool) {
	var cached domain.CachedGenres
	ok := s.get(bucketGenres, keyGenreList, &cached)
	return cached, ok
}

// SaveGenres replaces the cached genre catalog
func (s *GenreStore) SaveGenres(genres domain.CachedGenres) error {
	return s.set(bucketGenres, keyGenreList, genres)
}

// InvalidateGenres drops the cached genre catalog
func (s *GenreStore) InvalidateGenres() {
	s.delete(bucketGenres, keyGenreList)
}

var _ domain.GenreCache = (*GenreStore)(nil)
