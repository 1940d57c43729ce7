package kvstore

import (
	"time"

	"webland/pkg/integrations/memcache"
	"webland/pkg/types/storage"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

var (
	ErrNilDatabase = errors.New("database cannot be nil")

	_ storage.Backend = (*Store)(nil)
	_ storage.Backend = (*Memory)(nil)
)

// Entry is one persisted key. Collections store their whole JSON blob
// in Value; scalar settings store a raw string.
type Entry struct {
	Name      string    `gorm:"primaryKey"`
	Value     string    `gorm:"type:text"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Entry) TableName() string {
	return "kv_entries"
}

// Store is the SQLite-backed key-value backend.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) (*Store, error) {
	if db == nil {
		return nil, ErrNilDatabase
	}
	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, errors.Wrap(err, "failed to migrate kv table")
	}
	return &Store{db: db}, nil
}

func (s *Store) Get(key string) (string, bool, error) {
	var entry Entry
	err := s.db.First(&entry, "name = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return entry.Value, true, nil
}

func (s *Store) Set(key, value string) error {
	entry := Entry{Name: key, Value: value, UpdatedAt: time.Now()}
	return s.db.Save(&entry).Error
}

func (s *Store) Delete(key string) error {
	return s.db.Delete(&Entry{}, "name = ?", key).Error
}

func (s *Store) Keys() ([]string, error) {
	var keys []string
	if err := s.db.Model(&Entry{}).Order("name").Pluck("name", &keys).Error; err != nil {
		return nil, err
	}
	return keys, nil
}

// Memory is a map-backed backend for tests and demo mode.
type Memory struct {
	cache *memcache.Cache[string, string]
}

func NewMemory() *Memory {
	return &Memory{cache: memcache.New[string, string]()}
}

func (m *Memory) Get(key string) (string, bool, error) {
	val, ok := m.cache.Get(key)
	return val, ok, nil
}

func (m *Memory) Set(key, value string) error {
	m.cache.Set(key, value)
	return nil
}

func (m *Memory) Delete(key string) error {
	m.cache.Delete(key)
	return nil
}

func (m *Memory) Keys() ([]string, error) {
	return m.cache.Keys(), nil
}
