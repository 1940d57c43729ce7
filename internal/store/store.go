package store

import (
	"encoding/json"
	"log/slog"
	"sync"

	"webland/pkg/types/storage"

	"github.com/pkg/errors"
)

var (
	ErrDuplicateID = errors.New("record id already present")
	ErrNotFound    = errors.New("record not found")
	ErrNilBackend  = errors.New("backend cannot be nil")
)

// Record is anything a Collection can hold.
type Record interface {
	RecordID() string
}

// Collection is typed CRUD over an ordered list of records, persisted
// as one JSON blob under the collection's name in the backend.
//
// Every mutation is a full read-modify-write of the blob under the
// collection's mutex. Construct exactly one Collection per name and
// share it: two instances over the same name would clobber each other's
// writes. A mutation counts as complete only once the backend write
// succeeded.
type Collection[T Record] struct {
	name    string
	backend storage.Backend
	logger  *slog.Logger
	mu      sync.Mutex
}

func NewCollection[T Record](name string, backend storage.Backend, logger *slog.Logger) (*Collection[T], error) {
	if backend == nil {
		return nil, ErrNilBackend
	}
	if name == "" {
		return nil, errors.New("collection name cannot be empty")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Collection[T]{name: name, backend: backend, logger: logger}, nil
}

func (c *Collection[T]) Name() string {
	return c.name
}

// load reads and decodes the blob. Absent or malformed blobs yield an
// empty list: a corrupt collection renders as empty rather than
// breaking the panel.
func (c *Collection[T]) load() []T {
	raw, ok, err := c.backend.Get(c.name)
	if err != nil {
		c.logger.Error("backend read failed", "collection", c.name, "error", err)
		return nil
	}
	if !ok || raw == "" {
		return nil
	}

	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		c.logger.Debug("discarding malformed collection blob", "collection", c.name, "error", err)
		return nil
	}
	return items
}

func (c *Collection[T]) persist(items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return errors.Wrapf(err, "failed to encode collection %s", c.name)
	}
	if err := c.backend.Set(c.name, string(data)); err != nil {
		return errors.Wrapf(err, "failed to persist collection %s", c.name)
	}
	return nil
}

// Load returns the records in insertion order.
func (c *Collection[T]) Load() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load()
}

// Add appends a record. The caller supplies a fresh unique id; an id
// already present in the collection is rejected.
func (c *Collection[T]) Add(rec T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := c.load()
	for _, item := range items {
		if item.RecordID() == rec.RecordID() {
			return errors.Wrapf(ErrDuplicateID, "collection %s id %s", c.name, rec.RecordID())
		}
	}
	return c.persist(append(items, rec))
}

// Update applies mutate to the record with the given id and persists.
func (c *Collection[T]) Update(id string, mutate func(*T)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := c.load()
	for i := range items {
		if items[i].RecordID() == id {
			mutate(&items[i])
			return c.persist(items)
		}
	}
	return errors.Wrapf(ErrNotFound, "collection %s id %s", c.name, id)
}

// Remove deletes the record with the given id. Removing an absent id is
// a successful no-op, and the blob is not rewritten.
func (c *Collection[T]) Remove(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := c.load()
	for i, item := range items {
		if item.RecordID() == id {
			return c.persist(append(items[:i], items[i+1:]...))
		}
	}
	return nil
}

// Mutate applies apply to the current record list and persists the
// result, all under the collection's mutex. The refresh merges go
// through here: deriving the new list from a snapshot taken before a
// slow fetch would write over any add or remove that landed in the
// meantime.
func (c *Collection[T]) Mutate(apply func([]T) []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := apply(c.load())
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if _, dup := seen[item.RecordID()]; dup {
			return errors.Wrapf(ErrDuplicateID, "collection %s id %s", c.name, item.RecordID())
		}
		seen[item.RecordID()] = struct{}{}
	}
	return c.persist(items)
}

// Find returns the first record matching pred.
func (c *Collection[T]) Find(pred func(T) bool) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, item := range c.load() {
		if pred(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Contains reports whether any record matches pred; the duplicate
// checks (bookmark URL, watchlist coin) go through here.
func (c *Collection[T]) Contains(pred func(T) bool) bool {
	_, ok := c.Find(pred)
	return ok
}

// Get returns the record with the given id.
func (c *Collection[T]) Get(id string) (T, bool) {
	return c.Find(func(item T) bool { return item.RecordID() == id })
}

func (c *Collection[T]) Len() int {
	return len(c.Load())
}
