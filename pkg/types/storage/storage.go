package storage

// Backend is the persistent key-value store behind every collection.
// Values are opaque strings; the second return of Get reports presence.
type Backend interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
	Keys() ([]string, error)
}
