// Package kv provides the string-keyed persistence port used by the
// chronicle application. Every persisted value is a JSON document; callers
// own serialization. The interface mirrors a browser local-storage surface
// so the core logic stays testable against an in-memory fake.
package kv

// Store is the persistence port: get/set/delete over string keys.
type Store interface {
	// Get returns the stored bytes for key and whether the key exists.
	Get(key string) ([]byte, bool, error)
	// Set stores value under key, replacing any previous value.
	Set(key string, value []byte) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error
}

// Well-known keys. Timeline and connection state are scoped per user;
// the rest is global application state.
const (
	KeyActiveUser     = "active_user"
	KeyActiveUserName = "active_user_name"
	KeyRegistry       = "registered_users"
)

// TimelineKey returns the per-user key for the timeline event collection.
func TimelineKey(userKey string) string {
	return "timeline_events:" + userKey
}

// ConnectionsKey returns the per-user key for integration connection flags.
func ConnectionsKey(userKey string) string {
	return "connections:" + userKey
}
