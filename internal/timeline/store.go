package timeline

import (
	"log"
	"sort"
	"sync"
	"time"

	"github.com/NishaKashyap1901/commitChronicle/internal/kv"
	"github.com/NishaKashyap1901/commitChronicle/internal/output"
)

// Store is the per-user, ordered, append-only collection of timeline
// events, persisted through the kv port. Reads seed an empty scope with
// sample data and self-heal corrupt data by reseeding; events are never
// mutated after creation.
type Store struct {
	kv   kv.Store
	now  func() time.Time
	logf func(format string, args ...any)

	mu     sync.Mutex
	lastID int64
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithClock overrides the time source (tests).
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) { s.now = now }
}

// WithLogf overrides where storage-corruption conditions are logged.
func WithLogf(logf func(format string, args ...any)) StoreOption {
	return func(s *Store) { s.logf = logf }
}

// NewStore creates a Store over the given kv backend.
func NewStore(backend kv.Store, opts ...StoreOption) *Store {
	s := &Store{
		kv:   backend,
		now:  time.Now,
		logf: log.Printf,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads the event collection for userKey, sorted descending by ID
// (newest first).
//
// An absent scope is seeded with the sample dataset and persisted before
// returning. Corrupt stored data is logged and replaced by the same seed;
// parse failures never propagate to the caller.
func (s *Store) Load(userKey string) ([]Event, error) {
	key := kv.TimelineKey(userKey)

	data, found, err := s.kv.Get(key)
	if err != nil {
		return nil, output.NewSystemErrorWithCause("failed to read timeline", err)
	}

	if !found {
		return s.reseed(key)
	}

	events, migrated, decodeErr := decodeEvents(data)
	if decodeErr != nil {
		s.logf("timeline: corrupt data for %s, reseeding: %v", userKey, decodeErr)
		return s.reseed(key)
	}

	if migrated {
		if err := s.persist(key, events); err != nil {
			return nil, err
		}
	}

	sortByIDDesc(events)
	return events, nil
}

// Append assigns the event's ID, inserts it at the head of the collection,
// and persists the full collection back. This is a read-modify-write with
// no cross-process coordination: concurrent writers race, last writer wins.
func (s *Store) Append(userKey string, event Event) (Event, error) {
	events, err := s.Load(userKey)
	if err != nil {
		return Event{}, err
	}

	event.ID = s.nextID(events)
	events = append([]Event{event}, events...)

	if err := s.persist(kv.TimelineKey(userKey), events); err != nil {
		return Event{}, err
	}
	return event, nil
}

// Submit validates a draft and appends it on behalf of author.
// On validation failure the store is untouched and no ID is assigned.
func (s *Store) Submit(userKey, author string, draft Draft) (Event, error) {
	if err := draft.Validate(); err != nil {
		return Event{}, err
	}

	category := draft.Category.Normalize()
	display := DisplayFor(category)

	return s.Append(userKey, Event{
		Category:    category,
		Title:       draft.Title,
		Details:     draft.Details,
		Date:        draft.Date,
		Author:      author,
		Icon:        display.Icon,
		Badge:       display.Badge,
		RelatedLink: draft.RelatedLink,
	})
}

// nextID produces a strictly increasing identifier. The base is the wall
// clock in milliseconds; appends within the same millisecond (or behind an
// already-persisted newer ID) advance by one instead, so IDs stay unique
// and order-preserving.
func (s *Store) nextID(existing []Event) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	if len(existing) > 0 && id <= existing[0].ID {
		id = existing[0].ID + 1
	}
	s.lastID = id
	return id
}

// reseed writes the sample dataset into key and returns it.
func (s *Store) reseed(key string) ([]Event, error) {
	events := SampleEvents(s.now())
	if err := s.persist(key, events); err != nil {
		return nil, err
	}
	sortByIDDesc(events)
	return events, nil
}

func (s *Store) persist(key string, events []Event) error {
	data, err := encodeEvents(events)
	if err != nil {
		return output.NewSystemErrorWithCause("failed to serialize timeline", err)
	}
	if err := s.kv.Set(key, data); err != nil {
		return output.NewSystemErrorWithCause("failed to write timeline", err)
	}
	return nil
}

func sortByIDDesc(events []Event) {
	sort.Slice(events, func(i, j int) bool {
		return events[i].ID > events[j].ID
	})
}

// DeriveCount counts events matching the predicate. Pure; no side effects.
func DeriveCount(events []Event, predicate func(Event) bool) int {
	count := 0
	for _, e := range events {
		if predicate(e) {
			count++
		}
	}
	return count
}

// CountByCategory counts events in the given category, accepting legacy
// alias values in stored data.
func CountByCategory(events []Event, category Category) int {
	want := category.Normalize()
	return DeriveCount(events, func(e Event) bool {
		return e.Category.Normalize() == want
	})
}
