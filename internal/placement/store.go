package placement

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// Saver mirrors the full collection to durable storage. The store calls it
// after every successful mutation with the entire entry list.
type Saver interface {
	Save(entries []Entry) error
}

// Store is the authoritative ordered collection of entries. Newest creation
// sits at the front. Every mutation writes through the saver before
// returning, so successive saves land in mutation order; a failed save is
// reported to the caller but the in-memory change is kept.
type Store struct {
	mu      sync.Mutex
	entries []Entry
	saver   Saver
	subs    []func()
	now     func() time.Time
}

// NewStore creates a store seeded with entries, typically the result of a
// FileStore.Load. A nil saver disables write-through.
func NewStore(entries []Entry, saver Saver) *Store {
	return &Store{
		entries: append([]Entry(nil), entries...),
		saver:   saver,
		now:     time.Now,
	}
}

// Subscribe registers fn to run after every successful mutation.
// Callbacks fire in registration order on the mutating call's goroutine,
// after the store lock is released, so fn may read the store.
func (s *Store) Subscribe(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.subs = append(s.subs, fn)
}

// Entries returns a snapshot copy of the collection for the view functions.
func (s *Store) Entries() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]Entry(nil), s.entries...)
}

// Get returns the entry with this id.
func (s *Store) Get(id string) (Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.index(id)
	if idx < 0 {
		return Entry{}, false
	}

	return s.entries[idx], true
}

// ResolveID expands a unique id prefix to a full id. Entry ids are UUIDs,
// so commands accept any unambiguous prefix.
func (s *Store) ResolveID(prefix string) (string, error) {
	if prefix == "" {
		return "", ErrIDRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	match := ""

	for i := range s.entries {
		id := s.entries[i].ID
		if id == prefix {
			return id, nil
		}

		if strings.HasPrefix(id, prefix) {
			if match != "" {
				return "", fmt.Errorf("%w: %s", ErrAmbiguousID, prefix)
			}

			match = id
		}
	}

	if match == "" {
		return "", fmt.Errorf("%w: %s", ErrNotFound, prefix)
	}

	return match, nil
}

// Totals returns the active and completed counts.
func (s *Store) Totals() (active, completed int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.entries {
		if s.entries[i].Status == StatusCompleted {
			completed++
		} else {
			active++
		}
	}

	return active, completed
}

// Create validates input, mints a new entry, and prepends it.
// The boundary (form or CLI) rejects incomplete input before calling; the
// store re-checks defensively.
func (s *Store) Create(in Input) (Entry, error) {
	if err := in.Validate(); err != nil {
		return Entry{}, err
	}

	s.mu.Lock()

	entry := Entry{
		ID:        GenerateID(),
		Company:   in.Company,
		Role:      in.Role,
		CTC:       in.CTC,
		Round:     in.Round,
		Date:      in.Date,
		Link:      in.Link,
		Crossed:   false,
		Status:    StatusActive,
		CreatedAt: Timestamp(s.now()),
	}

	s.entries = append([]Entry{entry}, s.entries...)

	return entry, s.commit()
}

// Update overwrites the patched fields of the entry with this id and stamps
// updatedAt. Id, status, crossed, and createdAt are preserved; collection
// order does not change.
func (s *Store) Update(id string, patch Patch) (Entry, error) {
	s.mu.Lock()

	idx := s.index(id)
	if idx < 0 {
		s.mu.Unlock()

		return Entry{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	patch.apply(&s.entries[idx])
	s.entries[idx].UpdatedAt = Timestamp(s.now())
	entry := s.entries[idx]

	return entry, s.commit()
}

// ToggleCross flips the strike-through flag. Status and updatedAt are
// untouched. An unknown id is a benign no-op.
func (s *Store) ToggleCross(id string) (Entry, bool, error) {
	s.mu.Lock()

	idx := s.index(id)
	if idx < 0 {
		s.mu.Unlock()

		return Entry{}, false, nil
	}

	s.entries[idx].Crossed = !s.entries[idx].Crossed
	entry := s.entries[idx]

	return entry, true, s.commit()
}

// Complete moves an active entry to completed, forcing crossed in the same
// mutation, and stamps updatedAt. The transition is one-way: completing an
// already-completed entry (or an unknown id) changes nothing, including
// updatedAt.
func (s *Store) Complete(id string) (Entry, bool, error) {
	s.mu.Lock()

	idx := s.index(id)
	if idx < 0 {
		s.mu.Unlock()

		return Entry{}, false, nil
	}

	if s.entries[idx].Status == StatusCompleted {
		entry := s.entries[idx]
		s.mu.Unlock()

		return entry, false, nil
	}

	s.entries[idx].Status = StatusCompleted
	s.entries[idx].Crossed = true
	s.entries[idx].UpdatedAt = Timestamp(s.now())
	entry := s.entries[idx]

	return entry, true, s.commit()
}

// Remove deletes the entry with this id. No tombstone; an absent id is a
// silent no-op.
func (s *Store) Remove(id string) (bool, error) {
	s.mu.Lock()

	idx := s.index(id)
	if idx < 0 {
		s.mu.Unlock()

		return false, nil
	}

	s.entries = append(s.entries[:idx], s.entries[idx+1:]...)

	return true, s.commit()
}

// index returns the position of id, or -1. Caller holds the lock.
func (s *Store) index(id string) int {
	for i := range s.entries {
		if s.entries[i].ID == id {
			return i
		}
	}

	return -1
}

// commit mirrors the collection to the saver, releases the lock, and then
// notifies subscribers. Mutators call it in place of unlocking, so callbacks
// may read the store. Subscribers run regardless of save outcome: the
// in-memory state already changed and remains the source of truth.
func (s *Store) commit() error {
	var err error

	if s.saver != nil {
		if saveErr := s.saver.Save(append([]Entry(nil), s.entries...)); saveErr != nil {
			err = fmt.Errorf("saving entries: %w", saveErr)
		}
	}

	subs := make([]func(), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, fn := range subs {
		fn()
	}

	return err
}
