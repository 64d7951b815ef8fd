// Package directory holds the authoritative in-memory set of coach records.
//
// Each record lives in its own slot. Writers to one identifier serialize on
// that slot's mutex and publish a fresh immutable snapshot through an atomic
// pointer, so readers never block on writers and never observe a partial
// write. The directory-wide lock only guards the identifier → slot map.
package directory

import (
	"fmt"
	"iter"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/twentymincoach/api/internal/domain"
)

type slot struct {
	mu      sync.Mutex
	current atomic.Pointer[domain.Coach]
}

// Directory is safe for concurrent use.
type Directory struct {
	mu    sync.RWMutex
	slots map[string]*slot
	now   func() time.Time
}

// New returns an empty directory.
func New() *Directory {
	return &Directory{
		slots: make(map[string]*slot),
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// Get returns a copy of the coach with the given identifier.
func (d *Directory) Get(id string) (domain.Coach, error) {
	d.mu.RLock()
	s, ok := d.slots[id]
	d.mu.RUnlock()
	if !ok {
		return domain.Coach{}, fmt.Errorf("%w: %s", domain.ErrNotFound, id)
	}
	current := s.current.Load()
	if current == nil {
		// insert still in flight
		return domain.Coach{}, fmt.Errorf("%w: %s", domain.ErrNotFound, id)
	}
	return current.Clone(), nil
}

// All yields every coach in identifier order. Each call starts a fresh
// traversal; records are read lazily, one at a time.
func (d *Directory) All() iter.Seq[domain.Coach] {
	return func(yield func(domain.Coach) bool) {
		d.mu.RLock()
		ids := make([]string, 0, len(d.slots))
		slots := make(map[string]*slot, len(d.slots))
		for id, s := range d.slots {
			ids = append(ids, id)
			slots[id] = s
		}
		d.mu.RUnlock()
		sort.Strings(ids)

		for _, id := range ids {
			current := slots[id].current.Load()
			if current == nil {
				continue
			}
			if !yield(current.Clone()) {
				return
			}
		}
	}
}

// Len reports the number of stored coaches.
func (d *Directory) Len() int {
	n := 0
	for range d.All() {
		n++
	}
	return n
}

// Upsert inserts or replaces the record for coach.ID after validating it.
func (d *Directory) Upsert(coach domain.Coach) error {
	if err := coach.Validate(); err != nil {
		return err
	}
	s := d.slotFor(coach.ID)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.store(coach.Clone(), s.current.Load(), d.now())
	return nil
}

// UpsertWith holds the lock for id while fn builds the record to store.
// existing is nil when no record exists yet. Nothing is stored when fn or
// validation fails.
func (d *Directory) UpsertWith(id string, fn func(existing *domain.Coach) (domain.Coach, error)) (domain.Coach, error) {
	s := d.slotFor(id)

	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.current.Load()
	var existing *domain.Coach
	if prev != nil {
		c := prev.Clone()
		existing = &c
	}
	next, err := fn(existing)
	if err != nil {
		return domain.Coach{}, err
	}
	next.ID = id
	if err := next.Validate(); err != nil {
		return domain.Coach{}, err
	}
	stored := s.store(next.Clone(), prev, d.now())
	return stored.Clone(), nil
}

// store publishes next over prev. Replacements keep CreatedAt and always
// get a fresh UpdatedAt; inserts keep timestamps they already carry.
// The caller holds s.mu.
func (s *slot) store(next domain.Coach, prev *domain.Coach, now time.Time) *domain.Coach {
	if prev != nil {
		if next.CreatedAt.IsZero() {
			next.CreatedAt = prev.CreatedAt
		}
		next.UpdatedAt = now
	}
	if next.CreatedAt.IsZero() {
		next.CreatedAt = now
	}
	if next.UpdatedAt.IsZero() {
		next.UpdatedAt = now
	}
	s.current.Store(&next)
	return &next
}

// Update applies fn to a copy of the stored record and publishes the result
// if it still satisfies the invariants. The stored record is left untouched
// when fn or validation fails.
func (d *Directory) Update(id string, fn func(*domain.Coach) error) (domain.Coach, error) {
	d.mu.RLock()
	s, ok := d.slots[id]
	d.mu.RUnlock()
	if !ok {
		return domain.Coach{}, fmt.Errorf("%w: %s", domain.ErrNotFound, id)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.current.Load()
	if current == nil {
		return domain.Coach{}, fmt.Errorf("%w: %s", domain.ErrNotFound, id)
	}
	next := current.Clone()
	if err := fn(&next); err != nil {
		return domain.Coach{}, err
	}
	next.ID = current.ID
	if err := next.Validate(); err != nil {
		return domain.Coach{}, err
	}
	next.UpdatedAt = d.now()
	s.current.Store(&next)
	return next.Clone(), nil
}

func (d *Directory) slotFor(id string) *slot {
	d.mu.RLock()
	s, ok := d.slots[id]
	d.mu.RUnlock()
	if ok {
		return s
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if s, ok := d.slots[id]; ok {
		return s
	}
	s = &slot{}
	d.slots[id] = s
	return s
}
