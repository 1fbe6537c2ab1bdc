package favorites

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// storageKey is the single entry the favorite set lives under. The value is
// kept as opaque JSON text, matching the browser localStorage layout it
// replaces.
const storageKey = "favorites"

// Store is an observable, file-persisted set of favorited exercise ids.
// It replaces the original ad hoc localStorage-plus-window-event scheme
// with an explicit snapshot/subscribe contract: every mutation persists the
// set and broadcasts a change notification to all subscribers in the same
// process. Favorites never leave the client; the server is not involved.
type Store struct {
	mu   sync.Mutex
	path string
	ids  []int64

	nextSub int
	subs    map[int]chan struct{}
}

// Open loads the favorite set from path. A missing file is an empty set.
func Open(path string) (*Store, error) {
	s := &Store{
		path: path,
		subs: make(map[int]chan struct{}),
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read favorites store: %w", err)
	}

	entries := map[string]string{}
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse favorites store: %w", err)
	}

	raw, ok := entries[storageKey]
	if !ok || raw == "" {
		return s, nil
	}
	if err := json.Unmarshal([]byte(raw), &s.ids); err != nil {
		return nil, fmt.Errorf("failed to parse favorites entry: %w", err)
	}

	return s, nil
}

// Toggle adds the id when absent and removes it when present, reporting
// whether the id is now a favorite. Toggling twice returns the set to its
// original contents.
func (s *Store) Toggle(id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	added := true
	for i, existing := range s.ids {
		if existing == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			added = false
			break
		}
	}
	if added {
		s.ids = append(s.ids, id)
	}

	if err := s.persistLocked(); err != nil {
		return false, err
	}
	s.notifyLocked()

	return added, nil
}

// Remove drops the id from the set; removing an absent id is a no-op.
func (s *Store) Remove(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.ids {
		if existing == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			if err := s.persistLocked(); err != nil {
				return err
			}
			s.notifyLocked()
			return nil
		}
	}

	return nil
}

// Contains reports whether the id is favorited.
func (s *Store) Contains(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.ids {
		if existing == id {
			return true
		}
	}
	return false
}

// Snapshot returns an ordered copy of the favorite set.
func (s *Store) Snapshot() []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]int64, len(s.ids))
	copy(out, s.ids)
	return out
}

// Count returns the number of favorites, as shown by the navigation badge.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ids)
}

// Subscribe registers for change notifications. The returned channel
// receives a signal after every mutation; the cancel function releases the
// subscription. Notification sends never block, so a slow subscriber sees
// a coalesced signal rather than a backlog.
func (s *Store) Subscribe() (<-chan struct{}, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++

	ch := make(chan struct{}, 1)
	s.subs[id] = ch

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}

	return ch, cancel
}

func (s *Store) persistLocked() error {
	raw, err := json.Marshal(s.ids)
	if err != nil {
		return fmt.Errorf("failed to encode favorites: %w", err)
	}

	data, err := json.Marshal(map[string]string{storageKey: string(raw)})
	if err != nil {
		return fmt.Errorf("failed to encode favorites store: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write favorites store: %w", err)
	}
	return nil
}

func (s *Store) notifyLocked() {
	for _, ch := range s.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
