package searchpath

import "sync"

// Live is an in-memory search path seeded from a runtime and mutated as
// paths are added and deleted during a session.
type Live struct {
	mu      sync.RWMutex
	entries []string
}

// NewLive creates a live search path holding a copy of seed.
func NewLive(seed []string) *Live {
	entries := make([]string, len(seed))
	copy(entries, seed)
	return &Live{entries: entries}
}

// NewLiveFrom seeds a live search path from a Lister.
func NewLiveFrom(l Lister) (*Live, error) {
	seed, err := l.Entries()
	if err != nil {
		return nil, err
	}
	return NewLive(seed), nil
}

// Append adds path at the end of the search path.
func (l *Live) Append(path string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, path)
}

// Remove drops the first occurrence of path. Missing paths are ignored.
func (l *Live) Remove(path string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, p := range l.entries {
		if p == path {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			return
		}
	}
}

// Contains reports whether path is on the live search path.
func (l *Live) Contains(path string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, p := range l.entries {
		if p == path {
			return true
		}
	}
	return false
}

// Entries returns a snapshot of the live search path.
func (l *Live) Entries() ([]string, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]string, len(l.entries))
	copy(out, l.entries)
	return out, nil
}
