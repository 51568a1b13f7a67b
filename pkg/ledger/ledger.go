// Package ledger tracks already-processed item ids so repeated runs stay
// idempotent. Each ledger is a bounded, ordered, deduplicated set persisted
// as a JSON array in its own file.
package ledger

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// maxEntries caps the retained history; the oldest ids are evicted first.
const maxEntries = 1000

// ErrCorrupt reports a ledger file that exists but cannot be decoded. The
// caller decides whether to abort or reset; the ledger never resets itself.
var ErrCorrupt = errors.New("ledger: corrupt store")

// Ledger is a persisted FIFO set of opaque ids.
type Ledger struct {
	mu   sync.RWMutex
	ids  []string
	seen map[string]struct{}
	path string
}

// Open loads the ledger at path, creating an empty one if the file does not
// exist. A present but undecodable file returns ErrCorrupt.
func Open(path string) (*Ledger, error) {
	l := &Ledger{
		ids:  make([]string, 0),
		seen: make(map[string]struct{}),
		path: path,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return l, nil
		}
		return nil, fmt.Errorf("read ledger %s: %w", path, err)
	}

	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, path, err)
	}

	for _, id := range ids {
		if _, ok := l.seen[id]; ok {
			continue
		}
		l.ids = append(l.ids, id)
		l.seen[id] = struct{}{}
	}
	l.evictLocked()
	return l, nil
}

// Contains reports whether id has been recorded.
func (l *Ledger) Contains(id string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.seen[id]
	return ok
}

// Record appends id if absent and persists the ledger. Recording an already
// present id is a no-op. The write happens per mutation so a crash later in
// the cycle cannot re-process a published item.
func (l *Ledger) Record(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.seen[id]; ok {
		return nil
	}
	l.ids = append(l.ids, id)
	l.seen[id] = struct{}{}
	l.evictLocked()

	return l.saveLocked()
}

// Len returns the number of retained ids.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.ids)
}

func (l *Ledger) evictLocked() {
	for len(l.ids) > maxEntries {
		delete(l.seen, l.ids[0])
		l.ids = l.ids[1:]
	}
}

func (l *Ledger) saveLocked() error {
	if dir := filepath.Dir(l.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("ledger dir: %w", err)
		}
	}
	data, err := json.Marshal(l.ids)
	if err != nil {
		return err
	}
	if err := os.WriteFile(l.path, data, 0644); err != nil {
		return fmt.Errorf("write ledger %s: %w", l.path, err)
	}
	return nil
}
