// Package rotation persists round-robin progress through the candidate lists
// so each run picks up where the previous one left off.
package rotation

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// Cursor holds the rotation indices for the two candidate lists. Indices
// always wrap modulo the list length and never go negative.
type Cursor struct {
	mu sync.Mutex

	ContentIndex int `json:"project_index"`
	AccountIndex int `json:"twitter_account_index"`

	path string
}

// Load reads the cursor at path. A missing or unreadable file yields a
// zero-valued cursor; cursor state is advisory and never worth failing a
// run over.
func Load(path string) *Cursor {
	c := &Cursor{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("rotation: could not read %s, starting from zero: %v", path, err)
		}
		return c
	}
	if err := json.Unmarshal(data, c); err != nil {
		log.Printf("rotation: corrupt cursor %s, starting from zero: %v", path, err)
		c.ContentIndex = 0
		c.AccountIndex = 0
	}
	if c.ContentIndex < 0 {
		c.ContentIndex = 0
	}
	if c.AccountIndex < 0 {
		c.AccountIndex = 0
	}
	return c
}

// NextContent returns the next n indices into a content list of length
// listLen, advancing and wrapping the cursor. The advance happens before any
// use of the indices, so the cursor moves regardless of downstream success.
func (c *Cursor) NextContent(n, listLen int) []int {
	c.mu.Lock()
	defer c.mu.Unlock()
	out, next := take(c.ContentIndex, n, listLen)
	c.ContentIndex = next
	return out
}

// NextAccounts returns the next n indices into an account list of length
// listLen, advancing and wrapping the cursor.
func (c *Cursor) NextAccounts(n, listLen int) []int {
	c.mu.Lock()
	defer c.mu.Unlock()
	out, next := take(c.AccountIndex, n, listLen)
	c.AccountIndex = next
	return out
}

func take(start, n, listLen int) ([]int, int) {
	if listLen <= 0 || n <= 0 {
		return nil, start
	}
	if start >= listLen {
		start = start % listLen
	}
	out := make([]int, 0, n)
	idx := start
	for i := 0; i < n; i++ {
		out = append(out, idx)
		idx = (idx + 1) % listLen
	}
	return out, idx
}

// Save persists the cursor. Called unconditionally at the end of a cycle.
func (c *Cursor) Save() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if dir := filepath.Dir(c.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("cursor dir: %w", err)
		}
	}
	data, err := json.Marshal(c)
	if err != nil {
		return err
	}
	if err := os.WriteFile(c.path, data, 0644); err != nil {
		return fmt.Errorf("write cursor %s: %w", c.path, err)
	}
	return nil
}
