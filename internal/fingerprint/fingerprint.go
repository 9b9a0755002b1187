// Package fingerprint suppresses redundant work on file events by
// remembering the content digest of each watched file.
package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"sync"
)

// Tracker remembers the last seen digest per path.
type Tracker struct {
	mu   sync.Mutex
	seen map[string]string
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{seen: make(map[string]string)}
}

// Changed reports whether path's content differs from the digest recorded
// on the previous call, updating the record. The first call for a path
// always reports true. Unreadable files report true and drop the record,
// so the caller surfaces the read error itself.
func (t *Tracker) Changed(path string) bool {
	digest, err := File(path)
	if err != nil {
		t.Forget(path)
		return true
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.seen[path] == digest {
		return false
	}
	t.seen[path] = digest
	return true
}

// Forget drops the recorded digest so the next Changed reports true.
func (t *Tracker) Forget(path string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.seen, path)
}

// File returns the hex-encoded SHA-256 digest of the file content.
func File(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
