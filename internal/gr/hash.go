package gr

import (
	"sync"

	"github.com/cespare/xxhash"
)

// dedupeTracker backs the optional --dedupe-identical flag: it remembers
// the content hash of every file already searched in this run so that
// identical contents reached under several paths (hard links or copies)
// are only searched once. Symlinks never reach here: AddPathsJob skips them.
type dedupeTracker struct {
	mu   sync.Mutex
	seen map[uint64]struct{}
}

func newDedupeTracker() *dedupeTracker {
	return &dedupeTracker{seen: make(map[uint64]struct{})}
}

// seenBefore hashes buf and reports whether an identical buffer has already
// been recorded, recording it if not.
func (d *dedupeTracker) seenBefore(buf []byte) bool {
	h := xxhash.Sum64(buf)
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.seen[h]; ok {
		return true
	}
	d.seen[h] = struct{}{}
	return false
}
