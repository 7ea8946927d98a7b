// Package diffcache memoizes textdiff.ComputeDiff results for repeated identical inputs.
//
// Caching is explicit and opt-in: the engine itself stays pure, and a Cache is just a keyed front for it. Keys are a content hash of both inputs plus the
// options, so a cache never returns a diff for different content. Invalidation is explicit (Invalidate/Clear); nothing expires on its own.
//
// A Cache is safe for concurrent use. Concurrent Diff calls for the same key share one computation. Returned slices are shared between callers and must be
// treated as read-only.
package diffcache

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"io"
	"math"
	"sync"

	"github.com/vmihailenco/msgpack/v5"
	"golang.org/x/sync/singleflight"

	"github.com/redlinehq/redline/internal/textdiff"
)

// Key identifies one (original, revised, options) triple.
type Key [sha256.Size]byte

// KeyFor computes the cache key for a diff request. Inputs are length-prefixed before hashing so no two distinct triples collide by concatenation.
func KeyFor(original, revised string, opts textdiff.Options) Key {
	h := sha256.New()

	var buf [8]byte
	writeString := func(s string) {
		binary.BigEndian.PutUint64(buf[:], uint64(len(s)))
		h.Write(buf[:])
		io.WriteString(h, s)
	}
	writeString(original)
	writeString(revised)

	flags := byte(0)
	if opts.IgnoreBlankLines {
		flags = 1
	}
	h.Write([]byte{flags})
	binary.BigEndian.PutUint64(buf[:], math.Float64bits(opts.ModifiedThreshold))
	h.Write(buf[:])

	var key Key
	h.Sum(key[:0])
	return key
}

// Cache memoizes computed diffs. The zero value is not usable; use New.
type Cache struct {
	mu      sync.Mutex
	entries map[Key][]textdiff.DiffLine
	group   singleflight.Group
}

// New returns an empty Cache.
func New() *Cache {
	return &Cache{entries: make(map[Key][]textdiff.DiffLine)}
}

// Diff returns the cached diff for (original, revised, opts), computing and storing it on a miss. Concurrent calls with the same key compute once.
func (c *Cache) Diff(original, revised string, opts textdiff.Options) []textdiff.DiffLine {
	key := KeyFor(original, revised, opts)

	c.mu.Lock()
	if diff, ok := c.entries[key]; ok {
		c.mu.Unlock()
		return diff
	}
	c.mu.Unlock()

	v, _, _ := c.group.Do(hex.EncodeToString(key[:]), func() (any, error) {
		diff := textdiff.ComputeDiff(original, revised, opts)
		c.mu.Lock()
		c.entries[key] = diff
		c.mu.Unlock()
		return diff, nil
	})
	return v.([]textdiff.DiffLine)
}

// Invalidate removes the entry for (original, revised, opts), if present.
func (c *Cache) Invalidate(original, revised string, opts textdiff.Options) {
	key := KeyFor(original, revised, opts)
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

// Clear removes every entry.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.entries = make(map[Key][]textdiff.DiffLine)
	c.mu.Unlock()
}

// Len reports the number of cached entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// snapshotVersion guards the snapshot wire format. Bump it when the encoded shape or its meaning changes so old snapshots are rejected instead of
// misdecoded.
const snapshotVersion = 1

type snapshotEntry struct {
	Key  []byte              `msgpack:"key"`
	Diff []textdiff.DiffLine `msgpack:"diff"`
}

type snapshot struct {
	Version int             `msgpack:"version"`
	Entries []snapshotEntry `msgpack:"entries"`
}

// Snapshot writes the cache contents to w for a later Restore (for example, to warm a new session with the previous session's diffs).
func (c *Cache) Snapshot(w io.Writer) error {
	c.mu.Lock()
	snap := snapshot{Version: snapshotVersion, Entries: make([]snapshotEntry, 0, len(c.entries))}
	for key, diff := range c.entries {
		k := key
		snap.Entries = append(snap.Entries, snapshotEntry{Key: k[:], Diff: diff})
	}
	c.mu.Unlock()

	if err := msgpack.NewEncoder(w).Encode(snap); err != nil {
		return fmt.Errorf("encode cache snapshot: %w", err)
	}
	return nil
}

// Restore merges entries from a Snapshot into the cache. Entries already present win over restored ones.
func (c *Cache) Restore(r io.Reader) error {
	var snap snapshot
	if err := msgpack.NewDecoder(r).Decode(&snap); err != nil {
		return fmt.Errorf("decode cache snapshot: %w", err)
	}
	if snap.Version != snapshotVersion {
		return fmt.Errorf("cache snapshot version %d is not supported (want %d)", snap.Version, snapshotVersion)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, e := range snap.Entries {
		if len(e.Key) != sha256.Size {
			return fmt.Errorf("cache snapshot contains a malformed key of %d bytes", len(e.Key))
		}
		var key Key
		copy(key[:], e.Key)
		if _, ok := c.entries[key]; ok {
			continue
		}
		c.entries[key] = e.Diff
	}
	return nil
}
