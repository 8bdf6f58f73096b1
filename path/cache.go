/**
 * Copyright (c) 2019, The Artemis Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package path

import (
	"sync"

	"github.com/willf/bitset"

	"github.com/botobag/funcify/errors"
)

// Cache caches parsed paths keyed by their input string to save parsing efforts. Implementations
// must be safe for concurrent use by multiple goroutines.
type Cache interface {
	// Get looks up the path parsed from the key.
	Get(key string) (value interface{}, ok bool)

	// Add adds a parsed path that associated with the key to the cache.
	Add(key string, value interface{})
}

// lruSlot holds one entry of an LRUCache. Slots link to each other by index into a ring ordered by
// recency.
type lruSlot struct {
	key   string
	value interface{}

	// Indices of the neighbors in the ring. Following older from the head visits the entries from
	// the most to the least recently used one.
	newer, older uint
}

// LRUCache is a thread-safe, bounded LRU cache that implements Cache. It serves as the default
// cache for Parser. All slots are allocated up front and a bitset records which of them hold an
// entry, so that the cache does not allocate once it is full.
type LRUCache struct {
	// m guards all fields below.
	m sync.Mutex

	// slots has one more element than the capacity; the last one is the head of the ring and never
	// holds an entry.
	slots []lruSlot
	used  *bitset.BitSet
	index map[string]uint
}

var _ Cache = (*LRUCache)(nil)

var errZeroCacheSize = errors.New("must specify a non-zero cache size", errors.Op("path.NewLRUCache"),
	errors.KindInvalidArgument)

// NewLRUCache creates a new LRUCache holding up to maxEntries paths.
func NewLRUCache(maxEntries uint) (*LRUCache, error) {
	if maxEntries == 0 {
		return nil, errZeroCacheSize
	}

	c := &LRUCache{
		slots: make([]lruSlot, maxEntries+1),
		used:  bitset.New(maxEntries),
		index: make(map[string]uint, maxEntries),
	}
	head := c.head()
	c.slots[head].newer = head
	c.slots[head].older = head
	return c, nil
}

func (c *LRUCache) head() uint {
	return uint(len(c.slots) - 1)
}

func (c *LRUCache) unlink(i uint) {
	slot := &c.slots[i]
	c.slots[slot.newer].older = slot.older
	c.slots[slot.older].newer = slot.newer
}

func (c *LRUCache) linkFront(i uint) {
	head := c.head()
	first := c.slots[head].older
	c.slots[i].newer = head
	c.slots[i].older = first
	c.slots[first].newer = i
	c.slots[head].older = i
}

// evictOldest frees the slot of the least recently used entry.
func (c *LRUCache) evictOldest() {
	oldest := c.slots[c.head()].newer
	if oldest == c.head() {
		return
	}
	c.unlink(oldest)
	delete(c.index, c.slots[oldest].key)
	c.slots[oldest] = lruSlot{}
	c.used.Clear(oldest)
}

// Get implements Cache.
func (c *LRUCache) Get(key string) (value interface{}, ok bool) {
	c.m.Lock()
	defer c.m.Unlock()

	i, ok := c.index[key]
	if !ok {
		return nil, false
	}
	c.unlink(i)
	c.linkFront(i)
	return c.slots[i].value, true
}

// Add implements Cache.
func (c *LRUCache) Add(key string, value interface{}) {
	c.m.Lock()
	defer c.m.Unlock()

	if i, ok := c.index[key]; ok {
		c.slots[i].value = value
		c.unlink(i)
		c.linkFront(i)
		return
	}

	if c.used.All() {
		c.evictOldest()
	}
	i, found := c.used.NextClear(0)
	if !found {
		errors.Invariant("path.LRUCache.Add", "no free slot in a cache of %d entries", c.used.Len())
	}
	c.used.Set(i)
	c.slots[i].key = key
	c.slots[i].value = value
	c.linkFront(i)
	c.index[key] = i
}

// Len returns the number of entries in the cache.
func (c *LRUCache) Len() int {
	c.m.Lock()
	defer c.m.Unlock()
	return int(c.used.Count())
}

// NopCache does nothing.
type NopCache struct{}

var _ Cache = NopCache{}

// Get implements Cache.
func (NopCache) Get(key string) (value interface{}, ok bool) {
	return
}

// Add implements Cache.
func (NopCache) Add(key string, value interface{}) {}
