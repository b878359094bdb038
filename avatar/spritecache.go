package avatar

import "github.com/phanxgames/warren"

// spriteCacheCap bounds how many drawable nodes one avatar retains across
// look and frame changes. When the cap is exceeded, hidden entries are
// evicted oldest-first; entries in the current frame are never evicted.
const spriteCacheCap = 512

type cacheEntry struct {
	node     *warren.Node
	lastUsed uint64
}

// spriteCache maps asset ids to reusable sprite nodes, private to one
// avatar. Reuse keeps GPU-backed resources alive across frame cycling
// instead of recreating them every tick.
type spriteCache struct {
	entries map[string]*cacheEntry
	clock   uint64
}

func newSpriteCache() *spriteCache {
	return &spriteCache{entries: make(map[string]*cacheEntry)}
}

// acquire returns the cached node for an asset id, creating one via the
// callback on first use. The entry's use time advances either way.
func (c *spriteCache) acquire(id string, create func() *warren.Node) *warren.Node {
	c.clock++
	if e, ok := c.entries[id]; ok {
		e.lastUsed = c.clock
		return e.node
	}
	n := create()
	c.entries[id] = &cacheEntry{node: n, lastUsed: c.clock}
	c.evict()
	return n
}

// evict disposes hidden entries oldest-first until the cache fits the cap.
func (c *spriteCache) evict() {
	for len(c.entries) > spriteCacheCap {
		var oldestID string
		var oldest *cacheEntry
		for id, e := range c.entries {
			if e.node.Visible {
				continue
			}
			if oldest == nil || e.lastUsed < oldest.lastUsed {
				oldestID = id
				oldest = e
			}
		}
		if oldest == nil {
			// every entry is visible; nothing safe to evict
			return
		}
		oldest.node.RemoveFromParent()
		oldest.node.Dispose()
		delete(c.entries, oldestID)
	}
}

// len reports the live entry count.
func (c *spriteCache) len() int { return len(c.entries) }

// each visits every cached node.
func (c *spriteCache) each(fn func(id string, n *warren.Node)) {
	for id, e := range c.entries {
		fn(id, e.node)
	}
}

// dispose releases every cached node.
func (c *spriteCache) dispose() {
	for id, e := range c.entries {
		e.node.RemoveFromParent()
		e.node.Dispose()
		delete(c.entries, id)
	}
}
