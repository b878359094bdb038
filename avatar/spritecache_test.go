package avatar

import (
	"fmt"
	"testing"

	"github.com/phanxgames/warren"
)

func hiddenSprite(id string) func() *warren.Node {
	return func() *warren.Node {
		n := warren.NewSprite(id, nil)
		n.Visible = false
		return n
	}
}

func TestCacheReusesNodes(t *testing.T) {
	c := newSpriteCache()
	a := c.acquire("a", hiddenSprite("a"))
	b := c.acquire("a", hiddenSprite("a"))
	if a != b {
		t.Error("same id must return the same node")
	}
	if c.len() != 1 {
		t.Errorf("len = %d, want 1", c.len())
	}
}

func TestCacheEvictsHiddenOldestFirst(t *testing.T) {
	c := newSpriteCache()
	for i := 0; i < spriteCacheCap+50; i++ {
		c.acquire(fmt.Sprintf("asset-%d", i), hiddenSprite("x"))
	}
	if c.len() != spriteCacheCap {
		t.Errorf("len = %d, want cap %d", c.len(), spriteCacheCap)
	}

	// the oldest entries were the ones evicted
	if _, ok := c.entries["asset-0"]; ok {
		t.Error("oldest hidden entry should be evicted")
	}
	last := fmt.Sprintf("asset-%d", spriteCacheCap+49)
	if _, ok := c.entries[last]; !ok {
		t.Error("newest entry must survive")
	}
}

func TestCacheNeverEvictsVisibleNodes(t *testing.T) {
	c := newSpriteCache()
	for i := 0; i < spriteCacheCap+10; i++ {
		id := fmt.Sprintf("asset-%d", i)
		c.acquire(id, func() *warren.Node {
			return warren.NewSprite(id, nil) // visible by default
		})
	}
	// every entry is visible; the cache may exceed its cap rather than
	// dispose a node still on screen
	if c.len() != spriteCacheCap+10 {
		t.Errorf("len = %d, want %d", c.len(), spriteCacheCap+10)
	}
}

func TestCacheDispose(t *testing.T) {
	c := newSpriteCache()
	n := c.acquire("a", hiddenSprite("a"))
	c.dispose()
	if c.len() != 0 {
		t.Errorf("len = %d after dispose, want 0", c.len())
	}
	if !n.IsDisposed() {
		t.Error("disposed cache must dispose its nodes")
	}
}
