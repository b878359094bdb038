package warren

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// --- Render texture pool ---

// renderTexturePool manages reusable offscreen ebiten.Images keyed by
// power-of-two dimensions. After warmup, Acquire/Release are zero-alloc.
type renderTexturePool struct {
	buckets map[uint64][]*ebiten.Image
}

// poolKey packs power-of-two width and height into a single uint64.
func poolKey(w, h int) uint64 {
	return uint64(w)<<32 | uint64(h)
}

// Acquire returns a cleared offscreen image with at least (w, h) pixels.
// Dimensions are rounded up to the next power of two.
func (p *renderTexturePool) Acquire(w, h int) *ebiten.Image {
	pw := nextPowerOfTwo(w)
	ph := nextPowerOfTwo(h)
	key := poolKey(pw, ph)

	if p.buckets != nil {
		if stack := p.buckets[key]; len(stack) > 0 {
			img := stack[len(stack)-1]
			p.buckets[key] = stack[:len(stack)-1]
			img.Clear()
			return img
		}
	}

	return ebiten.NewImageWithOptions(
		image.Rect(0, 0, pw, ph),
		&ebiten.NewImageOptions{Unmanaged: true},
	)
}

// Release returns an image to the pool for reuse. The image is cleared on
// next Acquire, not here.
func (p *renderTexturePool) Release(img *ebiten.Image) {
	if img == nil {
		return
	}
	b := img.Bounds()
	key := poolKey(b.Dx(), b.Dy())

	if p.buckets == nil {
		p.buckets = make(map[uint64][]*ebiten.Image)
	}
	p.buckets[key] = append(p.buckets[key], img)
}

// nextPowerOfTwo returns the smallest power of two >= n (minimum 1).
func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << int(math.Ceil(math.Log2(float64(n))))
}

// --- CacheAsTexture API ---

// SetCacheAsTexture enables or disables caching of this node's subtree as a
// single texture. When enabled, the subtree is rendered to an offscreen image
// and reused across frames until InvalidateCache is called or the tree under
// this node changes.
func (n *Node) SetCacheAsTexture(enabled bool) {
	if n.cacheEnabled == enabled {
		return
	}
	n.cacheEnabled = enabled
	if !enabled {
		if n.cacheTexture != nil {
			n.cacheTexture.Deallocate()
			n.cacheTexture = nil
		}
		n.cacheDirty = false
		n.cacheSuspended = 0
	} else {
		n.cacheDirty = true
	}
	n.invalidateAncestorCache()
}

// InvalidateCache marks the cached texture as dirty so it will be re-rendered
// on the next frame. No-op if caching is not enabled.
func (n *Node) InvalidateCache() {
	if n.cacheEnabled {
		n.cacheDirty = true
	}
}

// IsCacheEnabled reports whether subtree caching is enabled for this node.
func (n *Node) IsCacheEnabled() bool {
	return n.cacheEnabled
}

// Batch runs fn with this node's cache refresh suspended, then resumes and
// invalidates it. While suspended, the previously rendered texture keeps
// being presented, so a multi-object mutation is never rasterized in a
// partially-applied state. The resume runs on every exit path, including a
// panic inside fn. Brackets nest.
//
// Batch is safe to call on nodes without an enabled cache; fn simply runs.
func (n *Node) Batch(fn func()) {
	n.cacheSuspended++
	defer func() {
		n.cacheSuspended--
		if n.cacheSuspended == 0 {
			n.InvalidateCache()
		}
	}()
	fn()
}

// invalidateAncestorCache marks the caches of this node and every caching
// ancestor dirty. Called on structural and transform changes; re-rendering
// is deferred while a cache is suspended.
func (n *Node) invalidateAncestorCache() {
	for p := n; p != nil; p = p.Parent {
		if p.cacheEnabled {
			p.cacheDirty = true
		}
	}
}

// --- Draw path ---

// drawCachedNode presents a cache-enabled node: re-rendering the subtree
// texture if dirty (and not suspended), then drawing the texture with the
// node's world transform.
func (s *Stage) drawCachedNode(target *ebiten.Image, n *Node) {
	if n.cacheDirty && n.cacheSuspended == 0 {
		s.refreshCacheTexture(n)
	}

	if n.cacheTexture == nil {
		// Nothing cached yet (empty subtree, or first draw while
		// suspended): fall back to direct traversal.
		if n.Renderable && n.Type == NodeTypeSprite && n.Image != nil {
			drawSprite(target, n, n.worldTransform)
		}
		for _, child := range n.drawOrder() {
			s.drawNode(target, child)
		}
		return
	}

	w := int(math.Ceil(n.cacheBounds.Width))
	h := int(math.Ceil(n.cacheBounds.Height))
	sub := n.cacheTexture.SubImage(image.Rect(0, 0, w, h)).(*ebiten.Image)

	present := multiplyAffine(n.worldTransform, [6]float64{1, 0, 0, 1, n.cacheBounds.X, n.cacheBounds.Y})
	var op ebiten.DrawImageOptions
	op.GeoM.SetElement(0, 0, present[0])
	op.GeoM.SetElement(1, 0, present[1])
	op.GeoM.SetElement(0, 1, present[2])
	op.GeoM.SetElement(1, 1, present[3])
	op.GeoM.SetElement(0, 2, present[4])
	op.GeoM.SetElement(1, 2, present[5])
	op.ColorScale.ScaleAlpha(float32(n.worldAlpha))
	op.Filter = ebiten.FilterNearest
	target.DrawImage(sub, &op)
}

// refreshCacheTexture re-renders a node's subtree into its cache texture.
func (s *Stage) refreshCacheTexture(n *Node) {
	bounds := subtreeBounds(n)
	w := int(math.Ceil(bounds.Width))
	h := int(math.Ceil(bounds.Height))
	if w <= 0 || h <= 0 {
		if n.cacheTexture != nil {
			s.rtPool.Release(n.cacheTexture)
			n.cacheTexture = nil
		}
		n.cacheDirty = false
		return
	}

	if n.cacheTexture != nil {
		b := n.cacheTexture.Bounds()
		if b.Dx() < w || b.Dy() < h {
			s.rtPool.Release(n.cacheTexture)
			n.cacheTexture = nil
		} else {
			n.cacheTexture.Clear()
		}
	}
	if n.cacheTexture == nil {
		n.cacheTexture = s.rtPool.Acquire(w, h)
	}

	s.renderSubtree(n.cacheTexture, n, bounds)
	n.cacheBounds = bounds
	n.cacheDirty = false
}
