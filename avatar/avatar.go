package avatar

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/phanxgames/warren"
	"github.com/phanxgames/warren/room"
)

// animationTickDivisor is how many render ticks make one animation frame.
const animationTickDivisor = 6

// ClickEvent is an avatar-level click, regardless of which visual part was
// hit.
type ClickEvent struct {
	Avatar *Avatar
	Double bool
}

// Avatar is a room object whose appearance is resolved from a declarative
// look description. Look resolution is asynchronous with last-request-wins
// semantics; frame cycling is independent of resolution and never touches
// the loader.
type Avatar struct {
	room.Base

	// Room coordinates. Move and WalkTo update these.
	X, Y, Z float64

	// OnClick receives clicks funneled up from any constituent sprite.
	OnClick func(ClickEvent)

	// Animating advances the frame index automatically on the shared
	// ticker. Off by default; walking turns it on for its duration.
	Animating bool

	loader Loader
	log    *zap.Logger

	look      LookDescription
	lookDirty bool

	frame      int
	frameDirty bool

	// requestGen tags reload requests; only the response carrying the
	// latest generation is applied.
	requestGen uint64

	// droppedResponses counts stale resolutions discarded on arrival.
	droppedResponses uint64

	result   *LookResult
	reloads  int
	tickSeq  uint64
	cancelFn func()

	cache *spriteCache

	node  *warren.Node
	group *warren.Node

	walk *walkState
}

// Option configures an Avatar at construction.
type Option func(*Avatar)

// WithLogger attaches a logger. Avatars are silent by default.
func WithLogger(log *zap.Logger) Option {
	return func(a *Avatar) { a.log = log }
}

// WithLook sets the initial look description.
func WithLook(look LookDescription) Option {
	return func(a *Avatar) { a.look = look }
}

// New builds an unattached avatar resolving its looks through the given
// loader.
func New(loader Loader, opts ...Option) *Avatar {
	if loader == nil {
		panic("avatar: nil loader")
	}
	a := &Avatar{
		loader:    loader,
		log:       zap.NewNop(),
		lookDirty: true,
		cache:     newSpriteCache(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Look returns the current look description.
func (a *Avatar) Look() LookDescription { return a.look }

// SetLook replaces the look description. Equal looks (per render-equality,
// including action-set reordering) are ignored; a materially different look
// marks the avatar for one reload on the next tick.
func (a *Avatar) SetLook(look LookDescription) {
	if a.look.Equal(look) {
		return
	}
	a.look = look
	a.lookDirty = true
}

// Frame returns the current frame index.
func (a *Avatar) Frame() int { return a.frame }

// SetFrame jumps to a frame index. The sprite graph refreshes on the next
// tick; no look resolution happens.
func (a *Avatar) SetFrame(f int) {
	if f == a.frame {
		return
	}
	a.frame = f
	a.frameDirty = true
}

// Reloads returns how many look resolutions have been issued.
func (a *Avatar) Reloads() int { return a.reloads }

// DroppedResponses returns how many stale resolutions were discarded.
func (a *Avatar) DroppedResponses() uint64 { return a.droppedResponses }

// Node returns the avatar's root scene node, nil before attach.
func (a *Avatar) Node() *warren.Node { return a.node }

// Registered mounts the avatar's root node, subscribes to the ticker and
// issues the initial look resolution immediately.
func (a *Avatar) Registered() {
	ctx := a.Ctx()
	a.node = warren.NewContainer("avatar")
	ctx.Container.AddChild(a.node)
	a.place()

	a.cancelFn = ctx.Ticker.OnTick(a.tick)
	a.issueReload()
}

// Destroyed unsubscribes and releases the sprite graph. Cached sprites are
// disposed along with the cache itself.
func (a *Avatar) Destroyed() {
	if a.cancelFn != nil {
		a.cancelFn()
		a.cancelFn = nil
	}
	a.releaseGroup()
	a.cache.dispose()
	a.node.RemoveFromParent()
	a.node.Dispose()
	a.node = nil
	a.result = nil
}

// Move places the avatar at a room coordinate immediately.
func (a *Avatar) Move(x, y, z float64) {
	a.X, a.Y, a.Z = x, y, z
	if a.node != nil {
		a.place()
	}
}

func (a *Avatar) place() {
	sx, sy := a.Ctx().Projector.Project(a.X, a.Y, a.Z, room.PlacementObject)
	a.node.SetPosition(sx, sy)
	a.node.SetZIndex(room.DepthIndex(a.X, a.Y, a.Z) + avatarDepthBias)
}

// avatarDepthBias lifts avatars above cursors on the same cell.
const avatarDepthBias = 200

// tick runs once per render tick: walking first, then one of the two dirty
// paths. Look resolution wins over a plain frame refresh since acceptance
// rebuilds the graph anyway.
func (a *Avatar) tick() {
	a.tickSeq++
	a.updateWalk()

	if a.Animating && a.tickSeq%animationTickDivisor == 0 {
		a.SetFrame(a.frame + 1)
	}

	switch {
	case a.lookDirty:
		a.issueReload()
	case a.frameDirty:
		a.frameDirty = false
		a.rebuildSprites()
	}
}

// issueReload sends the current look to the loader tagged with a fresh
// generation. The dirty flag clears at issue time, not on completion, so a
// failed resolution is not retried every tick; the avatar keeps its last
// successfully resolved frame.
func (a *Avatar) issueReload() {
	a.lookDirty = false
	a.requestGen++
	gen := a.requestGen
	a.reloads++
	look := a.look

	a.loader.ResolveLook(look, func(res LookResult, err error) {
		if gen != a.requestGen {
			// a newer request was issued while this one was in flight
			a.droppedResponses++
			a.log.Debug("stale look resolution dropped",
				zap.Uint64("generation", gen),
				zap.Uint64("latest", a.requestGen))
			return
		}
		if err != nil {
			a.log.Warn("look resolution failed", zap.Error(err))
			return
		}
		if a.node == nil {
			// destroyed while the request was in flight
			return
		}
		a.result = &res
		a.rebuildSprites()
	})
}

// rebuildSprites reconstructs the child visual group for the active draw
// definition at the current frame. Sprites are pulled from the per-avatar
// cache and reparented into a fresh group; cached sprites absent from this
// frame are hidden and made hit-transparent rather than destroyed.
func (a *Avatar) rebuildSprites() {
	if a.result == nil || a.node == nil {
		return
	}

	group := warren.NewContainer("avatar-frame")
	used := make(map[string]bool, len(a.result.Definition.Parts))

	for i, part := range a.result.Definition.Parts {
		asset, ok := part.AssetForFrame(a.frame)
		if !ok {
			continue
		}
		img, ok := a.result.Textures.Texture(asset.ID)
		if !ok {
			// texture not loaded yet; skip the part this frame
			continue
		}

		sprite := a.cache.acquire(asset.ID, func() *warren.Node {
			n := warren.NewSprite(fmt.Sprintf("avatar-part-%s", asset.ID), nil)
			n.Interactable = true
			n.OnClick = func(warren.ClickContext) { a.fireClick(false) }
			n.OnDoubleClick = func(warren.ClickContext) { a.fireClick(true) }
			return n
		})

		sprite.SetImage(img)
		sprite.SetPosition(asset.OffsetX, asset.OffsetY)
		sprite.SetMirrored(asset.Mirror)
		sprite.SetZIndex(i)
		sprite.SetVisible(true)
		sprite.HitIgnore = false
		if part.Mode == RenderColored {
			sprite.SetColor(part.Color)
		} else {
			sprite.SetColor(warren.ColorWhite)
		}

		group.AddChild(sprite)
		used[asset.ID] = true
	}

	a.cache.each(func(id string, n *warren.Node) {
		if !used[id] {
			n.SetVisible(false)
			n.HitIgnore = true
		}
	})

	a.releaseGroup()
	a.group = group
	a.node.AddChild(group)
}

// releaseGroup drops the current visual group without disposing the cached
// sprites inside it.
func (a *Avatar) releaseGroup() {
	if a.group == nil {
		return
	}
	a.group.RemoveChildren()
	a.group.RemoveFromParent()
	a.group.Dispose()
	a.group = nil
}

func (a *Avatar) fireClick(double bool) {
	if a.OnClick != nil {
		a.OnClick(ClickEvent{Avatar: a, Double: double})
	}
}
