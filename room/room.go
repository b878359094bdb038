package room

import (
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/phanxgames/warren"
)

// Room owns a parsed tile map and the render objects derived from it. The
// plane (tiles, walls, stairs) lives in a cached container; cursors and
// free-moving objects live in a separate uncached one so avatar movement
// never invalidates the plane raster.
type Room struct {
	tm    *TileMap
	proj  *Projector
	style Style

	container       *warren.Node
	planeContainer  *warren.Node
	objectContainer *warren.Node
	ticker          *warren.Ticker

	floors  []*Floor
	walls   []*Wall
	stairs  []*Stairs
	cursors []*Cursor
	objects []Object

	// doorWall is the wall carrying the door cutout, nil when the map has
	// no door tile.
	doorWall *Wall

	rebuilds int

	// OnTileClick receives clicks on walkable tiles.
	OnTileClick func(TileClick)

	log *zap.Logger

	// Loader is handed through to attached objects untouched.
	loader any
}

// Option configures a Room at construction.
type Option func(*Room)

// WithStyle sets the initial style.
func WithStyle(s Style) Option {
	return func(r *Room) { r.style = s }
}

// WithLogger attaches a logger. Rooms are silent by default.
func WithLogger(log *zap.Logger) Option {
	return func(r *Room) { r.log = log }
}

// WithLoader stores an opaque asset provider handed to attached objects
// through their context.
func WithLoader(loader any) Option {
	return func(r *Room) { r.loader = loader }
}

// New parses the raw grid, mounts the room's containers under parent and
// performs the initial full build. Parsing happens exactly once per Room;
// style changes never re-parse.
func New(raw [][]RawTile, parent *warren.Node, ticker *warren.Ticker, opts ...Option) (*Room, error) {
	tm, err := ParseTileMap(raw)
	if err != nil {
		return nil, err
	}
	return fromTileMap(tm, parent, ticker, opts...), nil
}

// NewFromString is New for the textual tile-map grammar.
func NewFromString(s string, parent *warren.Node, ticker *warren.Ticker, opts ...Option) (*Room, error) {
	tm, err := ParseTileMapString(s)
	if err != nil {
		return nil, err
	}
	return fromTileMap(tm, parent, ticker, opts...), nil
}

func fromTileMap(tm *TileMap, parent *warren.Node, ticker *warren.Ticker, opts ...Option) *Room {
	r := &Room{
		tm:    tm,
		proj:  NewProjector(tm),
		style: DefaultStyle(),
		log:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}

	r.container = warren.NewContainer("room")
	r.planeContainer = warren.NewContainer("room-plane")
	r.planeContainer.SetCacheAsTexture(true)
	r.objectContainer = warren.NewContainer("room-objects")
	r.container.AddChild(r.planeContainer)
	r.container.AddChild(r.objectContainer)
	parent.AddChild(r.container)
	r.ticker = ticker

	r.rebuild()
	return r
}

// Node returns the room's root container.
func (r *Room) Node() *warren.Node { return r.container }

// TileMap returns the parsed grid.
func (r *Room) TileMap() *TileMap { return r.tm }

// Projector returns the room's coordinate projector.
func (r *Room) Projector() *Projector { return r.proj }

// Style returns the current style values.
func (r *Room) Style() Style { return r.style }

// DoorWall returns the wall carrying the door cutout, or nil.
func (r *Room) DoorWall() *Wall { return r.doorWall }

// TileAt looks up the parsed tile at an object-space coordinate. Out-of-grid
// coordinates report false rather than failing.
func (r *Room) TileAt(x, y int) (ParsedTile, bool) {
	return r.tm.TileAt(x, y)
}

// Position projects a room coordinate to screen pixels relative to the
// room's container.
func (r *Room) Position(x, y, z float64, placement Placement) (float64, float64) {
	return r.proj.Project(x, y, z, placement)
}

// ApplyStyle merges a partial style update and reports how it was applied:
// cosmetic patches propagate to existing objects in place, structural
// patches tear everything down and rebuild from the grid.
func (r *Room) ApplyStyle(patch StylePatch) StyleChange {
	change := patch.apply(&r.style)
	switch change {
	case StyleCosmetic:
		r.propagateStyle()
	case StyleStructural:
		r.rebuild()
	}
	if change != StyleUnchanged {
		r.log.Debug("room style applied",
			zap.Int("change", int(change)),
			zap.Int("rebuilds", r.rebuilds))
	}
	return change
}

// SetWallHeight updates the wall height style parameter.
func (r *Room) SetWallHeight(px float64) { r.ApplyStyle(StylePatch{WallHeight: &px}) }

// SetWallDepth updates the wall depth style parameter.
func (r *Room) SetWallDepth(px float64) { r.ApplyStyle(StylePatch{WallDepth: &px}) }

// SetTileHeight updates the floor thickness style parameter.
func (r *Room) SetTileHeight(px float64) { r.ApplyStyle(StylePatch{TileHeight: &px}) }

// SetWallColor updates the wall tint.
func (r *Room) SetWallColor(c warren.Color) { r.ApplyStyle(StylePatch{WallColor: &c}) }

// SetFloorColor updates the floor tint.
func (r *Room) SetFloorColor(c warren.Color) { r.ApplyStyle(StylePatch{FloorColor: &c}) }

// SetWallTexture overrides the procedural wall fill; nil restores it.
func (r *Room) SetWallTexture(img *ebiten.Image) { r.ApplyStyle(StylePatch{WallTexture: &img}) }

// SetFloorTexture overrides the procedural floor fill; nil restores it.
func (r *Room) SetFloorTexture(img *ebiten.Image) { r.ApplyStyle(StylePatch{FloorTexture: &img}) }

// SetHideWalls toggles wall visibility.
func (r *Room) SetHideWalls(hide bool) { r.ApplyStyle(StylePatch{HideWalls: &hide}) }

// SetHideFloor toggles floor visibility.
func (r *Room) SetHideFloor(hide bool) { r.ApplyStyle(StylePatch{HideFloor: &hide}) }

// NumFloors returns the active floor-object count.
func (r *Room) NumFloors() int { return len(r.floors) }

// NumWalls returns the active wall-object count.
func (r *Room) NumWalls() int { return len(r.walls) }

// NumStairs returns the active stair-object count.
func (r *Room) NumStairs() int { return len(r.stairs) }

// NumCursors returns the active cursor-object count.
func (r *Room) NumCursors() int { return len(r.cursors) }

// Rebuilds returns how many full plane builds have run, including the
// initial one.
func (r *Room) Rebuilds() int { return r.rebuilds }

// planeContext is the context plane members attach with.
func (r *Room) planeContext() Context {
	return Context{
		Container: r.planeContainer,
		Projector: r.proj,
		TileMap:   r.tm,
		Ticker:    r.ticker,
		Loader:    r.loader,
	}
}

// ObjectContext is the context free-moving members (avatars, furniture,
// cursors) attach with.
func (r *Room) ObjectContext() Context {
	return Context{
		Container: r.objectContainer,
		Projector: r.proj,
		TileMap:   r.tm,
		Ticker:    r.ticker,
		Loader:    r.loader,
	}
}

// AddObject attaches a free-moving object to the room.
func (r *Room) AddObject(obj Object) error {
	if err := SetParent(obj, r.ObjectContext()); err != nil {
		return err
	}
	r.objects = append(r.objects, obj)
	return nil
}

// RemoveObject destroys an attached object and forgets it.
func (r *Room) RemoveObject(obj Object) {
	for i, o := range r.objects {
		if o == obj {
			r.objects = append(r.objects[:i], r.objects[i+1:]...)
			break
		}
	}
	Destroy(obj)
}

// Destroy tears down every render object and unmounts the room.
func (r *Room) Destroy() {
	r.teardownPlane()
	for _, o := range r.objects {
		Destroy(o)
	}
	r.objects = nil
	r.container.RemoveFromParent()
	r.container.Dispose()
}

// propagateStyle walks the existing plane objects and updates the cosmetic
// properties in place. Object identity and count never change here. The
// whole walk runs inside one cache-suspension bracket so the plane is never
// rasterized with a partially updated batch.
func (r *Room) propagateStyle() {
	r.planeContainer.Batch(func() {
		for _, f := range r.floors {
			f.SetThickness(r.style.TileHeight)
			f.SetColor(r.style.FloorColor)
		}
		for _, w := range r.walls {
			w.SetHeight(r.style.WallHeight)
			w.SetDepth(r.style.WallDepth)
			w.SetColor(r.style.WallColor)
		}
		for _, s := range r.stairs {
			s.SetThickness(r.style.TileHeight)
			s.SetColor(r.style.FloorColor)
		}
	})
}

// rebuild tears down all plane objects and regenerates them from the grid,
// left to right, top to bottom. Partial reconciliation is deliberately not
// attempted; the grid is small and teardown keeps object bookkeeping
// trivial.
func (r *Room) rebuild() {
	r.planeContainer.Batch(func() {
		r.teardownPlane()

		off := r.tm.WallOffsets
		for gy := 0; gy < r.tm.Height; gy++ {
			for gx := 0; gx < r.tm.Width; gx++ {
				t := r.tm.Grid[gy][gx]
				x := gx - off.X
				y := gy - off.Y
				r.emitCell(t, x, y)
			}
		}
	})
	r.rebuilds++
	r.log.Debug("room rebuilt",
		zap.Int("floors", len(r.floors)),
		zap.Int("walls", len(r.walls)),
		zap.Int("stairs", len(r.stairs)),
		zap.Int("cursors", len(r.cursors)))
}

// emitCell creates the render objects one grid cell calls for.
func (r *Room) emitCell(t ParsedTile, x, y int) {
	switch t.Kind {
	case KindDoor:
		if !r.style.HideFloor {
			f := NewFloor(x, y, t.Z, r.style)
			f.Door = true
			r.attachFloor(f)
		}
		if !r.style.HideWalls {
			w := NewWall(x, y, t.Z, WallRow, r.style)
			w.Door = true
			r.attachWall(w)
			r.doorWall = w
		}
		r.attachCursor(NewCursor(x, y, t.Z, true, r.dispatchTileClick))

	case KindFloor:
		if !r.style.HideFloor {
			r.attachFloor(NewFloor(x, y, t.Z, r.style))
		}
		r.attachCursor(NewCursor(x, y, t.Z, false, r.dispatchTileClick))

	case KindStairs:
		if !r.style.HideFloor {
			r.attachStairs(NewStairs(x, y, t.Z, t.Stairs, r.style))
		}
		// one cursor at the base, one at the landing
		r.attachCursor(NewCursor(x, y, t.Z, false, r.dispatchTileClick))
		r.attachCursor(NewCursor(x, y, t.Z+1, false, r.dispatchTileClick))

	case KindWall:
		if r.style.HideWalls {
			return
		}
		if t.Wall == WallInnerCorner {
			// inner corners have no face of their own; emit an undepressed
			// column+row pair meeting at the cell
			r.attachWall(r.newCompensatedWall(x, y, t))
			w2 := NewWall(x, y, t.Z, WallRow, r.style)
			w2.compensation = r.wallCompensation(t.Z)
			r.attachWall(w2)
			return
		}
		r.attachWall(r.newCompensatedWall(x, y, t))
	}
}

func (r *Room) newCompensatedWall(x, y int, t ParsedTile) *Wall {
	kind := t.Wall
	if kind == WallInnerCorner {
		kind = WallColumn
	}
	w := NewWall(x, y, t.Z, kind, r.style)
	w.HideBorder = t.HideBorder
	w.compensation = r.wallCompensation(t.Z)
	return w
}

// wallCompensation keeps wall tops level: walls beside lower floors grow by
// the elevation they are missing relative to the room's highest floor.
func (r *Room) wallCompensation(z int) float64 {
	c := float64(r.tm.LargestHeightDifference-z) * tileBase
	if c < 0 {
		c = 0
	}
	return c
}

func (r *Room) attachFloor(f *Floor) {
	if err := SetParent(f, r.planeContext()); err != nil {
		panic("room: " + err.Error())
	}
	r.floors = append(r.floors, f)
}

func (r *Room) attachWall(w *Wall) {
	if err := SetParent(w, r.planeContext()); err != nil {
		panic("room: " + err.Error())
	}
	r.walls = append(r.walls, w)
}

func (r *Room) attachStairs(s *Stairs) {
	if err := SetParent(s, r.planeContext()); err != nil {
		panic("room: " + err.Error())
	}
	r.stairs = append(r.stairs, s)
}

func (r *Room) attachCursor(c *Cursor) {
	if err := SetParent(c, r.ObjectContext()); err != nil {
		panic("room: " + err.Error())
	}
	r.cursors = append(r.cursors, c)
}

func (r *Room) dispatchTileClick(tc TileClick) {
	if r.OnTileClick != nil {
		r.OnTileClick(tc)
	}
}

// teardownPlane destroys all grid-derived objects.
func (r *Room) teardownPlane() {
	for _, f := range r.floors {
		Destroy(f)
	}
	for _, w := range r.walls {
		Destroy(w)
	}
	for _, s := range r.stairs {
		Destroy(s)
	}
	for _, c := range r.cursors {
		Destroy(c)
	}
	r.floors = nil
	r.walls = nil
	r.stairs = nil
	r.cursors = nil
	r.doorWall = nil
}
