// Package room implements the isometric room geometry and scene composition
// engine: tile-map parsing, coordinate projection, and the render-object
// lifecycle for floor tiles, walls, stairs, and click cursors.
package room

// RawTile is one cell of the input grid: a floor height, a door marker, or
// void. Immutable input; a raw grid is produced by whatever collaborator owns
// the room data and handed to ParseTileMap.
type RawTile struct {
	Height int  // floor elevation, valid when !Void
	Door   bool // walkable door tile at Height
	Void   bool // hole outside the room shape
}

// TileKind tags a parsed cell.
type TileKind uint8

const (
	KindVoid   TileKind = iota // nothing here
	KindFloor                  // walkable floor tile
	KindStairs                 // walkable floor tile with a step up to a neighbor
	KindDoor                   // walkable door tile (gets a wall cutout)
	KindWall                   // non-walkable cell rendered as a wall segment
)

// WallKind identifies which wall piece a wall cell renders.
type WallKind uint8

const (
	WallRow         WallKind = iota // wall running along the X axis (left-facing)
	WallColumn                      // wall running along the Y axis (right-facing)
	WallOuterCorner                 // convex corner where row and column walls meet
	WallInnerCorner                 // concave corner; emits a synthetic pair at build time
)

// StairsKind identifies the axis a stair cell ascends along.
type StairsKind uint8

const (
	StairsNorth StairsKind = iota // step up toward decreasing Y
	StairsWest                    // step up toward decreasing X
)

// ParsedTile is the classified form of one grid cell. Produced once per
// parse; the grid is replaced wholesale on re-parse, never edited in place.
type ParsedTile struct {
	Kind TileKind

	// Z is the cell elevation: the floor height for walkable kinds, and the
	// adjacent floor's height for walls.
	Z int

	// Wall fields, valid when Kind == KindWall.
	Wall       WallKind
	HideBorder bool

	// Stairs fields, valid when Kind == KindStairs.
	Stairs StairsKind
}

// Walkable reports whether the cell can hold an object.
func (t ParsedTile) Walkable() bool {
	return t.Kind == KindFloor || t.Kind == KindStairs || t.Kind == KindDoor
}

// Offset is a 2D offset pair in logical tile units. The parser produces
// three distinct pairs (wall, position, mask); each consumer must use the
// pair that matches its placement kind; conflating them misplaces objects
// relative to planes.
type Offset struct {
	X, Y int
}

// Bounds is the projected-space bounding box of the parsed grid, in screen
// pixels. Computed once at parse time and deliberately never recomputed when
// cosmetic style parameters change, so every object's anchor stays stable.
type Bounds struct {
	MinX, MinY float64
	MaxX, MaxY float64
}
