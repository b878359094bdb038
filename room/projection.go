package room

// tileBase is the half-width of an isometric tile in pixels. Every other
// projection constant is derived from it.
const tileBase = 32

// Placement selects which offset pair a projected coordinate belongs to.
type Placement int

const (
	// PlacementNone projects raw grid coordinates with no offset applied.
	PlacementNone Placement = iota
	// PlacementPlane is for tiles, walls and stairs (wall offsets).
	PlacementPlane
	// PlacementObject is for avatars, furniture and cursors (position
	// offsets).
	PlacementObject
)

// Projector maps room-space coordinates to screen-space pixels. It captures
// the tile map's offsets and bounds at construction and never observes later
// style changes, so projected positions stay stable for the room's lifetime.
type Projector struct {
	wall   Offset
	pos    Offset
	bounds Bounds
}

// NewProjector builds a projector over the given tile map.
func NewProjector(tm *TileMap) *Projector {
	return &Projector{
		wall:   tm.WallOffsets,
		pos:    tm.PositionOffsets,
		bounds: tm.Bounds,
	}
}

// Project maps a room coordinate to screen pixels. X grows toward the lower
// right of the screen, Y toward the lower left, Z straight up.
func (p *Projector) Project(x, y, z float64, placement Placement) (sx, sy float64) {
	switch placement {
	case PlacementPlane:
		x += float64(p.wall.X)
		y += float64(p.wall.Y)
	case PlacementObject:
		x += float64(p.pos.X)
		y += float64(p.pos.Y)
	}
	sx = x*tileBase - y*tileBase - p.bounds.MinX
	sy = x*tileBase/2 + y*tileBase/2 - z*tileBase - p.bounds.MinY
	return sx, sy
}

// Size returns the projected footprint of the room in pixels, excluding
// style-dependent extents such as wall height.
func (p *Projector) Size() (w, h float64) {
	return p.bounds.MaxX - p.bounds.MinX + tileBase*2, p.bounds.MaxY - p.bounds.MinY + tileBase
}

// DepthIndex produces a z-ordering key for a room coordinate: objects
// further down the screen draw on top. Elevation breaks ties so an object
// standing on a platform covers the platform's edge.
func DepthIndex(x, y, z float64) int {
	return int(x*1000 + y*1000 + z)
}
