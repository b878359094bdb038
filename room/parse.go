package room

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedTileMap is returned when the input grid has ragged rows or no
// walkable tile at all (nothing to anchor offsets to).
var ErrMalformedTileMap = errors.New("room: malformed tile map")

// TileMap is the parsed, offset-normalized form of a raw tile grid, plus the
// geometry derived from it. All fields are immutable after ParseTileMap.
type TileMap struct {
	// Grid is the padded, classified grid, indexed [y][x].
	Grid [][]ParsedTile

	// Width and Height are the padded grid dimensions.
	Width, Height int

	// WallOffsets is the padding the parser introduced so edge walls have a
	// neighbor cell; plane consumers (tiles, walls, stairs) add it before
	// projection.
	WallOffsets Offset

	// PositionOffsets is the object placement padding; object consumers
	// (avatars, furniture, cursors) add it before projection and grid lookup.
	PositionOffsets Offset

	// MaskOffsets aligns exterior masks (landscapes, backgrounds) with the
	// unpadded input origin.
	MaskOffsets Offset

	// Bounds is the projected-space bounding box, frozen at parse time.
	Bounds Bounds

	// LargestHeightDifference is the maximum elevation spread across all
	// walkable cells, used for wall height compensation.
	LargestHeightDifference int
}

// ParseTileMapString deserializes the textual tile-map grammar and parses
// the result. Rows are newline-separated; each cell is one character:
// '0'-'9' floor heights, 'd' a door at height 0, 'x' void. Carriage returns
// and trailing blank lines are tolerated.
func ParseTileMapString(s string) (*TileMap, error) {
	s = strings.ReplaceAll(s, "\r", "")
	lines := strings.Split(strings.Trim(s, "\n"), "\n")

	grid := make([][]RawTile, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		row := make([]RawTile, 0, len(line))
		for _, c := range line {
			switch {
			case c >= '0' && c <= '9':
				row = append(row, RawTile{Height: int(c - '0')})
			case c == 'd':
				row = append(row, RawTile{Door: true})
			case c == 'x':
				row = append(row, RawTile{Void: true})
			default:
				return nil, fmt.Errorf("%w: unknown cell %q", ErrMalformedTileMap, string(c))
			}
		}
		grid = append(grid, row)
	}
	return ParseTileMap(grid)
}

// ParseTileMap classifies a raw grid into a TileMap. Parsing is
// deterministic: the same input always yields an identical result.
func ParseTileMap(raw [][]RawTile) (*TileMap, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: empty grid", ErrMalformedTileMap)
	}
	width := len(raw[0])
	for i, row := range raw {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformedTileMap, i, len(row), width)
		}
	}
	if width == 0 {
		return nil, fmt.Errorf("%w: empty rows", ErrMalformedTileMap)
	}

	// Pad with a void margin on any edge that touches a walkable cell, so
	// every potential wall cell has a full 4-neighborhood to test against.
	padX, padY := neededPadding(raw)
	padded := padGrid(raw, padX, padY)
	h := len(padded)
	w := len(padded[0])

	walkableAt := func(x, y int) (int, bool) {
		if y < 0 || y >= h || x < 0 || x >= w {
			return 0, false
		}
		c := padded[y][x]
		if c.Void {
			return 0, false
		}
		return c.Height, true
	}

	grid := make([][]ParsedTile, h)
	minZ, maxZ := 0, 0
	sawWalkable := false
	for y := 0; y < h; y++ {
		grid[y] = make([]ParsedTile, w)
		for x := 0; x < w; x++ {
			c := padded[y][x]
			if c.Void {
				grid[y][x] = classifyVoid(x, y, walkableAt)
				continue
			}
			z := c.Height
			if !sawWalkable {
				minZ, maxZ = z, z
				sawWalkable = true
			} else {
				if z < minZ {
					minZ = z
				}
				if z > maxZ {
					maxZ = z
				}
			}
			switch {
			case c.Door:
				grid[y][x] = ParsedTile{Kind: KindDoor, Z: z}
			default:
				grid[y][x] = classifyWalkable(x, y, z, walkableAt)
			}
		}
	}

	if !sawWalkable {
		return nil, fmt.Errorf("%w: no walkable tile", ErrMalformedTileMap)
	}

	markHiddenBorders(grid)

	tm := &TileMap{
		Grid:            grid,
		Width:           w,
		Height:          h,
		WallOffsets:     Offset{X: padX, Y: padY},
		PositionOffsets: Offset{X: padX, Y: padY},
		MaskOffsets:     Offset{X: -padX, Y: -padY},
		LargestHeightDifference: maxZ - minZ,
	}
	tm.Bounds = computeBounds(grid)
	return tm, nil
}

// neededPadding reports whether a void margin is required on the left (x)
// and top (y) edges. Walls only ever form behind (above/left of) the room,
// so only those edges need room to grow.
func neededPadding(raw [][]RawTile) (padX, padY int) {
	for x := 0; x < len(raw[0]); x++ {
		if !raw[0][x].Void {
			padY = 1
			break
		}
	}
	for y := 0; y < len(raw); y++ {
		if !raw[y][0].Void {
			padX = 1
			break
		}
	}
	return padX, padY
}

// padGrid returns raw with padX void columns prepended to every row and padY
// void rows prepended on top.
func padGrid(raw [][]RawTile, padX, padY int) [][]RawTile {
	w := len(raw[0]) + padX
	out := make([][]RawTile, 0, len(raw)+padY)
	for i := 0; i < padY; i++ {
		row := make([]RawTile, w)
		for j := range row {
			row[j] = RawTile{Void: true}
		}
		out = append(out, row)
	}
	for _, src := range raw {
		row := make([]RawTile, 0, w)
		for i := 0; i < padX; i++ {
			row = append(row, RawTile{Void: true})
		}
		row = append(row, src...)
		out = append(out, row)
	}
	return out
}

// classifyWalkable decides between plain floor and stairs. A cell becomes
// stairs when the neighbor above or to the left sits exactly one unit
// higher; the step ascends toward that neighbor.
func classifyWalkable(x, y, z int, walkableAt func(int, int) (int, bool)) ParsedTile {
	if nz, ok := walkableAt(x, y-1); ok && nz == z+1 {
		return ParsedTile{Kind: KindStairs, Z: z, Stairs: StairsNorth}
	}
	if nz, ok := walkableAt(x-1, y); ok && nz == z+1 {
		return ParsedTile{Kind: KindStairs, Z: z, Stairs: StairsWest}
	}
	return ParsedTile{Kind: KindFloor, Z: z}
}

// classifyVoid decides whether a void cell hosts a wall segment, and of
// which kind, from its 4-neighborhood plus the south-east diagonal:
//
//   - walkable to the south only      -> row wall (left-facing)
//   - walkable to the east only       -> column wall (right-facing)
//   - walkable to south and east      -> inner corner (concave, L-shaped room)
//   - only the diagonal walkable      -> outer corner (convex room tip)
func classifyVoid(x, y int, walkableAt func(int, int) (int, bool)) ParsedTile {
	sz, south := walkableAt(x, y+1)
	ez, east := walkableAt(x+1, y)
	dz, diag := walkableAt(x+1, y+1)

	switch {
	case south && east:
		z := sz
		if ez < z {
			z = ez
		}
		return ParsedTile{Kind: KindWall, Wall: WallInnerCorner, Z: z}
	case south:
		return ParsedTile{Kind: KindWall, Wall: WallRow, Z: sz}
	case east:
		return ParsedTile{Kind: KindWall, Wall: WallColumn, Z: ez}
	case diag:
		return ParsedTile{Kind: KindWall, Wall: WallOuterCorner, Z: dz}
	default:
		return ParsedTile{Kind: KindVoid}
	}
}

// markHiddenBorders sets HideBorder on wall cells whose predecessor along
// the wall's running axis is also a wall, so the shared border is drawn
// only once.
func markHiddenBorders(grid [][]ParsedTile) {
	for y := range grid {
		for x := range grid[y] {
			t := &grid[y][x]
			if t.Kind != KindWall {
				continue
			}
			switch t.Wall {
			case WallRow:
				if x > 0 && grid[y][x-1].Kind == KindWall && grid[y][x-1].Wall == WallRow {
					t.HideBorder = true
				}
			case WallColumn:
				if y > 0 && grid[y-1][x].Kind == KindWall && grid[y-1][x].Wall == WallColumn {
					t.HideBorder = true
				}
			}
		}
	}
}

// computeBounds projects every non-void cell and returns the projected-space
// extents. Wall heights and other cosmetic style values are excluded on
// purpose; see Bounds.
func computeBounds(grid [][]ParsedTile) Bounds {
	var b Bounds
	first := true
	for y := range grid {
		for x := range grid[y] {
			t := grid[y][x]
			if t.Kind == KindVoid {
				continue
			}
			px := float64(x)*tileBase - float64(y)*tileBase
			py := float64(x)*tileBase/2 + float64(y)*tileBase/2
			top := py - float64(t.Z)*tileBase
			if first {
				b = Bounds{MinX: px, MaxX: px, MinY: top, MaxY: py}
				first = false
				continue
			}
			if px < b.MinX {
				b.MinX = px
			}
			if px > b.MaxX {
				b.MaxX = px
			}
			if top < b.MinY {
				b.MinY = top
			}
			if py > b.MaxY {
				b.MaxY = py
			}
		}
	}
	return b
}

// TileAt returns the parsed tile at the given object-space coordinate, or
// false when the coordinate is outside the grid. Lookup misses are not
// errors; callers degrade to "do nothing".
func (tm *TileMap) TileAt(roomX, roomY int) (ParsedTile, bool) {
	gx := roomX + tm.PositionOffsets.X
	gy := roomY + tm.PositionOffsets.Y
	if gy < 0 || gy >= tm.Height || gx < 0 || gx >= tm.Width {
		return ParsedTile{}, false
	}
	return tm.Grid[gy][gx], true
}
