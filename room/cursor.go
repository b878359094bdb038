package room

import (
	"fmt"

	"github.com/phanxgames/warren"
)

// TileClick describes a click on a walkable tile, delivered through the
// room's OnTileClick handler.
type TileClick struct {
	X, Y, Z int
	// Door is set when the clicked tile is the room's door tile.
	Door bool
	// Double is set for the second click of a double-click pair.
	Double bool
}

// Cursor is the invisible click target covering one walkable tile. It owns
// the diamond hit shape; the highlight ring only shows while the pointer
// is pressed on it.
type Cursor struct {
	Base

	X, Y, Z int
	Door    bool

	onClick func(TileClick)

	node *warren.Node
}

// NewCursor builds an unattached tile cursor reporting into the given
// handler.
func NewCursor(x, y, z int, door bool, onClick func(TileClick)) *Cursor {
	return &Cursor{X: x, Y: y, Z: z, Door: door, onClick: onClick}
}

// Registered builds the cursor's sprite and mounts it.
func (c *Cursor) Registered() {
	ctx := c.Ctx()
	c.node = warren.NewSprite(fmt.Sprintf("cursor-%d-%d-%d", c.X, c.Y, c.Z), cursorImage())
	c.node.Alpha = 0
	c.node.Interactable = true
	c.node.UserData = c

	// hit shape is the tile-top diamond, not the image rectangle
	w := float64(tileBase * 2)
	h := float64(tileBase)
	c.node.HitShape = warren.HitPolygon{Points: []warren.Vec2{
		{X: w / 2, Y: 0},
		{X: w, Y: h / 2},
		{X: w / 2, Y: h},
		{X: 0, Y: h / 2},
	}}
	c.node.OnClick = func(cc warren.ClickContext) {
		if c.onClick != nil {
			c.onClick(TileClick{X: c.X, Y: c.Y, Z: c.Z, Door: c.Door})
		}
	}
	c.node.OnDoubleClick = func(cc warren.ClickContext) {
		if c.onClick != nil {
			c.onClick(TileClick{X: c.X, Y: c.Y, Z: c.Z, Door: c.Door, Double: true})
		}
	}

	sx, sy := ctx.Projector.Project(float64(c.X), float64(c.Y), float64(c.Z), PlacementObject)
	c.node.SetPosition(sx, sy)
	c.node.SetZIndex(DepthIndex(float64(c.X), float64(c.Y), float64(c.Z)) + cursorDepthBias)
	ctx.Container.AddChild(c.node)
}

// Destroyed releases the cursor's sprite.
func (c *Cursor) Destroyed() {
	if c.node.Image != nil {
		c.node.Image.Deallocate()
	}
	c.node.RemoveFromParent()
	c.node.Dispose()
	c.node = nil
}

// cursorDepthBias lifts cursors above the tile they cover.
const cursorDepthBias = 100
