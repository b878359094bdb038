package room

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/warren"
)

// Floor is one walkable tile of the room plane.
type Floor struct {
	Base

	// Room coordinates of the tile, set before attach.
	X, Y, Z int
	// Door marks the tile as the one a door wall opens onto.
	Door bool

	thickness float64
	color     warren.Color
	texture   *ebiten.Image

	node    *warren.Node
	ownsImg bool
}

// NewFloor builds an unattached floor tile with the given style values.
func NewFloor(x, y, z int, style Style) *Floor {
	return &Floor{
		X: x, Y: y, Z: z,
		thickness: style.TileHeight,
		color:     style.FloorColor,
		texture:   style.FloorTexture,
	}
}

// Registered builds the tile's sprite and mounts it.
func (f *Floor) Registered() {
	ctx := f.Ctx()
	f.node = warren.NewSprite(fmt.Sprintf("floor-%d-%d", f.X, f.Y), nil)
	f.refreshImage()
	f.node.SetColor(f.color)

	sx, sy := ctx.Projector.Project(float64(f.X), float64(f.Y), float64(f.Z), PlacementPlane)
	f.node.SetPosition(sx, sy)
	f.node.SetZIndex(DepthIndex(float64(f.X), float64(f.Y), float64(f.Z)))
	ctx.Container.AddChild(f.node)
}

// Destroyed releases the tile's sprite.
func (f *Floor) Destroyed() {
	f.releaseImage()
	f.node.RemoveFromParent()
	f.node.Dispose()
	f.node = nil
}

// SetThickness updates the tile's side-face depth in place.
func (f *Floor) SetThickness(px float64) {
	if px == f.thickness {
		return
	}
	f.thickness = px
	if f.node != nil {
		f.refreshImage()
	}
}

// SetColor updates the tile tint in place.
func (f *Floor) SetColor(c warren.Color) {
	f.color = c
	if f.node != nil {
		f.node.SetColor(c)
	}
}

func (f *Floor) refreshImage() {
	f.releaseImage()
	if f.texture != nil {
		f.node.SetImage(f.texture)
		return
	}
	f.node.SetImage(tileImage(f.thickness))
	f.ownsImg = true
}

func (f *Floor) releaseImage() {
	if f.ownsImg && f.node != nil && f.node.Image != nil {
		f.node.Image.Deallocate()
	}
	f.ownsImg = false
}
