package room

import (
	"fmt"

	"github.com/phanxgames/warren"
)

// Stairs is one stair tile bridging a one-unit elevation change.
type Stairs struct {
	Base

	// Room coordinates of the stair's base, set before attach. Z is the
	// lower of the two elevations the stair connects.
	X, Y, Z int
	// Kind gives the ascent direction.
	Kind StairsKind

	thickness float64
	color     warren.Color

	node *warren.Node
}

// NewStairs builds an unattached stair tile with the given style values.
func NewStairs(x, y, z int, kind StairsKind, style Style) *Stairs {
	return &Stairs{
		X: x, Y: y, Z: z,
		Kind:      kind,
		thickness: style.TileHeight,
		color:     style.FloorColor,
	}
}

// Registered builds the stair's sprite and mounts it.
func (s *Stairs) Registered() {
	ctx := s.Ctx()
	s.node = warren.NewSprite(fmt.Sprintf("stairs-%d-%d", s.X, s.Y), stairsImage(s.Kind, s.thickness))
	s.node.SetColor(s.color)

	// anchored at the landing elevation so the top step meets the upper
	// floor edge
	sx, sy := ctx.Projector.Project(float64(s.X), float64(s.Y), float64(s.Z+1), PlacementPlane)
	s.node.SetPosition(sx, sy)
	s.node.SetZIndex(DepthIndex(float64(s.X), float64(s.Y), float64(s.Z)))
	ctx.Container.AddChild(s.node)
}

// Destroyed releases the stair's sprite.
func (s *Stairs) Destroyed() {
	if s.node.Image != nil {
		s.node.Image.Deallocate()
	}
	s.node.RemoveFromParent()
	s.node.Dispose()
	s.node = nil
}

// SetThickness updates the step riser depth in place.
func (s *Stairs) SetThickness(px float64) {
	if px == s.thickness {
		return
	}
	s.thickness = px
	if s.node != nil {
		if s.node.Image != nil {
			s.node.Image.Deallocate()
		}
		s.node.SetImage(stairsImage(s.Kind, s.thickness))
	}
}

// SetColor updates the stair tint in place.
func (s *Stairs) SetColor(c warren.Color) {
	s.color = c
	if s.node != nil {
		s.node.SetColor(c)
	}
}
