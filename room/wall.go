package room

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/warren"
)

// Wall is one wall segment standing on a void cell at the edge of the
// walkable plane.
type Wall struct {
	Base

	// Room coordinates of the cell the wall stands on, set before attach.
	X, Y, Z int
	// Kind selects the face orientation (row, column, outer corner). Inner
	// corners never reach this type; the room emits a synthetic row+column
	// pair for them instead.
	Kind WallKind
	// Door carves a doorway opening into the face.
	Door bool
	// HideBorder suppresses the shared border with the preceding wall
	// along the running axis.
	HideBorder bool

	// compensation is the extra face height, in pixels, that keeps wall
	// tops level across elevation changes in the floor below.
	compensation float64

	height  float64
	depth   float64
	color   warren.Color
	texture *ebiten.Image

	node    *warren.Node
	ownsImg bool
}

// NewWall builds an unattached wall segment with the given style values.
func NewWall(x, y, z int, kind WallKind, style Style) *Wall {
	return &Wall{
		X: x, Y: y, Z: z,
		Kind:    kind,
		height:  style.WallHeight,
		depth:   style.WallDepth,
		color:   style.WallColor,
		texture: style.WallTexture,
	}
}

// Registered builds the wall's sprite and mounts it.
func (w *Wall) Registered() {
	ctx := w.Ctx()
	w.node = warren.NewSprite(fmt.Sprintf("wall-%d-%d", w.X, w.Y), nil)
	w.refreshImage()
	w.node.SetColor(w.color)
	w.place()
	ctx.Container.AddChild(w.node)
}

// Destroyed releases the wall's sprite.
func (w *Wall) Destroyed() {
	w.releaseImage()
	w.node.RemoveFromParent()
	w.node.Dispose()
	w.node = nil
}

// Height returns the wall's current face height in pixels, excluding
// elevation compensation.
func (w *Wall) Height() float64 { return w.height }

// SetHeight updates the face height in place.
func (w *Wall) SetHeight(px float64) {
	if px == w.height {
		return
	}
	w.height = px
	if w.node != nil {
		w.refreshImage()
		w.place()
	}
}

// SetDepth updates the top strip depth in place.
func (w *Wall) SetDepth(px float64) {
	if px == w.depth {
		return
	}
	w.depth = px
	if w.node != nil {
		w.refreshImage()
	}
}

// SetColor updates the wall tint in place.
func (w *Wall) SetColor(c warren.Color) {
	w.color = c
	if w.node != nil {
		w.node.SetColor(c)
	}
}

func (w *Wall) faceHeight() float64 {
	return w.height + w.compensation
}

func (w *Wall) place() {
	ctx := w.Ctx()
	sx, sy := ctx.Projector.Project(float64(w.X), float64(w.Y), float64(w.Z), PlacementPlane)
	w.node.SetPosition(sx, sy-w.faceHeight())
	w.node.SetZIndex(DepthIndex(float64(w.X), float64(w.Y), float64(w.Z)) - wallDepthBias)
}

// wallDepthBias pushes walls behind anything placed on the same cell.
const wallDepthBias = 500

func (w *Wall) refreshImage() {
	w.releaseImage()
	if w.texture != nil {
		w.node.SetImage(w.texture)
		return
	}
	switch w.Kind {
	case WallOuterCorner:
		w.node.SetImage(cornerWallImage(w.faceHeight()))
	case WallColumn:
		w.node.SetImage(wallImage(facingRight, w.faceHeight(), w.depth, w.Door, w.HideBorder))
	default:
		w.node.SetImage(wallImage(facingLeft, w.faceHeight(), w.depth, w.Door, w.HideBorder))
	}
	w.ownsImg = true
}

func (w *Wall) releaseImage() {
	if w.ownsImg && w.node != nil && w.node.Image != nil {
		w.node.Image.Deallocate()
	}
	w.ownsImg = false
}
