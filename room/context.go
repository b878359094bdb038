package room

import (
	"errors"

	"github.com/phanxgames/warren"
)

// ErrMissingContext is returned by SetParent when the supplied context lacks
// a required field.
var ErrMissingContext = errors.New("room: incomplete context")

// ErrAlreadyAttached is returned by SetParent when the object already
// belongs to a room.
var ErrAlreadyAttached = errors.New("room: object already attached")

// Context carries everything a room object needs to register itself: the
// container to mount render nodes under, the projector for coordinate
// mapping, the tile map for grid queries, and a ticker for per-frame
// animation. It is a value type handed to SetParent; objects keep the copy
// they were registered with and never reach for globals.
type Context struct {
	Container *warren.Node
	Projector *Projector
	TileMap   *TileMap
	Ticker    *warren.Ticker

	// Loader provides asset resolution to objects that need it. Its concrete
	// type is owned by the consumer (e.g. the avatar package); room itself
	// never inspects it.
	Loader any
}

func (ctx Context) valid() bool {
	return ctx.Container != nil && ctx.Projector != nil && ctx.Ticker != nil
}
