package warren

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Stage is the top-level object that owns the node tree, the animation
// ticker, input state, and render buffers. It fills the role of a scene:
// host code calls Update once per logical tick and Draw once per frame.
type Stage struct {
	root   *Node
	ticker *Ticker
	debug  bool

	// ClearColor fills the screen before drawing. A fully transparent color
	// skips the fill.
	ClearColor Color

	// Input state
	pointer       pointerState
	injectQueue   []syntheticPointerEvent
	lastClickID   uint32
	lastClickTick uint64

	// DoubleClickTicks is the maximum number of ticks between two clicks on
	// the same node for the second to count as a double click.
	DoubleClickTicks uint64

	// Offscreen texture pool for subtree caches.
	rtPool renderTexturePool

	// updateFunc is the host callback registered via SetUpdateFunc.
	updateFunc func() error
}

// defaultDoubleClickTicks is ~350ms at 60 ticks per second.
const defaultDoubleClickTicks = 21

// NewStage creates a stage with a pre-created root container.
func NewStage() *Stage {
	root := NewContainer("root")
	root.Interactable = true
	return &Stage{
		root:             root,
		ticker:           newTicker(),
		DoubleClickTicks: defaultDoubleClickTicks,
	}
}

// Root returns the stage's root container node.
func (s *Stage) Root() *Node {
	return s.root
}

// Ticker returns the stage's animation ticker. Subscribers are invoked once
// per Update, in subscription order.
func (s *Stage) Ticker() *Ticker {
	return s.ticker
}

// Update refreshes world transforms, dispatches one animation tick, and
// processes pointer input. Call once per ebiten Update.
func (s *Stage) Update() {
	// Refresh world transforms first so tick subscribers and hit testing see
	// accurate positions this tick.
	updateWorldTransform(s.root, identityTransform, 1.0, false)
	s.ticker.advance()
	s.processInput()
}

// Draw traverses the scene tree in ZIndex order and draws it to the given
// screen image. Call once per ebiten Draw.
func (s *Stage) Draw(screen *ebiten.Image) {
	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.toRGBA())
	}
	// Transforms may be stale when Draw is called before the first Update.
	updateWorldTransform(s.root, identityTransform, 1.0, false)
	s.drawNode(screen, s.root)
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics and tree depth and child count warnings are printed.
func (s *Stage) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Stage debug flag so that node
// operations (which lack a Stage pointer) can check it cheaply. Only valid
// with a single Stage; multiple Stages with differing debug modes will
// reflect whichever called SetDebugMode last.
var globalDebug bool
