// Package warren renders isometric rooms and composited avatars on top of a
// small retained-mode 2D scene graph for [Ebitengine].
//
// The root package is the scene-graph substrate: a [Node] tree rooted at a
// [Stage], with ZIndex-ordered painter's rendering, hit detection with
// per-node ignore, click/double-click synthesis, subtree caching with scoped
// batch suspension, and an animation [Ticker].
//
//	stage := warren.NewStage()
//	sprite := warren.NewSprite("tile", img)
//	stage.Root().AddChild(sprite)
//
// Host code implements [ebiten.Game] and forwards to the stage:
//
//	type Game struct{ stage *warren.Stage }
//
//	func (g *Game) Update() error              { g.stage.Update(); return nil }
//	func (g *Game) Draw(s *ebiten.Image)       { g.stage.Draw(s) }
//	func (g *Game) Layout(w, h int) (int, int) { return w, h }
//
// The two engine subsystems live in subpackages:
//
//   - warren/room: tile-map parsing, isometric coordinate projection, and
//     the room composition engine that owns tile, wall, stair, and cursor
//     render objects.
//   - warren/avatar: look resolution, draw-definition frame cycling, and
//     the avatar sprite graph with its bounded drawable cache.
//
// See cmd/roomviewer for a complete wiring example.
//
// [Ebitengine]: https://ebitengine.org
package warren
