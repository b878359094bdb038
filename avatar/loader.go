package avatar

import "github.com/hajimehoshi/ebiten/v2"

// TextureProvider resolves asset ids to drawable images. A missing texture
// is not an error; the part is simply skipped this frame.
type TextureProvider interface {
	Texture(assetID string) (*ebiten.Image, bool)
}

// LookResult is the outcome of one successful look resolution.
type LookResult struct {
	Definition DrawDefinition
	Textures   TextureProvider
}

// Loader resolves look descriptions asynchronously. ResolveLook must invoke
// deliver exactly once, on the game-loop goroutine (typically from inside a
// ticker callback or an Update step). The avatar never aborts an in-flight
// resolution; late deliveries for superseded requests are discarded on
// arrival.
type Loader interface {
	ResolveLook(look LookDescription, deliver func(LookResult, error))
}
