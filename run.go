package warren

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the Run convenience loop.
type RunConfig struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
}

// SetUpdateFunc registers a callback invoked once per Update, after the
// stage's own tick and input processing. Returning an error stops the game
// loop. A nil fn clears the callback.
func (s *Stage) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// Run opens a window and drives the stage with ebiten's game loop. It
// blocks until the window closes or the update callback returns an error.
// Hosts that need custom Update/Draw ordering can implement ebiten.Game
// themselves and call Stage.Update and Stage.Draw directly.
func Run(s *Stage, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 640
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetFullscreen(cfg.Fullscreen)
	return ebiten.RunGame(&stageGame{stage: s, w: cfg.Width, h: cfg.Height})
}

type stageGame struct {
	stage *Stage
	w, h  int
}

func (g *stageGame) Update() error {
	g.stage.Update()
	if g.stage.updateFunc != nil {
		return g.stage.updateFunc()
	}
	return nil
}

func (g *stageGame) Draw(screen *ebiten.Image) {
	g.stage.Draw(screen)
}

func (g *stageGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.w, g.h
}
