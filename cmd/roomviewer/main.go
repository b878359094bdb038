// roomviewer renders a tile map with a walkable avatar. Click a tile to
// walk there; double-click the avatar to wave. The room style can be
// tweaked through roomviewer.yaml or the CLI flags.
package main

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/phanxgames/warren"
	"github.com/phanxgames/warren/avatar"
	"github.com/phanxgames/warren/internal/config"
	"github.com/phanxgames/warren/internal/logger"
	"github.com/phanxgames/warren/room"
)

const windowTitle = "Warren Room Viewer"

// demoMap has two elevations joined by stairs and a door on the west edge.
const demoMap = `
xxxxxxxx
x1111000
x1111000
d1111000
x1111000
xxxxxxxx
`

func main() {
	config.ParseFlags()
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.LogFile)
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Fatal("room viewer exited", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	stage := warren.NewStage()
	stage.ClearColor = warren.Color{R: 0.07, G: 0.07, B: 0.1, A: 1}

	mapSource, err := resolveMap(cfg.Room.Map)
	if err != nil {
		return err
	}

	style, err := styleFromConfig(cfg.Room)
	if err != nil {
		return err
	}

	r, err := room.NewFromString(mapSource, stage.Root(), stage.Ticker(),
		room.WithStyle(style),
		room.WithLogger(log.Named("room")))
	if err != nil {
		return err
	}
	centerRoom(r, cfg.Graphics.Width, cfg.Graphics.Height)

	av := avatar.New(demoLoader(),
		avatar.WithLogger(log.Named("avatar")),
		avatar.WithLook(avatar.LookDescription{Look: "hd-180-1", Direction: 2}))
	av.Move(2, 2, walkHeight(r, 2, 2))
	if err := r.AddObject(av); err != nil {
		return err
	}

	r.OnTileClick = func(tc room.TileClick) {
		log.Debug("tile clicked",
			zap.Int("x", tc.X), zap.Int("y", tc.Y), zap.Int("z", tc.Z),
			zap.Bool("door", tc.Door))
		av.WalkTo(float64(tc.X), float64(tc.Y), nil)
	}
	av.OnClick = func(ev avatar.ClickEvent) {
		if ev.Double {
			look := av.Look()
			look.Actions = toggleAction(look.Actions, "wave")
			av.SetLook(look)
		}
	}

	return warren.Run(stage, warren.RunConfig{
		Title:      windowTitle,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
	})
}

// resolveMap treats the configured map as a file path when one exists,
// otherwise as an inline tile map. Empty selects the built-in demo map.
func resolveMap(m string) (string, error) {
	if m == "" {
		return demoMap, nil
	}
	if _, err := os.Stat(m); err == nil {
		data, err := os.ReadFile(m)
		if err != nil {
			return "", fmt.Errorf("reading tile map %s: %w", m, err)
		}
		return string(data), nil
	}
	return m, nil
}

func styleFromConfig(rc config.RoomConfig) (room.Style, error) {
	style := room.DefaultStyle()
	style.WallHeight = rc.WallHeight
	style.WallDepth = rc.WallDepth
	style.TileHeight = rc.TileHeight
	style.HideWalls = rc.HideWalls
	style.HideFloor = rc.HideFloor
	if rc.WallColor != "" {
		c, err := warren.ParseColor(rc.WallColor)
		if err != nil {
			return style, fmt.Errorf("wall_color: %w", err)
		}
		style.WallColor = c
	}
	if rc.FloorColor != "" {
		c, err := warren.ParseColor(rc.FloorColor)
		if err != nil {
			return style, fmt.Errorf("floor_color: %w", err)
		}
		style.FloorColor = c
	}
	return style, nil
}

// centerRoom positions the room container so the projected plane sits in
// the middle of the window.
func centerRoom(r *room.Room, winW, winH int) {
	w, h := r.Projector().Size()
	r.Node().SetPosition(float64(winW)/2-w/2, float64(winH)/2-h/2)
}

// walkHeight returns the elevation of a walkable tile, zero off-grid.
func walkHeight(r *room.Room, x, y int) float64 {
	if t, ok := r.TileAt(x, y); ok && t.Walkable() {
		return float64(t.Z)
	}
	return 0
}

// toggleAction returns a fresh slice; the input may back a stored look and
// must not be edited in place.
func toggleAction(actions []string, action string) []string {
	out := make([]string, 0, len(actions)+1)
	found := false
	for _, a := range actions {
		if a == action {
			found = true
			continue
		}
		out = append(out, a)
	}
	if !found {
		out = append(out, action)
	}
	return out
}

// demoLoader builds a procedural wardrobe: solid-color body and head
// rectangles per direction, two frames each so the walk cycle is visible.
func demoLoader() avatar.Loader {
	textures := avatar.ImageMap{}
	fill := func(w, h int, c warren.Color) *ebiten.Image {
		img := ebiten.NewImage(w, h)
		img.Fill(c.Premultiplied())
		return img
	}
	for dir := 0; dir <= 4; dir++ {
		for frame := 0; frame < 2; frame++ {
			bodyH := 40 - frame*2
			textures[fmt.Sprintf("body-%d-%d", frame, dir)] =
				fill(24, bodyH, warren.Color{R: 1, G: 1, B: 1, A: 1})
			textures[fmt.Sprintf("head-%d-%d", frame, dir)] =
				fill(18, 16, warren.Color{R: 0.96, G: 0.80, B: 0.65, A: 1})
		}
	}

	manifestJSON := []byte(`{
	  "figures": {
	    "hd-180-1": {
	      "parts": [
	        {"frames": [
	          {"id": "body-0", "offsetX": -12, "offsetY": -40},
	          {"id": "body-1", "offsetX": -12, "offsetY": -38}
	        ], "colored": true, "color": "#4477cc"},
	        {"frames": [
	          {"id": "head-0", "offsetX": -9, "offsetY": -56},
	          {"id": "head-1", "offsetX": -9, "offsetY": -54}
	        ]}
	      ]
	    }
	  }
	}`)
	m, err := avatar.LoadManifest(manifestJSON)
	if err != nil {
		panic(err)
	}
	return &avatar.ManifestLoader{Manifest: m, Textures: textures}
}
