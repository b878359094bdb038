package avatar

import (
	"encoding/json"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/warren"
)

// Manifest maps figure identifiers to draw-part templates. It is the
// static half of a ManifestLoader; textures come from an atlas or any
// other TextureProvider.
type Manifest struct {
	figures map[string][]manifestPart
}

// --- JSON structure types ---

type jsonAsset struct {
	ID      string  `json:"id"`
	OffsetX float64 `json:"offsetX"`
	OffsetY float64 `json:"offsetY"`
	Mirror  bool    `json:"mirror"`
}

type jsonPart struct {
	// Frames lists the cyclic per-frame assets. Directional variants use a
	// "-<dir>" suffix on each id at resolve time.
	Frames  []jsonAsset `json:"frames"`
	Colored bool        `json:"colored"`
	Color   string      `json:"color"`
}

type jsonFigure struct {
	Parts []jsonPart `json:"parts"`
}

type manifestPart struct {
	frames  []Asset
	colored bool
	color   warren.Color
}

// LoadManifest parses a figure manifest from JSON:
//
//	{"figures": {"hd-180-1": {"parts": [{"frames": [{"id": "..."}], "colored": true, "color": "#ffcc00"}]}}}
func LoadManifest(data []byte) (*Manifest, error) {
	var doc struct {
		Figures map[string]jsonFigure `json:"figures"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("avatar: failed to parse manifest JSON: %w", err)
	}
	if doc.Figures == nil {
		return nil, fmt.Errorf("avatar: manifest JSON has no \"figures\" key")
	}

	m := &Manifest{figures: make(map[string][]manifestPart, len(doc.Figures))}
	for id, fig := range doc.Figures {
		parts := make([]manifestPart, 0, len(fig.Parts))
		for _, p := range fig.Parts {
			mp := manifestPart{colored: p.Colored}
			if p.Colored {
				c, err := warren.ParseColor(p.Color)
				if err != nil {
					return nil, fmt.Errorf("avatar: figure %q: %w", id, err)
				}
				mp.color = c
			}
			for _, a := range p.Frames {
				mp.frames = append(mp.frames, Asset{
					ID:      a.ID,
					OffsetX: a.OffsetX,
					OffsetY: a.OffsetY,
					Mirror:  a.Mirror,
				})
			}
			parts = append(parts, mp)
		}
		m.figures[id] = parts
	}
	return m, nil
}

// ManifestLoader resolves looks against a static manifest and a texture
// provider. Resolution is synchronous; deliver runs before ResolveLook
// returns, which satisfies the Loader contract trivially.
type ManifestLoader struct {
	Manifest *Manifest
	Textures TextureProvider
}

// ResolveLook builds a draw definition for the look's figure, applying the
// look's direction as an asset-id suffix. Unknown figures fail.
func (l *ManifestLoader) ResolveLook(look LookDescription, deliver func(LookResult, error)) {
	parts, ok := l.Manifest.figures[look.Look]
	if !ok {
		deliver(LookResult{}, fmt.Errorf("avatar: unknown figure %q", look.Look))
		return
	}

	def := DrawDefinition{Parts: make([]DrawPart, 0, len(parts))}
	for _, mp := range parts {
		dp := DrawPart{Mode: RenderPlain}
		if mp.colored {
			dp.Mode = RenderColored
			dp.Color = mp.color
		}
		for _, a := range mp.frames {
			asset := a
			asset.ID = fmt.Sprintf("%s-%d", a.ID, look.Direction)
			// directions 5-7 reuse the mirrored 1-3 assets
			if look.Direction >= 5 {
				asset.ID = fmt.Sprintf("%s-%d", a.ID, 8-look.Direction)
				asset.Mirror = !a.Mirror
			}
			dp.Assets = append(dp.Assets, asset)
		}
		def.Parts = append(def.Parts, dp)
	}
	deliver(LookResult{Definition: def, Textures: l.Textures}, nil)
}

// ImageMap is a TextureProvider over a plain map, convenient for tests and
// procedurally built wardrobes.
type ImageMap map[string]*ebiten.Image

// Texture returns the image for an asset id.
func (m ImageMap) Texture(assetID string) (*ebiten.Image, bool) {
	img, ok := m[assetID]
	return img, ok
}
