package room

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/warren"
)

// Style holds the cosmetic and structural presentation parameters of a
// room. Heights and depths are in pixels.
type Style struct {
	WallHeight float64
	WallDepth  float64
	TileHeight float64

	WallColor  warren.Color
	FloorColor warren.Color

	// WallTexture and FloorTexture override the procedural fill when set.
	// They are caller-owned; the room never deallocates them.
	WallTexture  *ebiten.Image
	FloorTexture *ebiten.Image

	HideWalls bool
	HideFloor bool
}

// DefaultStyle returns the style a room starts with when none is supplied.
func DefaultStyle() Style {
	return Style{
		WallHeight: 100,
		WallDepth:  8,
		TileHeight: 8,
		WallColor:  warren.Color{R: 0.57, G: 0.60, B: 0.64, A: 1},
		FloorColor: warren.Color{R: 0.60, G: 0.55, B: 0.43, A: 1},
	}
}

// StylePatch is a partial style update. Nil fields are left unchanged.
type StylePatch struct {
	WallHeight *float64
	WallDepth  *float64
	TileHeight *float64

	WallColor  *warren.Color
	FloorColor *warren.Color

	WallTexture  **ebiten.Image
	FloorTexture **ebiten.Image

	HideWalls *bool
	HideFloor *bool
}

// StyleChange classifies what a patch did to the room.
type StyleChange int

const (
	// StyleUnchanged means the patch was empty or matched the current style.
	StyleUnchanged StyleChange = iota
	// StyleCosmetic means existing objects were updated in place.
	StyleCosmetic
	// StyleStructural means the object set was torn down and rebuilt.
	StyleStructural
)

// apply merges the patch into s and reports the classification. Visibility
// flags and texture identity are structural (the object set may change);
// numeric and color changes are cosmetic.
func (p StylePatch) apply(s *Style) StyleChange {
	change := StyleUnchanged
	cosmetic := func(changed bool) {
		if changed && change == StyleUnchanged {
			change = StyleCosmetic
		}
	}

	if p.WallHeight != nil && *p.WallHeight != s.WallHeight {
		s.WallHeight = *p.WallHeight
		cosmetic(true)
	}
	if p.WallDepth != nil && *p.WallDepth != s.WallDepth {
		s.WallDepth = *p.WallDepth
		cosmetic(true)
	}
	if p.TileHeight != nil && *p.TileHeight != s.TileHeight {
		s.TileHeight = *p.TileHeight
		cosmetic(true)
	}
	if p.WallColor != nil && *p.WallColor != s.WallColor {
		s.WallColor = *p.WallColor
		cosmetic(true)
	}
	if p.FloorColor != nil && *p.FloorColor != s.FloorColor {
		s.FloorColor = *p.FloorColor
		cosmetic(true)
	}
	if p.WallTexture != nil && *p.WallTexture != s.WallTexture {
		s.WallTexture = *p.WallTexture
		change = StyleStructural
	}
	if p.FloorTexture != nil && *p.FloorTexture != s.FloorTexture {
		s.FloorTexture = *p.FloorTexture
		change = StyleStructural
	}
	if p.HideWalls != nil && *p.HideWalls != s.HideWalls {
		s.HideWalls = *p.HideWalls
		change = StyleStructural
	}
	if p.HideFloor != nil && *p.HideFloor != s.HideFloor {
		s.HideFloor = *p.HideFloor
		change = StyleStructural
	}
	return change
}
