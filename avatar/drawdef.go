package avatar

import "github.com/phanxgames/warren"

// RenderMode selects how a part's color applies.
type RenderMode int

const (
	// RenderPlain draws the part's texture at full brightness, untinted.
	RenderPlain RenderMode = iota
	// RenderColored multiplies the part's texture with its declared color.
	RenderColored
)

// Asset is one frame image of a draw part.
type Asset struct {
	// ID identifies the texture, resolved through the loader's provider.
	ID string
	// OffsetX and OffsetY position the image relative to the avatar origin.
	OffsetX, OffsetY float64
	// Mirror flips the image horizontally.
	Mirror bool
}

// DrawPart is one layer of a resolved look: a cyclic frame sequence plus
// render parameters. Parts draw in definition order, first part lowest.
type DrawPart struct {
	Assets []Asset
	Mode   RenderMode
	Color  warren.Color
}

// AssetForFrame returns the asset visible at the given frame index. The
// sequence cycles: frame f shows Assets[f mod len(Assets)], so a part with
// one asset is static at any frame. Negative indices wrap the same cycle
// backwards.
func (p DrawPart) AssetForFrame(f int) (Asset, bool) {
	n := len(p.Assets)
	if n == 0 {
		return Asset{}, false
	}
	i := f % n
	if i < 0 {
		i += n
	}
	return p.Assets[i], true
}

// DrawDefinition is the resolved, renderable form of a look description.
type DrawDefinition struct {
	Parts []DrawPart
}

// FrameCount returns the cycle length of the longest part sequence, at
// least 1.
func (d DrawDefinition) FrameCount() int {
	n := 1
	for _, p := range d.Parts {
		if len(p.Assets) > n {
			n = len(p.Assets)
		}
	}
	return n
}
