package room

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/warren"
)

// Shade multipliers baked into the procedural face fills. Faces are drawn
// in white scaled by these factors so a node-level color tint still
// modulates the whole shape uniformly.
const (
	shadeTop   = 1.0
	shadeLeft  = 0.8
	shadeRight = 0.6
)

// fillQuad rasterizes a convex quadrilateral into dst using the shared
// white pixel as source, with a uniform grayscale shade.
func fillQuad(dst *ebiten.Image, pts [4]warren.Vec2, shade float64) {
	vs := make([]ebiten.Vertex, 4)
	for i, p := range pts {
		vs[i] = ebiten.Vertex{
			DstX:   float32(p.X),
			DstY:   float32(p.Y),
			SrcX:   0.5,
			SrcY:   0.5,
			ColorR: float32(shade),
			ColorG: float32(shade),
			ColorB: float32(shade),
			ColorA: 1,
		}
	}
	dst.DrawTriangles(vs, []uint16{0, 1, 2, 0, 2, 3}, warren.WhitePixel, nil)
}

// diamondQuad returns the four corners of an isometric tile-top diamond
// whose bounding box is anchored at (ox, oy) and spans w x h.
func diamondQuad(ox, oy, w, h float64) [4]warren.Vec2 {
	return [4]warren.Vec2{
		{X: ox + w/2, Y: oy},
		{X: ox + w, Y: oy + h/2},
		{X: ox + w/2, Y: oy + h},
		{X: ox, Y: oy + h/2},
	}
}

// tileImage builds the drawable for one floor tile: the top diamond plus
// left and right thickness faces. The image origin is the diamond's
// top-left bounding corner.
func tileImage(thickness float64) *ebiten.Image {
	w := float64(tileBase * 2)
	h := float64(tileBase)
	img := ebiten.NewImage(int(w), int(h+math.Ceil(thickness)))

	fillQuad(img, diamondQuad(0, 0, w, h), shadeTop)
	if thickness > 0 {
		// left face, under the south-west edge
		fillQuad(img, [4]warren.Vec2{
			{X: 0, Y: h / 2},
			{X: w / 2, Y: h},
			{X: w / 2, Y: h + thickness},
			{X: 0, Y: h/2 + thickness},
		}, shadeLeft)
		// right face, under the south-east edge
		fillQuad(img, [4]warren.Vec2{
			{X: w / 2, Y: h},
			{X: w, Y: h / 2},
			{X: w, Y: h/2 + thickness},
			{X: w / 2, Y: h + thickness},
		}, shadeRight)
	}
	return img
}

// wallFacing distinguishes the two face orientations a wall segment can
// take on screen.
type wallFacing int

const (
	facingLeft  wallFacing = iota // along the room's north edge
	facingRight                   // along the room's west edge
)

// doorCutHeight is the vertical clearance, in pixels, of a door opening in
// a wall face.
const doorCutHeight = 85.0

// wallBorderWidth is the pixel width of the seam strip drawn along the
// leading edge of a wall face. Segments mid-run suppress it so a wall
// reads as one continuous surface.
const wallBorderWidth = 3

// wallImage builds the drawable for one wall segment: a slanted face of
// the given pixel height plus a top strip of the given depth. A door
// cutout removes the lower middle of the face. The image origin is the top
// of the wall where it meets the near floor corner.
func wallImage(facing wallFacing, height, depth float64, door, hideBorder bool) *ebiten.Image {
	w := float64(tileBase * 2)
	slant := float64(tileBase)
	img := ebiten.NewImage(int(w+depth), int(height+slant+depth))

	// dx mirrors the slant direction: left-facing walls rise to the right,
	// right-facing walls rise to the left.
	var face [4]warren.Vec2
	shade := shadeLeft
	switch facing {
	case facingLeft:
		face = [4]warren.Vec2{
			{X: 0, Y: slant},
			{X: w, Y: 0},
			{X: w, Y: height},
			{X: 0, Y: slant + height},
		}
	case facingRight:
		shade = shadeRight
		face = [4]warren.Vec2{
			{X: 0, Y: 0},
			{X: w, Y: slant},
			{X: w, Y: slant + height},
			{X: 0, Y: height},
		}
	}

	if !door {
		fillQuad(img, face, shade)
	} else {
		fillDoorFace(img, face, shade, height)
	}

	if !hideBorder {
		// seam strip along the leading edge, following the face slant
		bw := wallBorderWidth
		dy := float64(bw) / 2
		if facing == facingRight {
			dy = -dy
		}
		fillQuad(img, [4]warren.Vec2{
			face[0],
			{X: face[0].X + float64(bw), Y: face[0].Y - dy},
			{X: face[3].X + float64(bw), Y: face[3].Y - dy},
			face[3],
		}, shade*0.8)
	}

	// top strip, offset by the depth along the opposite diagonal
	top := [4]warren.Vec2{
		face[0], face[1],
		{X: face[1].X + depth, Y: face[1].Y - depth/2},
		{X: face[0].X + depth, Y: face[0].Y - depth/2},
	}
	fillQuad(img, top, shadeTop)
	return img
}

// fillDoorFace draws a wall face with a rectangular opening in its lower
// middle half. The face is split into a header band above the opening and
// two jambs beside it.
func fillDoorFace(dst *ebiten.Image, face [4]warren.Vec2, shade, height float64) {
	cut := doorCutHeight
	if cut > height {
		cut = height
	}
	lerp := func(a, b warren.Vec2, t float64) warren.Vec2 {
		return warren.Vec2{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
	}
	headT := 1 - cut/height

	// header: full width, from the top edge down to the lintel
	fillQuad(dst, [4]warren.Vec2{
		face[0], face[1],
		lerp(face[1], face[2], headT),
		lerp(face[0], face[3], headT),
	}, shade)

	// jambs: outer quarters of the face below the lintel
	topL := lerp(face[0], face[3], headT)
	topR := lerp(face[1], face[2], headT)
	fillQuad(dst, [4]warren.Vec2{
		topL,
		lerp(topL, topR, 0.25),
		lerp(face[3], face[2], 0.25),
		face[3],
	}, shade)
	fillQuad(dst, [4]warren.Vec2{
		lerp(topL, topR, 0.75),
		topR,
		face[2],
		lerp(face[3], face[2], 0.75),
	}, shade)
}

// cornerWallImage builds the drawable for an outer-corner wall: a pillar
// with a diamond cap and a face along each of the two exposed lower edges.
func cornerWallImage(height float64) *ebiten.Image {
	w := float64(tileBase * 2)
	h := float64(tileBase)
	img := ebiten.NewImage(int(w), int(h+height))

	fillQuad(img, diamondQuad(0, 0, w, h), shadeTop)
	// south-west face
	fillQuad(img, [4]warren.Vec2{
		{X: 0, Y: h / 2},
		{X: w / 2, Y: h},
		{X: w / 2, Y: h + height - h/2},
		{X: 0, Y: h/2 + height - h/2},
	}, shadeRight)
	// south-east face
	fillQuad(img, [4]warren.Vec2{
		{X: w / 2, Y: h},
		{X: w, Y: h / 2},
		{X: w, Y: h/2 + height - h/2},
		{X: w / 2, Y: h + height - h/2},
	}, shadeLeft)
	return img
}

// stairStepCount and stairStepRise describe how a one-unit elevation
// change is subdivided into steps.
const (
	stairStepCount = 4
	stairStepRise  = float64(tileBase) / stairStepCount
)

// stairsImage builds the drawable for one stair tile ascending toward the
// given direction. Each step is a narrow diamond top plus a riser face.
func stairsImage(kind StairsKind, thickness float64) *ebiten.Image {
	w := float64(tileBase * 2)
	h := float64(tileBase)
	img := ebiten.NewImage(int(w), int(h+float64(tileBase)+math.Ceil(thickness)))

	for i := 0; i < stairStepCount; i++ {
		// steps draw back to front so nearer steps overlap farther ones
		t := float64(i) / stairStepCount
		drop := float64(tileBase) - float64(i+1)*stairStepRise

		var ox float64
		switch kind {
		case StairsNorth:
			ox = t * w / 2
		case StairsWest:
			ox = (1 - t) * w / 2
		}
		oy := drop + t*h/2

		stepW := w / 2 * (1 + 1.0/stairStepCount)
		stepH := h / 2 * (1 + 1.0/stairStepCount)
		fillQuad(img, diamondQuad(ox, oy, stepW, stepH), shadeTop)

		riser := [4]warren.Vec2{
			{X: ox, Y: oy + stepH/2},
			{X: ox + stepW/2, Y: oy + stepH},
			{X: ox + stepW/2, Y: oy + stepH + stairStepRise + thickness},
			{X: ox, Y: oy + stepH/2 + stairStepRise + thickness},
		}
		shadeA, shadeB := shadeLeft, shadeRight
		if kind == StairsWest {
			shadeA, shadeB = shadeRight, shadeLeft
		}
		fillQuad(img, riser, shadeA)
		fillQuad(img, [4]warren.Vec2{
			{X: ox + stepW/2, Y: oy + stepH},
			{X: ox + stepW, Y: oy + stepH/2},
			{X: ox + stepW, Y: oy + stepH/2 + stairStepRise + thickness},
			{X: ox + stepW/2, Y: oy + stepH + stairStepRise + thickness},
		}, shadeB)
	}
	return img
}

// cursorImage builds the hover highlight drawable: a thin diamond ring
// matching a tile top.
func cursorImage() *ebiten.Image {
	w := float64(tileBase * 2)
	h := float64(tileBase)
	img := ebiten.NewImage(int(w), int(h))
	fillQuad(img, diamondQuad(0, 0, w, h), 1)
	inset := 4.0
	inner := diamondQuad(inset*2, inset, w-inset*4, h-inset*2)
	vs := make([]ebiten.Vertex, 4)
	for i, p := range inner {
		vs[i] = ebiten.Vertex{
			DstX: float32(p.X), DstY: float32(p.Y),
			SrcX: 0.5, SrcY: 0.5,
			ColorA: 1,
		}
	}
	// punch out the interior so only the ring remains
	op := &ebiten.DrawTrianglesOptions{Blend: ebiten.BlendClear}
	img.DrawTriangles(vs, []uint16{0, 1, 2, 0, 2, 3}, warren.WhitePixel, op)
	return img
}
