package room

import "testing"

func TestWallImageDimensions(t *testing.T) {
	cases := []struct {
		name          string
		height, depth float64
	}{
		{"default", 100, 8},
		{"tall", 150, 8},
		{"flat", 40, 0},
	}
	for _, tc := range cases {
		img := wallImage(facingLeft, tc.height, tc.depth, false, false)
		wantW := int(tileBase*2 + tc.depth)
		wantH := int(tc.height + tileBase + tc.depth)
		if got := img.Bounds().Dx(); got != wantW {
			t.Errorf("%s: width %d, want %d", tc.name, got, wantW)
		}
		if got := img.Bounds().Dy(); got != wantH {
			t.Errorf("%s: height %d, want %d", tc.name, got, wantH)
		}
	}
}

func TestWallImageDoorFace(t *testing.T) {
	// the cutout spans doorCutHeight of face; both a face taller and a face
	// shorter than the cut must rasterize (the cut clamps to the face)
	for _, height := range []float64{150, doorCutHeight, 40} {
		for _, facing := range []wallFacing{facingLeft, facingRight} {
			img := wallImage(facing, height, 8, true, false)
			if img == nil {
				t.Fatalf("height %v facing %v: nil image", height, facing)
			}
		}
	}
}

func TestWallImageBorderSuppression(t *testing.T) {
	// hiding the seam strip changes pixels, never geometry
	with := wallImage(facingRight, 100, 8, false, false)
	without := wallImage(facingRight, 100, 8, false, true)
	if with.Bounds() != without.Bounds() {
		t.Errorf("bounds differ: %v vs %v", with.Bounds(), without.Bounds())
	}
}
