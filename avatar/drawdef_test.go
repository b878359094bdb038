package avatar

import "testing"

func TestAssetForFrameCycles(t *testing.T) {
	p := DrawPart{Assets: []Asset{{ID: "a"}, {ID: "b"}, {ID: "c"}}}
	n := len(p.Assets)

	for f := 0; f < 3*n; f++ {
		at, ok := p.AssetForFrame(f)
		if !ok {
			t.Fatalf("frame %d: no asset", f)
		}
		next, _ := p.AssetForFrame(f + n)
		if at.ID != next.ID {
			t.Errorf("frame %d (%q) and frame %d (%q) must match", f, at.ID, f+n, next.ID)
		}
	}
}

func TestAssetForFrameSingleAssetIsStatic(t *testing.T) {
	p := DrawPart{Assets: []Asset{{ID: "only"}}}
	for _, f := range []int{0, 1, 7, 1000} {
		at, ok := p.AssetForFrame(f)
		if !ok || at.ID != "only" {
			t.Errorf("frame %d: got %q", f, at.ID)
		}
	}
}

func TestAssetForFrameNegativeIndexWraps(t *testing.T) {
	p := DrawPart{Assets: []Asset{{ID: "a"}, {ID: "b"}, {ID: "c"}}}
	cases := []struct {
		frame int
		want  string
	}{
		{-1, "c"},
		{-2, "b"},
		{-3, "a"},
		{-4, "c"},
		{-7, "c"},
	}
	for _, tc := range cases {
		at, ok := p.AssetForFrame(tc.frame)
		if !ok {
			t.Fatalf("frame %d: no asset", tc.frame)
		}
		if at.ID != tc.want {
			t.Errorf("frame %d: got %q, want %q", tc.frame, at.ID, tc.want)
		}
	}
}

func TestAssetForFrameEmptyPart(t *testing.T) {
	p := DrawPart{}
	if _, ok := p.AssetForFrame(0); ok {
		t.Error("empty part has no assets")
	}
}

func TestFrameCount(t *testing.T) {
	d := DrawDefinition{Parts: []DrawPart{
		{Assets: []Asset{{ID: "a"}}},
		{Assets: []Asset{{ID: "b"}, {ID: "c"}, {ID: "d"}}},
	}}
	if d.FrameCount() != 3 {
		t.Errorf("FrameCount = %d, want 3", d.FrameCount())
	}
	if (DrawDefinition{}).FrameCount() != 1 {
		t.Error("empty definition still has one frame")
	}
}
