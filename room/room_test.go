package room

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/warren"
)

var testColor = warren.Color{R: 0.2, G: 0.4, B: 0.6, A: 1}

func newTestStage() *warren.Stage {
	return warren.NewStage()
}

func newTestRoom(t *testing.T, m string, opts ...Option) *Room {
	t.Helper()
	stage := newTestStage()
	r, err := NewFromString(m, stage.Root(), stage.Ticker(), opts...)
	if err != nil {
		t.Fatalf("NewFromString: %v", err)
	}
	return r
}

func TestAllFloorRoomObjectCounts(t *testing.T) {
	// fully void-fringed 3x3 floor: 9 tiles, 9 cursors, no walls
	r := newTestRoom(t, `
xxxxx
x000x
x000x
x000x
xxxxx
`)
	if r.NumFloors() != 9 {
		t.Errorf("NumFloors = %d, want 9", r.NumFloors())
	}
	if r.NumCursors() != 9 {
		t.Errorf("NumCursors = %d, want 9", r.NumCursors())
	}

	// the void fringe on the north and west sides still forms walls; a
	// bare floor has none only when walls are hidden
	r2 := newTestRoom(t, "xxxxx\nx000x\nx000x\nx000x\nxxxxx",
		WithStyle(func() Style { s := DefaultStyle(); s.HideWalls = true; return s }()))
	if r2.NumWalls() != 0 {
		t.Errorf("NumWalls = %d with walls hidden, want 0", r2.NumWalls())
	}
	if r2.NumFloors() != 9 {
		t.Errorf("NumFloors = %d, want 9", r2.NumFloors())
	}
}

func TestWallHeightChangesInPlace(t *testing.T) {
	r := newTestRoom(t, "xxxx\nx00x\nx00x\nxxxx")

	walls := r.NumWalls()
	rebuilds := r.Rebuilds()
	if walls == 0 {
		t.Fatal("expected walls around the floor")
	}

	change := r.ApplyStyle(StylePatch{WallHeight: ptr(150.0)})
	if change != StyleCosmetic {
		t.Errorf("change = %d, want cosmetic", change)
	}
	if r.NumWalls() != walls {
		t.Errorf("NumWalls changed from %d to %d", walls, r.NumWalls())
	}
	if r.Rebuilds() != rebuilds {
		t.Error("cosmetic patch must not rebuild")
	}
	for _, w := range r.walls {
		if w.Height() != 150 {
			t.Errorf("wall height = %v, want 150", w.Height())
		}
	}
}

func TestHideWallsRebuilds(t *testing.T) {
	r := newTestRoom(t, "xxxx\nx00x\nx00x\nxxxx")
	rebuilds := r.Rebuilds()

	change := r.ApplyStyle(StylePatch{HideWalls: ptr(true)})
	if change != StyleStructural {
		t.Errorf("change = %d, want structural", change)
	}
	if r.NumWalls() != 0 {
		t.Errorf("NumWalls = %d after hiding, want 0", r.NumWalls())
	}
	if r.Rebuilds() != rebuilds+1 {
		t.Errorf("Rebuilds = %d, want %d", r.Rebuilds(), rebuilds+1)
	}

	r.ApplyStyle(StylePatch{HideWalls: ptr(false)})
	if r.NumWalls() == 0 {
		t.Error("walls must come back")
	}
}

func TestTextureSettersRebuild(t *testing.T) {
	r := newTestRoom(t, "xxxx\nx00x\nx00x\nxxxx")
	rebuilds := r.Rebuilds()

	tex := ebiten.NewImage(64, 64)
	r.SetWallTexture(tex)
	if r.Rebuilds() != rebuilds+1 {
		t.Errorf("Rebuilds = %d after wall texture, want %d", r.Rebuilds(), rebuilds+1)
	}
	if r.Style().WallTexture != tex {
		t.Error("wall texture not stored in style")
	}
	for _, w := range r.walls {
		if w.node.Image != tex {
			t.Error("wall not drawn with the override texture")
		}
	}

	r.SetFloorTexture(tex)
	if r.Rebuilds() != rebuilds+2 {
		t.Errorf("Rebuilds = %d after floor texture, want %d", r.Rebuilds(), rebuilds+2)
	}

	// nil restores the procedural fills
	r.SetWallTexture(nil)
	r.SetFloorTexture(nil)
	for _, w := range r.walls {
		if w.node.Image == tex {
			t.Error("wall still drawn with the removed texture")
		}
	}
}

func TestEmptyPatchIsUnchanged(t *testing.T) {
	r := newTestRoom(t, "xxx\nx0x\nxxx")
	rebuilds := r.Rebuilds()

	if change := r.ApplyStyle(StylePatch{}); change != StyleUnchanged {
		t.Errorf("change = %d, want unchanged", change)
	}
	// patching in the current values is also a no-op
	s := r.Style()
	if change := r.ApplyStyle(StylePatch{WallHeight: &s.WallHeight}); change != StyleUnchanged {
		t.Errorf("change = %d, want unchanged", change)
	}
	if r.Rebuilds() != rebuilds {
		t.Error("no-op patches must not rebuild")
	}
}

func TestStairsEmitTwoCursors(t *testing.T) {
	// one stair tile between two floors
	r := newTestRoom(t, "xxxxx\nx110x")

	if r.NumStairs() != 1 {
		t.Fatalf("NumStairs = %d, want 1", r.NumStairs())
	}
	// 2 floors with 1 cursor each, 1 stair with 2 cursors
	if r.NumCursors() != 4 {
		t.Errorf("NumCursors = %d, want 4", r.NumCursors())
	}
}

func TestDoorEmitsDoorWall(t *testing.T) {
	r := newTestRoom(t, "xxx\nd00")

	w := r.DoorWall()
	if w == nil {
		t.Fatal("DoorWall() = nil, want the cutout wall")
	}
	if !w.Door {
		t.Error("door wall must carry the cutout flag")
	}

	// the door also gets its floor tile and a door-flagged cursor
	doorCursors := 0
	for _, c := range r.cursors {
		if c.Door {
			doorCursors++
		}
	}
	if doorCursors != 1 {
		t.Errorf("door cursors = %d, want 1", doorCursors)
	}
}

func TestInnerCornerEmitsWallPair(t *testing.T) {
	lShape := `
xxxx
xx00
x000
x000
`
	r := newTestRoom(t, lShape)
	withPair := r.NumWalls()

	// the same outline without the concave cell's floors loses the pair
	square := `
xxxx
xx00
xx00
xx00
`
	r2 := newTestRoom(t, square)
	if withPair <= r2.NumWalls() {
		t.Errorf("L-shape walls = %d, square walls = %d; inner corner must add a pair",
			withPair, r2.NumWalls())
	}
}

func TestTileClickDispatch(t *testing.T) {
	stage := newTestStage()
	r, err := NewFromString("xxx\nx0x\nxxx", stage.Root(), stage.Ticker())
	if err != nil {
		t.Fatal(err)
	}

	var got *TileClick
	r.OnTileClick = func(tc TileClick) { got = &tc }

	// project the cursor's center and click it
	sx, sy := r.Position(1, 1, 0, PlacementObject)
	stage.InjectClick(sx+32, sy+16)
	stage.Update()
	stage.Update()

	if got == nil {
		t.Fatal("tile click not dispatched")
	}
	if got.X != 1 || got.Y != 1 || got.Z != 0 || got.Door {
		t.Errorf("click = %+v, want (1,1,0) non-door", *got)
	}
}

func TestRoomDestroyTearsDown(t *testing.T) {
	stage := newTestStage()
	r, err := NewFromString("xxx\nx0x\nxxx", stage.Root(), stage.Ticker())
	if err != nil {
		t.Fatal(err)
	}

	r.Destroy()
	if stage.Root().NumChildren() != 0 {
		t.Error("room container must unmount on destroy")
	}
}

func ptr[T any](v T) *T { return &v }
