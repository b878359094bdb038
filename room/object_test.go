package room

import (
	"errors"
	"testing"

	"github.com/phanxgames/warren"
)

// stubObject counts its lifecycle hooks.
type stubObject struct {
	Base
	registered int
	destroyed  int
}

func (s *stubObject) Registered() { s.registered++ }
func (s *stubObject) Destroyed()  { s.destroyed++ }

func testContext() Context {
	tm := &TileMap{}
	return Context{
		Container: warren.NewContainer("test"),
		Projector: NewProjector(tm),
		TileMap:   tm,
		Ticker:    warren.NewStage().Ticker(),
	}
}

func TestSetParentRegistersOnce(t *testing.T) {
	obj := &stubObject{}
	ctx := testContext()

	if err := SetParent(obj, ctx); err != nil {
		t.Fatalf("SetParent: %v", err)
	}
	if obj.registered != 1 {
		t.Errorf("registered = %d, want 1", obj.registered)
	}
	if !obj.Attached() {
		t.Error("object should report attached")
	}
	if obj.Ctx().Container != ctx.Container {
		t.Error("context not stored")
	}
}

func TestSetParentRejectsDoubleAttach(t *testing.T) {
	obj := &stubObject{}
	ctx := testContext()

	if err := SetParent(obj, ctx); err != nil {
		t.Fatal(err)
	}
	err := SetParent(obj, ctx)
	if !errors.Is(err, ErrAlreadyAttached) {
		t.Errorf("err = %v, want ErrAlreadyAttached", err)
	}
	if obj.registered != 1 {
		t.Errorf("registered = %d after double attach, want 1", obj.registered)
	}
}

func TestSetParentRejectsIncompleteContext(t *testing.T) {
	obj := &stubObject{}
	err := SetParent(obj, Context{})
	if !errors.Is(err, ErrMissingContext) {
		t.Errorf("err = %v, want ErrMissingContext", err)
	}
	if obj.registered != 0 {
		t.Error("hook must not fire on failed attach")
	}
}

func TestDestroyIsIdempotent(t *testing.T) {
	obj := &stubObject{}
	if err := SetParent(obj, testContext()); err != nil {
		t.Fatal(err)
	}

	Destroy(obj)
	Destroy(obj)

	if obj.destroyed != 1 {
		t.Errorf("destroyed = %d, want 1", obj.destroyed)
	}
	if obj.Attached() {
		t.Error("object should report detached")
	}
}

func TestDestroyWithoutAttachIsNoOp(t *testing.T) {
	obj := &stubObject{}
	Destroy(obj)
	if obj.destroyed != 0 {
		t.Errorf("destroyed = %d, want 0", obj.destroyed)
	}
}

func TestDestroyedObjectCannotReattach(t *testing.T) {
	obj := &stubObject{}
	ctx := testContext()
	if err := SetParent(obj, ctx); err != nil {
		t.Fatal(err)
	}
	Destroy(obj)

	err := SetParent(obj, ctx)
	if !errors.Is(err, ErrAlreadyAttached) {
		t.Errorf("err = %v, want ErrAlreadyAttached", err)
	}
	if obj.registered != 1 {
		t.Error("destroyed objects must not re-register")
	}
}
