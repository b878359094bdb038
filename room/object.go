package room

// Object is anything that can live inside a room: avatars, furniture,
// cursors. Implementations embed Base, which supplies the unexported base
// accessor; the two hook methods give the object its lifecycle.
//
// Registered is called exactly once, after the context has been stored on
// the Base. Destroyed is called exactly once, when the object is removed
// via Destroy.
type Object interface {
	base() *objectBase
	Registered()
	Destroyed()
}

type objectBase struct {
	ctx       Context
	attached  bool
	destroyed bool
}

// Base is embedded by every room object. It stores the registration context
// and the lifecycle state.
type Base struct {
	b objectBase
}

func (b *Base) base() *objectBase { return &b.b }

// Ctx returns the context the object was registered with. It is the zero
// value before registration and after destruction.
func (b *Base) Ctx() Context { return b.b.ctx }

// Attached reports whether the object currently belongs to a room.
func (b *Base) Attached() bool { return b.b.attached }

// SetParent registers obj into the room described by ctx and invokes its
// Registered hook. Attaching an already-attached object fails with
// ErrAlreadyAttached; destroyed objects cannot be revived.
func SetParent(obj Object, ctx Context) error {
	if !ctx.valid() {
		return ErrMissingContext
	}
	b := obj.base()
	if b.attached {
		return ErrAlreadyAttached
	}
	if b.destroyed {
		return ErrAlreadyAttached
	}
	b.ctx = ctx
	b.attached = true
	obj.Registered()
	return nil
}

// Destroy detaches obj and invokes its Destroyed hook. Destroying an object
// twice, or one that was never attached, is a no-op.
func Destroy(obj Object) {
	b := obj.base()
	if b.destroyed || !b.attached {
		b.destroyed = true
		return
	}
	b.attached = false
	b.destroyed = true
	obj.Destroyed()
	b.ctx = Context{}
}
