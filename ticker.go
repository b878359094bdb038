package warren

// Ticker delivers animation ticks to subscribers. One tick fires per
// Stage.Update, and subscribers are invoked in subscription order. There is
// no ordering guarantee between a subscriber and other stage work beyond
// "all ticks delivered in order".
type Ticker struct {
	handlers []tickHandler
	nextID   uint32
	frame    uint64
	// dispatch buffer reused across ticks so unsubscribing from inside a
	// callback cannot corrupt the iteration
	dispatchBuf []tickHandler
}

type tickHandler struct {
	id uint32
	fn func()
}

func newTicker() *Ticker {
	return &Ticker{}
}

// OnTick subscribes fn to the ticker and returns a cancel function that
// removes the subscription. Cancel is idempotent and safe to call from
// inside the callback.
func (t *Ticker) OnTick(fn func()) (cancel func()) {
	t.nextID++
	id := t.nextID
	t.handlers = append(t.handlers, tickHandler{id: id, fn: fn})
	return func() {
		for i, h := range t.handlers {
			if h.id == id {
				t.handlers = append(t.handlers[:i], t.handlers[i+1:]...)
				return
			}
		}
	}
}

// Frame returns the number of ticks delivered so far.
func (t *Ticker) Frame() uint64 {
	return t.frame
}

// NumSubscribers returns the current subscriber count.
func (t *Ticker) NumSubscribers() int {
	return len(t.handlers)
}

// advance delivers one tick to every subscriber.
func (t *Ticker) advance() {
	t.frame++
	t.dispatchBuf = append(t.dispatchBuf[:0], t.handlers...)
	for _, h := range t.dispatchBuf {
		h.fn()
	}
}
