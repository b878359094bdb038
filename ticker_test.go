package warren

import "testing"

func TestOnTickAndCancel(t *testing.T) {
	tk := newTicker()
	count := 0
	cancel := tk.OnTick(func() { count++ })

	tk.advance()
	tk.advance()
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}

	cancel()
	tk.advance()
	if count != 2 {
		t.Errorf("count = %d after cancel, want 2", count)
	}

	// cancelling twice is a no-op
	cancel()
	if tk.NumSubscribers() != 0 {
		t.Errorf("NumSubscribers = %d, want 0", tk.NumSubscribers())
	}
}

func TestUnsubscribeDuringDispatch(t *testing.T) {
	tk := newTicker()

	var cancelB func()
	aFired, bFired, cFired := 0, 0, 0
	tk.OnTick(func() {
		aFired++
		cancelB()
	})
	cancelB = tk.OnTick(func() { bFired++ })
	tk.OnTick(func() { cFired++ })

	// B unsubscribes mid-dispatch; the current tick still delivers to every
	// subscriber captured at its start.
	tk.advance()
	if aFired != 1 || bFired != 1 || cFired != 1 {
		t.Errorf("first tick = (%d, %d, %d), want (1, 1, 1)", aFired, bFired, cFired)
	}

	tk.advance()
	if bFired != 1 {
		t.Errorf("bFired = %d after cancel, want 1", bFired)
	}
	if aFired != 2 || cFired != 2 {
		t.Errorf("second tick = (%d, _, %d), want (2, _, 2)", aFired, cFired)
	}
}

func TestFrameAdvances(t *testing.T) {
	tk := newTicker()
	if tk.Frame() != 0 {
		t.Errorf("Frame = %d, want 0", tk.Frame())
	}
	tk.advance()
	tk.advance()
	tk.advance()
	if tk.Frame() != 3 {
		t.Errorf("Frame = %d, want 3", tk.Frame())
	}
}

func TestSubscribeDuringDispatch(t *testing.T) {
	tk := newTicker()
	lateFired := 0
	tk.OnTick(func() {
		tk.OnTick(func() { lateFired++ })
	})

	tk.advance()
	if lateFired != 0 {
		t.Error("subscriber added mid-dispatch must not fire the same tick")
	}
	tk.advance()
	if lateFired != 1 {
		t.Errorf("lateFired = %d, want 1", lateFired)
	}
}
