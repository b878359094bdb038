// Package avatar resolves declarative look descriptions into sprite graphs
// and animates them frame by frame. An Avatar is a room object; it attaches
// to a room container, subscribes to the shared animation ticker, and pulls
// draw definitions and textures from a Loader.
package avatar

// LookDescription declares what an avatar should look like. It is the input
// to look resolution, never the resolved form.
type LookDescription struct {
	// Look identifies the base figure, e.g. "hd-180-1".
	Look string
	// Actions is the active action/pose set. Order carries no meaning.
	Actions []string
	// Item is a held-item identifier, empty for none.
	Item string
	// Effect is an applied effect id, zero for none.
	Effect int
	// Direction is the facing direction, 0-7 clockwise from north.
	Direction int
}

// Equal reports render-equality: all scalar fields equal and the action
// sets equal as sets. Reordering actions never makes two looks unequal.
func (l LookDescription) Equal(o LookDescription) bool {
	if l.Look != o.Look || l.Item != o.Item || l.Effect != o.Effect || l.Direction != o.Direction {
		return false
	}
	return actionSetsEqual(l.Actions, o.Actions)
}

func actionSetsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[string]int, len(a))
	for _, s := range a {
		seen[s]++
	}
	for _, s := range b {
		seen[s]--
		if seen[s] < 0 {
			return false
		}
	}
	return true
}

// WithDirection returns a copy of the look facing the given direction.
func (l LookDescription) WithDirection(dir int) LookDescription {
	out := l
	out.Direction = dir
	return out
}
