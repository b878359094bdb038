package avatar

import (
	"math"

	"github.com/tanema/gween/ease"

	"github.com/phanxgames/warren"
	"github.com/phanxgames/warren/room"
)

// walkSpeed is how many tiles an avatar crosses per second.
const walkSpeed = 2.0

const tickDt = float32(1.0 / 60.0)

type walkState struct {
	tween      *warren.TweenGroup
	toX, toY   float64
	onComplete func()
}

// WalkTo glides the avatar to a room coordinate, turning it toward the
// destination and animating for the duration. The look direction change
// goes through the normal reload path. onComplete may be nil; it fires once
// when the destination is reached. A second WalkTo supersedes a walk in
// progress.
func (a *Avatar) WalkTo(x, y float64, onComplete func()) {
	if a.node == nil {
		return
	}
	dx := x - a.X
	dy := y - a.Y
	if dx == 0 && dy == 0 {
		if onComplete != nil {
			onComplete()
		}
		return
	}

	a.SetLook(a.look.WithDirection(directionFor(dx, dy)))
	a.Animating = true

	dist := math.Hypot(dx, dy)
	duration := float32(dist / walkSpeed)
	sx, sy := a.Ctx().Projector.Project(x, y, a.Z, room.PlacementObject)
	a.walk = &walkState{
		tween:      warren.TweenPosition(a.node, sx, sy, duration, ease.Linear),
		toX:        x,
		toY:        y,
		onComplete: onComplete,
	}
}

// Walking reports whether a walk is in progress.
func (a *Avatar) Walking() bool { return a.walk != nil }

func (a *Avatar) updateWalk() {
	if a.walk == nil {
		return
	}
	w := a.walk
	w.tween.Update(tickDt)
	if !w.tween.Done {
		return
	}
	a.walk = nil
	a.X, a.Y = w.toX, w.toY
	a.Animating = false
	a.place()
	if w.onComplete != nil {
		w.onComplete()
	}
}

// directionFor maps a movement delta in room space to one of the eight
// facing directions, 0 north through 7 north-west clockwise. Room +x runs
// south-east on screen and +y south-west.
func directionFor(dx, dy float64) int {
	angle := math.Atan2(dy, dx)
	// rotate so direction 0 (north) corresponds to moving (-1, -1)
	sector := int(math.Round((angle+math.Pi*3/4)/(math.Pi/4))) % 8
	if sector < 0 {
		sector += 8
	}
	return sector
}
