// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package swipe

import (
	"image"
	"time"

	"cogentcore.org/adaptive/events"
	"cogentcore.org/adaptive/math32"
)

// sequenceStates are the ownership states of an input sequence.
type sequenceStates int32

const (
	sequenceNone sequenceStates = iota
	sequenceClaimed
	sequenceDenied
)

// gestureDrag follows a single press-drag-release sequence of touch
// or mouse input. The tracker claims the sequence once it accepts the
// gesture, or denies it to cede the input back to the host.
type gestureDrag struct {
	active bool
	touch  bool
	seq    int
	start  image.Point
	state  sequenceStates
}

func (gd *gestureDrag) reset() {
	*gd = gestureDrag{}
}

// matches returns whether the event belongs to the active sequence.
func (gd *gestureDrag) matches(ev events.Event) bool {
	if !gd.active {
		return false
	}
	if gd.touch {
		return ev.Type().IsTouch() && ev.Sequence() == gd.seq
	}
	return !ev.Type().IsTouch()
}

// handleDrag feeds a pointer event to the drag recognizer.
// It returns whether the sequence is claimed and whether it
// has been denied.
func (t *Tracker) handleDrag(ev events.Event) (claimed, denied bool) {
	gd := &t.drag
	switch ev.Type() {
	case events.MouseDown, events.TouchStart:
		if gd.active {
			return gd.state == sequenceClaimed, false
		}
		touch := ev.Type() == events.TouchStart
		if !touch && (!t.AllowMouseDrag || ev.MouseButton() != events.Left) {
			return false, false
		}
		*gd = gestureDrag{active: true, touch: touch, seq: ev.Sequence(), start: ev.Pos()}
		t.dragBegin(ev.Pos())
	case events.MouseDrag, events.TouchMove:
		if !gd.matches(ev) {
			return false, false
		}
		t.dragUpdate(ev.Pos().Sub(gd.start), ev.Time())
	case events.MouseUp, events.TouchEnd:
		if !gd.matches(ev) {
			return false, false
		}
		if gd.state != sequenceDenied {
			t.dragEnd()
		}
		claimed := gd.state == sequenceClaimed
		denied := gd.state == sequenceDenied
		gd.reset()
		return claimed, denied
	case events.TouchCancel:
		if !gd.matches(ev) {
			return false, false
		}
		t.dragCancel()
		gd.reset()
		return false, true
	default:
		return false, false
	}
	return gd.state == sequenceClaimed, gd.state == sequenceDenied
}

// denySequence cedes the active sequence back to the host.
func (t *Tracker) denySequence() {
	t.drag.state = sequenceDenied
}

// claimSequence takes exclusive ownership of the active sequence.
func (t *Tracker) claimSequence() {
	t.drag.state = sequenceClaimed
}

// resetDrag stops following a denied sequence, which cancels any
// gesture the sequence had started.
func (t *Tracker) resetDrag() {
	if !t.drag.active {
		return
	}
	t.drag.reset()
	t.dragCancel()
}

func (t *Tracker) dragBegin(start image.Point) {
	if t.state != StateNone {
		t.denySequence()
	}
	t.startPos = localPos(start)
}

// dragOffset returns the progress offset of a drag by the given
// pixel offset along the tracked axis.
func (t *Tracker) dragOffset(off image.Point, distance float32) float32 {
	var offset float32
	if distance != 0 {
		d := float32(off.X)
		if t.isVertical() {
			d = float32(off.Y)
		}
		offset = -d / distance
	}
	if t.Reversed {
		offset = -offset
	}
	return offset
}

func (t *Tracker) dragUpdate(off image.Point, now time.Time) {
	distance := t.distance()
	offset := t.dragOffset(off, distance)
	isOffsetVertical := math32.Abs(float32(off.Y)) > math32.Abs(float32(off.X))

	switch t.state {
	case StateRejected:
		t.denySequence()
		return
	case StateNone:
		if t.isVertical() == isOffsetVertical {
			t.gesturePrepare(direction(offset), true)
		} else {
			t.denySequence()
		}
		return
	case StatePending:
		dist := math32.Hypot(float32(off.X), float32(off.Y))
		if dist >= DragThreshold {
			if t.isVertical() == isOffsetVertical && !t.isOvershooting(offset) {
				t.gestureBegin(now)
				t.prevOffset = offset
				t.claimSequence()
			} else {
				t.denySequence()
			}
		}
	}
	if t.state == StateScrolling {
		t.gestureUpdate(offset-t.prevOffset, now)
		t.prevOffset = offset
	}
}

func (t *Tracker) dragEnd() {
	distance := t.distance()
	switch t.state {
	case StateRejected:
		t.denySequence()
		t.Reset()
		return
	case StateScrolling:
		t.gestureEnd(distance)
		return
	}
	t.gestureCancel(distance)
	t.denySequence()
}

func (t *Tracker) dragCancel() {
	t.gestureCancel(t.distance())
}
