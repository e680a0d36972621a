// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package swipe

import (
	"log/slog"

	"cogentcore.org/adaptive/events"
	"cogentcore.org/adaptive/math32"
)

// touchpadDistance returns the swipe distance used for touchpad scrolling.
func (t *Tracker) touchpadDistance() float32 {
	if t.isVertical() {
		return TouchpadBaseDistanceV
	}
	return TouchpadBaseDistanceH
}

// handleScroll runs the state machine on a touchpad scroll event.
// Scrolling has no press or release, so a gesture starts with the
// first sample along the tracked axis and ends with the scroll-stop
// event. In the capture phase, gestures are continued but never
// started. A new sample while finishing abandons the settle wait.
// It returns whether the event is consumed.
func (t *Tracker) handleScroll(ev *events.MouseScroll, capture bool) bool {
	if ev.Source != events.ScrollTouchpad {
		return false
	}
	distance := t.touchpadDistance()
	delta := ev.Delta.X
	if t.isVertical() {
		delta = ev.Delta.Y
	}
	if t.Reversed {
		delta = -delta
	}
	isDeltaVertical := math32.Abs(ev.Delta.Y) > math32.Abs(ev.Delta.X)

	if t.scrollLocked && t.ScrollLockTimeout > 0 && ev.Time().Sub(t.scrollLockTime) > t.ScrollLockTimeout {
		slog.Debug("swipe scroll lock timed out")
		t.scrollLocked = false
	}
	if t.scrollLocked {
		t.scrollLockTime = ev.Time()
		t.gestureCancel(distance)
		if ev.Stop {
			t.scrollLocked = false
		}
		return false
	}

	if !capture && !ev.Stop && t.state == StateFinishing {
		t.Reset()
	}

	if t.state == StateRejected {
		if ev.Stop {
			t.Reset()
		}
		return false
	}

	if t.state == StateNone {
		if ev.Stop {
			return false
		}
		if t.isVertical() != isDeltaVertical {
			t.scrollLocked = true
			t.scrollLockTime = ev.Time()
			return false
		}
		if !capture {
			t.startPos = localPos(ev.Pos())
			t.gesturePrepare(direction(delta), false)
		}
	}

	if !capture && t.state == StatePending {
		if t.isVertical() == isDeltaVertical && !t.isOvershooting(delta) {
			t.gestureBegin(ev.Time())
		} else {
			t.gestureCancel(distance)
		}
	}

	if t.state == StateScrolling {
		if ev.Stop {
			t.gestureEnd(distance)
		} else {
			t.gestureUpdate(delta/distance*ScrollMultiplier, ev.Time())
			return true
		}
	}
	return false
}
