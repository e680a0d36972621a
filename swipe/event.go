// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package swipe

import (
	"cogentcore.org/adaptive/events"
)

// HandleEvent processes an event delivered to the swipeable in the
// bubble phase, with positions local to the swipeable. It returns
// whether the event is consumed, in which case the caller stops
// propagation.
func (t *Tracker) HandleEvent(ev events.Event) bool {
	if !t.Enabled && t.state != StateScrolling {
		return false
	}
	if sc, ok := ev.(*events.MouseScroll); ok {
		return t.handleScroll(sc, false)
	}
	if !ev.Type().IsPointer() {
		return false
	}
	return t.handlePointer(ev)
}

// CapturedEvent processes an event in the capture phase, before it
// reaches the descendant it targets. Scrolling that is already being
// tracked is continued, and drags that start on press consumers owned
// by this swipeable are tracked. It returns whether the event is consumed.
func (t *Tracker) CapturedEvent(ev events.Event) bool {
	if !t.Enabled && t.state != StateScrolling {
		return false
	}
	if sc, ok := ev.(*events.MouseScroll); ok {
		return t.handleScroll(sc, true)
	}
	if !ev.Type().IsPointer() {
		return false
	}
	if !t.shouldForceDrag(ev.Target()) {
		return false
	}
	return t.handlePointer(ev)
}

// handlePointer feeds a press, drag or release to the drag recognizer.
// A new event while finishing abandons the settle wait.
func (t *Tracker) handlePointer(ev events.Event) bool {
	if isWindowHandle(ev.Target()) {
		return false
	}
	// the same event can reach the tracker in both phases
	if t.lastEvent == any(ev) {
		return t.lastResult
	}
	t.lastEvent = ev
	t.lastResult = t.feedPointer(ev)
	return t.lastResult
}

func (t *Tracker) feedPointer(ev events.Event) bool {
	if t.state == StateFinishing {
		t.Reset()
	}
	claimed, denied := t.handleDrag(ev)
	if denied {
		t.resetDrag()
		return false
	}
	if t.state == StateScrolling || t.state == StateFinishing {
		return true
	}
	return claimed
}
