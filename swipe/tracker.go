// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package swipe

import (
	"image"
	"log/slog"
	"time"

	"cogentcore.org/adaptive/layout"
	"cogentcore.org/adaptive/math32"
)

// DefaultScrollLockTimeout is the default [Tracker.ScrollLockTimeout].
const DefaultScrollLockTimeout = 500 * time.Millisecond

// Grabber is implemented by hosts that can route all pointer
// input to one widget while a gesture is in progress.
type Grabber interface {
	GrabAdd(w any)
	GrabRemove(w any)
}

// Tracker recognizes swipe gestures on a [Swipeable] and reports them
// through the begin, update and end signals. Every accepted gesture
// emits exactly one begin, any number of updates and exactly one end,
// in that order. A Tracker must only be used from the goroutine that
// dispatches events to its widget.
type Tracker struct {

	// Orientation is the axis along which swipes are tracked.
	Orientation layout.Orientations

	// Reversed inverts the direction of the gesture, for widgets
	// whose progress grows towards the start of the axis.
	Reversed bool

	// AllowMouseDrag is whether dragging with the primary mouse
	// button is tracked, in addition to touch and touchpad input.
	AllowMouseDrag bool

	// Enabled is whether new gestures are recognized.
	Enabled bool

	// ScrollLockTimeout is the time without scroll events after which
	// a cross-axis touchpad scroll stops blocking swipes, for input
	// backends that never send a scroll-stop event. Zero disables it.
	ScrollLockTimeout time.Duration

	swipeable Swipeable
	grabber   Grabber

	state           States
	startPos        math32.Vector2
	initialProgress float32
	progress        float32
	velocity        float32
	cancelled       bool
	prevOffset      float32
	prevTime        time.Time
	grabbed         bool

	scrollLocked   bool
	scrollLockTime time.Time

	drag       gestureDrag
	lastEvent  any
	lastResult bool

	onBegin  []func(dir NavigationDirections, direct bool)
	onUpdate []func(progress float32)
	onEnd    []func(duration time.Duration, to float32)
}

// NewTracker returns a new enabled, horizontal tracker
// bound to the given swipeable.
func NewTracker(s Swipeable) *Tracker {
	return &Tracker{Enabled: true, ScrollLockTimeout: DefaultScrollLockTimeout, swipeable: s}
}

// Swipeable returns the swipeable the tracker is bound to.
func (t *Tracker) Swipeable() Swipeable {
	return t.swipeable
}

// State returns the current gesture state.
func (t *Tracker) State() States {
	return t.state
}

// IsGrabbed returns whether the tracker holds the input grab.
func (t *Tracker) IsGrabbed() bool {
	return t.grabbed
}

// SetGrabber sets the host used to grab input during a gesture.
func (t *Tracker) SetGrabber(g Grabber) {
	if t.grabbed && t.grabber != nil {
		t.grabber.GrabRemove(t.swipeable)
		t.grabbed = false
	}
	t.grabber = g
}

// SetEnabled sets whether new gestures are recognized.
// Disabling resets the tracker unless a gesture is scrolling,
// which is allowed to finish.
func (t *Tracker) SetEnabled(enabled bool) {
	if t.Enabled == enabled {
		return
	}
	t.Enabled = enabled
	if !enabled && t.state != StateScrolling {
		t.Reset()
	}
}

// SetReversed sets [Tracker.Reversed].
func (t *Tracker) SetReversed(reversed bool) {
	t.Reversed = reversed
}

// SetAllowMouseDrag sets [Tracker.AllowMouseDrag].
func (t *Tracker) SetAllowMouseDrag(allow bool) {
	t.AllowMouseDrag = allow
}

// SetOrientation sets [Tracker.Orientation].
func (t *Tracker) SetOrientation(o layout.Orientations) {
	if !o.IsValid() {
		slog.Error("programmer error: invalid orientation", "orientation", o)
		return
	}
	t.Orientation = o
}

// OnBegin adds a function called when a gesture starts,
// with its direction and whether it is a direct manipulation.
func (t *Tracker) OnBegin(fun func(dir NavigationDirections, direct bool)) {
	t.onBegin = append(t.onBegin, fun)
}

// OnUpdate adds a function called with the new progress
// whenever an accepted gesture moves.
func (t *Tracker) OnUpdate(fun func(progress float32)) {
	t.onUpdate = append(t.onUpdate, fun)
}

// OnEnd adds a function called when a gesture ends, with the
// duration of the settle animation and the progress to settle on.
// The consumer calls [Tracker.FinishSettle] when it has settled.
func (t *Tracker) OnEnd(fun func(duration time.Duration, to float32)) {
	t.onEnd = append(t.onEnd, fun)
}

// Reset returns the tracker to [StateNone], clearing all gesture
// state and releasing the input grab. It is safe to call at any time.
func (t *Tracker) Reset() {
	if t.state != StateNone {
		slog.Debug("swipe tracker reset", "tracker.state", t.state)
	}
	t.state = StateNone
	t.prevOffset = 0
	t.initialProgress = 0
	t.progress = 0
	t.velocity = 0
	t.prevTime = time.Time{}
	t.cancelled = false
	if t.grabbed {
		t.grabbed = false
		if t.grabber != nil {
			t.grabber.GrabRemove(t.swipeable)
		}
	}
}

// ShiftPosition moves the progress of an in-flight gesture, and the
// progress it started from, by delta. Swipeables call it when their
// snap points move under an active gesture.
func (t *Tracker) ShiftPosition(delta float32) {
	if t.state != StatePending && t.state != StateScrolling {
		return
	}
	t.progress += delta
	t.initialProgress += delta
}

// FinishSettle is called by the consumer when its settle animation
// after an end signal has completed, returning a finishing tracker
// to [StateNone].
func (t *Tracker) FinishSettle() {
	if t.state == StateFinishing {
		t.Reset()
	}
}

// Unrealize cancels any gesture in progress and resets the tracker.
// It is called when the widget is removed from the screen.
func (t *Tracker) Unrealize() {
	t.drag.reset()
	t.gestureCancel(t.distance())
	t.Reset()
	t.scrollLocked = false
}

func (t *Tracker) distance() float32 {
	return t.swipeable.Distance()
}

func (t *Tracker) snapPoints() []float32 {
	points := t.swipeable.SnapPoints()
	if len(points) == 0 {
		slog.Error("programmer error: swipeable has no snap points")
	}
	return points
}

// gesturePrepare starts a gesture in the given direction at the start
// position if it lies inside the swipe area, and rejects it otherwise.
func (t *Tracker) gesturePrepare(dir NavigationDirections, isDrag bool) {
	if t.state != StateNone {
		return
	}
	area := t.swipeable.SwipeArea(dir, isDrag)
	if !t.startPos.ToPoint().In(area) {
		slog.Debug("swipe rejected outside of swipe area", "start", t.startPos, "area", area)
		t.state = StateRejected
		return
	}
	for _, fun := range t.onBegin {
		fun(dir, true)
	}
	t.initialProgress = t.swipeable.Progress()
	t.progress = t.initialProgress
	t.velocity = 0
	t.state = StatePending
	slog.Debug("swipe pending", "direction", dir, "progress", t.progress)
}

// gestureBegin accepts a pending gesture.
func (t *Tracker) gestureBegin(now time.Time) {
	if t.state != StatePending {
		return
	}
	t.prevTime = now
	t.state = StateScrolling
	if !t.grabbed {
		t.grabbed = true
		if t.grabber != nil {
			t.grabber.GrabAdd(t.swipeable)
		}
	}
	slog.Debug("swipe scrolling", "progress", t.progress)
}

// gestureUpdate moves an accepted gesture by delta progress units.
func (t *Tracker) gestureUpdate(delta float32, now time.Time) {
	if t.state != StateScrolling {
		return
	}
	if !now.Equal(t.prevTime) {
		t.velocity = delta / (float32(now.Sub(t.prevTime)) / float32(time.Millisecond))
	}
	first, last := snapRange(t.snapPoints())
	progress := math32.Clamp(t.progress+delta, first, last)
	progress = math32.Clamp(progress, t.initialProgress-1, t.initialProgress+1)
	t.progress = progress
	for _, fun := range t.onUpdate {
		fun(progress)
	}
	t.prevTime = now
}

// gestureEnd resolves the target of a pending or scrolling gesture
// and emits the end signal.
func (t *Tracker) gestureEnd(distance float32) {
	if t.state != StatePending && t.state != StateScrolling {
		return
	}
	var end float32
	if t.cancelled {
		end = t.swipeable.CancelProgress()
	} else {
		end = endProgress(t.snapPoints(), t.progress, t.initialProgress, t.velocity, distance)
	}
	duration := settleDuration(t.progress, end, t.velocity)
	slog.Debug("swipe end", "progress", t.progress, "to", end, "duration", duration, "cancelled", t.cancelled)
	cancelled := t.cancelled
	if cancelled {
		t.Reset()
	} else {
		t.state = StateFinishing
	}
	for _, fun := range t.onEnd {
		fun(duration, end)
	}
}

// gestureCancel abandons the current gesture, settling
// on the cancel progress of the swipeable.
func (t *Tracker) gestureCancel(distance float32) {
	if t.state != StatePending && t.state != StateScrolling {
		t.Reset()
		return
	}
	t.cancelled = true
	t.gestureEnd(distance)
}

// isOvershooting returns whether moving by offset would push progress
// beyond the first or last snap point it already sits on.
func (t *Tracker) isOvershooting(offset float32) bool {
	first, last := snapRange(t.snapPoints())
	return (offset < 0 && t.progress <= first) || (offset > 0 && t.progress >= last)
}

// isVertical returns whether the tracker tracks the vertical axis.
func (t *Tracker) isVertical() bool {
	return t.Orientation == layout.Vertical
}

// direction returns the navigation direction of a gesture moving by offset.
func direction(offset float32) NavigationDirections {
	if offset > 0 {
		return Forward
	}
	return Back
}

// localPos converts a point to a vector.
func localPos(p image.Point) math32.Vector2 {
	return math32.Vector2FromPoint(p)
}
