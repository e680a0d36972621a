// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package flap provides [Flap], an adaptive container that shows a
// collapsible panel (the flap) next to its main content, and folds it
// over the content when there is not enough room. Folding and revealing
// the flap are animated independently, and the flap can be swiped open
// and closed with a [swipe.Tracker].
package flap

import (
	"image"
	"log/slog"
	"time"

	"cogentcore.org/adaptive/anim"
	"cogentcore.org/adaptive/enums"
	"cogentcore.org/adaptive/layout"
	"cogentcore.org/adaptive/swipe"
)

// DefaultDuration is the default duration of the fold
// and reveal animations.
const DefaultDuration = 250 * time.Millisecond

// Flap is an adaptive container with a content child, a flap child
// and an optional separator between them. All methods must be called
// from the goroutine that dispatches events to the flap.
type Flap struct {
	content   childSlot
	flap      childSlot
	separator childSlot

	foldPolicy     FoldPolicies
	transitionType TransitionTypes
	flapPosition   Positions
	orientation    layout.Orientations
	direction      layout.TextDirections
	revealFlap     bool
	locked         bool
	modal          bool
	swipeToOpen    bool
	swipeToClose   bool
	revealDuration time.Duration
	foldDuration   time.Duration

	// folded is whether the flap is folded over the content.
	folded bool

	foldProgress   float32
	revealProgress float32

	// pending is the transition to run after the reveal animation.
	pending PendingTransition

	// swipeActive is set while a gesture drives revealProgress.
	swipeActive bool

	foldAnim   *anim.Animation
	revealAnim *anim.Animation
	tracker    *swipe.Tracker

	realized bool
	host     Host

	// alloc is the allocation of the flap, in parent coordinates.
	alloc image.Rectangle

	// layoutQueued is set when the allocation is out of date.
	layoutQueued bool

	observers     []func(f *Flap, p Properties)
	childSwitched []func(index int, duration time.Duration)
}

// New returns a new flap with an automatic fold policy,
// revealed, modal and swipeable in both directions.
func New() *Flap {
	f := &Flap{
		foldPolicy:     FoldAuto,
		transitionType: TransitionOver,
		flapPosition:   PositionStart,
		orientation:    layout.Horizontal,
		direction:      layout.LTR,
		revealFlap:     true,
		modal:          true,
		swipeToOpen:    true,
		swipeToClose:   true,
		revealDuration: DefaultDuration,
		foldDuration:   DefaultDuration,
		revealProgress: 1,
	}
	f.revealAnim = &anim.Animation{Easing: anim.EaseOutCubic, OnValue: f.setRevealProgress, OnDone: f.revealDone}
	f.foldAnim = &anim.Animation{Easing: anim.EaseOutCubic, OnValue: f.setFoldProgress}
	f.tracker = swipe.NewTracker(f)
	f.tracker.OnBegin(f.beginSwipe)
	f.tracker.OnUpdate(f.updateSwipe)
	f.tracker.OnEnd(f.endSwipe)
	f.updateSwipeTracker()
	return f
}

// OnNotify adds a function called whenever a property of the flap changes.
func (f *Flap) OnNotify(fun func(f *Flap, p Properties)) {
	f.observers = append(f.observers, fun)
}

// OnChildSwitched adds a function called when the flap is revealed or
// hidden by [Flap.SetRevealFlap] or by folding, with index 1 for
// revealed and 0 for hidden, so that other swipeables can follow.
// Gestures do not call it, since the followers track the gesture itself.
func (f *Flap) OnChildSwitched(fun func(index int, duration time.Duration)) {
	f.childSwitched = append(f.childSwitched, fun)
}

func (f *Flap) notify(p Properties) {
	for _, fun := range f.observers {
		fun(f, p)
	}
}

// queueAllocate marks the allocation as out of date.
func (f *Flap) queueAllocate() {
	f.layoutQueued = true
}

// LayoutQueued returns whether the flap needs a new allocation pass.
func (f *Flap) LayoutQueued() bool {
	return f.layoutQueued
}

// Tracker returns the swipe tracker of the flap.
func (f *Flap) Tracker() *swipe.Tracker {
	return f.tracker
}

// SwipeTracker returns the swipe tracker of the flap,
// implementing [swipe.TrackerOwner].
func (f *Flap) SwipeTracker() *swipe.Tracker {
	return f.tracker
}

// Child returns the widget in the given child slot, or nil.
func (f *Flap) Child(c Children) layout.Widget {
	return f.slot(c).widget
}

// SetContent sets the content child. A nil widget empties the slot.
func (f *Flap) SetContent(w layout.Widget) *Flap {
	f.setChild(ChildContent, w)
	return f
}

// SetFlap sets the flap child. A nil widget empties the slot,
// which also disables swiping.
func (f *Flap) SetFlap(w layout.Widget) *Flap {
	f.setChild(ChildFlap, w)
	f.updateSwipeTracker()
	return f
}

// SetSeparator sets the separator child. A nil widget empties the slot.
func (f *Flap) SetSeparator(w layout.Widget) *Flap {
	f.setChild(ChildSeparator, w)
	return f
}

func (f *Flap) setChild(c Children, w layout.Widget) {
	if !f.slot(c).set(w, f.realized) {
		return
	}
	f.updateChildVisibility()
	f.queueAllocate()
	f.notify(NotifyContent + Properties(c))
}

// FoldPolicy returns the fold policy.
func (f *Flap) FoldPolicy() FoldPolicies {
	return f.foldPolicy
}

// SetFoldPolicy sets the fold policy. [FoldNever] and [FoldAlways]
// take effect immediately; [FoldAuto] on the next allocation.
func (f *Flap) SetFoldPolicy(policy FoldPolicies) *Flap {
	if !checkValid(policy, "fold policy") || f.foldPolicy == policy {
		return f
	}
	f.foldPolicy = policy
	switch policy {
	case FoldNever:
		f.setFolded(false)
	case FoldAlways:
		f.setFolded(true)
	case FoldAuto:
		f.queueAllocate()
	}
	f.notify(NotifyFoldPolicy)
	return f
}

// TransitionType returns the transition type.
func (f *Flap) TransitionType() TransitionTypes {
	return f.transitionType
}

// SetTransitionType sets the transition type.
func (f *Flap) SetTransitionType(tt TransitionTypes) *Flap {
	if !checkValid(tt, "transition type") || f.transitionType == tt {
		return f
	}
	f.transitionType = tt
	f.queueAllocate()
	f.notify(NotifyTransitionType)
	return f
}

// FlapPosition returns the position of the flap.
func (f *Flap) FlapPosition() Positions {
	return f.flapPosition
}

// SetFlapPosition sets the position of the flap.
func (f *Flap) SetFlapPosition(pos Positions) *Flap {
	if !checkValid(pos, "flap position") || f.flapPosition == pos {
		return f
	}
	f.flapPosition = pos
	f.queueAllocate()
	f.updateSwipeTracker()
	f.notify(NotifyFlapPosition)
	return f
}

// Orientation returns the orientation of the layout.
func (f *Flap) Orientation() layout.Orientations {
	return f.orientation
}

// SetOrientation sets the orientation of the layout,
// which is also the axis along which the flap is swiped.
func (f *Flap) SetOrientation(o layout.Orientations) *Flap {
	if !checkValid(o, "orientation") || f.orientation == o {
		return f
	}
	f.orientation = o
	f.queueAllocate()
	f.updateSwipeTracker()
	f.notify(NotifyOrientation)
	return f
}

// Direction returns the text direction of the layout.
func (f *Flap) Direction() layout.TextDirections {
	return f.direction
}

// SetDirection sets the text direction, which mirrors
// horizontal layouts when it is [layout.RTL].
func (f *Flap) SetDirection(dir layout.TextDirections) *Flap {
	if !checkValid(dir, "text direction") || f.direction == dir {
		return f
	}
	f.direction = dir
	f.queueAllocate()
	f.updateSwipeTracker()
	f.notify(NotifyTextDirection)
	return f
}

// RevealFlap returns whether the flap is revealed, or being revealed.
func (f *Flap) RevealFlap() bool {
	return f.revealFlap
}

// SetRevealFlap reveals or hides the flap, animating
// over [Flap.RevealDuration].
func (f *Flap) SetRevealFlap(reveal bool) *Flap {
	f.setRevealFlap(reveal, f.revealDuration, true)
	return f
}

// Locked returns whether the flap is locked.
func (f *Flap) Locked() bool {
	return f.locked
}

// SetLocked sets whether the flap is locked. An unlocked flap is
// hidden when it folds and revealed when it unfolds; a locked flap
// keeps its reveal state.
func (f *Flap) SetLocked(locked bool) *Flap {
	if f.locked == locked {
		return f
	}
	f.locked = locked
	f.notify(NotifyLocked)
	return f
}

// Modal returns whether the flap is modal.
func (f *Flap) Modal() bool {
	return f.modal
}

// SetModal sets whether the folded, revealed flap is modal, in which
// case clicking outside of it or pressing Escape hides it.
func (f *Flap) SetModal(modal bool) *Flap {
	if f.modal == modal {
		return f
	}
	f.modal = modal
	f.queueAllocate()
	f.notify(NotifyModal)
	return f
}

// SwipeToOpen returns whether the flap can be swiped open.
func (f *Flap) SwipeToOpen() bool {
	return f.swipeToOpen
}

// SetSwipeToOpen sets whether the flap can be swiped open.
func (f *Flap) SetSwipeToOpen(swipeToOpen bool) *Flap {
	if f.swipeToOpen == swipeToOpen {
		return f
	}
	f.swipeToOpen = swipeToOpen
	f.updateSwipeTracker()
	f.notify(NotifySwipeToOpen)
	return f
}

// SwipeToClose returns whether the flap can be swiped closed.
func (f *Flap) SwipeToClose() bool {
	return f.swipeToClose
}

// SetSwipeToClose sets whether the flap can be swiped closed.
func (f *Flap) SetSwipeToClose(swipeToClose bool) *Flap {
	if f.swipeToClose == swipeToClose {
		return f
	}
	f.swipeToClose = swipeToClose
	f.updateSwipeTracker()
	f.notify(NotifySwipeToClose)
	return f
}

// RevealDuration returns the duration of the reveal animation.
func (f *Flap) RevealDuration() time.Duration {
	return f.revealDuration
}

// SetRevealDuration sets the duration of the reveal animation.
func (f *Flap) SetRevealDuration(d time.Duration) *Flap {
	if f.revealDuration == d {
		return f
	}
	f.revealDuration = d
	f.notify(NotifyRevealDuration)
	return f
}

// FoldDuration returns the duration of the fold animation.
func (f *Flap) FoldDuration() time.Duration {
	return f.foldDuration
}

// SetFoldDuration sets the duration of the fold animation.
func (f *Flap) SetFoldDuration(d time.Duration) *Flap {
	if f.foldDuration == d {
		return f
	}
	f.foldDuration = d
	f.notify(NotifyFoldDuration)
	return f
}

// Folded returns whether the flap is folded over the content.
func (f *Flap) Folded() bool {
	return f.folded
}

// FoldProgress returns the progress of the fold transition,
// from 0 for side by side to 1 for folded.
func (f *Flap) FoldProgress() float32 {
	return f.foldProgress
}

// RevealProgress returns the progress of the reveal transition,
// from 0 for hidden to 1 for revealed.
func (f *Flap) RevealProgress() float32 {
	return f.revealProgress
}

// Pending returns the transition deferred until
// the reveal animation completes.
func (f *Flap) Pending() PendingTransition {
	return f.pending
}

// updateSwipeTracker configures the tracker for the current layout.
// Progress grows towards the end of the layout for flaps at the start.
func (f *Flap) updateSwipeTracker() {
	reverse := f.flapPosition == PositionStart
	if f.orientation == layout.Horizontal && f.direction == layout.RTL {
		reverse = !reverse
	}
	f.tracker.SetEnabled(f.flap.widget != nil && (f.swipeToOpen || f.swipeToClose))
	f.tracker.SetReversed(reverse)
	f.tracker.SetOrientation(f.orientation)
}

// checkValid logs and returns false for enum values that are
// not one of their declared constants.
func checkValid(e enums.Enum, what string) bool {
	if enums.IsValid(e) {
		return true
	}
	slog.Error("programmer error: invalid "+what, "value", e.Int64())
	return false
}
