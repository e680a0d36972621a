// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package swipe

// Node is a node of the host widget tree. Hosts set the innermost
// node under the pointer as the event target.
type Node interface {

	// NodeParent returns the parent node, or nil at the root.
	NodeParent() Node

	// NodeWidget returns the widget at this node.
	NodeWidget() any
}

// TrackerOwner is implemented by swipeable widgets
// to expose their tracker to other trackers.
type TrackerOwner interface {
	SwipeTracker() *Tracker
}

// WindowHandle is implemented by widgets that move the window
// when dragged, such as title bars. Trackers never take input
// from them.
type WindowHandle interface {
	IsWindowHandle() bool
}

// PressConsumer is implemented by widgets that consume presses,
// such as buttons, which would otherwise hide drags that start on
// them from the trackers of their ancestors.
type PressConsumer interface {
	ConsumesPress() bool
}

// targetNode returns the target node of an event, or nil.
func targetNode(target any) Node {
	n, _ := target.(Node)
	return n
}

// isWindowHandle returns whether the target is inside a window handle.
func isWindowHandle(target any) bool {
	for n := targetNode(target); n != nil; n = n.NodeParent() {
		if wh, ok := n.NodeWidget().(WindowHandle); ok && wh.IsWindowHandle() {
			return true
		}
	}
	return false
}

// hasConflicts returns whether the given widget is the swipeable of
// this tracker, or a swipeable whose tracker uses the same orientation.
func (t *Tracker) hasConflicts(w any) bool {
	if w == any(t.swipeable) {
		return true
	}
	to, ok := w.(TrackerOwner)
	if !ok {
		return false
	}
	other := to.SwipeTracker()
	return other != nil && other.Orientation == t.Orientation
}

// shouldForceDrag returns whether the tracker should capture input
// aimed at the target, which is the case for press consumers whose
// closest conflicting ancestor is this tracker's swipeable.
func (t *Tracker) shouldForceDrag(target any) bool {
	n := targetNode(target)
	if n == nil {
		return false
	}
	pc, ok := n.NodeWidget().(PressConsumer)
	if !ok || !pc.ConsumesPress() {
		return false
	}
	for ; n != nil; n = n.NodeParent() {
		if t.hasConflicts(n.NodeWidget()) {
			return n.NodeWidget() == any(t.swipeable)
		}
	}
	return false
}
