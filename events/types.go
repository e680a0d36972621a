// Copyright (c) 2023, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

//go:generate core generate

// Types determines the type of input event.
// The type should include both the source / nature of the event
// and the "action" type of the event (e.g., MouseDown, MouseUp
// are separate event types). The standard
// [JavaScript Event](https://developer.mozilla.org/en-US/docs/Web/Events)
// provide the basis for most of the event type names and categories.
// Most events use the same Base type and only need
// to set relevant fields and the type.
type Types int32 //enums:enum

const (
	// zero value is an unknown type
	UnknownType Types = iota

	// MouseDown happens when a mouse button is pressed down. See Button() for which.
	MouseDown

	// MouseUp happens when a mouse button is released. See Button() for which.
	MouseUp

	// MouseMove is always sent when the mouse is moving but no button is down.
	MouseMove

	// MouseDrag is always sent when the mouse is moving and there
	// is a button down. The start pos indicates where (and when)
	// the button was first pressed.
	MouseDrag

	// Scroll is for scroll wheel or other scrolling events (gestures).
	// Touchpad scrolling ends with a scroll-stop event, see [MouseScroll.Stop].
	Scroll

	// KeyDown is when a key is pressed down.
	KeyDown

	// KeyUp is when a key is released.
	KeyUp

	// TouchStart is when a touch sequence starts.
	TouchStart

	// TouchEnd is when a touch sequence ends.
	TouchEnd

	// TouchMove is when a touch point moves.
	TouchMove

	// TouchCancel is when the windowing system takes a touch
	// sequence away from the window, for example for a system gesture.
	TouchCancel

	// Custom is a user-defined event
	Custom
)

// IsPointer returns whether the event type carries a pointer
// (mouse or touch) position that starts, continues or ends a
// press-drag-release sequence.
func (tp Types) IsPointer() bool {
	switch tp {
	case MouseDown, MouseUp, MouseDrag, TouchStart, TouchEnd, TouchMove, TouchCancel:
		return true
	}
	return false
}

// IsTouch returns whether the event type is a touch event.
func (tp Types) IsTouch() bool {
	return tp >= TouchStart && tp <= TouchCancel
}
