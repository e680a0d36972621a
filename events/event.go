// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the input events delivered by the host
// windowing system to widgets, along with the listener lists and the
// queue used to dispatch them.
package events

import (
	"fmt"
	"image"
	"time"

	"cogentcore.org/adaptive/events/key"
)

// Event is the interface for all input events.
type Event interface {
	fmt.Stringer

	// Type returns the type of event.
	Type() Types

	// Time returns the time at which the event was generated.
	Time() time.Time

	// IsHandled returns whether this event has already been processed.
	IsHandled() bool

	// SetHandled marks the event as having been processed,
	// which stops further propagation.
	SetHandled()

	// ClearHandled clears the handled flag.
	ClearHandled()

	// HasPos returns true if the event has a window position where it took place.
	HasPos() bool

	// WindowPos returns the position in window coordinates.
	WindowPos() image.Point

	// Pos returns the position relative to the widget that
	// is currently processing the event (see [Event.SetLocalOff]).
	Pos() image.Point

	// StartPos returns the local position at the start of a
	// drag or touch sequence.
	StartPos() image.Point

	// SetLocalOff sets the offset subtracted from window positions
	// to obtain local positions.
	SetLocalOff(off image.Point)

	// MouseButton returns the button associated with the event.
	MouseButton() Buttons

	// Modifiers returns the modifier keys present at the time of the event.
	Modifiers() key.Modifiers

	// Sequence returns the identifier of the touch sequence, or 0
	// for the mouse pointer.
	Sequence() int

	// Target returns the innermost widget under the event, as set by
	// the host dispatcher.
	Target() any

	// SetTarget sets the innermost widget under the event.
	SetTarget(target any)
}

// Base is the base type for events.
// It is designed to support most event types so no further subtypes
// are needed.
type Base struct {

	// Typ is the type of event, returned as Type()
	Typ Types

	// GenTime records the time when the event was first generated.
	GenTime time.Time

	// Where is the window position of the event.
	Where image.Point

	// Start is the window position where a drag or touch sequence started.
	Start image.Point

	// Prev is the previous window position of a moving pointer.
	Prev image.Point

	// LocalOff is the offset subtracted from window positions
	// to get local positions.
	LocalOff image.Point

	// Button is the mouse button being pressed or released, if relevant.
	Button Buttons

	// Mods are the modifier keys present at the time of the event.
	Mods key.Modifiers

	// Seq is the touch sequence identifier, 0 for the mouse pointer.
	Seq int

	// handled is set when the event has been processed.
	handled bool

	// target is the innermost widget under the event.
	target any
}

// Init sets the generation time to now if it has not been set.
func (ev *Base) Init() {
	if ev.GenTime.IsZero() {
		ev.GenTime = time.Now()
	}
}

// SetTime sets the generation time of the event.
func (ev *Base) SetTime(t time.Time) {
	ev.GenTime = t
}

func (ev *Base) Type() Types {
	return ev.Typ
}

func (ev *Base) Time() time.Time {
	return ev.GenTime
}

func (ev *Base) IsHandled() bool {
	return ev.handled
}

func (ev *Base) SetHandled() {
	ev.handled = true
}

func (ev *Base) ClearHandled() {
	ev.handled = false
}

func (ev *Base) HasPos() bool {
	return false
}

func (ev *Base) WindowPos() image.Point {
	return ev.Where
}

func (ev *Base) Pos() image.Point {
	return ev.Where.Sub(ev.LocalOff)
}

func (ev *Base) StartPos() image.Point {
	return ev.Start.Sub(ev.LocalOff)
}

func (ev *Base) SetLocalOff(off image.Point) {
	ev.LocalOff = off
}

func (ev *Base) MouseButton() Buttons {
	return ev.Button
}

func (ev *Base) Modifiers() key.Modifiers {
	return ev.Mods
}

func (ev *Base) Sequence() int {
	return ev.Seq
}

func (ev *Base) Target() any {
	return ev.target
}

func (ev *Base) SetTarget(target any) {
	ev.target = target
}

func (ev *Base) String() string {
	return fmt.Sprintf("%v{Time: %v}", ev.Typ, ev.GenTime.Format("04:05.000"))
}
