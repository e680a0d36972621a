// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"
	"image"

	"cogentcore.org/adaptive/events/key"
	"cogentcore.org/adaptive/math32"
)

// Buttons is a mouse button.
type Buttons int32 //enums:enum

const (
	NoButton Buttons = iota
	Left
	Middle
	Right
)

// Mouse is a basic mouse event for all mouse events except Scroll
type Mouse struct {
	Base
}

func NewMouse(typ Types, but Buttons, where image.Point, mods key.Modifiers) *Mouse {
	ev := &Mouse{}
	ev.Typ = typ
	ev.Button = but
	ev.Where = where
	ev.Start = where
	ev.Mods = mods
	ev.Init()
	return ev
}

func (ev *Mouse) String() string {
	return fmt.Sprintf("%v{Button: %v, Pos: %v, Mods: %v, Time: %v}", ev.Type(), ev.Button, ev.Where, ev.Mods.ModifiersString(), ev.Time().Format("04:05.000"))
}

func (ev *Mouse) HasPos() bool {
	return true
}

func NewMouseDrag(but Buttons, where, prev, start image.Point, mods key.Modifiers) *Mouse {
	ev := &Mouse{}
	ev.Typ = MouseDrag
	ev.Button = but
	ev.Where = where
	ev.Prev = prev
	ev.Start = start
	ev.Mods = mods
	ev.Init()
	return ev
}

// ScrollSources are the kinds of devices that generate scroll events.
type ScrollSources int32 //enums:enum -trim-prefix Scroll

const (
	// ScrollWheel is a mouse wheel with discrete steps.
	ScrollWheel ScrollSources = iota

	// ScrollTouchpad is a touchpad generating continuous deltas
	// that end with a scroll-stop event.
	ScrollTouchpad

	// ScrollOther is any other continuous scrolling device,
	// such as a trackpoint or a tablet.
	ScrollOther
)

// MouseScroll is for mouse scrolling, recording the delta of the scroll
type MouseScroll struct {
	Mouse

	// Delta is the amount of scrolling in each axis, which is always in pixel/dot
	// units (see [Scroll]).
	Delta math32.Vector2

	// Source is the kind of device that generated the scroll.
	Source ScrollSources

	// Stop marks the scroll-stop event that ends a continuous
	// scrolling sequence. Its Delta is zero.
	Stop bool
}

func (ev *MouseScroll) String() string {
	return fmt.Sprintf("%v{Delta: %v, Source: %v, Stop: %v, Pos: %v, Mods: %v, Time: %v}", ev.Type(), ev.Delta, ev.Source, ev.Stop, ev.Where, ev.Mods.ModifiersString(), ev.Time().Format("04:05.000"))
}

func NewScroll(where image.Point, delta math32.Vector2, source ScrollSources, mods key.Modifiers) *MouseScroll {
	ev := &MouseScroll{}
	ev.Typ = Scroll
	ev.Where = where
	ev.Delta = delta
	ev.Source = source
	ev.Mods = mods
	ev.Init()
	return ev
}

// NewScrollStop returns the scroll-stop event that ends a
// continuous scrolling sequence from the given source.
func NewScrollStop(where image.Point, source ScrollSources) *MouseScroll {
	ev := NewScroll(where, math32.Vector2{}, source, 0)
	ev.Stop = true
	return ev
}
