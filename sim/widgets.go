// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"image"

	"cogentcore.org/adaptive/layout"
)

// Box is a simple widget with fixed size requests
// that records its allocation.
type Box struct {

	// Name is the name of the box, used in frames.
	Name string

	// Min is the minimum size per orientation.
	Min [2]int

	// Nat is the natural size per orientation.
	Nat [2]int

	// Expands is whether the box expands per orientation.
	Expands [2]bool

	// Buttons are placed inside the box.
	Buttons []*Button

	// alloc is the last allocation, in the coordinates of its parent.
	alloc image.Rectangle

	// allocs is the number of allocations.
	allocs int
}

// NewBox returns a new box with the given sizes along the horizontal
// axis. Along the vertical axis it requests nothing and expands.
func NewBox(name string, mn, nt int, expand bool) *Box {
	return &Box{Name: name, Min: [2]int{mn, 0}, Nat: [2]int{nt, 0}, Expands: [2]bool{expand, true}}
}

func (b *Box) Measure(o layout.Orientations, forSize int) (int, int) {
	return b.Min[o], b.Nat[o]
}

func (b *Box) Expand(o layout.Orientations) bool {
	return b.Expands[o]
}

func (b *Box) Allocate(r image.Rectangle) {
	b.alloc = r
	b.allocs++
}

// Allocation returns the last allocation of the box.
func (b *Box) Allocation() image.Rectangle {
	return b.alloc
}

// Allocs returns the number of times the box has been allocated.
func (b *Box) Allocs() int {
	return b.allocs
}

// Button is a press consuming area inside a [Box]. A title bar
// button moves the window when dragged instead.
type Button struct {

	// Name is the name of the button, used for counting clicks.
	Name string

	// Rect is the area of the button, relative to its box.
	Rect image.Rectangle

	// TitleBar is whether the button is a window handle.
	TitleBar bool
}

// ConsumesPress implements [swipe.PressConsumer].
func (b *Button) ConsumesPress() bool {
	return !b.TitleBar
}

// IsWindowHandle implements [swipe.WindowHandle].
func (b *Button) IsWindowHandle() bool {
	return b.TitleBar
}
