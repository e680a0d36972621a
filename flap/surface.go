// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flap

import (
	"image"

	"cogentcore.org/adaptive/anim"
	"cogentcore.org/adaptive/layout"
	"cogentcore.org/adaptive/swipe"
)

// Surface is the backing surface of a child of a [Flap], which has its
// own input and paint region. It exists only while the flap is realized
// and is owned by the flap; it is destroyed when the child is replaced.
type Surface struct {

	// Shown is whether the surface is mapped on screen.
	Shown bool

	// Rect is the region of the surface, in flap coordinates.
	Rect image.Rectangle

	// destroyed is set once the surface has been released.
	destroyed bool
}

// IsDestroyed returns whether the surface has been released.
func (s *Surface) IsDestroyed() bool {
	return s.destroyed
}

// Host is the windowing system a [Flap] is realized on.
type Host interface {
	swipe.Grabber

	// Ticker returns the frame clock that drives animations.
	Ticker() *anim.Ticker
}

// childSlot is one of the three child positions of a [Flap].
type childSlot struct {
	widget layout.Widget

	// surface is the backing surface, nil while unrealized.
	surface *Surface

	// alloc is the last computed allocation, in flap coordinates.
	alloc image.Rectangle

	// childVisible is whether the child takes part in drawing and input.
	childVisible bool
}

// set replaces the child, destroying the surface of the previous one.
// It returns whether the child changed.
func (cs *childSlot) set(w layout.Widget, realized bool) bool {
	if cs.widget == w {
		return false
	}
	cs.destroySurface()
	cs.widget = w
	cs.alloc = image.Rectangle{}
	if w != nil && realized {
		cs.createSurface()
	}
	return true
}

func (cs *childSlot) createSurface() {
	if cs.surface != nil || cs.widget == nil {
		return
	}
	cs.surface = &Surface{Rect: cs.alloc}
}

func (cs *childSlot) destroySurface() {
	if cs.surface == nil {
		return
	}
	cs.surface.Shown = false
	cs.surface.destroyed = true
	cs.surface = nil
}

// setVisible sets whether the child is visible, showing or
// hiding its surface.
func (cs *childSlot) setVisible(visible bool) {
	if cs.widget == nil {
		return
	}
	cs.childVisible = visible
	if cs.surface != nil {
		cs.surface.Shown = visible
	}
}

// isDrawn returns whether the child should be drawn.
func (cs *childSlot) isDrawn() bool {
	return cs.widget != nil && cs.childVisible
}

// Realize creates the backing surfaces of the children on the given
// host, whose ticker then drives the animations of the flap.
func (f *Flap) Realize(h Host) {
	if f.realized {
		return
	}
	f.realized = true
	f.host = h
	f.tracker.SetGrabber(h)
	for _, cs := range f.slots() {
		cs.createSurface()
	}
	f.updateChildVisibility()
	f.queueAllocate()
}

// Unrealize destroys the backing surfaces of the children. Any gesture
// in progress is cancelled and running animations jump to their end.
func (f *Flap) Unrealize() {
	if !f.realized {
		return
	}
	f.tracker.Unrealize()
	f.realized = false
	f.revealAnim.Skip()
	f.foldAnim.Skip()
	f.tracker.SetGrabber(nil)
	f.host = nil
	for _, cs := range f.slots() {
		cs.destroySurface()
	}
}

// IsRealized returns whether the flap is realized.
func (f *Flap) IsRealized() bool {
	return f.realized
}

// Surface returns the backing surface of the given child,
// which is nil while the flap is unrealized or the slot is empty.
func (f *Flap) Surface(c Children) *Surface {
	return f.slot(c).surface
}

// ChildVisible returns whether the given child takes part
// in drawing and input.
func (f *Flap) ChildVisible(c Children) bool {
	return f.slot(c).isDrawn()
}

func (f *Flap) slot(c Children) *childSlot {
	switch c {
	case ChildFlap:
		return &f.flap
	case ChildSeparator:
		return &f.separator
	}
	return &f.content
}

func (f *Flap) slots() []*childSlot {
	return []*childSlot{&f.content, &f.flap, &f.separator}
}

// updateChildVisibility shows the flap and separator
// only while the flap is at least partly revealed.
func (f *Flap) updateChildVisibility() {
	visible := f.revealProgress > 0
	f.content.setVisible(true)
	f.flap.setVisible(visible)
	f.separator.setVisible(visible)
}
