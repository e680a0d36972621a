// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flap

import (
	"image"

	"cogentcore.org/adaptive/events"
	"cogentcore.org/adaptive/events/key"
	"cogentcore.org/adaptive/swipe"
)

// isOverlaying returns whether the flap is at least partly
// revealed over the content.
func (f *Flap) isOverlaying() bool {
	return f.revealProgress > 0 && f.foldProgress > 0
}

// isReleaseOutsideFlap returns whether the event is a primary
// button or touch release outside of the flap.
func (f *Flap) isReleaseOutsideFlap(ev events.Event) bool {
	switch ev.Type() {
	case events.MouseUp:
		if ev.MouseButton() != events.Left {
			return false
		}
	case events.TouchEnd:
	default:
		return false
	}
	return !inClosed(ev.Pos(), f.flap.alloc)
}

// inClosed returns whether p is inside r including its far edges.
func inClosed(p image.Point, r image.Rectangle) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// CapturedEvent processes an event in the capture phase, before the
// descendant it targets, with positions local to the flap. A modal
// flap overlaying the content is hidden by a release outside of it,
// unless the release ends a swipe. It returns whether the event is
// consumed.
func (f *Flap) CapturedEvent(ev events.Event) bool {
	if f.modal && f.isOverlaying() && f.tracker.State() != swipe.StateScrolling && f.isReleaseOutsideFlap(ev) {
		f.SetRevealFlap(false)
		return true
	}
	return f.tracker.CapturedEvent(ev)
}

// HandleEvent processes an event in the bubble phase, with positions
// local to the flap. A modal flap overlaying the content is hidden by
// the Escape key. It returns whether the event is consumed.
func (f *Flap) HandleEvent(ev events.Event) bool {
	if ke, ok := ev.(*events.Key); ok {
		if ke.Type() == events.KeyDown && ke.Code == key.CodeEscape && f.modal && f.isOverlaying() {
			f.SetRevealFlap(false)
			return true
		}
		return false
	}
	return f.tracker.HandleEvent(ev)
}
