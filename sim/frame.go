// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"fmt"
	"image"
	"strings"
	"time"

	"cogentcore.org/adaptive/flap"
	"cogentcore.org/adaptive/layout"
	"cogentcore.org/adaptive/swipe"
)

// Frame is a snapshot of the state of a flap in one frame.
type Frame struct {

	// Time is the time since the host was made.
	Time time.Duration

	// Size is the size of the window.
	Size image.Point

	Folded         bool
	RevealFlap     bool
	FoldProgress   float32
	RevealProgress float32

	// State is the state of the swipe tracker.
	State swipe.States

	// Allocs are the allocations of the children, in flap coordinates.
	Allocs map[flap.Children]image.Rectangle

	// Plan is the paint plan.
	Plan *flap.PaintPlan

	// Ops are the painting operations, in order.
	Ops []string
}

// Frame returns a snapshot of the current state, painting
// the flap with a recording painter.
func (h *Host) Frame() *Frame {
	f := h.Flap
	fr := &Frame{
		Time:           h.Elapsed(),
		Size:           h.size,
		Folded:         f.Folded(),
		RevealFlap:     f.RevealFlap(),
		FoldProgress:   f.FoldProgress(),
		RevealProgress: f.RevealProgress(),
		State:          f.Tracker().State(),
		Allocs:         map[flap.Children]image.Rectangle{},
		Plan:           f.PaintPlan(),
	}
	for _, c := range flap.ChildrenValues() {
		if f.Child(c) != nil {
			fr.Allocs[c] = f.ChildAllocation(c)
		}
	}
	p := &recorder{}
	f.Paint(p)
	fr.Ops = p.ops
	return fr
}

func (fr *Frame) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%7v folded=%v reveal=%v fold=%.3f progress=%.3f state=%v",
		fr.Time, fr.Folded, fr.RevealFlap, fr.FoldProgress, fr.RevealProgress, fr.State)
	for _, c := range flap.ChildrenValues() {
		if r, ok := fr.Allocs[c]; ok {
			fmt.Fprintf(&sb, " %v=%v", strings.ToLower(c.String()), r)
		}
	}
	return sb.String()
}

// recorder is a [flap.Painter] that records operations as strings.
type recorder struct {
	ops []string
}

func widgetName(w layout.Widget) string {
	if b, ok := w.(*Box); ok {
		return b.Name
	}
	return fmt.Sprintf("%T", w)
}

func (r *recorder) DrawChild(w layout.Widget, rect image.Rectangle) {
	r.ops = append(r.ops, fmt.Sprintf("draw %s %v", widgetName(w), rect))
}

func (r *recorder) PushClip(rect image.Rectangle) {
	r.ops = append(r.ops, fmt.Sprintf("clip %v", rect))
}

func (r *recorder) PopClip() {
	r.ops = append(r.ops, "unclip")
}

func (r *recorder) DrawShadow(rect image.Rectangle, progress float32, dir flap.ShadowDirections) {
	r.ops = append(r.ops, fmt.Sprintf("shadow %v %.3f %v", rect, progress, dir))
}
