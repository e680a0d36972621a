// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flap

import (
	"image"

	"cogentcore.org/adaptive/layout"
	"cogentcore.org/adaptive/math32"
)

// Painter composites the children of a [Flap]. Rectangles
// are in flap coordinates.
type Painter interface {

	// DrawChild draws the given child in the given rectangle.
	DrawChild(w layout.Widget, r image.Rectangle)

	// PushClip restricts drawing to the given rectangle until
	// the matching PopClip.
	PushClip(r image.Rectangle)

	// PopClip removes the last clip.
	PopClip()

	// DrawShadow draws a shadow over the given rectangle, with the
	// given progress from 0 for a full shadow to 1 for none, darkest
	// on the given side.
	DrawShadow(r image.Rectangle, progress float32, dir ShadowDirections)
}

// PaintPlan is everything needed to paint a [Flap] in one frame.
type PaintPlan struct {

	// Order are the children to draw, bottom first.
	Order []Children

	// Clipped is whether every layer but the top one is clipped to Clip.
	Clipped bool

	// Clip is the part of the flap not covered by the content.
	Clip image.Rectangle

	// Shadowed is whether the shadow is drawn.
	Shadowed bool

	// Shadow is the rectangle of the shadow.
	Shadow image.Rectangle

	// ShadowProgress is the progress of the shadow, from 0 for a full
	// shadow to 1 for none.
	ShadowProgress float32

	// ShadowDirection is the side of Shadow on the seam.
	ShadowDirection ShadowDirections
}

// PaintOrder returns the children to draw, bottom first.
// The content is drawn above the flap for the transitions
// that move the content.
func (f *Flap) PaintOrder() []Children {
	order := []Children{ChildContent, ChildSeparator, ChildFlap}
	if f.contentAboveFlap() {
		order = []Children{ChildFlap, ChildSeparator, ChildContent}
	}
	drawn := make([]Children, 0, len(order))
	for _, c := range order {
		if f.slot(c).isDrawn() {
			drawn = append(drawn, c)
		}
	}
	return drawn
}

// PaintPlan returns the plan for painting the flap in its current state.
func (f *Flap) PaintPlan() *PaintPlan {
	pp := &PaintPlan{Order: f.PaintOrder(), ShadowProgress: f.ShadowProgress()}
	size := f.alloc.Size()
	if f.shouldClip() && len(pp.Order) > 1 {
		pp.Clipped = true
		pp.Clip = f.clipRect(size)
	}
	if pp.ShadowProgress < 1 && f.flap.isDrawn() {
		pp.Shadowed = true
		pp.Shadow, pp.ShadowDirection = f.shadowRect(size)
	}
	return pp
}

// flapAtLow returns whether the flap lies towards lower coordinates
// than the content along the orientation.
func (f *Flap) flapAtLow() bool {
	if f.orientation == layout.Vertical {
		return f.flapPosition == PositionStart
	}
	return f.flapPosition == f.startOrEnd()
}

// clipRect returns the part of the flap not covered by the content.
func (f *Flap) clipRect(size image.Point) image.Rectangle {
	dim := f.orientation.Dim()
	other := math32.OtherDim(dim)
	total := math32.PointDim(size, dim)
	cross := math32.PointDim(size, other)
	c := f.content.alloc
	if f.flapAtLow() {
		end := max(math32.RectPos(c, dim), 0)
		return math32.RectFromDims(dim, 0, end, 0, cross)
	}
	start := min(math32.RectPos(c, dim)+math32.RectSize(c, dim), total)
	return math32.RectFromDims(dim, start, total-start, 0, cross)
}

// shadowRect returns the rectangle of the shadow, which is as large
// as the whole widget with one side on the edge of the upper layer.
func (f *Flap) shadowRect(size image.Point) (image.Rectangle, ShadowDirections) {
	above := f.contentAboveFlap()
	alloc := f.flap.alloc
	if above {
		alloc = f.content.alloc
	}
	seamAtHigh := f.flapAtLow() != above
	if f.orientation == layout.Vertical {
		if seamAtHigh {
			return image.Rectangle{Min: image.Pt(0, alloc.Max.Y), Max: image.Pt(size.X, alloc.Max.Y+size.Y)}, ShadowUp
		}
		return image.Rectangle{Min: image.Pt(0, alloc.Min.Y-size.Y), Max: image.Pt(size.X, alloc.Min.Y)}, ShadowDown
	}
	if seamAtHigh {
		return image.Rectangle{Min: image.Pt(alloc.Max.X, 0), Max: image.Pt(alloc.Max.X+size.X, size.Y)}, ShadowLeft
	}
	return image.Rectangle{Min: image.Pt(alloc.Min.X-size.X, 0), Max: image.Pt(alloc.Min.X, size.Y)}, ShadowRight
}

// Paint paints the flap with the given painter, drawing the children
// bottom first, clipping the lower layers for the under transition,
// and then the shadow at the seam.
func (f *Flap) Paint(p Painter) {
	pp := f.PaintPlan()
	if pp.Clipped {
		p.PushClip(pp.Clip)
	}
	for i, c := range pp.Order {
		if pp.Clipped && i == len(pp.Order)-1 {
			p.PopClip()
		}
		cs := f.slot(c)
		p.DrawChild(cs.widget, cs.alloc)
	}
	if pp.Shadowed {
		p.DrawShadow(pp.Shadow, pp.ShadowProgress, pp.ShadowDirection)
	}
}
