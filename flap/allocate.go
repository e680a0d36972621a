// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flap

import (
	"image"

	"cogentcore.org/adaptive/layout"
	"cogentcore.org/adaptive/math32"
)

// sizes are the sizes of the children along the orientation.
type sizes struct {
	flap, content, separator int
}

// computeSizes returns the sizes of the children in a total extent of
// the given size, for one of the four discrete fold and reveal states.
func (f *Flap) computeSizes(total int, folded, revealed bool) sizes {
	var sz sizes
	o := f.orientation
	if f.flap.widget == nil && f.content.widget == nil {
		return sz
	}
	sz.separator = layout.Measure(f.separator.widget, o, -1).Nat
	if f.flap.widget == nil {
		sz.content = total
		return sz
	}
	if f.content.widget == nil {
		sz.flap = total
		return sz
	}
	flapReq := layout.Measure(f.flap.widget, o, -1)
	contentReq := layout.Measure(f.content.widget, o, -1)
	sz.flap, sz.content = flapReq.Min, contentReq.Min
	flapExpand := f.flap.widget.Expand(o)
	contentExpand := f.content.widget.Expand(o)

	if folded {
		sz.content = total
		if flapExpand {
			sz.flap = total
		} else {
			sz.flap = min(flapReq.Nat, total)
		}
		return sz
	}

	if revealed {
		total -= sz.separator
	}

	if flapExpand && contentExpand {
		sz.flap = max(total/2, sz.flap)
		if revealed {
			sz.content = total - sz.flap
		} else {
			sz.content = total
		}
		return sz
	}

	extra := total - sz.content - sz.flap
	if flapExpand {
		sz.flap += extra
		if !revealed {
			sz.content = total
		}
		return sz
	}
	if contentExpand {
		sz.content += extra
		extra = 0
	}
	if extra > 0 {
		reqs := []layout.RequestedSize{
			{Min: sz.flap, Nat: flapReq.Nat},
			{Min: sz.content, Nat: contentReq.Nat},
		}
		extra = layout.DistributeNaturalAllocation(extra, reqs)
		sz.flap = reqs[0].Min
		sz.content = reqs[1].Min + extra
	}
	if !revealed {
		sz.content = total
	}
	return sz
}

// lerpSizes interpolates between two solutions.
func lerpSizes(a, b sizes, t float32) sizes {
	lerp := func(x, y int) int {
		return math32.RoundInt(math32.Lerp(float32(x), float32(y), t))
	}
	return sizes{flap: lerp(a.flap, b.flap), content: lerp(a.content, b.content), separator: lerp(a.separator, b.separator)}
}

// interpolateReveal returns the sizes for the given fold state,
// interpolated between hidden and revealed by the reveal progress.
func (f *Flap) interpolateReveal(total int, folded bool) sizes {
	switch {
	case f.revealProgress <= 0:
		return f.computeSizes(total, folded, false)
	case f.revealProgress >= 1:
		return f.computeSizes(total, folded, true)
	}
	hidden := f.computeSizes(total, folded, false)
	revealed := f.computeSizes(total, folded, true)
	return lerpSizes(hidden, revealed, f.revealProgress)
}

// interpolateFold returns the sizes interpolated between
// unfolded and folded by the fold progress.
func (f *Flap) interpolateFold(total int) sizes {
	switch {
	case f.foldProgress <= 0:
		return f.interpolateReveal(total, false)
	case f.foldProgress >= 1:
		return f.interpolateReveal(total, true)
	}
	unfolded := f.interpolateReveal(total, false)
	folded := f.interpolateReveal(total, true)
	return lerpSizes(unfolded, folded, f.foldProgress)
}

// computeAllocation computes the allocations of the children, in flap
// coordinates, for a flap of the given size.
func (f *Flap) computeAllocation(size image.Point) (flapRect, contentRect, separatorRect image.Rectangle) {
	if f.flap.widget == nil && f.content.widget == nil && f.separator.widget == nil {
		return
	}
	dim := f.orientation.Dim()
	other := math32.OtherDim(dim)
	total := math32.PointDim(size, dim)
	cross := math32.PointDim(size, other)
	sz := f.interpolateFold(total)
	sz.flap, sz.content, sz.separator = max(sz.flap, 0), max(sz.content, 0), max(sz.separator, 0)

	var flapPos, contentPos, separatorPos int
	if f.flap.widget != nil {
		var distance float32
		if f.contentAboveFlap() {
			distance = float32(sz.flap + sz.separator)
		} else {
			distance = float32(sz.flap) + float32(sz.separator)*(1-f.foldProgress)
		}
		flapPos = -math32.RoundInt((1 - f.revealProgress) * f.flapMotionFactor() * distance)
		if f.contentAboveFlap() {
			contentPos = math32.RoundInt(f.revealProgress * f.contentMotionFactor() * distance)
			separatorPos = flapPos + sz.flap
		} else {
			contentPos = total - sz.content + math32.RoundInt(f.revealProgress*f.foldProgress*f.contentMotionFactor()*distance)
			separatorPos = contentPos - sz.separator
		}
		if f.flapPosition != f.startOrEnd() {
			flapPos = total - flapPos - sz.flap
			separatorPos = total - separatorPos - sz.separator
			contentPos = total - contentPos - sz.content
		}
	}
	flapRect = math32.RectFromDims(dim, flapPos, sz.flap, 0, cross)
	contentRect = math32.RectFromDims(dim, contentPos, sz.content, 0, cross)
	separatorRect = math32.RectFromDims(dim, separatorPos, sz.separator, 0, cross)
	return
}

// foldThreshold returns the size along the orientation below which
// an automatic fold policy folds the flap.
func (f *Flap) foldThreshold() int {
	o := f.orientation
	return layout.Measure(f.content.widget, o, -1).Min +
		layout.Measure(f.flap.widget, o, -1).Min +
		layout.Measure(f.separator.widget, o, -1).Nat
}

// Allocate allocates the flap the given rectangle, in parent
// coordinates, and its children their part of it. With an automatic
// fold policy, the flap folds when the rectangle is too small to show
// all children side by side.
func (f *Flap) Allocate(r image.Rectangle) {
	f.alloc = r
	if f.foldPolicy == FoldAuto {
		total := math32.RectSize(r, f.orientation.Dim())
		f.setFolded(total < f.foldThreshold())
	}
	f.layoutQueued = false
	flapRect, contentRect, separatorRect := f.computeAllocation(r.Size())
	f.allocateChild(&f.content, contentRect)
	f.allocateChild(&f.separator, separatorRect)
	f.allocateChild(&f.flap, flapRect)
}

func (f *Flap) allocateChild(cs *childSlot, r image.Rectangle) {
	cs.alloc = r
	if cs.widget == nil {
		return
	}
	if cs.surface != nil {
		cs.surface.Rect = r
	}
	if cs.childVisible {
		cs.widget.Allocate(r)
	}
}

// Allocation returns the allocation of the flap, in parent coordinates.
func (f *Flap) Allocation() image.Rectangle {
	return f.alloc
}

// ChildAllocation returns the last allocation of the given child,
// in flap coordinates.
func (f *Flap) ChildAllocation(c Children) image.Rectangle {
	return f.slot(c).alloc
}

// Measure returns the minimum and natural size of the flap. Along its
// orientation, the space for the flap and separator is blended in
// according to the fold policy and the transition state; across it,
// the size is the largest of the children.
func (f *Flap) Measure(o layout.Orientations, forSize int) (minSize, natSize int) {
	content := layout.Measure(f.content.widget, o, forSize)
	fl := layout.Measure(f.flap.widget, o, forSize)
	sep := layout.Measure(f.separator.widget, o, forSize)
	if o != f.orientation {
		return max(content.Min, fl.Min, sep.Min), max(content.Nat, fl.Nat, sep.Nat)
	}
	var minProgress, natProgress float32
	switch f.foldPolicy {
	case FoldNever:
		minProgress = (1 - f.foldProgress) * f.revealProgress
		natProgress = 1
	case FoldAlways:
		minProgress, natProgress = 0, 0
	case FoldAuto:
		minProgress = 0
		natProgress = 1
		if f.locked {
			natProgress = f.revealProgress
		}
	}
	minSize = max(content.Min+math32.RoundInt(float32(fl.Min+sep.Nat)*minProgress), fl.Min)
	natSize = max(content.Nat+math32.RoundInt(float32(fl.Nat+sep.Nat)*natProgress), fl.Nat)
	return
}

// Expand returns whether the content or the flap expands
// along the given orientation.
func (f *Flap) Expand(o layout.Orientations) bool {
	return layout.Expands(f.content.widget, o) || layout.Expands(f.flap.widget, o)
}
