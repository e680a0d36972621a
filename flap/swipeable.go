// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flap

import (
	"image"
	"time"

	"cogentcore.org/adaptive/math32"
	"cogentcore.org/adaptive/swipe"
)

// Distance returns the swipe distance, which is the extent the
// flap and separator move over between hidden and revealed.
func (f *Flap) Distance() float32 {
	if f.flap.widget == nil {
		return 0
	}
	dim := f.orientation.Dim()
	fl := float32(math32.RectSize(f.flap.alloc, dim))
	sep := float32(math32.RectSize(f.separator.alloc, dim))
	if f.contentAboveFlap() {
		return fl + sep
	}
	return fl + sep*(1-f.foldProgress)
}

// SnapPoints returns 0 for hidden and 1 for revealed. When swiping
// in one direction is disabled, only the current end is a snap point.
func (f *Flap) SnapPoints() []float32 {
	canOpen := f.revealProgress > 0 || f.swipeToOpen || f.swipeActive
	canClose := f.revealProgress < 1 || f.swipeToClose || f.swipeActive
	if canOpen && canClose {
		return []float32{0, 1}
	}
	if canOpen {
		return []float32{1}
	}
	return []float32{0}
}

// Progress returns the reveal progress.
func (f *Flap) Progress() float32 {
	return f.revealProgress
}

// CancelProgress returns the reveal progress rounded
// to hidden or revealed.
func (f *Flap) CancelProgress() float32 {
	return math32.Round(f.revealProgress)
}

// SwipeArea returns the area in which swipes start. Drags on a folded
// flap whose only moving layer is on top are restricted to the visible
// edge of that layer, at least [swipe.SwipeBorder] wide.
func (f *Flap) SwipeArea(dir swipe.NavigationDirections, isDrag bool) image.Rectangle {
	if f.flap.widget == nil {
		return image.Rectangle{}
	}
	size := f.alloc.Size()
	full := image.Rectangle{Max: size}
	flapFactor := f.flapMotionFactor()
	contentFactor := f.contentMotionFactor()
	if !isDrag || (flapFactor >= 1 && contentFactor >= 1) || (f.foldProgress < 1 && flapFactor > 0) {
		return full
	}
	alloc := f.flap.alloc
	if f.contentAboveFlap() {
		alloc = f.content.alloc
	}
	dim := f.orientation.Dim()
	other := math32.OtherDim(dim)
	total := math32.PointDim(size, dim)
	pos := math32.RectPos(alloc, dim)
	length := math32.RectSize(alloc, dim)
	crossPos := math32.RectPos(alloc, other)
	crossSize := math32.RectSize(alloc, other)
	switch {
	case pos <= 0:
		return math32.RectFromDims(dim, 0, max(length+pos, swipe.SwipeBorder), crossPos, crossSize)
	case pos+length >= total:
		w := max(total-pos, swipe.SwipeBorder)
		return math32.RectFromDims(dim, total-w, w, crossPos, crossSize)
	}
	return alloc
}

// SwitchChild reveals the flap for index 1 and hides it for index 0.
func (f *Flap) SwitchChild(index int, duration time.Duration) {
	f.setRevealFlap(index > 0, duration, false)
}
