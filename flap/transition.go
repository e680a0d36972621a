// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flap

import (
	"cogentcore.org/adaptive/layout"
	"cogentcore.org/adaptive/math32"
)

// contentMotionFactor returns how much the content moves
// with the reveal progress.
func (f *Flap) contentMotionFactor() float32 {
	if f.transitionType == TransitionOver {
		return 0
	}
	return 1
}

// flapMotionFactor returns how much the flap moves
// with the reveal progress.
func (f *Flap) flapMotionFactor() float32 {
	if f.transitionType == TransitionUnder {
		return 0
	}
	return 1
}

// contentAboveFlap returns whether the content is drawn above the flap.
func (f *Flap) contentAboveFlap() bool {
	return f.transitionType != TransitionOver
}

// ShadowProgress returns the progress of the shadow at the flap and
// content seam, from 0 for a full shadow to 1 for none.
func (f *Flap) ShadowProgress() float32 {
	switch f.transitionType {
	case TransitionOver:
		return 1 - math32.Min(f.revealProgress, f.foldProgress)
	case TransitionUnder:
		return f.revealProgress
	}
	return 1
}

// shouldClip returns whether the layers below the content are clipped
// to the part of the flap the content does not cover.
func (f *Flap) shouldClip() bool {
	return f.transitionType == TransitionUnder && f.ShadowProgress() < 1 && f.revealProgress > 0
}

// startOrEnd returns the position at which layout solutions
// are computed: the start, or the end in right-to-left
// horizontal layouts. Solutions are mirrored when the flap
// is at the other position.
func (f *Flap) startOrEnd() Positions {
	if f.direction == layout.RTL && f.orientation == layout.Horizontal {
		return PositionEnd
	}
	return PositionStart
}
