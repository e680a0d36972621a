// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

// Easing maps linear animation time t in [0, 1] onto
// an eased progress value, with Easing(0) == 0 and Easing(1) == 1.
type Easing func(t float32) float32

// Linear is the identity easing.
func Linear(t float32) float32 {
	return t
}

// EaseOutCubic decelerates towards the end of the animation.
func EaseOutCubic(t float32) float32 {
	p := t - 1
	return p*p*p + 1
}
