// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package swipe provides [Tracker], a gesture recognizer that turns
// drags, touches and touchpad scrolling into a continuous progress
// value for widgets implementing [Swipeable], and resolves the point
// the widget settles on when the gesture ends.
package swipe

import (
	"image"
	"time"
)

//go:generate core generate

// NavigationDirections are the directions a swipe can navigate in.
type NavigationDirections int32 //enums:enum

const (
	// Back navigates towards lower progress values.
	Back NavigationDirections = iota

	// Forward navigates towards higher progress values.
	Forward
)

// Swipeable is implemented by widgets that can be driven by a [Tracker].
// Progress values are in units of the swipe distance.
type Swipeable interface {

	// Distance returns the swipe distance in device-independent
	// units, which is the length of one unit of progress.
	Distance() float32

	// SnapPoints returns the progress values a gesture can settle on,
	// in ascending order. There must always be at least one.
	SnapPoints() []float32

	// Progress returns the current progress.
	Progress() float32

	// CancelProgress returns the progress to settle on when a gesture
	// is cancelled.
	CancelProgress() float32

	// SwipeArea returns the rectangle, in local coordinates, in which
	// a swipe in the given direction can start. isDrag is true for
	// drags and touches, and false for touchpad scrolling.
	SwipeArea(dir NavigationDirections, isDrag bool) image.Rectangle

	// SwitchChild switches to the child at the given index,
	// animating over the given duration.
	SwitchChild(index int, duration time.Duration)
}
