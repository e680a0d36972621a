// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package swipe

import (
	"time"

	"cogentcore.org/adaptive/math32"
)

const (
	// DragThreshold is the distance a drag must move before
	// a pending gesture is accepted.
	DragThreshold = 16

	// VelocityThreshold is the velocity, in units per millisecond,
	// a gesture must exceed to settle on the snap point behind it.
	VelocityThreshold = 0.4

	// AnimationBaseVelocity is the settle velocity, in progress units
	// per millisecond, used when the gesture velocity points away
	// from the target.
	AnimationBaseVelocity = 0.002

	// DurationMultiplier scales the settle duration.
	DurationMultiplier = 3

	// MinAnimationDuration and MaxAnimationDuration bound the
	// settle duration of a gesture that has not reached its target.
	MinAnimationDuration = 100 * time.Millisecond
	MaxAnimationDuration = 400 * time.Millisecond

	// TouchpadBaseDistanceH and TouchpadBaseDistanceV are the swipe
	// distances used for touchpad scrolling, which is independent
	// of the size of the widget.
	TouchpadBaseDistanceH = 400
	TouchpadBaseDistanceV = 300

	// ScrollMultiplier scales touchpad scroll deltas.
	ScrollMultiplier = 10

	// SwipeBorder is the minimum width of an edge swipe area.
	SwipeBorder = 16
)

// snapRange returns the first and last snap points.
// An empty list is treated as a single point at 0.
func snapRange(points []float32) (first, last float32) {
	if len(points) == 0 {
		return 0, 0
	}
	return points[0], points[len(points)-1]
}

// closestSnapPoints returns the smallest snap point at or above
// progress and the largest snap point at or below it. When progress
// is outside the range of points, the missing bound is the nearest
// end of the range.
func closestSnapPoints(points []float32, progress float32) (upper, lower float32) {
	lower, upper = snapRange(points)
	for _, p := range points {
		if p >= progress {
			upper = p
			break
		}
	}
	for i := len(points) - 1; i >= 0; i-- {
		if points[i] <= progress {
			lower = points[i]
			break
		}
	}
	return
}

// endProgress returns the snap point a gesture settles on, given the
// progress and velocity at release, the progress at which it was
// accepted, and the swipe distance. A gesture past the middle of two
// snap points settles forward unless it moves back fast enough, and
// never settles beyond the point it started from.
func endProgress(points []float32, progress, initial, velocity, distance float32) float32 {
	upper, lower := closestSnapPoints(points, progress)
	middle := (upper + lower) / 2
	if progress > middle {
		if velocity*distance > -VelocityThreshold || initial > upper {
			return upper
		}
		return lower
	}
	if velocity*distance < VelocityThreshold || initial < lower {
		return lower
	}
	return upper
}

// settleDuration returns how long the consumer takes to animate from
// progress to the target end, continuing with the gesture velocity
// when it points towards the target.
func settleDuration(progress, end, velocity float32) time.Duration {
	if progress == end {
		return 0
	}
	v := float32(AnimationBaseVelocity)
	if (end-progress)*velocity > 0 {
		v = velocity
	}
	ms := math32.Abs((progress - end) / v * DurationMultiplier)
	d := time.Duration(ms * float32(time.Millisecond))
	return math32.Clamp(d, MinAnimationDuration, MaxAnimationDuration)
}
