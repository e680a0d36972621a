// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package anim provides time based value animations that are
// stepped by a [Ticker] on each frame of the host.
package anim

import (
	"time"

	"cogentcore.org/adaptive/math32"
)

// Animation interpolates a value from [Animation.From] to [Animation.To]
// over [Animation.Duration]. It calls [Animation.OnValue] on every frame
// with the current value and [Animation.OnDone] once the final value
// has been reached. After [Animation.Stop] neither callback is called
// again until the animation is restarted.
type Animation struct {

	// From is the starting value.
	From float32

	// To is the final value.
	To float32

	// Duration is the total length of the animation.
	Duration time.Duration

	// Easing is the easing function, [Linear] if nil.
	Easing Easing

	// OnValue is called with the current value on each frame.
	OnValue func(v float32)

	// OnDone is called after the final value has been set.
	OnDone func()

	// value is the last computed value.
	value float32

	// start is the ticker time at which the animation started.
	start time.Time

	// ticker is the ticker driving the animation while it runs.
	ticker *Ticker
}

// New returns a new animation with the given parameters.
// It does not start until [Animation.Start] is called.
func New(from, to float32, duration time.Duration, easing Easing, onValue func(v float32), onDone func()) *Animation {
	return &Animation{From: from, To: to, Duration: duration, Easing: easing, OnValue: onValue, OnDone: onDone, value: from}
}

// Start starts the animation on the given ticker, restarting it if it
// is already running. The animation jumps straight to its final value,
// calling OnValue and then OnDone synchronously, if the ticker is nil,
// animations are disabled on it, or the duration is not positive.
func (a *Animation) Start(t *Ticker) {
	a.Stop()
	a.value = a.From
	if t == nil || !t.Enabled || a.Duration <= 0 {
		a.finish()
		return
	}
	a.start = t.Now()
	a.ticker = t
	t.add(a)
}

// Stop stops the animation at its current value.
// No further callbacks are made.
func (a *Animation) Stop() {
	if a.ticker == nil {
		return
	}
	a.ticker.remove(a)
	a.ticker = nil
}

// Skip stops the animation and jumps to its final value,
// calling OnValue and OnDone.
func (a *Animation) Skip() {
	if a.ticker == nil {
		return
	}
	a.Stop()
	a.finish()
}

// IsRunning returns whether the animation is currently attached to a ticker.
func (a *Animation) IsRunning() bool {
	return a.ticker != nil
}

// Value returns the current value of the animation.
func (a *Animation) Value() float32 {
	return a.value
}

// step advances the animation to the given time.
func (a *Animation) step(now time.Time) {
	t := float32(now.Sub(a.start)) / float32(a.Duration)
	if t >= 1 {
		a.Stop()
		a.finish()
		return
	}
	if t < 0 {
		t = 0
	}
	ease := a.Easing
	if ease == nil {
		ease = Linear
	}
	a.value = math32.Lerp(a.From, a.To, ease(t))
	if a.OnValue != nil {
		a.OnValue(a.value)
	}
}

func (a *Animation) finish() {
	a.value = a.To
	if a.OnValue != nil {
		a.OnValue(a.value)
	}
	if a.OnDone != nil {
		a.OnDone()
	}
}
