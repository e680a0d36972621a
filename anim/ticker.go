// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"slices"
	"time"
)

// Ticker drives running animations from the frame clock of the host.
// The host calls [Ticker.Tick] once per frame, usually at the refresh
// rate of the monitor. It is not safe for concurrent use; all calls
// must come from the goroutine that dispatches events and frames.
type Ticker struct {

	// Enabled is whether animations run. When false, every animation
	// jumps to its final value as soon as it is started.
	Enabled bool

	// now is the time of the last tick.
	now time.Time

	// anims are the running animations.
	anims []*Animation
}

// NewTicker returns a new enabled ticker whose clock starts at the given time.
func NewTicker(now time.Time) *Ticker {
	return &Ticker{Enabled: true, now: now}
}

// Now returns the time of the last tick.
func (t *Ticker) Now() time.Time {
	return t.now
}

// Len returns the number of running animations.
func (t *Ticker) Len() int {
	return len(t.anims)
}

// Tick advances the clock to the given time and steps all running
// animations. Animations started or stopped by callbacks during the
// tick take effect immediately: stopped ones are not stepped again and
// started ones are first stepped on the next tick.
func (t *Ticker) Tick(now time.Time) {
	t.now = now
	for _, a := range slices.Clone(t.anims) {
		if a.ticker != t {
			continue
		}
		a.step(now)
	}
}

// StopAll stops all running animations without calling their callbacks.
func (t *Ticker) StopAll() {
	for _, a := range t.anims {
		a.ticker = nil
	}
	t.anims = nil
}

func (t *Ticker) add(a *Animation) {
	t.anims = append(t.anims, a)
}

func (t *Ticker) remove(a *Animation) {
	t.anims = slices.DeleteFunc(t.anims, func(o *Animation) bool { return o == a })
}
