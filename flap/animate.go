// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flap

import (
	"log/slog"
	"time"

	"cogentcore.org/adaptive/anim"
	"cogentcore.org/adaptive/swipe"
)

// ticker returns the ticker driving animations, which is nil
// while unrealized so that animations jump to their end.
func (f *Flap) ticker() *anim.Ticker {
	if !f.realized || f.host == nil {
		return nil
	}
	return f.host.Ticker()
}

func (f *Flap) setRevealProgress(progress float32) {
	f.revealProgress = progress
	f.updateChildVisibility()
	f.queueAllocate()
	f.notify(NotifyRevealProgress)
}

func (f *Flap) setFoldProgress(progress float32) {
	f.foldProgress = progress
	f.queueAllocate()
}

// animateReveal animates the reveal progress to the given value.
func (f *Flap) animateReveal(to float32, duration time.Duration) {
	f.revealAnim.Stop()
	f.revealAnim.From = f.revealProgress
	f.revealAnim.To = to
	f.revealAnim.Duration = duration
	f.revealAnim.Start(f.ticker())
}

// revealDone consumes the pending transition, if any,
// and ends the settle phase of a finished gesture.
func (f *Flap) revealDone() {
	if f.pending == PendingFold {
		f.pending = PendingNone
		f.animateFold()
	}
	f.queueAllocate()
	f.tracker.FinishSettle()
}

// animateFold animates the fold progress towards the folded state.
// The animation is skipped while the flap is hidden.
func (f *Flap) animateFold() {
	var to float32
	if f.folded {
		to = 1
	}
	duration := f.foldDuration
	if f.revealProgress <= 0 {
		duration = 0
	}
	f.foldAnim.Stop()
	f.foldAnim.From = f.foldProgress
	f.foldAnim.To = to
	f.foldAnim.Duration = duration
	f.foldAnim.Start(f.ticker())
}

// setFolded changes the folded state. An unlocked flap is hidden when
// folding, and the fold then waits for the reveal animation to finish
// so that the two never run at the same time. When no reveal animation
// is started, the fold runs immediately.
func (f *Flap) setFolded(folded bool) {
	if f.folded == folded {
		return
	}
	f.folded = folded
	slog.Debug("flap fold changed", "folded", folded)
	f.queueAllocate()

	if !f.locked && folded {
		f.pending = PendingFold
	} else {
		f.pending = PendingNone
		f.animateFold()
	}
	if !f.locked {
		f.setRevealFlap(!folded, f.foldDuration, true)
	}
	if f.pending == PendingFold && !f.revealAnim.IsRunning() {
		f.pending = PendingNone
		f.animateFold()
	}
	f.notify(NotifyFolded)
}

// setRevealFlap changes whether the flap is revealed, animating over
// the given duration unless a gesture is driving the reveal progress.
func (f *Flap) setRevealFlap(reveal bool, duration time.Duration, emitSwitched bool) {
	if f.revealFlap == reveal {
		return
	}
	f.revealFlap = reveal
	if !f.swipeActive {
		var to float32
		index := 0
		if reveal {
			to, index = 1, 1
		}
		f.animateReveal(to, duration)
		if emitSwitched {
			for _, fun := range f.childSwitched {
				fun(index, duration)
			}
		}
	}
	f.notify(NotifyRevealFlap)
}

// beginSwipe takes over the reveal progress, unless swiping
// away from the current end is disabled.
func (f *Flap) beginSwipe(dir swipe.NavigationDirections, direct bool) {
	if f.revealProgress <= 0 && !f.swipeToOpen {
		return
	}
	if f.revealProgress >= 1 && !f.swipeToClose {
		return
	}
	f.revealAnim.Stop()
	f.swipeActive = true
}

func (f *Flap) updateSwipe(progress float32) {
	if !f.swipeActive {
		return
	}
	f.setRevealProgress(progress)
}

func (f *Flap) endSwipe(duration time.Duration, to float32) {
	if !f.swipeActive {
		return
	}
	f.swipeActive = false
	if (to > 0) == f.revealFlap {
		f.animateReveal(to, duration)
	} else {
		f.setRevealFlap(to > 0, duration, false)
	}
}
