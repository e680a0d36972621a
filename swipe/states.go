// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package swipe

// States are the states of the gesture state machine of a [Tracker].
type States int32 //enums:enum -trim-prefix State

const (
	// StateNone is the idle state, waiting for a gesture to start.
	StateNone States = iota

	// StatePending is a started gesture that has not moved far
	// enough to be accepted yet. Begin has been emitted.
	StatePending

	// StateScrolling is an accepted gesture that updates progress
	// on every input sample while holding the input grab.
	StateScrolling

	// StateFinishing is an ended gesture whose consumer is settling
	// on the target progress.
	StateFinishing

	// StateRejected is a gesture that started outside the swipe area,
	// waiting to be acknowledged before a new one can start.
	StateRejected
)
