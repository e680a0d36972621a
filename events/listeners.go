// Copyright (c) 2023, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

// Listeners registers lists of event listener functions
// to receive different event types.
// Listeners are closure methods with all context captured,
// registered on specific objects.
type Listeners map[Types][]func(ev Event)

// Init ensures that map is constructed
func (ls *Listeners) Init() {
	if *ls != nil {
		return
	}
	*ls = make(map[Types][]func(Event))
}

// Add adds a function for given type
func (ls *Listeners) Add(typ Types, fun func(Event)) {
	ls.Init()
	(*ls)[typ] = append((*ls)[typ], fun)
}

// HasType returns whether there are any listeners for the given type.
func (ls *Listeners) HasType(typ Types) bool {
	return len((*ls)[typ]) > 0
}

// Call calls all functions for given event.
// It goes in _reverse_ order to the last functions added are the first called
// and it stops when the event is marked as Handled.  This allows for a natural
// and optional override behavior, as compared to requiring more complex
// priority-based mechanisms.
func (ls *Listeners) Call(ev Event) {
	if ev.IsHandled() {
		return
	}
	ets := (*ls)[ev.Type()]
	for i := len(ets) - 1; i >= 0; i-- {
		ets[i](ev)
		if ev.IsHandled() {
			break
		}
	}
}

// Phases are the two passes of event dispatch through the widget tree.
type Phases int32 //enums:enum -trim-prefix Phase

const (
	// PhaseCapture runs from the root down to the target widget,
	// before the target sees the event. Widgets that need to intercept
	// input from interactive descendants listen in this phase.
	PhaseCapture Phases = iota

	// PhaseBubble runs from the target widget up to the root.
	PhaseBubble
)

// PhaseListeners holds separate [Listeners] for each dispatch [Phases].
type PhaseListeners [PhasesN]Listeners

// On adds a listener function for the given phase and event type.
func (pl *PhaseListeners) On(phase Phases, typ Types, fun func(Event)) {
	pl[phase].Add(typ, fun)
}

// Call calls the listeners of the given phase for the event.
func (pl *PhaseListeners) Call(phase Phases, ev Event) {
	pl[phase].Call(ev)
}
