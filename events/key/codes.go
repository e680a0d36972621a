// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package key defines key codes and modifiers for key events.
package key

import "strings"

// Codes are the physical key codes that adaptive widgets react to.
// Other keys are reported as [CodeUnknown] with their rune.
type Codes int32 //enums:enum -trim-prefix Code

const (
	CodeUnknown Codes = iota

	CodeEscape

	CodeReturnEnter

	CodeTab

	CodeSpacebar

	CodeLeftArrow

	CodeRightArrow

	CodeUpArrow

	CodeDownArrow
)

// Modifiers is a bit set of the modifier keys held down during an event.
type Modifiers int64

const (
	// Control is the "Control" (Ctrl) key.
	Control Modifiers = 1 << iota

	// Meta is the system meta key (the "Command" key on Apple keyboards).
	Meta

	// Alt is the "Alt" ("Option" on Apple keyboards) key.
	Alt

	// Shift is the "Shift" key.
	Shift
)

var modifierNames = []string{"Control", "Meta", "Alt", "Shift"}

// HasFlag returns whether the given modifier is set.
func (m Modifiers) HasFlag(f Modifiers) bool {
	return m&f != 0
}

// ModifiersString returns the string representation of the modifiers
// using plus signs as separators, as in "Control+Shift".
func (m Modifiers) ModifiersString() string {
	var names []string
	for i, nm := range modifierNames {
		if m.HasFlag(1 << i) {
			names = append(names, nm)
		}
	}
	return strings.Join(names, "+")
}
