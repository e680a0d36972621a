// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"

	"cogentcore.org/adaptive/events/key"
)

// Key is a low-level immediately generated key event, tracking press
// and release of keys.
type Key struct {
	Base

	// Rune is the meaning of the key event as determined by the
	// operating system. The mapping is determined by system-dependent
	// current layout, modifiers, lock-states, etc.
	Rune rune

	// Code is the identity of the physical key relative to a notional
	// "standard" keyboard.
	Code key.Codes
}

func NewKey(typ Types, rn rune, code key.Codes, mods key.Modifiers) *Key {
	ev := &Key{}
	ev.Typ = typ
	ev.Rune = rn
	ev.Code = code
	ev.Mods = mods
	ev.Init()
	return ev
}

func (ev *Key) String() string {
	if ev.Rune != 0 {
		return fmt.Sprintf("%v{Rune: %q, Code: %v, Mods: %v, Time: %v}", ev.Type(), ev.Rune, ev.Code, ev.Mods.ModifiersString(), ev.Time().Format("04:05.000"))
	}
	return fmt.Sprintf("%v{Code: %v, Mods: %v, Time: %v}", ev.Type(), ev.Code, ev.Mods.ModifiersString(), ev.Time().Format("04:05.000"))
}
