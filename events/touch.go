// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"
	"image"
)

// Touch is a touch event for one touch point (sequence).
// Multi-touch gestures are made of several sequences
// with distinct [Base.Seq] values.
type Touch struct {
	Base
}

// NewTouch returns a new touch event of the given type
// for the given sequence.
func NewTouch(typ Types, seq int, where, start image.Point) *Touch {
	ev := &Touch{}
	ev.Typ = typ
	ev.Seq = seq
	ev.Where = where
	ev.Start = start
	ev.Init()
	return ev
}

func (ev *Touch) HasPos() bool {
	return true
}

func (ev *Touch) String() string {
	return fmt.Sprintf("%v{Seq: %v, Pos: %v, Start: %v, Time: %v}", ev.Type(), ev.Seq, ev.Where, ev.Start, ev.Time().Format("04:05.000"))
}
