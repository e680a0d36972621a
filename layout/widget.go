// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"fmt"
	"image"
)

// Widget is the measure and allocate contract between a widget and
// the host layout pass. Sizes are GTK style minimum and natural sizes
// in device-independent units.
type Widget interface {

	// Measure returns the minimum and natural size along the given
	// orientation, given the size forSize along the other orientation
	// (-1 if unknown).
	Measure(o Orientations, forSize int) (min, nat int)

	// Expand returns whether the widget wants to take extra space
	// along the given orientation.
	Expand(o Orientations) bool

	// Allocate assigns the final rectangle of the widget, in the
	// coordinates of its parent.
	Allocate(r image.Rectangle)
}

// RequestedSize is a minimum and natural size pair.
type RequestedSize struct {
	Min int
	Nat int
}

func (rs RequestedSize) String() string {
	return fmt.Sprintf("(%d, %d)", rs.Min, rs.Nat)
}

// Measure returns the requested size of the given widget, which
// is zero for a nil widget.
func Measure(w Widget, o Orientations, forSize int) RequestedSize {
	if w == nil {
		return RequestedSize{}
	}
	mn, nat := w.Measure(o, forSize)
	return RequestedSize{Min: mn, Nat: nat}
}

// Expands returns whether the given widget is non-nil
// and expands along the given orientation.
func Expands(w Widget, o Orientations) bool {
	return w != nil && w.Expand(o)
}
