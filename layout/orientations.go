// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package layout defines the measure and allocate contract between
// widgets and the host layout pass, along with the orientation and
// text direction types that adaptive widgets lay out against.
package layout

import "cogentcore.org/adaptive/math32"

//go:generate core generate

// Orientations are the two axes along which a widget can lay out
// its children or track gestures.
type Orientations int32 //enums:enum

const (
	// Horizontal lays out along the X axis.
	Horizontal Orientations = iota

	// Vertical lays out along the Y axis.
	Vertical
)

// Dim returns the [math32.Dims] for the orientation.
func (o Orientations) Dim() math32.Dims {
	if o == Vertical {
		return math32.Y
	}
	return math32.X
}

// Other returns the perpendicular orientation.
func (o Orientations) Other() Orientations {
	if o == Vertical {
		return Horizontal
	}
	return Vertical
}
