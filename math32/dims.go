// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "image"

// Dims is a list of vector dimension (component) names
type Dims int32 //enums:enum

const (
	X Dims = iota
	Y
)

// OtherDim returns the other dimension for 2D X,Y
func OtherDim(d Dims) Dims {
	switch d {
	case X:
		return Y
	default:
		return X
	}
}

// PointDim returns the value of the given point along dimension d.
func PointDim(pt image.Point, d Dims) int {
	if d == X {
		return pt.X
	}
	return pt.Y
}

// SetPointDim sets the value of the given point along dimension d.
func SetPointDim(pt *image.Point, d Dims, v int) {
	if d == X {
		pt.X = v
	} else {
		pt.Y = v
	}
}

// RectSize returns the size of r along dimension d.
func RectSize(r image.Rectangle, d Dims) int {
	if d == X {
		return r.Dx()
	}
	return r.Dy()
}

// RectPos returns the minimum coordinate of r along dimension d.
func RectPos(r image.Rectangle, d Dims) int {
	return PointDim(r.Min, d)
}

// RectFromDims returns the rectangle with the given position and size
// along dimension d and the given position and size along the other one.
func RectFromDims(d Dims, pos, size, otherPos, otherSize int) image.Rectangle {
	if d == X {
		return image.Rect(pos, otherPos, pos+size, otherPos+otherSize)
	}
	return image.Rect(otherPos, pos, otherPos+otherSize, pos+size)
}
