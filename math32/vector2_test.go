// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector2(t *testing.T) {
	assert.Equal(t, Vector2{5, 10}, Vec2(5, 10))
	assert.Equal(t, Vector2{15, -5}, Vector2FromPoint(image.Pt(15, -5)))

	v := Vector2{}
	v.Set(-1, 7)
	assert.Equal(t, Vector2{-1, 7}, v)

	v.SetDim(X, 3)
	assert.Equal(t, float32(3), v.Dim(X))
	assert.Equal(t, float32(7), v.Dim(Y))

	assert.Equal(t, Vector2{4, 6}, Vec2(1, 2).Add(Vec2(3, 4)))
	assert.Equal(t, Vector2{-2, -2}, Vec2(1, 2).Sub(Vec2(3, 4)))
	assert.Equal(t, float32(5), Vec2(3, 4).Length())
	assert.Equal(t, image.Pt(2, -3), Vec2(1.5, -2.5).ToPoint())
}

func TestLerp(t *testing.T) {
	assert.Equal(t, float32(2), Lerp[float32](2, 10, 0))
	assert.Equal(t, float32(10), Lerp[float32](2, 10, 1))
	assert.Equal(t, float32(6), Lerp[float32](2, 10, 0.5))
	assert.Equal(t, 0.25, Lerp(0.0, 1.0, 0.25))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 3, Clamp(5, 1, 3))
	assert.Equal(t, float32(-1), Clamp[float32](-4, -1, 1))
	assert.Equal(t, float32(0.5), Clamp[float32](0.5, 0, 1))
}

func TestRectDims(t *testing.T) {
	r := image.Rect(10, 20, 110, 70)
	assert.Equal(t, 100, RectSize(r, X))
	assert.Equal(t, 50, RectSize(r, Y))
	assert.Equal(t, 10, RectPos(r, X))
	assert.Equal(t, 20, RectPos(r, Y))
	assert.Equal(t, r, RectFromDims(X, 10, 100, 20, 50))
	assert.Equal(t, r, RectFromDims(Y, 20, 50, 10, 100))
	assert.Equal(t, Y, OtherDim(X))
	assert.Equal(t, X, OtherDim(Y))
}
