// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"image"
	"testing"

	"cogentcore.org/adaptive/math32"
	"github.com/stretchr/testify/assert"
)

type box struct {
	min, nat int
	expand   bool
	alloc    image.Rectangle
}

func (b *box) Measure(o Orientations, forSize int) (int, int) { return b.min, b.nat }
func (b *box) Expand(o Orientations) bool                      { return b.expand }
func (b *box) Allocate(r image.Rectangle)                      { b.alloc = r }

func TestOrientations(t *testing.T) {
	assert.Equal(t, math32.X, Horizontal.Dim())
	assert.Equal(t, math32.Y, Vertical.Dim())
	assert.Equal(t, Vertical, Horizontal.Other())
	assert.Equal(t, "Vertical", Vertical.String())
	var o Orientations
	assert.NoError(t, o.SetString("vertical"))
	assert.Equal(t, Vertical, o)
	assert.Error(t, o.SetString("diagonal"))
}

func TestDirectionForLocale(t *testing.T) {
	assert.Equal(t, LTR, DirectionForLocale("en-US"))
	assert.Equal(t, RTL, DirectionForLocale("ar-EG"))
	assert.Equal(t, RTL, DirectionForLocale("he"))
	assert.Equal(t, RTL, DirectionForLocale("fa-IR"))
	assert.Equal(t, LTR, DirectionForLocale("ja"))
	assert.Equal(t, LTR, DirectionForLocale("not a locale!"))
	assert.True(t, DefaultTextDirection().IsValid())
}

func TestMeasure(t *testing.T) {
	assert.Equal(t, RequestedSize{}, Measure(nil, Horizontal, -1))
	b := &box{min: 10, nat: 20, expand: true}
	assert.Equal(t, RequestedSize{10, 20}, Measure(b, Horizontal, -1))
	assert.True(t, Expands(b, Horizontal))
	assert.False(t, Expands(nil, Horizontal))
	assert.Equal(t, "(10, 20)", RequestedSize{10, 20}.String())
}

func TestDistributeNaturalAllocation(t *testing.T) {
	sizes := []RequestedSize{{Min: 10, Nat: 20}, {Min: 10, Nat: 40}}
	left := DistributeNaturalAllocation(20, sizes)
	assert.Equal(t, 0, left)
	// smaller gap is served first, then the rest goes to the other
	assert.Equal(t, 20, sizes[0].Min)
	assert.Equal(t, 20, sizes[1].Min)

	sizes = []RequestedSize{{Min: 10, Nat: 20}, {Min: 10, Nat: 40}}
	left = DistributeNaturalAllocation(100, sizes)
	assert.Equal(t, 60, left)
	assert.Equal(t, 20, sizes[0].Min)
	assert.Equal(t, 40, sizes[1].Min)

	sizes = []RequestedSize{{Min: 0, Nat: 100}, {Min: 0, Nat: 100}}
	left = DistributeNaturalAllocation(51, sizes)
	assert.Equal(t, 0, left)
	assert.Equal(t, 51, sizes[0].Min+sizes[1].Min)
	assert.LessOrEqual(t, sizes[0].Min-sizes[1].Min, 1)

	assert.Equal(t, 0, DistributeNaturalAllocation(-5, sizes))
	assert.Equal(t, 7, DistributeNaturalAllocation(7, nil))
}
