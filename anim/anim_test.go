// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var t0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestEasing(t *testing.T) {
	assert.Equal(t, float32(0), EaseOutCubic(0))
	assert.Equal(t, float32(1), EaseOutCubic(1))
	assert.InDelta(t, 0.875, EaseOutCubic(0.5), 1e-6)
	assert.Equal(t, float32(0.25), Linear(0.25))
}

func TestAnimationRuns(t *testing.T) {
	tk := NewTicker(t0)
	var values []float32
	done := 0
	a := New(0, 1, 100*time.Millisecond, Linear, func(v float32) { values = append(values, v) }, func() { done++ })
	a.Start(tk)
	assert.True(t, a.IsRunning())
	assert.Equal(t, 1, tk.Len())

	tk.Tick(t0.Add(50 * time.Millisecond))
	assert.InDelta(t, 0.5, a.Value(), 1e-6)
	assert.Equal(t, 0, done)

	tk.Tick(t0.Add(120 * time.Millisecond))
	assert.Equal(t, float32(1), a.Value())
	assert.Equal(t, 1, done)
	assert.False(t, a.IsRunning())
	assert.Equal(t, 0, tk.Len())
	assert.Equal(t, []float32{0.5, 1}, values)

	tk.Tick(t0.Add(200 * time.Millisecond))
	assert.Equal(t, 1, done)
}

func TestAnimationStopSuppressesCallbacks(t *testing.T) {
	tk := NewTicker(t0)
	calls := 0
	a := New(0, 1, 100*time.Millisecond, EaseOutCubic, func(v float32) { calls++ }, func() { calls++ })
	a.Start(tk)
	tk.Tick(t0.Add(10 * time.Millisecond))
	assert.Equal(t, 1, calls)
	a.Stop()
	a.Stop()
	tk.Tick(t0.Add(500 * time.Millisecond))
	assert.Equal(t, 1, calls)
	assert.False(t, a.IsRunning())
}

func TestAnimationImmediate(t *testing.T) {
	tk := NewTicker(t0)
	tk.Enabled = false
	var got float32
	done := false
	a := New(0, 1, time.Second, nil, func(v float32) { got = v }, func() { done = true })
	a.Start(tk)
	assert.True(t, done)
	assert.Equal(t, float32(1), got)
	assert.False(t, a.IsRunning())

	done = false
	a = New(1, 0, 0, nil, func(v float32) { got = v }, func() { done = true })
	a.Start(NewTicker(t0))
	assert.True(t, done)
	assert.Equal(t, float32(0), got)

	done = false
	a = New(0, 1, time.Second, nil, nil, func() { done = true })
	a.Start(nil)
	assert.True(t, done)
}

func TestAnimationChainFromDone(t *testing.T) {
	tk := NewTicker(t0)
	var second *Animation
	secondDone := false
	first := New(0, 1, 10*time.Millisecond, nil, nil, func() {
		second = New(1, 0, 10*time.Millisecond, nil, nil, func() { secondDone = true })
		second.Start(tk)
	})
	first.Start(tk)
	tk.Tick(t0.Add(20 * time.Millisecond))
	assert.NotNil(t, second)
	assert.True(t, second.IsRunning())
	assert.False(t, secondDone)
	tk.Tick(t0.Add(40 * time.Millisecond))
	assert.True(t, secondDone)
}

func TestAnimationStopOtherDuringTick(t *testing.T) {
	tk := NewTicker(t0)
	bCalls := 0
	b := New(0, 1, time.Second, nil, func(v float32) { bCalls++ }, nil)
	a := New(0, 1, time.Second, nil, func(v float32) { b.Stop() }, nil)
	a.Start(tk)
	b.Start(tk)
	tk.Tick(t0.Add(time.Millisecond))
	assert.Equal(t, 0, bCalls)
	assert.Equal(t, 1, tk.Len())
}

func TestSkipAndStopAll(t *testing.T) {
	tk := NewTicker(t0)
	done := 0
	a := New(0, 1, time.Second, nil, nil, func() { done++ })
	b := New(0, 1, time.Second, nil, nil, func() { done++ })
	a.Start(tk)
	b.Start(tk)
	a.Skip()
	assert.Equal(t, 1, done)
	assert.Equal(t, float32(1), a.Value())
	tk.StopAll()
	assert.False(t, b.IsRunning())
	tk.Tick(t0.Add(2 * time.Second))
	assert.Equal(t, 1, done)
}
