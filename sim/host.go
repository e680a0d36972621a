// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sim provides a headless host for a [flap.Flap]: a widget
// tree that dispatches input in a capture and a bubble phase, a frame
// clock driving animations, layout passes and recorded frames. Hosts
// are driven by scenarios loaded from YAML files.
package sim

import (
	"image"
	"log/slog"
	"slices"
	"strings"
	"time"

	"cogentcore.org/adaptive/anim"
	"cogentcore.org/adaptive/events"
	"cogentcore.org/adaptive/events/key"
	"cogentcore.org/adaptive/flap"
	"cogentcore.org/adaptive/math32"
)

// FrameInterval is the time between two frames of [Host.Run].
const FrameInterval = 16 * time.Millisecond

// Epoch is the start time of the clock of hosts made for scenarios.
var Epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// Host is a headless window showing a single [flap.Flap].
// It is not safe for concurrent use.
type Host struct {

	// Flap is the flap filling the window.
	Flap *flap.Flap

	// Root is the node of the flap, the root of the widget tree.
	Root *Node

	// Clicks counts the clicks of each button by name.
	Clicks map[string]int

	// Frames are the frames recorded so far.
	Frames []*Frame

	ticker *anim.Ticker
	epoch  time.Time
	now    time.Time
	size   image.Point

	// sizeDirty is set when the window has been resized.
	sizeDirty bool

	queue events.Queue

	// grabs are the widgets grabbing input, the last one active.
	grabs []any

	mouseTarget  *Node
	mouseStart   image.Point
	touchTargets map[int]*Node
	touchStarts  map[int]image.Point

	// pointer is the last pointer position, in window coordinates.
	pointer image.Point
}

// NewHost returns a new host of the given size for the given flap,
// realizing the flap on it and running a first layout pass.
func NewHost(f *flap.Flap, size image.Point, now time.Time) *Host {
	h := newHost(f, size, now)
	h.start()
	return h
}

// newHost returns a new host that has not realized its flap yet.
func newHost(f *flap.Flap, size image.Point, now time.Time) *Host {
	h := &Host{
		Flap:         f,
		Clicks:       map[string]int{},
		ticker:       anim.NewTicker(now),
		epoch:        now,
		now:          now,
		size:         size,
		sizeDirty:    true,
		touchTargets: map[int]*Node{},
		touchStarts:  map[int]image.Point{},
	}
	h.queue.Init()
	return h
}

// start builds the widget tree and runs the first layout pass,
// then realizes the flap. The first pass folds without animation.
func (h *Host) start() {
	h.buildTree()
	h.layout()
	h.Flap.Realize(h)
	h.layout()
}

// buildTree makes the widget tree of the flap and its children
// and attaches the event listeners.
func (h *Host) buildTree() {
	f := h.Flap
	h.Root = &Node{Name: "flap", Widget: f, rect: f.Allocation}
	for _, typ := range []events.Types{events.MouseDown, events.MouseDrag, events.MouseUp,
		events.TouchStart, events.TouchMove, events.TouchEnd, events.TouchCancel, events.Scroll, events.KeyDown} {
		h.Root.Listeners.On(events.PhaseCapture, typ, func(ev events.Event) {
			if f.CapturedEvent(ev) {
				ev.SetHandled()
			}
		})
		h.Root.Listeners.On(events.PhaseBubble, typ, func(ev events.Event) {
			if f.HandleEvent(ev) {
				ev.SetHandled()
			}
		})
	}
	for _, c := range flap.ChildrenValues() {
		w := f.Child(c)
		if w == nil {
			continue
		}
		n := h.Root.AddChild(strings.ToLower(c.String()), w, func() image.Rectangle {
			return f.ChildAllocation(c).Add(f.Allocation().Min)
		})
		n.visible = func() bool { return f.ChildVisible(c) }
		b, ok := w.(*Box)
		if !ok {
			continue
		}
		for _, bt := range b.Buttons {
			bn := n.AddChild(bt.Name, bt, func() image.Rectangle {
				return bt.Rect.Add(n.Rect().Min)
			})
			if bt.TitleBar {
				continue
			}
			click := func(ev events.Event) {
				h.Clicks[bt.Name]++
				ev.SetHandled()
			}
			bn.Listeners.On(events.PhaseBubble, events.MouseUp, click)
			bn.Listeners.On(events.PhaseBubble, events.TouchEnd, click)
		}
	}
}

// Ticker implements [flap.Host].
func (h *Host) Ticker() *anim.Ticker {
	return h.ticker
}

// GrabAdd implements [swipe.Grabber].
func (h *Host) GrabAdd(w any) {
	h.grabs = append(h.grabs, w)
}

// GrabRemove implements [swipe.Grabber].
func (h *Host) GrabRemove(w any) {
	for i := len(h.grabs) - 1; i >= 0; i-- {
		if h.grabs[i] == w {
			h.grabs = slices.Delete(h.grabs, i, i+1)
			return
		}
	}
}

// IsGrabbed returns whether any widget grabs input.
func (h *Host) IsGrabbed() bool {
	return len(h.grabs) > 0
}

// Now returns the current time of the host clock.
func (h *Host) Now() time.Time {
	return h.now
}

// Elapsed returns the time since the host was made.
func (h *Host) Elapsed() time.Duration {
	return h.now.Sub(h.epoch)
}

// Size returns the size of the window.
func (h *Host) Size() image.Point {
	return h.size
}

// Resize resizes the window, running a layout pass.
func (h *Host) Resize(size image.Point) {
	if size == h.size {
		return
	}
	h.size = size
	h.sizeDirty = true
	h.layout()
}

// layout allocates the flap the whole window if needed.
func (h *Host) layout() {
	if !h.sizeDirty && !h.Flap.LayoutQueued() {
		return
	}
	h.sizeDirty = false
	h.Flap.Allocate(image.Rectangle{Max: h.size})
}

// Tick advances the clock by d, steps the animations, runs a layout
// pass if needed and records a frame.
func (h *Host) Tick(d time.Duration) *Frame {
	h.now = h.now.Add(d)
	h.ticker.Tick(h.now)
	h.layout()
	fr := h.Frame()
	h.Frames = append(h.Frames, fr)
	return fr
}

// Run ticks frames every [FrameInterval] for the given duration.
func (h *Host) Run(d time.Duration) {
	for d > 0 {
		step := min(d, FrameInterval)
		h.Tick(step)
		d -= step
	}
}

// Settle ticks frames until no animation is running,
// for at most the given duration.
func (h *Host) Settle(limit time.Duration) {
	for t := time.Duration(0); h.ticker.Len() > 0 && t < limit; t += FrameInterval {
		h.Tick(FrameInterval)
	}
}

// Send sends an event to the host, stamping it with the current
// time, and processes all pending events.
func (h *Host) Send(ev events.Event) {
	if ts, ok := ev.(interface{ SetTime(time.Time) }); ok {
		ts.SetTime(h.now)
	}
	h.queue.Send(ev)
	h.Flush()
}

// Flush dispatches all pending events and runs a layout pass if needed.
func (h *Host) Flush() {
	h.queue.Drain(h.dispatch)
	h.layout()
}

// dispatch delivers the event along the path from the root to its
// target, first in the capture phase, then in the bubble phase,
// stopping once it is handled. While input is grabbed, only the
// grabbing widget receives events.
func (h *Host) dispatch(ev events.Event) {
	target := h.target(ev)
	ev.SetTarget(target)
	path := target.Path()
	if len(h.grabs) > 0 {
		if gn := h.nodeOf(h.grabs[len(h.grabs)-1]); gn != nil {
			path = []*Node{gn}
		}
	}
	slog.Debug("sim dispatch", "event", ev, "target", target.Name)
	for _, n := range path {
		ev.SetLocalOff(n.Rect().Min)
		n.Listeners.Call(events.PhaseCapture, ev)
		if ev.IsHandled() {
			return
		}
	}
	for _, n := range slices.Backward(path) {
		ev.SetLocalOff(n.Rect().Min)
		n.Listeners.Call(events.PhaseBubble, ev)
		if ev.IsHandled() {
			return
		}
	}
}

// target returns the target node of an event. Pointer sequences keep
// the target of their press.
func (h *Host) target(ev events.Event) *Node {
	var n *Node
	switch ev.Type() {
	case events.KeyDown, events.KeyUp:
		return h.Root
	case events.MouseDown:
		n = h.nodeAt(ev.WindowPos())
		h.mouseTarget = n
	case events.MouseDrag:
		n = h.mouseTarget
	case events.MouseUp:
		n = h.mouseTarget
		h.mouseTarget = nil
	case events.TouchStart:
		n = h.nodeAt(ev.WindowPos())
		h.touchTargets[ev.Sequence()] = n
	case events.TouchMove:
		n = h.touchTargets[ev.Sequence()]
	case events.TouchEnd, events.TouchCancel:
		n = h.touchTargets[ev.Sequence()]
		delete(h.touchTargets, ev.Sequence())
		delete(h.touchStarts, ev.Sequence())
	}
	if n == nil {
		n = h.nodeAt(ev.WindowPos())
	}
	return n
}

// nodeAt returns the innermost node at the given point,
// or the root outside of it.
func (h *Host) nodeAt(p image.Point) *Node {
	if n := h.Root.NodeAt(p); n != nil {
		return n
	}
	return h.Root
}

// nodeOf returns the node of the given widget, or nil.
func (h *Host) nodeOf(w any) *Node {
	var find func(n *Node) *Node
	find = func(n *Node) *Node {
		if n.Widget == w {
			return n
		}
		for _, c := range n.children {
			if f := find(c); f != nil {
				return f
			}
		}
		return nil
	}
	return find(h.Root)
}

// Touch sends a touch event of the given type for the given sequence.
func (h *Host) Touch(typ events.Types, seq int, p image.Point) {
	if typ == events.TouchStart {
		h.touchStarts[seq] = p
	}
	h.pointer = p
	h.Send(events.NewTouch(typ, seq, p, h.touchStarts[seq]))
}

// MouseDown presses the primary mouse button.
func (h *Host) MouseDown(p image.Point) {
	h.mouseStart = p
	h.pointer = p
	h.Send(events.NewMouse(events.MouseDown, events.Left, p, 0))
}

// MouseDrag moves the mouse with the primary button pressed.
func (h *Host) MouseDrag(p image.Point) {
	prev := h.pointer
	h.pointer = p
	h.Send(events.NewMouseDrag(events.Left, p, prev, h.mouseStart, 0))
}

// MouseUp releases the primary mouse button.
func (h *Host) MouseUp(p image.Point) {
	h.pointer = p
	h.Send(events.NewMouse(events.MouseUp, events.Left, p, 0))
}

// Click presses and releases the primary mouse button.
func (h *Host) Click(p image.Point) {
	h.MouseDown(p)
	h.MouseUp(p)
}

// Scroll scrolls by the given delta at the last pointer position.
func (h *Host) Scroll(delta math32.Vector2, source events.ScrollSources) {
	h.Send(events.NewScroll(h.pointer, delta, source, 0))
}

// ScrollStop ends a touchpad scroll sequence.
func (h *Host) ScrollStop() {
	h.Send(events.NewScrollStop(h.pointer, events.ScrollTouchpad))
}

// Key presses the key with the given code.
func (h *Host) Key(code key.Codes) {
	h.Send(events.NewKey(events.KeyDown, 0, code, 0))
}

// MovePointer moves the pointer without pressing any button.
func (h *Host) MovePointer(p image.Point) {
	h.pointer = p
}
