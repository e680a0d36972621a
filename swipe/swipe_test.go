// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package swipe

import (
	"fmt"
	"image"
	"testing"
	"time"

	"cogentcore.org/adaptive/events"
	"cogentcore.org/adaptive/layout"
	"cogentcore.org/adaptive/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

type testSwipeable struct {
	distance float32
	points   []float32
	progress float32
	area     image.Rectangle
	tracker  *Tracker
	switched []int
}

func (s *testSwipeable) Distance() float32       { return s.distance }
func (s *testSwipeable) SnapPoints() []float32   { return s.points }
func (s *testSwipeable) Progress() float32       { return s.progress }
func (s *testSwipeable) CancelProgress() float32 { return math32.Round(s.progress) }
func (s *testSwipeable) SwipeArea(dir NavigationDirections, isDrag bool) image.Rectangle {
	return s.area
}
func (s *testSwipeable) SwitchChild(index int, duration time.Duration) {
	s.switched = append(s.switched, index)
}
func (s *testSwipeable) SwipeTracker() *Tracker { return s.tracker }

// recorder records the signals of a tracker as strings.
type recorder struct {
	signals []string
	ends    int
	endTo   float32
	endDur  time.Duration
}

func (r *recorder) connect(tr *Tracker) {
	tr.OnBegin(func(dir NavigationDirections, direct bool) {
		r.signals = append(r.signals, fmt.Sprintf("begin %v %v", dir, direct))
	})
	tr.OnUpdate(func(progress float32) {
		r.signals = append(r.signals, "update")
	})
	tr.OnEnd(func(duration time.Duration, to float32) {
		r.signals = append(r.signals, "end")
		r.ends++
		r.endTo = to
		r.endDur = duration
	})
}

func newTestTracker() (*testSwipeable, *Tracker, *recorder) {
	s := &testSwipeable{distance: 200, points: []float32{0, 1}, area: image.Rect(0, 0, 400, 300)}
	tr := NewTracker(s)
	s.tracker = tr
	r := &recorder{}
	r.connect(tr)
	return s, tr, r
}

func touch(typ events.Types, x, y int, ms int) *events.Touch {
	ev := events.NewTouch(typ, 1, image.Pt(x, y), image.Point{})
	ev.SetTime(t0.Add(time.Duration(ms) * time.Millisecond))
	return ev
}

func scroll(dx, dy float32, ms int) *events.MouseScroll {
	ev := events.NewScroll(image.Pt(100, 100), math32.Vec2(dx, dy), events.ScrollTouchpad, 0)
	ev.SetTime(t0.Add(time.Duration(ms) * time.Millisecond))
	return ev
}

func scrollStop(ms int) *events.MouseScroll {
	ev := events.NewScrollStop(image.Pt(100, 100), events.ScrollTouchpad)
	ev.SetTime(t0.Add(time.Duration(ms) * time.Millisecond))
	return ev
}

func TestClosestSnapPoints(t *testing.T) {
	points := []float32{0, 1, 2}
	upper, lower := closestSnapPoints(points, 0.3)
	assert.Equal(t, float32(1), upper)
	assert.Equal(t, float32(0), lower)
	upper, lower = closestSnapPoints(points, 1)
	assert.Equal(t, float32(1), upper)
	assert.Equal(t, float32(1), lower)
	upper, lower = closestSnapPoints(points, 1.5)
	assert.Equal(t, float32(2), upper)
	assert.Equal(t, float32(1), lower)
}

func TestEndProgressIsSnapPoint(t *testing.T) {
	sets := [][]float32{{0}, {0, 1}, {-1, 0, 1}, {0, 0.5, 2, 3}}
	velocities := []float32{-0.01, -0.002, 0, 0.0005, 0.002, 0.01}
	for _, points := range sets {
		first, last := snapRange(points)
		for p := first; p <= last; p += 0.05 {
			for _, v := range velocities {
				for _, initial := range points {
					end := endProgress(points, p, initial, v, 200)
					assert.Contains(t, points, end, "progress %v velocity %v", p, v)
				}
			}
		}
	}
}

func TestEndProgressRules(t *testing.T) {
	points := []float32{0, 1}
	// slow movement past the middle settles forward
	assert.Equal(t, float32(1), endProgress(points, 0.6, 0, 0.0005, 200))
	// fast movement back snaps back even past the middle
	assert.Equal(t, float32(0), endProgress(points, 0.6, 0, -0.01, 200))
	// a fast flick forward before the middle goes forward
	assert.Equal(t, float32(1), endProgress(points, 0.3, 0, 0.01, 200))
	// slow movement before the middle settles back
	assert.Equal(t, float32(0), endProgress(points, 0.3, 0, 0.001, 200))
	// a gesture that started above the upper point settles on it
	assert.Equal(t, float32(1.5), endProgress([]float32{0, 1, 1.5, 2}, 1.3, 2, -0.01, 200))
}

func TestSettleDuration(t *testing.T) {
	assert.Equal(t, time.Duration(0), settleDuration(1, 1, 0.01))
	for _, tc := range []struct{ progress, end, velocity float32 }{
		{0.6, 1, 0.0005}, {0.99, 1, 0}, {0.1, 0, 10}, {0.5, 0, -0.5}, {0, 1, -1},
	} {
		d := settleDuration(tc.progress, tc.end, tc.velocity)
		assert.GreaterOrEqual(t, d, MinAnimationDuration)
		assert.LessOrEqual(t, d, MaxAnimationDuration)
	}
	// towards the target at the base velocity: 0.1 / 0.002 * 3 = 150ms
	assert.InDelta(t, float64(150*time.Millisecond), float64(settleDuration(0.9, 1, -1)), float64(time.Millisecond))
}

func TestDragOffsetSign(t *testing.T) {
	_, tr, _ := newTestTracker()
	assert.InDelta(t, -0.5, tr.dragOffset(image.Pt(100, 0), 200), 1e-6)
	tr.SetReversed(true)
	assert.InDelta(t, 0.5, tr.dragOffset(image.Pt(100, 0), 200), 1e-6)
	tr.SetOrientation(layout.Vertical)
	assert.InDelta(t, -0.25, tr.dragOffset(image.Pt(100, -50), 200), 1e-6)
	assert.Equal(t, float32(0), tr.dragOffset(image.Pt(100, 0), 0))
}

func TestTouchGesture(t *testing.T) {
	s, tr, r := newTestTracker()
	assert.False(t, tr.HandleEvent(touch(events.TouchStart, 100, 50, 0)))
	assert.False(t, tr.HandleEvent(touch(events.TouchMove, 98, 50, 10)))
	assert.Equal(t, StatePending, tr.State())
	assert.Equal(t, []string{"begin Forward true"}, r.signals)

	assert.True(t, tr.HandleEvent(touch(events.TouchMove, 80, 50, 20)))
	assert.Equal(t, StateScrolling, tr.State())
	assert.True(t, tr.IsGrabbed())

	assert.True(t, tr.HandleEvent(touch(events.TouchMove, 0, 50, 120)))
	assert.InDelta(t, 0.4, tr.progress, 1e-5)
	assert.InDelta(t, 0.004, tr.velocity, 1e-6)

	assert.True(t, tr.HandleEvent(touch(events.TouchEnd, 0, 50, 130)))
	assert.Equal(t, StateFinishing, tr.State())
	assert.Equal(t, []string{"begin Forward true", "update", "update", "end"}, r.signals)
	assert.Equal(t, float32(1), r.endTo)
	assert.Equal(t, MaxAnimationDuration, r.endDur)

	tr.FinishSettle()
	assert.Equal(t, StateNone, tr.State())
	assert.False(t, tr.IsGrabbed())
	assert.Empty(t, s.switched)
}

func TestGestureClampedToOnePage(t *testing.T) {
	s, tr, r := newTestTracker()
	s.points = []float32{0, 1, 2, 3}
	tr.HandleEvent(touch(events.TouchStart, 390, 50, 0))
	tr.HandleEvent(touch(events.TouchMove, 389, 50, 10))
	tr.HandleEvent(touch(events.TouchMove, 370, 50, 20))
	tr.HandleEvent(touch(events.TouchMove, -400, 50, 30))
	assert.Equal(t, float32(1), tr.progress)
	tr.HandleEvent(touch(events.TouchEnd, -400, 50, 40))
	assert.Equal(t, float32(1), r.endTo)
	assert.Equal(t, 1, r.ends)
}

func TestRejectedOutsideArea(t *testing.T) {
	s, tr, r := newTestTracker()
	s.area = image.Rect(0, 0, 16, 300)
	assert.False(t, tr.HandleEvent(touch(events.TouchStart, 100, 50, 0)))
	assert.False(t, tr.HandleEvent(touch(events.TouchMove, 98, 50, 10)))
	assert.Equal(t, StateRejected, tr.State())
	assert.False(t, tr.HandleEvent(touch(events.TouchMove, 60, 50, 20)))
	assert.Equal(t, StateNone, tr.State())
	assert.False(t, tr.HandleEvent(touch(events.TouchEnd, 60, 50, 30)))
	assert.Empty(t, r.signals)
}

func TestAxisMismatchDenied(t *testing.T) {
	_, tr, r := newTestTracker()
	tr.HandleEvent(touch(events.TouchStart, 100, 50, 0))
	assert.False(t, tr.HandleEvent(touch(events.TouchMove, 100, 52, 10)))
	assert.Equal(t, StateNone, tr.State())
	assert.Empty(t, r.signals)

	tr.HandleEvent(touch(events.TouchStart, 100, 50, 20))
	tr.HandleEvent(touch(events.TouchMove, 98, 50, 30))
	assert.Equal(t, StatePending, tr.State())
	assert.False(t, tr.HandleEvent(touch(events.TouchMove, 97, 80, 40)))
	assert.Equal(t, StateNone, tr.State())
	assert.Equal(t, []string{"begin Forward true", "end"}, r.signals)
	assert.Equal(t, float32(0), r.endTo)
	assert.Equal(t, time.Duration(0), r.endDur)

	// the denied sequence is no longer followed
	assert.False(t, tr.HandleEvent(touch(events.TouchEnd, 97, 80, 50)))
	assert.Equal(t, 1, r.ends)
}

func TestOvershootDenied(t *testing.T) {
	_, tr, r := newTestTracker()
	tr.HandleEvent(touch(events.TouchStart, 100, 50, 0))
	tr.HandleEvent(touch(events.TouchMove, 102, 50, 10))
	assert.Equal(t, StatePending, tr.State())
	assert.False(t, tr.HandleEvent(touch(events.TouchMove, 130, 50, 20)))
	assert.Equal(t, StateNone, tr.State())
	assert.Equal(t, []string{"begin Back true", "end"}, r.signals)
}

func TestReleaseWhilePendingCancels(t *testing.T) {
	_, tr, r := newTestTracker()
	tr.HandleEvent(touch(events.TouchStart, 100, 50, 0))
	tr.HandleEvent(touch(events.TouchMove, 98, 50, 10))
	assert.False(t, tr.HandleEvent(touch(events.TouchEnd, 98, 50, 20)))
	assert.Equal(t, StateNone, tr.State())
	assert.Equal(t, []string{"begin Forward true", "end"}, r.signals)
}

func TestTouchCancel(t *testing.T) {
	s, tr, r := newTestTracker()
	s.progress = 1
	tr.HandleEvent(touch(events.TouchStart, 100, 50, 0))
	tr.HandleEvent(touch(events.TouchMove, 102, 50, 10))
	tr.HandleEvent(touch(events.TouchMove, 130, 50, 20))
	assert.Equal(t, StateScrolling, tr.State())
	assert.False(t, tr.HandleEvent(touch(events.TouchCancel, 130, 50, 30)))
	assert.Equal(t, StateNone, tr.State())
	assert.Equal(t, 1, r.ends)
	assert.Equal(t, float32(1), r.endTo)
	assert.False(t, tr.IsGrabbed())
}

func TestMouseDrag(t *testing.T) {
	_, tr, r := newTestTracker()
	down := events.NewMouse(events.MouseDown, events.Left, image.Pt(100, 50), 0)
	assert.False(t, tr.HandleEvent(down))
	tr.HandleEvent(events.NewMouseDrag(events.Left, image.Pt(98, 50), image.Pt(100, 50), image.Pt(100, 50), 0))
	assert.Empty(t, r.signals)

	tr.SetAllowMouseDrag(true)
	tr.HandleEvent(events.NewMouse(events.MouseDown, events.Right, image.Pt(100, 50), 0))
	tr.HandleEvent(events.NewMouseDrag(events.Right, image.Pt(98, 50), image.Pt(100, 50), image.Pt(100, 50), 0))
	assert.Empty(t, r.signals)

	tr.HandleEvent(events.NewMouse(events.MouseDown, events.Left, image.Pt(100, 50), 0))
	tr.HandleEvent(events.NewMouseDrag(events.Left, image.Pt(98, 50), image.Pt(100, 50), image.Pt(100, 50), 0))
	assert.True(t, tr.HandleEvent(events.NewMouseDrag(events.Left, image.Pt(40, 50), image.Pt(98, 50), image.Pt(100, 50), 0)))
	assert.True(t, tr.HandleEvent(events.NewMouse(events.MouseUp, events.Left, image.Pt(40, 50), 0)))
	assert.Equal(t, 1, r.ends)
	assert.Equal(t, "begin Forward true", r.signals[0])
}

func TestResetIdempotent(t *testing.T) {
	_, tr, r := newTestTracker()
	tr.HandleEvent(touch(events.TouchStart, 100, 50, 0))
	tr.HandleEvent(touch(events.TouchMove, 98, 50, 10))
	tr.HandleEvent(touch(events.TouchMove, 80, 50, 20))
	tr.Reset()
	assert.Equal(t, StateNone, tr.State())
	assert.False(t, tr.IsGrabbed())
	before := *tr
	tr.Reset()
	assert.Equal(t, StateNone, tr.State())
	assert.Equal(t, before.progress, tr.progress)
	assert.Equal(t, before.initialProgress, tr.initialProgress)
	assert.Equal(t, before.velocity, tr.velocity)
	assert.Equal(t, 0, r.ends)
}

func TestSignalOrdering(t *testing.T) {
	_, tr, r := newTestTracker()
	var times []time.Time
	tr.OnUpdate(func(progress float32) { times = append(times, tr.prevTime) })
	tr.HandleEvent(touch(events.TouchStart, 300, 50, 0))
	for i := 1; i <= 10; i++ {
		tr.HandleEvent(touch(events.TouchMove, 300-i*10, 50, i*10))
	}
	tr.HandleEvent(touch(events.TouchEnd, 200, 50, 120))
	tr.HandleEvent(touch(events.TouchMove, 100, 50, 130))
	require.NotEmpty(t, r.signals)
	assert.Equal(t, "begin Forward true", r.signals[0])
	assert.Equal(t, "end", r.signals[len(r.signals)-1])
	for _, s := range r.signals[1 : len(r.signals)-1] {
		assert.Equal(t, "update", s)
	}
	for i := 1; i < len(times); i++ {
		assert.False(t, times[i].Before(times[i-1]))
	}
	assert.Equal(t, 1, r.ends)
}

func TestScrollGesture(t *testing.T) {
	_, tr, r := newTestTracker()
	wheel := events.NewScroll(image.Pt(100, 100), math32.Vec2(20, 0), events.ScrollWheel, 0)
	assert.False(t, tr.HandleEvent(wheel))
	assert.Empty(t, r.signals)

	assert.True(t, tr.HandleEvent(scroll(20, 0, 0)))
	assert.Equal(t, StateScrolling, tr.State())
	assert.InDelta(t, 0.5, tr.progress, 1e-6)
	assert.True(t, tr.HandleEvent(scroll(4, 0, 10)))
	assert.InDelta(t, 0.6, tr.progress, 1e-6)

	assert.False(t, tr.HandleEvent(scrollStop(20)))
	assert.Equal(t, StateFinishing, tr.State())
	assert.Equal(t, float32(1), r.endTo)
	assert.Equal(t, []string{"begin Forward true", "update", "update", "end"}, r.signals)

	// a new sample abandons the settle wait and starts a new gesture
	assert.True(t, tr.HandleEvent(scroll(20, 0, 500)))
	assert.Equal(t, "begin Forward true", r.signals[4])
}

func TestScrollAxisLock(t *testing.T) {
	_, tr, r := newTestTracker()
	tr.ScrollLockTimeout = 0
	assert.False(t, tr.HandleEvent(scroll(0, 20, 0)))
	assert.False(t, tr.HandleEvent(scroll(20, 0, 10)))
	assert.Empty(t, r.signals)
	assert.False(t, tr.HandleEvent(scrollStop(20)))
	assert.True(t, tr.HandleEvent(scroll(20, 0, 30)))
	assert.Equal(t, StateScrolling, tr.State())
}

func TestScrollAxisLockTimeout(t *testing.T) {
	_, tr, r := newTestTracker()
	assert.False(t, tr.HandleEvent(scroll(0, 20, 0)))
	assert.False(t, tr.HandleEvent(scroll(20, 0, 100)))
	assert.Empty(t, r.signals)
	assert.True(t, tr.HandleEvent(scroll(20, 0, 100+int(DefaultScrollLockTimeout/time.Millisecond)+1)))
	assert.Equal(t, StateScrolling, tr.State())
}

func TestScrollRejected(t *testing.T) {
	s, tr, r := newTestTracker()
	s.area = image.Rect(0, 0, 10, 10)
	assert.False(t, tr.HandleEvent(scroll(20, 0, 0)))
	assert.Equal(t, StateRejected, tr.State())
	assert.False(t, tr.HandleEvent(scroll(20, 0, 10)))
	assert.Equal(t, StateRejected, tr.State())
	assert.False(t, tr.HandleEvent(scrollStop(20)))
	assert.Equal(t, StateNone, tr.State())
	assert.Empty(t, r.signals)
}

func TestDisabled(t *testing.T) {
	_, tr, r := newTestTracker()
	tr.SetEnabled(false)
	assert.False(t, tr.HandleEvent(scroll(20, 0, 0)))
	assert.Empty(t, r.signals)

	tr.SetEnabled(true)
	tr.HandleEvent(scroll(20, 0, 0))
	tr.SetEnabled(false)
	assert.Equal(t, StateScrolling, tr.State())
	assert.True(t, tr.HandleEvent(scroll(4, 0, 10)))
	tr.HandleEvent(scrollStop(20))
	assert.Equal(t, 1, r.ends)
}

func TestShiftPosition(t *testing.T) {
	_, tr, _ := newTestTracker()
	tr.ShiftPosition(1)
	assert.Equal(t, float32(0), tr.progress)
	tr.HandleEvent(scroll(20, 0, 0))
	tr.ShiftPosition(-0.25)
	assert.InDelta(t, 0.25, tr.progress, 1e-6)
	assert.InDelta(t, -0.25, tr.initialProgress, 1e-6)
}

func TestUnrealizeCancels(t *testing.T) {
	_, tr, r := newTestTracker()
	tr.HandleEvent(scroll(20, 0, 0))
	tr.Unrealize()
	assert.Equal(t, StateNone, tr.State())
	assert.Equal(t, 1, r.ends)
	assert.Equal(t, float32(0), r.endTo)
}

type testGrabber struct{ grabs int }

func (g *testGrabber) GrabAdd(w any)    { g.grabs++ }
func (g *testGrabber) GrabRemove(w any) { g.grabs-- }

func TestGrab(t *testing.T) {
	_, tr, _ := newTestTracker()
	g := &testGrabber{}
	tr.SetGrabber(g)
	tr.HandleEvent(scroll(20, 0, 0))
	assert.Equal(t, 1, g.grabs)
	tr.HandleEvent(scrollStop(10))
	tr.FinishSettle()
	assert.Equal(t, 0, g.grabs)
}

type testNode struct {
	parent *testNode
	widget any
}

func (n *testNode) NodeParent() Node {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

func (n *testNode) NodeWidget() any { return n.widget }

type button struct{}

func (b *button) ConsumesPress() bool { return true }

type titleBar struct{}

func (tb *titleBar) IsWindowHandle() bool { return true }

func touchOn(typ events.Types, target *testNode, x, y int, ms int) *events.Touch {
	ev := touch(typ, x, y, ms)
	ev.SetTarget(target)
	return ev
}

func TestCaptureConflicts(t *testing.T) {
	s, tr, r := newTestTracker()
	root := &testNode{widget: s}
	btn := &testNode{parent: root, widget: &button{}}
	label := &testNode{parent: root, widget: "label"}

	assert.True(t, tr.shouldForceDrag(btn))
	assert.False(t, tr.shouldForceDrag(label))
	assert.False(t, tr.shouldForceDrag(nil))

	// a nested swipeable with the same orientation owns the button
	inner := &testSwipeable{distance: 100, points: []float32{0, 1}}
	inner.tracker = NewTracker(inner)
	innerNode := &testNode{parent: root, widget: inner}
	innerBtn := &testNode{parent: innerNode, widget: &button{}}
	assert.False(t, tr.shouldForceDrag(innerBtn))
	inner.tracker.SetOrientation(layout.Vertical)
	assert.True(t, tr.shouldForceDrag(innerBtn))

	assert.False(t, tr.CapturedEvent(touchOn(events.TouchStart, label, 100, 50, 0)))
	assert.False(t, tr.CapturedEvent(touchOn(events.TouchStart, btn, 100, 50, 0)))
	tr.CapturedEvent(touchOn(events.TouchMove, btn, 98, 50, 10))
	assert.Equal(t, StatePending, tr.State())
	ev := touchOn(events.TouchMove, btn, 60, 50, 20)
	assert.True(t, tr.CapturedEvent(ev))
	// the bubble phase sees the same event and gives the same answer
	assert.True(t, tr.HandleEvent(ev))
	assert.Equal(t, []string{"begin Forward true", "update"}, r.signals)
	assert.True(t, tr.CapturedEvent(touchOn(events.TouchMove, btn, 40, 50, 30)))
	assert.InDelta(t, 0.1, tr.progress, 1e-6)
}

func TestWindowHandleNeverTracked(t *testing.T) {
	s, tr, r := newTestTracker()
	root := &testNode{widget: s}
	bar := &testNode{parent: root, widget: &titleBar{}}
	btn := &testNode{parent: bar, widget: &button{}}
	tr.CapturedEvent(touchOn(events.TouchStart, btn, 100, 50, 0))
	tr.HandleEvent(touchOn(events.TouchMove, btn, 98, 50, 10))
	tr.HandleEvent(touchOn(events.TouchMove, btn, 60, 50, 20))
	assert.Empty(t, r.signals)
	assert.Equal(t, StateNone, tr.State())
}

func TestStatesEnum(t *testing.T) {
	assert.Equal(t, "Scrolling", StateScrolling.String())
	assert.Equal(t, "Forward", Forward.String())
	var st States
	assert.NoError(t, st.SetString("Rejected"))
	assert.Equal(t, StateRejected, st)
}
