// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"fmt"
	"image"
	"strconv"
	"strings"
	"time"

	"cogentcore.org/adaptive/events"
	"cogentcore.org/adaptive/events/key"
	"cogentcore.org/adaptive/flap"
	"cogentcore.org/adaptive/layout"
	"cogentcore.org/adaptive/math32"
	"github.com/mattn/go-shellwords"
)

// ExecLine parses a command line with shell quoting rules and runs it
// with [Host.Exec].
func (h *Host) ExecLine(line string) error {
	args, err := shellwords.Parse(line)
	if err != nil {
		return err
	}
	return h.Exec(args...)
}

// Exec runs a single command on the host. The commands are:
//
//	resize W H                       resize the window
//	tick DURATION                    advance the clock by one frame
//	run DURATION                     advance the clock frame by frame
//	settle [LIMIT]                   run frames until animations end
//	touch start|move|end|cancel X Y [SEQ]
//	mouse down|drag|up X Y           primary button
//	click X Y
//	scroll DX DY [wheel|touchpad]    at the pointer position
//	scroll stop
//	pointer X Y                      move the pointer
//	key NAME                         press a key, such as Escape
//	set PROPERTY VALUE               set a flap property
//	realize, unrealize
//	frame                            record a frame
//	expect NAME [ARGS...] VALUE      check the state
func (h *Host) Exec(args ...string) error {
	if len(args) == 0 {
		return nil
	}
	cmd, args := strings.ToLower(args[0]), args[1:]
	switch cmd {
	case "resize":
		p, err := parsePoint(args)
		if err != nil {
			return err
		}
		h.Resize(p)
	case "tick", "run", "settle":
		d := 2 * time.Second
		if len(args) > 0 || cmd != "settle" {
			var err error
			if d, err = parseDuration(args); err != nil {
				return err
			}
		}
		switch cmd {
		case "tick":
			h.Tick(d)
		case "run":
			h.Run(d)
		default:
			h.Settle(d)
		}
	case "touch":
		return h.execTouch(args)
	case "mouse":
		return h.execMouse(args)
	case "click":
		p, err := parsePoint(args)
		if err != nil {
			return err
		}
		h.Click(p)
	case "pointer":
		p, err := parsePoint(args)
		if err != nil {
			return err
		}
		h.MovePointer(p)
	case "scroll":
		return h.execScroll(args)
	case "key":
		if len(args) != 1 {
			return fmt.Errorf("key: expected a key name")
		}
		var code key.Codes
		if err := code.SetString(args[0]); err != nil {
			return err
		}
		h.Key(code)
	case "set":
		if len(args) != 2 {
			return fmt.Errorf("set: expected a property and a value")
		}
		return h.set(args[0], args[1])
	case "realize":
		h.Flap.Realize(h)
		h.Flush()
	case "unrealize":
		h.Flap.Unrealize()
	case "frame":
		h.Frames = append(h.Frames, h.Frame())
	case "expect":
		return h.expect(args)
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
	return nil
}

func (h *Host) execTouch(args []string) error {
	if len(args) != 3 && len(args) != 4 {
		return fmt.Errorf("touch: expected a phase, a position and an optional sequence")
	}
	var typ events.Types
	switch strings.ToLower(args[0]) {
	case "start":
		typ = events.TouchStart
	case "move":
		typ = events.TouchMove
	case "end":
		typ = events.TouchEnd
	case "cancel":
		typ = events.TouchCancel
	default:
		return fmt.Errorf("touch: unknown phase %q", args[0])
	}
	p, err := parsePoint(args[1:3])
	if err != nil {
		return err
	}
	seq := 1
	if len(args) == 4 {
		if seq, err = strconv.Atoi(args[3]); err != nil {
			return err
		}
	}
	h.Touch(typ, seq, p)
	return nil
}

func (h *Host) execMouse(args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("mouse: expected an action and a position")
	}
	p, err := parsePoint(args[1:])
	if err != nil {
		return err
	}
	switch strings.ToLower(args[0]) {
	case "down":
		h.MouseDown(p)
	case "drag":
		h.MouseDrag(p)
	case "up":
		h.MouseUp(p)
	default:
		return fmt.Errorf("mouse: unknown action %q", args[0])
	}
	return nil
}

func (h *Host) execScroll(args []string) error {
	if len(args) == 1 && strings.EqualFold(args[0], "stop") {
		h.ScrollStop()
		return nil
	}
	if len(args) != 2 && len(args) != 3 {
		return fmt.Errorf("scroll: expected a delta and an optional source")
	}
	dx, err := strconv.ParseFloat(args[0], 32)
	if err != nil {
		return err
	}
	dy, err := strconv.ParseFloat(args[1], 32)
	if err != nil {
		return err
	}
	src := events.ScrollTouchpad
	if len(args) == 3 {
		if err := src.SetString(args[2]); err != nil {
			return err
		}
	}
	h.Scroll(math32.Vec2(float32(dx), float32(dy)), src)
	return nil
}

// property parses a property name, ignoring case and dashes.
func property(name string) (flap.Properties, error) {
	var p flap.Properties
	err := p.SetString(strings.ReplaceAll(name, "-", ""))
	return p, err
}

// set sets the given flap property from a string value.
func (h *Host) set(name, value string) error {
	p, err := property(name)
	if err != nil {
		return err
	}
	f := h.Flap
	switch p {
	case flap.NotifyFoldPolicy:
		var v flap.FoldPolicies
		if err := v.SetString(value); err != nil {
			return err
		}
		f.SetFoldPolicy(v)
	case flap.NotifyTransitionType:
		var v flap.TransitionTypes
		if err := v.SetString(value); err != nil {
			return err
		}
		f.SetTransitionType(v)
	case flap.NotifyFlapPosition:
		var v flap.Positions
		if err := v.SetString(value); err != nil {
			return err
		}
		f.SetFlapPosition(v)
	case flap.NotifyOrientation:
		var v layout.Orientations
		if err := v.SetString(value); err != nil {
			return err
		}
		f.SetOrientation(v)
	case flap.NotifyTextDirection:
		var v layout.TextDirections
		if err := v.SetString(value); err != nil {
			return err
		}
		f.SetDirection(v)
	case flap.NotifyRevealFlap, flap.NotifyLocked, flap.NotifyModal, flap.NotifySwipeToOpen, flap.NotifySwipeToClose:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return err
		}
		switch p {
		case flap.NotifyRevealFlap:
			f.SetRevealFlap(b)
		case flap.NotifyLocked:
			f.SetLocked(b)
		case flap.NotifyModal:
			f.SetModal(b)
		case flap.NotifySwipeToOpen:
			f.SetSwipeToOpen(b)
		default:
			f.SetSwipeToClose(b)
		}
	case flap.NotifyRevealDuration, flap.NotifyFoldDuration:
		d, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		if p == flap.NotifyRevealDuration {
			f.SetRevealDuration(d)
		} else {
			f.SetFoldDuration(d)
		}
	default:
		return fmt.Errorf("set: property %v is read only", p)
	}
	h.layout()
	return nil
}

// propertyValue returns the current value of the given property.
func (h *Host) propertyValue(p flap.Properties) string {
	f := h.Flap
	switch p {
	case flap.NotifyFoldPolicy:
		return f.FoldPolicy().String()
	case flap.NotifyTransitionType:
		return f.TransitionType().String()
	case flap.NotifyFlapPosition:
		return f.FlapPosition().String()
	case flap.NotifyOrientation:
		return f.Orientation().String()
	case flap.NotifyTextDirection:
		return f.Direction().String()
	case flap.NotifyRevealFlap:
		return strconv.FormatBool(f.RevealFlap())
	case flap.NotifyLocked:
		return strconv.FormatBool(f.Locked())
	case flap.NotifyModal:
		return strconv.FormatBool(f.Modal())
	case flap.NotifySwipeToOpen:
		return strconv.FormatBool(f.SwipeToOpen())
	case flap.NotifySwipeToClose:
		return strconv.FormatBool(f.SwipeToClose())
	case flap.NotifyRevealDuration:
		return f.RevealDuration().String()
	case flap.NotifyFoldDuration:
		return f.FoldDuration().String()
	case flap.NotifyFolded:
		return strconv.FormatBool(f.Folded())
	case flap.NotifyRevealProgress:
		return formatFloat(f.RevealProgress())
	}
	w := f.Child(flap.ChildContent + flap.Children(p-flap.NotifyContent))
	if w == nil {
		return "none"
	}
	return widgetName(w)
}

// expect checks a named value against the last argument.
func (h *Host) expect(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("expect: expected a name and a value")
	}
	name, want := strings.ToLower(args[0]), args[len(args)-1]
	params := args[1 : len(args)-1]
	got, err := h.value(name, params)
	if err != nil {
		return err
	}
	if !matches(got, want) {
		return fmt.Errorf("expect %s: got %s, want %s", strings.Join(args[:len(args)-1], " "), got, want)
	}
	return nil
}

// value returns the named value of the state, for expect.
func (h *Host) value(name string, params []string) (string, error) {
	f := h.Flap
	child := func() (flap.Children, error) {
		var c flap.Children
		if len(params) == 0 {
			return c, fmt.Errorf("expect %s: expected a child", name)
		}
		err := c.SetString(params[0])
		return c, err
	}
	switch name {
	case "fold-progress", "foldprogress":
		return formatFloat(f.FoldProgress()), nil
	case "state":
		return f.Tracker().State().String(), nil
	case "pending":
		return f.Pending().String(), nil
	case "grabbed":
		return strconv.FormatBool(h.IsGrabbed()), nil
	case "swipeable":
		return strconv.FormatBool(f.Tracker().Enabled), nil
	case "clipped":
		return strconv.FormatBool(f.PaintPlan().Clipped), nil
	case "shadowed":
		return strconv.FormatBool(f.PaintPlan().Shadowed), nil
	case "shadow-progress":
		return formatFloat(f.ShadowProgress()), nil
	case "order":
		var names []string
		for _, c := range f.PaintOrder() {
			names = append(names, strings.ToLower(c.String()))
		}
		return strings.Join(names, ","), nil
	case "visible":
		c, err := child()
		if err != nil {
			return "", err
		}
		return strconv.FormatBool(f.ChildVisible(c)), nil
	case "alloc":
		c, err := child()
		if err != nil {
			return "", err
		}
		r := f.ChildAllocation(c)
		return fmt.Sprintf("%d,%d,%d,%d", r.Min.X, r.Min.Y, r.Max.X, r.Max.Y), nil
	case "clicks":
		if len(params) == 0 {
			return "", fmt.Errorf("expect clicks: expected a button")
		}
		return strconv.Itoa(h.Clicks[params[0]]), nil
	}
	p, err := property(name)
	if err != nil {
		return "", fmt.Errorf("expect: unknown name %q", name)
	}
	return h.propertyValue(p), nil
}

// matches compares values as numbers when both are numbers,
// and case insensitively otherwise.
func matches(got, want string) bool {
	g, gerr := strconv.ParseFloat(got, 64)
	w, werr := strconv.ParseFloat(want, 64)
	if gerr == nil && werr == nil {
		return math32.Abs(float32(g-w)) <= 1e-3
	}
	return strings.EqualFold(got, want)
}

func formatFloat(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}

func parsePoint(args []string) (image.Point, error) {
	if len(args) != 2 {
		return image.Point{}, fmt.Errorf("expected two coordinates, got %d", len(args))
	}
	x, err := strconv.Atoi(args[0])
	if err != nil {
		return image.Point{}, err
	}
	y, err := strconv.Atoi(args[1])
	if err != nil {
		return image.Point{}, err
	}
	return image.Pt(x, y), nil
}

func parseDuration(args []string) (time.Duration, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("expected a duration")
	}
	return time.ParseDuration(args[0])
}
