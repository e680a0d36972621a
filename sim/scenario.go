// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"fmt"
	"image"
	"maps"
	"os"
	"slices"
	"time"

	"cogentcore.org/adaptive/flap"
	"cogentcore.org/adaptive/layout"
	"cogentcore.org/adaptive/settings"
	"gopkg.in/yaml.v3"
)

// Scenario is a flap configuration with a sequence of steps run
// on a [Host]. Each step is a command line for [Host.Exec].
type Scenario struct {

	// Name is the name of the scenario.
	Name string `yaml:"name"`

	// Size is the initial window size, 800x600 if unset.
	Size [2]int `yaml:"size"`

	// Options are the flap properties, applied after the settings.
	Options Options `yaml:"flap"`

	// Children are the children of the flap by type name:
	// content, flap or separator.
	Children map[string]*ChildSpec `yaml:"children"`

	// Steps are the commands to run.
	Steps []string `yaml:"steps"`
}

// Options are the flap properties of a [Scenario].
// Unset properties keep their values.
type Options struct {
	FoldPolicy     *flap.FoldPolicies     `yaml:"fold-policy"`
	TransitionType *flap.TransitionTypes  `yaml:"transition-type"`
	FlapPosition   *flap.Positions        `yaml:"flap-position"`
	Orientation    *layout.Orientations   `yaml:"orientation"`
	Direction      *layout.TextDirections `yaml:"direction"`
	RevealFlap     *bool                  `yaml:"reveal-flap"`
	Locked         *bool                  `yaml:"locked"`
	Modal          *bool                  `yaml:"modal"`
	SwipeToOpen    *bool                  `yaml:"swipe-to-open"`
	SwipeToClose   *bool                  `yaml:"swipe-to-close"`
	RevealDuration *time.Duration         `yaml:"reveal-duration"`
	FoldDuration   *time.Duration         `yaml:"fold-duration"`
	AllowMouseDrag *bool                  `yaml:"allow-mouse-drag"`
}

// ChildSpec describes a [Box] child of the flap.
type ChildSpec struct {

	// Width is the minimum and natural width.
	Width [2]int `yaml:"width"`

	// Height is the minimum and natural height.
	Height [2]int `yaml:"height"`

	// HExpand is whether the box expands horizontally.
	HExpand bool `yaml:"hexpand"`

	// VExpand is whether the box expands vertically, true if unset.
	VExpand *bool `yaml:"vexpand"`

	// Buttons are the buttons inside the box.
	Buttons []ButtonSpec `yaml:"buttons"`
}

// ButtonSpec describes a [Button].
type ButtonSpec struct {
	Name string `yaml:"name"`

	// Rect is x0, y0, x1, y1 relative to the box.
	Rect [4]int `yaml:"rect"`

	TitleBar bool `yaml:"title-bar"`
}

// LoadScenario reads a scenario from the given YAML file.
// The scenario is named after the file if it has no name.
func LoadScenario(filename string) (*Scenario, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	s, err := ParseScenario(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	if s.Name == "" {
		s.Name = filename
	}
	return s, nil
}

// ParseScenario parses a scenario from YAML.
func ParseScenario(data []byte) (*Scenario, error) {
	s := &Scenario{}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, err
	}
	return s, nil
}

// box makes the box of the child with the given name.
func (cs *ChildSpec) box(name string) *Box {
	b := &Box{
		Name:    name,
		Min:     [2]int{cs.Width[0], cs.Height[0]},
		Nat:     [2]int{cs.Width[1], cs.Height[1]},
		Expands: [2]bool{cs.HExpand, true},
	}
	if cs.VExpand != nil {
		b.Expands[1] = *cs.VExpand
	}
	for _, bs := range cs.Buttons {
		b.Buttons = append(b.Buttons, &Button{
			Name:     bs.Name,
			Rect:     image.Rect(bs.Rect[0], bs.Rect[1], bs.Rect[2], bs.Rect[3]),
			TitleBar: bs.TitleBar,
		})
	}
	return b
}

// apply sets the options that are set on the flap.
func (o *Options) apply(f *flap.Flap) {
	if o.FoldPolicy != nil {
		f.SetFoldPolicy(*o.FoldPolicy)
	}
	if o.TransitionType != nil {
		f.SetTransitionType(*o.TransitionType)
	}
	if o.FlapPosition != nil {
		f.SetFlapPosition(*o.FlapPosition)
	}
	if o.Orientation != nil {
		f.SetOrientation(*o.Orientation)
	}
	if o.Direction != nil {
		f.SetDirection(*o.Direction)
	}
	if o.Locked != nil {
		f.SetLocked(*o.Locked)
	}
	if o.RevealFlap != nil {
		f.SetRevealFlap(*o.RevealFlap)
	}
	if o.Modal != nil {
		f.SetModal(*o.Modal)
	}
	if o.SwipeToOpen != nil {
		f.SetSwipeToOpen(*o.SwipeToOpen)
	}
	if o.SwipeToClose != nil {
		f.SetSwipeToClose(*o.SwipeToClose)
	}
	if o.RevealDuration != nil {
		f.SetRevealDuration(*o.RevealDuration)
	}
	if o.FoldDuration != nil {
		f.SetFoldDuration(*o.FoldDuration)
	}
	if o.AllowMouseDrag != nil {
		f.Tracker().SetAllowMouseDrag(*o.AllowMouseDrag)
	}
}

// Start makes the flap of the scenario and a host showing it.
// The settings are applied before the options of the scenario;
// nil means the default settings.
func (s *Scenario) Start(set *settings.Settings) (*Host, error) {
	if set == nil {
		set = settings.Default()
	}
	f := flap.New()
	for _, name := range slices.Sorted(maps.Keys(s.Children)) {
		if err := f.AddChild(s.Children[name].box(name), name); err != nil {
			return nil, fmt.Errorf("%s: %w", s.Name, err)
		}
	}
	size := image.Pt(s.Size[0], s.Size[1])
	if size.X <= 0 || size.Y <= 0 {
		size = image.Pt(800, 600)
	}
	h := newHost(f, size, Epoch)
	set.Apply(f, h.Ticker())
	s.Options.apply(f)
	h.start()
	return h, nil
}

// Run runs the steps of the scenario on the host, stopping
// at the first failing step.
func (s *Scenario) Run(h *Host) error {
	for i, step := range s.Steps {
		if err := h.ExecLine(step); err != nil {
			return fmt.Errorf("%s: step %d %q: %w", s.Name, i+1, step, err)
		}
	}
	return nil
}

// Play starts the scenario and runs it, returning the host
// for inspecting the frames.
func (s *Scenario) Play(set *settings.Settings) (*Host, error) {
	h, err := s.Start(set)
	if err != nil {
		return nil, err
	}
	return h, s.Run(h)
}
