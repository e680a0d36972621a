// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package settings provides the user settings of adaptive widgets:
// animation durations, whether animations run at all, input options
// and the text direction. Settings are stored in TOML files.
package settings

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"cogentcore.org/adaptive/anim"
	"cogentcore.org/adaptive/base/errors"
	"cogentcore.org/adaptive/base/fsx"
	"cogentcore.org/adaptive/base/iox/tomlx"
	"cogentcore.org/adaptive/base/reflectx"
	"cogentcore.org/adaptive/flap"
	"cogentcore.org/adaptive/layout"
	"github.com/Masterminds/semver/v3"
	"github.com/jinzhu/copier"
	"github.com/mitchellh/go-homedir"
)

// Version is the version of the settings format written by [Save].
// Files with a different major version can not be opened.
var Version = semver.MustParse("1.0.0")

// DefaultFile is the default settings filename, looked up
// on the settings paths.
const DefaultFile = "adaptive-settings.toml"

// DefaultPaths are the default settings paths, searched in order.
var DefaultPaths = []string{".", "~/.config/adaptive"}

// ErrIncompatible is returned when opening settings saved
// with an incompatible version.
var ErrIncompatible = errors.New("settings: incompatible version")

// Settings are the user settings of adaptive widgets.
type Settings struct {

	// Version is the version of the settings format.
	Version string `default:"1.0.0"`

	// RevealDuration is the duration of the flap reveal animation.
	RevealDuration Duration `default:"250ms"`

	// FoldDuration is the duration of the flap fold animation.
	FoldDuration Duration `default:"250ms"`

	// EnableAnimations is whether transitions are animated.
	// When false, every transition jumps to its end.
	EnableAnimations bool `default:"true"`

	// AllowMouseDrag is whether dragging with the mouse swipes,
	// in addition to touch and touchpad gestures.
	AllowMouseDrag bool `default:"false"`

	// ScrollLockTimeout is the time without touchpad scroll events
	// after which the scroll axis lock is released.
	ScrollLockTimeout Duration `default:"500ms"`

	// TextDirection is "LTR", "RTL", or "auto"
	// for the direction of the system locale.
	TextDirection string `default:"auto"`
}

// Duration is a [time.Duration] stored as a string such as "250ms".
type Duration time.Duration

// MarshalText implements [encoding.TextMarshaler].
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// Default returns new settings with their default values.
func Default() *Settings {
	s := &Settings{}
	SetFromDefaults(s)
	return s
}

// SetFromDefaults sets the settings to their default values,
// from their `default:` struct tags.
func SetFromDefaults(s *Settings) {
	errors.Log(reflectx.SetFromDefaultTags(s))
}

// Clone returns a deep copy of the settings.
func (s *Settings) Clone() *Settings {
	c := &Settings{}
	errors.Log(copier.CopyWithOption(c, s, copier.Option{DeepCopy: true}))
	return c
}

// Direction returns the text direction named by [Settings.TextDirection].
func (s *Settings) Direction() layout.TextDirections {
	if s.TextDirection == "" || strings.EqualFold(s.TextDirection, "auto") {
		return layout.DefaultTextDirection()
	}
	var dir layout.TextDirections
	if err := dir.SetString(s.TextDirection); err != nil {
		errors.Log(err)
		return layout.LTR
	}
	return dir
}

// Compatible returns an error wrapping [ErrIncompatible] if the
// settings were saved with a major version other than [Version].
func (s *Settings) Compatible() error {
	if s.Version == "" {
		return nil
	}
	v, err := semver.NewVersion(s.Version)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrIncompatible, s.Version, err)
	}
	if v.Major() != Version.Major() {
		return fmt.Errorf("%w: %s, want %d.x", ErrIncompatible, v, Version.Major())
	}
	return nil
}

// Open opens the settings from the given file, after expanding
// a leading ~ to the home directory. The settings keep their
// current values for anything not in the file.
func Open(s *Settings, filename string) error {
	fn, err := homedir.Expand(filename)
	if err != nil {
		return err
	}
	if err := tomlx.Open(s, fn); err != nil {
		return err
	}
	return s.Compatible()
}

// Save saves the settings to the given file, after expanding a
// leading ~ to the home directory, stamping them with [Version].
func Save(s *Settings, filename string) error {
	fn, err := homedir.Expand(filename)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(fn), 0755); err != nil {
		return err
	}
	s.Version = Version.String()
	return tomlx.Save(s, fn)
}

// Load returns the default settings overridden by every copy of the
// given file found on the given paths, in order. It is not an error
// for the file not to exist anywhere.
func Load(paths []string, file string) (*Settings, error) {
	s := Default()
	files := fsx.FindFilesOnPaths(expandPaths(paths), file)
	var errs []error
	for _, fn := range files {
		err := Open(s, fn)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = append(errs, err)
		}
	}
	return s, errors.Join(errs...)
}

func expandPaths(paths []string) []string {
	res := make([]string, 0, len(paths))
	for _, p := range paths {
		res = append(res, errors.Log1(homedir.Expand(p)))
	}
	return res
}

// Apply applies the settings to the given flap and the
// ticker driving its animations, which may be nil.
func (s *Settings) Apply(f *flap.Flap, t *anim.Ticker) {
	f.SetRevealDuration(time.Duration(s.RevealDuration))
	f.SetFoldDuration(time.Duration(s.FoldDuration))
	f.SetDirection(s.Direction())
	tr := f.Tracker()
	tr.SetAllowMouseDrag(s.AllowMouseDrag)
	tr.ScrollLockTimeout = time.Duration(s.ScrollLockTimeout)
	if t != nil {
		t.Enabled = s.EnableAnimations
	}
}
