// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"log/slog"

	"github.com/jeandeaual/go-locale"
	"golang.org/x/text/language"
)

// TextDirections are the reading directions of text,
// which determine where the start of a horizontal layout is.
type TextDirections int32 //enums:enum

const (
	// LTR is left-to-right text, with the start on the left.
	LTR TextDirections = iota

	// RTL is right-to-left text, with the start on the right.
	RTL
)

// rtlScripts are the scripts written right to left.
var rtlScripts = map[string]bool{
	"Adlm": true, "Arab": true, "Hebr": true, "Mand": true, "Mend": true,
	"Nkoo": true, "Rohg": true, "Samr": true, "Syrc": true, "Thaa": true,
	"Yezi": true,
}

// DirectionForLocale returns the text direction for the given
// BCP 47 locale tag, such as "en-US" or "ar_EG". Unknown and
// malformed tags are treated as [LTR].
func DirectionForLocale(tag string) TextDirections {
	t, err := language.Parse(tag)
	if err != nil {
		return LTR
	}
	script, _ := t.Script()
	if rtlScripts[script.String()] {
		return RTL
	}
	return LTR
}

// DefaultTextDirection returns the text direction of the
// system locale, or [LTR] if it cannot be determined.
func DefaultTextDirection() TextDirections {
	tag, err := locale.GetLocale()
	if err != nil {
		slog.Debug("could not get system locale", "err", err)
		return LTR
	}
	return DirectionForLocale(tag)
}
