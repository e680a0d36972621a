// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flap

// ClassSetter is implemented by styling layers
// that apply named style classes to a widget.
type ClassSetter interface {
	SetClass(name string, on bool)
}

// StyleClasses keeps the "folded" and "unfolded" style classes of cs
// in sync with the folded state of f, setting them now and whenever
// the folded state changes.
func StyleClasses(f *Flap, cs ClassSetter) {
	apply := func(f *Flap) {
		cs.SetClass("folded", f.Folded())
		cs.SetClass("unfolded", !f.Folded())
	}
	apply(f)
	f.OnNotify(func(f *Flap, p Properties) {
		if p == NotifyFolded {
			apply(f)
		}
	})
}
