// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flap

import (
	"fmt"

	"cogentcore.org/adaptive/layout"
)

// AddChild adds a child from a declarative description, where typ
// names the slot: "content" (or empty), "flap" or "separator".
// It returns an error for unknown slot names.
func (f *Flap) AddChild(w layout.Widget, typ string) error {
	c := ChildContent
	if typ != "" {
		if err := c.SetString(typ); err != nil {
			return fmt.Errorf("flap: invalid child type %q: %w", typ, err)
		}
	}
	switch c {
	case ChildFlap:
		f.SetFlap(w)
	case ChildSeparator:
		f.SetSeparator(w)
	default:
		f.SetContent(w)
	}
	return nil
}
