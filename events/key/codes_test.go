// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package key

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodes(t *testing.T) {
	assert.Equal(t, "Escape", CodeEscape.String())
	var c Codes
	assert.NoError(t, c.SetString("escape"))
	assert.Equal(t, CodeEscape, c)
	assert.Error(t, c.SetString("Hyper"))
	assert.True(t, CodeDownArrow.IsValid())
	assert.False(t, CodesN.IsValid())
}

func TestModifiers(t *testing.T) {
	m := Control | Shift
	assert.True(t, m.HasFlag(Control))
	assert.False(t, m.HasFlag(Alt))
	assert.Equal(t, "Control+Shift", m.ModifiersString())
	assert.Equal(t, "", Modifiers(0).ModifiersString())
}
