// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fsx

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindFilesOnPaths(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "configs")
	require.NoError(t, os.Mkdir(sub, 0o755))
	fn := filepath.Join(sub, "adaptive.toml")
	require.NoError(t, os.WriteFile(fn, []byte("RevealDuration = 100\n"), 0o644))

	ok, err := FileExists(fn)
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = FileExists(sub)
	assert.NoError(t, err)
	assert.False(t, ok)

	ok, err = FileExists(filepath.Join(dir, "missing.toml"))
	assert.NoError(t, err)
	assert.False(t, ok)

	res := FindFilesOnPaths([]string{dir, sub}, "adaptive.toml")
	assert.Equal(t, []string{fn}, res)
	assert.Equal(t, []string{fn}, FindFilesOnPaths(nil, fn))
	assert.Empty(t, FindFilesOnPaths([]string{dir}, "adaptive.toml"))
}
