// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tomlx

import (
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testStruct struct {
	Name  string
	Count int
}

func TestSaveOpen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "test.toml")
	require.NoError(t, Save(&testStruct{Name: "flap", Count: 3}, fn))
	var ts testStruct
	require.NoError(t, Open(&ts, fn))
	assert.Equal(t, testStruct{Name: "flap", Count: 3}, ts)
}

func TestOpenFilesOverride(t *testing.T) {
	dir := t.TempDir()
	a, b := filepath.Join(dir, "a.toml"), filepath.Join(dir, "b.toml")
	require.NoError(t, Save(&testStruct{Name: "a", Count: 1}, a))
	require.NoError(t, Save(&struct{ Count int }{Count: 2}, b))
	var ts testStruct
	require.NoError(t, OpenFiles(&ts, a, b))
	assert.Equal(t, testStruct{Name: "a", Count: 2}, ts)

	err := OpenFiles(&ts, filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestReadBytesError(t *testing.T) {
	var ts testStruct
	assert.Error(t, ReadBytes(&ts, []byte("Name = ")))
}
