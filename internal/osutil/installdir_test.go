// MIT License
//
// Copyright (c) 2022-2026 GoAkt Team
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package osutil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstallDir(t *testing.T) {
	t.Run("directory of the executable", func(t *testing.T) {
		dir := t.TempDir()
		binary := filepath.Join(dir, "server")
		require.NoError(t, os.WriteFile(binary, []byte("bin"), 0o755))

		restore := executable
		t.Cleanup(func() { executable = restore })
		executable = func() (string, error) { return binary, nil }

		actual, err := InstallDir()
		require.NoError(t, err)
		expected, err := filepath.EvalSymlinks(dir)
		require.NoError(t, err)
		assert.Equal(t, expected, actual)
	})
	t.Run("symlinked executable", func(t *testing.T) {
		dir := t.TempDir()
		realDir := filepath.Join(dir, "release")
		require.NoError(t, os.Mkdir(realDir, 0o755))
		binary := filepath.Join(realDir, "server")
		require.NoError(t, os.WriteFile(binary, []byte("bin"), 0o755))
		link := filepath.Join(dir, "server")
		if err := os.Symlink(binary, link); err != nil {
			t.Skipf("symlinks not supported: %v", err)
		}

		restore := executable
		t.Cleanup(func() { executable = restore })
		executable = func() (string, error) { return link, nil }

		actual, err := InstallDir()
		require.NoError(t, err)
		expected, err := filepath.EvalSymlinks(realDir)
		require.NoError(t, err)
		assert.Equal(t, expected, actual)
	})
	t.Run("falls back to the working directory", func(t *testing.T) {
		restore := executable
		t.Cleanup(func() { executable = restore })
		executable = func() (string, error) { return "", errors.New("unsupported") }

		actual, err := InstallDir()
		require.NoError(t, err)
		cwd, err := os.Getwd()
		require.NoError(t, err)
		assert.Equal(t, cwd, actual)
	})
}

func TestIsDir(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(file, nil, 0o600))

	assert.True(t, IsDir(dir))
	assert.False(t, IsDir(file))
	assert.False(t, IsDir(filepath.Join(dir, "missing")))
}
