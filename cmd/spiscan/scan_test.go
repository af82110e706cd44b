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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeBundle(t *testing.T, dir, name string, files map[string]string) string {
	t.Helper()
	bundlePath := filepath.Join(dir, name)
	out, err := os.Create(bundlePath)
	require.NoError(t, err)
	writer := zip.NewWriter(out)
	for entryName, content := range files {
		w, err := writer.Create(entryName)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	require.NoError(t, out.Close())
	return bundlePath
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buffer := new(bytes.Buffer)
	rootCmd := newRootCmd()
	rootCmd.SetOut(buffer)
	rootCmd.SetErr(buffer)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buffer.String(), err
}

func TestScan(t *testing.T) {
	dir := t.TempDir()
	kafka := writeBundle(t, dir, "kafka.zip", map[string]string{
		"META-INF/canal/acme.Sink": "# sinks\nkafka, kafka-v2 = acme.KafkaSink\n",
		"kafka.so":                 "not loaded",
	})
	empty := writeBundle(t, dir, "empty.zip", map[string]string{
		"README.md": "nothing here",
	})
	broken := filepath.Join(dir, "broken.zip")
	require.NoError(t, os.WriteFile(broken, []byte("garbage"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("skipped"), 0o600))

	output, err := execute(t, "scan", "--dir", dir, "--contract", "acme.Sink")
	require.NoError(t, err)

	assert.Contains(t, output, "bundle "+kafka)
	assert.Contains(t, output, "META-INF/canal/acme.Sink")
	assert.Contains(t, output, "line 2: kafka, kafka-v2 -> acme.KafkaSink")
	assert.Contains(t, output, "bundle "+empty+"\n  no descriptors")
	assert.Contains(t, output, "bundle "+broken+"\n  error:")
	assert.NotContains(t, output, "notes.txt")
}

func TestScanWithoutBundles(t *testing.T) {
	dir := t.TempDir()
	output, err := execute(t, "scan", "--dir", dir, "--contract", "acme.Sink", "--suffix", ".jar")
	require.NoError(t, err)
	assert.Contains(t, output, "no bundles ending with .jar")
}

func TestScanMissingDirectory(t *testing.T) {
	_, err := execute(t, "scan", "--dir", filepath.Join(t.TempDir(), "absent"), "--contract", "acme.Sink")
	require.Error(t, err)
}

func TestScanRequiresFlags(t *testing.T) {
	_, err := execute(t, "scan", "--dir", t.TempDir())
	require.Error(t, err)

	_, err = execute(t, "scan", "--dir", t.TempDir(), "--contract", " ")
	require.Error(t, err)
}

func TestVersion(t *testing.T) {
	output, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, output, "spiscan version v0.1.0")
}
