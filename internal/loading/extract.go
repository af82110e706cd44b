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

package loading

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zip"
	"github.com/zeebo/xxh3"
)

// sharedObjectSuffix marks bundle entries holding Go shared objects
const sharedObjectSuffix = ".so"

// DefaultExtractDir returns the directory shared objects are extracted to
func DefaultExtractDir() string {
	return filepath.Join(os.TempDir(), "spi-plugins")
}

// extract writes the content of entry to dir under a name derived from its
// hash and returns the written path. Identical content maps to the same
// file and is written only once.
func extract(entry *zip.File, dir string) (string, error) {
	reader, err := entry.Open()
	if err != nil {
		return "", err
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	target := filepath.Join(dir, fmt.Sprintf("%016x%s", xxh3.Hash(data), sharedObjectSuffix))
	if info, err := os.Stat(target); err == nil && info.Mode().IsRegular() && info.Size() == int64(len(data)) {
		return target, nil
	}

	temp, err := os.CreateTemp(dir, ".extract-*")
	if err != nil {
		return "", err
	}
	tempName := temp.Name()

	if _, err := temp.Write(data); err != nil {
		_ = temp.Close()
		_ = os.Remove(tempName)
		return "", err
	}
	if err := temp.Close(); err != nil {
		_ = os.Remove(tempName)
		return "", err
	}

	if err := os.Rename(tempName, target); err != nil {
		_ = os.Remove(tempName)
		return "", err
	}
	return target, nil
}
