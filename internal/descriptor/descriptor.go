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

// Package descriptor parses extension descriptor resources.
//
// A descriptor is UTF-8 text with one entry per line:
//
//	# comment
//	kafka=github.com/acme/sinks.KafkaSink
//	console, stdout = github.com/acme/sinks.ConsoleSink   # trailing comment
//	github.com/acme/sinks.NullSink
//
// Everything from the first '#' is ignored. A line with '=' lists one or
// more comma-separated aliases before it and the implementation
// identifier after it. A bare line registers the identifier under its own
// name.
package descriptor

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"regexp"
	"strings"

	goset "github.com/deckarep/golang-set/v2"
)

// nameSeparator splits an alias list
var nameSeparator = regexp.MustCompile(`\s*,+\s*`)

// Entry is one parsed descriptor line
type Entry struct {
	// Line is the 1-based line number in the resource
	Line int
	// Text is the line with its comment stripped and whitespace trimmed
	Text string
	// Names is the non-empty, de-duplicated alias list in declaration order
	Names []string
	// Identifier names the implementation to resolve
	Identifier string
}

// Parse reads every entry of a descriptor resource. Lines have no length
// limit. On a read failure the entries parsed so far are returned along
// with the error.
func Parse(r io.Reader) ([]Entry, error) {
	var entries []Entry
	reader := bufio.NewReader(r)
	number := 0
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			number++
			line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
			if entry, ok := ParseLine(line); ok {
				entry.Line = number
				entries = append(entries, entry)
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return entries, nil
			}
			return entries, err
		}
	}
}

// ParseBytes parses an in-memory descriptor resource.
func ParseBytes(content []byte) ([]Entry, error) {
	return Parse(bytes.NewReader(content))
}

// ParseLine parses a single descriptor line. It returns false for blank
// and comment-only lines, and for alias lists without an identifier.
func ParseLine(line string) (Entry, bool) {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return Entry{}, false
	}

	identifier := line
	var names []string
	if i := strings.IndexByte(line, '='); i > 0 {
		names = SplitNames(line[:i])
		identifier = strings.TrimSpace(line[i+1:])
	}
	if identifier == "" {
		return Entry{}, false
	}
	if len(names) == 0 {
		names = []string{identifier}
	}

	return Entry{
		Text:       line,
		Names:      names,
		Identifier: identifier,
	}, true
}

// SplitNames splits a comma-separated alias list, dropping empty and
// repeated names while keeping the declaration order.
func SplitNames(value string) []string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}

	parts := nameSeparator.Split(value, -1)
	seen := goset.NewThreadUnsafeSetWithSize[string](len(parts))
	names := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" || !seen.Add(part) {
			continue
		}
		names = append(names, part)
	}
	return names
}

// SplitFields splits a comma-separated list without dropping repeated or
// leading empty fields. Trailing empty fields are removed.
func SplitFields(value string) []string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}

	parts := nameSeparator.Split(value, -1)
	end := len(parts)
	for end > 0 && strings.TrimSpace(parts[end-1]) == "" {
		end--
	}
	return parts[:end]
}
