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

package descriptor

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	content := `
# sinks shipped with the server
console=acme.ConsoleSink
kafka, kafka-v2 = acme.KafkaSink   # primary broker

acme.NullSink
   # indented comment
noop=
=acme.Orphan
rocket,,mq ,=acme.RocketSink
`
	entries, err := Parse(strings.NewReader(content))
	require.NoError(t, err)
	require.Len(t, entries, 5)

	assert.Equal(t, Entry{Line: 3, Text: "console=acme.ConsoleSink", Names: []string{"console"}, Identifier: "acme.ConsoleSink"}, entries[0])
	assert.Equal(t, []string{"kafka", "kafka-v2"}, entries[1].Names)
	assert.Equal(t, "acme.KafkaSink", entries[1].Identifier)
	assert.Equal(t, 4, entries[1].Line)
	assert.Equal(t, []string{"acme.NullSink"}, entries[2].Names)
	assert.Equal(t, "acme.NullSink", entries[2].Identifier)
	assert.Equal(t, "=acme.Orphan", entries[3].Identifier)
	assert.Equal(t, []string{"=acme.Orphan"}, entries[3].Names)
	assert.Equal(t, []string{"rocket", "mq"}, entries[4].Names)
	assert.Equal(t, "acme.RocketSink", entries[4].Identifier)
}

func TestParseTrailingComment(t *testing.T) {
	withComment, ok := ParseLine("impl.Foo # note")
	require.True(t, ok)
	withoutComment, ok := ParseLine("impl.Foo")
	require.True(t, ok)
	assert.Equal(t, withoutComment, withComment)

	withComment, ok = ParseLine("foo=impl.Foo#note")
	require.True(t, ok)
	withoutComment, ok = ParseLine("foo=impl.Foo")
	require.True(t, ok)
	assert.Equal(t, withoutComment, withComment)
}

func TestParseLineSkipped(t *testing.T) {
	for _, line := range []string{"", "   ", "# only a comment", "name=", "name=   # nothing"} {
		_, ok := ParseLine(line)
		assert.False(t, ok, "line %q", line)
	}
}

func TestSplitNames(t *testing.T) {
	assert.Nil(t, SplitNames("  "))
	assert.Equal(t, []string{"a"}, SplitNames("a"))
	assert.Equal(t, []string{"a", "b", "c"}, SplitNames(" a , b,,c "))
	assert.Equal(t, []string{"a", "b"}, SplitNames("a,b,a"))
	assert.Equal(t, []string{"a"}, SplitNames(",a"))
}

func TestParseBytes(t *testing.T) {
	entries, err := ParseBytes([]byte("a=acme.A\r\nb=acme.B\r\n"))
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "acme.A", entries[0].Identifier)
	assert.Equal(t, "acme.B", entries[1].Identifier)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("read failure")
}

func TestParseReadError(t *testing.T) {
	entries, err := Parse(failingReader{})
	require.EqualError(t, err, "read failure")
	require.Nil(t, entries)
}

func TestParseReadErrorKeepsEntries(t *testing.T) {
	reader := io.MultiReader(strings.NewReader("a=acme.A\nb=acme.B\n"), failingReader{})
	entries, err := Parse(reader)
	require.EqualError(t, err, "read failure")
	require.Len(t, entries, 2)
	assert.Equal(t, "acme.A", entries[0].Identifier)
	assert.Equal(t, "acme.B", entries[1].Identifier)
}

func TestParseLongLine(t *testing.T) {
	long := "huge=acme." + strings.Repeat("x", 70*1024)
	content := "a=acme.A\r\n" + long + "\r\nb=acme.B"
	entries, err := ParseBytes([]byte(content))
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "acme.A", entries[0].Identifier)
	assert.Equal(t, 1, entries[0].Line)
	assert.Equal(t, []string{"huge"}, entries[1].Names)
	assert.Len(t, entries[1].Identifier, len(long)-len("huge="))
	assert.Equal(t, "acme.B", entries[2].Identifier)
	assert.Equal(t, 3, entries[2].Line)
}

func TestSplitFields(t *testing.T) {
	assert.Nil(t, SplitFields("  "))
	assert.Equal(t, []string{"a"}, SplitFields("a"))
	assert.Equal(t, []string{"a"}, SplitFields("a,"))
	assert.Equal(t, []string{"a"}, SplitFields("a , ,"))
	assert.Equal(t, []string{"a", "a"}, SplitFields("a,a"))
	assert.Equal(t, []string{"", "a"}, SplitFields(",a"))
	assert.Equal(t, []string{"a", "b"}, SplitFields(" a ,, b "))
}
