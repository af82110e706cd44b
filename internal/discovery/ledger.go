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

package discovery

import (
	"go.uber.org/multierr"

	"github.com/tochemey/spi/internal/xsync"
)

// Ledger records the descriptor lines that could not be loaded. The key is
// the whole line text with its comment stripped and whitespace trimmed, so
// "kafka=acme.KafkaSink" rather than the identifier alone. It is safe for
// concurrent use.
type Ledger struct {
	errs *xsync.Map[string, error]
}

// NewLedger creates an empty Ledger
func NewLedger() *Ledger {
	return &Ledger{errs: xsync.NewMap[string, error]()}
}

// Record stores err for line. A later error for the same line replaces the earlier one.
func (l *Ledger) Record(line string, err error) {
	l.errs.Set(line, err)
}

// Get returns the error recorded for line
func (l *Ledger) Get(line string) (error, bool) {
	return l.errs.Get(line)
}

// Len returns the number of recorded lines
func (l *Ledger) Len() int {
	return l.errs.Len()
}

// Errors returns a copy of the recorded errors
func (l *Ledger) Errors() map[string]error {
	out := make(map[string]error, l.errs.Len())
	l.errs.Range(func(line string, err error) {
		out[line] = err
	})
	return out
}

// Err combines the recorded errors, ordered by line text. It returns nil
// when nothing was recorded.
func (l *Ledger) Err() error {
	var err error
	for _, line := range xsync.SortedKeys(l.errs) {
		recorded, _ := l.errs.Get(line)
		err = multierr.Append(err, recorded)
	}
	return err
}
