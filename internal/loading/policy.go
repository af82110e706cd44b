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

import "strings"

// Policy decides which catalogs a bundle context resolves identifiers against
type Policy int

const (
	// Isolated resolves identifiers only against the bundle's own catalogs
	Isolated Policy = iota
	// Shared resolves identifiers against the host catalog first, then the bundle's
	Shared
)

// internalPolicy is the configuration value naming the isolated policy
const internalPolicy = "internal"

// ParsePolicy maps a configuration value to a Policy.
// An empty value or "internal", in any case, selects Isolated. Anything
// else selects Shared.
func ParsePolicy(value string) Policy {
	value = strings.TrimSpace(value)
	if value == "" || strings.EqualFold(value, internalPolicy) {
		return Isolated
	}
	return Shared
}

// String returns the policy name
func (p Policy) String() string {
	switch p {
	case Isolated:
		return "isolated"
	case Shared:
		return "shared"
	default:
		return "unknown"
	}
}
