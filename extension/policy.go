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

package extension

import "github.com/tochemey/spi/internal/loading"

// IsolationPolicy decides whether plugin bundles resolve implementations
// only from their own shared objects or from the host process first
type IsolationPolicy = loading.Policy

const (
	// Isolated resolves bundle identifiers only against the bundle's own catalogs
	Isolated = loading.Isolated
	// Shared resolves bundle identifiers against the host catalog first
	Shared = loading.Shared
)

// ParseIsolationPolicy maps a configuration value to an IsolationPolicy.
// "" and "internal", in any case, select Isolated. Any other value selects Shared.
func ParseIsolationPolicy(value string) IsolationPolicy {
	return loading.ParsePolicy(value)
}
