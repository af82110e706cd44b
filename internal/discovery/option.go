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
	"strings"

	"github.com/tochemey/spi/log"
)

// Option configures an Engine
type Option interface {
	// Apply sets the Option value of an Engine.
	Apply(engine *Engine)
}

var _ Option = OptionFunc(nil)

// OptionFunc implements the Option interface.
type OptionFunc func(*Engine)

// Apply applies the Engine's option
func (f OptionFunc) Apply(engine *Engine) {
	f(engine)
}

// WithBaseDir sets the directory plugin directory names are relative to.
// The running executable's directory is used when it is not set.
func WithBaseDir(dir string) Option {
	return OptionFunc(func(engine *Engine) {
		engine.baseDir = dir
	})
}

// WithBundleSuffix sets the file name suffix of plugin bundles
func WithBundleSuffix(suffix string) Option {
	return OptionFunc(func(engine *Engine) {
		if suffix != "" {
			engine.suffix = suffix
		}
	})
}

// WithNamespaces sets the descriptor namespaces, in scan order
func WithNamespaces(namespaces ...string) Option {
	return OptionFunc(func(engine *Engine) {
		var cleaned []string
		for _, namespace := range namespaces {
			namespace = strings.TrimSpace(namespace)
			if namespace != "" {
				cleaned = append(cleaned, namespace)
			}
		}
		if len(cleaned) > 0 {
			engine.namespaces = cleaned
		}
	})
}

// WithLogger sets the logger
func WithLogger(logger log.Logger) Option {
	return OptionFunc(func(engine *Engine) {
		if logger != nil {
			engine.logger = logger
		}
	})
}
