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

import (
	"reflect"
	"regexp"
	"strings"

	gerrors "github.com/tochemey/spi/errors"
	"github.com/tochemey/spi/internal/descriptor"
	"github.com/tochemey/spi/internal/validation"
)

// defaultNameValue is the name that selects a contract's default extension
const defaultNameValue = "true"

// contractNamePattern matches names usable as a descriptor resource key
var contractNamePattern = regexp.MustCompile(`^[^\s\\]+$`)

// Contract is an interface type declared extensible in a Registry
type Contract struct {
	rtype       reflect.Type
	name        string
	defaultName string
}

// Type returns the contract interface type
func (c *Contract) Type() reflect.Type {
	return c.rtype
}

// Name returns the fully-qualified contract name descriptor resources are named after
func (c *Contract) Name() string {
	return c.name
}

// DefaultName returns the name of the default extension, if any
func (c *Contract) DefaultName() string {
	return c.defaultName
}

// hasDefault reports whether the contract names a usable default extension
func (c *Contract) hasDefault() bool {
	return c.defaultName != "" && c.defaultName != defaultNameValue
}

func (c *Contract) sameAs(other *Contract) bool {
	return c.rtype == other.rtype && c.name == other.name && c.defaultName == other.defaultName
}

// ContractOption configures a contract at declaration time
type ContractOption func(*Contract)

// WithDefaultName sets the extension returned by DefaultExtension and by
// the "true" name. At most one name is allowed.
func WithDefaultName(name string) ContractOption {
	return func(c *Contract) {
		c.defaultName = name
	}
}

// WithContractName overrides the fully-qualified name descriptor resources
// are looked up with. By default it is the package path and the type name
// joined with a dot.
func WithContractName(name string) ContractOption {
	return func(c *Contract) {
		c.name = strings.TrimSpace(name)
	}
}

// Declare marks the interface type T extensible in r.
// Declaring the same contract twice with identical settings is a no-op.
func Declare[T any](r *Registry, opts ...ContractOption) (*Contract, error) {
	return r.Declare(reflect.TypeFor[T](), opts...)
}

// MustDeclare is like Declare but panics on error
func MustDeclare[T any](r *Registry, opts ...ContractOption) *Contract {
	contract, err := Declare[T](r, opts...)
	if err != nil {
		panic(err)
	}
	return contract
}

// Declare marks the interface type rtype extensible.
func (r *Registry) Declare(rtype reflect.Type, opts ...ContractOption) (*Contract, error) {
	if err := requireInterface(rtype); err != nil {
		return nil, err
	}

	contract := &Contract{
		rtype: rtype,
		name:  qualifiedName(rtype),
	}
	for _, opt := range opts {
		opt(contract)
	}

	names := descriptor.SplitFields(contract.defaultName)
	if err := validation.New(validation.FailFast()).
		AddValidator(validation.NewPatternValidator(contractNamePattern, contract.name, gerrors.NewErrInvalidContractName(contract.name))).
		AddAssertion(len(names) <= 1, gerrors.NewErrMultipleDefaultNames(contract.name, names)).
		Validate(); err != nil {
		return nil, err
	}
	if len(names) == 1 {
		contract.defaultName = names[0]
	} else {
		contract.defaultName = ""
	}

	actual, loaded := r.contracts.LoadOrStore(rtype, func() *Contract {
		return contract
	})
	if loaded && !actual.sameAs(contract) {
		return nil, gerrors.NewErrContractConflict(contract.name)
	}
	return actual, nil
}

// Contract returns the declaration of rtype
func (r *Registry) Contract(rtype reflect.Type) (*Contract, bool) {
	return r.contracts.Get(rtype)
}

func requireInterface(rtype reflect.Type) error {
	if rtype == nil {
		return gerrors.NewErrNotInterface("<nil>")
	}
	if rtype.Kind() != reflect.Interface {
		return gerrors.NewErrNotInterface(rtype.String())
	}
	return nil
}

func qualifiedName(rtype reflect.Type) string {
	if rtype.PkgPath() == "" || rtype.Name() == "" {
		return rtype.String()
	}
	return rtype.PkgPath() + "." + rtype.Name()
}
