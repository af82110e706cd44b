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

package errors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotInterface is returned when a contract type is not an interface.
	ErrNotInterface = errors.New("extension type is not an interface")

	// ErrNotExtensible is returned when a loader is requested for an interface
	// that has not been declared as an extension contract.
	ErrNotExtensible = errors.New("extension type is not declared extensible")

	// ErrMultipleDefaultNames is returned when a contract declares more than one default extension name.
	ErrMultipleDefaultNames = errors.New("more than one default extension name")

	// ErrContractConflict is returned when a contract is declared twice with different settings.
	ErrContractConflict = errors.New("extension contract is already declared with different settings")

	// ErrEmptyName is returned when an extension is requested without a name.
	ErrEmptyName = errors.New("extension name is required")

	// ErrExtensionNotFound is returned when no implementation is registered under the requested name.
	ErrExtensionNotFound = errors.New("extension not found")

	// ErrInstantiationFailed is returned when an implementation could not be constructed.
	ErrInstantiationFailed = errors.New("extension instantiation failed")

	// ErrDuplicateExtension is returned when two distinct implementations claim the same name.
	ErrDuplicateExtension = errors.New("duplicate extension name")

	// ErrUnresolvableIdentifier is returned when a descriptor line names an implementation
	// that no loading context can resolve.
	ErrUnresolvableIdentifier = errors.New("implementation identifier could not be resolved")

	// ErrNotSubtype is returned when an implementation does not satisfy its contract.
	ErrNotSubtype = errors.New("implementation does not implement the extension contract")

	// ErrInvalidBundle is returned when a plugin bundle cannot be opened as an archive.
	ErrInvalidBundle = errors.New("invalid plugin bundle")

	// ErrInvalidFactory is returned when a factory registration is malformed.
	ErrInvalidFactory = errors.New("invalid extension factory")

	// ErrFactoryExists is returned when a factory identifier is registered twice in the same catalog.
	ErrFactoryExists = errors.New("extension factory already registered")

	// ErrInvalidContractName is returned when a contract name cannot be used as a descriptor resource key.
	ErrInvalidContractName = errors.New("invalid contract name")

	// ErrInvalidSymbol is returned when a shared object exports a symbol that is not a catalog.
	ErrInvalidSymbol = errors.New("plugin symbol is not an extension catalog")
)

// NewErrNotInterface formats an ErrNotInterface with the given type name.
func NewErrNotInterface(typeName string) error {
	return fmt.Errorf("type=(%s) %w", typeName, ErrNotInterface)
}

// NewErrNotExtensible formats an ErrNotExtensible with the given type name.
func NewErrNotExtensible(typeName string) error {
	return fmt.Errorf("type=(%s) %w", typeName, ErrNotExtensible)
}

// NewErrMultipleDefaultNames formats an ErrMultipleDefaultNames with the contract and offending names.
func NewErrMultipleDefaultNames(contract string, names []string) error {
	return fmt.Errorf("contract=(%s) names=[%s] %w", contract, strings.Join(names, ", "), ErrMultipleDefaultNames)
}

// NewErrContractConflict formats an ErrContractConflict with the given contract.
func NewErrContractConflict(contract string) error {
	return fmt.Errorf("contract=(%s) %w", contract, ErrContractConflict)
}

// NewErrInvalidContractName formats an ErrInvalidContractName with the given contract name.
func NewErrInvalidContractName(name string) error {
	return fmt.Errorf("contract=(%s) %w", name, ErrInvalidContractName)
}

// NewErrUnresolvableIdentifier formats an ErrUnresolvableIdentifier with the given identifier.
func NewErrUnresolvableIdentifier(identifier string) error {
	return fmt.Errorf("identifier=(%s) %w", identifier, ErrUnresolvableIdentifier)
}

// NewErrNotSubtype formats an ErrNotSubtype with the implementation identifier and the contract.
func NewErrNotSubtype(identifier, contract string) error {
	return fmt.Errorf("identifier=(%s) contract=(%s) %w", identifier, contract, ErrNotSubtype)
}

// NewErrInvalidBundle wraps the archive error with ErrInvalidBundle.
func NewErrInvalidBundle(path string, err error) error {
	return fmt.Errorf("bundle=(%s) %w: %w", path, ErrInvalidBundle, err)
}

// NewErrInvalidFactory formats an ErrInvalidFactory with the factory identifier and the reason.
func NewErrInvalidFactory(identifier, reason string) error {
	return fmt.Errorf("identifier=(%s) %s: %w", identifier, reason, ErrInvalidFactory)
}

// NewErrFactoryExists formats an ErrFactoryExists with the factory identifier.
func NewErrFactoryExists(identifier string) error {
	return fmt.Errorf("identifier=(%s) %w", identifier, ErrFactoryExists)
}

// NewErrInvalidSymbol formats an ErrInvalidSymbol with the symbol name and its actual type.
func NewErrInvalidSymbol(symbol string, actual any) error {
	return fmt.Errorf("symbol=(%s) type=(%T) %w", symbol, actual, ErrInvalidSymbol)
}

// NotFoundError is returned when the requested extension name is unknown for a contract
type NotFoundError struct {
	Contract string
	Name     string
}

// enforce compilation error
var _ error = (*NotFoundError)(nil)

// NewNotFoundError creates an instance of NotFoundError
func NewNotFoundError(contract, name string) *NotFoundError {
	return &NotFoundError{Contract: contract, Name: name}
}

// Error implements the standard error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("extension=(%s) contract=(%s): %s", e.Name, e.Contract, ErrExtensionNotFound)
}

// Is reports whether target is ErrExtensionNotFound
func (e *NotFoundError) Is(target error) bool {
	return target == ErrExtensionNotFound
}

// DuplicateError is returned when two distinct implementations claim the
// same extension name for one contract
type DuplicateError struct {
	Contract  string
	Name      string
	Existing  string
	Candidate string
}

// enforce compilation error
var _ error = (*DuplicateError)(nil)

// NewDuplicateError creates an instance of DuplicateError
func NewDuplicateError(contract, name, existing, candidate string) *DuplicateError {
	return &DuplicateError{
		Contract:  contract,
		Name:      name,
		Existing:  existing,
		Candidate: candidate,
	}
}

// Error implements the standard error interface
func (e *DuplicateError) Error() string {
	return fmt.Sprintf("%s %s name %s on %s and %s", ErrDuplicateExtension, e.Contract, e.Name, e.Existing, e.Candidate)
}

// Is reports whether target is ErrDuplicateExtension
func (e *DuplicateError) Is(target error) bool {
	return target == ErrDuplicateExtension
}

// InstantiationError is returned when an extension constructor fails or panics
type InstantiationError struct {
	Contract string
	Name     string
	err      error
}

// enforce compilation error
var _ error = (*InstantiationError)(nil)

// NewInstantiationError creates an instance of InstantiationError wrapping the constructor failure
func NewInstantiationError(contract, name string, err error) *InstantiationError {
	return &InstantiationError{Contract: contract, Name: name, err: err}
}

// Error implements the standard error interface
func (e *InstantiationError) Error() string {
	return fmt.Sprintf("extension=(%s) contract=(%s): %s: %v", e.Name, e.Contract, ErrInstantiationFailed, e.err)
}

// Is reports whether target is ErrInstantiationFailed
func (e *InstantiationError) Is(target error) bool {
	return target == ErrInstantiationFailed
}

func (e *InstantiationError) Unwrap() error {
	return e.err
}

// PanicError defines the panic error
// wrapping the underlying error
type PanicError struct {
	err error
}

// enforce compilation error
var _ error = (*PanicError)(nil)

// NewPanicError creates an instance of PanicError
func NewPanicError(err error) *PanicError {
	return &PanicError{err}
}

// Error implements the standard error interface
func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.err)
}

func (e *PanicError) Unwrap() error {
	return e.err
}
