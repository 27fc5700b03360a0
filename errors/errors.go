// SPDX-License-Identifier: MIT
// Package errors provides error handling for atomistic.
//
// This package re-exports github.com/cockroachdb/errors and adds the error
// taxonomy shared by every other package of the module:
//
//	ErrSchema      - malformed shapes and lengths, raised at construction.
//	ErrConsistency - declared data disagrees with computed data (kind tags,
//	                 duplicate or orphan kinds, degenerate periodic cell).
//	ErrIntegrity   - a value required by an algorithm is missing or non-finite.
//	ErrUsage       - unknown mode or option; the accepted set is attached as hint.
//	ErrCapability  - an operation needs an external collaborator that is not
//	                 part of this module (file formats, foreign object models).
//
// Every taxonomy error is a *FieldError carrying the offending field, the
// offending value and the violated constraint, so callers can react on
// structure rather than on message text:
//
//	var fe *errors.FieldError
//	if errors.As(err, &fe) && errors.Is(err, errors.ErrConsistency) {
//	    log.Printf("field %s rejected: %s", fe.Field, fe.Constraint)
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	"fmt"
	"strings"

	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New            = crdb.New
	Newf           = crdb.Newf
	Wrap           = crdb.Wrap
	Wrapf          = crdb.Wrapf
	WithStack      = crdb.WithStack
	WithStackDepth = crdb.WithStackDepth
	WithMessage    = crdb.WithMessage
	WithMessagef   = crdb.WithMessagef
	Mark           = crdb.Mark
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is            = crdb.Is
	IsAny         = crdb.IsAny
	As            = crdb.As
	Unwrap        = crdb.Unwrap
	UnwrapAll     = crdb.UnwrapAll
	GetAllHints   = crdb.GetAllHints
	GetAllDetails = crdb.GetAllDetails
	FlattenHints  = crdb.FlattenHints
)

// Taxonomy classes. Match with Is; never compare messages.
var (
	ErrSchema      = crdb.New("schema error")
	ErrConsistency = crdb.New("consistency error")
	ErrIntegrity   = crdb.New("integrity error")
	ErrUsage       = crdb.New("usage error")
	ErrCapability  = crdb.New("capability error")
)

// FieldError is the structured payload of every taxonomy error.
type FieldError struct {
	// Class is one of the taxonomy sentinels above.
	Class error
	// Field names the offending input (e.g. "cell", "sites[2].weight").
	Field string
	// Value is the offending value as received.
	Value interface{}
	// Constraint describes what was expected.
	Constraint string

	sentinel error
}

// Error renders "<class>: <field>=<value>: <constraint>".
func (e *FieldError) Error() string {
	var b strings.Builder
	if e.Class != nil {
		b.WriteString(e.Class.Error())
		b.WriteString(": ")
	}
	b.WriteString(e.Field)
	if e.Value != nil {
		fmt.Fprintf(&b, "=%v", e.Value)
	}
	if e.Constraint != "" {
		b.WriteString(": ")
		b.WriteString(e.Constraint)
	}

	return b.String()
}

// Unwrap exposes the class so Is(err, ErrSchema) and friends hold.
func (e *FieldError) Unwrap() error { return e.Class }

// Is matches the package sentinel the error was built with, so the standard
// library errors.Is agrees with the crdb mark.
func (e *FieldError) Is(target error) bool { return e.sentinel != nil && e.sentinel == target }

// newFieldError builds the payload and attaches the caller's stack.
func newFieldError(class error, field string, value interface{}, constraint string) error {
	return crdb.WithStackDepth(&FieldError{
		Class:      class,
		Field:      field,
		Value:      value,
		Constraint: constraint,
	}, 2)
}

// Schema reports a malformed shape or length.
func Schema(field string, value interface{}, constraint string) error {
	return newFieldError(ErrSchema, field, value, constraint)
}

// Consistency reports declared data that disagrees with computed data.
func Consistency(field string, value interface{}, constraint string) error {
	return newFieldError(ErrConsistency, field, value, constraint)
}

// Integrity reports a missing or non-finite value required by an algorithm.
func Integrity(field string, value interface{}, constraint string) error {
	return newFieldError(ErrIntegrity, field, value, constraint)
}

// Usage reports an unknown mode or option. The accepted values are listed in
// the constraint and attached as a hint.
func Usage(field string, value interface{}, accepted ...string) error {
	constraint := "must be one of [" + strings.Join(accepted, " ") + "]"
	err := newFieldError(ErrUsage, field, value, constraint)
	if len(accepted) > 0 {
		err = crdb.WithHintf(err, "accepted values: %s", strings.Join(accepted, ", "))
	}

	return err
}

// Capability reports that the named operation needs an unavailable collaborator.
func Capability(operation string, collaborator string) error {
	return newFieldError(ErrCapability, operation, nil, collaborator+" is not available in this module")
}

// Classed builds a package-level sentinel belonging to a taxonomy class,
// so both the sentinel and the class match with Is.
//
//	var ErrBadThreshold = errors.Classed("cluster: threshold must be finite and >= 0", errors.ErrUsage)
func Classed(msg string, class error) error {
	return &classedError{msg: msg, class: class}
}

// classedError is a sentinel that unwraps to its class. Its own message and
// type form its mark, keeping sentinels of one class apart.
type classedError struct {
	msg   string
	class error
}

func (e *classedError) Error() string { return e.msg }

func (e *classedError) Unwrap() error { return e.class }

// With wraps a classed sentinel with a FieldError payload: Is matches the
// sentinel, its class, and As recovers the *FieldError.
func With(sentinel error, field string, value interface{}, constraint string) error {
	class := classOf(sentinel)
	fe := &FieldError{Class: class, Field: field, Value: value, Constraint: constraint, sentinel: sentinel}

	return crdb.WithStackDepth(crdb.Mark(fe, sentinel), 1)
}

// classOf finds the taxonomy class a sentinel was marked with.
func classOf(sentinel error) error {
	for _, c := range []error{ErrSchema, ErrConsistency, ErrIntegrity, ErrUsage, ErrCapability} {
		if crdb.Is(sentinel, c) {
			return c
		}
	}

	return nil
}
