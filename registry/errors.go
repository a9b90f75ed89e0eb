/**
 * Copyright (c) 2018, The Artemis Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package registry

import (
	"errors"
	"fmt"
	"strings"

	"github.com/botobag/typereg/internal/util"
)

// Op describes an operation, usually as the package and method, such as "registry.CreateType".
type Op string

// ErrKind defines the kind of error this is.
type ErrKind uint8

// Enumeration of ErrKind
const (
	ErrKindOther       ErrKind = iota // Unclassified error. This value is not printed in the error message.
	ErrKindConflict                   // A name is bound to two different definitions.
	ErrKindComposition                // A union or composite interface cannot be composed from its members.
	ErrKindValidation                 // The registered schema is inconsistent.
	ErrKindInternal                   // Internal error
)

func (k ErrKind) String() string {
	switch k {
	case ErrKindOther:
		return "other error"
	case ErrKindConflict:
		return "conflict error"
	case ErrKindComposition:
		return "composition error"
	case ErrKindValidation:
		return "validation error"
	case ErrKindInternal:
		return "internal error"
	}
	return "unknown error kind"
}

// An Error describes a failure found while building a type registry. Every such failure is fatal:
// a malformed schema fails the build and is never served.
//
// Error usually wraps one of the typed causes defined in this file (e.g., NameKindMismatchError)
// which can be extracted with errors.As.
type Error struct {
	// Message describes the error for debugging purposes.
	Message string

	// The underlying error that triggered this one
	Err error

	// Op is the operation being performed, usually the name of the method being invoked.
	Op Op

	// Kind is the class of error
	Kind ErrKind
}

// Error implements Go error interface.
var _ error = (*Error)(nil)

// NewError builds an error value from arguments. Inspired by the design of upspin.io/errors [0].
//
// [0]: https://commandcenter.blogspot.com/2017/12/error-handling-in-upspin.html.
func NewError(message string, args ...interface{}) error {
	e := &Error{
		Message: message,
	}

	for _, arg := range args {
		switch arg := arg.(type) {
		case error:
			e.Err = arg

		case Op:
			e.Op = arg

		case ErrKind:
			e.Kind = arg

		default:
			return fmt.Errorf("unknown type %T, value %v in error call", arg, arg)
		}
	}

	// Pull kind from underlying error.
	if e.Kind == ErrKindOther {
		var prev *Error
		if errors.As(e.Err, &prev) {
			e.Kind = prev.Kind
		}
	}

	return e
}

// WrapError is a convenient wrapper to build an Error value from an underlying error with a
// message.
func WrapError(err error, message string) error {
	return NewError(message, err)
}

// WrapErrorf is similar to WrapError but with the format specifier.
func WrapErrorf(err error, format string, args ...interface{}) error {
	return NewError(fmt.Sprintf(format, args...), err)
}

// Error implements Go's error interface.
func (e *Error) Error() string {
	var b strings.Builder
	e.printError(&b, nil)
	return b.String()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) printError(b *strings.Builder, nextErr *Error) {
	initialLen := b.Len()

	// pad appends str to the buffer if the buffer already has some data.
	pad := func(str string) {
		if b.Len() == initialLen {
			return
		}
		b.WriteString(str)
	}

	if len(e.Op) > 0 {
		b.WriteString(string(e.Op))
	}

	if len(e.Message) > 0 {
		pad(": ")
		b.WriteString(e.Message)
	}

	if e.Kind != ErrKindOther {
		// Don't print kind if the next error has the same kind as ours.
		if nextErr == nil || nextErr.Kind != e.Kind {
			pad(": ")
			b.WriteString(e.Kind.String())
		}
	}

	if e.Err != nil {
		if prev, ok := e.Err.(*Error); ok {
			// Indent on new line if we are cascading non-empty Error.
			pad(":\n  ")
			prev.printError(b, e)
		} else {
			pad(": ")
			b.WriteString(e.Err.Error())
		}
	}
}

//===----------------------------------------------------------------------------------------====//
// Causes
//===----------------------------------------------------------------------------------------====//

var (
	// ErrMissingQueryRoot is returned from Finish when the query root type was never registered.
	ErrMissingQueryRoot = errors.New("query root type is not registered")

	// ErrRegistryFinished is returned when the registry is modified after Finish.
	ErrRegistryFinished = errors.New("registry has been finished and is read-only")
)

// NameKindMismatchError is raised when a name is registered as a kind different from the one it
// was first bound to.
type NameKindMismatchError struct {
	Name      string
	Existing  TypeKind
	Requested TypeKind
}

func (e *NameKindMismatchError) Error() string {
	return fmt.Sprintf("register %q as %s, but it is already registered as %s",
		e.Name, e.Requested, e.Existing)
}

// NameIdentityMismatchError is raised when two distinct definitions claim the same GraphQL name.
// It can be bypassed for a given name with Config.IgnoreNameConflicts.
type NameIdentityMismatchError struct {
	Name            string
	ExistingOrigin  string
	RequestedOrigin string
}

func (e *NameIdentityMismatchError) Error() string {
	return fmt.Sprintf("%q and %q have the same GraphQL name %q",
		e.ExistingOrigin, e.RequestedOrigin, e.Name)
}

// DuplicateMemberError is raised when a union or composite interface lists the same member twice.
type DuplicateMemberError struct {
	Union  string
	Member string
}

func (e *DuplicateMemberError) Error() string {
	return fmt.Sprintf("%s: type %s is already used in another member", e.Union, e.Member)
}

// EmptyUnionError is raised when a union resolves to no possible types.
type EmptyUnionError struct {
	Union string
}

func (e *EmptyUnionError) Error() string {
	return fmt.Sprintf("union %s must include one or more unique member types", e.Union)
}

// InvalidMemberError is raised when a member of a union cannot contribute possible types.
type InvalidMemberError struct {
	Union  string
	Member string
	Reason string
}

func (e *InvalidMemberError) Error() string {
	return fmt.Sprintf("%s: invalid member %s: %s", e.Union, e.Member, e.Reason)
}

// UnknownTypeError is raised when a registered type refers to a name that was never registered.
type UnknownTypeError struct {
	Name         string
	ReferencedBy string

	// Suggestions contains registered names that are similar to Name.
	Suggestions []string
}

func (e *UnknownTypeError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "unknown type %q", e.Name)
	if len(e.ReferencedBy) > 0 {
		fmt.Fprintf(&b, " referenced by %q", e.ReferencedBy)
	}
	if len(e.Suggestions) > 0 {
		b.WriteString(". Did you mean ")
		b.WriteString(util.OrList(e.Suggestions, 5, true))
		b.WriteString("?")
	}
	return b.String()
}
