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

// Package typeref implements the type reference grammar used by field, argument and input field
// descriptors: a bare name is a nullable named type, `[...]` wraps a list and a trailing `!` marks
// the type non-null. For example, `[[Int!]!]` is a nullable list of non-null lists of non-null Int.
package typeref

import (
	"strings"
)

// Kind classifies the outermost wrapper of a type reference.
type Kind uint8

// Enumeration of Kind
const (
	KindNamed   Kind = iota // A bare name such as `Int`
	KindList                // `[...]`
	KindNonNull             // A trailing `!`
)

func (k Kind) String() string {
	switch k {
	case KindNamed:
		return "named"
	case KindList:
		return "list"
	case KindNonNull:
		return "non-null"
	}
	return "unknown"
}

// Name is a type reference string split at its outermost wrapper. For KindNamed, Inner is the type
// name itself. For KindList and KindNonNull, Inner is the wrapped type reference.
type Name struct {
	Kind  Kind
	Inner string
}

// Classify splits typeRef at its outermost wrapper without validating the rest of the string.
//
//	Classify("[Int!]!") // => {KindNonNull, "[Int!]"}
//	Classify("[Int!]")  // => {KindList, "Int!"}
//	Classify("Int")     // => {KindNamed, "Int"}
func Classify(typeRef string) Name {
	if strings.HasSuffix(typeRef, "!") {
		return Name{KindNonNull, typeRef[:len(typeRef)-1]}
	}
	if len(typeRef) >= 2 && typeRef[0] == '[' && typeRef[len(typeRef)-1] == ']' {
		return Name{KindList, typeRef[1 : len(typeRef)-1]}
	}
	return Name{KindNamed, typeRef}
}

// String renders the name back into a type reference string.
func (name Name) String() string {
	switch name.Kind {
	case KindList:
		return "[" + name.Inner + "]"
	case KindNonNull:
		return name.Inner + "!"
	default:
		return name.Inner
	}
}

// ConcreteTypeName strips all list and non-null wrappers from typeRef and returns the named type.
func ConcreteTypeName(typeRef string) string {
	for {
		name := Classify(typeRef)
		if name.Kind == KindNamed {
			return name.Inner
		}
		typeRef = name.Inner
	}
}

// IsNonNull returns true if the outermost wrapper of typeRef is non-null.
func IsNonNull(typeRef string) bool {
	return Classify(typeRef).Kind == KindNonNull
}

// UnwrapNonNull removes one non-null wrapper from typeRef if there is one.
func UnwrapNonNull(typeRef string) string {
	if name := Classify(typeRef); name.Kind == KindNonNull {
		return name.Inner
	}
	return typeRef
}

// IsList returns true if typeRef is a list, possibly wrapped in non-null.
func IsList(typeRef string) bool {
	switch name := Classify(typeRef); name.Kind {
	case KindList:
		return true
	case KindNonNull:
		return IsList(name.Inner)
	default:
		return false
	}
}

// IsSubtype returns true if a value of type sub can be used where superType is expected. Named
// types are compared by name only; abstract type membership is not considered here.
func IsSubtype(superType string, sub string) bool {
	superName, subName := Classify(superType), Classify(sub)

	if subName.Kind == KindNonNull {
		if superName.Kind == KindNonNull {
			return IsSubtype(superName.Inner, subName.Inner)
		}
		// A nullable super type also accepts non-null values.
		return IsSubtype(superType, subName.Inner)
	}

	switch {
	case superName.Kind == KindNamed && subName.Kind == KindNamed:
		return superName.Inner == subName.Inner

	case superName.Kind == KindList && subName.Kind == KindList:
		return IsSubtype(superName.Inner, subName.Inner)
	}

	// Either super is non-null while sub is nullable, or list and named are mixed.
	return false
}
