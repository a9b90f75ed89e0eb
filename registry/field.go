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

// Deprecation contains information about deprecation for a field or an enum value. A nil
// *Deprecation means not deprecated.
//
// See https://spec.graphql.org/October2021/#sec--deprecated.
type Deprecation struct {
	// Reason provides a description of why the subject is deprecated.
	Reason string
}

// Defined returns true if the deprecation is active.
func (d *Deprecation) Defined() bool {
	return d != nil
}

// ComplexityFunc computes the complexity of a field from the complexity of its selection set and
// its argument values. The registry stores it without calling it.
type ComplexityFunc func(childComplexity int, args map[string]interface{}) (int, error)

// Complexity is either a constant or computed by Func when Func is non-nil.
type Complexity struct {
	Const int
	Func  ComplexityFunc
}

// Field is a field in an Object or an Interface.
//
// Reference: https://spec.graphql.org/October2021/#sec-Objects
type Field struct {
	// Name of the field
	Name string

	// Description of the field
	Description string

	// Args specifies the arguments taken by the field.
	Args InputValueMap

	// Type is the type reference string of the value yielded by the field (e.g., `[User!]!`).
	Type string

	// Deprecation is non-nil when the field is tagged as deprecated.
	Deprecation *Deprecation

	CacheControl CacheControl

	// Federation attributes
	External     bool
	Requires     string
	Provides     string
	Shareable    bool
	OverrideFrom string

	// Visible decides whether the field can be observed by a viewer. Nil means always visible.
	Visible VisibleFunc

	Inaccessible bool
	Tags         []string

	// Complexity is consumed by the query layer. Nil means the default complexity.
	Complexity *Complexity
}

// AddArg adds an argument to the field and returns the field for chaining.
func (f *Field) AddArg(arg *InputValue) *Field {
	f.Args.Set(arg.Name, arg)
	return f
}

// InputValue is an argument of a field or directive, or a field of an Input Object.
//
// Reference: https://spec.graphql.org/October2021/#InputValueDefinition
type InputValue struct {
	// Name of the input value
	Name string

	// Description of the input value
	Description string

	// Type is the type reference string of the input value.
	Type string

	// DefaultValue is the GraphQL literal used when no value is given. Empty means no default value.
	DefaultValue string

	// Visible decides whether the input value can be observed by a viewer. Nil means always visible.
	Visible VisibleFunc

	Inaccessible bool
	Tags         []string

	// IsSecret hides the value from logs.
	IsSecret bool
}

// HasDefaultValue returns true if the input value has a default value.
func (v *InputValue) HasDefaultValue() bool {
	return len(v.DefaultValue) > 0
}

// EnumValue is a value of an Enum.
type EnumValue struct {
	// Name of enum value.
	Name string

	// Description of the enum value
	Description string

	// Deprecation is non-nil when the value is tagged as deprecated.
	Deprecation *Deprecation

	Visible      VisibleFunc
	Inaccessible bool
	Tags         []string
}
