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
	"github.com/vektah/gqlparser/v2/ast"
)

// MetaDirective describes a directive declared in the schema.
//
// Reference: https://spec.graphql.org/October2021/#sec-Type-System.Directives
type MetaDirective struct {
	Name        string
	Description string

	// Locations where the directive may be applied
	Locations []ast.DirectiveLocation

	// Args of the directive; Their types are roots when pruning unused types.
	Args InputValueMap

	IsRepeatable bool
	Visible      VisibleFunc
}

func builtinDirectives() []*MetaDirective {
	include := &MetaDirective{
		Name:        "include",
		Description: "Directs the executor to include this field or fragment only when the `if` argument is true.",
		Locations: []ast.DirectiveLocation{
			ast.LocationField,
			ast.LocationFragmentSpread,
			ast.LocationInlineFragment,
		},
	}
	include.Args.Set("if", &InputValue{
		Name:        "if",
		Description: "Included when true.",
		Type:        "Boolean!",
	})

	skip := &MetaDirective{
		Name:        "skip",
		Description: "Directs the executor to skip this field or fragment when the `if` argument is true.",
		Locations: []ast.DirectiveLocation{
			ast.LocationField,
			ast.LocationFragmentSpread,
			ast.LocationInlineFragment,
		},
	}
	skip.Args.Set("if", &InputValue{
		Name:        "if",
		Description: "Skipped when true.",
		Type:        "Boolean!",
	})

	deprecated := &MetaDirective{
		Name:        "deprecated",
		Description: "Marks an element of a GraphQL schema as no longer supported.",
		Locations: []ast.DirectiveLocation{
			ast.LocationFieldDefinition,
			ast.LocationArgumentDefinition,
			ast.LocationInputFieldDefinition,
			ast.LocationEnumValue,
		},
	}
	deprecated.Args.Set("reason", &InputValue{
		Name:         "reason",
		Type:         "String",
		DefaultValue: `"No longer supported"`,
	})

	specifiedBy := &MetaDirective{
		Name:        "specifiedBy",
		Description: "Exposes a URL that specifies the behaviour of this scalar.",
		Locations:   []ast.DirectiveLocation{ast.LocationScalar},
	}
	specifiedBy.Args.Set("url", &InputValue{
		Name:        "url",
		Description: "The URL that specifies the behaviour of this scalar.",
		Type:        "String!",
	})

	return []*MetaDirective{include, skip, deprecated, specifiedBy}
}
