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

package typeref

import (
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"
	"github.com/vektah/gqlparser/v2/lexer"
)

// Parse parses a type reference string such as `[Int!]!` into an ast.Type. The result renders
// back to the canonical text through ast.Type.String.
func Parse(typeRef string) (*ast.Type, error) {
	p := &parser{
		lexer: lexer.New(&ast.Source{
			Name:  "type reference",
			Input: typeRef,
		}),
	}

	if err := p.next(); err != nil {
		return nil, err
	}

	t, err := p.parseType()
	if err != nil {
		return nil, err
	}

	// The whole input must be consumed.
	if p.tok.Kind != lexer.EOF {
		return nil, p.unexpected()
	}

	return t, nil
}

// MustParse is a convenience function equivalent to Parse but panics on failure instead of
// returning an error.
func MustParse(typeRef string) *ast.Type {
	t, err := Parse(typeRef)
	if err != nil {
		panic(err)
	}
	return t
}

// String renders t into a type reference string. It returns an empty string for nil.
func String(t *ast.Type) string {
	if t == nil {
		return ""
	}
	return t.String()
}

// ConcreteTypeNameOf returns the named type wrapped in t.
func ConcreteTypeNameOf(t *ast.Type) string {
	for t != nil && t.Elem != nil {
		t = t.Elem
	}
	if t == nil {
		return ""
	}
	return t.NamedType
}

type parser struct {
	lexer lexer.Lexer
	tok   lexer.Token
}

func (p *parser) next() error {
	tok, err := p.lexer.ReadToken()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

func (p *parser) unexpected() error {
	pos := p.tok.Pos
	if p.tok.Kind == lexer.EOF {
		return gqlerror.ErrorPosf(&pos, "Unexpected <EOF>")
	}
	return gqlerror.ErrorPosf(&pos, "Unexpected %s %q", p.tok.Kind.String(), p.tok.Value)
}

// parseType parses:
//
//	Type :
//	  - NamedType
//	  - ListType
//	  - NonNullType
func (p *parser) parseType() (*ast.Type, error) {
	pos := p.tok.Pos

	var t *ast.Type
	switch p.tok.Kind {
	case lexer.BracketL:
		if err := p.next(); err != nil {
			return nil, err
		}

		elem, err := p.parseType()
		if err != nil {
			return nil, err
		}

		if p.tok.Kind != lexer.BracketR {
			return nil, p.unexpected()
		}
		if err := p.next(); err != nil {
			return nil, err
		}

		t = &ast.Type{
			Elem:     elem,
			Position: &pos,
		}

	case lexer.Name:
		t = &ast.Type{
			NamedType: p.tok.Value,
			Position:  &pos,
		}
		if err := p.next(); err != nil {
			return nil, err
		}

	default:
		return nil, p.unexpected()
	}

	if p.tok.Kind == lexer.Bang {
		t.NonNull = true
		if err := p.next(); err != nil {
			return nil, err
		}
	}

	return t, nil
}
