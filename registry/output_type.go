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
	"reflect"
)

// OutputType is implemented by application-level definitions that can register themselves into a
// Registry. CreateTypeInfo registers the type (and every type it references) and returns the name
// it was registered under.
type OutputType interface {
	TypeName() string
	CreateTypeInfo(r *Registry) (string, error)
}

// BuildFunc fills the descriptor of a type being registered. It may register other types through r,
// including the one being built.
type BuildFunc func(r *Registry) (MetaType, error)

// OriginOfValue derives an origin identity from the Go type of v, in the form of
// "import/path.TypeName". Pointers are dereferenced.
func OriginOfValue(v interface{}) string {
	t := reflect.TypeOf(v)
	if t == nil {
		return ""
	}
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if len(t.PkgPath()) == 0 {
		return t.String()
	}
	return t.PkgPath() + "." + t.Name()
}
