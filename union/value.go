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

package union

import (
	"context"
	"fmt"
	"reflect"

	"github.com/botobag/typereg/registry"
)

// Value is the runtime representation of a union value: the value of exactly one member tagged
// with the index of that member.
type Value struct {
	union *Union
	tag   int
	inner interface{}
}

// Wrap converts the runtime value of a member into a Value. v is accepted if its Go type is the Go
// type of a direct member, or if it is accepted by a flattened member (including a Value of that
// member).
func (u *Union) Wrap(v interface{}) (Value, error) {
	// A Value of a flattened member
	if nested, ok := v.(Value); ok {
		if nested.union == u {
			return nested, nil
		}
		for i, member := range u.config.Members {
			if member.Flatten && member.Type == nested.union {
				return Value{u, i, nested}, nil
			}
		}
	}

	goType := reflect.TypeOf(v)
	for i, member := range u.config.Members {
		if !member.Flatten && member.GoType == goType {
			return Value{u, i, v}, nil
		}
	}

	for i, member := range u.config.Members {
		if !member.Flatten {
			continue
		}
		if nested, err := member.Type.(*Union).Wrap(v); err == nil {
			return Value{u, i, nested}, nil
		}
	}

	return Value{}, registry.NewError(fmt.Sprintf("value of type %T is not a member of %s", v, u.config.Name),
		registry.Op("union.Wrap"))
}

// MustWrap is like Wrap but panics if v is not a member.
func (u *Union) MustWrap(v interface{}) Value {
	value, err := u.Wrap(v)
	if err != nil {
		panic(err)
	}
	return value
}

// IsNil returns true for the zero Value.
func (v Value) IsNil() bool {
	return v.union == nil
}

// Union returns the Union that the value belongs to.
func (v Value) Union() *Union {
	return v.union
}

// Member returns the active member. It returns the zero Member for the nil Value.
func (v Value) Member() Member {
	if v.IsNil() {
		return Member{}
	}
	return v.union.config.Members[v.tag]
}

// Tag returns the variant name of the active member.
func (v Value) Tag() string {
	if v.IsNil() {
		return ""
	}
	return v.Member().Variant
}

// Inner returns the value of the active member. For a flattened member, it is the Value of the
// nested union.
func (v Value) Inner() interface{} {
	return v.inner
}

// Unwrap returns the value of the direct member that is eventually active.
func (v Value) Unwrap() interface{} {
	if nested, ok := v.inner.(Value); ok {
		return nested.Unwrap()
	}
	return v.inner
}

// IntrospectionTypeName returns the name of the concrete Object type of the value.
func (v Value) IntrospectionTypeName() string {
	if v.IsNil() {
		return ""
	}
	if nested, ok := v.inner.(Value); ok {
		return nested.IntrospectionTypeName()
	}
	return v.Member().Type.TypeName()
}

// FieldEntry is a field collected from a value.
type FieldEntry struct {
	Name  string
	Value interface{}
}

// Fields collects fields of a value for the execution layer.
type Fields struct {
	entries []FieldEntry
}

// Add appends a field.
func (fields *Fields) Add(name string, value interface{}) {
	fields.entries = append(fields.entries, FieldEntry{name, value})
}

// Len returns the number of collected fields.
func (fields *Fields) Len() int {
	return len(fields.entries)
}

// Entries returns collected fields in the order they were added.
func (fields *Fields) Entries() []FieldEntry {
	return fields.entries
}

// Container is implemented by runtime values of Objects that can collect their own fields.
type Container interface {
	CollectAllFields(ctx context.Context, fields *Fields) error
}

// CollectAllFields collects fields of the active member into fields. A union owns no fields.
func (v Value) CollectAllFields(ctx context.Context, fields *Fields) error {
	if v.IsNil() {
		return registry.NewError("cannot collect fields from nil union value", registry.Op("union.CollectAllFields"))
	}

	if nested, ok := v.inner.(Value); ok {
		return nested.CollectAllFields(ctx, fields)
	}

	container, ok := v.inner.(Container)
	if !ok {
		return registry.NewError(fmt.Sprintf("%s: value of member %s (%T) cannot collect fields",
			v.union.config.Name, v.Tag(), v.inner), registry.Op("union.CollectAllFields"))
	}
	return container.CollectAllFields(ctx, fields)
}

var _ Container = Value{}
