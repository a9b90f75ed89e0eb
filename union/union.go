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

// Package union composes GraphQL Union types, and composite Interfaces, from a list of members.
// A member is either an Object that is added to the possible types directly, or another composed
// type whose possible types are merged in wholesale.
//
// A Union also dispatches runtime values: Wrap converts the value of a member into a tagged Value
// from which the execution layer finds the concrete GraphQL type name and collects fields.
package union

import (
	"fmt"
	"reflect"

	"github.com/botobag/typereg/registry"
)

// Member declares a member of a Union.
type Member struct {
	// Variant names the member. It is the tag of Value that holds a value of the member.
	Variant string

	// Type registers the member into a registry.
	Type registry.OutputType

	// GoType is the Go type of runtime values of a direct member.
	GoType reflect.Type

	// Flatten is true if the possible types of Type are merged into the Union.
	Flatten bool
}

// Direct declares a member whose possible type is t itself. sample is a runtime value of the
// member; Only its Go type is used.
func Direct(variant string, t registry.OutputType, sample interface{}) Member {
	return Member{
		Variant: variant,
		Type:    t,
		GoType:  reflect.TypeOf(sample),
	}
}

// Flattened declares a member whose possible types are merged into the Union. Runtime values of the
// member are the Value of u.
func Flattened(variant string, u *Union) Member {
	member := Member{
		Variant: variant,
		Flatten: true,
	}
	// Keep Type nil for a nil u so New can report it.
	if u != nil {
		member.Type = u
	}
	return member
}

// Config provides definition for creating a Union.
type Config struct {
	// Name of the composed type
	Name string

	// Description of the composed type
	Description string

	// Origin identifies the definition of the union in the registry. See Registry.CreateType.
	Origin string

	// Interface composes an Interface instead of a Union. Every composed possible type, including
	// those merged from flattened members, implements the interface.
	Interface bool

	// Fields of the composed Interface; Ignored for Union.
	Fields registry.FieldMap

	// Members in the order of declaration
	Members []Member

	Visible      registry.VisibleFunc
	Inaccessible bool
	Tags         []string
}

// Union composes a Union (or an Interface) from members.
type Union struct {
	config Config
}

var _ registry.OutputType = (*Union)(nil)

// New validates config and creates a Union from it.
func New(config *Config) (*Union, error) {
	const op registry.Op = "union.New"

	if len(config.Name) == 0 {
		return nil, registry.NewError("Must provide name for Union.", op, registry.ErrKindComposition)
	}

	if len(config.Members) == 0 {
		return nil, registry.NewError("", op, registry.ErrKindComposition,
			&registry.EmptyUnionError{Union: config.Name})
	}

	var (
		variants  = map[string]bool{}
		typeNames = map[string]bool{}
		goTypes   = map[reflect.Type]bool{}
		nested    = map[*Union]bool{}
	)
	for _, member := range config.Members {
		if member.Type == nil {
			return nil, registry.NewError("", op, registry.ErrKindComposition,
				&registry.InvalidMemberError{
					Union:  config.Name,
					Member: member.Variant,
					Reason: "missing member type",
				})
		}

		duplicated := variants[member.Variant] || typeNames[member.Type.TypeName()]
		variants[member.Variant] = true
		typeNames[member.Type.TypeName()] = true

		if member.Flatten {
			u, ok := member.Type.(*Union)
			if !ok {
				return nil, registry.NewError("", op, registry.ErrKindComposition,
					&registry.InvalidMemberError{
						Union:  config.Name,
						Member: member.Variant,
						Reason: fmt.Sprintf("cannot flatten %T", member.Type),
					})
			}
			duplicated = duplicated || nested[u]
			nested[u] = true
		} else {
			if member.GoType == nil {
				return nil, registry.NewError("", op, registry.ErrKindComposition,
					&registry.InvalidMemberError{
						Union:  config.Name,
						Member: member.Variant,
						Reason: "missing Go type of runtime values",
					})
			}
			duplicated = duplicated || goTypes[member.GoType]
			goTypes[member.GoType] = true
		}

		if duplicated {
			return nil, registry.NewError("", op, registry.ErrKindComposition,
				&registry.DuplicateMemberError{
					Union:  config.Name,
					Member: member.Type.TypeName(),
				})
		}
	}

	u := &Union{
		config: *config,
	}
	u.config.Members = append([]Member(nil), config.Members...)
	return u, nil
}

// MustNew is a convenience function equivalent to New but panics on failure instead of returning
// an error.
func MustNew(config *Config) *Union {
	u, err := New(config)
	if err != nil {
		panic(err)
	}
	return u
}

// TypeName implements registry.OutputType.
func (u *Union) TypeName() string {
	return u.config.Name
}

// Members returns the declared members.
func (u *Union) Members() []Member {
	return u.config.Members
}

func (u *Union) kind() registry.TypeKind {
	if u.config.Interface {
		return registry.TypeKindInterface
	}
	return registry.TypeKindUnion
}

// CreateTypeInfo implements registry.OutputType. It registers the members and the composed type.
func (u *Union) CreateTypeInfo(r *registry.Registry) (string, error) {
	name := u.config.Name
	if err := r.CreateType(name, u.config.Origin, u.kind(), u.build); err != nil {
		return "", err
	}
	return name, nil
}

func (u *Union) build(r *registry.Registry) (registry.MetaType, error) {
	const op registry.Op = "union.CreateTypeInfo"

	name := u.config.Name
	invalidMember := func(member Member, reason string) error {
		return registry.NewError("", op, registry.ErrKindComposition,
			&registry.InvalidMemberError{
				Union:  name,
				Member: member.Type.TypeName(),
				Reason: reason,
			})
	}

	var possibleTypes registry.NameSet
	for _, member := range u.config.Members {
		memberName, err := member.Type.CreateTypeInfo(r)
		if err != nil {
			return nil, err
		}

		kind, _ := r.KindOf(memberName)

		if !member.Flatten {
			if kind != registry.TypeKindObject {
				return nil, invalidMember(member, fmt.Sprintf("%s is %s, not Object", memberName, kind))
			}
			possibleTypes.Add(memberName)
			continue
		}

		if r.IsInProgress(memberName) {
			return nil, invalidMember(member, "cannot flatten a type that is still being built")
		}
		t, _ := r.Lookup(memberName)
		if !registry.IsAbstractType(t) {
			return nil, invalidMember(member, fmt.Sprintf("cannot flatten %s %s", kind, memberName))
		}
		possibleTypes.Extend(registry.PossibleTypesOf(t))
	}

	if possibleTypes.Len() == 0 {
		return nil, registry.NewError("", op, registry.ErrKindComposition,
			&registry.EmptyUnionError{Union: name})
	}

	info := registry.TypeInfo{
		Name:         name,
		Description:  u.config.Description,
		Visible:      u.config.Visible,
		Inaccessible: u.config.Inaccessible,
		Tags:         u.config.Tags,
	}

	if !u.config.Interface {
		return &registry.UnionType{
			TypeInfo:      info,
			PossibleTypes: possibleTypes,
		}, nil
	}

	for _, typeName := range possibleTypes.Names() {
		r.AddImplements(typeName, name)
	}
	iface := &registry.InterfaceType{
		TypeInfo:      info,
		PossibleTypes: possibleTypes,
	}
	for _, field := range u.config.Fields.Values() {
		iface.Fields.Set(field.Name, field)
	}
	return iface, nil
}
