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
	"fmt"
)

// TypeKind identifies the kind of a named type.
type TypeKind uint8

// Enumeration of TypeKind
const (
	TypeKindScalar TypeKind = iota
	TypeKindObject
	TypeKindInterface
	TypeKindUnion
	TypeKindEnum
	TypeKindInputObject
)

func (k TypeKind) String() string {
	switch k {
	case TypeKindScalar:
		return "Scalar"
	case TypeKindObject:
		return "Object"
	case TypeKindInterface:
		return "Interface"
	case TypeKindUnion:
		return "Union"
	case TypeKindEnum:
		return "Enum"
	case TypeKindInputObject:
		return "InputObject"
	}
	return fmt.Sprintf("TypeKind(%d)", uint8(k))
}

// MetaType describes a named type stored in the Registry. The set of implementations is closed:
// *ScalarType, *ObjectType, *InterfaceType, *UnionType, *EnumType and *InputObjectType.
//
// Reference: https://spec.graphql.org/October2021/#sec-Types
type MetaType interface {
	fmt.Stringer

	// TypeName returns the GraphQL name of the type.
	TypeName() string

	// Kind returns the kind of the type.
	Kind() TypeKind

	// Info returns the data shared by every kind of type.
	Info() *TypeInfo

	// metaType puts a special mark for a MetaType.
	metaType()
}

// TypeInfo contains data that is shared by all kinds of MetaType.
type TypeInfo struct {
	// Name of the type; Must be unique among types in a registry.
	Name string

	// Description of the type
	Description string

	// Visible decides whether the type can be observed by a viewer. Nil means always visible.
	Visible VisibleFunc

	// Inaccessible marks the type with federation @inaccessible.
	Inaccessible bool

	// Tags attached to the type with federation @tag.
	Tags []string
}

// TypeName implements MetaType.
func (info *TypeInfo) TypeName() string {
	return info.Name
}

// Info implements MetaType.
func (info *TypeInfo) Info() *TypeInfo {
	return info
}

// String implements fmt.Stringer.
func (info *TypeInfo) String() string {
	return info.Name
}

//===----------------------------------------------------------------------------------------====//
// Scalar
//===----------------------------------------------------------------------------------------====//

// ScalarType describes a Scalar.
type ScalarType struct {
	TypeInfo

	// IsValid reports whether the given input value is acceptable for the scalar. Nil accepts
	// everything.
	IsValid func(value interface{}) bool

	// SpecifiedByURL points to the specification of the scalar's data format.
	SpecifiedByURL string
}

// Kind implements MetaType.
func (*ScalarType) Kind() TypeKind {
	return TypeKindScalar
}

func (*ScalarType) metaType() {}

//===----------------------------------------------------------------------------------------====//
// Object
//===----------------------------------------------------------------------------------------====//

// ObjectType describes an Object.
type ObjectType struct {
	TypeInfo

	// Fields in the object in the order of declaration
	Fields FieldMap

	// CacheControl applies to all fields of the object unless overridden by the field.
	CacheControl CacheControl

	// Extends marks the object with federation @extends.
	Extends bool

	// Shareable marks the object with federation @shareable.
	Shareable bool

	// Keys contains the federation key literals. It is nil until the first key is added.
	Keys []string

	// IsSubscription is true for the subscription root object.
	IsSubscription bool

	// Origin identifies the definition that produced the object.
	Origin string
}

// NewObjectType creates an ObjectType with the given name and fields.
func NewObjectType(name string, fields ...*Field) *ObjectType {
	object := &ObjectType{
		TypeInfo: TypeInfo{
			Name: name,
		},
	}
	for _, field := range fields {
		object.Fields.Set(field.Name, field)
	}
	return object
}

// Kind implements MetaType.
func (*ObjectType) Kind() TypeKind {
	return TypeKindObject
}

func (*ObjectType) metaType() {}

//===----------------------------------------------------------------------------------------====//
// Interface
//===----------------------------------------------------------------------------------------====//

// InterfaceType describes an Interface.
type InterfaceType struct {
	TypeInfo

	// Fields that every implementation provides, in the order of declaration
	Fields FieldMap

	// PossibleTypes contains names of Object types that implement the interface.
	PossibleTypes NameSet

	// Extends marks the interface with federation @extends.
	Extends bool

	// Keys contains the federation key literals. It is nil until the first key is added.
	Keys []string

	// Origin identifies the definition that produced the interface.
	Origin string
}

// NewInterfaceType creates an InterfaceType with the given name and fields.
func NewInterfaceType(name string, fields ...*Field) *InterfaceType {
	iface := &InterfaceType{
		TypeInfo: TypeInfo{
			Name: name,
		},
	}
	for _, field := range fields {
		iface.Fields.Set(field.Name, field)
	}
	return iface
}

// Kind implements MetaType.
func (*InterfaceType) Kind() TypeKind {
	return TypeKindInterface
}

func (*InterfaceType) metaType() {}

//===----------------------------------------------------------------------------------------====//
// Union
//===----------------------------------------------------------------------------------------====//

// UnionType describes a Union.
type UnionType struct {
	TypeInfo

	// PossibleTypes contains names of the member Object types.
	PossibleTypes NameSet

	// Origin identifies the definition that produced the union.
	Origin string
}

// NewUnionType creates a UnionType with the given name and members.
func NewUnionType(name string, possibleTypes ...string) *UnionType {
	union := &UnionType{
		TypeInfo: TypeInfo{
			Name: name,
		},
	}
	for _, possibleType := range possibleTypes {
		union.PossibleTypes.Add(possibleType)
	}
	return union
}

// Kind implements MetaType.
func (*UnionType) Kind() TypeKind {
	return TypeKindUnion
}

func (*UnionType) metaType() {}

//===----------------------------------------------------------------------------------------====//
// Enum
//===----------------------------------------------------------------------------------------====//

// EnumType describes an Enum.
type EnumType struct {
	TypeInfo

	// Values of the enum in the order of declaration
	Values EnumValueMap

	// Origin identifies the definition that produced the enum.
	Origin string
}

// Kind implements MetaType.
func (*EnumType) Kind() TypeKind {
	return TypeKindEnum
}

func (*EnumType) metaType() {}

//===----------------------------------------------------------------------------------------====//
// InputObject
//===----------------------------------------------------------------------------------------====//

// InputObjectType describes an Input Object.
type InputObjectType struct {
	TypeInfo

	// InputFields in the order of declaration
	InputFields InputValueMap

	// OneOf requires exactly one field to be supplied at input time.
	OneOf bool

	// Origin identifies the definition that produced the input object.
	Origin string
}

// Kind implements MetaType.
func (*InputObjectType) Kind() TypeKind {
	return TypeKindInputObject
}

func (*InputObjectType) metaType() {}

//===----------------------------------------------------------------------------------------====//
// Type Predication
//===----------------------------------------------------------------------------------------====//

// OriginOf returns the origin identity recorded on t. Scalars carry no origin.
func OriginOf(t MetaType) string {
	switch t := t.(type) {
	case *ObjectType:
		return t.Origin
	case *InterfaceType:
		return t.Origin
	case *UnionType:
		return t.Origin
	case *EnumType:
		return t.Origin
	case *InputObjectType:
		return t.Origin
	default:
		return ""
	}
}

func setOrigin(t MetaType, origin string) {
	switch t := t.(type) {
	case *ObjectType:
		t.Origin = origin
	case *InterfaceType:
		t.Origin = origin
	case *UnionType:
		t.Origin = origin
	case *EnumType:
		t.Origin = origin
	case *InputObjectType:
		t.Origin = origin
	}
}

// FieldsOf returns the field map of an Object or an Interface, or nil for other kinds.
func FieldsOf(t MetaType) *FieldMap {
	switch t := t.(type) {
	case *ObjectType:
		return &t.Fields
	case *InterfaceType:
		return &t.Fields
	default:
		return nil
	}
}

// FieldByName finds the field with the given name in an Object or an Interface.
func FieldByName(t MetaType, name string) (*Field, bool) {
	fields := FieldsOf(t)
	if fields == nil {
		return nil, false
	}
	return fields.Get(name)
}

// PossibleTypesOf returns the possible types of an abstract type, or nil for other kinds.
func PossibleTypesOf(t MetaType) *NameSet {
	switch t := t.(type) {
	case *InterfaceType:
		return &t.PossibleTypes
	case *UnionType:
		return &t.PossibleTypes
	default:
		return nil
	}
}

// KeysOf returns the federation keys of an Object or an Interface.
func KeysOf(t MetaType) []string {
	switch t := t.(type) {
	case *ObjectType:
		return t.Keys
	case *InterfaceType:
		return t.Keys
	default:
		return nil
	}
}

// IsPossibleType returns true if a value of the Object type named typeName can be represented by
// t. An Object is a possible type of itself.
func IsPossibleType(t MetaType, typeName string) bool {
	switch t := t.(type) {
	case *InterfaceType:
		return t.PossibleTypes.Contains(typeName)
	case *UnionType:
		return t.PossibleTypes.Contains(typeName)
	case *ObjectType:
		return t.Name == typeName
	default:
		return false
	}
}

// IsCompositeType returns true if the given type is one of object, interface or union.
func IsCompositeType(t MetaType) bool {
	switch t.(type) {
	case *ObjectType, *InterfaceType, *UnionType:
		return true
	default:
		return false
	}
}

// IsAbstractType returns true if the given type is an interface or a union.
func IsAbstractType(t MetaType) bool {
	switch t.(type) {
	case *InterfaceType, *UnionType:
		return true
	default:
		return false
	}
}

// IsLeafType returns true if the given type is a scalar or an enum.
func IsLeafType(t MetaType) bool {
	switch t.(type) {
	case *ScalarType, *EnumType:
		return true
	default:
		return false
	}
}

// IsInputType returns true if the given type is valid for values in input arguments and variables.
func IsInputType(t MetaType) bool {
	switch t.(type) {
	case *ScalarType, *EnumType, *InputObjectType:
		return true
	default:
		return false
	}
}
