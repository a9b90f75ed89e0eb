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
	"context"
	"fmt"

	"github.com/botobag/typereg/internal/log"
	"github.com/botobag/typereg/internal/util"
	"github.com/botobag/typereg/typeref"
	jsoniter "github.com/json-iterator/go"
	"github.com/vektah/gqlparser/v2/ast"
)

// Schema is the immutable result of Registry.Finish. It is safe for concurrent use.
type Schema struct {
	graph *typeGraph

	queryType        *ObjectType
	mutationType     *ObjectType
	subscriptionType *ObjectType

	// implements maps the name of a type to names of interfaces it implements in lexical order.
	implements map[string][]string

	typeNames []string
}

// Finish validates the registered types and freezes them into a Schema:
//
//  1. The query root must be registered as an Object, and so must the mutation and subscription
//     roots when they are configured.
//  2. Implements edges are merged into possible types of interfaces.
//  3. CreateFederationTypes runs.
//  4. Every type referenced by a possible type set, a field, an argument or an input field of a
//     reachable type must be registered. Unreachable types are not checked since step 5 removes
//     them.
//  5. RemoveUnusedTypes runs.
//
// The registry cannot be modified after Finish succeeds.
func (r *Registry) Finish() (*Schema, error) {
	const op Op = "registry.Finish"

	if r.finished {
		return nil, NewError("", op, ErrRegistryFinished)
	}

	for name, slot := range r.types {
		if slot.inProgress() {
			return nil, NewError(fmt.Sprintf("type %q is still being built", name), op, ErrKindInternal)
		}
	}

	query, err := r.queryRoot(op)
	if err != nil {
		return nil, err
	}
	mutation, err := r.optionalRoot(op, r.config.MutationType)
	if err != nil {
		return nil, err
	}
	subscription, err := r.optionalRoot(op, r.config.SubscriptionType)
	if err != nil {
		return nil, err
	}
	if subscription != nil {
		subscription.IsSubscription = true
	}

	if err := r.mergeImplements(op); err != nil {
		return nil, err
	}

	if err := r.CreateFederationTypes(); err != nil {
		return nil, NewError("", op, err)
	}

	if err := r.validateReferences(op); err != nil {
		return nil, err
	}

	r.RemoveUnusedTypes()

	graph := r.graph()
	schema := &Schema{
		graph:            graph,
		queryType:        query,
		mutationType:     mutation,
		subscriptionType: subscription,
		implements:       make(map[string][]string, len(r.implements)),
		typeNames:        graph.sortedTypeNames(),
	}
	for typeName, interfaces := range r.implements {
		schema.implements[typeName] = interfaces.Sorted()
	}

	r.finished = true
	r.logger.V(1).Info("finished schema",
		"types", len(schema.typeNames),
		"directives", len(graph.directives),
		"federated", r.federated)

	return schema, nil
}

func (r *Registry) optionalRoot(op Op, name string) (*ObjectType, error) {
	if len(name) == 0 {
		return nil, nil
	}

	t, exists := r.Lookup(name)
	if !exists {
		return nil, NewError("", op, ErrKindValidation, r.unknownType(name, "schema"))
	}

	object, ok := t.(*ObjectType)
	if !ok {
		return nil, NewError(fmt.Sprintf("root type %q", name), op, ErrKindValidation,
			&NameKindMismatchError{
				Name:      name,
				Existing:  t.Kind(),
				Requested: TypeKindObject,
			})
	}

	return object, nil
}

func (r *Registry) mergeImplements(op Op) error {
	for _, typeName := range sortedKeys(r.implements) {
		if _, exists := r.Lookup(typeName); !exists {
			return NewError("", op, ErrKindValidation, r.unknownType(typeName, ""))
		}

		for _, interfaceName := range r.implements[typeName].Sorted() {
			t, exists := r.Lookup(interfaceName)
			if !exists {
				return NewError("", op, ErrKindValidation, r.unknownType(interfaceName, typeName))
			}

			iface, ok := t.(*InterfaceType)
			if !ok {
				return NewError(fmt.Sprintf("%q implements %q", typeName, interfaceName), op,
					ErrKindValidation, &NameKindMismatchError{
						Name:      interfaceName,
						Existing:  t.Kind(),
						Requested: TypeKindInterface,
					})
			}

			iface.PossibleTypes.Add(typeName)
		}
	}
	return nil
}

func (r *Registry) validateReferences(op Op) error {
	checkTypeRef := func(typeRef string, referencedBy string) error {
		name := typeref.ConcreteTypeName(typeRef)
		if _, exists := r.Lookup(name); !exists {
			return NewError("", op, ErrKindValidation, r.unknownType(name, referencedBy))
		}
		return nil
	}

	checkInputValues := func(values *InputValueMap, parent string) error {
		for _, value := range values.Values() {
			if err := checkTypeRef(value.Type, parent+"."+value.Name); err != nil {
				return err
			}
		}
		return nil
	}

	checkFields := func(fields *FieldMap, parent string) error {
		for _, field := range fields.Values() {
			coordinate := parent + "." + field.Name
			if err := checkTypeRef(field.Type, coordinate); err != nil {
				return err
			}
			if err := checkInputValues(&field.Args, coordinate); err != nil {
				return err
			}
		}
		return nil
	}

	checkPossibleTypes := func(abstract MetaType) error {
		for _, name := range PossibleTypesOf(abstract).Names() {
			t, exists := r.Lookup(name)
			if !exists {
				return NewError("", op, ErrKindValidation, r.unknownType(name, abstract.TypeName()))
			}
			switch t.(type) {
			case *ObjectType:
				continue
			case *InterfaceType:
				// Entities may be interfaces.
				if abstract.TypeName() == EntityTypeName {
					continue
				}
			}
			return NewError(fmt.Sprintf("possible type of %q", abstract.TypeName()), op, ErrKindValidation,
				&NameKindMismatchError{
					Name:      name,
					Existing:  t.Kind(),
					Requested: TypeKindObject,
				})
		}
		return nil
	}

	for _, name := range sortedKeys(r.directives) {
		if err := checkInputValues(&r.directives[name].Args, "@"+name); err != nil {
			return err
		}
	}

	reachable := r.graph().reachableTypes()
	for _, name := range r.TypeNames() {
		if !reachable.Contains(name) {
			continue
		}
		var err error
		switch t := r.types[name].t.(type) {
		case *ObjectType:
			err = checkFields(&t.Fields, name)
		case *InterfaceType:
			if err = checkFields(&t.Fields, name); err == nil {
				err = checkPossibleTypes(t)
			}
		case *UnionType:
			err = checkPossibleTypes(t)
		case *InputObjectType:
			err = checkInputValues(&t.InputFields, name)
		case *ScalarType, *EnumType:
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// unknownType creates an UnknownTypeError with suggestions from registered type names.
func (r *Registry) unknownType(name string, referencedBy string) *UnknownTypeError {
	return &UnknownTypeError{
		Name:         name,
		ReferencedBy: referencedBy,
		Suggestions:  util.SuggestionList(name, r.TypeNames()),
	}
}

// Lookup returns the type with the given name.
func (schema *Schema) Lookup(name string) (MetaType, bool) {
	t, exists := schema.graph.types[name]
	return t, exists
}

// ConcreteTypeByName finds the named type wrapped in the given type reference.
func (schema *Schema) ConcreteTypeByName(typeRef string) (MetaType, bool) {
	return schema.Lookup(typeref.ConcreteTypeName(typeRef))
}

// ConcreteTypeByParsedType finds the named type wrapped in a parsed type reference.
func (schema *Schema) ConcreteTypeByParsedType(t *ast.Type) (MetaType, bool) {
	return schema.Lookup(typeref.ConcreteTypeNameOf(t))
}

// QueryType returns the query root.
func (schema *Schema) QueryType() *ObjectType {
	return schema.queryType
}

// MutationType returns the mutation root or nil.
func (schema *Schema) MutationType() *ObjectType {
	return schema.mutationType
}

// SubscriptionType returns the subscription root or nil.
func (schema *Schema) SubscriptionType() *ObjectType {
	return schema.subscriptionType
}

// TypeNames returns names of all types in lexical order. The returned slice must not be modified.
func (schema *Schema) TypeNames() []string {
	return schema.typeNames
}

// Directive returns the directive with the given name.
func (schema *Schema) Directive(name string) (*MetaDirective, bool) {
	directive, exists := schema.graph.directives[name]
	return directive, exists
}

// Directives returns all directives ordered by name.
func (schema *Schema) Directives() []*MetaDirective {
	return schema.graph.sortedDirectives()
}

// PossibleTypes returns names of possible types of the named abstract type in lexical order. It
// returns nil if the type is not abstract.
func (schema *Schema) PossibleTypes(abstractTypeName string) []string {
	t, exists := schema.Lookup(abstractTypeName)
	if !exists || !IsAbstractType(t) {
		return nil
	}
	return PossibleTypesOf(t).Sorted()
}

// IsPossibleType returns true if the Object named typeName is a possible type of the named abstract
// type.
func (schema *Schema) IsPossibleType(abstractTypeName string, typeName string) bool {
	t, exists := schema.Lookup(abstractTypeName)
	return exists && IsAbstractType(t) && IsPossibleType(t, typeName)
}

// Implements returns names of interfaces implemented by the named type in lexical order.
func (schema *Schema) Implements(typeName string) []string {
	return schema.implements[typeName]
}

// FindVisibleTypes returns names of types that the viewer in ctx may observe. See
// Registry.FindVisibleTypes.
func (schema *Schema) FindVisibleTypes(ctx context.Context) NameSet {
	visible := schema.graph.visibleTypes(ctx)
	log.FromContext(ctx).V(2).Info("found visible types", "count", visible.Len())
	return visible
}

// TypeOverlap returns true if a value could be of both types a and b.
func (schema *Schema) TypeOverlap(a, b MetaType) bool {
	return typeOverlap(a, b, PossibleTypesOf)
}

//===----------------------------------------------------------------------------------------====//
// JSON Snapshot
//===----------------------------------------------------------------------------------------====//

type inputValueSnapshot struct {
	Name         string `json:"name"`
	Type         string `json:"type"`
	DefaultValue string `json:"defaultValue,omitempty"`
}

type fieldSnapshot struct {
	Name              string               `json:"name"`
	Type              string               `json:"type"`
	Args              []inputValueSnapshot `json:"args,omitempty"`
	DeprecationReason *string              `json:"deprecationReason,omitempty"`
}

type typeSnapshot struct {
	Name          string               `json:"name"`
	Kind          string               `json:"kind"`
	Description   string               `json:"description,omitempty"`
	Fields        []fieldSnapshot      `json:"fields,omitempty"`
	InputFields   []inputValueSnapshot `json:"inputFields,omitempty"`
	EnumValues    []string             `json:"enumValues,omitempty"`
	Interfaces    []string             `json:"interfaces,omitempty"`
	PossibleTypes []string             `json:"possibleTypes,omitempty"`
	Keys          []string             `json:"keys,omitempty"`
}

type directiveSnapshot struct {
	Name      string               `json:"name"`
	Locations []string             `json:"locations"`
	Args      []inputValueSnapshot `json:"args,omitempty"`
}

type schemaSnapshot struct {
	QueryType        string              `json:"queryType"`
	MutationType     string              `json:"mutationType,omitempty"`
	SubscriptionType string              `json:"subscriptionType,omitempty"`
	Types            []typeSnapshot      `json:"types"`
	Directives       []directiveSnapshot `json:"directives"`
}

func snapshotInputValues(values *InputValueMap) []inputValueSnapshot {
	var result []inputValueSnapshot
	for _, value := range values.Values() {
		result = append(result, inputValueSnapshot{
			Name:         value.Name,
			Type:         value.Type,
			DefaultValue: value.DefaultValue,
		})
	}
	return result
}

func snapshotFields(fields *FieldMap) []fieldSnapshot {
	var result []fieldSnapshot
	for _, field := range fields.Values() {
		snapshot := fieldSnapshot{
			Name: field.Name,
			Type: field.Type,
			Args: snapshotInputValues(&field.Args),
		}
		if field.Deprecation.Defined() {
			reason := field.Deprecation.Reason
			snapshot.DeprecationReason = &reason
		}
		result = append(result, snapshot)
	}
	return result
}

func (schema *Schema) snapshot() *schemaSnapshot {
	snapshot := &schemaSnapshot{
		QueryType: schema.queryType.Name,
	}
	if schema.mutationType != nil {
		snapshot.MutationType = schema.mutationType.Name
	}
	if schema.subscriptionType != nil {
		snapshot.SubscriptionType = schema.subscriptionType.Name
	}

	for _, name := range schema.typeNames {
		t := schema.graph.types[name]
		s := typeSnapshot{
			Name:        name,
			Kind:        t.Kind().String(),
			Description: t.Info().Description,
			Keys:        KeysOf(t),
			Interfaces:  schema.implements[name],
		}

		switch t := t.(type) {
		case *ObjectType:
			s.Fields = snapshotFields(&t.Fields)
		case *InterfaceType:
			s.Fields = snapshotFields(&t.Fields)
			s.PossibleTypes = t.PossibleTypes.Sorted()
		case *UnionType:
			s.PossibleTypes = t.PossibleTypes.Sorted()
		case *EnumType:
			s.EnumValues = t.Values.Names()
		case *InputObjectType:
			s.InputFields = snapshotInputValues(&t.InputFields)
		case *ScalarType:
		}

		snapshot.Types = append(snapshot.Types, s)
	}

	for _, directive := range schema.graph.sortedDirectives() {
		locations := make([]string, len(directive.Locations))
		for i, location := range directive.Locations {
			locations[i] = string(location)
		}
		snapshot.Directives = append(snapshot.Directives, directiveSnapshot{
			Name:      directive.Name,
			Locations: locations,
			Args:      snapshotInputValues(&directive.Args),
		})
	}

	return snapshot
}

// MarshalJSON implements json.Marshaler. It renders a deterministic snapshot of type names, kinds,
// fields, possible types and keys.
func (schema *Schema) MarshalJSON() ([]byte, error) {
	return jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(schema.snapshot())
}
