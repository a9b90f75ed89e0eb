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

// Names defined by the Apollo Federation subgraph specification
const (
	AnyTypeName       = "_Any"
	ServiceTypeName   = "_Service"
	EntityTypeName    = "_Entity"
	ServiceFieldName  = "_service"
	EntitiesFieldName = "_entities"
)

// federationOrigin is the origin of types created by CreateFederationTypes.
const federationOrigin = "federation"

// CreateFederationTypes adds the types and query root fields required by a federated subgraph. If
// any Object or Interface declares a key, it adds:
//
//	scalar _Any
//	type _Service { sdl: String }
//	union _Entity = <types with keys>
//
//	extend type Query {
//	  _service: _Service!
//	  _entities(representations: [_Any!]!): [_Entity]!
//	}
//
// Without keyed types it adds nothing unless Config.EnableFederation is set, in which case only
// _Service and _service are added. It runs once; subsequent calls are no-op. Finish calls it before
// pruning.
func (r *Registry) CreateFederationTypes() error {
	const op Op = "registry.CreateFederationTypes"

	if r.finished {
		return NewError("", op, ErrRegistryFinished)
	}
	if r.federated {
		return nil
	}

	keyed := r.keyedTypeNames()
	if len(keyed) == 0 && !r.config.EnableFederation {
		return nil
	}

	query, err := r.queryRoot(op)
	if err != nil {
		return err
	}

	service := NewObjectType(ServiceTypeName, &Field{
		Name: "sdl",
		Type: StringTypeName,
	})
	if err := r.createSyntheticType(op, service); err != nil {
		return err
	}
	if !query.Fields.Has(ServiceFieldName) {
		query.Fields.Set(ServiceFieldName, &Field{
			Name: ServiceFieldName,
			Type: ServiceTypeName + "!",
		})
	}

	if len(keyed) > 0 {
		anyScalar := &ScalarType{
			TypeInfo: TypeInfo{
				Name: AnyTypeName,
				Description: "The `_Any` scalar is used to pass representations of entities from external " +
					"services into the root `_entities` field for execution.",
			},
		}
		if err := r.createSyntheticType(op, anyScalar); err != nil {
			return err
		}

		entity := NewUnionType(EntityTypeName, keyed...)
		if err := r.createSyntheticType(op, entity); err != nil {
			return err
		}

		if !query.Fields.Has(EntitiesFieldName) {
			entities := &Field{
				Name: EntitiesFieldName,
				Type: "[" + EntityTypeName + "]!",
			}
			entities.AddArg(&InputValue{
				Name: "representations",
				Type: "[" + AnyTypeName + "!]!",
			})
			query.Fields.Set(EntitiesFieldName, entities)
		}
	}

	r.federated = true
	r.logger.V(1).Info("created federation types", "entities", keyed)

	return nil
}

// createSyntheticType registers t and makes it a pruning root.
func (r *Registry) createSyntheticType(op Op, t MetaType) error {
	err := r.CreateType(t.TypeName(), federationOrigin, t.Kind(), func(*Registry) (MetaType, error) {
		return t, nil
	})
	if err != nil {
		return NewError("", op, err)
	}
	r.syntheticRoots.Add(t.TypeName())
	return nil
}

// queryRoot returns the Object registered as the query root.
func (r *Registry) queryRoot(op Op) (*ObjectType, error) {
	name := r.config.QueryType
	t, exists := r.Lookup(name)
	if !exists {
		return nil, NewError(fmt.Sprintf("query root %q", name), op, ErrKindValidation, ErrMissingQueryRoot)
	}

	query, ok := t.(*ObjectType)
	if !ok {
		return nil, NewError(fmt.Sprintf("query root %q", name), op, ErrKindValidation,
			&NameKindMismatchError{
				Name:      name,
				Existing:  t.Kind(),
				Requested: TypeKindObject,
			})
	}

	return query, nil
}
