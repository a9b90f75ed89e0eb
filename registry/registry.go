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
	"sort"

	"github.com/botobag/typereg/internal/log"
	"github.com/botobag/typereg/typeref"
	"github.com/go-logr/logr"
	"github.com/vektah/gqlparser/v2/ast"
)

// typeSlot stores the type bound to a name. A slot with nil t is a placeholder for a type whose
// BuildFunc is still running.
type typeSlot struct {
	kind   TypeKind
	origin string
	t      MetaType
}

func (slot *typeSlot) inProgress() bool {
	return slot.t == nil
}

// Registry collects types of a schema. It is filled by a single pass of CreateType calls driven
// by the application and then frozen into a Schema with Finish. Registry is not safe for
// concurrent use.
type Registry struct {
	config Config
	logger logr.Logger

	types      map[string]*typeSlot
	directives map[string]*MetaDirective

	// implements maps the name of a type to names of interfaces it implements.
	implements map[string]*NameSet

	ignoreNameConflicts map[string]bool

	// Names of types created by CreateFederationTypes; They survive pruning.
	syntheticRoots NameSet

	federated bool
	finished  bool
}

// NewRegistry creates a Registry with built-in scalars and directives. config can be nil.
func NewRegistry(config *Config) *Registry {
	r := &Registry{
		types:               map[string]*typeSlot{},
		directives:          map[string]*MetaDirective{},
		implements:          map[string]*NameSet{},
		ignoreNameConflicts: map[string]bool{},
	}
	if config != nil {
		r.config = *config
	}
	r.config.setDefaults()
	r.logger = r.config.Logger.WithName("registry")

	for _, name := range r.config.IgnoreNameConflicts {
		r.ignoreNameConflicts[name] = true
	}

	for _, scalar := range builtinScalars() {
		r.types[scalar.Name] = &typeSlot{
			kind: TypeKindScalar,
			t:    scalar,
		}
	}

	for _, directive := range builtinDirectives() {
		r.directives[directive.Name] = directive
	}

	return r
}

// Config returns the configuration that the registry was created with.
func (r *Registry) Config() *Config {
	return &r.config
}

// CreateType registers the type with the given name. If the name is unknown, a placeholder is
// bound to it before build is invoked and replaced with the result afterward, so build can
// (directly or transitively) register the same name again: such a call returns immediately.
// Registering a name that was already registered with the same origin and kind is a no-op.
//
// origin identifies the definition that produces the type. Registering a name from two different
// non-empty origins is a conflict unless the name is listed in Config.IgnoreNameConflicts.
// Registering a name as two kinds is always a conflict.
//
// If build fails, the name is unbound and the error is returned.
func (r *Registry) CreateType(name string, origin string, kind TypeKind, build BuildFunc) error {
	const op Op = "registry.CreateType"

	if r.finished {
		return NewError(fmt.Sprintf("cannot register %q", name), op, ErrRegistryFinished)
	}

	if slot, exists := r.types[name]; exists {
		if slot.inProgress() {
			return nil
		}

		if len(slot.origin) > 0 && len(origin) > 0 && slot.origin != origin &&
			!r.ignoreNameConflicts[name] {
			return NewError(fmt.Sprintf("cannot register %q", name), op, ErrKindConflict,
				&NameIdentityMismatchError{
					Name:            name,
					ExistingOrigin:  slot.origin,
					RequestedOrigin: origin,
				})
		}

		if slot.kind != kind {
			return NewError(fmt.Sprintf("cannot register %q", name), op, ErrKindConflict,
				&NameKindMismatchError{
					Name:      name,
					Existing:  slot.kind,
					Requested: kind,
				})
		}

		return nil
	}

	slot := &typeSlot{
		kind:   kind,
		origin: origin,
	}
	r.types[name] = slot

	t, err := build(r)
	if err != nil {
		delete(r.types, name)
		return NewError(fmt.Sprintf("failed to build %s %q", kind, name), op, err)
	}

	if t == nil {
		delete(r.types, name)
		return NewError(fmt.Sprintf("build %s %q returns nil", kind, name), op, ErrKindInternal)
	}

	if t.TypeName() != name || t.Kind() != kind {
		delete(r.types, name)
		return NewError(fmt.Sprintf("build %s %q returns %s %q", kind, name, t.Kind(), t.TypeName()),
			op, ErrKindInternal)
	}

	if len(OriginOf(t)) == 0 {
		setOrigin(t, origin)
	}
	slot.t = t

	return nil
}

// MustCreateType is a convenience function equivalent to CreateType but panics on failure instead
// of returning an error.
func (r *Registry) MustCreateType(name string, origin string, kind TypeKind, build BuildFunc) {
	if err := r.CreateType(name, origin, kind, build); err != nil {
		panic(err)
	}
}

func (r *Registry) mustNotFinish(op Op) {
	if r.finished {
		panic(NewError("", op, ErrRegistryFinished))
	}
}

// KindOf returns the kind that name is bound to, including a type whose BuildFunc is still
// running.
func (r *Registry) KindOf(name string) (TypeKind, bool) {
	slot, exists := r.types[name]
	if !exists {
		return 0, false
	}
	return slot.kind, true
}

// IsInProgress returns true if the BuildFunc of the named type is still running.
func (r *Registry) IsInProgress(name string) bool {
	slot, exists := r.types[name]
	return exists && slot.inProgress()
}

// Lookup returns the type with the given name. A type whose BuildFunc is still running is not
// found.
func (r *Registry) Lookup(name string) (MetaType, bool) {
	slot, exists := r.types[name]
	if !exists || slot.inProgress() {
		return nil, false
	}
	return slot.t, true
}

// ConcreteTypeByName finds the named type wrapped in the given type reference (e.g., `[User!]!`).
func (r *Registry) ConcreteTypeByName(typeRef string) (MetaType, bool) {
	return r.Lookup(typeref.ConcreteTypeName(typeRef))
}

// ConcreteTypeByParsedType finds the named type wrapped in a parsed type reference.
func (r *Registry) ConcreteTypeByParsedType(t *ast.Type) (MetaType, bool) {
	return r.Lookup(typeref.ConcreteTypeNameOf(t))
}

// AddImplements records that the type named typeName implements the interface named
// interfaceName. The edge is merged into the possible types of the interface by Finish.
func (r *Registry) AddImplements(typeName string, interfaceName string) {
	r.mustNotFinish("registry.AddImplements")
	interfaces, exists := r.implements[typeName]
	if !exists {
		interfaces = &NameSet{}
		r.implements[typeName] = interfaces
	}
	interfaces.Add(interfaceName)
}

// Implements returns names of interfaces implemented by the named type in lexical order.
func (r *Registry) Implements(typeName string) []string {
	interfaces, exists := r.implements[typeName]
	if !exists {
		return nil
	}
	return interfaces.Sorted()
}

// AddKeys appends a federation key literal to the named Object or Interface. The literal is stored
// as given. It is a no-op for other kinds and for types that are not (yet) built.
func (r *Registry) AddKeys(typeName string, key string) {
	r.mustNotFinish("registry.AddKeys")
	t, exists := r.Lookup(typeName)
	if !exists {
		return
	}
	switch t := t.(type) {
	case *ObjectType:
		t.Keys = append(t.Keys, key)
	case *InterfaceType:
		t.Keys = append(t.Keys, key)
	}
}

// AddDirective adds a directive to the schema, replacing the one with the same name.
func (r *Registry) AddDirective(directive *MetaDirective) {
	r.mustNotFinish("registry.AddDirective")
	r.directives[directive.Name] = directive
}

// Directive returns the directive with the given name.
func (r *Registry) Directive(name string) (*MetaDirective, bool) {
	directive, exists := r.directives[name]
	return directive, exists
}

// SetDescription sets the description of the named type. It is a no-op for unknown names.
func (r *Registry) SetDescription(name string, description string) {
	r.mustNotFinish("registry.SetDescription")
	if t, exists := r.Lookup(name); exists {
		t.Info().Description = description
	}
}

// TypeNames returns names of registered types in lexical order.
func (r *Registry) TypeNames() []string {
	names := make([]string, 0, len(r.types))
	for name, slot := range r.types {
		if !slot.inProgress() {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Names returns every name defined in the registry in lexical order, including names of types,
// fields, arguments, input fields, enum values, directives and their arguments.
func (r *Registry) Names() []string {
	seen := map[string]bool{}
	addInputValues := func(values *InputValueMap) {
		for _, name := range values.Names() {
			seen[name] = true
		}
	}

	for _, directive := range r.directives {
		seen[directive.Name] = true
		addInputValues(&directive.Args)
	}

	for _, name := range r.TypeNames() {
		seen[name] = true
		switch t := r.types[name].t.(type) {
		case *ObjectType:
			for _, field := range t.Fields.Values() {
				seen[field.Name] = true
				addInputValues(&field.Args)
			}
		case *InterfaceType:
			for _, field := range t.Fields.Values() {
				seen[field.Name] = true
				addInputValues(&field.Args)
			}
		case *EnumType:
			for _, value := range t.Values.Names() {
				seen[value] = true
			}
		case *InputObjectType:
			addInputValues(&t.InputFields)
		case *ScalarType, *UnionType:
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// keyedTypeNames returns names of Objects and Interfaces that declare at least one federation key
// in lexical order.
func (r *Registry) keyedTypeNames() []string {
	var names []string
	for _, name := range r.TypeNames() {
		if len(KeysOf(r.types[name].t)) > 0 {
			names = append(names, name)
		}
	}
	return names
}

// HasEntities returns true if any Object or Interface declares a federation key.
func (r *Registry) HasEntities() bool {
	for _, slot := range r.types {
		if !slot.inProgress() && len(KeysOf(slot.t)) > 0 {
			return true
		}
	}
	return false
}

// graph returns a view of the finished types for traversal.
func (r *Registry) graph() *typeGraph {
	types := make(map[string]MetaType, len(r.types))
	for name, slot := range r.types {
		if !slot.inProgress() {
			types[name] = slot.t
		}
	}

	roots := r.config.rootTypeNames()
	roots = append(roots, r.keyedTypeNames()...)
	roots = append(roots, r.syntheticRoots.Names()...)

	return &typeGraph{
		types:      types,
		directives: r.directives,
		roots:      roots,
	}
}

// RemoveUnusedTypes deletes types that cannot be reached from the root operation types, types with
// federation keys, types created by CreateFederationTypes and directive arguments. Built-in
// scalars and introspection types are never deleted.
func (r *Registry) RemoveUnusedTypes() {
	r.mustNotFinish("registry.RemoveUnusedTypes")

	used := r.graph().reachableTypes()

	var removed []string
	for _, name := range r.TypeNames() {
		if IsSystemType(name) || used.Contains(name) {
			continue
		}
		delete(r.types, name)
		delete(r.implements, name)
		removed = append(removed, name)
	}

	if len(removed) == 0 {
		return
	}

	for _, interfaces := range r.implements {
		for _, name := range removed {
			interfaces.Remove(name)
		}
	}

	r.logger.V(1).Info("removed unused types", "types", removed)
}

// FindVisibleTypes returns names of types that the viewer carried in ctx may observe: types reached
// from the roots through visible types, fields and arguments, plus visible interfaces with at least
// one visible possible type. Built-in scalars and introspection types are always included. The
// result is sorted and owned by the caller.
func (r *Registry) FindVisibleTypes(ctx context.Context) NameSet {
	visible := r.graph().visibleTypes(ctx)
	log.FromContext(ctx).V(2).Info("found visible types", "count", visible.Len())
	return visible
}

// possibleTypes returns possible types of an abstract type including implements edges that are not
// yet merged.
func (r *Registry) possibleTypes(t MetaType) *NameSet {
	possibleTypes := PossibleTypesOf(t)
	iface, ok := t.(*InterfaceType)
	if !ok {
		return possibleTypes
	}

	merged := &NameSet{}
	merged.Extend(possibleTypes)
	for _, typeName := range sortedKeys(r.implements) {
		if r.implements[typeName].Contains(iface.Name) {
			merged.Add(typeName)
		}
	}
	return merged
}

// TypeOverlap returns true if a value could be of both types a and b.
func (r *Registry) TypeOverlap(a, b MetaType) bool {
	return typeOverlap(a, b, r.possibleTypes)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
