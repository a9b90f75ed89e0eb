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
	"sort"

	"github.com/botobag/typereg/typeref"
)

// typeGraph is a read view over a set of finished types that the reachability algorithms walk.
type typeGraph struct {
	types      map[string]MetaType
	directives map[string]*MetaDirective

	// Names of types that are always reachable in the order to visit
	roots []string
}

// sortedTypeNames returns names of all types in lexical order.
func (g *typeGraph) sortedTypeNames() []string {
	names := make([]string, 0, len(g.types))
	for name := range g.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (g *typeGraph) sortedDirectives() []*MetaDirective {
	directives := make([]*MetaDirective, 0, len(g.directives))
	for _, directive := range g.directives {
		directives = append(directives, directive)
	}
	sort.Slice(directives, func(i, j int) bool {
		return directives[i].Name < directives[j].Name
	})
	return directives
}

// typeWalker walks the graph depth-first from a set of type references and collects names of types
// that are reached. A gated walk checks visibility against the viewer in ctx: an invisible type,
// field, argument or input field blocks the traversal through it.
type typeWalker struct {
	graph   *typeGraph
	gated   bool
	ctx     context.Context
	reached NameSet
	stack   []string
}

func (w *typeWalker) visible(visible VisibleFunc) bool {
	return !w.gated || isVisible(w.ctx, visible)
}

func (w *typeWalker) pushInputValues(values *InputValueMap) {
	for _, value := range values.Values() {
		if w.visible(value.Visible) {
			w.stack = append(w.stack, typeref.ConcreteTypeName(value.Type))
		}
	}
}

func (w *typeWalker) pushFields(fields *FieldMap) {
	for _, field := range fields.Values() {
		if !w.visible(field.Visible) {
			continue
		}
		w.stack = append(w.stack, typeref.ConcreteTypeName(field.Type))
		w.pushInputValues(&field.Args)
	}
}

// walk visits every type reachable from the given type names.
func (w *typeWalker) walk(names ...string) {
	// Push in reverse order so the first name is visited first.
	for i := len(names) - 1; i >= 0; i-- {
		w.stack = append(w.stack, names[i])
	}

	for len(w.stack) > 0 {
		name := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]

		if w.reached.Contains(name) {
			continue
		}

		t, exists := w.graph.types[name]
		if !exists || !w.visible(t.Info().Visible) {
			continue
		}
		w.reached.Add(name)

		switch t := t.(type) {
		case *ObjectType:
			w.pushFields(&t.Fields)

		case *InterfaceType:
			w.pushFields(&t.Fields)
			w.stack = append(w.stack, t.PossibleTypes.Names()...)

		case *UnionType:
			w.stack = append(w.stack, t.PossibleTypes.Names()...)

		case *InputObjectType:
			w.pushInputValues(&t.InputFields)

		case *ScalarType, *EnumType:
			// Leaf
		}
	}
}

// walkRoots visits every type reachable from directive arguments and the graph roots.
func (w *typeWalker) walkRoots() {
	for _, directive := range w.graph.sortedDirectives() {
		if !w.visible(directive.Visible) {
			continue
		}
		w.pushInputValues(&directive.Args)
		w.walk()
	}
	w.walk(w.graph.roots...)
}

// reachableTypes returns names of types that are reachable from the roots.
func (g *typeGraph) reachableTypes() *NameSet {
	w := &typeWalker{graph: g}
	w.walkRoots()
	return &w.reached
}

// visibleTypes returns names of types that the viewer in ctx may observe.
func (g *typeGraph) visibleTypes(ctx context.Context) NameSet {
	w := &typeWalker{
		graph: g,
		gated: true,
		ctx:   ctx,
	}
	w.walkRoots()

	// Interfaces that are not reached from the roots but have a visible implementation remain
	// introspectable.
	names := g.sortedTypeNames()
	for _, name := range names {
		iface, ok := g.types[name].(*InterfaceType)
		if !ok || w.reached.Contains(name) || !isVisible(ctx, iface.Visible) {
			continue
		}
		for _, possibleType := range iface.PossibleTypes.Names() {
			if w.reached.Contains(possibleType) {
				w.walk(name)
				break
			}
		}
	}

	var result NameSet
	for _, name := range names {
		if IsSystemType(name) || w.reached.Contains(name) {
			result.Add(name)
		}
	}
	return result
}
