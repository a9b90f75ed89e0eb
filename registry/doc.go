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

// Package registry builds the canonical model of the types in a GraphQL schema.
//
// Registration
//
// A Registry is filled by a single pass of CreateType calls. Each call binds a GraphQL name to a
// BuildFunc that fills the MetaType for the name and registers every type the MetaType refers to
// through the same Registry. Before the BuildFunc runs, a placeholder is bound to the name. A call
// for a name whose placeholder is still in place returns immediately without building again. This
// makes it possible to register types that refer to themselves, directly or through other types,
// without unbounded recursion:
//
//	r.CreateType("User", origin, registry.TypeKindObject, func(r *registry.Registry) (registry.MetaType, error) {
//		// Registering User again here returns immediately.
//		if err := r.CreateType("User", origin, registry.TypeKindObject, buildUser); err != nil {
//			return nil, err
//		}
//		return registry.NewObjectType("User", &registry.Field{Name: "friends", Type: "[User!]!"}), nil
//	})
//
// Every name is bound to at most one type and the kind of a name never changes. Registering the
// same name from two definitions (identified by the origin passed to CreateType) is an error unless
// the name is whitelisted in Config.IgnoreNameConflicts.
//
// Finalization
//
// Finish validates the registry, synthesizes federation types, removes types unreachable from the
// roots and returns an immutable Schema that can be shared by concurrent requests. Derived views
// (FindVisibleTypes, TypeOverlap, PossibleTypes) are deterministic regardless of the order in which
// types were registered.
package registry
