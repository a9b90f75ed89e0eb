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
	"sort"
)

// OrderedMap maps names to values and remembers the order in which names were first added. The
// zero value is an empty map ready to use.
type OrderedMap[V any] struct {
	names  []string
	values map[string]V
}

// Set maps name to value. A name that is already present keeps its position.
func (m *OrderedMap[V]) Set(name string, value V) {
	if m.values == nil {
		m.values = map[string]V{}
	}
	if _, exists := m.values[name]; !exists {
		m.names = append(m.names, name)
	}
	m.values[name] = value
}

// Get returns the value for name.
func (m *OrderedMap[V]) Get(name string) (V, bool) {
	value, exists := m.values[name]
	return value, exists
}

// Has returns true if name is present.
func (m *OrderedMap[V]) Has(name string) bool {
	_, exists := m.values[name]
	return exists
}

// Delete removes name from the map.
func (m *OrderedMap[V]) Delete(name string) {
	if _, exists := m.values[name]; !exists {
		return
	}
	delete(m.values, name)
	for i, n := range m.names {
		if n == name {
			m.names = append(m.names[:i:i], m.names[i+1:]...)
			break
		}
	}
}

// Len returns the number of entries.
func (m *OrderedMap[V]) Len() int {
	return len(m.names)
}

// Names returns names in insertion order.
func (m *OrderedMap[V]) Names() []string {
	names := make([]string, len(m.names))
	copy(names, m.names)
	return names
}

// Values returns values in insertion order.
func (m *OrderedMap[V]) Values() []V {
	values := make([]V, len(m.names))
	for i, name := range m.names {
		values[i] = m.values[name]
	}
	return values
}

// FieldMap maps field name to the Field in an Object or an Interface.
type FieldMap = OrderedMap[*Field]

// InputValueMap maps name to the InputValue for arguments and input object fields.
type InputValueMap = OrderedMap[*InputValue]

// EnumValueMap maps enum value name to its EnumValue.
type EnumValueMap = OrderedMap[*EnumValue]

// NameSet is a set of names that remembers insertion order. The zero value is an empty set ready
// to use.
type NameSet struct {
	names []string
	index map[string]struct{}
}

// NewNameSet creates a NameSet containing the given names.
func NewNameSet(names ...string) NameSet {
	var set NameSet
	for _, name := range names {
		set.Add(name)
	}
	return set
}

// Add inserts name and returns true if it was not present.
func (set *NameSet) Add(name string) bool {
	if set.index == nil {
		set.index = map[string]struct{}{}
	}
	if _, exists := set.index[name]; exists {
		return false
	}
	set.index[name] = struct{}{}
	set.names = append(set.names, name)
	return true
}

// Extend adds every name in other.
func (set *NameSet) Extend(other *NameSet) {
	for _, name := range other.names {
		set.Add(name)
	}
}

// Remove deletes name from the set.
func (set *NameSet) Remove(name string) {
	if _, exists := set.index[name]; !exists {
		return
	}
	delete(set.index, name)
	for i, n := range set.names {
		if n == name {
			set.names = append(set.names[:i:i], set.names[i+1:]...)
			break
		}
	}
}

// Contains returns true if name is in the set.
func (set *NameSet) Contains(name string) bool {
	_, exists := set.index[name]
	return exists
}

// Len returns the size of the set.
func (set *NameSet) Len() int {
	return len(set.names)
}

// Names returns members in insertion order.
func (set *NameSet) Names() []string {
	names := make([]string, len(set.names))
	copy(names, set.names)
	return names
}

// Sorted returns members in lexical order.
func (set *NameSet) Sorted() []string {
	names := set.Names()
	sort.Strings(names)
	return names
}

// Intersects returns true if set and other share at least one name.
func (set *NameSet) Intersects(other *NameSet) bool {
	small, large := set, other
	if small.Len() > large.Len() {
		small, large = large, small
	}
	for _, name := range small.names {
		if large.Contains(name) {
			return true
		}
	}
	return false
}
