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

// typeOverlap implements TypeOverlap with possibleTypes to resolve the possible types of an abstract
// type.
//
// Two types overlap if:
//
//  1. They are the same type.
//  2. Both are abstract and share a possible type.
//  3. One is abstract and the other is one of its possible types.
func typeOverlap(a, b MetaType, possibleTypes func(t MetaType) *NameSet) bool {
	if a == nil || b == nil {
		return false
	}

	if a == b {
		return true
	}

	switch {
	case IsAbstractType(a) && IsAbstractType(b):
		return possibleTypes(a).Intersects(possibleTypes(b))

	case IsAbstractType(a):
		return possibleTypes(a).Contains(b.TypeName())

	case IsAbstractType(b):
		return possibleTypes(b).Contains(a.TypeName())
	}

	return false
}
