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
	"strconv"
)

// CacheControl is the cache hint of an object or a field. The zero value means public with no
// max age.
//
// Reference: https://www.apollographql.com/docs/apollo-server/performance/caching/
type CacheControl struct {
	// Private forbids shared caches from storing the response.
	Private bool

	// MaxAge in seconds; Zero means no limit was given.
	MaxAge int
}

// Merge combines two hints into the most restrictive one: the smallest positive max age wins and
// private wins over public.
func (c CacheControl) Merge(other CacheControl) CacheControl {
	result := CacheControl{
		Private: c.Private || other.Private,
		MaxAge:  c.MaxAge,
	}
	if other.MaxAge > 0 && (result.MaxAge == 0 || other.MaxAge < result.MaxAge) {
		result.MaxAge = other.MaxAge
	}
	return result
}

// Value renders the hint as the value of an HTTP Cache-Control header. It returns an empty string
// when no directive is needed.
func (c CacheControl) Value() string {
	var value string
	if c.MaxAge > 0 {
		value = "max-age=" + strconv.Itoa(c.MaxAge)
	}
	if c.Private {
		if len(value) > 0 {
			value += ", "
		}
		value += "private"
	}
	return value
}
