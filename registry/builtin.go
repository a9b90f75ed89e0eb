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
	"math"
	"strings"
)

// Names of the built-in scalars
const (
	IntTypeName     = "Int"
	FloatTypeName   = "Float"
	StringTypeName  = "String"
	BooleanTypeName = "Boolean"
	IDTypeName      = "ID"
)

func builtinScalars() []*ScalarType {
	return []*ScalarType{
		{
			TypeInfo: TypeInfo{
				Name: IntTypeName,
				Description: "The `Int` scalar type represents non-fractional signed whole numeric values. Int " +
					"can represent values between -(2^31) and 2^31 - 1.",
			},
			IsValid: isValidInt,
		},
		{
			TypeInfo: TypeInfo{
				Name: FloatTypeName,
				Description: "The `Float` scalar type represents signed double-precision fractional values as " +
					"specified by [IEEE 754](http://en.wikipedia.org/wiki/IEEE_floating_point).",
			},
			IsValid: isValidFloat,
		},
		{
			TypeInfo: TypeInfo{
				Name: StringTypeName,
				Description: "The `String` scalar type represents textual data, represented as UTF-8 " +
					"character sequences.",
			},
			IsValid: func(value interface{}) bool {
				_, ok := value.(string)
				return ok
			},
		},
		{
			TypeInfo: TypeInfo{
				Name:        BooleanTypeName,
				Description: "The `Boolean` scalar type represents `true` or `false`.",
			},
			IsValid: func(value interface{}) bool {
				_, ok := value.(bool)
				return ok
			},
		},
		{
			TypeInfo: TypeInfo{
				Name: IDTypeName,
				Description: "The `ID` scalar type represents a unique identifier, often used to refetch an " +
					"object or as key for a cache.",
			},
			IsValid: func(value interface{}) bool {
				switch value.(type) {
				case string:
					return true
				default:
					return isValidInt(value)
				}
			},
		},
	}
}

func isValidInt(value interface{}) bool {
	switch value := value.(type) {
	case int:
		return value >= math.MinInt32 && value <= math.MaxInt32
	case int8, int16, int32, uint8, uint16:
		return true
	case int64:
		return value >= math.MinInt32 && value <= math.MaxInt32
	case uint32:
		return value <= math.MaxInt32
	case float64:
		return value == math.Trunc(value) && value >= math.MinInt32 && value <= math.MaxInt32
	}
	return false
}

func isValidFloat(value interface{}) bool {
	switch value := value.(type) {
	case float32:
		return true
	case float64:
		return !math.IsNaN(value) && !math.IsInf(value, 0)
	}
	return isValidInt(value)
}

// IsBuiltinScalar returns true if name is one of Int, Float, String, Boolean and ID.
func IsBuiltinScalar(name string) bool {
	switch name {
	case IntTypeName, FloatTypeName, StringTypeName, BooleanTypeName, IDTypeName:
		return true
	}
	return false
}

// IsSystemType returns true for built-in scalars and introspection types. They are never pruned
// and are always visible.
func IsSystemType(name string) bool {
	return strings.HasPrefix(name, "__") || IsBuiltinScalar(name)
}
