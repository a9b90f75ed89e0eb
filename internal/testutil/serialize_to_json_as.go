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

package testutil

import (
	"fmt"
	"reflect"

	jsoniter "github.com/json-iterator/go"
	"github.com/onsi/gomega/format"
	"github.com/onsi/gomega/types"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type serializeToJSONAsMatcher struct {
	expected interface{}

	// Set by Match for failure messages
	actualJSON   string
	expectedJSON string
}

// SerializeToJSONAs returns a Gomega matcher that serializes actual into JSON, decodes the JSON into
// a value of the same type as expected and compares the result against expected (also through a
// JSON round trip so that numbers and maps compare equal).
//
//	Expect(schema).Should(SerializeToJSONAs(map[string]interface{}{
//		"queryType": "Query",
//		...
//	}))
func SerializeToJSONAs(expected interface{}) types.GomegaMatcher {
	return &serializeToJSONAsMatcher{
		expected: expected,
	}
}

func (matcher *serializeToJSONAsMatcher) normalize(value interface{}, what string) (interface{}, string, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, "", fmt.Errorf("SerializeToJSONAs matcher cannot encode %s into JSON: %s", what, err)
	}
	decoded := reflect.New(reflect.TypeOf(matcher.expected))
	if err := json.Unmarshal(data, decoded.Interface()); err != nil {
		return nil, "", fmt.Errorf("SerializeToJSONAs matcher cannot decode %s into %s: %s",
			what, decoded.Type().Elem(), err)
	}
	return decoded.Elem().Interface(), string(data), nil
}

// Match implements types.GomegaMatcher.
func (matcher *serializeToJSONAsMatcher) Match(actual interface{}) (success bool, err error) {
	if matcher.expected == nil {
		return false, fmt.Errorf("SerializeToJSONAs matcher expects a non-nil expected value")
	}

	decodedActual, actualJSON, err := matcher.normalize(actual, "actual")
	if err != nil {
		return false, err
	}
	decodedExpected, expectedJSON, err := matcher.normalize(matcher.expected, "expected")
	if err != nil {
		return false, err
	}
	matcher.actualJSON, matcher.expectedJSON = actualJSON, expectedJSON

	return reflect.DeepEqual(decodedActual, decodedExpected), nil
}

// FailureMessage implements types.GomegaMatcher.
func (matcher *serializeToJSONAsMatcher) FailureMessage(actual interface{}) (message string) {
	return format.Message(matcher.actualJSON, "to serialize to JSON value as", matcher.expectedJSON)
}

// NegatedFailureMessage implements types.GomegaMatcher.
func (matcher *serializeToJSONAsMatcher) NegatedFailureMessage(actual interface{}) (message string) {
	return format.Message(matcher.actualJSON, "not to serialize to JSON value as", matcher.expectedJSON)
}
