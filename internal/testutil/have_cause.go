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
	"errors"
	"fmt"
	"reflect"

	"github.com/onsi/gomega/format"
	"github.com/onsi/gomega/types"
)

type haveCauseMatcher struct {
	target interface{}
}

// HaveCause returns a Gomega matcher that succeeds if errors.As finds an error in the chain of
// actual that can be assigned to target. target must be a non-nil pointer to an error type, for
// example new(*registry.UnknownTypeError). On success, target holds the found error.
func HaveCause(target interface{}) types.GomegaMatcher {
	return &haveCauseMatcher{
		target: target,
	}
}

// Match implements types.GomegaMatcher.
func (matcher *haveCauseMatcher) Match(actual interface{}) (success bool, err error) {
	if actual == nil {
		return false, nil
	}

	actualErr, ok := actual.(error)
	if !ok {
		return false, fmt.Errorf("HaveCause matcher expects an error. Got:\n%s", format.Object(actual, 1))
	}

	targetValue := reflect.ValueOf(matcher.target)
	if !targetValue.IsValid() || targetValue.Kind() != reflect.Ptr || targetValue.IsNil() {
		return false, fmt.Errorf("HaveCause matcher expects a non-nil pointer as target. Got:\n%s",
			format.Object(matcher.target, 1))
	}

	return errors.As(actualErr, matcher.target), nil
}

// FailureMessage implements types.GomegaMatcher.
func (matcher *haveCauseMatcher) FailureMessage(actual interface{}) (message string) {
	return fmt.Sprintf("Expected\n%s\nto have a cause of type %s",
		format.Object(actual, 1), reflect.TypeOf(matcher.target).Elem())
}

// NegatedFailureMessage implements types.GomegaMatcher.
func (matcher *haveCauseMatcher) NegatedFailureMessage(actual interface{}) (message string) {
	return fmt.Sprintf("Expected\n%s\nnot to have a cause of type %s",
		format.Object(actual, 1), reflect.TypeOf(matcher.target).Elem())
}
