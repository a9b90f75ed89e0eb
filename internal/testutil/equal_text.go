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

	"github.com/onsi/gomega/format"
	"github.com/onsi/gomega/types"
	"github.com/pmezard/go-difflib/difflib"
)

type equalTextMatcher struct {
	expected string
}

// EqualText returns a Gomega matcher that compares actual (a string or a []byte) with expected and
// reports a unified diff on mismatch.
func EqualText(expected string) types.GomegaMatcher {
	return &equalTextMatcher{
		expected: expected,
	}
}

func toText(actual interface{}) (string, bool) {
	switch actual := actual.(type) {
	case string:
		return actual, true
	case []byte:
		return string(actual), true
	case fmt.Stringer:
		return actual.String(), true
	}
	return "", false
}

// Match implements types.GomegaMatcher.
func (matcher *equalTextMatcher) Match(actual interface{}) (success bool, err error) {
	text, ok := toText(actual)
	if !ok {
		return false, fmt.Errorf("EqualText matcher expects a string or []byte. Got:\n%s", format.Object(actual, 1))
	}
	return text == matcher.expected, nil
}

// FailureMessage implements types.GomegaMatcher.
func (matcher *equalTextMatcher) FailureMessage(actual interface{}) (message string) {
	text, _ := toText(actual)
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(matcher.expected),
		B:        difflib.SplitLines(text),
		FromFile: "expected",
		ToFile:   "actual",
		Context:  5,
	})
	if err != nil {
		return fmt.Sprintf("Expected\n%s\nto equal\n%s", text, matcher.expected)
	}
	return "Text mismatch:\n" + diff
}

// NegatedFailureMessage implements types.GomegaMatcher.
func (matcher *equalTextMatcher) NegatedFailureMessage(actual interface{}) (message string) {
	return fmt.Sprintf("Expected text not to equal\n%s", matcher.expected)
}
