// Package wisptest provides a table-driven harness for end-to-end
// interpreter tests.
package wisptest

import (
	"testing"

	"github.com/adam-mcdaniel/wisp/lisp"
	"github.com/adam-mcdaniel/wisp/parser"
)

// TestSequence is a sequence of wisp expressions which are evaluated
// sequentially against a single environment.
type TestSequence []struct {
	Expr   string // a wisp expression
	Result string // the debug form of the result, or the error description
}

// TestSuite is a set of named TestSequences.
type TestSuite []struct {
	Name string
	TestSequence
}

// RunTestSuite runs each TestSequence on an isolated environment.
func RunTestSuite(t *testing.T, tests TestSuite) {
	for i, test := range tests {
		env := lisp.NewEnv(nil)
		env.Reader = parser.NewReader()
		for j, expr := range test.TestSequence {
			var got string
			result, err := lisp.Run(expr.Expr, env)
			if err != nil {
				got = err.Error()
			} else {
				got = result.Debug()
			}
			if got != expr.Result {
				t.Errorf("test %d %q: expr %d: expected result %s (got %s)",
					i, test.Name, j, expr.Result, got)
			}
		}
	}
}
