package wisptest

import (
	"testing"
)

func TestScope(t *testing.T) {
	tests := TestSuite{
		{"scope does not leak", TestSequence{
			{"(define x 10)", "10"},
			{"(scope (define x 20) x)", "20"},
			{"x", "10"},
		}},
		{"scope sees outer bindings", TestSequence{
			{"(define x 1)", "1"},
			{"(scope (+ x 1))", "2"},
		}},
		{"do shares the caller scope", TestSequence{
			{"(do (define y 5) y)", "5"},
			{"y", "5"},
			{"(do)", "@"},
		}},
		{"builtins are not shadowable", TestSequence{
			{"(define + 0)", "0"},
			{"(+ 1 2)", "3"},
		}},
		{"lambda parameters do not leak", TestSequence{
			{"((lambda (z) z) 1)", "1"},
			{"z", "error: the expression `z` failed in scope { } with message \"atom not defined\""},
		}},
	}
	RunTestSuite(t, tests)
}
