package wisptest

import (
	"testing"
)

func TestLoops(t *testing.T) {
	tests := TestSuite{
		{"while", TestSequence{
			{"(define i 0)", "0"},
			{"(while (< i 3) (define i (+ i 1)))", "3"},
			{"i", "3"},
			{"(while 0 1)", "@"},
		}},
		{"while accumulates", TestSequence{
			{"(define total 0) (define n 1)", "1"},
			{"(while (<= n 10) (define total (+ total n)) (define n (+ n 1)))", "11"},
			{"total", "55"},
		}},
		{"for", TestSequence{
			{"(for i (range 0 3) i)", "2"},
			{"i", "2"},
			{"(for j (list) j)", "@"},
		}},
		{"for mutates the current scope", TestSequence{
			{"(define acc (list))", "()"},
			{"(for x (range 1 4) (define acc (push acc x)))", "(1 2 3)"},
			{"acc", "(1 2 3)"},
		}},
	}
	RunTestSuite(t, tests)
}
