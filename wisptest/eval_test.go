package wisptest

import (
	"testing"
)

func TestEval(t *testing.T) {
	tests := TestSuite{
		{"self evaluating", TestSequence{
			{"3", "3"},
			{"3.5", "3.5"},
			{`"hello"`, `"hello"`},
			{"@", "@"},
		}},
		{"quotes", TestSequence{
			{"'3", "3"},
			{"''3", "'3"},
			{"'x", "x"},
			{"'(1 2 3)", "(1 2 3)"},
			{"(quote 1 2 3)", "(1 2 3)"},
			{"(quote (+ 1 2))", "((+ 1 2))"},
		}},
		{"function basics", TestSequence{
			{"(lambda (x) x)", "(lambda (x) x)"},
			{"((lambda (x) x) 1)", "1"},
			{"((lambda () 2))", "2"},
			{"((lambda (x y) (+ x y)) 1 2)", "3"},
			{"(lambda (x) (+ x 1))", "(lambda (x) (+ x 1))"},
		}},
		{"define", TestSequence{
			{"(define x 10)", "10"},
			{"x", "10"},
			{"(define y (+ x 1))", "11"},
			{"y", "11"},
		}},
		{"defun", TestSequence{
			{"(defun add-one (n) (+ n 1))", "(lambda (n) (+ n 1))"},
			{"(add-one 2)", "3"},
		}},
		{"recursion", TestSequence{
			{"(define fact (lambda (n) (if (<= n 1) 1 (* n (fact (- n 1)))))) (fact 5)", "120"},
		}},
		{"closures", TestSequence{
			{"(define make-adder (lambda (n) (lambda (m) (+ m n))))",
				"(lambda (n) (lambda (m) (+ m n)))"},
			{"(define add-five (make-adder 5))", "(lambda (m) (+ m n))"},
			{"(add-five 2)", "7"},
			{"(define n 100)", "100"},
			{"(add-five 2)", "7"},
		}},
		{"eval and parse", TestSequence{
			{"(eval '(+ 1 2))", "3"},
			{"(eval (head (parse \"(+ 2 3)\")))", "5"},
			{`(parse "1 2")`, "(1 2)"},
		}},
		{"type names", TestSequence{
			{"(type 1)", `"int"`},
			{"(type 1.5)", `"float"`},
			{`(type "s")`, `"string"`},
			{"(type 'x)", `"atom"`},
			{"(type (list))", `"list"`},
			{"(type @)", `"unit"`},
			{"(type type)", `"function"`},
			{"(type (lambda (x) x))", `"function"`},
		}},
		{"multiple expressions", TestSequence{
			{"(define a 1) (define b 2) (+ a b)", "3"},
		}},
	}
	RunTestSuite(t, tests)
}
