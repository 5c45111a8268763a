package wisptest

import (
	"testing"
)

func TestArithmetic(t *testing.T) {
	tests := TestSuite{
		{"integer arithmetic", TestSequence{
			{"(+ 1 2 3)", "6"},
			{"(- 5 2)", "3"},
			{"(* 2 3 4)", "24"},
			{"(/ 7 2)", "3"},
			{"(% 7 3)", "1"},
			{"(- 2 5)", "-3"},
		}},
		{"float promotion", TestSequence{
			{"(+ 1.5 2)", "3.5"},
			{"(+ 2 1.5)", "3.5"},
			{"(* 2 0.5)", "1"},
			{"(/ 7.0 2)", "3.5"},
			{"(% 7.5 2)", "1.5"},
		}},
		{"unit absorbs", TestSequence{
			{"(+ 1 @)", "@"},
			{"(+ @ 1)", "@"},
			{"(- @ 1)", "@"},
			{"(* 2 @)", "@"},
			{"(/ @ 2)", "@"},
			{"(% @ 2)", "@"},
		}},
		{"concatenation", TestSequence{
			{`(+ "foo" "bar")`, `"foobar"`},
			{"(+ (list 1 2) (list 3))", "(1 2 3)"},
			{"(+ (list) (list 1))", "(1)"},
		}},
	}
	RunTestSuite(t, tests)
}

func TestComparison(t *testing.T) {
	tests := TestSuite{
		{"equality", TestSequence{
			{"(= 1 1)", "1"},
			{"(= 1 2)", "0"},
			{"(= 1 1.0)", "1"},
			{"(= 1.0 1)", "1"},
			{`(= "a" "a")`, "1"},
			{`(= "a" 'a)`, "0"},
			{"(= (list 1 2) (list 1 2))", "1"},
			{"(= (list 1) (list 2))", "0"},
			{"(= @ @)", "1"},
			{"(!= 1 2)", "1"},
			{"(!= 1 1)", "0"},
		}},
		{"builtin identity", TestSequence{
			{"(= head head)", "1"},
			{"(= head first)", "1"},
			{"(= last pop)", "1"},
			{"(= head pop)", "0"},
		}},
		{"ordering", TestSequence{
			{"(< 1 2)", "1"},
			{"(< 2 1)", "0"},
			{"(< 1.5 2)", "1"},
			{"(> 2 1)", "1"},
			{"(<= 2 2)", "1"},
			{"(<= 3 2)", "0"},
			{"(>= 2 2)", "1"},
			{"(>= 1 2)", "0"},
		}},
		{"truthiness", TestSequence{
			{"(if 1 'yes 'no)", "yes"},
			{"(if 0 'yes 'no)", "no"},
			{"(if 0.0 'yes 'no)", "no"},
			{"(if @ 'yes 'no)", "yes"},
			{"(if (list) 'yes 'no)", "yes"},
			{`(if "" 'yes 'no)`, "yes"},
			{"(if (= 1 1) 'yes 'no)", "yes"},
		}},
	}
	RunTestSuite(t, tests)
}
