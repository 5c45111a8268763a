package wisptest

import (
	"testing"
)

func TestStrings(t *testing.T) {
	tests := TestSuite{
		{"replace", TestSequence{
			{`(replace "aaa" "a" "b")`, `"bbb"`},
			{`(replace "hello world" "world" "wisp")`, `"hello wisp"`},
			{`(replace "abc" "x" "y")`, `"abc"`},
		}},
		{"display and debug", TestSequence{
			{`(display "hi")`, `"hi"`},
			{`(debug "hi")`, `"\"hi\""`},
			{"(display 'x)", `"x"`},
			{"(display (list 1 2))", `"(1 2)"`},
			{"(debug @)", `"@"`},
		}},
		{"concatenation with endl", TestSequence{
			{`(len (parse (+ "1 2" endl "3")))`, "3"},
		}},
		{"casts", TestSequence{
			{"(int 3.7)", "3"},
			{"(int 3)", "3"},
			{"(float 3)", "3"},
			{"(float 1.5)", "1.5"},
		}},
	}
	RunTestSuite(t, tests)
}
