package lisp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorDescription(t *testing.T) {
	env := NewEnv(nil)
	err := &Error{Kind: AtomNotDefined, Cause: Atom("x"), Env: env}
	assert.Equal(t,
		"error: the expression `x` failed in scope { } with message \"atom not defined\"",
		err.Error())

	env.Put("y", Int(1))
	err = &Error{Kind: CallNonFunction, Cause: Int(3), Env: env}
	assert.Equal(t,
		"error: the expression `3` failed in scope { 'y' : 1, } with message \"called non-function\"",
		err.Error())
}

func TestParseErrorDescription(t *testing.T) {
	err := &Error{Kind: MalformedProgram}
	assert.Equal(t, "malformed program", err.Error())
}
