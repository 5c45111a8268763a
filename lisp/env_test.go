package lisp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvLookup(t *testing.T) {
	parent := NewEnv(nil)
	parent.Put("x", Int(1))
	child := NewEnv(parent)
	child.Put("y", Int(2))

	v, err := child.Get("y")
	require.NoError(t, err)
	assert.True(t, v.Equal(Int(2)))

	v, err = child.Get("x")
	require.NoError(t, err)
	assert.True(t, v.Equal(Int(1)))

	_, err = child.Get("z")
	assertKind(t, err, AtomNotDefined)
}

func TestEnvReservedNames(t *testing.T) {
	env := NewEnv(nil)

	v, err := env.Get("+")
	require.NoError(t, err)
	assert.Equal(t, VBuiltin, v.Type)

	// User definitions cannot shadow a reserved name.
	env.Put("+", Int(0))
	v, err = env.Get("+")
	require.NoError(t, err)
	assert.Equal(t, VBuiltin, v.Type)

	v, err = env.Get("endl")
	require.NoError(t, err)
	assert.True(t, v.Equal(String("\n")))
}

func TestEnvAliases(t *testing.T) {
	env := NewEnv(nil)
	head, err := env.Get("head")
	require.NoError(t, err)
	first, err := env.Get("first")
	require.NoError(t, err)
	assert.True(t, head.Equal(first))
	assert.Equal(t, "first", first.Str)
}

func TestEnvHas(t *testing.T) {
	parent := NewEnv(nil)
	parent.Put("x", Int(1))
	child := NewEnv(parent)

	assert.True(t, child.Has("x"))
	assert.False(t, child.Has("y"))
	// Builtins are not counted; they are never captured into lambda scopes.
	assert.False(t, child.Has("+"))
	assert.False(t, child.Has("head"))
}

func TestEnvCombine(t *testing.T) {
	env := NewEnv(nil)
	env.Put("a", Int(1))
	env.Put("b", Int(2))
	other := NewEnv(nil)
	other.Put("b", Int(20))
	other.Put("c", Int(30))

	env.Combine(other)
	assert.Equal(t, "{ 'a' : 1, 'b' : 20, 'c' : 30, }", env.String())
}

func TestEnvCopy(t *testing.T) {
	parent := NewEnv(nil)
	parent.Put("x", Int(1))
	env := NewEnv(parent)
	env.Put("y", Int(2))

	cp := env.Copy()
	cp.Put("y", Int(20))
	cp.Put("z", Int(3))

	v, err := env.Get("y")
	require.NoError(t, err)
	assert.True(t, v.Equal(Int(2)))
	assert.False(t, env.Has("z"))
	// The copy still sees bindings through the shared parent.
	assert.True(t, cp.Has("x"))
}

func TestEnvString(t *testing.T) {
	env := NewEnv(nil)
	assert.Equal(t, "{ }", env.String())
	env.Put("b", Int(2))
	env.Put("a", String("x"))
	assert.Equal(t, `{ 'a' : "x", 'b' : 2, }`, env.String())
}
