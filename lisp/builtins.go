package lisp

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"
)

// BuiltinFn is the signature shared by every builtin function.  Arguments
// arrive unevaluated; a builtin that is not a special form evaluates them
// itself with evalArgs.
type BuiltinFn func(env *Env, args []*Value) (*Value, error)

// BuiltinDef is a named host-implemented function.  Two builtin values are
// equal exactly when they share a definition, so aliases registered under
// several names compare equal.
type BuiltinDef struct {
	name string
	fn   BuiltinFn
}

// Name returns the canonical name of the builtin.
func (def *BuiltinDef) Name() string {
	return def.name
}

var langBuiltins = []*BuiltinDef{
	// Meta operations
	{"eval", builtinEval},
	{"type", builtinTypeName},
	{"parse", builtinParse},

	// Comparison operations
	{"=", builtinEq},
	{"!=", builtinNeq},
	{">", builtinGreater},
	{"<", builtinLess},
	{">=", builtinGreaterEq},
	{"<=", builtinLessEq},

	// Arithmetic operations
	{"+", builtinSum},
	{"-", builtinSub},
	{"*", builtinProduct},
	{"/", builtinDiv},
	{"%", builtinRem},

	// List operations
	{"list", builtinList},
	{"insert", builtinInsert},
	{"index", builtinIndex},
	{"remove", builtinRemove},
	{"len", builtinLen},
	{"push", builtinPush},
	{"pop", builtinPop},
	{"head", builtinHead},
	{"tail", builtinTail},
	{"range", builtinRange},

	// Functional operations
	{"map", builtinMap},
	{"filter", builtinFilter},
	{"reduce", builtinReduce},

	// IO operations
	{"exit", builtinExit},
	{"print", builtinPrint},
	{"input", builtinInput},
	{"random", builtinRandom},
	{"include", builtinInclude},
	{"read-file", builtinReadFile},
	{"write-file", builtinWriteFile},

	// Formatting operations
	{"debug", builtinDebug},
	{"replace", builtinReplace},
	{"display", builtinDisplay},

	// Casting operations
	{"int", builtinCastInt},
	{"float", builtinCastFloat},
}

// The reserved name table consulted by Env.Get before user definitions.
var builtinRegistry = make(map[string]*BuiltinDef)

func init() {
	for _, def := range langSpecialForms {
		builtinRegistry[def.name] = def
	}
	for _, def := range langBuiltins {
		builtinRegistry[def.name] = def
	}
	// Aliases share the canonical definition.
	builtinRegistry["first"] = builtinRegistry["head"]
	builtinRegistry["last"] = builtinRegistry["pop"]
	builtinRegistry["quit"] = builtinRegistry["exit"]
}

func lookupBuiltin(name string) *BuiltinDef {
	return builtinRegistry[name]
}

var rng = rand.New(rand.NewSource(time.Now().UnixNano()))

var stdin = bufio.NewReader(os.Stdin)

// evalArgs evaluates every argument in place.
func evalArgs(env *Env, args []*Value) error {
	for i, a := range args {
		v, err := env.Eval(a)
		if err != nil {
			return err
		}
		args[i] = v
	}
	return nil
}

func berr(name string, env *Env, kind Kind) error {
	return &Error{Kind: kind, Cause: Fun(name, lookupBuiltin(name)), Env: env}
}

func checkArity(name string, env *Env, args []*Value, n int) error {
	if len(args) > n {
		return berr(name, env, TooManyArgs)
	}
	if len(args) < n {
		return berr(name, env, TooFewArgs)
	}
	return nil
}

func builtinEval(env *Env, args []*Value) (*Value, error) {
	if err := evalArgs(env, args); err != nil {
		return nil, err
	}
	if err := checkArity("eval", env, args, 1); err != nil {
		return nil, err
	}
	return env.Eval(args[0])
}

func builtinTypeName(env *Env, args []*Value) (*Value, error) {
	if err := evalArgs(env, args); err != nil {
		return nil, err
	}
	if err := checkArity("type", env, args, 1); err != nil {
		return nil, err
	}
	return String(args[0].TypeName()), nil
}

func builtinParse(env *Env, args []*Value) (*Value, error) {
	if err := evalArgs(env, args); err != nil {
		return nil, err
	}
	if err := checkArity("parse", env, args, 1); err != nil {
		return nil, err
	}
	if args[0].Type != VString {
		return nil, &Error{Kind: InvalidArgument, Cause: args[0], Env: env}
	}
	reader := env.root().Reader
	if reader == nil {
		return nil, &Error{Kind: InternalError, Cause: args[0], Env: env}
	}
	parsed, err := reader.Read(args[0].Str)
	if err != nil {
		return nil, err
	}
	return List(parsed), nil
}

func builtinEq(env *Env, args []*Value) (*Value, error) {
	if err := evalArgs(env, args); err != nil {
		return nil, err
	}
	if err := checkArity("=", env, args, 2); err != nil {
		return nil, err
	}
	return boolInt(args[0].Equal(args[1])), nil
}

func builtinNeq(env *Env, args []*Value) (*Value, error) {
	if err := evalArgs(env, args); err != nil {
		return nil, err
	}
	if err := checkArity("!=", env, args, 2); err != nil {
		return nil, err
	}
	return boolInt(!args[0].Equal(args[1])), nil
}

func builtinLess(env *Env, args []*Value) (*Value, error) {
	return compare(env, "<", args, (*Value).Less)
}

func builtinGreater(env *Env, args []*Value) (*Value, error) {
	return compare(env, ">", args, (*Value).Greater)
}

func builtinLessEq(env *Env, args []*Value) (*Value, error) {
	return compare(env, "<=", args, (*Value).LessEq)
}

func builtinGreaterEq(env *Env, args []*Value) (*Value, error) {
	return compare(env, ">=", args, (*Value).GreaterEq)
}

func compare(env *Env, name string, args []*Value, ord func(a, b *Value) (bool, error)) (*Value, error) {
	if err := evalArgs(env, args); err != nil {
		return nil, err
	}
	if err := checkArity(name, env, args, 2); err != nil {
		return nil, err
	}
	ok, err := ord(args[0], args[1])
	if err != nil {
		return nil, withScope(err, env)
	}
	return boolInt(ok), nil
}

func boolInt(b bool) *Value {
	if b {
		return Int(1)
	}
	return Int(0)
}

// withScope fills in the fault-site scope on errors raised by the value
// operations, which have no environment of their own.
func withScope(err error, env *Env) error {
	if lerr, ok := err.(*Error); ok && lerr.Env == nil {
		lerr.Env = env
	}
	return err
}

func builtinSum(env *Env, args []*Value) (*Value, error) {
	return fold(env, "+", args, (*Value).Add)
}

func builtinProduct(env *Env, args []*Value) (*Value, error) {
	return fold(env, "*", args, (*Value).Mul)
}

// fold left-folds a variadic arithmetic builtin over at least two
// arguments.
func fold(env *Env, name string, args []*Value, op func(a, b *Value) (*Value, error)) (*Value, error) {
	if err := evalArgs(env, args); err != nil {
		return nil, err
	}
	if len(args) < 2 {
		return nil, berr(name, env, TooFewArgs)
	}
	acc := args[0]
	for _, a := range args[1:] {
		var err error
		acc, err = op(acc, a)
		if err != nil {
			return nil, withScope(err, env)
		}
	}
	return acc, nil
}

func builtinSub(env *Env, args []*Value) (*Value, error) {
	return binary(env, "-", args, (*Value).Sub)
}

func builtinDiv(env *Env, args []*Value) (*Value, error) {
	return binary(env, "/", args, (*Value).Div)
}

func builtinRem(env *Env, args []*Value) (*Value, error) {
	return binary(env, "%", args, (*Value).Mod)
}

func binary(env *Env, name string, args []*Value, op func(a, b *Value) (*Value, error)) (*Value, error) {
	if err := evalArgs(env, args); err != nil {
		return nil, err
	}
	if err := checkArity(name, env, args, 2); err != nil {
		return nil, err
	}
	result, err := op(args[0], args[1])
	if err != nil {
		return nil, withScope(err, env)
	}
	return result, nil
}

func builtinList(env *Env, args []*Value) (*Value, error) {
	if err := evalArgs(env, args); err != nil {
		return nil, err
	}
	cells := make([]*Value, len(args))
	copy(cells, args)
	return List(cells), nil
}

func builtinInsert(env *Env, args []*Value) (*Value, error) {
	if err := evalArgs(env, args); err != nil {
		return nil, err
	}
	if err := checkArity("insert", env, args, 3); err != nil {
		return nil, err
	}
	if args[0].Type != VList {
		return nil, &Error{Kind: MismatchedTypes, Cause: args[0], Env: env}
	}
	if args[1].Type != VInt {
		return nil, &Error{Kind: MismatchedTypes, Cause: args[1], Env: env}
	}
	i := args[1].Int
	if i < 0 || i > int64(len(args[0].Cells)) {
		return nil, &Error{Kind: IndexOutOfRange, Cause: args[1], Env: env}
	}
	cells := make([]*Value, 0, len(args[0].Cells)+1)
	cells = append(cells, args[0].Cells[:i]...)
	cells = append(cells, args[2])
	cells = append(cells, args[0].Cells[i:]...)
	return List(cells), nil
}

func builtinIndex(env *Env, args []*Value) (*Value, error) {
	if err := evalArgs(env, args); err != nil {
		return nil, err
	}
	if err := checkArity("index", env, args, 2); err != nil {
		return nil, err
	}
	cells, err := args[0].AsList()
	if err != nil {
		return nil, withScope(err, env)
	}
	if args[1].Type != VInt {
		return nil, &Error{Kind: MismatchedTypes, Cause: args[1], Env: env}
	}
	i := args[1].Int
	if i < 0 || i >= int64(len(cells)) {
		return nil, &Error{Kind: IndexOutOfRange, Cause: args[1], Env: env}
	}
	return cells[i], nil
}

func builtinRemove(env *Env, args []*Value) (*Value, error) {
	if err := evalArgs(env, args); err != nil {
		return nil, err
	}
	if err := checkArity("remove", env, args, 2); err != nil {
		return nil, err
	}
	cells, err := args[0].AsList()
	if err != nil {
		return nil, withScope(err, env)
	}
	if args[1].Type != VInt {
		return nil, &Error{Kind: MismatchedTypes, Cause: args[1], Env: env}
	}
	i := args[1].Int
	if i < 0 || i >= int64(len(cells)) {
		return nil, &Error{Kind: IndexOutOfRange, Cause: args[1], Env: env}
	}
	result := make([]*Value, 0, len(cells)-1)
	result = append(result, cells[:i]...)
	result = append(result, cells[i+1:]...)
	return List(result), nil
}

func builtinLen(env *Env, args []*Value) (*Value, error) {
	if err := evalArgs(env, args); err != nil {
		return nil, err
	}
	if err := checkArity("len", env, args, 1); err != nil {
		return nil, err
	}
	cells, err := args[0].AsList()
	if err != nil {
		return nil, withScope(err, env)
	}
	return Int(int64(len(cells))), nil
}

// push appends to a copy of the list; the original binding is unchanged.
func builtinPush(env *Env, args []*Value) (*Value, error) {
	if err := evalArgs(env, args); err != nil {
		return nil, err
	}
	if len(args) == 0 {
		return nil, berr("push", env, TooFewArgs)
	}
	if args[0].Type != VList {
		return nil, &Error{Kind: MismatchedTypes, Cause: args[0], Env: env}
	}
	result := args[0].Copy()
	result.Cells = append(result.Cells, args[1:]...)
	return result, nil
}

func builtinPop(env *Env, args []*Value) (*Value, error) {
	if err := evalArgs(env, args); err != nil {
		return nil, err
	}
	if err := checkArity("pop", env, args, 1); err != nil {
		return nil, err
	}
	if args[0].Type != VList {
		return nil, &Error{Kind: MismatchedTypes, Cause: args[0], Env: env}
	}
	if len(args[0].Cells) == 0 {
		return nil, &Error{Kind: IndexOutOfRange, Cause: args[0], Env: env}
	}
	return args[0].Cells[len(args[0].Cells)-1], nil
}

func builtinHead(env *Env, args []*Value) (*Value, error) {
	if err := evalArgs(env, args); err != nil {
		return nil, err
	}
	if err := checkArity("head", env, args, 1); err != nil {
		return nil, err
	}
	cells, err := args[0].AsList()
	if err != nil {
		return nil, withScope(err, env)
	}
	if len(cells) == 0 {
		return nil, &Error{Kind: IndexOutOfRange, Cause: args[0], Env: env}
	}
	return cells[0], nil
}

func builtinTail(env *Env, args []*Value) (*Value, error) {
	if err := evalArgs(env, args); err != nil {
		return nil, err
	}
	if err := checkArity("tail", env, args, 1); err != nil {
		return nil, err
	}
	cells, err := args[0].AsList()
	if err != nil {
		return nil, withScope(err, env)
	}
	if len(cells) == 0 {
		return List(nil), nil
	}
	result := make([]*Value, len(cells)-1)
	copy(result, cells[1:])
	return List(result), nil
}

// (range lo hi) counts up by one from lo while below hi.
func builtinRange(env *Env, args []*Value) (*Value, error) {
	if err := evalArgs(env, args); err != nil {
		return nil, err
	}
	if err := checkArity("range", env, args, 2); err != nil {
		return nil, err
	}
	low, high := args[0], args[1]
	if !low.IsNumber() {
		return nil, &Error{Kind: MismatchedTypes, Cause: low, Env: env}
	}
	if !high.IsNumber() {
		return nil, &Error{Kind: MismatchedTypes, Cause: high, Env: env}
	}
	var cells []*Value
	for {
		lt, err := low.Less(high)
		if err != nil {
			return nil, withScope(err, env)
		}
		if !lt {
			return List(cells), nil
		}
		cells = append(cells, low)
		low, err = low.Add(Int(1))
		if err != nil {
			return nil, withScope(err, env)
		}
	}
}

func builtinMap(env *Env, args []*Value) (*Value, error) {
	if err := evalArgs(env, args); err != nil {
		return nil, err
	}
	if err := checkArity("map", env, args, 2); err != nil {
		return nil, err
	}
	cells, err := args[1].AsList()
	if err != nil {
		return nil, withScope(err, env)
	}
	result := make([]*Value, len(cells))
	for i, c := range cells {
		result[i], err = env.Call(args[0], []*Value{c})
		if err != nil {
			return nil, err
		}
	}
	return List(result), nil
}

func builtinFilter(env *Env, args []*Value) (*Value, error) {
	if err := evalArgs(env, args); err != nil {
		return nil, err
	}
	if err := checkArity("filter", env, args, 2); err != nil {
		return nil, err
	}
	cells, err := args[1].AsList()
	if err != nil {
		return nil, withScope(err, env)
	}
	var result []*Value
	for _, c := range cells {
		keep, err := env.Call(args[0], []*Value{c})
		if err != nil {
			return nil, err
		}
		if keep.Bool() {
			result = append(result, c)
		}
	}
	return List(result), nil
}

func builtinReduce(env *Env, args []*Value) (*Value, error) {
	if err := evalArgs(env, args); err != nil {
		return nil, err
	}
	if err := checkArity("reduce", env, args, 3); err != nil {
		return nil, err
	}
	cells, err := args[2].AsList()
	if err != nil {
		return nil, withScope(err, env)
	}
	acc := args[1]
	for _, c := range cells {
		acc, err = env.Call(args[0], []*Value{acc, c})
		if err != nil {
			return nil, err
		}
	}
	return acc, nil
}

func builtinExit(env *Env, args []*Value) (*Value, error) {
	if err := evalArgs(env, args); err != nil {
		return nil, err
	}
	code := int64(0)
	if len(args) > 0 {
		v, err := args[0].CastInt()
		if err != nil {
			return nil, withScope(err, env)
		}
		code = v.Int
	}
	os.Exit(int(code))
	return Unit(), nil
}

func builtinPrint(env *Env, args []*Value) (*Value, error) {
	if err := evalArgs(env, args); err != nil {
		return nil, err
	}
	if len(args) < 1 {
		return nil, berr("print", env, TooFewArgs)
	}
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.Display()
	}
	fmt.Println(strings.Join(parts, " "))
	return args[len(args)-1], nil
}

func builtinInput(env *Env, args []*Value) (*Value, error) {
	if err := evalArgs(env, args); err != nil {
		return nil, err
	}
	if len(args) > 1 {
		return nil, berr("input", env, TooManyArgs)
	}
	if len(args) == 1 {
		fmt.Print(args[0].Display())
	}
	line, _ := stdin.ReadString('\n')
	return String(strings.TrimSuffix(line, "\n")), nil
}

// (random lo hi) returns a uniform integer in [lo, hi] inclusive.
func builtinRandom(env *Env, args []*Value) (*Value, error) {
	if err := evalArgs(env, args); err != nil {
		return nil, err
	}
	if err := checkArity("random", env, args, 2); err != nil {
		return nil, err
	}
	low, err := args[0].CastInt()
	if err != nil {
		return nil, withScope(err, env)
	}
	high, err := args[1].CastInt()
	if err != nil {
		return nil, withScope(err, env)
	}
	if high.Int < low.Int {
		return nil, &Error{Kind: InvalidArgument, Cause: args[1], Env: env}
	}
	return Int(low.Int + rng.Int63n(high.Int-low.Int+1)), nil
}

// include evaluates a file in a fresh environment and overlays the
// resulting definitions onto the current scope.
func builtinInclude(env *Env, args []*Value) (*Value, error) {
	if err := evalArgs(env, args); err != nil {
		return nil, err
	}
	if err := checkArity("include", env, args, 1); err != nil {
		return nil, err
	}
	path, err := args[0].AsString()
	if err != nil {
		return nil, withScope(err, env)
	}
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	included := NewEnv(nil)
	included.Reader = env.root().Reader
	result, err := Run(string(source), included)
	if err != nil {
		return nil, err
	}
	env.Combine(included)
	return result, nil
}

func builtinReadFile(env *Env, args []*Value) (*Value, error) {
	if err := evalArgs(env, args); err != nil {
		return nil, err
	}
	if err := checkArity("read-file", env, args, 1); err != nil {
		return nil, err
	}
	path, err := args[0].AsString()
	if err != nil {
		return nil, withScope(err, env)
	}
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return String(string(contents)), nil
}

// write-file returns 1 on success and 0 on failure rather than erroring.
func builtinWriteFile(env *Env, args []*Value) (*Value, error) {
	if err := evalArgs(env, args); err != nil {
		return nil, err
	}
	if err := checkArity("write-file", env, args, 2); err != nil {
		return nil, err
	}
	path, err := args[0].AsString()
	if err != nil {
		return nil, withScope(err, env)
	}
	contents, err := args[1].AsString()
	if err != nil {
		return nil, withScope(err, env)
	}
	if err := os.WriteFile(path, []byte(contents), 0666); err != nil {
		return Int(0), nil
	}
	return Int(1), nil
}

func builtinDebug(env *Env, args []*Value) (*Value, error) {
	if err := evalArgs(env, args); err != nil {
		return nil, err
	}
	if err := checkArity("debug", env, args, 1); err != nil {
		return nil, err
	}
	return String(args[0].Debug()), nil
}

func builtinDisplay(env *Env, args []*Value) (*Value, error) {
	if err := evalArgs(env, args); err != nil {
		return nil, err
	}
	if err := checkArity("display", env, args, 1); err != nil {
		return nil, err
	}
	return String(args[0].Display()), nil
}

// (replace s old new) replaces every occurrence of old in s.
func builtinReplace(env *Env, args []*Value) (*Value, error) {
	if err := evalArgs(env, args); err != nil {
		return nil, err
	}
	if err := checkArity("replace", env, args, 3); err != nil {
		return nil, err
	}
	s, err := args[0].AsString()
	if err != nil {
		return nil, withScope(err, env)
	}
	from, err := args[1].AsString()
	if err != nil {
		return nil, withScope(err, env)
	}
	to, err := args[2].AsString()
	if err != nil {
		return nil, withScope(err, env)
	}
	return String(strings.ReplaceAll(s, from, to)), nil
}

func builtinCastInt(env *Env, args []*Value) (*Value, error) {
	if err := evalArgs(env, args); err != nil {
		return nil, err
	}
	if err := checkArity("int", env, args, 1); err != nil {
		return nil, err
	}
	result, err := args[0].CastInt()
	if err != nil {
		return nil, withScope(err, env)
	}
	return result, nil
}

func builtinCastFloat(env *Env, args []*Value) (*Value, error) {
	if err := evalArgs(env, args); err != nil {
		return nil, err
	}
	if err := checkArity("float", env, args, 1); err != nil {
		return nil, err
	}
	result, err := args[0].CastFloat()
	if err != nil {
		return nil, withScope(err, env)
	}
	return result, nil
}
